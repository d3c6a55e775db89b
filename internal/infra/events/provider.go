package events

import (
	"context"
	"log/slog"

	"pressroom/config"
	"pressroom/internal/domain/repository"
	"pressroom/internal/domain/service"

	"go.uber.org/fx"
)

// PublisherParams holds dependencies for the event publisher, injected by Fx.
type PublisherParams struct {
	fx.In

	Lc            fx.Lifecycle
	Config        *config.Config
	Logger        *slog.Logger
	Mailer        service.Mailer
	Admins        repository.AdminRepository
	Notifications repository.NotificationRepository
}

// NewEventPublisher assembles the in-process dispatcher with its standard
// subscribers and ties its shutdown to the Fx lifecycle.
func NewEventPublisher(params PublisherParams) service.EventPublisher {
	publisher := NewDispatcher(params.Logger,
		NewNotificationSubscriber(params.Config, params.Admins, params.Notifications),
		NewMailSubscriber(params.Config, params.Mailer),
	)

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return publisher.Close()
		},
	})

	return publisher
}
