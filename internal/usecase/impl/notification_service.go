package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "pressroom/internal/delivery/context"
	"pressroom/internal/domain/entity"
	domainerrors "pressroom/internal/domain/errors"
	"pressroom/internal/domain/repository"
	"pressroom/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// notificationService implements the NotificationUsecase interface.
type notificationService struct {
	notifications repository.NotificationRepository
	logger        *slog.Logger
	now           func() time.Time
}

// NewNotificationService is the constructor for notificationService.
func NewNotificationService(
	notifications repository.NotificationRepository,
	logger *slog.Logger,
) usecase.NotificationUsecase {
	return &notificationService{
		notifications: notifications,
		logger:        logger,
		now:           time.Now,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *notificationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *notificationService) List(ctx context.Context, filter repository.NotificationListFilter) (*usecase.NotificationListOutput, error) {
	notifications, total, err := srv.notifications.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list notifications")
	}

	unread, err := srv.notifications.CountUnread(ctx, filter.RecipientID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count unread notifications")
	}

	return &usecase.NotificationListOutput{
		Notifications: notifications,
		Total:         total,
		Unread:        unread,
	}, nil
}

func (srv *notificationService) MarkRead(ctx context.Context, recipientID, id uuid.UUID) (*entity.Notification, error) {
	notification, err := srv.findOwned(ctx, recipientID, id)
	if err != nil {
		return nil, err
	}

	if notification.Read {
		return notification, nil
	}

	notification.MarkRead(srv.now())
	if err := srv.notifications.Update(ctx, notification); err != nil {
		if errors.Is(err, repository.ErrNotificationNotFound) {
			return nil, domainerrors.ErrNotificationNotFound
		}

		return nil, errors.Wrap(err, "failed to update notification")
	}

	return notification, nil
}

func (srv *notificationService) MarkAllRead(ctx context.Context, recipientID uuid.UUID) error {
	if err := srv.notifications.MarkAllRead(ctx, recipientID); err != nil {
		return errors.Wrap(err, "failed to mark notifications read")
	}

	srv.log(ctx).Debug("All notifications marked read", slog.Any("recipient_id", recipientID))

	return nil
}

func (srv *notificationService) Delete(ctx context.Context, recipientID, id uuid.UUID) error {
	if _, err := srv.findOwned(ctx, recipientID, id); err != nil {
		return err
	}

	if err := srv.notifications.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotificationNotFound) {
			return domainerrors.ErrNotificationNotFound
		}

		return errors.Wrap(err, "failed to delete notification")
	}

	return nil
}

// findOwned loads a notification and verifies the caller is its recipient.
// Someone else's notification is reported as not found so the ID space leaks
// nothing.
func (srv *notificationService) findOwned(ctx context.Context, recipientID, id uuid.UUID) (*entity.Notification, error) {
	notification, err := srv.notifications.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotificationNotFound) {
			return nil, domainerrors.ErrNotificationNotFound
		}

		return nil, errors.Wrap(err, "failed to look up notification")
	}

	if notification.RecipientID != recipientID {
		return nil, domainerrors.ErrNotificationNotFound
	}

	return notification, nil
}
