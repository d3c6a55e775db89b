package main

import (
	"context"
	"log/slog"
	"os"

	"pressroom/config"
	"pressroom/internal/delivery"
	"pressroom/internal/delivery/http"
	"pressroom/internal/delivery/http/middleware"
	"pressroom/internal/delivery/http/router/handler"
	"pressroom/internal/infra/auth"
	"pressroom/internal/infra/events"
	logs "pressroom/internal/infra/log"
	"pressroom/internal/infra/mail"
	"pressroom/internal/infra/persistence/postgres"
	"pressroom/internal/infra/storage"
	"pressroom/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectUsecase(),
		injectMiddleware(),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
			postgres.StartTokenReaper,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
		auth.NewBcryptHasher,
		auth.NewJWTService,
		mail.NewMailer,
		storage.NewMinioStore,
		events.NewEventPublisher,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewAdminRepository,
			postgres.NewRefreshTokenRepository,
			postgres.NewPasswordResetTokenRepository,
			postgres.NewBlogRepository,
			postgres.NewStoryRepository,
			postgres.NewWaitlistRepository,
			postgres.NewNotificationRepository,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewAdminService,
			impl.NewBlogService,
			impl.NewStoryService,
			impl.NewWaitlistService,
			impl.NewNotificationService,
			impl.NewAnalyticsService,
			impl.NewUploadService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
			middleware.NewLoggerMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewBlogHandler,
			handler.NewStoryHandler,
			handler.NewWaitlistHandler,
			handler.NewAdminHandler,
			handler.NewNotificationHandler,
			handler.NewAnalyticsHandler,
			handler.NewUploadHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
