package postgres

import (
	"context"
	"log/slog"
	"time"

	"pressroom/config"
	"pressroom/internal/domain/repository"

	"go.uber.org/fx"
)

// ReaperParams holds dependencies for the token reaper, injected by Fx.
type ReaperParams struct {
	fx.In
	fx.Lifecycle

	Config        *config.Config
	Logger        *slog.Logger
	RefreshTokens repository.RefreshTokenRepository
	ResetTokens   repository.PasswordResetTokenRepository
}

// StartTokenReaper runs a background sweep that purges expired refresh and
// password reset tokens. Reads already reject expired rows, so the sweep only
// keeps the tables from growing.
func StartTokenReaper(params ReaperParams) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	params.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go reapLoop(ctx, params, done)

			return nil
		},
		OnStop: func(context.Context) error {
			cancel()
			<-done

			return nil
		},
	})
}

func reapLoop(ctx context.Context, params ReaperParams, done chan<- struct{}) {
	defer close(done)

	ticker := time.NewTicker(params.Config.Auth.TokenReapInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			reapOnce(ctx, params)
		}
	}
}

func reapOnce(ctx context.Context, params ReaperParams) {
	if err := params.RefreshTokens.DeleteExpired(ctx); err != nil {
		params.Logger.Error("Failed to reap expired refresh tokens", slog.Any("error", err))
	}
	if err := params.ResetTokens.DeleteExpired(ctx); err != nil {
		params.Logger.Error("Failed to reap expired reset tokens", slog.Any("error", err))
	}
}
