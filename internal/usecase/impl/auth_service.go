// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"log/slog"
	"time"

	"pressroom/config"
	deliverycontext "pressroom/internal/delivery/context"
	"pressroom/internal/domain/entity"
	domainerrors "pressroom/internal/domain/errors"
	"pressroom/internal/domain/repository"
	"pressroom/internal/domain/service"
	"pressroom/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// authService implements the AuthUsecase interface.
type authService struct {
	admins       repository.AdminRepository
	sessions     repository.RefreshTokenRepository
	resetTokens  repository.PasswordResetTokenRepository
	tokens       service.TokenService
	hasher       service.PasswordHasher
	events       service.EventPublisher
	resetTTL     time.Duration
	frontendBase string
	logger       *slog.Logger
	now          func() time.Time
}

// NewAuthService is the constructor for authService.
func NewAuthService(
	cfg *config.Config,
	admins repository.AdminRepository,
	sessions repository.RefreshTokenRepository,
	resetTokens repository.PasswordResetTokenRepository,
	tokens service.TokenService,
	hasher service.PasswordHasher,
	events service.EventPublisher,
	logger *slog.Logger,
) usecase.AuthUsecase {
	return &authService{
		admins:       admins,
		sessions:     sessions,
		resetTokens:  resetTokens,
		tokens:       tokens,
		hasher:       hasher,
		events:       events,
		resetTTL:     cfg.Auth.ResetTokenTTL,
		frontendBase: cfg.Frontend.BaseURL,
		logger:       logger,
		now:          time.Now,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *authService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.LoginOutput, error) {
	admin, err := srv.admins.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrAdminNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to look up admin")
	}

	if !srv.hasher.Check(input.Password, admin.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	// Checked after the password so the two failures are not distinguishable
	// by timing.
	if !admin.IsActive {
		return nil, domainerrors.ErrAccountDisabled
	}

	accessToken, err := srv.tokens.IssueAccessToken(admin.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue access token")
	}
	refreshToken, err := srv.tokens.IssueRefreshToken()
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue refresh token")
	}

	expiresAt := srv.now().Add(srv.tokens.RefreshTokenDuration())
	if err := srv.sessions.Upsert(ctx, admin.ID, srv.tokens.HashToken(refreshToken), expiresAt); err != nil {
		return nil, errors.Wrap(err, "failed to persist session")
	}

	lastLogin := srv.now()
	admin.LastLogin = &lastLogin
	if err := srv.admins.Update(ctx, admin); err != nil {
		// The session is already valid; a failed LastLogin stamp is not worth
		// failing the login over.
		srv.log(ctx).Warn("Failed to stamp last login", slog.Any("error", err), slog.Any("admin_id", admin.ID))
	}

	srv.log(ctx).Info("Admin logged in", slog.Any("admin_id", admin.ID))

	return &usecase.LoginOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		Admin:        admin,
	}, nil
}

func (srv *authService) Refresh(ctx context.Context, refreshToken string) (*usecase.RefreshOutput, error) {
	if err := srv.tokens.VerifyRefreshToken(refreshToken); err != nil {
		return nil, domainerrors.ErrInvalidToken
	}

	session, err := srv.sessions.FindByHash(ctx, srv.tokens.HashToken(refreshToken))
	if err != nil {
		if errors.Is(err, repository.ErrRefreshTokenNotFound) || errors.Is(err, repository.ErrRefreshTokenExpired) {
			return nil, domainerrors.ErrInvalidToken
		}

		return nil, errors.Wrap(err, "failed to look up session")
	}

	admin, err := srv.admins.FindByID(ctx, session.AdminID)
	if err != nil {
		if errors.Is(err, repository.ErrAdminNotFound) {
			return nil, domainerrors.ErrInvalidToken
		}

		return nil, errors.Wrap(err, "failed to look up admin")
	}
	if !admin.IsActive {
		return nil, domainerrors.ErrAccountDisabled
	}

	accessToken, err := srv.tokens.IssueAccessToken(admin.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue access token")
	}
	newRefreshToken, err := srv.tokens.IssueRefreshToken()
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue refresh token")
	}

	expiresAt := srv.now().Add(srv.tokens.RefreshTokenDuration())
	if err := srv.sessions.Upsert(ctx, admin.ID, srv.tokens.HashToken(newRefreshToken), expiresAt); err != nil {
		return nil, errors.Wrap(err, "failed to rotate session")
	}

	return &usecase.RefreshOutput{
		AccessToken:  accessToken,
		RefreshToken: newRefreshToken,
	}, nil
}

func (srv *authService) Logout(ctx context.Context, refreshToken string) error {
	err := srv.sessions.DeleteByHash(ctx, srv.tokens.HashToken(refreshToken))
	if err != nil && !errors.Is(err, repository.ErrRefreshTokenNotFound) {
		return errors.Wrap(err, "failed to end session")
	}

	return nil
}

func (srv *authService) ForgotPassword(ctx context.Context, email string) error {
	admin, err := srv.admins.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrAdminNotFound) {
			// Same outcome as a registered email: nothing discloses whether
			// the account exists.
			return nil
		}

		return errors.Wrap(err, "failed to look up admin")
	}
	if !admin.IsActive {
		return nil
	}

	rawToken, err := generateResetToken()
	if err != nil {
		return errors.Wrap(err, "failed to generate reset token")
	}

	token := &entity.PasswordResetToken{
		ID:        uuid.New(),
		AdminID:   admin.ID,
		TokenHash: srv.tokens.HashToken(rawToken),
		ExpiresAt: srv.now().Add(srv.resetTTL),
	}
	if err := srv.resetTokens.Create(ctx, token); err != nil {
		return errors.Wrap(err, "failed to persist reset token")
	}

	srv.events.Publish(ctx, &service.Event{
		Type:        service.EventPasswordResetRequested,
		RelatedID:   admin.ID,
		RelatedType: "admin",
		Fields: map[string]string{
			"name":     admin.Name,
			"email":    admin.Email,
			"resetUrl": srv.frontendBase + "/reset-password?token=" + rawToken,
		},
	})

	srv.log(ctx).Info("Password reset requested", slog.Any("admin_id", admin.ID))

	return nil
}

func (srv *authService) ResetPassword(ctx context.Context, input usecase.ResetPasswordInput) error {
	token, err := srv.resetTokens.FindByHash(ctx, srv.tokens.HashToken(input.Token))
	if err != nil {
		if errors.Is(err, repository.ErrResetTokenNotFound) || errors.Is(err, repository.ErrResetTokenExpired) {
			return domainerrors.ErrResetTokenInvalid
		}

		return errors.Wrap(err, "failed to look up reset token")
	}

	admin, err := srv.admins.FindByID(ctx, token.AdminID)
	if err != nil {
		if errors.Is(err, repository.ErrAdminNotFound) {
			return domainerrors.ErrResetTokenInvalid
		}

		return errors.Wrap(err, "failed to look up admin")
	}

	hash, err := srv.hasher.Hash(input.NewPassword)
	if err != nil {
		return errors.Wrap(err, "failed to hash password")
	}

	admin.PasswordHash = hash
	if err := srv.admins.Update(ctx, admin); err != nil {
		return errors.Wrap(err, "failed to update password")
	}

	// Single use: the token dies with the reset, and any live session is ended
	// so a stolen refresh token stops working too.
	if err := srv.resetTokens.Delete(ctx, token.ID); err != nil && !errors.Is(err, repository.ErrResetTokenNotFound) {
		srv.log(ctx).Warn("Failed to delete consumed reset token", slog.Any("error", err))
	}
	if err := srv.sessions.DeleteByAdminID(ctx, admin.ID); err != nil {
		srv.log(ctx).Warn("Failed to end sessions after password reset", slog.Any("error", err))
	}

	srv.log(ctx).Info("Password reset completed", slog.Any("admin_id", admin.ID))

	return nil
}

func (srv *authService) GetProfile(ctx context.Context, adminID uuid.UUID) (*entity.Admin, error) {
	admin, err := srv.admins.FindByID(ctx, adminID)
	if err != nil {
		if errors.Is(err, repository.ErrAdminNotFound) {
			return nil, domainerrors.ErrAdminNotFound
		}

		return nil, errors.Wrap(err, "failed to look up admin")
	}

	return admin, nil
}

func (srv *authService) UpdateProfile(ctx context.Context, adminID uuid.UUID, input usecase.UpdateProfileInput) (*entity.Admin, error) {
	admin, err := srv.admins.FindByID(ctx, adminID)
	if err != nil {
		if errors.Is(err, repository.ErrAdminNotFound) {
			return nil, domainerrors.ErrAdminNotFound
		}

		return nil, errors.Wrap(err, "failed to look up admin")
	}

	if input.Name != "" {
		admin.Name = input.Name
	}
	if input.Email != "" {
		admin.Email = input.Email
	}

	if err := srv.admins.Update(ctx, admin); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, domainerrors.ErrEmailTaken
		}

		return nil, errors.Wrap(err, "failed to update profile")
	}

	return admin, nil
}

func (srv *authService) ChangePassword(ctx context.Context, adminID uuid.UUID, input usecase.ChangePasswordInput) error {
	admin, err := srv.admins.FindByID(ctx, adminID)
	if err != nil {
		if errors.Is(err, repository.ErrAdminNotFound) {
			return domainerrors.ErrAdminNotFound
		}

		return errors.Wrap(err, "failed to look up admin")
	}

	if !srv.hasher.Check(input.CurrentPassword, admin.PasswordHash) {
		return domainerrors.ErrInvalidCredentials.WrapMessage("current password does not match")
	}

	hash, err := srv.hasher.Hash(input.NewPassword)
	if err != nil {
		return errors.Wrap(err, "failed to hash password")
	}

	admin.PasswordHash = hash
	if err := srv.admins.Update(ctx, admin); err != nil {
		return errors.Wrap(err, "failed to update password")
	}

	srv.log(ctx).Info("Password changed", slog.Any("admin_id", admin.ID))

	return nil
}

// generateResetToken produces the raw 32-byte hex token carried in the reset
// link. Only its hash is stored.
func generateResetToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", errors.WithStack(err)
	}

	return hex.EncodeToString(buf), nil
}
