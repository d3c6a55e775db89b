package repository

import (
	"context"
	"time"

	"pressroom/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for token persistence.
var (
	// ErrRefreshTokenNotFound is returned when a refresh token is not found.
	ErrRefreshTokenNotFound = errors.New("refresh token not found")
	// ErrRefreshTokenExpired is returned when a refresh token has expired.
	ErrRefreshTokenExpired = errors.New("refresh token has expired")
	// ErrResetTokenNotFound is returned when a password reset token is not found.
	ErrResetTokenNotFound = errors.New("password reset token not found")
	// ErrResetTokenExpired is returned when a password reset token has expired.
	ErrResetTokenExpired = errors.New("password reset token has expired")
)

// RefreshTokenRepository persists the single active session each admin may hold.
type RefreshTokenRepository interface {
	// Upsert atomically replaces the admin's session with a new hashed token and
	// expiry. Keying the write on the admin identity enforces the one-session-per-
	// admin invariant without a read-modify-write race across concurrent logins.
	Upsert(ctx context.Context, adminID uuid.UUID, tokenHash string, expiresAt time.Time) error

	// FindByHash retrieves a session by its stored hash. Lapsed sessions yield
	// ErrRefreshTokenExpired even if the reaper has not removed them yet.
	FindByHash(ctx context.Context, tokenHash string) (*entity.RefreshToken, error)

	// DeleteByHash ends the session matching the hash (logout).
	DeleteByHash(ctx context.Context, tokenHash string) error

	// DeleteByAdminID ends the admin's session regardless of token value.
	DeleteByAdminID(ctx context.Context, adminID uuid.UUID) error

	// DeleteExpired removes lapsed sessions. Called periodically by the reaper,
	// standing in for a document store's TTL index.
	DeleteExpired(ctx context.Context) error
}

// PasswordResetTokenRepository persists single-use password reset tokens.
type PasswordResetTokenRepository interface {
	// Create persists a new reset token, replacing any outstanding token for the
	// same admin so only the most recent reset link works.
	Create(ctx context.Context, token *entity.PasswordResetToken) error

	// FindByHash retrieves a reset token by its stored hash, expiry-checked.
	FindByHash(ctx context.Context, tokenHash string) (*entity.PasswordResetToken, error)

	// Delete removes a token after use.
	Delete(ctx context.Context, id uuid.UUID) error

	// DeleteExpired removes lapsed tokens, reaper-driven like refresh tokens.
	DeleteExpired(ctx context.Context) error
}
