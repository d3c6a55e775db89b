// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

import (
	"time"

	"github.com/google/uuid"
)

// TokenService issues and verifies the two signed credentials of a session:
// a short-lived access token carrying the admin identity, and an opaque
// longer-lived refresh token carrying only a type marker.
type TokenService interface {
	// IssueAccessToken produces a signed token encoding the admin identity,
	// valid for the configured access TTL (5 hours).
	IssueAccessToken(adminID uuid.UUID) (string, error)

	// IssueRefreshToken produces an opaque signed token valid for the
	// configured refresh TTL (7 days). It carries no admin payload; the
	// admin binding lives in the hashed server-side session record.
	IssueRefreshToken() (string, error)

	// VerifyAccessToken checks signature, expiry, and type, returning the
	// admin ID the token was issued for. Any failure yields ErrInvalidToken.
	VerifyAccessToken(token string) (uuid.UUID, error)

	// VerifyRefreshToken checks signature, expiry, and type.
	VerifyRefreshToken(token string) error

	// HashToken produces the one-way hash under which opaque tokens are stored.
	HashToken(token string) string

	// AccessTokenDuration returns the configured access token lifetime.
	AccessTokenDuration() time.Duration

	// RefreshTokenDuration returns the configured refresh token lifetime.
	RefreshTokenDuration() time.Duration
}
