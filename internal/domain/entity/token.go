package entity

import (
	"time"

	"github.com/google/uuid"
)

// RefreshToken represents the single long-lived session an admin may hold.
// It is used to obtain a new access token after the old one expires, without
// requiring credentials again.
type RefreshToken struct {
	ID        uuid.UUID // The unique ID for this refresh token record.
	AdminID   uuid.UUID // Links the session to the admin it belongs to. Unique: one session per admin.
	TokenHash string    // SHA-256 hash of the raw token; the raw value is never stored.
	ExpiresAt time.Time // The exact time when this refresh token becomes invalid.
	CreatedAt time.Time // When the session was created, i.e. when the admin logged in.
}

// PasswordResetToken is a single-use credential mailed to an admin who forgot
// their password. It expires one hour after issuance and is deleted on use.
type PasswordResetToken struct {
	ID        uuid.UUID
	AdminID   uuid.UUID
	TokenHash string    // SHA-256 hash of the raw token carried in the reset link.
	ExpiresAt time.Time // Issuance time plus one hour.
	CreatedAt time.Time
}

// Expired reports whether the token's expiry has elapsed at the given instant.
func (t *RefreshToken) Expired(now time.Time) bool {
	return !t.ExpiresAt.After(now)
}

// Expired reports whether the token's expiry has elapsed at the given instant.
func (t *PasswordResetToken) Expired(now time.Time) bool {
	return !t.ExpiresAt.After(now)
}
