package model

import (
	"time"

	"github.com/google/uuid"
)

// RefreshTokenModel mirrors the 'refresh_tokens' table. AdminID carries a
// unique index: each admin holds at most one session row, and login replaces
// it in place.
type RefreshTokenModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	AdminID   uuid.UUID `gorm:"type:uuid;unique;not null"`
	TokenHash string    `gorm:"type:varchar(64);unique;not null"`
	ExpiresAt time.Time `gorm:"not null;index"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (RefreshTokenModel) TableName() string {
	return "refresh_tokens"
}

// PasswordResetTokenModel mirrors the 'password_reset_tokens' table.
type PasswordResetTokenModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	AdminID   uuid.UUID `gorm:"type:uuid;not null;index"`
	TokenHash string    `gorm:"type:varchar(64);unique;not null"`
	ExpiresAt time.Time `gorm:"not null;index"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (PasswordResetTokenModel) TableName() string {
	return "password_reset_tokens"
}
