package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// AdminModel mirrors the 'admins' table. PostgreSQL generates UUIDs via uuid_generate_v4().
type AdminModel struct {
	ID           uuid.UUID      `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	Name         string         `gorm:"type:varchar(100);not null"`
	Email        string         `gorm:"type:varchar(255);unique;not null"`
	PasswordHash string         `gorm:"type:varchar(255);not null"`
	Role         string         `gorm:"type:varchar(50);not null;index"`
	Permissions  datatypes.JSON `gorm:"type:jsonb;not null"`
	IsActive     bool           `gorm:"not null;default:true"`
	LastLogin    *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time

	RefreshToken        *RefreshTokenModel       `gorm:"foreignKey:AdminID"`
	PasswordResetTokens []PasswordResetTokenModel `gorm:"foreignKey:AdminID"`
}

// TableName explicitly sets the table name for GORM.
func (AdminModel) TableName() string {
	return "admins"
}
