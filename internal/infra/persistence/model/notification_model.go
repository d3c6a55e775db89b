package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// NotificationModel mirrors the 'notifications' table.
type NotificationModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	RecipientID uuid.UUID `gorm:"type:uuid;not null;index"`
	Title       string    `gorm:"type:varchar(255);not null"`
	Message     string    `gorm:"type:text;not null"`
	Type        string    `gorm:"type:varchar(50);not null"`
	Priority    string    `gorm:"type:varchar(20);not null"`
	Read        bool      `gorm:"not null;default:false;index"`
	ReadAt      *time.Time
	RelatedID   *uuid.UUID     `gorm:"type:uuid"`
	RelatedType string         `gorm:"type:varchar(50)"`
	ActionURL   string         `gorm:"type:varchar(512)"`
	Metadata    datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (NotificationModel) TableName() string {
	return "notifications"
}
