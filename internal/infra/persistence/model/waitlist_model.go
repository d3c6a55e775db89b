package model

import (
	"time"

	"github.com/google/uuid"
)

// WaitlistModel mirrors the 'waitlist_entries' table.
type WaitlistModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	FirstName   string    `gorm:"type:varchar(100);not null"`
	LastName    string    `gorm:"type:varchar(100);not null"`
	Email       string    `gorm:"type:varchar(255);unique;not null"`
	Status      string    `gorm:"type:varchar(20);not null;index"`
	NotifiedAt  *time.Time
	ConvertedAt *time.Time
	IPAddress   string `gorm:"type:varchar(45)"`
	UserAgent   string `gorm:"type:varchar(512)"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (WaitlistModel) TableName() string {
	return "waitlist_entries"
}
