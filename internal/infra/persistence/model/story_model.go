package model

import (
	"time"

	"github.com/google/uuid"
)

// StoryModel mirrors the 'stories' table. CreatedAt is indexed because the
// analytics queries filter on submission time.
type StoryModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	Title           string    `gorm:"type:varchar(255);not null"`
	Content         string    `gorm:"type:text;not null"`
	SubmitterName   string    `gorm:"type:varchar(100);not null"`
	SubmitterEmail  string    `gorm:"type:varchar(255);not null"`
	Category        string    `gorm:"type:varchar(100);index"`
	Status          string    `gorm:"type:varchar(20);not null;index"`
	RejectionReason string    `gorm:"type:text"`
	Views           int64     `gorm:"not null;default:0"`
	ReviewedBy      *uuid.UUID `gorm:"type:uuid"`
	ReviewedAt      *time.Time
	PublishedAt     *time.Time
	CreatedAt       time.Time `gorm:"index"`
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (StoryModel) TableName() string {
	return "stories"
}
