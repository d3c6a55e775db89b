package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// BlogModel mirrors the 'blogs' table. Categories and Tags are stored as
// JSONB string arrays.
type BlogModel struct {
	ID            uuid.UUID      `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	Title         string         `gorm:"type:varchar(255);not null"`
	Content       string         `gorm:"type:text;not null"`
	Author        string         `gorm:"type:varchar(100)"`
	FeaturedImage string         `gorm:"type:varchar(512)"`
	Categories    datatypes.JSON `gorm:"type:jsonb"`
	Tags          datatypes.JSON `gorm:"type:jsonb"`
	Slug          string         `gorm:"type:varchar(255);unique;not null"`
	Status        string         `gorm:"type:varchar(20);not null;index"`
	Views         int64          `gorm:"not null;default:0"`
	CreatedBy     uuid.UUID      `gorm:"type:uuid;not null"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (BlogModel) TableName() string {
	return "blogs"
}
