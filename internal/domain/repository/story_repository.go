package repository

import (
	"context"
	"time"

	"pressroom/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrStoryNotFound is returned when no story matches the lookup.
var ErrStoryNotFound = errors.New("story not found")

// StoryListFilter narrows and paginates story listings.
type StoryListFilter struct {
	Status   *entity.StoryStatus
	Category string
	Search   string // Matches title or submitter name, case-insensitive substring.
	From     *time.Time // Inclusive creation-time lower bound.
	To       *time.Time // Exclusive creation-time upper bound.
	Page     int
	Limit    int
}

// StoryCategoryCount is one row of the per-category aggregation.
type StoryCategoryCount struct {
	Category string
	Count    int64
}

// StoryRepository persists user-submitted stories.
type StoryRepository interface {
	Create(ctx context.Context, story *entity.Story) error

	FindByID(ctx context.Context, id uuid.UUID) (*entity.Story, error)

	List(ctx context.Context, filter StoryListFilter) ([]*entity.Story, int64, error)

	Update(ctx context.Context, story *entity.Story) error

	Delete(ctx context.Context, id uuid.UUID) error

	IncrementViews(ctx context.Context, id uuid.UUID) error

	// CountByStatus aggregates stories per status within the optional creation-time range.
	CountByStatus(ctx context.Context, from, to *time.Time) (map[entity.StoryStatus]int64, error)

	// CountByCategory aggregates stories per category within the optional creation-time range.
	CountByCategory(ctx context.Context, from, to *time.Time) ([]StoryCategoryCount, error)
}
