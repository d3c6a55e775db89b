package repository

import (
	"context"

	"pressroom/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrBlogNotFound is returned when no blog post matches the lookup.
var ErrBlogNotFound = errors.New("blog post not found")

// BlogListFilter narrows and paginates blog listings.
type BlogListFilter struct {
	Status   *entity.BlogStatus
	Category string
	Tag      string
	Search   string // Matches title, case-insensitive substring.
	Page     int
	Limit    int
}

// BlogStats aggregates blog counts and reach for the analytics endpoints.
type BlogStats struct {
	Total      int64
	Published  int64
	Drafts     int64
	TotalViews int64
}

// BlogRepository persists blog posts.
type BlogRepository interface {
	Create(ctx context.Context, blog *entity.Blog) error

	FindByID(ctx context.Context, id uuid.UUID) (*entity.Blog, error)

	// FindBySlug retrieves a post by its unique slug.
	FindBySlug(ctx context.Context, slug string) (*entity.Blog, error)

	// SlugExists reports whether any post other than excludeID already owns the slug.
	// Used by the suffix-counter slug generator.
	SlugExists(ctx context.Context, slug string, excludeID uuid.UUID) (bool, error)

	List(ctx context.Context, filter BlogListFilter) ([]*entity.Blog, int64, error)

	Update(ctx context.Context, blog *entity.Blog) error

	Delete(ctx context.Context, id uuid.UUID) error

	// IncrementViews bumps the view counter without rewriting the whole record.
	IncrementViews(ctx context.Context, id uuid.UUID) error

	// Stats aggregates post counts and total views in one query.
	Stats(ctx context.Context) (*BlogStats, error)

	// TopViewed returns the most-read posts in descending view order.
	TopViewed(ctx context.Context, limit int) ([]*entity.Blog, error)
}
