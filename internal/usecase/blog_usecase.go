package usecase

import (
	"context"

	"pressroom/internal/domain/entity"
	"pressroom/internal/domain/repository"

	"github.com/google/uuid"
)

// CreateBlogInput defines the data required to create a blog post.
type CreateBlogInput struct {
	Title         string
	Content       string
	Author        string
	FeaturedImage string
	Categories    []string
	Tags          []string
	Status        entity.BlogStatus
}

// UpdateBlogInput defines the mutable fields of a blog post. Nil fields are
// left unchanged. Changing Title regenerates the slug.
type UpdateBlogInput struct {
	Title         *string
	Content       *string
	Author        *string
	FeaturedImage *string
	Categories    []string
	Tags          []string
	Status        *entity.BlogStatus
}

// BlogListOutput returns one page of blog posts plus the total match count.
type BlogListOutput struct {
	Blogs []*entity.Blog
	Total int64
}

// BlogUsecase defines the interface for blog content operations.
type BlogUsecase interface {
	// Create persists a new post with a slug derived from the title; slug
	// collisions get a numeric suffix.
	Create(ctx context.Context, createdBy uuid.UUID, input CreateBlogInput) (*entity.Blog, error)

	Get(ctx context.Context, id uuid.UUID) (*entity.Blog, error)

	// GetBySlug serves the public read path: only published posts are returned
	// and each read bumps the view counter.
	GetBySlug(ctx context.Context, slug string) (*entity.Blog, error)

	// List returns posts for the given filter. Public callers are restricted
	// to published posts by the handler.
	List(ctx context.Context, filter repository.BlogListFilter) (*BlogListOutput, error)

	Update(ctx context.Context, id uuid.UUID, input UpdateBlogInput) (*entity.Blog, error)

	Delete(ctx context.Context, id uuid.UUID) error
}
