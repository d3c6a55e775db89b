package impl

import (
	"context"
	"fmt"
	"log/slog"

	deliverycontext "pressroom/internal/delivery/context"
	"pressroom/internal/domain/entity"
	domainerrors "pressroom/internal/domain/errors"
	"pressroom/internal/domain/repository"
	"pressroom/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// slugAttemptLimit bounds the suffix search; a title colliding this many
// times falls back to a random suffix.
const slugAttemptLimit = 50

// blogService implements the BlogUsecase interface.
type blogService struct {
	blogs  repository.BlogRepository
	logger *slog.Logger
}

// NewBlogService is the constructor for blogService.
func NewBlogService(blogs repository.BlogRepository, logger *slog.Logger) usecase.BlogUsecase {
	return &blogService{
		blogs:  blogs,
		logger: logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *blogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *blogService) Create(ctx context.Context, createdBy uuid.UUID, input usecase.CreateBlogInput) (*entity.Blog, error) {
	status := input.Status
	if status == "" {
		status = entity.BlogStatusDraft
	}
	if !status.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown status: " + string(status))
	}

	slug, err := srv.uniqueSlug(ctx, input.Title, uuid.Nil)
	if err != nil {
		return nil, err
	}

	blog := &entity.Blog{
		ID:            uuid.New(),
		Title:         input.Title,
		Content:       input.Content,
		Author:        input.Author,
		FeaturedImage: input.FeaturedImage,
		Categories:    input.Categories,
		Tags:          input.Tags,
		Slug:          slug,
		Status:        status,
		CreatedBy:     createdBy,
	}

	if err := srv.blogs.Create(ctx, blog); err != nil {
		return nil, errors.Wrap(err, "failed to create blog post")
	}

	srv.log(ctx).Info("Blog post created", slog.Any("blog_id", blog.ID), slog.String("slug", blog.Slug))

	return blog, nil
}

func (srv *blogService) Get(ctx context.Context, id uuid.UUID) (*entity.Blog, error) {
	blog, err := srv.blogs.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrBlogNotFound) {
			return nil, domainerrors.ErrBlogNotFound
		}

		return nil, errors.Wrap(err, "failed to look up blog post")
	}

	return blog, nil
}

func (srv *blogService) GetBySlug(ctx context.Context, slug string) (*entity.Blog, error) {
	blog, err := srv.blogs.FindBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, repository.ErrBlogNotFound) {
			return nil, domainerrors.ErrBlogNotFound
		}

		return nil, errors.Wrap(err, "failed to look up blog post")
	}

	// Drafts stay invisible on the public path.
	if blog.Status != entity.BlogStatusPublished {
		return nil, domainerrors.ErrBlogNotFound
	}

	if err := srv.blogs.IncrementViews(ctx, blog.ID); err != nil {
		srv.log(ctx).Warn("Failed to bump blog views", slog.Any("error", err), slog.Any("blog_id", blog.ID))
	} else {
		blog.Views++
	}

	return blog, nil
}

func (srv *blogService) List(ctx context.Context, filter repository.BlogListFilter) (*usecase.BlogListOutput, error) {
	blogs, total, err := srv.blogs.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list blog posts")
	}

	return &usecase.BlogListOutput{Blogs: blogs, Total: total}, nil
}

func (srv *blogService) Update(ctx context.Context, id uuid.UUID, input usecase.UpdateBlogInput) (*entity.Blog, error) {
	blog, err := srv.blogs.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrBlogNotFound) {
			return nil, domainerrors.ErrBlogNotFound
		}

		return nil, errors.Wrap(err, "failed to look up blog post")
	}

	if input.Title != nil && *input.Title != blog.Title {
		blog.Title = *input.Title
		// The slug follows the title; unchanged titles keep their slug so
		// published URLs stay stable.
		slug, err := srv.uniqueSlug(ctx, blog.Title, blog.ID)
		if err != nil {
			return nil, err
		}
		blog.Slug = slug
	}
	if input.Content != nil {
		blog.Content = *input.Content
	}
	if input.Author != nil {
		blog.Author = *input.Author
	}
	if input.FeaturedImage != nil {
		blog.FeaturedImage = *input.FeaturedImage
	}
	if input.Categories != nil {
		blog.Categories = input.Categories
	}
	if input.Tags != nil {
		blog.Tags = input.Tags
	}
	if input.Status != nil {
		if !input.Status.IsValid() {
			return nil, domainerrors.ErrValidationFailed.WithDetails("unknown status: " + string(*input.Status))
		}
		blog.Status = *input.Status
	}

	if err := srv.blogs.Update(ctx, blog); err != nil {
		if errors.Is(err, repository.ErrBlogNotFound) {
			return nil, domainerrors.ErrBlogNotFound
		}

		return nil, errors.Wrap(err, "failed to update blog post")
	}

	return blog, nil
}

func (srv *blogService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := srv.blogs.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrBlogNotFound) {
			return domainerrors.ErrBlogNotFound
		}

		return errors.Wrap(err, "failed to delete blog post")
	}

	srv.log(ctx).Info("Blog post deleted", slog.Any("blog_id", id))

	return nil
}

// uniqueSlug derives the slug from the title and appends -1, -2, ... until it
// is free. excludeID lets a post keep its own slug across updates.
func (srv *blogService) uniqueSlug(ctx context.Context, title string, excludeID uuid.UUID) (string, error) {
	base := entity.Slugify(title)
	if base == "" {
		base = "untitled"
	}

	slug := base
	for attempt := 1; ; attempt++ {
		taken, err := srv.blogs.SlugExists(ctx, slug, excludeID)
		if err != nil {
			return "", errors.Wrap(err, "failed to check slug")
		}
		if !taken {
			return slug, nil
		}
		if attempt > slugAttemptLimit {
			return fmt.Sprintf("%s-%s", base, uuid.New().String()[:8]), nil
		}
		slug = fmt.Sprintf("%s-%d", base, attempt)
	}
}
