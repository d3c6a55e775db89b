package postgres

import (
	"context"
	"encoding/json"

	"pressroom/internal/domain/entity"
	"pressroom/internal/domain/repository"
	"pressroom/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// blogRepository implements the repository.BlogRepository interface.
type blogRepository struct {
	db *gorm.DB
}

// NewBlogRepository is the constructor for blogRepository.
func NewBlogRepository(db *gorm.DB) repository.BlogRepository {
	return &blogRepository{db: db}
}

func (repo *blogRepository) Create(ctx context.Context, blog *entity.Blog) error {
	blogM, err := fromBlogDomain(blog)
	if err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).Create(blogM).Error; err != nil {
		return errors.Wrap(err, "failed to create blog post")
	}

	blog.ID = blogM.ID
	blog.CreatedAt = blogM.CreatedAt
	blog.UpdatedAt = blogM.UpdatedAt

	return nil
}

func (repo *blogRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Blog, error) {
	var blogM model.BlogModel
	if err := repo.db.WithContext(ctx).First(&blogM, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBlogNotFound
		}

		return nil, errors.WithStack(err)
	}

	return toBlogDomain(&blogM)
}

func (repo *blogRepository) FindBySlug(ctx context.Context, slug string) (*entity.Blog, error) {
	var blogM model.BlogModel
	if err := repo.db.WithContext(ctx).First(&blogM, "slug = ?", slug).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBlogNotFound
		}

		return nil, errors.WithStack(err)
	}

	return toBlogDomain(&blogM)
}

func (repo *blogRepository) SlugExists(ctx context.Context, slug string, excludeID uuid.UUID) (bool, error) {
	query := repo.db.WithContext(ctx).Model(&model.BlogModel{}).Where("slug = ?", slug)
	if excludeID != uuid.Nil {
		query = query.Where("id <> ?", excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, errors.WithStack(err)
	}

	return count > 0, nil
}

func (repo *blogRepository) List(ctx context.Context, filter repository.BlogListFilter) ([]*entity.Blog, int64, error) {
	query := repo.db.WithContext(ctx).Model(&model.BlogModel{})

	if filter.Status != nil {
		query = query.Where("status = ?", string(*filter.Status))
	}
	if filter.Category != "" {
		member, err := json.Marshal([]string{filter.Category})
		if err != nil {
			return nil, 0, errors.WithStack(err)
		}
		query = query.Where("categories @> ?", datatypes.JSON(member))
	}
	if filter.Tag != "" {
		member, err := json.Marshal([]string{filter.Tag})
		if err != nil {
			return nil, 0, errors.WithStack(err)
		}
		query = query.Where("tags @> ?", datatypes.JSON(member))
	}
	if filter.Search != "" {
		query = query.Where("title ILIKE ?", "%"+filter.Search+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.WithStack(err)
	}

	var models []*model.BlogModel
	if err := query.
		Order("created_at DESC").
		Scopes(paginate(filter.Page, filter.Limit)).
		Find(&models).Error; err != nil {
		return nil, 0, errors.WithStack(err)
	}

	blogs := make([]*entity.Blog, 0, len(models))
	for _, blogM := range models {
		blog, err := toBlogDomain(blogM)
		if err != nil {
			return nil, 0, err
		}
		blogs = append(blogs, blog)
	}

	return blogs, total, nil
}

func (repo *blogRepository) Update(ctx context.Context, blog *entity.Blog) error {
	blogM, err := fromBlogDomain(blog)
	if err != nil {
		return err
	}

	result := repo.db.WithContext(ctx).
		Model(&model.BlogModel{}).
		Where("id = ?", blog.ID).
		Updates(map[string]any{
			"title":          blogM.Title,
			"content":        blogM.Content,
			"author":         blogM.Author,
			"featured_image": blogM.FeaturedImage,
			"categories":     blogM.Categories,
			"tags":           blogM.Tags,
			"slug":           blogM.Slug,
			"status":         blogM.Status,
		})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update blog post")
	}
	if result.RowsAffected == 0 {
		return repository.ErrBlogNotFound
	}

	return nil
}

func (repo *blogRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Delete(&model.BlogModel{}, "id = ?", id)
	if result.Error != nil {
		return errors.WithStack(result.Error)
	}
	if result.RowsAffected == 0 {
		return repository.ErrBlogNotFound
	}

	return nil
}

func (repo *blogRepository) IncrementViews(ctx context.Context, id uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Model(&model.BlogModel{}).
		Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + 1")).Error; err != nil {
		return errors.WithStack(err)
	}

	return nil
}

func (repo *blogRepository) Stats(ctx context.Context) (*repository.BlogStats, error) {
	var row struct {
		Total      int64
		Published  int64
		Drafts     int64
		TotalViews int64
	}

	if err := repo.db.WithContext(ctx).
		Model(&model.BlogModel{}).
		Select(
			"count(*) as total",
			"count(*) FILTER (WHERE status = 'published') as published",
			"count(*) FILTER (WHERE status = 'draft') as drafts",
			"coalesce(sum(views), 0) as total_views",
		).
		Scan(&row).Error; err != nil {
		return nil, errors.WithStack(err)
	}

	return &repository.BlogStats{
		Total:      row.Total,
		Published:  row.Published,
		Drafts:     row.Drafts,
		TotalViews: row.TotalViews,
	}, nil
}

func (repo *blogRepository) TopViewed(ctx context.Context, limit int) ([]*entity.Blog, error) {
	if limit < 1 || limit > 50 {
		limit = 5
	}

	var models []*model.BlogModel
	if err := repo.db.WithContext(ctx).
		Where("status = ?", string(entity.BlogStatusPublished)).
		Order("views DESC").
		Limit(limit).
		Find(&models).Error; err != nil {
		return nil, errors.WithStack(err)
	}

	blogs := make([]*entity.Blog, 0, len(models))
	for _, blogM := range models {
		blog, err := toBlogDomain(blogM)
		if err != nil {
			return nil, err
		}
		blogs = append(blogs, blog)
	}

	return blogs, nil
}

// --- Mapper Functions ---

func toBlogDomain(data *model.BlogModel) (*entity.Blog, error) {
	if data == nil {
		return nil, nil
	}

	categories, err := decodeStringSlice(data.Categories)
	if err != nil {
		return nil, errors.Wrap(err, "failed to decode blog categories")
	}
	tags, err := decodeStringSlice(data.Tags)
	if err != nil {
		return nil, errors.Wrap(err, "failed to decode blog tags")
	}

	return &entity.Blog{
		ID:            data.ID,
		Title:         data.Title,
		Content:       data.Content,
		Author:        data.Author,
		FeaturedImage: data.FeaturedImage,
		Categories:    categories,
		Tags:          tags,
		Slug:          data.Slug,
		Status:        entity.BlogStatus(data.Status),
		Views:         data.Views,
		CreatedBy:     data.CreatedBy,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}, nil
}

func fromBlogDomain(data *entity.Blog) (*model.BlogModel, error) {
	if data == nil {
		return nil, nil
	}

	categories, err := encodeStringSlice(data.Categories)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode blog categories")
	}
	tags, err := encodeStringSlice(data.Tags)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode blog tags")
	}

	return &model.BlogModel{
		ID:            data.ID,
		Title:         data.Title,
		Content:       data.Content,
		Author:        data.Author,
		FeaturedImage: data.FeaturedImage,
		Categories:    categories,
		Tags:          tags,
		Slug:          data.Slug,
		Status:        string(data.Status),
		Views:         data.Views,
		CreatedBy:     data.CreatedBy,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}, nil
}

func decodeStringSlice(data datatypes.JSON) ([]string, error) {
	if len(data) == 0 {
		return nil, nil
	}

	var out []string
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}

	return out, nil
}

func encodeStringSlice(values []string) (datatypes.JSON, error) {
	if values == nil {
		values = []string{}
	}

	out, err := json.Marshal(values)
	if err != nil {
		return nil, err
	}

	return datatypes.JSON(out), nil
}
