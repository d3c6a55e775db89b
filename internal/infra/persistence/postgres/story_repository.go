package postgres

import (
	"context"
	"time"

	"pressroom/internal/domain/entity"
	"pressroom/internal/domain/repository"
	"pressroom/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// storyRepository implements the repository.StoryRepository interface.
type storyRepository struct {
	db *gorm.DB
}

// NewStoryRepository is the constructor for storyRepository.
func NewStoryRepository(db *gorm.DB) repository.StoryRepository {
	return &storyRepository{db: db}
}

func (repo *storyRepository) Create(ctx context.Context, story *entity.Story) error {
	storyM := fromStoryDomain(story)

	if err := repo.db.WithContext(ctx).Create(storyM).Error; err != nil {
		return errors.Wrap(err, "failed to create story")
	}

	story.ID = storyM.ID
	story.CreatedAt = storyM.CreatedAt
	story.UpdatedAt = storyM.UpdatedAt

	return nil
}

func (repo *storyRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Story, error) {
	var storyM model.StoryModel
	if err := repo.db.WithContext(ctx).First(&storyM, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrStoryNotFound
		}

		return nil, errors.WithStack(err)
	}

	return toStoryDomain(&storyM), nil
}

func (repo *storyRepository) List(ctx context.Context, filter repository.StoryListFilter) ([]*entity.Story, int64, error) {
	query := repo.db.WithContext(ctx).Model(&model.StoryModel{})
	query = applyStoryRange(query, filter.From, filter.To)

	if filter.Status != nil {
		query = query.Where("status = ?", string(*filter.Status))
	}
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("title ILIKE ? OR submitter_name ILIKE ?", pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.WithStack(err)
	}

	var models []*model.StoryModel
	if err := query.
		Order("created_at DESC").
		Scopes(paginate(filter.Page, filter.Limit)).
		Find(&models).Error; err != nil {
		return nil, 0, errors.WithStack(err)
	}

	stories := make([]*entity.Story, 0, len(models))
	for _, storyM := range models {
		stories = append(stories, toStoryDomain(storyM))
	}

	return stories, total, nil
}

func (repo *storyRepository) Update(ctx context.Context, story *entity.Story) error {
	storyM := fromStoryDomain(story)

	result := repo.db.WithContext(ctx).
		Model(&model.StoryModel{}).
		Where("id = ?", story.ID).
		Updates(map[string]any{
			"title":            storyM.Title,
			"content":          storyM.Content,
			"category":         storyM.Category,
			"status":           storyM.Status,
			"rejection_reason": storyM.RejectionReason,
			"reviewed_by":      storyM.ReviewedBy,
			"reviewed_at":      storyM.ReviewedAt,
			"published_at":     storyM.PublishedAt,
		})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update story")
	}
	if result.RowsAffected == 0 {
		return repository.ErrStoryNotFound
	}

	return nil
}

func (repo *storyRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Delete(&model.StoryModel{}, "id = ?", id)
	if result.Error != nil {
		return errors.WithStack(result.Error)
	}
	if result.RowsAffected == 0 {
		return repository.ErrStoryNotFound
	}

	return nil
}

func (repo *storyRepository) IncrementViews(ctx context.Context, id uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Model(&model.StoryModel{}).
		Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + 1")).Error; err != nil {
		return errors.WithStack(err)
	}

	return nil
}

func (repo *storyRepository) CountByStatus(ctx context.Context, from, to *time.Time) (map[entity.StoryStatus]int64, error) {
	var rows []struct {
		Status string
		Count  int64
	}

	query := repo.db.WithContext(ctx).Model(&model.StoryModel{})
	query = applyStoryRange(query, from, to)

	if err := query.
		Select("status, count(*) as count").
		Group("status").
		Scan(&rows).Error; err != nil {
		return nil, errors.WithStack(err)
	}

	counts := make(map[entity.StoryStatus]int64, len(rows))
	for _, row := range rows {
		counts[entity.StoryStatus(row.Status)] = row.Count
	}

	return counts, nil
}

func (repo *storyRepository) CountByCategory(ctx context.Context, from, to *time.Time) ([]repository.StoryCategoryCount, error) {
	var rows []struct {
		Category string
		Count    int64
	}

	query := repo.db.WithContext(ctx).Model(&model.StoryModel{})
	query = applyStoryRange(query, from, to)

	if err := query.
		Select("category, count(*) as count").
		Group("category").
		Order("count DESC").
		Scan(&rows).Error; err != nil {
		return nil, errors.WithStack(err)
	}

	counts := make([]repository.StoryCategoryCount, 0, len(rows))
	for _, row := range rows {
		counts = append(counts, repository.StoryCategoryCount{
			Category: row.Category,
			Count:    row.Count,
		})
	}

	return counts, nil
}

// applyStoryRange bounds queries by submission time: inclusive lower bound,
// exclusive upper bound.
func applyStoryRange(query *gorm.DB, from, to *time.Time) *gorm.DB {
	if from != nil {
		query = query.Where("created_at >= ?", *from)
	}
	if to != nil {
		query = query.Where("created_at < ?", *to)
	}

	return query
}

// --- Mapper Functions ---

func toStoryDomain(data *model.StoryModel) *entity.Story {
	if data == nil {
		return nil
	}

	return &entity.Story{
		ID:              data.ID,
		Title:           data.Title,
		Content:         data.Content,
		SubmitterName:   data.SubmitterName,
		SubmitterEmail:  data.SubmitterEmail,
		Category:        data.Category,
		Status:          entity.StoryStatus(data.Status),
		RejectionReason: data.RejectionReason,
		Views:           data.Views,
		ReviewedBy:      data.ReviewedBy,
		ReviewedAt:      data.ReviewedAt,
		PublishedAt:     data.PublishedAt,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

func fromStoryDomain(data *entity.Story) *model.StoryModel {
	if data == nil {
		return nil
	}

	return &model.StoryModel{
		ID:              data.ID,
		Title:           data.Title,
		Content:         data.Content,
		SubmitterName:   data.SubmitterName,
		SubmitterEmail:  data.SubmitterEmail,
		Category:        data.Category,
		Status:          string(data.Status),
		RejectionReason: data.RejectionReason,
		Views:           data.Views,
		ReviewedBy:      data.ReviewedBy,
		ReviewedAt:      data.ReviewedAt,
		PublishedAt:     data.PublishedAt,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}
