package postgres

import (
	"context"

	"pressroom/internal/domain/entity"
	"pressroom/internal/domain/repository"
	"pressroom/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// waitlistRepository implements the repository.WaitlistRepository interface.
type waitlistRepository struct {
	db *gorm.DB
}

// NewWaitlistRepository is the constructor for waitlistRepository.
func NewWaitlistRepository(db *gorm.DB) repository.WaitlistRepository {
	return &waitlistRepository{db: db}
}

func (repo *waitlistRepository) Create(ctx context.Context, entry *entity.WaitlistEntry) error {
	entryM := fromWaitlistDomain(entry)

	if err := repo.db.WithContext(ctx).Create(entryM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateWaitlistEmail
		}

		return errors.Wrap(err, "failed to create waitlist entry")
	}

	entry.ID = entryM.ID
	entry.CreatedAt = entryM.CreatedAt
	entry.UpdatedAt = entryM.UpdatedAt

	return nil
}

func (repo *waitlistRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.WaitlistEntry, error) {
	var entryM model.WaitlistModel
	if err := repo.db.WithContext(ctx).First(&entryM, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrWaitlistNotFound
		}

		return nil, errors.WithStack(err)
	}

	return toWaitlistDomain(&entryM), nil
}

func (repo *waitlistRepository) List(ctx context.Context, filter repository.WaitlistListFilter) ([]*entity.WaitlistEntry, int64, error) {
	query := repo.db.WithContext(ctx).Model(&model.WaitlistModel{})

	if filter.Status != nil {
		query = query.Where("status = ?", string(*filter.Status))
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("first_name ILIKE ? OR last_name ILIKE ? OR email ILIKE ?", pattern, pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.WithStack(err)
	}

	var models []*model.WaitlistModel
	if err := query.
		Order("created_at DESC").
		Scopes(paginate(filter.Page, filter.Limit)).
		Find(&models).Error; err != nil {
		return nil, 0, errors.WithStack(err)
	}

	entries := make([]*entity.WaitlistEntry, 0, len(models))
	for _, entryM := range models {
		entries = append(entries, toWaitlistDomain(entryM))
	}

	return entries, total, nil
}

func (repo *waitlistRepository) Update(ctx context.Context, entry *entity.WaitlistEntry) error {
	entryM := fromWaitlistDomain(entry)

	result := repo.db.WithContext(ctx).
		Model(&model.WaitlistModel{}).
		Where("id = ?", entry.ID).
		Updates(map[string]any{
			"first_name":   entryM.FirstName,
			"last_name":    entryM.LastName,
			"email":        entryM.Email,
			"status":       entryM.Status,
			"notified_at":  entryM.NotifiedAt,
			"converted_at": entryM.ConvertedAt,
		})
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return repository.ErrDuplicateWaitlistEmail
		}

		return errors.Wrap(result.Error, "failed to update waitlist entry")
	}
	if result.RowsAffected == 0 {
		return repository.ErrWaitlistNotFound
	}

	return nil
}

func (repo *waitlistRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Delete(&model.WaitlistModel{}, "id = ?", id)
	if result.Error != nil {
		return errors.WithStack(result.Error)
	}
	if result.RowsAffected == 0 {
		return repository.ErrWaitlistNotFound
	}

	return nil
}

func (repo *waitlistRepository) CountByStatus(ctx context.Context) (map[entity.WaitlistStatus]int64, error) {
	var rows []struct {
		Status string
		Count  int64
	}

	if err := repo.db.WithContext(ctx).
		Model(&model.WaitlistModel{}).
		Select("status, count(*) as count").
		Group("status").
		Scan(&rows).Error; err != nil {
		return nil, errors.WithStack(err)
	}

	counts := make(map[entity.WaitlistStatus]int64, len(rows))
	for _, row := range rows {
		counts[entity.WaitlistStatus(row.Status)] = row.Count
	}

	return counts, nil
}

// --- Mapper Functions ---

func toWaitlistDomain(data *model.WaitlistModel) *entity.WaitlistEntry {
	if data == nil {
		return nil
	}

	return &entity.WaitlistEntry{
		ID:          data.ID,
		FirstName:   data.FirstName,
		LastName:    data.LastName,
		Email:       data.Email,
		Status:      entity.WaitlistStatus(data.Status),
		NotifiedAt:  data.NotifiedAt,
		ConvertedAt: data.ConvertedAt,
		IPAddress:   data.IPAddress,
		UserAgent:   data.UserAgent,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromWaitlistDomain(data *entity.WaitlistEntry) *model.WaitlistModel {
	if data == nil {
		return nil
	}

	return &model.WaitlistModel{
		ID:          data.ID,
		FirstName:   data.FirstName,
		LastName:    data.LastName,
		Email:       data.Email,
		Status:      string(data.Status),
		NotifiedAt:  data.NotifiedAt,
		ConvertedAt: data.ConvertedAt,
		IPAddress:   data.IPAddress,
		UserAgent:   data.UserAgent,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
