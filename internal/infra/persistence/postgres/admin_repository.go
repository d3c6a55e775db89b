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

// adminRepository implements the repository.AdminRepository interface.
type adminRepository struct {
	db *gorm.DB
}

// NewAdminRepository is the constructor for adminRepository.
func NewAdminRepository(db *gorm.DB) repository.AdminRepository {
	return &adminRepository{db: db}
}

func (repo *adminRepository) Create(ctx context.Context, admin *entity.Admin) error {
	adminM, err := fromAdminDomain(admin)
	if err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).Create(adminM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateEmail
		}

		return errors.Wrap(err, "failed to create admin")
	}

	admin.ID = adminM.ID
	admin.CreatedAt = adminM.CreatedAt
	admin.UpdatedAt = adminM.UpdatedAt

	return nil
}

func (repo *adminRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Admin, error) {
	var adminM model.AdminModel
	if err := repo.db.WithContext(ctx).First(&adminM, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAdminNotFound
		}

		return nil, errors.WithStack(err)
	}

	return toAdminDomain(&adminM)
}

func (repo *adminRepository) FindByEmail(ctx context.Context, email string) (*entity.Admin, error) {
	var adminM model.AdminModel
	if err := repo.db.WithContext(ctx).First(&adminM, "lower(email) = lower(?)", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAdminNotFound
		}

		return nil, errors.WithStack(err)
	}

	return toAdminDomain(&adminM)
}

func (repo *adminRepository) List(ctx context.Context, filter repository.AdminListFilter) ([]*entity.Admin, int64, error) {
	query := repo.db.WithContext(ctx).Model(&model.AdminModel{})

	if filter.Role != nil {
		query = query.Where("role = ?", filter.Role.String())
	}
	if filter.IsActive != nil {
		query = query.Where("is_active = ?", *filter.IsActive)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("name ILIKE ? OR email ILIKE ?", pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.WithStack(err)
	}

	var models []*model.AdminModel
	if err := query.
		Order("created_at DESC").
		Scopes(paginate(filter.Page, filter.Limit)).
		Find(&models).Error; err != nil {
		return nil, 0, errors.WithStack(err)
	}

	admins := make([]*entity.Admin, 0, len(models))
	for _, adminM := range models {
		admin, err := toAdminDomain(adminM)
		if err != nil {
			return nil, 0, err
		}
		admins = append(admins, admin)
	}

	return admins, total, nil
}

func (repo *adminRepository) Update(ctx context.Context, admin *entity.Admin) error {
	adminM, err := fromAdminDomain(admin)
	if err != nil {
		return err
	}

	result := repo.db.WithContext(ctx).
		Model(&model.AdminModel{}).
		Where("id = ?", admin.ID).
		Updates(map[string]any{
			"name":          adminM.Name,
			"email":         adminM.Email,
			"password_hash": adminM.PasswordHash,
			"role":          adminM.Role,
			"permissions":   adminM.Permissions,
			"is_active":     adminM.IsActive,
			"last_login":    adminM.LastLogin,
		})
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return repository.ErrDuplicateEmail
		}

		return errors.Wrap(result.Error, "failed to update admin")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAdminNotFound
	}

	return nil
}

func (repo *adminRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Delete(&model.AdminModel{}, "id = ?", id)
	if result.Error != nil {
		return errors.WithStack(result.Error)
	}
	if result.RowsAffected == 0 {
		return repository.ErrAdminNotFound
	}

	return nil
}

// paginate applies page/limit with sane bounds. Page numbering starts at 1.
func paginate(page, limit int) func(*gorm.DB) *gorm.DB {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	return func(db *gorm.DB) *gorm.DB {
		return db.Offset((page - 1) * limit).Limit(limit)
	}
}

// --- Mapper Functions ---

func toAdminDomain(data *model.AdminModel) (*entity.Admin, error) {
	if data == nil {
		return nil, nil
	}

	var permissions entity.PermissionSet
	if len(data.Permissions) > 0 {
		if err := json.Unmarshal(data.Permissions, &permissions); err != nil {
			return nil, errors.Wrap(err, "failed to decode admin permissions")
		}
	}

	return &entity.Admin{
		ID:           data.ID,
		Name:         data.Name,
		Email:        data.Email,
		PasswordHash: data.PasswordHash,
		Role:         entity.Role(data.Role),
		Permissions:  permissions,
		IsActive:     data.IsActive,
		LastLogin:    data.LastLogin,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}, nil
}

func fromAdminDomain(data *entity.Admin) (*model.AdminModel, error) {
	if data == nil {
		return nil, nil
	}

	permissions, err := json.Marshal(data.Permissions)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode admin permissions")
	}

	return &model.AdminModel{
		ID:           data.ID,
		Name:         data.Name,
		Email:        data.Email,
		PasswordHash: data.PasswordHash,
		Role:         data.Role.String(),
		Permissions:  datatypes.JSON(permissions),
		IsActive:     data.IsActive,
		LastLogin:    data.LastLogin,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}, nil
}
