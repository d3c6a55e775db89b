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
	"gorm.io/gorm/clause"
)

// refreshTokenRepository implements the repository.RefreshTokenRepository interface.
type refreshTokenRepository struct {
	db *gorm.DB
}

// NewRefreshTokenRepository is the constructor for refreshTokenRepository.
func NewRefreshTokenRepository(db *gorm.DB) repository.RefreshTokenRepository {
	return &refreshTokenRepository{db: db}
}

// Upsert replaces the admin's session in one statement. The unique index on
// admin_id makes ON CONFLICT the whole one-session-per-admin story: concurrent
// logins cannot leave two live rows behind.
func (repo *refreshTokenRepository) Upsert(ctx context.Context, adminID uuid.UUID, tokenHash string, expiresAt time.Time) error {
	tokenM := &model.RefreshTokenModel{
		ID:        uuid.New(),
		AdminID:   adminID,
		TokenHash: tokenHash,
		ExpiresAt: expiresAt,
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "admin_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"token_hash", "expires_at", "created_at"}),
		}).
		Create(tokenM).Error; err != nil {
		return errors.Wrap(err, "failed to persist refresh token")
	}

	return nil
}

func (repo *refreshTokenRepository) FindByHash(ctx context.Context, tokenHash string) (*entity.RefreshToken, error) {
	var tokenM model.RefreshTokenModel
	if err := repo.db.WithContext(ctx).First(&tokenM, "token_hash = ?", tokenHash).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRefreshTokenNotFound
		}

		return nil, errors.WithStack(err)
	}

	token := toRefreshTokenDomain(&tokenM)
	if token.Expired(time.Now()) {
		return nil, repository.ErrRefreshTokenExpired
	}

	return token, nil
}

func (repo *refreshTokenRepository) DeleteByHash(ctx context.Context, tokenHash string) error {
	result := repo.db.WithContext(ctx).Delete(&model.RefreshTokenModel{}, "token_hash = ?", tokenHash)
	if result.Error != nil {
		return errors.WithStack(result.Error)
	}
	if result.RowsAffected == 0 {
		return repository.ErrRefreshTokenNotFound
	}

	return nil
}

func (repo *refreshTokenRepository) DeleteByAdminID(ctx context.Context, adminID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Delete(&model.RefreshTokenModel{}, "admin_id = ?", adminID).Error; err != nil {
		return errors.WithStack(err)
	}

	return nil
}

func (repo *refreshTokenRepository) DeleteExpired(ctx context.Context) error {
	if err := repo.db.WithContext(ctx).
		Delete(&model.RefreshTokenModel{}, "expires_at < ?", time.Now()).Error; err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// passwordResetTokenRepository implements the repository.PasswordResetTokenRepository interface.
type passwordResetTokenRepository struct {
	db *gorm.DB
}

// NewPasswordResetTokenRepository is the constructor for passwordResetTokenRepository.
func NewPasswordResetTokenRepository(db *gorm.DB) repository.PasswordResetTokenRepository {
	return &passwordResetTokenRepository{db: db}
}

// Create stores a new reset token. Outstanding tokens for the same admin are
// removed first so only the most recent reset link works.
func (repo *passwordResetTokenRepository) Create(ctx context.Context, token *entity.PasswordResetToken) error {
	return repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&model.PasswordResetTokenModel{}, "admin_id = ?", token.AdminID).Error; err != nil {
			return errors.WithStack(err)
		}

		tokenM := fromPasswordResetTokenDomain(token)
		if err := tx.Create(tokenM).Error; err != nil {
			return errors.Wrap(err, "failed to persist password reset token")
		}

		token.ID = tokenM.ID
		token.CreatedAt = tokenM.CreatedAt

		return nil
	})
}

func (repo *passwordResetTokenRepository) FindByHash(ctx context.Context, tokenHash string) (*entity.PasswordResetToken, error) {
	var tokenM model.PasswordResetTokenModel
	if err := repo.db.WithContext(ctx).First(&tokenM, "token_hash = ?", tokenHash).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrResetTokenNotFound
		}

		return nil, errors.WithStack(err)
	}

	token := toPasswordResetTokenDomain(&tokenM)
	if token.Expired(time.Now()) {
		return nil, repository.ErrResetTokenExpired
	}

	return token, nil
}

func (repo *passwordResetTokenRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Delete(&model.PasswordResetTokenModel{}, "id = ?", id)
	if result.Error != nil {
		return errors.WithStack(result.Error)
	}
	if result.RowsAffected == 0 {
		return repository.ErrResetTokenNotFound
	}

	return nil
}

func (repo *passwordResetTokenRepository) DeleteExpired(ctx context.Context) error {
	if err := repo.db.WithContext(ctx).
		Delete(&model.PasswordResetTokenModel{}, "expires_at < ?", time.Now()).Error; err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// --- Mapper Functions ---

func toRefreshTokenDomain(data *model.RefreshTokenModel) *entity.RefreshToken {
	if data == nil {
		return nil
	}

	return &entity.RefreshToken{
		ID:        data.ID,
		AdminID:   data.AdminID,
		TokenHash: data.TokenHash,
		ExpiresAt: data.ExpiresAt,
		CreatedAt: data.CreatedAt,
	}
}

func toPasswordResetTokenDomain(data *model.PasswordResetTokenModel) *entity.PasswordResetToken {
	if data == nil {
		return nil
	}

	return &entity.PasswordResetToken{
		ID:        data.ID,
		AdminID:   data.AdminID,
		TokenHash: data.TokenHash,
		ExpiresAt: data.ExpiresAt,
		CreatedAt: data.CreatedAt,
	}
}

func fromPasswordResetTokenDomain(data *entity.PasswordResetToken) *model.PasswordResetTokenModel {
	if data == nil {
		return nil
	}

	return &model.PasswordResetTokenModel{
		ID:        data.ID,
		AdminID:   data.AdminID,
		TokenHash: data.TokenHash,
		ExpiresAt: data.ExpiresAt,
		CreatedAt: data.CreatedAt,
	}
}
