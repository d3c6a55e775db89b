package postgres

import (
	"context"
	"encoding/json"
	"time"

	"pressroom/internal/domain/entity"
	"pressroom/internal/domain/repository"
	"pressroom/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// notificationRepository implements the repository.NotificationRepository interface.
type notificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository is the constructor for notificationRepository.
func NewNotificationRepository(db *gorm.DB) repository.NotificationRepository {
	return &notificationRepository{db: db}
}

func (repo *notificationRepository) Create(ctx context.Context, notification *entity.Notification) error {
	notificationM, err := fromNotificationDomain(notification)
	if err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).Create(notificationM).Error; err != nil {
		return errors.Wrap(err, "failed to create notification")
	}

	notification.ID = notificationM.ID
	notification.CreatedAt = notificationM.CreatedAt

	return nil
}

func (repo *notificationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Notification, error) {
	var notificationM model.NotificationModel
	if err := repo.db.WithContext(ctx).First(&notificationM, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotificationNotFound
		}

		return nil, errors.WithStack(err)
	}

	return toNotificationDomain(&notificationM)
}

func (repo *notificationRepository) List(ctx context.Context, filter repository.NotificationListFilter) ([]*entity.Notification, int64, error) {
	query := repo.db.WithContext(ctx).
		Model(&model.NotificationModel{}).
		Where("recipient_id = ?", filter.RecipientID)

	if filter.UnreadOnly {
		query = query.Where("read = false")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.WithStack(err)
	}

	var models []*model.NotificationModel
	if err := query.
		Order("created_at DESC").
		Scopes(paginate(filter.Page, filter.Limit)).
		Find(&models).Error; err != nil {
		return nil, 0, errors.WithStack(err)
	}

	notifications := make([]*entity.Notification, 0, len(models))
	for _, notificationM := range models {
		notification, err := toNotificationDomain(notificationM)
		if err != nil {
			return nil, 0, err
		}
		notifications = append(notifications, notification)
	}

	return notifications, total, nil
}

func (repo *notificationRepository) Update(ctx context.Context, notification *entity.Notification) error {
	result := repo.db.WithContext(ctx).
		Model(&model.NotificationModel{}).
		Where("id = ?", notification.ID).
		Updates(map[string]any{
			"read":    notification.Read,
			"read_at": notification.ReadAt,
		})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update notification")
	}
	if result.RowsAffected == 0 {
		return repository.ErrNotificationNotFound
	}

	return nil
}

func (repo *notificationRepository) MarkAllRead(ctx context.Context, recipientID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Model(&model.NotificationModel{}).
		Where("recipient_id = ? AND read = false", recipientID).
		Updates(map[string]any{
			"read":    true,
			"read_at": time.Now(),
		}).Error; err != nil {
		return errors.WithStack(err)
	}

	return nil
}

func (repo *notificationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Delete(&model.NotificationModel{}, "id = ?", id)
	if result.Error != nil {
		return errors.WithStack(result.Error)
	}
	if result.RowsAffected == 0 {
		return repository.ErrNotificationNotFound
	}

	return nil
}

func (repo *notificationRepository) CountUnread(ctx context.Context, recipientID uuid.UUID) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.NotificationModel{}).
		Where("recipient_id = ? AND read = false", recipientID).
		Count(&count).Error; err != nil {
		return 0, errors.WithStack(err)
	}

	return count, nil
}

// --- Mapper Functions ---

func toNotificationDomain(data *model.NotificationModel) (*entity.Notification, error) {
	if data == nil {
		return nil, nil
	}

	var metadata map[string]any
	if len(data.Metadata) > 0 {
		if err := json.Unmarshal(data.Metadata, &metadata); err != nil {
			return nil, errors.Wrap(err, "failed to decode notification metadata")
		}
	}

	return &entity.Notification{
		ID:          data.ID,
		RecipientID: data.RecipientID,
		Title:       data.Title,
		Message:     data.Message,
		Type:        entity.NotificationType(data.Type),
		Priority:    entity.NotificationPriority(data.Priority),
		Read:        data.Read,
		ReadAt:      data.ReadAt,
		RelatedID:   data.RelatedID,
		RelatedType: data.RelatedType,
		ActionURL:   data.ActionURL,
		Metadata:    metadata,
		CreatedAt:   data.CreatedAt,
	}, nil
}

func fromNotificationDomain(data *entity.Notification) (*model.NotificationModel, error) {
	if data == nil {
		return nil, nil
	}

	var metadata datatypes.JSON
	if data.Metadata != nil {
		encoded, err := json.Marshal(data.Metadata)
		if err != nil {
			return nil, errors.Wrap(err, "failed to encode notification metadata")
		}
		metadata = datatypes.JSON(encoded)
	}

	return &model.NotificationModel{
		ID:          data.ID,
		RecipientID: data.RecipientID,
		Title:       data.Title,
		Message:     data.Message,
		Type:        string(data.Type),
		Priority:    string(data.Priority),
		Read:        data.Read,
		ReadAt:      data.ReadAt,
		RelatedID:   data.RelatedID,
		RelatedType: data.RelatedType,
		ActionURL:   data.ActionURL,
		Metadata:    metadata,
		CreatedAt:   data.CreatedAt,
	}, nil
}
