package repository

import (
	"context"

	"pressroom/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrNotificationNotFound is returned when no notification matches the lookup.
var ErrNotificationNotFound = errors.New("notification not found")

// NotificationListFilter narrows and paginates a recipient's notifications.
type NotificationListFilter struct {
	RecipientID uuid.UUID
	UnreadOnly  bool
	Page        int
	Limit       int
}

// NotificationRepository persists in-app notifications.
type NotificationRepository interface {
	Create(ctx context.Context, notification *entity.Notification) error

	// FindByID retrieves a notification; callers verify recipient ownership.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Notification, error)

	List(ctx context.Context, filter NotificationListFilter) ([]*entity.Notification, int64, error)

	Update(ctx context.Context, notification *entity.Notification) error

	// MarkAllRead marks every unread notification of the recipient as read.
	MarkAllRead(ctx context.Context, recipientID uuid.UUID) error

	Delete(ctx context.Context, id uuid.UUID) error

	// CountUnread returns the recipient's unread badge count.
	CountUnread(ctx context.Context, recipientID uuid.UUID) (int64, error)
}
