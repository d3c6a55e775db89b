package usecase

import (
	"context"

	"pressroom/internal/domain/entity"
	"pressroom/internal/domain/repository"

	"github.com/google/uuid"
)

// NotificationListOutput returns one page of the recipient's notifications,
// the total match count and the unread badge count.
type NotificationListOutput struct {
	Notifications []*entity.Notification
	Total         int64
	Unread        int64
}

// NotificationUsecase defines the interface for in-app notification reads and
// acknowledgements. Every operation is scoped to the authenticated recipient.
type NotificationUsecase interface {
	List(ctx context.Context, filter repository.NotificationListFilter) (*NotificationListOutput, error)

	// MarkRead marks one notification as read. Notifications addressed to a
	// different admin are reported as not found, not forbidden.
	MarkRead(ctx context.Context, recipientID, id uuid.UUID) (*entity.Notification, error)

	// MarkAllRead marks every unread notification of the recipient.
	MarkAllRead(ctx context.Context, recipientID uuid.UUID) error

	Delete(ctx context.Context, recipientID, id uuid.UUID) error
}
