package events

import (
	"context"
	"fmt"
	"strings"

	"pressroom/config"
	"pressroom/internal/domain/entity"
	"pressroom/internal/domain/repository"
	"pressroom/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// recipientPageSize bounds the admin lookup when fanning a notification out.
const recipientPageSize = 200

// notificationSubscriber turns domain events into in-app notifications for
// the admins permitted to act on them.
type notificationSubscriber struct {
	admins          repository.AdminRepository
	notifications   repository.NotificationRepository
	frontendBaseURL string
}

// NewNotificationSubscriber builds the in-app notification fan-out.
func NewNotificationSubscriber(
	cfg *config.Config,
	admins repository.AdminRepository,
	notifications repository.NotificationRepository,
) Subscriber {
	return &notificationSubscriber{
		admins:          admins,
		notifications:   notifications,
		frontendBaseURL: strings.TrimSuffix(cfg.Frontend.BaseURL, "/"),
	}
}

func (s *notificationSubscriber) Name() string {
	return "notifications"
}

func (s *notificationSubscriber) Handle(ctx context.Context, event *service.Event) error {
	switch event.Type {
	case service.EventStorySubmitted:
		return s.fanOut(ctx, entity.PermissionManageStories, &entity.Notification{
			Title:    "New story submitted",
			Message:  fmt.Sprintf("%q by %s is waiting for review", event.Fields["title"], event.Fields["submitterName"]),
			Type:     entity.NotificationTypeStorySubmitted,
			Priority: entity.NotificationPriorityNormal,
		}, event)

	case service.EventStoryReviewed:
		return s.fanOut(ctx, entity.PermissionManageStories, &entity.Notification{
			Title:    "Story reviewed",
			Message:  fmt.Sprintf("%q is now %s", event.Fields["title"], event.Fields["status"]),
			Type:     entity.NotificationTypeStoryReviewed,
			Priority: entity.NotificationPriorityLow,
		}, event)

	case service.EventAdminCreated:
		return s.fanOut(ctx, entity.PermissionManageAdmins, &entity.Notification{
			Title:    "Admin account created",
			Message:  fmt.Sprintf("%s (%s) was added as %s", event.Fields["name"], event.Fields["email"], event.Fields["role"]),
			Type:     entity.NotificationTypeAdminCreated,
			Priority: entity.NotificationPriorityHigh,
		}, event)

	case service.EventWaitlistSignup:
		return s.fanOut(ctx, entity.PermissionManageWaitlist, &entity.Notification{
			Title:    "New waitlist signup",
			Message:  fmt.Sprintf("%s %s joined the waitlist", event.Fields["firstName"], event.Fields["lastName"]),
			Type:     entity.NotificationTypeWaitlistSignup,
			Priority: entity.NotificationPriorityNormal,
		}, event)
	}

	// Other event types carry no in-app fan-out.
	return nil
}

// fanOut creates one notification per active admin holding the permission.
// Creation failures for individual recipients are collected so the rest of
// the fan-out still happens.
func (s *notificationSubscriber) fanOut(ctx context.Context, permission string, template *entity.Notification, event *service.Event) error {
	active := true
	admins, _, err := s.admins.List(ctx, repository.AdminListFilter{
		IsActive: &active,
		Page:     1,
		Limit:    recipientPageSize,
	})
	if err != nil {
		return errors.Wrap(err, "failed to list notification recipients")
	}

	var failed int
	for _, admin := range admins {
		if !admin.Permissions.Has(permission) {
			continue
		}

		notification := &entity.Notification{
			ID:          uuid.New(),
			RecipientID: admin.ID,
			Title:       template.Title,
			Message:     template.Message,
			Type:        template.Type,
			Priority:    template.Priority,
			RelatedType: event.RelatedType,
			ActionURL:   s.actionURL(event),
		}
		if event.RelatedID != uuid.Nil {
			related := event.RelatedID
			notification.RelatedID = &related
		}
		if len(event.Fields) > 0 {
			notification.Metadata = make(map[string]any, len(event.Fields))
			for k, v := range event.Fields {
				notification.Metadata[k] = v
			}
		}

		if err := s.notifications.Create(ctx, notification); err != nil {
			failed++
		}
	}

	if failed > 0 {
		return errors.Errorf("failed to create %d notification(s)", failed)
	}

	return nil
}

func (s *notificationSubscriber) actionURL(event *service.Event) string {
	if event.RelatedType == "" || event.RelatedID == uuid.Nil {
		return ""
	}

	switch event.RelatedType {
	case "story":
		return fmt.Sprintf("%s/admin/stories/%s", s.frontendBaseURL, event.RelatedID)
	case "admin":
		return fmt.Sprintf("%s/admin/admins/%s", s.frontendBaseURL, event.RelatedID)
	case "waitlist":
		return fmt.Sprintf("%s/admin/waitlist/%s", s.frontendBaseURL, event.RelatedID)
	default:
		return ""
	}
}
