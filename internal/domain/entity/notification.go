package entity

import (
	"time"

	"github.com/google/uuid"
)

// NotificationType classifies what produced an in-app notification.
type NotificationType string

const (
	// NotificationTypeStorySubmitted is produced when the public submits a story.
	NotificationTypeStorySubmitted NotificationType = "story_submitted"
	// NotificationTypeStoryReviewed is produced when a story leaves review.
	NotificationTypeStoryReviewed NotificationType = "story_reviewed"
	// NotificationTypeAdminCreated is produced when a new admin account is created.
	NotificationTypeAdminCreated NotificationType = "admin_created"
	// NotificationTypeWaitlistSignup is produced on a new waitlist signup.
	NotificationTypeWaitlistSignup NotificationType = "waitlist_signup"
	// NotificationTypeSystem covers everything else.
	NotificationTypeSystem NotificationType = "system"
)

// NotificationPriority orders notifications in the admin UI.
type NotificationPriority string

const (
	NotificationPriorityLow    NotificationPriority = "low"
	NotificationPriorityNormal NotificationPriority = "normal"
	NotificationPriorityHigh   NotificationPriority = "high"
)

// Notification is an in-app message addressed to one admin. Notifications are
// produced as best-effort side effects of system events; their creation never
// blocks or fails the operation that triggered them.
type Notification struct {
	ID          uuid.UUID
	RecipientID uuid.UUID // Admin this notification is addressed to.
	Title       string
	Message     string
	Type        NotificationType
	Priority    NotificationPriority
	Read        bool
	ReadAt      *time.Time // Set once, on the first transition to read.
	RelatedID   *uuid.UUID // Optional reference to the entity that produced the event.
	RelatedType string     // Collection name of RelatedID, e.g. "story".
	ActionURL   string     // Frontend path the notification links to.
	Metadata    map[string]any
	CreatedAt   time.Time
}

// MarkRead flips the read flag, stamping ReadAt only on the first transition.
func (n *Notification) MarkRead(now time.Time) {
	if n.Read {
		return
	}
	n.Read = true
	t := now
	n.ReadAt = &t
}
