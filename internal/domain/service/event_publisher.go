package service

import (
	"context"

	"github.com/google/uuid"
)

// EventType names a domain event that fans out best-effort side effects.
type EventType string

const (
	// EventStorySubmitted fires when the public submits a new story.
	EventStorySubmitted EventType = "story.submitted"
	// EventStoryReviewed fires when a story leaves pending review.
	EventStoryReviewed EventType = "story.reviewed"
	// EventAdminCreated fires when a new admin account is created.
	EventAdminCreated EventType = "admin.created"
	// EventWaitlistSignup fires on a new waitlist signup.
	EventWaitlistSignup EventType = "waitlist.signup"
	// EventWaitlistNotified fires when a waitlist entry is invited.
	EventWaitlistNotified EventType = "waitlist.notified"
	// EventPasswordResetRequested fires when an admin asks for a reset link.
	EventPasswordResetRequested EventType = "password.reset_requested"
)

// Event is the payload handed to subscribers. Related points at the entity
// that produced the event; Fields carries event-specific scalars.
type Event struct {
	Type        EventType
	RelatedID   uuid.UUID
	RelatedType string
	Fields      map[string]string
}

// EventPublisher decouples best-effort side effects (email dispatch, in-app
// notification creation) from the request path that produces them. Publish
// must never fail the caller: delivery errors are the publisher's to log and
// swallow, which makes the log-and-continue failure mode structural instead
// of relying on each call site wrapping the call.
type EventPublisher interface {
	Publish(ctx context.Context, event *Event)

	// Close drains in-flight deliveries during shutdown.
	Close() error
}
