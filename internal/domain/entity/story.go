package entity

import (
	"time"

	"github.com/google/uuid"
)

// StoryStatus is the moderation state of a user-submitted story.
type StoryStatus string

const (
	// StoryStatusPending awaits moderator review. Every submission starts here.
	StoryStatusPending StoryStatus = "pending"
	// StoryStatusApproved passed review but is not yet public.
	StoryStatusApproved StoryStatus = "approved"
	// StoryStatusPublished is publicly readable.
	StoryStatusPublished StoryStatus = "published"
	// StoryStatusRejected failed review; RejectionReason explains why.
	StoryStatusRejected StoryStatus = "rejected"
)

// IsValid checks if the StoryStatus is a valid value.
func (s StoryStatus) IsValid() bool {
	switch s {
	case StoryStatusPending, StoryStatusApproved, StoryStatusPublished, StoryStatusRejected:
		return true
	default:
		return false
	}
}

// Story is a story submitted by a member of the public and reviewed by staff.
type Story struct {
	ID              uuid.UUID
	Title           string
	Content         string
	SubmitterName   string
	SubmitterEmail  string // Hidden from API responses unless a permitted admin asks for it.
	Category        string
	Status          StoryStatus
	RejectionReason string
	Views           int64
	ReviewedBy      *uuid.UUID // Admin who performed the first status transition.
	ReviewedAt      *time.Time // Set exactly once, on the first transition away from pending.
	PublishedAt     *time.Time // Set when the story transitions to published.
	CreatedAt       time.Time  // Submission time; analytics date ranges filter on this.
	UpdatedAt       time.Time
}

// Review applies a moderation status transition. ReviewedAt and ReviewedBy are
// stamped only on the first transition away from pending; re-saving with an
// unchanged status leaves them untouched. PublishedAt is stamped when the story
// first becomes published.
func (s *Story) Review(status StoryStatus, reviewer uuid.UUID, reason string, now time.Time) {
	if status == s.Status {
		return
	}

	s.Status = status
	s.RejectionReason = ""
	if status == StoryStatusRejected {
		s.RejectionReason = reason
	}

	if s.ReviewedAt == nil {
		t := now
		s.ReviewedAt = &t
		s.ReviewedBy = &reviewer
	}

	if status == StoryStatusPublished && s.PublishedAt == nil {
		t := now
		s.PublishedAt = &t
	}
}
