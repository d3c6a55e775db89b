package entity

import (
	"time"

	"github.com/google/uuid"
)

// WaitlistStatus tracks how far a signup has progressed.
type WaitlistStatus string

const (
	// WaitlistStatusPending is the initial state after signup.
	WaitlistStatusPending WaitlistStatus = "pending"
	// WaitlistStatusNotified means the person was invited by email.
	WaitlistStatusNotified WaitlistStatus = "notified"
	// WaitlistStatusConverted means the person became a user.
	WaitlistStatusConverted WaitlistStatus = "converted"
)

// IsValid checks if the WaitlistStatus is a valid value.
func (s WaitlistStatus) IsValid() bool {
	switch s {
	case WaitlistStatusPending, WaitlistStatusNotified, WaitlistStatusConverted:
		return true
	default:
		return false
	}
}

// WaitlistEntry is a public signup for the launch waitlist. Email is unique.
type WaitlistEntry struct {
	ID          uuid.UUID
	FirstName   string
	LastName    string
	Email       string
	Status      WaitlistStatus
	NotifiedAt  *time.Time // Stamped when status first advances to notified.
	ConvertedAt *time.Time // Stamped when status first advances to converted.
	IPAddress   string     // Captured from the signup request.
	UserAgent   string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// AdvanceStatus moves the entry to a new status, stamping the matching
// timestamp the first time each state is reached.
func (w *WaitlistEntry) AdvanceStatus(status WaitlistStatus, now time.Time) {
	w.Status = status
	switch status {
	case WaitlistStatusNotified:
		if w.NotifiedAt == nil {
			t := now
			w.NotifiedAt = &t
		}
	case WaitlistStatusConverted:
		if w.ConvertedAt == nil {
			t := now
			w.ConvertedAt = &t
		}
	case WaitlistStatusPending:
	}
}
