package repository

import (
	"context"

	"pressroom/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for waitlist persistence.
var (
	// ErrWaitlistNotFound is returned when no entry matches the lookup.
	ErrWaitlistNotFound = errors.New("waitlist entry not found")
	// ErrDuplicateWaitlistEmail is returned when the unique email index is violated.
	ErrDuplicateWaitlistEmail = errors.New("waitlist email already registered")
)

// WaitlistListFilter narrows and paginates waitlist listings.
type WaitlistListFilter struct {
	Status *entity.WaitlistStatus
	Search string // Matches name or email, case-insensitive substring.
	Page   int
	Limit  int
}

// WaitlistRepository persists waitlist signups.
type WaitlistRepository interface {
	// Create persists a new signup. Violating the unique email index yields
	// ErrDuplicateWaitlistEmail.
	Create(ctx context.Context, entry *entity.WaitlistEntry) error

	FindByID(ctx context.Context, id uuid.UUID) (*entity.WaitlistEntry, error)

	List(ctx context.Context, filter WaitlistListFilter) ([]*entity.WaitlistEntry, int64, error)

	Update(ctx context.Context, entry *entity.WaitlistEntry) error

	Delete(ctx context.Context, id uuid.UUID) error

	// CountByStatus aggregates entries per status for the analytics overview.
	CountByStatus(ctx context.Context) (map[entity.WaitlistStatus]int64, error)
}
