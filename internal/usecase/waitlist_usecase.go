package usecase

import (
	"context"

	"pressroom/internal/domain/entity"
	"pressroom/internal/domain/repository"

	"github.com/google/uuid"
)

// WaitlistSignupInput defines a public waitlist signup. IPAddress and
// UserAgent are captured from the request by the handler.
type WaitlistSignupInput struct {
	FirstName string
	LastName  string
	Email     string
	IPAddress string
	UserAgent string
}

// WaitlistListOutput returns one page of entries plus the total match count.
type WaitlistListOutput struct {
	Entries []*entity.WaitlistEntry
	Total   int64
}

// WaitlistUsecase defines the interface for waitlist operations.
type WaitlistUsecase interface {
	// Signup registers a public signup. A duplicate email is rejected with a
	// user-facing error.
	Signup(ctx context.Context, input WaitlistSignupInput) (*entity.WaitlistEntry, error)

	Get(ctx context.Context, id uuid.UUID) (*entity.WaitlistEntry, error)

	List(ctx context.Context, filter repository.WaitlistListFilter) (*WaitlistListOutput, error)

	// AdvanceStatus moves an entry along pending → notified → converted,
	// stamping the matching timestamp on first arrival. Advancing to notified
	// triggers the invitation email.
	AdvanceStatus(ctx context.Context, id uuid.UUID, status entity.WaitlistStatus) (*entity.WaitlistEntry, error)

	Delete(ctx context.Context, id uuid.UUID) error
}
