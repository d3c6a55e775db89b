// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"pressroom/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for admin persistence.
var (
	// ErrAdminNotFound is returned when no admin matches the lookup.
	ErrAdminNotFound = errors.New("admin not found")
	// ErrDuplicateEmail is returned when the unique email index is violated.
	ErrDuplicateEmail = errors.New("email already registered")
)

// AdminListFilter narrows and paginates admin listings.
type AdminListFilter struct {
	Role     *entity.Role
	IsActive *bool
	Search   string // Matches name or email, case-insensitive substring.
	Page     int
	Limit    int
}

// AdminRepository persists admin accounts.
type AdminRepository interface {
	// Create persists a new admin. Violating the unique email index yields ErrDuplicateEmail.
	Create(ctx context.Context, admin *entity.Admin) error

	// FindByID retrieves an admin by ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Admin, error)

	// FindByEmail retrieves an admin by their unique email.
	FindByEmail(ctx context.Context, email string) (*entity.Admin, error)

	// List returns a page of admins matching the filter plus the total match count.
	List(ctx context.Context, filter AdminListFilter) ([]*entity.Admin, int64, error)

	// Update persists changes to an existing admin.
	Update(ctx context.Context, admin *entity.Admin) error

	// Delete removes an admin permanently. Reserved for super_admin action;
	// day-to-day removal is a soft disable via IsActive.
	Delete(ctx context.Context, id uuid.UUID) error
}
