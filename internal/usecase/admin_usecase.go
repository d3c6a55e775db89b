package usecase

import (
	"context"

	"pressroom/internal/domain/entity"
	"pressroom/internal/domain/repository"

	"github.com/google/uuid"
)

// CreateAdminInput defines the data required to create an admin account.
type CreateAdminInput struct {
	Name     string
	Email    string
	Password string
	Role     entity.Role
}

// UpdateAdminInput defines the mutable fields of an admin account. Nil fields
// are left unchanged. Changing Role rewrites the permission flags.
type UpdateAdminInput struct {
	Name     *string
	Email    *string
	Role     *entity.Role
	IsActive *bool
}

// AdminListOutput returns one page of admins plus the total match count.
type AdminListOutput struct {
	Admins []*entity.Admin
	Total  int64
}

// AdminUsecase defines the interface for admin account management.
// All operations require the manageAdmins permission; Update and Delete
// additionally reject the caller's own account.
type AdminUsecase interface {
	Create(ctx context.Context, input CreateAdminInput) (*entity.Admin, error)

	Get(ctx context.Context, id uuid.UUID) (*entity.Admin, error)

	List(ctx context.Context, filter repository.AdminListFilter) (*AdminListOutput, error)

	// Update mutates an admin account. actorID is the authenticated caller;
	// targeting oneself is rejected so an admin cannot demote or disable
	// their own account mid-session.
	Update(ctx context.Context, actorID, id uuid.UUID, input UpdateAdminInput) (*entity.Admin, error)

	// Delete removes an admin account, with the same self-targeting guard.
	Delete(ctx context.Context, actorID, id uuid.UUID) error
}
