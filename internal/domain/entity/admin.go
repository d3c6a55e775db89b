package entity

import (
	"time"

	"github.com/google/uuid"
)

// Admin is an administrative account. The password is stored only as a bcrypt
// hash and never leaves the persistence boundary in API responses.
type Admin struct {
	ID           uuid.UUID     // The unique ID for this admin account.
	Name         string        // Display name.
	Email        string        // Login identifier, unique across all admins.
	PasswordHash string        // bcrypt hash of the password; never serialized.
	Role         Role          // Access level; permission flags are derived from it.
	Permissions  PermissionSet // Flags derived from Role via PermissionsForRole.
	IsActive     bool          // Inactive admins cannot authenticate. Soft-disable instead of delete.
	LastLogin    *time.Time    // Set on every successful login; nil until the first one.
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ChangeRole sets a new role and deterministically overwrites every permission
// flag with the fixed mapping for that role.
func (a *Admin) ChangeRole(role Role) {
	a.Role = role
	a.Permissions = PermissionsForRole(role)
}
