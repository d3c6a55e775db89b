// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "slices"

// Role represents the access level an admin account holds.
type Role string

const (
	// RoleSuperAdmin has every permission, including admin management.
	RoleSuperAdmin Role = "super_admin"
	// RoleBlogManager manages blog content and can read analytics.
	RoleBlogManager Role = "blog_manager"
	// RoleStoryModerator reviews user-submitted stories and can read analytics.
	RoleStoryModerator Role = "story_moderator"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleSuperAdmin, RoleBlogManager, RoleStoryModerator:
		return true
	default:
		return false
	}
}

// Roles is a slice of Role for convenience.
type Roles []Role

// Contains checks if the roles slice contains a specific role.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}

// Permission flag names used by the permission-gate middleware.
const (
	PermissionManageBlogs    = "manageBlogs"
	PermissionManageStories  = "manageStories"
	PermissionManageAdmins   = "manageAdmins"
	PermissionManageWaitlist = "manageWaitlist"
	PermissionViewAnalytics  = "viewAnalytics"
)

// PermissionSet is the fixed group of boolean capabilities attached to an admin.
// Flags are always derived from the admin's role; they are never set one by one.
type PermissionSet struct {
	ManageBlogs    bool `json:"manageBlogs"`
	ManageStories  bool `json:"manageStories"`
	ManageAdmins   bool `json:"manageAdmins"`
	ManageWaitlist bool `json:"manageWaitlist"`
	ViewAnalytics  bool `json:"viewAnalytics"`
}

// PermissionsForRole maps a role to its fixed permission set.
// It is a pure function invoked explicitly by the admin create/update paths,
// not a persistence hook, so the mapping can be tested in isolation.
func PermissionsForRole(role Role) PermissionSet {
	switch role {
	case RoleSuperAdmin:
		return PermissionSet{
			ManageBlogs:    true,
			ManageStories:  true,
			ManageAdmins:   true,
			ManageWaitlist: true,
			ViewAnalytics:  true,
		}
	case RoleBlogManager:
		return PermissionSet{
			ManageBlogs:   true,
			ViewAnalytics: true,
		}
	case RoleStoryModerator:
		return PermissionSet{
			ManageStories: true,
			ViewAnalytics: true,
		}
	default:
		return PermissionSet{}
	}
}

// Has reports whether the named flag is set. Unknown names report false.
func (p PermissionSet) Has(flag string) bool {
	switch flag {
	case PermissionManageBlogs:
		return p.ManageBlogs
	case PermissionManageStories:
		return p.ManageStories
	case PermissionManageAdmins:
		return p.ManageAdmins
	case PermissionManageWaitlist:
		return p.ManageWaitlist
	case PermissionViewAnalytics:
		return p.ViewAnalytics
	default:
		return false
	}
}
