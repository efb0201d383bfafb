// Copyright (c) 2026 Moving Bridge. All rights reserved.

package sec

// # User Roles

// Role represents the authorization level granted to a user account.
type Role string

const (
	// Unrestricted access: notice management, admin dashboard
	RoleAdmin Role = "admin"

	// Default role for standard registered users
	RoleUser Role = "user"
)

// # Role Hierarchy

// AtLeast checks if the current role meets or exceeds the required target role.
func (r Role) AtLeast(target Role) bool {
	return r.level() >= target.level()
}

// level maps a role to a numeric hierarchy level for comparison logic.
func (r Role) level() int {

	// Linear scale leaves room for future intermediate roles (e.g. moderator)
	switch r {
	case RoleAdmin:
		return 40
	case RoleUser:
		return 10
	default:
		return 0
	}
}
