// Copyright (c) 2026 Moving Bridge. All rights reserved.

package sec

import "github.com/nakknock/movingbridge/internal/platform/apperr"

// # Authorization Gate
//
// Gate checks are pure queries with no side effects. The transport layer
// decides the user-visible response (JSON error, redirect) for a failure.

// RequireAuthenticated fails with Unauthorized unless the principal is any
// authenticated kind.
func RequireAuthenticated(p Principal) error {
	if !p.IsAuthenticated() {
		return apperr.Unauthorized("Authentication required")
	}
	return nil
}

// RequireRole fails with Forbidden unless the principal is a user account
// whose role meets or exceeds the target role. The fixed admin principal
// satisfies every role.
func RequireRole(p Principal, role Role) error {
	if !p.IsAuthenticated() {
		return apperr.Unauthorized("Authentication required")
	}
	if p.Kind == PrincipalAdmin {
		return nil
	}
	if p.Kind != PrincipalUser || !p.Role.AtLeast(role) {
		return apperr.Forbidden("Insufficient permissions")
	}
	return nil
}

// RequireAdmin fails with Forbidden unless the principal carries admin
// capability (fixed admin or role=admin user).
func RequireAdmin(p Principal) error {
	if !p.IsAuthenticated() {
		return apperr.Unauthorized("Authentication required")
	}
	if !p.IsAdmin() {
		return apperr.Forbidden("Administrator access required")
	}
	return nil
}
