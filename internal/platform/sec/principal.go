// Copyright (c) 2026 Moving Bridge. All rights reserved.

package sec

// # Principal Model

// PrincipalKind discriminates the three authenticated account types plus
// the anonymous state.
type PrincipalKind string

const (
	PrincipalAnonymous PrincipalKind = "anonymous"
	PrincipalUser      PrincipalKind = "user"
	PrincipalCompany   PrincipalKind = "company"
	PrincipalAdmin     PrincipalKind = "admin"
)

// Principal identifies who is making a request. It is resolved from the
// session token by middleware and carried in the request context. A session
// is bound to exactly one principal at a time.
type Principal struct {
	Kind        PrincipalKind `json:"kind"`
	ID          string        `json:"id,omitempty"`
	DisplayName string        `json:"display_name,omitempty"`
	Role        Role          `json:"role,omitempty"`
}

// Anonymous returns the unauthenticated principal.
func Anonymous() Principal {
	return Principal{Kind: PrincipalAnonymous}
}

// IsAuthenticated reports whether the principal is any authenticated kind.
func (p Principal) IsAuthenticated() bool {
	return p.Kind == PrincipalUser || p.Kind == PrincipalCompany || p.Kind == PrincipalAdmin
}

// IsAdmin reports whether the principal carries admin capability — either the
// fixed out-of-band admin or a user account with role=admin.
func (p Principal) IsAdmin() bool {
	if p.Kind == PrincipalAdmin {
		return true
	}
	return p.Kind == PrincipalUser && p.Role.AtLeast(RoleAdmin)
}
