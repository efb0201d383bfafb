// Copyright (c) 2026 Moving Bridge. All rights reserved.

/*
Package auth implements the unified session manager and login workflows.

# Session Model

A browser holds a single opaque token; the server holds a single session
record per token. The record binds exactly one principal (anonymous, user,
company, or admin) plus at most one pending worker-registration reference.
Login REPLACES the whole record — principal fields from a previous login can
never leak into the next one — and rotates the token. Logout clears every
authenticated marker but keeps the pending registration, so a worker who
logs out between step 1 and step 2 does not lose their progress.

# Login Resolution Order

The login identifier is resolved against the company store first, then the
user store. This ordering is deliberate: an email registered by both a
company and a user resolves to the company.
*/
package auth

import (
	"time"

	"github.com/nakknock/movingbridge/internal/platform/sec"
)

// Session is the durable record behind an opaque browser token.
type Session struct {
	// Token is the record's key. Never serialized into the record body —
	// the key already carries it, and a leaked dump must not yield tokens.
	Token string `json:"-"`

	// Principal is the single identity bound to this session.
	Principal sec.Principal `json:"principal"`

	// PendingWorkerID references an in-progress step-1 worker registration.
	// It survives login and logout until step 2 completes.
	PendingWorkerID string `json:"pending_worker_id,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// IsEmpty reports whether the session carries no authenticated principal and
// no pending registration. Empty sessions are deleted instead of stored.
func (s *Session) IsEmpty() bool {
	return !s.Principal.IsAuthenticated() && s.PendingWorkerID == ""
}
