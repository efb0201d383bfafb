// Copyright (c) 2026 Moving Bridge. All rights reserved.

package auth

import (
	"context"
	"time"
)

// # Session Data Access

// SessionStore defines the persistence contract for session records.
type SessionStore interface {

	/*
		Save writes the FULL session record under its token, replacing any
		previous state atomically. There is no partial update: the whole
		record is the unit of storage, which is what guarantees a login can
		never merge with a stale principal.

		Parameters:
		  - context: context.Context
		  - session: *Session (Token must be set)
		  - ttl: time.Duration (idle expiry)

		Returns:
		  - error: Persistence failures
	*/
	Save(context context.Context, session *Session, ttl time.Duration) error

	/*
		Find returns the session stored under token.

		Parameters:
		  - context: context.Context
		  - token: string

		Returns:
		  - *Session: Hydrated record with Token set
		  - error: apperr.NotFound for unknown or expired tokens
	*/
	Find(context context.Context, token string) (*Session, error)

	/*
		Delete removes the session stored under token. Deleting a token
		that does not exist is not an error.

		Parameters:
		  - context: context.Context
		  - token: string

		Returns:
		  - error: Persistence failures
	*/
	Delete(context context.Context, token string) error
}
