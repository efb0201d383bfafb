// Copyright (c) 2026 Moving Bridge. All rights reserved.

package users

import "context"

// # User Data Access

// Store defines the credential-store contract for user accounts.
type Store interface {

	/*
		FindByID returns the account with the given ID.

		Parameters:
		  - context: context.Context
		  - id: string

		Returns:
		  - *User: Hydrated entity
		  - error: apperr.NotFound or database retrieval failures
	*/
	FindByID(context context.Context, id string) (*User, error)

	/*
		FindByUsername returns the account with the given username.
		The match is case-sensitive and exact.

		Parameters:
		  - context: context.Context
		  - username: string

		Returns:
		  - *User: Hydrated entity
		  - error: apperr.NotFound or database retrieval failures
	*/
	FindByUsername(context context.Context, username string) (*User, error)

	/*
		FindByEmail returns the account with the given email.

		Parameters:
		  - context: context.Context
		  - email: string

		Returns:
		  - *User: Hydrated entity
		  - error: apperr.NotFound or database retrieval failures
	*/
	FindByEmail(context context.Context, email string) (*User, error)

	/*
		LookupConflicts checks username and email uniqueness in a single
		query so the registration workflow can report every collision at once.

		Parameters:
		  - context: context.Context
		  - username: string
		  - email: string

		Returns:
		  - usernameTaken: true if a row already claims the username
		  - emailTaken: true if a row already claims the email
		  - error: Database retrieval failures
	*/
	LookupConflicts(context context.Context, username, email string) (usernameTaken, emailTaken bool, err error)

	/*
		Create persists a brand-new user account.

		The storage layer's unique constraints are the authoritative guard:
		a registration race lost after LookupConflicts surfaces here as a
		field-aware apperr.Conflict, never as a duplicate row.

		Parameters:
		  - context: context.Context
		  - user: *User

		Returns:
		  - error: apperr.Conflict or persistence failures
	*/
	Create(context context.Context, user *User) error
}
