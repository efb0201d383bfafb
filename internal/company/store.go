// Copyright (c) 2026 Moving Bridge. All rights reserved.

package company

import "context"

// # Company Data Access

// Store defines the credential-store contract for employer accounts.
type Store interface {

	/*
		FindByID returns the company with the given ID.

		Parameters:
		  - context: context.Context
		  - id: string

		Returns:
		  - *Account: Hydrated entity
		  - error: apperr.NotFound or database retrieval failures
	*/
	FindByID(context context.Context, id string) (*Account, error)

	/*
		FindByEmail returns the company with the given email.

		The session manager resolves login identifiers against this store
		BEFORE the user store, so company accounts win when the same email
		exists in both identifier spaces.

		Parameters:
		  - context: context.Context
		  - email: string

		Returns:
		  - *Account: Hydrated entity
		  - error: apperr.NotFound or database retrieval failures
	*/
	FindByEmail(context context.Context, email string) (*Account, error)

	/*
		LookupConflicts checks email and business-number uniqueness in a
		single query so registration can report every collision at once.

		Parameters:
		  - context: context.Context
		  - email: string
		  - businessNumber: string

		Returns:
		  - emailTaken: true if a row already claims the email
		  - businessNumberTaken: true if a row already claims the business number
		  - error: Database retrieval failures
	*/
	LookupConflicts(context context.Context, email, businessNumber string) (emailTaken, businessNumberTaken bool, err error)

	/*
		Create persists a brand-new employer account.

		The storage layer's unique constraints are the authoritative guard:
		a registration race lost after LookupConflicts surfaces here as a
		field-aware apperr.Conflict, never as a duplicate row.

		Parameters:
		  - context: context.Context
		  - account: *Account

		Returns:
		  - error: apperr.Conflict or persistence failures
	*/
	Create(context context.Context, account *Account) error
}
