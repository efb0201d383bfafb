// Copyright (c) 2026 Moving Bridge. All rights reserved.

/*
Package users implements the generic forum/login identity of the platform.

It defines the UserAccount entity, its credential store contract, and the
registration workflow. Login itself is orchestrated by the session manager
in [internal/auth], which consults this package's store.

# Architecture

This layer is the "Truth" for user identity. Entities defined here have no
transport dependencies and encapsulate all business rules related to user
accounts.
*/
package users

import (
	"time"

	"github.com/nakknock/movingbridge/internal/platform/sec"
)

// # Domain Entities

// User represents a registered member of the Moving Bridge community.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // Explicitly omitted from JSON for security.
	Role         sec.Role  `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

// # Field Identifiers

// Form field names for validation and conflict reporting.
const (
	FieldUsername        = "username"
	FieldEmail           = "email"
	FieldPassword        = "password"
	FieldPasswordConfirm = "password_confirm"
	FieldTermsAccepted   = "terms_accepted"
)

// # Validation Constraints

const (
	UsernameMinLen = 3
	UsernameMaxLen = 20
)
