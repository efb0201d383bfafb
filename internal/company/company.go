// Copyright (c) 2026 Moving Bridge. All rights reserved.

/*
Package company implements employer accounts for the Moving Bridge platform.

A company account is a principal in its own right: it registers with business
credentials, logs in through the shared session manager, and posts job
openings. Companies and users live in separate identifier spaces — the same
email may exist on both sides, and login resolves the company space first.
*/
package company

import "time"

// # Domain Entities

// Account represents a registered employer.
type Account struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	BusinessNumber string    `json:"business_number"`
	CEOName        string    `json:"ceo_name"`
	ContactNumber  string    `json:"contact_number"`
	Email          string    `json:"email"`
	PasswordHash   string    `json:"-"` // Explicitly omitted from JSON for security.
	Address        string    `json:"address"`
	Description    string    `json:"description,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

// # Field Identifiers

// Form field names for validation and conflict reporting.
const (
	FieldName            = "name"
	FieldBusinessNumber  = "business_number"
	FieldCEOName         = "ceo_name"
	FieldContactNumber   = "contact_number"
	FieldEmail           = "email"
	FieldPassword        = "password"
	FieldPasswordConfirm = "password_confirm"
	FieldAddress         = "address"
	FieldDescription     = "description"
)

// # Validation Constraints

const (
	NameMinLen           = 2
	NameMaxLen           = 100
	BusinessNumberMinLen = 10
	BusinessNumberMaxLen = 20
	CEONameMinLen        = 2
	CEONameMaxLen        = 50
	ContactNumberMinLen  = 10
	ContactNumberMaxLen  = 20
	AddressMinLen        = 5
	AddressMaxLen        = 200
	DescriptionMaxLen    = 500
)
