// Copyright (c) 2026 Moving Bridge. All rights reserved.

package company

import (
	"context"
	"fmt"

	"github.com/nakknock/movingbridge/internal/platform/apperr"
	"github.com/nakknock/movingbridge/internal/platform/sec"
	"github.com/nakknock/movingbridge/internal/platform/validate"
	"github.com/nakknock/movingbridge/pkg/uuid"
)

// Service implements the employer registration workflow.
type Service struct {
	store Store
}

// NewService constructs a new company [Service] with its store dependency.
func NewService(store Store) *Service {
	return &Service{store: store}
}

// # Registration Flow

// RegisterInput holds the data required to enroll a new employer.
type RegisterInput struct {
	Name            string
	BusinessNumber  string
	CEOName         string
	ContactNumber   string
	Email           string
	Password        string
	PasswordConfirm string
	Address         string
	Description     string
}

/*
Register validates, hashes, and persists a brand new employer account.

Description: Company enrollment is single-step, unlike the two-step worker
flow. Every validation violation is collected so the form can display them
together, and identifier conflicts report every colliding field at once.

Parameters:
  - context: context.Context
  - input: RegisterInput

Returns:
  - *Account: Created entity
  - error: apperr.ValidationError, apperr.Conflict, or storage errors
*/
func (service *Service) Register(context context.Context, input RegisterInput) (*Account, error) {

	// Collect ALL field violations before returning.
	validator := &validate.Validator{}
	validator.
		Required(FieldName, input.Name).
		LenBetween(FieldName, input.Name, NameMinLen, NameMaxLen).
		Required(FieldBusinessNumber, input.BusinessNumber).
		LenBetween(FieldBusinessNumber, input.BusinessNumber, BusinessNumberMinLen, BusinessNumberMaxLen).
		Required(FieldCEOName, input.CEOName).
		LenBetween(FieldCEOName, input.CEOName, CEONameMinLen, CEONameMaxLen).
		Required(FieldContactNumber, input.ContactNumber).
		LenBetween(FieldContactNumber, input.ContactNumber, ContactNumberMinLen, ContactNumberMaxLen).
		Required(FieldEmail, input.Email).
		Email(FieldEmail, input.Email).
		Password(FieldPassword, input.Password).
		Custom(FieldPasswordConfirm, input.Password != input.PasswordConfirm, "Passwords do not match").
		Required(FieldAddress, input.Address).
		LenBetween(FieldAddress, input.Address, AddressMinLen, AddressMaxLen).
		MaxLen(FieldDescription, input.Description, DescriptionMaxLen)

	if err := validator.Err(); err != nil {
		return nil, err
	}

	// Single pre-check against both identifier spaces so both collisions are
	// reported simultaneously. The unique constraints remain the
	// authoritative guard for races lost between this check and the insert.
	emailTaken, businessNumberTaken, err := service.store.LookupConflicts(context, input.Email, input.BusinessNumber)
	if err != nil {
		return nil, fmt.Errorf("company_service_conflict_check_failed: %w", err)
	}

	var conflicts []apperr.FieldError
	if emailTaken {
		conflicts = append(conflicts, apperr.FieldError{Field: FieldEmail, Message: "Email is already registered"})
	}
	if businessNumberTaken {
		conflicts = append(conflicts, apperr.FieldError{Field: FieldBusinessNumber, Message: "Business number is already registered"})
	}
	if len(conflicts) > 0 {
		return nil, apperr.Conflict("Company already registered", conflicts...)
	}

	hashedPassword, err := sec.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("company_service_hash_failed: %w", err)
	}

	account := &Account{
		ID:             uuid.New(),
		Name:           input.Name,
		BusinessNumber: input.BusinessNumber,
		CEOName:        input.CEOName,
		ContactNumber:  input.ContactNumber,
		Email:          input.Email,
		PasswordHash:   hashedPassword,
		Address:        input.Address,
		Description:    input.Description,
	}

	if err := service.store.Create(context, account); err != nil {
		return nil, err
	}

	return account, nil
}
