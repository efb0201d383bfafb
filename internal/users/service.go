// Copyright (c) 2026 Moving Bridge. All rights reserved.

package users

import (
	"context"
	"fmt"

	"github.com/nakknock/movingbridge/internal/platform/apperr"
	"github.com/nakknock/movingbridge/internal/platform/sec"
	"github.com/nakknock/movingbridge/internal/platform/validate"
	"github.com/nakknock/movingbridge/pkg/uuid"
)

// Service implements the user registration workflow.
//
// # Review Process
//
// This service is critical for security. Any changes to hashing or
// registration logic must be reviewed before merge.
type Service struct {
	store Store
}

// NewService constructs a new user [Service] with its store dependency.
func NewService(store Store) *Service {
	return &Service{store: store}
}

// # Registration Flow

// RegisterInput holds the data required to enroll a new community member.
type RegisterInput struct {
	Username        string
	Email           string
	Password        string
	PasswordConfirm string
	TermsAccepted   bool
}

/*
Register validates, hashes, and persists a brand new user account.

Description: Enrolls a new member with the default 'user' role. Every
validation violation is collected so the form can display them together,
and identifier conflicts report every colliding field at once.

Parameters:
  - context: context.Context
  - input: RegisterInput

Returns:
  - *User: Created entity
  - error: apperr.ValidationError, apperr.Conflict, or storage errors
*/
func (service *Service) Register(context context.Context, input RegisterInput) (*User, error) {

	// Collect ALL field violations before returning.
	validator := &validate.Validator{}
	validator.
		Required(FieldUsername, input.Username).
		LenBetween(FieldUsername, input.Username, UsernameMinLen, UsernameMaxLen).
		Required(FieldEmail, input.Email).
		Email(FieldEmail, input.Email).
		Password(FieldPassword, input.Password).
		Custom(FieldPasswordConfirm, input.Password != input.PasswordConfirm, "Passwords do not match").
		Custom(FieldTermsAccepted, !input.TermsAccepted, "You must accept the terms of service")

	if err := validator.Err(); err != nil {
		return nil, err
	}

	// Single pre-check against both identifier spaces so both collisions are
	// reported simultaneously. The unique constraints remain the
	// authoritative guard for races lost between this check and the insert.
	usernameTaken, emailTaken, err := service.store.LookupConflicts(context, input.Username, input.Email)
	if err != nil {
		return nil, fmt.Errorf("user_service_conflict_check_failed: %w", err)
	}

	var conflicts []apperr.FieldError
	if usernameTaken {
		conflicts = append(conflicts, apperr.FieldError{Field: FieldUsername, Message: "Username is already taken"})
	}
	if emailTaken {
		conflicts = append(conflicts, apperr.FieldError{Field: FieldEmail, Message: "Email is already registered"})
	}
	if len(conflicts) > 0 {
		return nil, apperr.Conflict("Account already registered", conflicts...)
	}

	// Prevent storing plain-text passwords. Default cost balances security
	// and CPU utilization during registration spikes.
	hashedPassword, err := sec.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("user_service_hash_failed: %w", err)
	}

	// Time-sortable ID to prevent PG index fragmentation.
	user := &User{
		ID:           uuid.New(),
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: hashedPassword,
		Role:         sec.RoleUser,
	}

	if err := service.store.Create(context, user); err != nil {
		return nil, err
	}

	return user, nil
}
