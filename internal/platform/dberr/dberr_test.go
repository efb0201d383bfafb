// Copyright (c) 2026 Moving Bridge. All rights reserved.

package dberr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nakknock/movingbridge/internal/platform/apperr"
)

func uniqueViolation(constraint string) error {
	return &pgconn.PgError{
		Code:           pgerrcode.UniqueViolation,
		ConstraintName: constraint,
	}
}

func TestWrap(t *testing.T) {
	assert.NoError(t, Wrap(nil, "noop"))

	err := Wrap(pgx.ErrNoRows, "find_user")
	assert.Equal(t, "NOT_FOUND", apperr.As(err).Code)

	err = Wrap(uniqueViolation("users_email_key"), "create_user")
	assert.Equal(t, "CONFLICT", apperr.As(err).Code)

	err = Wrap(errors.New("connection reset"), "create_user")
	appErr := apperr.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, "INTERNAL_ERROR", appErr.Code)

	// The action tag lands in the cause for logging.
	assert.Contains(t, appErr.Cause.Error(), "create_user")
}

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, IsUniqueViolation(uniqueViolation("users_email_key")))

	// Wrapped violations are still recognized.
	wrapped := fmt.Errorf("insert failed: %w", uniqueViolation("users_email_key"))
	assert.True(t, IsUniqueViolation(wrapped))

	assert.False(t, IsUniqueViolation(errors.New("plain")))
	assert.False(t, IsUniqueViolation(&pgconn.PgError{Code: pgerrcode.ForeignKeyViolation}))
}

func TestIsForeignKeyViolation(t *testing.T) {
	assert.True(t, IsForeignKeyViolation(&pgconn.PgError{Code: pgerrcode.ForeignKeyViolation}))
	assert.False(t, IsForeignKeyViolation(uniqueViolation("users_email_key")))
	assert.False(t, IsForeignKeyViolation(errors.New("plain")))
}

func TestUniqueField(t *testing.T) {
	constraints := map[string]string{
		"users_username_key": "username",
		"users_email_key":    "email",
	}

	field, ok := UniqueField(uniqueViolation("users_email_key"), constraints)
	require.True(t, ok)
	assert.Equal(t, "email", field)

	// Unknown constraint name: the caller falls back to a generic conflict.
	_, ok = UniqueField(uniqueViolation("users_pkey"), constraints)
	assert.False(t, ok)

	_, ok = UniqueField(errors.New("plain"), constraints)
	assert.False(t, ok)
}
