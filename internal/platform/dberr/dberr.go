// Copyright (c) 2026 Moving Bridge. All rights reserved.

// Package dberr provides a bridge between low-level database errors and
// higher-level application errors.
//
// # Unique Constraints
//
// The pre-check-then-insert pattern used by the registration services is
// inherently racy: two concurrent registrations can both pass the pre-check.
// The storage-layer unique constraint is the authoritative guard, and this
// package turns a lost race (SQLSTATE 23505) into a field-aware Conflict
// rather than a duplicate row or an opaque 500.
package dberr

import (
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/nakknock/movingbridge/internal/platform/apperr"
)

var (
	// ErrNotFound is a standard error returned when a queried row doesn't exist.
	ErrNotFound = apperr.NotFound("Resource")
)

// Wrap inspects a database error and wraps it into a meaningful [apperr.AppError].
// It hides internal database details from the client while classifying the error type.
func Wrap(err error, action string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}

	if IsUniqueViolation(err) {
		return apperr.Conflict("Record already exists")
	}

	// Unknown query errors become Internal Server Errors. The action tag
	// survives in the logged cause, never in the client response.
	return apperr.Internal(fmt.Errorf("%s: %w", action, err))
}

// IsUniqueViolation reports whether err is a Postgres unique-constraint violation.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}

// IsForeignKeyViolation reports whether err is a Postgres foreign-key violation.
// Writes referencing a deleted parent row surface this way.
func IsForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation
}

// UniqueField resolves a unique-violation error to the form field it collided on.
//
// constraints maps Postgres constraint names (e.g. "users_username_key") to the
// field names the client knows. The second return is false when err is not a
// unique violation or the constraint is not in the map.
func UniqueField(err error, constraints map[string]string) (string, bool) {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != pgerrcode.UniqueViolation {
		return "", false
	}

	field, ok := constraints[pgErr.ConstraintName]
	return field, ok
}
