// Copyright (c) 2026 Moving Bridge. All rights reserved.

// PostgreSQL implementation of the user credential store.
//
// # Error Mapping
//
// Storage-specific errors (pgx.ErrNoRows, SQLSTATE 23505) are mapped to
// domain-friendly [apperr.AppError] types to avoid leaking storage
// implementation details.
package users

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nakknock/movingbridge/internal/platform/apperr"
	"github.com/nakknock/movingbridge/internal/platform/dberr"
)

// uniqueConstraints maps the users table's unique constraint names to the
// form fields they guard, for field-aware Conflict reporting on lost races.
var uniqueConstraints = map[string]string{
	"users_username_key": FieldUsername,
	"users_email_key":    FieldEmail,
}

// PostgresStore implements the [Store] interface using pgx.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewStore creates a new PostgreSQL implementation of the user [Store].
func NewStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

/*
Create persists a new user record into the users table.

Parameters:
  - context: context.Context
  - user: *User (Entity to persist)

Returns:
  - error: apperr.Conflict on unique violations, or connectivity errors
*/
func (store *PostgresStore) Create(context context.Context, user *User) error {
	const query = `
		INSERT INTO users (id, username, email, password_hash, role, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}

	_, err := store.pool.Exec(context, query,
		user.ID,
		user.Username,
		user.Email,
		user.PasswordHash,
		user.Role,
		user.CreatedAt,
	)

	if err != nil {
		if field, ok := dberr.UniqueField(err, uniqueConstraints); ok {
			return apperr.Conflict("Account already registered",
				apperr.FieldError{Field: field, Message: "Already taken"})
		}
		return fmt.Errorf("postgres_user_store_create_failed: %w", err)
	}

	return nil
}

/*
FindByID retrieves a user record by its primary key.

Parameters:
  - context: context.Context
  - id: string (UUIDv7)

Returns:
  - *User: Hydrated account entity
  - error: apperr.NotFound or execution errors
*/
func (store *PostgresStore) FindByID(context context.Context, id string) (*User, error) {
	const query = `
		SELECT id, username, email, password_hash, role, created_at
		FROM users
		WHERE id = $1`

	return store.scanOne(context, query, id)
}

/*
FindByUsername retrieves a user record by its unique username.
The lookup is case-sensitive, matching the uniqueness rule at write time.

Parameters:
  - context: context.Context
  - username: string

Returns:
  - *User: Hydrated account entity
  - error: apperr.NotFound or execution errors
*/
func (store *PostgresStore) FindByUsername(context context.Context, username string) (*User, error) {
	const query = `
		SELECT id, username, email, password_hash, role, created_at
		FROM users
		WHERE username = $1`

	return store.scanOne(context, query, username)
}

/*
FindByEmail retrieves a user record by its unique email address.

Parameters:
  - context: context.Context
  - email: string

Returns:
  - *User: Hydrated account entity
  - error: apperr.NotFound or execution errors
*/
func (store *PostgresStore) FindByEmail(context context.Context, email string) (*User, error) {
	const query = `
		SELECT id, username, email, password_hash, role, created_at
		FROM users
		WHERE email = $1`

	return store.scanOne(context, query, email)
}

/*
LookupConflicts checks both unique identifier spaces in one round trip.

Parameters:
  - context: context.Context
  - username: string
  - email: string

Returns:
  - usernameTaken, emailTaken: per-field collision flags
  - error: Execution errors
*/
func (store *PostgresStore) LookupConflicts(context context.Context, username, email string) (bool, bool, error) {
	const query = `
		SELECT
			EXISTS (SELECT 1 FROM users WHERE username = $1),
			EXISTS (SELECT 1 FROM users WHERE email = $2)`

	var usernameTaken, emailTaken bool
	err := store.pool.QueryRow(context, query, username, email).Scan(&usernameTaken, &emailTaken)
	if err != nil {
		return false, false, fmt.Errorf("postgres_user_store_lookup_conflicts_failed: %w", err)
	}

	return usernameTaken, emailTaken, nil
}

// scanOne runs a single-row user query and maps pgx.ErrNoRows to apperr.NotFound.
func (store *PostgresStore) scanOne(context context.Context, query string, arg any) (*User, error) {
	user := &User{}
	err := store.pool.QueryRow(context, query, arg).Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.PasswordHash,
		&user.Role,
		&user.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("User")
		}
		return nil, fmt.Errorf("postgres_user_store_find_failed: %w", err)
	}

	return user, nil
}
