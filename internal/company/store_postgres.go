// Copyright (c) 2026 Moving Bridge. All rights reserved.

// PostgreSQL implementation of the company credential store.
package company

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

// uniqueConstraints maps the companies table's unique constraint names to the
// form fields they guard, for field-aware Conflict reporting on lost races.
var uniqueConstraints = map[string]string{
	"companies_email_key":           FieldEmail,
	"companies_business_number_key": FieldBusinessNumber,
}

// PostgresStore implements the [Store] interface using pgx.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewStore creates a new PostgreSQL implementation of the company [Store].
func NewStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

/*
Create persists a new employer record into the companies table.

Parameters:
  - context: context.Context
  - account: *Account (Entity to persist)

Returns:
  - error: apperr.Conflict on unique violations, or connectivity errors
*/
func (store *PostgresStore) Create(context context.Context, account *Account) error {
	const query = `
		INSERT INTO companies (
			id, name, business_number, ceo_name, contact_number,
			email, password_hash, address, description, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	if account.CreatedAt.IsZero() {
		account.CreatedAt = time.Now()
	}

	_, err := store.pool.Exec(context, query,
		account.ID,
		account.Name,
		account.BusinessNumber,
		account.CEOName,
		account.ContactNumber,
		account.Email,
		account.PasswordHash,
		account.Address,
		account.Description,
		account.CreatedAt,
	)

	if err != nil {
		if field, ok := dberr.UniqueField(err, uniqueConstraints); ok {
			return apperr.Conflict("Company already registered",
				apperr.FieldError{Field: field, Message: "Already taken"})
		}
		return fmt.Errorf("postgres_company_store_create_failed: %w", err)
	}

	return nil
}

/*
FindByID retrieves a company record by its primary key.

Parameters:
  - context: context.Context
  - id: string (UUIDv7)

Returns:
  - *Account: Hydrated employer entity
  - error: apperr.NotFound or execution errors
*/
func (store *PostgresStore) FindByID(context context.Context, id string) (*Account, error) {
	const query = `
		SELECT id, name, business_number, ceo_name, contact_number,
		       email, password_hash, address, description, created_at
		FROM companies
		WHERE id = $1`

	return store.scanOne(context, query, id)
}

/*
FindByEmail retrieves a company record by its unique email address.

Parameters:
  - context: context.Context
  - email: string

Returns:
  - *Account: Hydrated employer entity
  - error: apperr.NotFound or execution errors
*/
func (store *PostgresStore) FindByEmail(context context.Context, email string) (*Account, error) {
	const query = `
		SELECT id, name, business_number, ceo_name, contact_number,
		       email, password_hash, address, description, created_at
		FROM companies
		WHERE email = $1`

	return store.scanOne(context, query, email)
}

/*
LookupConflicts checks both unique identifier spaces in one round trip.

Parameters:
  - context: context.Context
  - email: string
  - businessNumber: string

Returns:
  - emailTaken, businessNumberTaken: per-field collision flags
  - error: Execution errors
*/
func (store *PostgresStore) LookupConflicts(context context.Context, email, businessNumber string) (bool, bool, error) {
	const query = `
		SELECT
			EXISTS (SELECT 1 FROM companies WHERE email = $1),
			EXISTS (SELECT 1 FROM companies WHERE business_number = $2)`

	var emailTaken, businessNumberTaken bool
	err := store.pool.QueryRow(context, query, email, businessNumber).Scan(&emailTaken, &businessNumberTaken)
	if err != nil {
		return false, false, fmt.Errorf("postgres_company_store_lookup_conflicts_failed: %w", err)
	}

	return emailTaken, businessNumberTaken, nil
}

// scanOne runs a single-row company query and maps pgx.ErrNoRows to apperr.NotFound.
func (store *PostgresStore) scanOne(context context.Context, query string, arg any) (*Account, error) {
	account := &Account{}
	err := store.pool.QueryRow(context, query, arg).Scan(
		&account.ID,
		&account.Name,
		&account.BusinessNumber,
		&account.CEOName,
		&account.ContactNumber,
		&account.Email,
		&account.PasswordHash,
		&account.Address,
		&account.Description,
		&account.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("Company")
		}
		return nil, fmt.Errorf("postgres_company_store_find_failed: %w", err)
	}

	return account, nil
}
