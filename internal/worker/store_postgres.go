// Copyright (c) 2026 Moving Bridge. All rights reserved.

// PostgreSQL implementation of the worker profile store.
//
// Languages and licenses are persisted as text[] columns; pgx maps them to
// and from []string directly.
package worker

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nakknock/movingbridge/internal/platform/apperr"
)

// PostgresStore implements the [Store] interface using pgx.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewStore creates a new PostgreSQL implementation of the worker [Store].
func NewStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

/*
CreateStep1 inserts a step-1 profile row. Step-2 columns are left at their
empty defaults.

Parameters:
  - context: context.Context
  - profile: *Profile

Returns:
  - error: Connectivity or execution errors
*/
func (store *PostgresStore) CreateStep1(context context.Context, profile *Profile) error {
	const query = `
		INSERT INTO worker_profiles (
			id, step, name, nationality, gender, korean_fluent, languages,
			job_category, location, availability, introduction, video_url,
			created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $13)`

	if profile.CreatedAt.IsZero() {
		profile.CreatedAt = time.Now()
	}
	profile.UpdatedAt = profile.CreatedAt

	_, err := store.pool.Exec(context, query,
		profile.ID,
		profile.Step,
		profile.Name,
		profile.Nationality,
		profile.Gender,
		profile.KoreanFluent,
		profile.Languages,
		profile.JobCategory,
		profile.Location,
		profile.Availability,
		profile.Introduction,
		profile.VideoURL,
		profile.CreatedAt,
	)

	if err != nil {
		return fmt.Errorf("postgres_worker_store_create_failed: %w", err)
	}

	return nil
}

/*
FindByID retrieves a worker profile by its primary key.

Parameters:
  - context: context.Context
  - id: string (UUIDv7)

Returns:
  - *Profile: Hydrated entity
  - error: apperr.NotFound or execution errors
*/
func (store *PostgresStore) FindByID(context context.Context, id string) (*Profile, error) {
	const query = `
		SELECT id, step, name, nationality, gender, korean_fluent, languages,
		       job_category, location, availability, introduction, video_url,
		       visa_type, visa_expiry, past_jobs, salary_band, housing,
		       licenses, religion, work_hours, created_at, updated_at
		FROM worker_profiles
		WHERE id = $1`

	profile := &Profile{}
	err := store.pool.QueryRow(context, query, id).Scan(
		&profile.ID,
		&profile.Step,
		&profile.Name,
		&profile.Nationality,
		&profile.Gender,
		&profile.KoreanFluent,
		&profile.Languages,
		&profile.JobCategory,
		&profile.Location,
		&profile.Availability,
		&profile.Introduction,
		&profile.VideoURL,
		&profile.VisaType,
		&profile.VisaExpiry,
		&profile.PastJobs,
		&profile.SalaryBand,
		&profile.Housing,
		&profile.Licenses,
		&profile.Religion,
		&profile.WorkHours,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("Worker profile")
		}
		return nil, fmt.Errorf("postgres_worker_store_find_failed: %w", err)
	}

	return profile, nil
}

/*
UpdateStep2 writes the detail columns and advances the step marker.

The marker assignment uses GREATEST so the step can never move backward
regardless of the row's current state.

Parameters:
  - context: context.Context
  - profile: *Profile

Returns:
  - error: apperr.NotFound if the row does not exist, or execution errors
*/
func (store *PostgresStore) UpdateStep2(context context.Context, profile *Profile) error {
	const query = `
		UPDATE worker_profiles
		SET step = GREATEST(step, $2),
		    visa_type = $3,
		    visa_expiry = $4,
		    past_jobs = $5,
		    salary_band = $6,
		    housing = $7,
		    licenses = $8,
		    religion = $9,
		    work_hours = $10,
		    updated_at = $11
		WHERE id = $1`

	profile.UpdatedAt = time.Now()

	tag, err := store.pool.Exec(context, query,
		profile.ID,
		StepComplete,
		profile.VisaType,
		profile.VisaExpiry,
		profile.PastJobs,
		profile.SalaryBand,
		profile.Housing,
		profile.Licenses,
		profile.Religion,
		profile.WorkHours,
		profile.UpdatedAt,
	)

	if err != nil {
		return fmt.Errorf("postgres_worker_store_update_step2_failed: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return apperr.NotFound("Worker profile")
	}

	return nil
}
