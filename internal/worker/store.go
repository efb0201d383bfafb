// Copyright (c) 2026 Moving Bridge. All rights reserved.

package worker

import "context"

// # Worker Data Access

// Store defines the persistence contract for worker profiles.
type Store interface {

	/*
		CreateStep1 persists a brand-new profile in step-1-complete state.
		The step-2 columns stay empty until [Store.UpdateStep2] runs.

		Parameters:
		  - context: context.Context
		  - profile: *Profile (Step must be StepBasicInfo)

		Returns:
		  - error: Persistence failures
	*/
	CreateStep1(context context.Context, profile *Profile) error

	/*
		FindByID returns the profile with the given ID.

		Parameters:
		  - context: context.Context
		  - id: string

		Returns:
		  - *Profile: Hydrated entity
		  - error: apperr.NotFound or database retrieval failures
	*/
	FindByID(context context.Context, id string) (*Profile, error)

	/*
		UpdateStep2 writes the step-2 detail columns and advances the step
		marker to StepComplete. The marker only moves forward.

		Parameters:
		  - context: context.Context
		  - profile: *Profile (ID selects the row; step-2 fields are written)

		Returns:
		  - error: apperr.NotFound if no step-1 row exists, or persistence failures
	*/
	UpdateStep2(context context.Context, profile *Profile) error
}
