// Copyright (c) 2026 Moving Bridge. All rights reserved.

package worker

import (
	"context"
	"time"

	"github.com/nakknock/movingbridge/internal/platform/apperr"
	"github.com/nakknock/movingbridge/internal/platform/validate"
	"github.com/nakknock/movingbridge/pkg/uuid"
)

// SessionBinder carries the pending step-1 reference on the caller's
// session. Implemented by the session manager; defined here so this package
// stays free of session-storage concerns.
type SessionBinder interface {

	// BindPendingWorker records workerID as the session's in-progress
	// registration. When token is empty a fresh anonymous session is
	// created; the (possibly new) token is returned either way.
	BindPendingWorker(ctx context.Context, token, workerID string) (string, error)

	// PendingWorkerID returns the session's in-progress registration id,
	// or "" when none is bound.
	PendingWorkerID(ctx context.Context, token string) (string, error)

	// ClearPendingWorker removes the in-progress reference, leaving the
	// rest of the session untouched.
	ClearPendingWorker(ctx context.Context, token string) error
}

// Service implements the two-step worker registration workflow.
type Service struct {
	store Store
}

// NewService constructs a new worker [Service] with its store dependency.
func NewService(store Store) *Service {
	return &Service{store: store}
}

// # Step 1 — Public Profile

// Step1Input holds the public-profile fields collected first.
type Step1Input struct {
	Name         string
	Nationality  string
	Gender       string
	KoreanFluent bool
	Languages    []string
	JobCategory  string
	Location     string
	Availability string
	Introduction string
	VideoURL     string
}

/*
RegisterStep1 validates and persists the public half of a worker profile.

Description: The profile is written immediately with step=1 so that an
abandoned registration still holds a consistent record. Every validation
violation is collected so the form can display them together.

Parameters:
  - context: context.Context
  - input: Step1Input

Returns:
  - *Profile: Created entity with step=1 and empty step-2 fields
  - error: apperr.ValidationError or storage errors
*/
func (service *Service) RegisterStep1(context context.Context, input Step1Input) (*Profile, error) {

	// Collect ALL field violations before returning.
	validator := &validate.Validator{}
	validator.
		Required(FieldName, input.Name).
		Required(FieldNationality, input.Nationality).
		Required(FieldGender, input.Gender).
		MinItems(FieldLanguages, input.Languages, 1).
		Required(FieldJobCategory, input.JobCategory).
		Required(FieldLocation, input.Location).
		Required(FieldAvailability, input.Availability).
		LenBetween(FieldIntroduction, input.Introduction, IntroductionMinLen, IntroductionMaxLen).
		URL(FieldVideoURL, input.VideoURL)

	if err := validator.Err(); err != nil {
		return nil, err
	}

	profile := &Profile{
		ID:           uuid.New(),
		Step:         StepBasicInfo,
		Name:         input.Name,
		Nationality:  input.Nationality,
		Gender:       input.Gender,
		KoreanFluent: input.KoreanFluent,
		Languages:    dedupe(input.Languages),
		JobCategory:  input.JobCategory,
		Location:     input.Location,
		Availability: input.Availability,
		Introduction: input.Introduction,
		VideoURL:     input.VideoURL,
	}

	if err := service.store.CreateStep1(context, profile); err != nil {
		return nil, err
	}

	return profile, nil
}

// # Step 2 — Private Details

// Step2Input holds the detail fields collected second. Every field is
// optional; Licenses is stored as a set.
type Step2Input struct {
	VisaType   string
	VisaExpiry string
	PastJobs   string
	SalaryBand string
	Housing    string
	Licenses   []string
	Religion   string
	WorkHours  string
}

/*
RegisterStep2 completes a pending registration with the detail fields.

Description: pendingWorkerID is the step-1 reference held on the caller's
session. An empty reference means no registration is in progress and the
submission is rejected before touching storage.

Parameters:
  - context: context.Context
  - pendingWorkerID: string (session's in-progress reference, "" if none)
  - input: Step2Input

Returns:
  - *Profile: Updated entity with step=2
  - error: apperr.NoPendingRegistration, apperr.NotFound,
    apperr.ValidationError, or storage errors
*/
func (service *Service) RegisterStep2(context context.Context, pendingWorkerID string, input Step2Input) (*Profile, error) {
	if pendingWorkerID == "" {
		return nil, apperr.NoPendingRegistration()
	}

	validator := &validate.Validator{}
	validator.Custom(FieldVisaExpiry, !validExpiryDate(input.VisaExpiry), "Must be a date in YYYY-MM-DD format")

	if err := validator.Err(); err != nil {
		return nil, err
	}

	profile, err := service.store.FindByID(context, pendingWorkerID)
	if err != nil {
		return nil, err
	}

	profile.VisaType = input.VisaType
	profile.VisaExpiry = input.VisaExpiry
	profile.PastJobs = input.PastJobs
	profile.SalaryBand = input.SalaryBand
	profile.Housing = input.Housing
	profile.Licenses = dedupe(input.Licenses)
	profile.Religion = input.Religion
	profile.WorkHours = input.WorkHours
	profile.Step = StepComplete

	if err := service.store.UpdateStep2(context, profile); err != nil {
		return nil, err
	}

	return profile, nil
}

// Profile returns the stored profile with the given id.
func (service *Service) Profile(context context.Context, id string) (*Profile, error) {
	return service.store.FindByID(context, id)
}

// validExpiryDate accepts an empty value or a YYYY-MM-DD date.
func validExpiryDate(value string) bool {
	if value == "" {
		return true
	}
	_, err := time.Parse("2006-01-02", value)
	return err == nil
}

// dedupe returns values with duplicates and blank entries removed,
// preserving first-seen order. Language and license selections are sets.
func dedupe(values []string) []string {
	if len(values) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(values))
	result := make([]string, 0, len(values))
	for _, value := range values {
		if value == "" {
			continue
		}
		if _, ok := seen[value]; ok {
			continue
		}
		seen[value] = struct{}{}
		result = append(result, value)
	}

	return result
}
