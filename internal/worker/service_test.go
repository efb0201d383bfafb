// Copyright (c) 2026 Moving Bridge. All rights reserved.

package worker

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nakknock/movingbridge/internal/platform/apperr"
)

// fakeStore is an in-memory Store used to exercise the service without a
// database.
type fakeStore struct {
	profiles map[string]*Profile
}

func newFakeStore() *fakeStore {
	return &fakeStore{profiles: make(map[string]*Profile)}
}

func (store *fakeStore) CreateStep1(_ context.Context, profile *Profile) error {
	copied := *profile
	store.profiles[profile.ID] = &copied
	return nil
}

func (store *fakeStore) FindByID(_ context.Context, id string) (*Profile, error) {
	if profile, ok := store.profiles[id]; ok {
		copied := *profile
		return &copied, nil
	}
	return nil, apperr.NotFound("Worker profile")
}

func (store *fakeStore) UpdateStep2(_ context.Context, profile *Profile) error {
	existing, ok := store.profiles[profile.ID]
	if !ok {
		return apperr.NotFound("Worker profile")
	}

	copied := *profile
	if copied.Step < existing.Step {
		copied.Step = existing.Step
	}
	store.profiles[profile.ID] = &copied
	return nil
}

func validStep1Input() Step1Input {
	return Step1Input{
		Name:         "Nguyen Van An",
		Nationality:  "Vietnam",
		Gender:       "male",
		KoreanFluent: false,
		Languages:    []string{"Vietnamese", "English"},
		JobCategory:  "manufacturing",
		Location:     "Gyeonggi-do",
		Availability: "immediately",
		Introduction: "Five years of CNC machine operation experience.",
	}
}

func TestService_RegisterStep1_Success(t *testing.T) {
	store := newFakeStore()
	service := NewService(store)

	profile, err := service.RegisterStep1(context.Background(), validStep1Input())

	require.NoError(t, err)
	assert.NotEmpty(t, profile.ID)
	assert.Equal(t, StepBasicInfo, profile.Step)

	// No step-2 field may be populated by step 1.
	assert.Empty(t, profile.VisaType)
	assert.Empty(t, profile.Licenses)
	assert.Empty(t, profile.SalaryBand)
}

func TestService_RegisterStep1_RequiresOneLanguage(t *testing.T) {
	service := NewService(newFakeStore())

	input := validStep1Input()
	input.Languages = []string{}

	_, err := service.RegisterStep1(context.Background(), input)
	require.Error(t, err)

	appErr := apperr.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
	require.Len(t, appErr.Details, 1)
	assert.Equal(t, FieldLanguages, appErr.Details[0].Field)
	assert.Equal(t, "At least one required", appErr.Details[0].Message)
}

func TestService_RegisterStep1_IntroductionBounds(t *testing.T) {
	testCases := []struct {
		name  string
		intro string
		valid bool
	}{
		{name: "below minimum", intro: "too short", valid: false},
		{name: "at minimum", intro: strings.Repeat("a", 10), valid: true},
		{name: "at maximum", intro: strings.Repeat("a", 1000), valid: true},
		{name: "above maximum", intro: strings.Repeat("a", 1001), valid: false},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			service := NewService(newFakeStore())

			input := validStep1Input()
			input.Introduction = testCase.intro

			_, err := service.RegisterStep1(context.Background(), input)

			if testCase.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestService_RegisterStep1_VideoURLOptionalButValidated(t *testing.T) {
	service := NewService(newFakeStore())

	// Absent link passes.
	input := validStep1Input()
	input.VideoURL = ""
	_, err := service.RegisterStep1(context.Background(), input)
	assert.NoError(t, err)

	// Malformed link fails.
	input = validStep1Input()
	input.VideoURL = "not a url"
	_, err = service.RegisterStep1(context.Background(), input)
	require.Error(t, err)

	appErr := apperr.As(err)
	require.NotNil(t, appErr)
	require.Len(t, appErr.Details, 1)
	assert.Equal(t, FieldVideoURL, appErr.Details[0].Field)
}

func TestService_RegisterStep1_CollectsAllViolations(t *testing.T) {
	service := NewService(newFakeStore())

	_, err := service.RegisterStep1(context.Background(), Step1Input{
		Languages:    nil,
		Introduction: "short",
		VideoURL:     "://bad",
	})
	require.Error(t, err)

	appErr := apperr.As(err)
	require.NotNil(t, appErr)

	fields := make([]string, 0, len(appErr.Details))
	for _, detail := range appErr.Details {
		fields = append(fields, detail.Field)
	}

	assert.Contains(t, fields, FieldName)
	assert.Contains(t, fields, FieldNationality)
	assert.Contains(t, fields, FieldLanguages)
	assert.Contains(t, fields, FieldIntroduction)
	assert.Contains(t, fields, FieldVideoURL)
}

func TestService_RegisterStep2_Success(t *testing.T) {
	store := newFakeStore()
	service := NewService(store)

	created, err := service.RegisterStep1(context.Background(), validStep1Input())
	require.NoError(t, err)

	updated, err := service.RegisterStep2(context.Background(), created.ID, Step2Input{
		VisaType:   "E-9",
		VisaExpiry: "2027-03-15",
		SalaryBand: "2.5M-3M KRW",
		Licenses:   []string{"forklift", "welding", "forklift"},
	})

	require.NoError(t, err)
	assert.Equal(t, StepComplete, updated.Step)
	assert.Equal(t, "E-9", updated.VisaType)

	// License selection is a set: duplicates collapse.
	assert.Equal(t, []string{"forklift", "welding"}, updated.Licenses)

	stored, err := store.FindByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, StepComplete, stored.Step)
}

func TestService_RegisterStep2_AllFieldsOptional(t *testing.T) {
	service := NewService(newFakeStore())

	created, err := service.RegisterStep1(context.Background(), validStep1Input())
	require.NoError(t, err)

	updated, err := service.RegisterStep2(context.Background(), created.ID, Step2Input{})

	require.NoError(t, err)
	assert.Equal(t, StepComplete, updated.Step)
}

func TestService_RegisterStep2_NoPendingReference(t *testing.T) {
	service := NewService(newFakeStore())

	_, err := service.RegisterStep2(context.Background(), "", Step2Input{VisaType: "E-9"})
	require.Error(t, err)

	appErr := apperr.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, "NO_PENDING_REGISTRATION", appErr.Code)
}

func TestService_RegisterStep2_MissingProfile(t *testing.T) {
	service := NewService(newFakeStore())

	// A pending reference pointing at a deleted row is NotFound, not a
	// silent re-create.
	_, err := service.RegisterStep2(context.Background(), "missing-id", Step2Input{})
	require.Error(t, err)

	appErr := apperr.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, "NOT_FOUND", appErr.Code)
}

func TestService_RegisterStep2_RejectsBadExpiryDate(t *testing.T) {
	service := NewService(newFakeStore())

	created, err := service.RegisterStep1(context.Background(), validStep1Input())
	require.NoError(t, err)

	_, err = service.RegisterStep2(context.Background(), created.ID, Step2Input{
		VisaExpiry: "15/03/2027",
	})
	require.Error(t, err)

	appErr := apperr.As(err)
	require.NotNil(t, appErr)
	require.Len(t, appErr.Details, 1)
	assert.Equal(t, FieldVisaExpiry, appErr.Details[0].Field)
}
