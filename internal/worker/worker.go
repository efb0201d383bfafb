// Copyright (c) 2026 Moving Bridge. All rights reserved.

/*
Package worker implements job-seeker profiles and their two-step registration.

Step 1 collects the public profile (identity, languages, introduction) and
persists it immediately with step=1. The new profile id is bound to the
caller's session as a pending reference, and step 2 fills in the private
details (visa, salary expectations, licenses). The step marker only ever
moves forward, so a partially registered worker is always representable and
never half-written.
*/
package worker

import "time"

// # Registration Steps

const (
	// StepBasicInfo marks a profile that completed only the public step.
	StepBasicInfo = 1
	// StepComplete marks a fully registered profile.
	StepComplete = 2
)

// # Domain Entities

// Profile represents a job-seeking worker.
//
// Step-2 fields are all optional and remain empty until the second
// registration step runs.
type Profile struct {
	ID           string    `json:"id"`
	Step         int       `json:"step"`
	Name         string    `json:"name"`
	Nationality  string    `json:"nationality"`
	Gender       string    `json:"gender"`
	KoreanFluent bool      `json:"korean_fluent"`
	Languages    []string  `json:"languages"`
	JobCategory  string    `json:"job_category"`
	Location     string    `json:"location"`
	Availability string    `json:"availability"`
	Introduction string    `json:"introduction"`
	VideoURL     string    `json:"video_url,omitempty"`
	VisaType     string    `json:"visa_type,omitempty"`
	VisaExpiry   string    `json:"visa_expiry,omitempty"`
	PastJobs     string    `json:"past_jobs,omitempty"`
	SalaryBand   string    `json:"salary_band,omitempty"`
	Housing      string    `json:"housing,omitempty"`
	Licenses     []string  `json:"licenses,omitempty"`
	Religion     string    `json:"religion,omitempty"`
	WorkHours    string    `json:"work_hours,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// # Field Identifiers

// Form field names for validation reporting.
const (
	FieldName         = "name"
	FieldNationality  = "nationality"
	FieldGender       = "gender"
	FieldLanguages    = "languages"
	FieldJobCategory  = "job_category"
	FieldLocation     = "location"
	FieldAvailability = "availability"
	FieldIntroduction = "introduction"
	FieldVideoURL     = "video_url"
	FieldVisaExpiry   = "visa_expiry"
)

// # Validation Constraints

const (
	IntroductionMinLen = 10
	IntroductionMaxLen = 1000
)
