// Copyright (c) 2026 Moving Bridge. All rights reserved.

package validate

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nakknock/movingbridge/internal/platform/apperr"
)

func fieldsOf(t *testing.T, err error) []string {
	t.Helper()

	appErr := apperr.As(err)
	require.NotNil(t, appErr)

	fields := make([]string, 0, len(appErr.Details))
	for _, detail := range appErr.Details {
		fields = append(fields, detail.Field)
	}
	return fields
}

func TestValidator_CollectsAllErrors(t *testing.T) {
	v := &Validator{}
	v.
		Required("name", "").
		Email("email", "nope").
		Password("password", "short")

	err := v.Err()
	require.Error(t, err)

	// Every rule ran; nothing short-circuited.
	assert.ElementsMatch(t, []string{"name", "email", "password"}, fieldsOf(t, err))
}

func TestValidator_NoErrors(t *testing.T) {
	v := &Validator{}
	v.
		Required("name", "Kim").
		Email("email", "kim@example.com")

	assert.NoError(t, v.Err())
	assert.False(t, v.HasErrors())
}

func TestValidator_Required(t *testing.T) {
	v := &Validator{}
	v.Required("name", "   ")

	// Whitespace-only counts as empty.
	assert.Error(t, v.Err())
}

func TestValidator_LenBetween_CountsRunes(t *testing.T) {
	// 3 Hangul characters occupy 9 bytes but count as 3.
	v := &Validator{}
	v.LenBetween("name", "김철수", 3, 3)
	assert.NoError(t, v.Err())
}

func TestValidator_Password(t *testing.T) {
	testCases := []struct {
		name     string
		password string
		valid    bool
	}{
		{name: "valid", password: "secret1!", valid: true},
		{name: "too short", password: "a1!", valid: false},
		{name: "no digit", password: "secrets!", valid: false},
		{name: "no symbol", password: "secrets1", valid: false},
		{name: "no letter", password: "12345678!", valid: false},
		{name: "unicode letters count", password: "비밀번호글자1!", valid: true},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			v := &Validator{}
			v.Password("password", testCase.password)

			if testCase.valid {
				assert.NoError(t, v.Err())
			} else {
				assert.Error(t, v.Err())
			}
		})
	}
}

func TestValidator_URL(t *testing.T) {
	testCases := []struct {
		name  string
		value string
		valid bool
	}{
		{name: "empty passes", value: "", valid: true},
		{name: "https", value: "https://youtube.com/watch?v=abc", valid: true},
		{name: "http", value: "http://example.com/video", valid: true},
		{name: "no scheme", value: "youtube.com/watch", valid: false},
		{name: "wrong scheme", value: "ftp://example.com/file", valid: false},
		{name: "garbage", value: "not a url", valid: false},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			v := &Validator{}
			v.URL("video_url", testCase.value)

			if testCase.valid {
				assert.NoError(t, v.Err())
			} else {
				assert.Error(t, v.Err())
			}
		})
	}
}

func TestValidator_MinItems(t *testing.T) {
	v := &Validator{}
	v.MinItems("languages", nil, 1)

	err := v.Err()
	require.Error(t, err)

	appErr := apperr.As(err)
	require.Len(t, appErr.Details, 1)
	assert.Equal(t, "At least one required", appErr.Details[0].Message)

	// Blank entries do not count toward the minimum.
	v = &Validator{}
	v.MinItems("languages", []string{"", "  "}, 1)
	assert.Error(t, v.Err())

	v = &Validator{}
	v.MinItems("languages", []string{"Korean"}, 1)
	assert.NoError(t, v.Err())
}

func TestValidator_OneOf(t *testing.T) {
	v := &Validator{}
	v.OneOf("gender", "other", "male", "female")
	assert.Error(t, v.Err())

	v = &Validator{}
	v.OneOf("gender", "male", "male", "female")
	assert.NoError(t, v.Err())
}

func TestValidator_MaxLen(t *testing.T) {
	v := &Validator{}
	v.MaxLen("description", strings.Repeat("a", 501), 500)
	assert.Error(t, v.Err())

	v = &Validator{}
	v.MaxLen("description", strings.Repeat("a", 500), 500)
	assert.NoError(t, v.Err())
}
