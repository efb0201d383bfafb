// Copyright (c) 2026 Moving Bridge. All rights reserved.

package users

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nakknock/movingbridge/internal/platform/apperr"
	"github.com/nakknock/movingbridge/internal/platform/sec"
)

// fakeStore is an in-memory Store used to exercise the service without a
// database.
type fakeStore struct {
	byUsername map[string]*User
	byEmail    map[string]*User
	createErr  error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		byUsername: make(map[string]*User),
		byEmail:    make(map[string]*User),
	}
}

func (store *fakeStore) seed(user *User) {
	store.byUsername[user.Username] = user
	store.byEmail[user.Email] = user
}

func (store *fakeStore) FindByID(_ context.Context, id string) (*User, error) {
	for _, user := range store.byUsername {
		if user.ID == id {
			return user, nil
		}
	}
	return nil, apperr.NotFound("User")
}

func (store *fakeStore) FindByUsername(_ context.Context, username string) (*User, error) {
	if user, ok := store.byUsername[username]; ok {
		return user, nil
	}
	return nil, apperr.NotFound("User")
}

func (store *fakeStore) FindByEmail(_ context.Context, email string) (*User, error) {
	if user, ok := store.byEmail[email]; ok {
		return user, nil
	}
	return nil, apperr.NotFound("User")
}

func (store *fakeStore) LookupConflicts(_ context.Context, username, email string) (bool, bool, error) {
	_, usernameTaken := store.byUsername[username]
	_, emailTaken := store.byEmail[email]
	return usernameTaken, emailTaken, nil
}

func (store *fakeStore) Create(_ context.Context, user *User) error {
	if store.createErr != nil {
		return store.createErr
	}
	store.seed(user)
	return nil
}

func validRegisterInput() RegisterInput {
	return RegisterInput{
		Username:        "kim123",
		Email:           "kim@example.com",
		Password:        "secret1!",
		PasswordConfirm: "secret1!",
		TermsAccepted:   true,
	}
}

func TestService_Register_Success(t *testing.T) {
	store := newFakeStore()
	service := NewService(store)

	user, err := service.Register(context.Background(), validRegisterInput())

	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "kim123", user.Username)
	assert.Equal(t, "kim@example.com", user.Email)
	assert.Equal(t, sec.RoleUser, user.Role)

	// Password must be stored hashed, never verbatim.
	assert.NotEqual(t, "secret1!", user.PasswordHash)
	assert.True(t, sec.CheckPasswordHash("secret1!", user.PasswordHash))

	stored, err := store.FindByUsername(context.Background(), "kim123")
	require.NoError(t, err)
	assert.Equal(t, user.ID, stored.ID)
}

func TestService_Register_ValidationCollectsAllViolations(t *testing.T) {
	store := newFakeStore()
	service := NewService(store)

	// Everything wrong at once: the response must list every violation,
	// not just the first one encountered.
	_, err := service.Register(context.Background(), RegisterInput{
		Username:        "ab",
		Email:           "not-an-email",
		Password:        "short",
		PasswordConfirm: "different",
		TermsAccepted:   false,
	})

	require.Error(t, err)

	appErr := apperr.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, "VALIDATION_ERROR", appErr.Code)

	fields := make([]string, 0, len(appErr.Details))
	for _, detail := range appErr.Details {
		fields = append(fields, detail.Field)
	}

	assert.Contains(t, fields, FieldUsername)
	assert.Contains(t, fields, FieldEmail)
	assert.Contains(t, fields, FieldPassword)
	assert.Contains(t, fields, FieldPasswordConfirm)
	assert.Contains(t, fields, FieldTermsAccepted)
}

func TestService_Register_UsernameLength(t *testing.T) {
	testCases := []struct {
		name     string
		username string
		valid    bool
	}{
		{name: "below minimum", username: "ab", valid: false},
		{name: "at minimum", username: "abc", valid: true},
		{name: "at maximum", username: strings.Repeat("a", 20), valid: true},
		{name: "above maximum", username: strings.Repeat("a", 21), valid: false},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			service := NewService(newFakeStore())

			input := validRegisterInput()
			input.Username = testCase.username

			_, err := service.Register(context.Background(), input)

			if testCase.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestService_Register_ReportsBothConflicts(t *testing.T) {
	store := newFakeStore()
	store.seed(&User{ID: "u-1", Username: "kim123", Email: "kim@example.com"})
	service := NewService(store)

	input := validRegisterInput()
	input.Username = "kim123"
	input.Email = "kim@example.com"

	_, err := service.Register(context.Background(), input)
	require.Error(t, err)

	appErr := apperr.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, "CONFLICT", appErr.Code)

	fields := make([]string, 0, len(appErr.Details))
	for _, detail := range appErr.Details {
		fields = append(fields, detail.Field)
	}

	// Username and email are both taken; both must surface in one response.
	assert.ElementsMatch(t, []string{FieldUsername, FieldEmail}, fields)
}

func TestService_Register_UsernameConflictOnly(t *testing.T) {
	store := newFakeStore()
	store.seed(&User{ID: "u-1", Username: "kim123", Email: "other@example.com"})
	service := NewService(store)

	_, err := service.Register(context.Background(), validRegisterInput())
	require.Error(t, err)

	appErr := apperr.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, "CONFLICT", appErr.Code)
	require.Len(t, appErr.Details, 1)
	assert.Equal(t, FieldUsername, appErr.Details[0].Field)
}

func TestService_Register_UsernameCaseSensitive(t *testing.T) {
	store := newFakeStore()
	store.seed(&User{ID: "u-1", Username: "Kim123", Email: "other@example.com"})
	service := NewService(store)

	// "kim123" and "Kim123" are distinct usernames.
	user, err := service.Register(context.Background(), validRegisterInput())

	require.NoError(t, err)
	assert.Equal(t, "kim123", user.Username)
}
