// Copyright (c) 2026 Moving Bridge. All rights reserved.

package company

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nakknock/movingbridge/internal/platform/apperr"
	"github.com/nakknock/movingbridge/internal/platform/sec"
)

// fakeStore is an in-memory Store used to exercise the service without a
// database.
type fakeStore struct {
	byEmail          map[string]*Account
	byBusinessNumber map[string]*Account
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		byEmail:          make(map[string]*Account),
		byBusinessNumber: make(map[string]*Account),
	}
}

func (store *fakeStore) seed(account *Account) {
	store.byEmail[account.Email] = account
	store.byBusinessNumber[account.BusinessNumber] = account
}

func (store *fakeStore) FindByID(_ context.Context, id string) (*Account, error) {
	for _, account := range store.byEmail {
		if account.ID == id {
			return account, nil
		}
	}
	return nil, apperr.NotFound("Company")
}

func (store *fakeStore) FindByEmail(_ context.Context, email string) (*Account, error) {
	if account, ok := store.byEmail[email]; ok {
		return account, nil
	}
	return nil, apperr.NotFound("Company")
}

func (store *fakeStore) LookupConflicts(_ context.Context, email, businessNumber string) (bool, bool, error) {
	_, emailTaken := store.byEmail[email]
	_, businessNumberTaken := store.byBusinessNumber[businessNumber]
	return emailTaken, businessNumberTaken, nil
}

func (store *fakeStore) Create(_ context.Context, account *Account) error {
	store.seed(account)
	return nil
}

func validRegisterInput() RegisterInput {
	return RegisterInput{
		Name:            "Hanwoo Logistics",
		BusinessNumber:  "123-45-67890",
		CEOName:         "Park Jisung",
		ContactNumber:   "02-1234-5678",
		Email:           "hr@hanwoo.example.com",
		Password:        "secret1!",
		PasswordConfirm: "secret1!",
		Address:         "12 Teheran-ro, Gangnam-gu, Seoul",
		Description:     "Cold-chain logistics operator hiring warehouse staff.",
	}
}

func TestService_Register_Success(t *testing.T) {
	store := newFakeStore()
	service := NewService(store)

	account, err := service.Register(context.Background(), validRegisterInput())

	require.NoError(t, err)
	assert.NotEmpty(t, account.ID)
	assert.Equal(t, "Hanwoo Logistics", account.Name)
	assert.Equal(t, "123-45-67890", account.BusinessNumber)

	// Password must be stored hashed, never verbatim.
	assert.NotEqual(t, "secret1!", account.PasswordHash)
	assert.True(t, sec.CheckPasswordHash("secret1!", account.PasswordHash))
}

func TestService_Register_DescriptionOptional(t *testing.T) {
	service := NewService(newFakeStore())

	input := validRegisterInput()
	input.Description = ""

	_, err := service.Register(context.Background(), input)
	assert.NoError(t, err)
}

func TestService_Register_ValidationCollectsAllViolations(t *testing.T) {
	service := NewService(newFakeStore())

	_, err := service.Register(context.Background(), RegisterInput{
		Name:            "H",
		BusinessNumber:  "123",
		CEOName:         "P",
		ContactNumber:   "02",
		Email:           "not-an-email",
		Password:        "short",
		PasswordConfirm: "different",
		Address:         "12",
	})

	require.Error(t, err)

	appErr := apperr.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, "VALIDATION_ERROR", appErr.Code)

	fields := make([]string, 0, len(appErr.Details))
	for _, detail := range appErr.Details {
		fields = append(fields, detail.Field)
	}

	assert.Contains(t, fields, FieldName)
	assert.Contains(t, fields, FieldBusinessNumber)
	assert.Contains(t, fields, FieldCEOName)
	assert.Contains(t, fields, FieldContactNumber)
	assert.Contains(t, fields, FieldEmail)
	assert.Contains(t, fields, FieldPassword)
	assert.Contains(t, fields, FieldPasswordConfirm)
	assert.Contains(t, fields, FieldAddress)
}

func TestService_Register_ReportsBothConflicts(t *testing.T) {
	store := newFakeStore()
	store.seed(&Account{
		ID:             "c-1",
		Email:          "hr@hanwoo.example.com",
		BusinessNumber: "123-45-67890",
	})
	service := NewService(store)

	_, err := service.Register(context.Background(), validRegisterInput())
	require.Error(t, err)

	appErr := apperr.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, "CONFLICT", appErr.Code)

	fields := make([]string, 0, len(appErr.Details))
	for _, detail := range appErr.Details {
		fields = append(fields, detail.Field)
	}

	// Email and business number are both taken; both must surface at once.
	assert.ElementsMatch(t, []string{FieldEmail, FieldBusinessNumber}, fields)
}

func TestService_Register_BusinessNumberConflictOnly(t *testing.T) {
	store := newFakeStore()
	store.seed(&Account{
		ID:             "c-1",
		Email:          "other@hanwoo.example.com",
		BusinessNumber: "123-45-67890",
	})
	service := NewService(store)

	_, err := service.Register(context.Background(), validRegisterInput())
	require.Error(t, err)

	appErr := apperr.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, "CONFLICT", appErr.Code)
	require.Len(t, appErr.Details, 1)
	assert.Equal(t, FieldBusinessNumber, appErr.Details[0].Field)
}
