// Copyright (c) 2026 Moving Bridge. All rights reserved.

package auth

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nakknock/movingbridge/internal/platform/apperr"
	"github.com/nakknock/movingbridge/internal/platform/sec"
)

func newTestStore(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()

	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewRedisStore(client), server
}

func TestRedisStore_SaveAndFind(t *testing.T) {
	store, _ := newTestStore(t)

	session := &Session{
		Token: "tok-1",
		Principal: sec.Principal{
			Kind:        sec.PrincipalCompany,
			ID:          "c-1",
			DisplayName: "Hanwoo Logistics",
		},
		PendingWorkerID: "w-42",
		CreatedAt:       time.Now().Truncate(time.Second),
	}

	require.NoError(t, store.Save(context.Background(), session, time.Hour))

	loaded, err := store.Find(context.Background(), "tok-1")
	require.NoError(t, err)
	assert.Equal(t, "tok-1", loaded.Token)
	assert.Equal(t, sec.PrincipalCompany, loaded.Principal.Kind)
	assert.Equal(t, "c-1", loaded.Principal.ID)
	assert.Equal(t, "w-42", loaded.PendingWorkerID)
}

func TestRedisStore_SaveReplacesWholeRecord(t *testing.T) {
	store, _ := newTestStore(t)

	require.NoError(t, store.Save(context.Background(), &Session{
		Token:           "tok-1",
		Principal:       sec.Principal{Kind: sec.PrincipalCompany, ID: "c-1"},
		PendingWorkerID: "w-42",
	}, time.Hour))

	// Second save under the same token: no field of the first record may
	// survive.
	require.NoError(t, store.Save(context.Background(), &Session{
		Token:     "tok-1",
		Principal: sec.Principal{Kind: sec.PrincipalUser, ID: "u-7"},
	}, time.Hour))

	loaded, err := store.Find(context.Background(), "tok-1")
	require.NoError(t, err)
	assert.Equal(t, sec.PrincipalUser, loaded.Principal.Kind)
	assert.Equal(t, "u-7", loaded.Principal.ID)
	assert.Empty(t, loaded.PendingWorkerID)
}

func TestRedisStore_FindUnknownToken(t *testing.T) {
	store, _ := newTestStore(t)

	_, err := store.Find(context.Background(), "missing")
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", apperr.As(err).Code)
}

func TestRedisStore_TokenNotStoredInBody(t *testing.T) {
	store, server := newTestStore(t)

	require.NoError(t, store.Save(context.Background(), &Session{
		Token:     "tok-1",
		Principal: sec.Principal{Kind: sec.PrincipalUser, ID: "u-1"},
	}, time.Hour))

	payload, err := server.Get("session:tok-1")
	require.NoError(t, err)
	assert.NotContains(t, payload, "tok-1")
}

func TestRedisStore_Expiry(t *testing.T) {
	store, server := newTestStore(t)

	require.NoError(t, store.Save(context.Background(), &Session{
		Token:     "tok-1",
		Principal: sec.Principal{Kind: sec.PrincipalUser, ID: "u-1"},
	}, time.Minute))

	server.FastForward(2 * time.Minute)

	_, err := store.Find(context.Background(), "tok-1")
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", apperr.As(err).Code)
}

func TestRedisStore_DeleteIdempotent(t *testing.T) {
	store, _ := newTestStore(t)

	require.NoError(t, store.Save(context.Background(), &Session{
		Token:     "tok-1",
		Principal: sec.Principal{Kind: sec.PrincipalUser, ID: "u-1"},
	}, time.Hour))

	assert.NoError(t, store.Delete(context.Background(), "tok-1"))
	assert.NoError(t, store.Delete(context.Background(), "tok-1"))

	_, err := store.Find(context.Background(), "tok-1")
	assert.Error(t, err)
}
