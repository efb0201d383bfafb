// Copyright (c) 2026 Moving Bridge. All rights reserved.

// Redis implementation of the session store.
//
// Each session is one JSON value under "session:<token>" with a TTL. A
// single SET replaces the whole record, which gives the atomic
// whole-record-replace semantics the session manager relies on.
package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/nakknock/movingbridge/internal/platform/apperr"
	"github.com/nakknock/movingbridge/internal/platform/constants"
)

// RedisStore implements the [SessionStore] interface on go-redis.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore creates a Redis-backed [SessionStore].
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

/*
Save serializes the session and writes it under its token key with the
given TTL, replacing any previous value in one operation.

Parameters:
  - context: context.Context
  - session: *Session
  - ttl: time.Duration

Returns:
  - error: Serialization or Redis failures
*/
func (store *RedisStore) Save(context context.Context, session *Session, ttl time.Duration) error {
	payload, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("redis_session_store_marshal_failed: %w", err)
	}

	if err := store.client.Set(context, sessionKey(session.Token), payload, ttl).Err(); err != nil {
		return fmt.Errorf("redis_session_store_save_failed: %w", err)
	}

	return nil
}

/*
Find loads and deserializes the session stored under token.

Parameters:
  - context: context.Context
  - token: string

Returns:
  - *Session: Hydrated record with Token populated from the lookup key
  - error: apperr.NotFound for unknown/expired tokens, or Redis failures
*/
func (store *RedisStore) Find(context context.Context, token string) (*Session, error) {
	payload, err := store.client.Get(context, sessionKey(token)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, apperr.NotFound("Session")
		}
		return nil, fmt.Errorf("redis_session_store_find_failed: %w", err)
	}

	session := &Session{}
	if err := json.Unmarshal(payload, session); err != nil {
		return nil, fmt.Errorf("redis_session_store_unmarshal_failed: %w", err)
	}

	session.Token = token
	return session, nil
}

/*
Delete removes the session stored under token. Missing keys are ignored.

Parameters:
  - context: context.Context
  - token: string

Returns:
  - error: Redis failures
*/
func (store *RedisStore) Delete(context context.Context, token string) error {
	if err := store.client.Del(context, sessionKey(token)).Err(); err != nil {
		return fmt.Errorf("redis_session_store_delete_failed: %w", err)
	}
	return nil
}

// sessionKey builds the namespaced Redis key for a token.
func sessionKey(token string) string {
	return constants.RedisPrefixSession + token
}
