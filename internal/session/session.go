// Package session stores opaque session tokens in Redis. Each token maps to the
// id of the user it was issued to and expires after a TTL.
package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "auth_"

// Store issues, resolves and revokes session tokens.
type Store struct {
	rdb redis.Cmdable
}

// NewStore creates a Store on top of a go-redis client.
func NewStore(rdb redis.Cmdable) *Store {
	return &Store{rdb: rdb}
}

// Key returns the cache key for token.
func (s *Store) Key(token string) string {
	return keyPrefix + token
}

// Issue creates a fresh random token bound to userID for ttl.
func (s *Store) Issue(ctx context.Context, userID string, ttl time.Duration) (string, error) {
	if ttl <= 0 {
		return "", fmt.Errorf("session ttl must be positive, got %s", ttl)
	}
	token := uuid.NewString()
	if err := s.rdb.Set(ctx, s.Key(token), userID, ttl).Err(); err != nil {
		return "", fmt.Errorf("issue session: %w", err)
	}
	return token, nil
}

// Resolve returns the user id bound to token. ok is false when the token is
// empty, unknown, expired or revoked.
func (s *Store) Resolve(ctx context.Context, token string) (userID string, ok bool, err error) {
	if token == "" {
		return "", false, nil
	}
	userID, err = s.rdb.Get(ctx, s.Key(token)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("resolve session: %w", err)
	}
	return userID, true, nil
}

// Revoke deletes the token. Revoking an absent token is not an error.
func (s *Store) Revoke(ctx context.Context, token string) error {
	if err := s.rdb.Del(ctx, s.Key(token)).Err(); err != nil {
		return fmt.Errorf("revoke session: %w", err)
	}
	return nil
}

// Ping reports whether the cache answers.
func (s *Store) Ping(ctx context.Context) error {
	return s.rdb.Ping(ctx).Err()
}
