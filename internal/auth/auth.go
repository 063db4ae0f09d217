// Package auth turns request credentials into an authenticated identity.
package auth

import (
	"context"
	"crypto/sha1"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"
)

// TokenHeader carries the session token on authenticated requests.
const TokenHeader = "X-Token"

// ErrUnauthenticated is returned when no valid session backs a token.
var ErrUnauthenticated = errors.New("unauthenticated")

// Identity is the caller behind a resolved session token.
type Identity struct {
	UserID     string
	SessionKey string
}

// Sessions is the subset of the session store that authentication needs.
type Sessions interface {
	Issue(ctx context.Context, userID string, ttl time.Duration) (string, error)
	Resolve(ctx context.Context, token string) (string, bool, error)
	Revoke(ctx context.Context, token string) error
	Key(token string) string
}

// Resolver maps session tokens to identities.
type Resolver struct {
	sessions Sessions
}

func NewResolver(sessions Sessions) *Resolver {
	return &Resolver{sessions: sessions}
}

// ResolveIdentity returns the identity bound to token, or ErrUnauthenticated when
// the token is empty or has no live session. Cache failures are returned as-is.
func (r *Resolver) ResolveIdentity(ctx context.Context, token string) (Identity, error) {
	if token == "" {
		return Identity{}, ErrUnauthenticated
	}
	userID, ok, err := r.sessions.Resolve(ctx, token)
	if err != nil {
		return Identity{}, fmt.Errorf("resolve identity: %w", err)
	}
	if !ok || userID == "" {
		return Identity{}, ErrUnauthenticated
	}
	return Identity{UserID: userID, SessionKey: r.sessions.Key(token)}, nil
}

// ParseBasic extracts email and password from an "Authorization: Basic ..."
// header value. ok is false for anything that is not a well-formed credential.
func ParseBasic(header string) (email, password string, ok bool) {
	scheme, encoded, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Basic") {
		return "", "", false
	}
	raw, err := base64.StdEncoding.DecodeString(strings.TrimSpace(encoded))
	if err != nil {
		return "", "", false
	}
	email, password, found = strings.Cut(string(raw), ":")
	if !found || email == "" {
		return "", "", false
	}
	return email, password, true
}

// HashPassword returns the hex SHA1 digest stored for user passwords.
func HashPassword(plain string) string {
	sum := sha1.Sum([]byte(plain))
	return hex.EncodeToString(sum[:])
}
