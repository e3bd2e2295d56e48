// Package cache defines the server-side session store that makes refresh
// tokens revocable.
package cache

import (
	"context"
	"errors"
	"time"
)

// SessionKeyPrefix prefixes every refresh-token entry.
const SessionKeyPrefix = "refresh_token:"

// ErrSessionNotFound is returned by Get when the user has no active session.
var ErrSessionNotFound = errors.New("session not found")

// SessionStore holds at most one refresh token per user. Set overwrites and
// Delete removes atomically per key; no cross-key coordination is needed.
type SessionStore interface {
	Set(ctx context.Context, userID string, refreshToken string, ttl time.Duration) error
	Get(ctx context.Context, userID string) (string, error)
	Delete(ctx context.Context, userID string) error
}

// SessionKey returns the storage key for userID.
func SessionKey(userID string) string {
	return SessionKeyPrefix + userID
}
