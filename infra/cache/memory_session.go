package cache

import (
	"context"
	"sync"
	"time"

	"github.com/amirasaad/expensetracker/pkg/cache"
)

// MemorySessionStore implements cache.SessionStore in process memory. It is
// meant for single-instance deployments and tests.
type MemorySessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*sessionEntry
	now      func() time.Time
}

type sessionEntry struct {
	token     string
	expiresAt time.Time
}

// NewMemorySessionStore creates an empty in-memory session store.
func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{
		sessions: make(map[string]*sessionEntry),
		now:      time.Now,
	}
}

// Set stores the refresh token for userID, replacing any previous one.
// A non-positive ttl keeps the entry until it is deleted.
func (s *MemorySessionStore) Set(_ context.Context, userID, refreshToken string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry := &sessionEntry{token: refreshToken}
	if ttl > 0 {
		entry.expiresAt = s.now().Add(ttl)
	}
	s.sessions[cache.SessionKey(userID)] = entry
	s.evictExpiredLocked()
	return nil
}

// Get returns the current refresh token of userID.
func (s *MemorySessionStore) Get(_ context.Context, userID string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, ok := s.sessions[cache.SessionKey(userID)]
	if !ok || s.expired(entry) {
		return "", cache.ErrSessionNotFound
	}
	return entry.token, nil
}

// Delete removes the session of userID. Deleting a missing session is a no-op.
func (s *MemorySessionStore) Delete(_ context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, cache.SessionKey(userID))
	return nil
}

func (s *MemorySessionStore) expired(entry *sessionEntry) bool {
	return !entry.expiresAt.IsZero() && s.now().After(entry.expiresAt)
}

func (s *MemorySessionStore) evictExpiredLocked() {
	for key, entry := range s.sessions {
		if s.expired(entry) {
			delete(s.sessions, key)
		}
	}
}

var _ cache.SessionStore = (*MemorySessionStore)(nil)
