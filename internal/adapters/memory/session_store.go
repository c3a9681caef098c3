// Package memory provides an in-process session store for development and
// single-instance deployments where Redis is not available. Sessions do not
// survive a restart.
package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	domainauth "github.com/davomat/attendance-ui-api/internal/domain/auth"
	"github.com/davomat/attendance-ui-api/internal/ports"
)

// SessionStore keeps sessions in a mutex-guarded map. It honors the same
// contract as the Redis-backed store: invalid sessions are rejected on Save,
// and expired entries read back as absent.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]domainauth.Session
	now      func() time.Time
}

var _ ports.SessionStore = (*SessionStore)(nil)

// NewSessionStore creates an empty in-memory session store.
func NewSessionStore() *SessionStore {
	return &SessionStore{
		sessions: make(map[string]domainauth.Session),
		now:      time.Now,
	}
}

// Save stores a session, replacing any existing session with the same ID.
func (s *SessionStore) Save(_ context.Context, sess domainauth.Session) error {
	if err := sess.Validate(); err != nil {
		return err
	}
	if !sess.ExpiresAt.IsZero() && !sess.ExpiresAt.After(s.now()) {
		return fmt.Errorf("session is expired")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sess.ID] = sess
	return nil
}

// Get retrieves a session by ID. Expired sessions are removed and reported
// as not found.
func (s *SessionStore) Get(_ context.Context, id string) (domainauth.Session, error) {
	if id == "" {
		return domainauth.Session{}, ErrNotFound
	}

	s.mu.RLock()
	sess, ok := s.sessions[id]
	s.mu.RUnlock()
	if !ok {
		return domainauth.Session{}, ErrNotFound
	}

	if sess.Expired() {
		s.mu.Lock()
		delete(s.sessions, id)
		s.mu.Unlock()
		return domainauth.Session{}, ErrNotFound
	}

	return sess, nil
}

// Delete removes a session. Deleting a missing session is not an error.
func (s *SessionStore) Delete(_ context.Context, id string) error {
	if id == "" {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	return nil
}

// Len reports the number of stored sessions. Used by tests.
func (s *SessionStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// ErrNotFound is returned when a session is not found.
type notFoundError struct{}

func (notFoundError) Error() string { return "session not found" }

var ErrNotFound error = notFoundError{}
