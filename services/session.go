package services

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

// ActiveCell identifies the cell currently being edited, replacing the
// original UI's global "editing" flag with explicit per-session state.
type ActiveCell struct {
	Table string `json:"table"`
	RowID int    `json:"rowId"`
	Field string `json:"field"`
}

// QuoteSession is one live quotation editing session. It exists only in
// memory: sessions are created when editing starts and dropped when the
// client discards them, with nothing persisted until an explicit save.
type QuoteSession struct {
	ID         string
	Quote      *Quotation
	ActiveCell *ActiveCell
	CreatedAt  time.Time
}

// SessionStore keeps the live quotation sessions. Every session has exactly
// one mutator (its client), but the store itself is shared across request
// goroutines, so all access goes through the store lock.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*QuoteSession
}

// NewSessionStore returns an empty store.
func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: make(map[string]*QuoteSession)}
}

// Create registers a new session around the given quotation and returns it.
func (s *SessionStore) Create(q *Quotation) *QuoteSession {
	sess := &QuoteSession{
		ID:        uuid.NewString(),
		Quote:     q,
		CreatedAt: time.Now(),
	}
	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()
	return sess
}

// Get returns the session with the given ID, if it exists.
func (s *SessionStore) Get(id string) (*QuoteSession, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[id]
	return sess, ok
}

// Update runs fn against the session under the store lock. It is the only
// sanctioned way to mutate a session after creation.
func (s *SessionStore) Update(id string, fn func(*QuoteSession) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		return fmt.Errorf("session %s not found", id)
	}
	return fn(sess)
}

// Delete discards a session. Deleting an unknown ID is a no-op.
func (s *SessionStore) Delete(id string) {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
}

// Len reports the number of live sessions.
func (s *SessionStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
