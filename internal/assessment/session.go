package assessment

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/koops/pathfinder/internal/catalog"
)

// Session owns one Engine for the lifetime of a user's visit. Every
// "Start Over" begins a new attempt with its own ID.
type Session struct {
	mu        sync.Mutex
	engine    *Engine
	attemptID string
	startedAt time.Time
	facility  string
	closed    bool
}

// NewSession creates a session with a fresh engine and attempt.
func NewSession(cat *catalog.Catalog) *Session {
	return &Session{
		engine:    NewEngine(cat),
		attemptID: uuid.New().String(),
		startedAt: time.Now(),
	}
}

// Engine returns the session's engine, or ErrSessionClosed after Dispose.
func (s *Session) Engine() (*Engine, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil, ErrSessionClosed
	}
	return s.engine, nil
}

// AttemptID identifies the current attempt.
func (s *Session) AttemptID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.attemptID
}

// StartedAt is when the current attempt began.
func (s *Session) StartedAt() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.startedAt
}

// Facility returns the facility name entered for the attempt, if any.
func (s *Session) Facility() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.facility
}

// SetFacility records the facility name shown on the report.
func (s *Session) SetFacility(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.facility = name
}

// Reset restores the engine to its initial state and begins a new attempt.
// The facility name is kept.
func (s *Session) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrSessionClosed
	}
	s.engine.Reset()
	s.attemptID = uuid.New().String()
	s.startedAt = time.Now()
	return nil
}

// Dispose releases the engine. It is safe to call more than once.
func (s *Session) Dispose() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	s.engine = nil
}
