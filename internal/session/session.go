// Package session holds the per-session navigation state.
package session

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Session tracks whether the dashboard has been shown automatically yet.
// Its only transition is unvisited → visited.
type Session struct {
	mu        sync.Mutex
	id        string
	startedAt time.Time
	visited   bool
}

// New creates a fresh, unvisited session.
func New() *Session {
	return &Session{
		id:        uuid.NewString(),
		startedAt: time.Now(),
	}
}

// ID returns the session identifier.
func (s *Session) ID() string {
	return s.id
}

// StartedAt returns when the session was created.
func (s *Session) StartedAt() time.Time {
	return s.startedAt
}

// FirstVisit reports whether the session has not been marked visited yet.
func (s *Session) FirstVisit() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return !s.visited
}

// ConsumeFirstVisit marks the session visited and reports whether this call
// performed the transition.
func (s *Session) ConsumeFirstVisit() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.visited {
		return false
	}
	s.visited = true
	return true
}
