// Package session tracks the live game sessions on a server.
package session

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Session describes one connected player. The game state itself lives in the
// engine owned by the session's goroutine, not here.
type Session struct {
	// ID uniquely identifies the session.
	ID string
	// RemoteAddr is the client address, or "console" for local play.
	RemoteAddr string
	// StartedAt is when the session was registered.
	StartedAt time.Time
}

// Manager is a registry of live sessions. All methods are safe for concurrent
// use.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	now      func() time.Time
}

// NewManager creates an empty Manager.
func NewManager() *Manager {
	return &Manager{
		sessions: make(map[string]*Session),
		now:      time.Now,
	}
}

// Add registers a new session with a fresh id.
//
// Precondition: remoteAddr must be non-empty.
// Postcondition: Returns the registered Session or an error.
func (m *Manager) Add(remoteAddr string) (*Session, error) {
	if remoteAddr == "" {
		return nil, fmt.Errorf("session remote address must not be empty")
	}
	id, err := uuid.NewRandom()
	if err != nil {
		return nil, fmt.Errorf("generating session id: %w", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	s := &Session{ID: id.String(), RemoteAddr: remoteAddr, StartedAt: m.now()}
	if _, exists := m.sessions[s.ID]; exists {
		return nil, fmt.Errorf("session %q already registered", s.ID)
	}
	m.sessions[s.ID] = s
	return s, nil
}

// Remove unregisters a session.
//
// Postcondition: Returns an error if id is not registered.
func (m *Manager) Remove(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.sessions[id]; !exists {
		return fmt.Errorf("session %q not found", id)
	}
	delete(m.sessions, id)
	return nil
}

// Get returns the session with id.
func (m *Manager) Get(id string) (*Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[id]
	return s, ok
}

// Count returns the number of live sessions.
func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// List returns all sessions ordered by start time.
func (m *Manager) List() []*Session {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*Session, 0, len(m.sessions))
	for _, s := range m.sessions {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartedAt.Before(out[j].StartedAt) })
	return out
}
