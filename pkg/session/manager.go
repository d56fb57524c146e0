package session

import (
	"fmt"
	"sync"
)

// Manager is the registry of live investigations, keyed by task ID. The
// HTTP boundary uses it to route abort and approval decisions to the
// right trace; absence of an entry means the task is not running here.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewManager creates an empty registry.
func NewManager() *Manager {
	return &Manager{
		sessions: make(map[string]*Session),
	}
}

// Register adds a session. A second registration for the same task is a
// programming error and is rejected.
func (m *Manager) Register(s *Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.sessions[s.TaskID]; exists {
		return fmt.Errorf("session already registered for task %s", s.TaskID)
	}
	m.sessions[s.TaskID] = s
	return nil
}

// Get returns the live session for a task, if any.
func (m *Manager) Get(taskID string) (*Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[taskID]
	return s, ok
}

// Remove drops a session from the registry. Called after the done frame
// is emitted; removing an absent entry is a no-op.
func (m *Manager) Remove(taskID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, taskID)
}

// Count returns the number of live investigations.
func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}
