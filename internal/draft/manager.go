package draft

import (
	"sync"

	"github.com/google/uuid"
)

type entry struct {
	mu   sync.Mutex
	sess *Session
}

// Manager keeps one draft session per analyst, created on first access and
// discarded when the session ends. Each analyst's actions run serialized; the
// sessions themselves are independent and unshared.
type Manager struct {
	mu      sync.Mutex
	entries map[uuid.UUID]*entry
}

func NewManager() *Manager {
	return &Manager{entries: make(map[uuid.UUID]*entry)}
}

func (m *Manager) get(userID uuid.UUID) *entry {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.entries[userID]
	if !ok {
		e = &entry{sess: NewSession()}
		m.entries[userID] = e
	}
	return e
}

// With runs fn against the analyst's session under its lock.
func (m *Manager) With(userID uuid.UUID, fn func(*Session) error) error {
	e := m.get(userID)
	e.mu.Lock()
	defer e.mu.Unlock()
	return fn(e.sess)
}

// Remove discards the analyst's session entirely.
func (m *Manager) Remove(userID uuid.UUID) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, userID)
}
