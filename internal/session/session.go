// Package session holds per-browser state between requests: the current
// bulletin record and an optionally uploaded template. State lives in memory
// only; a restart starts everyone over, which is fine for a single-operator
// tool.
package session

import (
	"sync"

	"github.com/google/uuid"

	"github.com/adamamaa/worship/internal/domain"
)

// State is the per-session workspace. Lifecycle is linear: empty → analyzed
// → edited → downloaded; a new analysis replaces the record wholesale.
type State struct {
	Record   *domain.BulletinRecord
	Template []byte
}

// Manager keeps session states keyed by the session cookie value.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*State
}

// NewManager creates an empty session manager.
func NewManager() *Manager {
	return &Manager{sessions: make(map[string]*State)}
}

// NewID returns a fresh session identifier.
func (m *Manager) NewID() string {
	return uuid.New().String()
}

// Record returns the session's current record, or nil when nothing has been
// analyzed yet.
func (m *Manager) Record(id string) *domain.BulletinRecord {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if st, ok := m.sessions[id]; ok {
		return st.Record
	}
	return nil
}

// SetRecord replaces the session's record wholesale.
func (m *Manager) SetRecord(id string, rec *domain.BulletinRecord) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state(id).Record = rec
}

// Template returns the session-scoped template bytes, or nil.
func (m *Manager) Template(id string) []byte {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if st, ok := m.sessions[id]; ok {
		return st.Template
	}
	return nil
}

// SetTemplate stores template bytes for this session only.
func (m *Manager) SetTemplate(id string, data []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state(id).Template = data
}

// state returns the session's state, creating it if needed. Caller holds the
// write lock.
func (m *Manager) state(id string) *State {
	st, ok := m.sessions[id]
	if !ok {
		st = &State{}
		m.sessions[id] = st
	}
	return st
}
