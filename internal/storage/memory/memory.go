// Package memory is an in-process storage.Storage used by tests and
// throwaway runs. Nothing survives the process.
package memory

import "sync"

// Memory holds at most one snapshot.
type Memory struct {
	mu       sync.Mutex
	snapshot string
	ok       bool

	// SaveErr, when non-nil, is returned by every Save and the stored
	// snapshot is left untouched.
	SaveErr error
	saves   int
}

// New returns an empty Memory.
func New() *Memory {
	return &Memory{}
}

// NewWithSnapshot returns a Memory that already holds snapshot.
func NewWithSnapshot(snapshot string) *Memory {
	return &Memory{snapshot: snapshot, ok: true}
}

func (m *Memory) Load() (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.snapshot, m.ok, nil
}

func (m *Memory) Save(snapshot string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.snapshot = snapshot
	m.ok = true
	m.saves++
	return nil
}

// Saves reports how many successful Save calls have been made.
func (m *Memory) Saves() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saves
}
