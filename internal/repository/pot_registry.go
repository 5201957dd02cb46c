package repository

import (
	"sync"

	"htcpcp/internal/models"
)

// potEntry pairs a pot with its mutex. The mutex is the per-pot critical
// section: two concurrent BREW requests against the same pot can never
// interleave between the depletion check and the state transition.
type potEntry struct {
	mu  sync.Mutex
	pot models.Pot
}

// PotMemory is the in-memory pot registry. The entry map and insertion order
// are fixed at construction and never modified afterwards, so they need no
// locking of their own; only the per-entry state is mutable.
type PotMemory struct {
	entries map[string]*potEntry
	order   []string
}

// NewPotMemory seeds the registry. Duplicate ids keep the first definition.
// A pot seeded with no cups left starts out empty regardless of its declared
// state.
func NewPotMemory(seed []models.Pot) *PotMemory {
	m := &PotMemory{entries: make(map[string]*potEntry, len(seed))}
	for _, p := range seed {
		if _, dup := m.entries[p.ID]; dup {
			continue
		}
		if p.State == "" {
			p.State = models.StateIdle
		}
		if p.Level <= 0 {
			p.Level = 0
			p.State = models.StateEmpty
		}
		m.entries[p.ID] = &potEntry{pot: clonePot(p)}
		m.order = append(m.order, p.ID)
	}
	return m
}

// Lookup returns a snapshot of the pot, or ErrPotNotFound.
func (m *PotMemory) Lookup(id string) (models.Pot, error) {
	e, ok := m.entries[id]
	if !ok {
		return models.Pot{}, models.ErrPotNotFound
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return clonePot(e.pot), nil
}

// ListAll returns snapshots in insertion order.
func (m *PotMemory) ListAll() []models.Pot {
	out := make([]models.Pot, 0, len(m.order))
	for _, id := range m.order {
		e := m.entries[id]
		e.mu.Lock()
		out = append(out, clonePot(e.pot))
		e.mu.Unlock()
	}
	return out
}

// Update runs fn under the pot's lock. fn receives a working copy; the copy
// is committed only when fn returns nil, so a failing callback leaves the pot
// untouched.
func (m *PotMemory) Update(id string, fn func(*models.Pot) error) error {
	e, ok := m.entries[id]
	if !ok {
		return models.ErrPotNotFound
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	work := clonePot(e.pot)
	if err := fn(&work); err != nil {
		return err
	}
	e.pot = work
	return nil
}

// clonePot copies the pot including its variety slice, so snapshots never
// share backing arrays with registry state.
func clonePot(p models.Pot) models.Pot {
	p.Varieties = append([]string(nil), p.Varieties...)
	return p
}
