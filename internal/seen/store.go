// Package seen persists which headline identities have already been
// alerted, across independent short-lived runs.
//
// The contract every backend honors: loading tolerates absent, empty,
// or malformed prior state (all become "no prior state"); entries older
// than the retention window are purged at load and never re-added; and
// Record persists synchronously so a crash mid-run keeps earlier marks.
//
// Single-writer, single-process model. Concurrent runs would race on
// the backing state; that precondition is assumed, not enforced.
package seen

import "time"

// DefaultRetention is the rolling window an identity stays remembered.
const DefaultRetention = 48 * time.Hour

// Store tracks alerted identities with first-seen timestamps.
type Store interface {
	// Contains reports whether the identity was already alerted.
	Contains(identity string) bool

	// Record marks the identity seen now and persists immediately.
	Record(identity string) error

	// Entries returns a copy of the current identity -> first-seen map.
	Entries() map[string]time.Time

	// Clear wipes all state.
	Clear() error

	// Close releases any backing resources.
	Close() error
}

// Memory is a Store with no persistence. Used by dry runs and tests.
type Memory struct {
	entries map[string]time.Time
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{entries: make(map[string]time.Time)}
}

func (m *Memory) Contains(identity string) bool {
	_, ok := m.entries[identity]
	return ok
}

func (m *Memory) Record(identity string) error {
	if _, ok := m.entries[identity]; !ok {
		m.entries[identity] = time.Now()
	}
	return nil
}

func (m *Memory) Entries() map[string]time.Time {
	out := make(map[string]time.Time, len(m.entries))
	for id, ts := range m.entries {
		out[id] = ts
	}
	return out
}

func (m *Memory) Clear() error {
	m.entries = make(map[string]time.Time)
	return nil
}

func (m *Memory) Close() error { return nil }
