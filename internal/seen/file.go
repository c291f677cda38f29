package seen

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// FileStore persists seen state as a JSON object of
// identity -> RFC 3339 first-seen timestamp in a single text file.
// This is the canonical backend: trivially inspectable, and cheap to
// cache between scheduled runs.
type FileStore struct {
	path      string
	retention time.Duration
	entries   map[string]time.Time
}

// OpenFile loads the store at path, purging entries older than
// retention. An absent, empty, or malformed file is treated as no
// prior state. When the purge removed anything, the shrunk state is
// written back immediately; a failure there is returned but the store
// is still usable, so callers may log and continue.
func OpenFile(path string, retention time.Duration) (*FileStore, error) {
	if retention <= 0 {
		retention = DefaultRetention
	}
	s := &FileStore{
		path:      path,
		retention: retention,
		entries:   make(map[string]time.Time),
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return s, nil
	}

	var raw map[string]string
	if err := json.Unmarshal(data, &raw); err != nil {
		return s, nil
	}

	cutoff := time.Now().Add(-retention)
	purged := false
	for id, stamp := range raw {
		ts, err := time.Parse(time.RFC3339, stamp)
		if err != nil {
			// Malformed timestamp: drop the entry rather than keep it forever.
			purged = true
			continue
		}
		if ts.Before(cutoff) {
			purged = true
			continue
		}
		s.entries[id] = ts
	}

	if purged {
		if err := s.persist(); err != nil {
			return s, fmt.Errorf("failed to persist purged state: %w", err)
		}
	}
	return s, nil
}

// Contains reports whether the identity was already alerted.
func (s *FileStore) Contains(identity string) bool {
	_, ok := s.entries[identity]
	return ok
}

// Record marks the identity seen now and rewrites the whole file, so
// earlier marks in this run survive a crash.
func (s *FileStore) Record(identity string) error {
	return s.recordAt(identity, time.Now())
}

func (s *FileStore) recordAt(identity string, ts time.Time) error {
	if _, ok := s.entries[identity]; ok {
		return nil // keep the first-seen timestamp
	}
	s.entries[identity] = ts
	return s.persist()
}

// Entries returns a copy of the current identity -> first-seen map.
func (s *FileStore) Entries() map[string]time.Time {
	out := make(map[string]time.Time, len(s.entries))
	for id, ts := range s.entries {
		out[id] = ts
	}
	return out
}

// Clear wipes all state and persists the empty map.
func (s *FileStore) Clear() error {
	s.entries = make(map[string]time.Time)
	return s.persist()
}

// Close is a no-op; every mutation already hit disk.
func (s *FileStore) Close() error { return nil }

func (s *FileStore) persist() error {
	raw := make(map[string]string, len(s.entries))
	for id, ts := range s.entries {
		raw[id] = ts.Format(time.RFC3339)
	}
	data, err := json.MarshalIndent(raw, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode seen state: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write seen state: %w", err)
	}
	return nil
}
