package seen

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // Pure-Go SQLite driver (no CGO required)
)

// SQLiteStore backs the seen state with an embedded SQLite database.
// Same contract as FileStore; useful when the state file would grow
// large or when a runner already caches a database between runs.
type SQLiteStore struct {
	db        *sql.DB
	retention time.Duration
}

// OpenSQLite opens (creating if needed) the database at path and purges
// entries older than retention. The purge DELETE at open is the
// load-time eviction; it is durable immediately.
func OpenSQLite(path string, retention time.Duration) (*SQLiteStore, error) {
	if retention <= 0 {
		retention = DefaultRetention
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Enable WAL mode for cheaper synchronous writes
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
	}

	schema := `
	CREATE TABLE IF NOT EXISTS seen (
		identity   TEXT PRIMARY KEY,
		first_seen TEXT NOT NULL
	);`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	s := &SQLiteStore{db: db, retention: retention}

	cutoff := time.Now().Add(-retention).UTC().Format(time.RFC3339)
	if _, err := db.Exec("DELETE FROM seen WHERE first_seen < ?", cutoff); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to purge expired entries: %w", err)
	}
	return s, nil
}

// Contains reports whether the identity was already alerted.
func (s *SQLiteStore) Contains(identity string) bool {
	var one int
	err := s.db.QueryRow("SELECT 1 FROM seen WHERE identity = ?", identity).Scan(&one)
	return err == nil
}

// Record marks the identity seen now. An existing row keeps its
// original first-seen timestamp.
func (s *SQLiteStore) Record(identity string) error {
	return s.recordAt(identity, time.Now())
}

func (s *SQLiteStore) recordAt(identity string, ts time.Time) error {
	_, err := s.db.Exec(
		"INSERT INTO seen (identity, first_seen) VALUES (?, ?) ON CONFLICT(identity) DO NOTHING",
		identity, ts.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to record seen item: %w", err)
	}
	return nil
}

// Entries returns a copy of the current identity -> first-seen map.
func (s *SQLiteStore) Entries() map[string]time.Time {
	out := make(map[string]time.Time)
	rows, err := s.db.Query("SELECT identity, first_seen FROM seen")
	if err != nil {
		return out
	}
	defer rows.Close()

	for rows.Next() {
		var id, stamp string
		if err := rows.Scan(&id, &stamp); err != nil {
			continue
		}
		ts, err := time.Parse(time.RFC3339, stamp)
		if err != nil {
			continue
		}
		out[id] = ts
	}
	return out
}

// Clear wipes all state.
func (s *SQLiteStore) Clear() error {
	if _, err := s.db.Exec("DELETE FROM seen"); err != nil {
		return fmt.Errorf("failed to clear seen state: %w", err)
	}
	return nil
}

// Close closes the database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
