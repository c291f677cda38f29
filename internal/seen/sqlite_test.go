package seen

import (
	"path/filepath"
	"testing"
	"time"
)

func openTestSQLite(t *testing.T, path string) *SQLiteStore {
	t.Helper()
	s, err := OpenSQLite(path, DefaultRetention)
	if err != nil {
		t.Fatalf("OpenSQLite failed: %v", err)
	}
	return s
}

func TestSQLiteRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seen.db")

	s := openTestSQLite(t, path)
	if err := s.Record("abc123"); err != nil {
		t.Fatalf("Record failed: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	s2 := openTestSQLite(t, path)
	defer s2.Close()
	if !s2.Contains("abc123") {
		t.Error("recorded identity should survive a fresh open")
	}
	if s2.Contains("missing") {
		t.Error("unknown identity should not be contained")
	}
}

func TestSQLiteOpenPurge(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seen.db")
	now := time.Now()

	s := openTestSQLite(t, path)
	if err := s.recordAt("stale", now.Add(-50*time.Hour)); err != nil {
		t.Fatal(err)
	}
	if err := s.recordAt("fresh", now.Add(-2*time.Hour)); err != nil {
		t.Fatal(err)
	}
	s.Close()

	s2, err := OpenSQLite(path, 48*time.Hour)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer s2.Close()

	if s2.Contains("stale") {
		t.Error("entry older than the retention window should be purged at open")
	}
	if !s2.Contains("fresh") {
		t.Error("entry inside the retention window should remain")
	}
	if n := len(s2.Entries()); n != 1 {
		t.Errorf("got %d entries after purge, want 1", n)
	}
}

func TestSQLiteKeepsFirstSeen(t *testing.T) {
	s := openTestSQLite(t, filepath.Join(t.TempDir(), "seen.db"))
	defer s.Close()

	early := time.Now().Add(-time.Hour).UTC().Truncate(time.Second)
	if err := s.recordAt("id", early); err != nil {
		t.Fatal(err)
	}
	if err := s.Record("id"); err != nil {
		t.Fatal(err)
	}
	if got := s.Entries()["id"]; !got.Equal(early) {
		t.Errorf("re-recording should keep first-seen timestamp, got %v want %v", got, early)
	}
}

func TestSQLiteClear(t *testing.T) {
	s := openTestSQLite(t, filepath.Join(t.TempDir(), "seen.db"))
	defer s.Close()

	if err := s.Record("abc"); err != nil {
		t.Fatal(err)
	}
	if err := s.Clear(); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}
	if s.Contains("abc") {
		t.Error("cleared store should be empty")
	}
}
