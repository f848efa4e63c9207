package genstate

import (
	"os"
	"path/filepath"
	"testing"
)

// TestStateRoundTrip verifies marking and re-checking a generated intake.
func TestStateRoundTrip(t *testing.T) {
	s, err := OpenStateDB(t.TempDir())
	if err != nil {
		t.Fatalf("OpenStateDB: %v", err)
	}
	defer s.Close()

	done, err := s.IsGenerated("abc123")
	if err != nil {
		t.Fatalf("IsGenerated: %v", err)
	}
	if done {
		t.Error("fresh state db reports intake as generated")
	}

	if err := s.MarkGenerated("abc123", "intakes/casey.json", "casey-marathon.json"); err != nil {
		t.Fatalf("MarkGenerated: %v", err)
	}

	done, err = s.IsGenerated("abc123")
	if err != nil {
		t.Fatalf("IsGenerated: %v", err)
	}
	if !done {
		t.Error("marked intake not reported as generated")
	}
}

// TestStatePersistsAcrossOpens verifies state survives reopening the db.
func TestStatePersistsAcrossOpens(t *testing.T) {
	dir := t.TempDir()

	s, err := OpenStateDB(dir)
	if err != nil {
		t.Fatalf("OpenStateDB: %v", err)
	}
	if err := s.MarkGenerated("h1", "a.json", "a-plan.json"); err != nil {
		t.Fatalf("MarkGenerated: %v", err)
	}
	s.Close()

	s, err = OpenStateDB(dir)
	if err != nil {
		t.Fatalf("reopening: %v", err)
	}
	defer s.Close()

	done, err := s.IsGenerated("h1")
	if err != nil {
		t.Fatalf("IsGenerated: %v", err)
	}
	if !done {
		t.Error("state lost across reopen")
	}
}

// TestHashFile verifies content hashing is stable and content-sensitive.
func TestHashFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "intake.json")
	if err := os.WriteFile(path, []byte(`{"email":"a@example.com"}`), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	h1, err := HashFile(path)
	if err != nil {
		t.Fatalf("HashFile: %v", err)
	}
	h2, err := HashFile(path)
	if err != nil {
		t.Fatalf("HashFile: %v", err)
	}
	if h1 != h2 {
		t.Error("hash not stable for unchanged file")
	}

	if err := os.WriteFile(path, []byte(`{"email":"b@example.com"}`), 0o644); err != nil {
		t.Fatalf("rewriting fixture: %v", err)
	}
	h3, err := HashFile(path)
	if err != nil {
		t.Fatalf("HashFile: %v", err)
	}
	if h3 == h1 {
		t.Error("hash unchanged after content change")
	}
}
