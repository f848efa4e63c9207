// Package genstate tracks which intakes the offline generator has already
// turned into plan files, so re-running it over the same intake directory
// does not produce duplicates.
package genstate

import (
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// StateDB records generated plans keyed by intake content hash.
type StateDB struct {
	db *sql.DB
}

// OpenStateDB opens (or creates) the SQLite state database at dir/state.db.
func OpenStateDB(dir string) (*StateDB, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating state dir %s: %w", dir, err)
	}

	dbPath := filepath.Join(dir, "state.db")
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening state db: %w", err)
	}

	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS generated_plans (
		intake_hash  TEXT PRIMARY KEY,
		intake_path  TEXT NOT NULL,
		plan_file    TEXT NOT NULL,
		generated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("creating state table: %w", err)
	}

	return &StateDB{db: db}, nil
}

// IsGenerated checks if a plan was already produced for this intake content.
func (s *StateDB) IsGenerated(intakeHash string) (bool, error) {
	var count int
	err := s.db.QueryRow(
		`SELECT COUNT(*) FROM generated_plans WHERE intake_hash = ?`,
		intakeHash,
	).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// MarkGenerated records that a plan file was written for this intake.
func (s *StateDB) MarkGenerated(intakeHash, intakePath, planFile string) error {
	_, err := s.db.Exec(
		`INSERT OR REPLACE INTO generated_plans (intake_hash, intake_path, plan_file) VALUES (?, ?, ?)`,
		intakeHash, intakePath, planFile,
	)
	return err
}

// Close closes the state database.
func (s *StateDB) Close() error {
	return s.db.Close()
}

// HashFile computes the SHA-256 hash of a file.
func HashFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
