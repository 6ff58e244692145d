package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// SQLiteStore records which page revisions were already submitted for
// indexing, so unchanged pages are never announced twice.
type SQLiteStore struct {
	db  *sql.DB
	now func() time.Time
}

// NewSQLiteStore opens (or creates) a SQLite database at dbPath and ensures the
// submitted_pages table exists.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite db: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging sqlite db: %w", err)
	}

	createTable := `CREATE TABLE IF NOT EXISTS submitted_pages (
		page_key     TEXT PRIMARY KEY,
		submitted_at INTEGER NOT NULL
	)`
	if _, err := db.Exec(createTable); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating submitted_pages table: %w", err)
	}

	return &SQLiteStore{db: db, now: time.Now}, nil
}

// HasSubmitted returns true if the page revision has already been recorded.
func (s *SQLiteStore) HasSubmitted(key string) (bool, error) {
	var exists int
	err := s.db.QueryRow("SELECT 1 FROM submitted_pages WHERE page_key = ?", key).Scan(&exists)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("checking submission of %s: %w", key, err)
	}
	return true, nil
}

// MarkSubmitted records a page revision. Recording it twice is a no-op.
func (s *SQLiteStore) MarkSubmitted(key string) error {
	_, err := s.db.Exec(
		"INSERT OR IGNORE INTO submitted_pages (page_key, submitted_at) VALUES (?, ?)",
		key, s.now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("marking %s as submitted: %w", key, err)
	}
	return nil
}

// Cleanup deletes entries older than the given duration.
func (s *SQLiteStore) Cleanup(olderThan time.Duration) error {
	cutoff := s.now().Add(-olderThan).Unix()
	_, err := s.db.Exec("DELETE FROM submitted_pages WHERE submitted_at < ?", cutoff)
	if err != nil {
		return fmt.Errorf("cleaning up submissions older than %v: %w", olderThan, err)
	}
	return nil
}

// IsEmpty returns true if nothing has been submitted yet.
func (s *SQLiteStore) IsEmpty() (bool, error) {
	var count int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM submitted_pages").Scan(&count); err != nil {
		return false, fmt.Errorf("checking if store is empty: %w", err)
	}
	return count == 0, nil
}

// Close closes the underlying database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
