// Package history records one row per export run in a local SQLite
// database. Only run metadata is stored: log entries never enter the
// database and API keys are reduced to a fingerprint first.
package history

import (
	"database/sql"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// Run is the recorded outcome of one export run.
type Run struct {
	ID             string    `json:"id"`
	ProjectID      string    `json:"project_id"`
	AppID          string    `json:"app_id"`
	KeyFingerprint string    `json:"key_fingerprint"`
	FilterSummary  string    `json:"filter_summary,omitempty"`
	EntryCount     int       `json:"entry_count"`
	Status         string    `json:"status"`
	ErrorMessage   string    `json:"error_message,omitempty"`
	OutputPath     string    `json:"output_path,omitempty"`
	DurationMs     int64     `json:"duration_ms"`
	CreatedAt      time.Time `json:"created_at"`
}

// Run status values
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Store persists export runs in SQLite.
type Store struct {
	db     *sql.DB
	mu     sync.RWMutex
	closed bool
}

// New opens (or creates) the run-history database at dbPath.
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite works best with a single writer
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(time.Hour)

	store := &Store{db: db}
	if err := store.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}
	return store, nil
}

func (s *Store) createSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS export_runs (
		id              TEXT PRIMARY KEY,
		project_id      TEXT NOT NULL,
		app_id          TEXT NOT NULL,
		key_fingerprint TEXT NOT NULL,
		filter_summary  TEXT,
		entry_count     INTEGER DEFAULT 0,
		status          TEXT NOT NULL,
		error_message   TEXT,
		output_path     TEXT,
		duration_ms     INTEGER,
		created_at      DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_export_runs_created_at ON export_runs(created_at);
	CREATE INDEX IF NOT EXISTS idx_export_runs_app_id ON export_runs(app_id);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Record stores one export run. A missing ID or CreatedAt is filled in.
func (s *Store) Record(run *Run) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrStoreClosed
	}

	if run.ID == "" {
		run.ID = generateID("run")
	}
	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now().UTC()
	}

	_, err := s.db.Exec(`
		INSERT INTO export_runs (id, project_id, app_id, key_fingerprint,
			filter_summary, entry_count, status, error_message, output_path,
			duration_ms, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, run.ID, run.ProjectID, run.AppID, run.KeyFingerprint,
		run.FilterSummary, run.EntryCount, run.Status, run.ErrorMessage,
		run.OutputPath, run.DurationMs, run.CreatedAt)

	return err
}

// Recent returns the most recent runs, newest first. A non-positive limit
// defaults to 20.
func (s *Store) Recent(limit int) ([]*Run, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, ErrStoreClosed
	}
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(`
		SELECT id, project_id, app_id, key_fingerprint,
			COALESCE(filter_summary, ''), entry_count, status,
			COALESCE(error_message, ''), COALESCE(output_path, ''),
			COALESCE(duration_ms, 0), created_at
		FROM export_runs
		ORDER BY created_at DESC, id
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []*Run
	for rows.Next() {
		run := &Run{}
		if err := rows.Scan(&run.ID, &run.ProjectID, &run.AppID,
			&run.KeyFingerprint, &run.FilterSummary, &run.EntryCount,
			&run.Status, &run.ErrorMessage, &run.OutputPath,
			&run.DurationMs, &run.CreatedAt); err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// Close closes the underlying database.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true
	return s.db.Close()
}

// generateID creates a new unique ID with a prefix
func generateID(prefix string) string {
	return prefix + "_" + uuid.New().String()[:8]
}
