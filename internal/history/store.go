// Package history keeps past evaluation results in SQLite so runs of the
// same prediction file can be compared over time.
package history

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	kbc "github.com/jamesainslie/go-kbc"
)

// timeLayout is fixed-width so recorded_at sorts correctly as text.
const timeLayout = "2006-01-02T15:04:05.000000000Z"

// Run is one stored evaluation.
type Run struct {
	ID         string
	RecordedAt time.Time
	Dataset    string
	Results    kbc.Results
}

// Store persists runs in a SQLite database.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// Open opens or creates the database at path.
func Open(path string) (*Store, error) {
	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(10000)&_pragma=journal_mode(WAL)&_pragma=synchronous(NORMAL)", path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Writes are serialized by SQLite anyway.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	s := &Store{db: db, now: time.Now}
	if err := s.initSchema(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}
	return s, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		recorded_at TEXT NOT NULL,
		evaluated_file TEXT NOT NULL,
		dataset TEXT NOT NULL DEFAULT '',
		n INTEGER NOT NULL,
		data TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_runs_file ON runs(evaluated_file, recorded_at);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Save stores r and returns the new run ID.
func (s *Store) Save(ctx context.Context, r kbc.Results, dataset string) (string, error) {
	data, err := json.Marshal(r)
	if err != nil {
		return "", fmt.Errorf("failed to encode results: %w", err)
	}

	id := uuid.NewString()
	recordedAt := s.now().UTC().Format(timeLayout)

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO runs (id, recorded_at, evaluated_file, dataset, n, data) VALUES (?, ?, ?, ?, ?, ?)`,
		id, recordedAt, r.EvaluatedFile, dataset, r.N, string(data))
	if err != nil {
		return "", fmt.Errorf("failed to save run: %w", err)
	}
	return id, nil
}

// List returns stored runs, newest first. An empty file lists runs of every
// file; limit <= 0 means no limit.
func (s *Store) List(ctx context.Context, file string, limit int) ([]Run, error) {
	query := `SELECT id, recorded_at, dataset, data FROM runs`
	var args []any
	if file != "" {
		query += ` WHERE evaluated_file = ?`
		args = append(args, file)
	}
	query += ` ORDER BY recorded_at DESC, id`
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var runs []Run
	for rows.Next() {
		var (
			run        Run
			recordedAt string
			data       string
		)
		if err := rows.Scan(&run.ID, &recordedAt, &run.Dataset, &data); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		if run.RecordedAt, err = time.Parse(timeLayout, recordedAt); err != nil {
			return nil, fmt.Errorf("run %s: bad timestamp %q: %w", run.ID, recordedAt, err)
		}
		if err := json.Unmarshal([]byte(data), &run.Results); err != nil {
			return nil, fmt.Errorf("run %s: failed to decode results: %w", run.ID, err)
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}
