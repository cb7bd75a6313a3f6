package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// nowUTC returns the current UTC time as an ISO 8601 string.
func nowUTC() string { return time.Now().UTC().Format(time.RFC3339) }

// SqlStore persists runs in SQLite.
type SqlStore struct {
	db *sql.DB
}

// Open opens or creates a SQLite DB at path and runs migrations.
// Creates the parent directory (e.g. .fibercheck) if it does not exist.
func Open(path string) (*SqlStore, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create store dir: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}
	s := &SqlStore{db: db}
	if err := s.migrate(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

func (s *SqlStore) migrate() error {
	var tableCount int
	err := s.db.QueryRow(
		"SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='schema_version'",
	).Scan(&tableCount)
	if err != nil {
		return fmt.Errorf("check schema_version table: %w", err)
	}

	if tableCount == 0 {
		// Fresh database.
		if _, err := s.db.Exec(schemaV1); err != nil {
			return fmt.Errorf("create schema: %w", err)
		}
		if _, err := s.db.Exec("INSERT INTO schema_version(version) VALUES(?)", currentSchemaVersion); err != nil {
			return fmt.Errorf("set schema version: %w", err)
		}
		return nil
	}

	var v int
	err = s.db.QueryRow("SELECT version FROM schema_version LIMIT 1").Scan(&v)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("read schema version: %w", err)
	}
	if errors.Is(err, sql.ErrNoRows) {
		v = schemaVersionV1
		if _, err := s.db.Exec("INSERT INTO schema_version(version) VALUES(?)", v); err != nil {
			return fmt.Errorf("set schema version: %w", err)
		}
	}

	switch v {
	case currentSchemaVersion:
		return nil
	default:
		return fmt.Errorf("unknown schema version %d", v)
	}
}

// Close closes the database connection.
func (s *SqlStore) Close() error {
	return s.db.Close()
}

// SaveRun inserts the run and returns its id. StartedAt/FinishedAt
// default to now when empty.
func (s *SqlStore) SaveRun(run *Run) (int64, error) {
	if run == nil {
		return 0, errors.New("run is nil")
	}
	payload, err := json.Marshal(run.Results)
	if err != nil {
		return 0, fmt.Errorf("marshal results: %w", err)
	}
	started, finished := run.StartedAt, run.FinishedAt
	if started == "" {
		started = nowUTC()
	}
	if finished == "" {
		finished = nowUTC()
	}
	res, err := s.db.Exec(
		`INSERT INTO runs(source, workspace, started_at, finished_at,
		                  checks_total, checks_failed, checks_indeterminate, results_payload)
		 VALUES(?, ?, ?, ?, ?, ?, ?, ?)`,
		run.Source, run.Workspace, started, finished,
		len(run.Results), run.Failed(), run.Indeterminate(), payload,
	)
	if err != nil {
		return 0, fmt.Errorf("insert run: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("last insert id: %w", err)
	}
	run.ID = id
	return id, nil
}

// GetRun returns the run by id with its full results, or nil if not
// found.
func (s *SqlStore) GetRun(id int64) (*Run, error) {
	var r Run
	var payload []byte
	err := s.db.QueryRow(
		`SELECT id, source, workspace, started_at, finished_at, results_payload
		 FROM runs WHERE id = ?`,
		id,
	).Scan(&r.ID, &r.Source, &r.Workspace, &r.StartedAt, &r.FinishedAt, &payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get run: %w", err)
	}
	if err := json.Unmarshal(payload, &r.Results); err != nil {
		return nil, fmt.Errorf("unmarshal results: %w", err)
	}
	return &r, nil
}

// ListRuns returns run summaries, newest first.
func (s *SqlStore) ListRuns() ([]*RunSummary, error) {
	rows, err := s.db.Query(
		`SELECT id, source, workspace, started_at, finished_at,
		        checks_total, checks_failed, checks_indeterminate
		 FROM runs ORDER BY id DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()
	var list []*RunSummary
	for rows.Next() {
		var r RunSummary
		if err := rows.Scan(&r.ID, &r.Source, &r.Workspace, &r.StartedAt, &r.FinishedAt,
			&r.ChecksTotal, &r.ChecksFailed, &r.ChecksIndeterminate); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		list = append(list, &r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	return list, nil
}
