// File: internal/history/store.go
//
// Append-only trend history. Each assessment run may append one immutable
// snapshot row; rows are never updated in place. The engine core does not
// depend on this package; only the report command does.
package history

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	jsoniter "github.com/json-iterator/go"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"github.com/xkilldash9x/reqlens-cli/api/schemas"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// takenAtFormat is fixed-width so lexical ORDER BY matches chronological
// order. RFC3339Nano trims trailing zeros and would misorder sub-second
// timestamps.
const takenAtFormat = "2006-01-02T15:04:05.000000000Z07:00"

// ErrNoSnapshots is returned when the history holds nothing for a project.
var ErrNoSnapshots = errors.New("history: no snapshots stored")

const schema = `
CREATE TABLE IF NOT EXISTS snapshots (
	id       TEXT PRIMARY KEY,
	project  TEXT NOT NULL,
	taken_at TEXT NOT NULL,
	payload  TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_snapshots_project_taken
	ON snapshots (project, taken_at DESC);
`

// Store persists snapshots in a local sqlite database.
type Store struct {
	db  *sql.DB
	log *zap.Logger
}

// Open creates or opens the history database at the given path, creating
// parent directories as needed.
func Open(path string, logger *zap.Logger) (*Store, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create history directory: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open history database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("initialize history schema: %w", err)
	}
	return &Store{db: db, log: logger.Named("history")}, nil
}

// Append stores one snapshot. Rows are immutable: an id collision is an
// error, never an overwrite.
func (s *Store) Append(ctx context.Context, snap schemas.Snapshot) error {
	payload, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("serialize snapshot: %w", err)
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO snapshots (id, project, taken_at, payload) VALUES (?, ?, ?, ?)`,
		snap.ID, snap.ProjectName, snap.TakenAt.UTC().Format(takenAtFormat), string(payload))
	if err != nil {
		return fmt.Errorf("append snapshot: %w", err)
	}
	s.log.Debug("snapshot appended", zap.String("id", snap.ID), zap.String("project", snap.ProjectName))
	return nil
}

// Latest returns the most recent snapshot for a project.
func (s *Store) Latest(ctx context.Context, project string) (schemas.Snapshot, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT payload FROM snapshots WHERE project = ? ORDER BY taken_at DESC LIMIT 1`, project)
	var payload string
	if err := row.Scan(&payload); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return schemas.Snapshot{}, ErrNoSnapshots
		}
		return schemas.Snapshot{}, fmt.Errorf("read latest snapshot: %w", err)
	}
	var snap schemas.Snapshot
	if err := json.Unmarshal([]byte(payload), &snap); err != nil {
		return schemas.Snapshot{}, fmt.Errorf("decode stored snapshot: %w", err)
	}
	return snap, nil
}

// Recent returns up to n snapshots for a project, newest first.
func (s *Store) Recent(ctx context.Context, project string, n int) ([]schemas.Snapshot, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT payload FROM snapshots WHERE project = ? ORDER BY taken_at DESC LIMIT ?`, project, n)
	if err != nil {
		return nil, fmt.Errorf("read recent snapshots: %w", err)
	}
	defer rows.Close()

	var out []schemas.Snapshot
	for rows.Next() {
		var payload string
		if err := rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("scan snapshot row: %w", err)
		}
		var snap schemas.Snapshot
		if err := json.Unmarshal([]byte(payload), &snap); err != nil {
			return nil, fmt.Errorf("decode stored snapshot: %w", err)
		}
		out = append(out, snap)
	}
	return out, rows.Err()
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}
