package snapshot

import (
	"context"
	"database/sql"
	"time"

	_ "modernc.org/sqlite"
)

// SQLiteStore keeps snapshots in an embedded sqlite database, one row per
// snapshot name. This is the default driver: a single local file, no server.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLite opens (or creates) the database file and ensures the snapshots
// table exists. cmd/migrate applies the same DDL; the inline create keeps a
// fresh install working without a migration step.
func NewSQLite(ctx context.Context, path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, err
	}
	if _, err := db.ExecContext(ctx, createSnapshotsTable); err != nil {
		db.Close()
		return nil, err
	}
	return &SQLiteStore{db: db}, nil
}

const createSnapshotsTable = `
CREATE TABLE IF NOT EXISTS snapshots (
    name       TEXT PRIMARY KEY,
    revision   INTEGER NOT NULL DEFAULT 1,
    data       BLOB NOT NULL,
    updated_at TIMESTAMP NOT NULL
)`

func (s *SQLiteStore) Load(ctx context.Context, name string) ([]byte, error) {
	var data []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT data FROM snapshots WHERE name = ?`, name).Scan(&data)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	return data, err
}

func (s *SQLiteStore) Save(ctx context.Context, name string, data []byte) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO snapshots (name, revision, data, updated_at)
		VALUES (?, 1, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
		    revision   = revision + 1,
		    data       = excluded.data,
		    updated_at = excluded.updated_at`,
		name, data, time.Now().UTC())
	return err
}

func (s *SQLiteStore) Delete(ctx context.Context, name string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM snapshots WHERE name = ?`, name)
	return err
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
