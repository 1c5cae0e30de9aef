package snapshot

import (
	"context"
	"database/sql"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
)

// PostgresStore keeps snapshots in a Postgres table for deployments where the
// dashboard data should live next to other shared infrastructure.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgres connects via pgx's database/sql adapter and ensures the
// snapshots table exists.
func NewPostgres(ctx context.Context, dsn string) (*PostgresStore, error) {
	config, err := pgx.ParseConfig(dsn)
	if err != nil {
		return nil, err
	}
	db := stdlib.OpenDB(*config)
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, err
	}
	_, err = db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS snapshots (
		    name       TEXT PRIMARY KEY,
		    revision   BIGINT NOT NULL DEFAULT 1,
		    data       BYTEA NOT NULL,
		    updated_at TIMESTAMPTZ NOT NULL
		)`)
	if err != nil {
		db.Close()
		return nil, err
	}
	return &PostgresStore{db: db}, nil
}

func (s *PostgresStore) Load(ctx context.Context, name string) ([]byte, error) {
	var data []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT data FROM snapshots WHERE name = $1`, name).Scan(&data)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	return data, err
}

func (s *PostgresStore) Save(ctx context.Context, name string, data []byte) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO snapshots (name, revision, data, updated_at)
		VALUES ($1, 1, $2, $3)
		ON CONFLICT (name) DO UPDATE SET
		    revision   = snapshots.revision + 1,
		    data       = EXCLUDED.data,
		    updated_at = EXCLUDED.updated_at`,
		name, data, time.Now().UTC())
	return err
}

func (s *PostgresStore) Delete(ctx context.Context, name string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM snapshots WHERE name = $1`, name)
	return err
}

func (s *PostgresStore) Close() error {
	return s.db.Close()
}
