package snapshot

import (
	"context"
	"errors"
	"fmt"
	"os"
)

// ErrNotFound is returned by Load when no snapshot exists under the name.
var ErrNotFound = errors.New("snapshot not found")

// Store persists named blobs. Save fully overwrites the previous blob for the
// name in one write; there are no partial updates.
type Store interface {
	Load(ctx context.Context, name string) ([]byte, error)
	Save(ctx context.Context, name string, data []byte) error
	Delete(ctx context.Context, name string) error
	Close() error
}

// Driver identifies a snapshot storage backend.
type Driver string

const (
	DriverSQLite   Driver = "sqlite"
	DriverPostgres Driver = "postgres"
	DriverMemory   Driver = "memory"
)

// Open selects a Store implementation using environment variables.
//
//	PROPTRACK_SNAPSHOT_DRIVER: sqlite|postgres|memory (default sqlite)
//	PROPTRACK_SNAPSHOT_PATH:   database file when driver=sqlite (default ./proptrack.db)
//	PROPTRACK_SNAPSHOT_DSN:    connection string when driver=postgres
func Open(ctx context.Context) (Store, error) {
	driver := os.Getenv("PROPTRACK_SNAPSHOT_DRIVER")
	if driver == "" {
		driver = string(DriverSQLite)
	}
	switch Driver(driver) {
	case DriverSQLite:
		path := os.Getenv("PROPTRACK_SNAPSHOT_PATH")
		if path == "" {
			path = "proptrack.db"
		}
		return NewSQLite(ctx, path)
	case DriverPostgres:
		return NewPostgres(ctx, os.Getenv("PROPTRACK_SNAPSHOT_DSN"))
	case DriverMemory:
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("unknown snapshot driver %s", driver)
	}
}
