package store

import (
	"context"
	"encoding/json"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/proptrack-io/property-management-service/internal/model"
	"github.com/proptrack-io/property-management-service/internal/snapshot"
)

// SnapshotName is the fixed key the full data snapshot is stored under.
const SnapshotName = "proptrack:data"

// ConflictError is raised by the deletion guards; its message is shown to the
// user verbatim.
type ConflictError struct {
	Reason string
}

func (e *ConflictError) Error() string { return e.Reason }

// collections is the serialized shape of the snapshot: all seven collections
// written as one blob.
type collections struct {
	Owners    []model.Owner         `json:"owners"`
	Buildings []model.Building      `json:"buildings"`
	Units     []model.Unit          `json:"units"`
	Tenants   []model.Tenant        `json:"tenants"`
	Payments  []model.RentPayment   `json:"payments"`
	Expenses  []model.Expense       `json:"expenses"`
	Reports   []model.MonthlyReport `json:"reports"`
}

// Store is the authoritative in-memory record store. Every mutation persists
// the full snapshot and then fans it out to the remote replica.
type Store struct {
	mu      sync.Mutex
	snap    snapshot.Store
	replica Replicator
	data    collections
	lastID  int64

	syncing  atomic.Bool
	lastSync atomic.Pointer[time.Time]
}

// Option configures a Store.
type Option func(*Store)

// WithReplicator attaches a remote replica target; without one, mutations are
// only persisted locally.
func WithReplicator(r Replicator) Option {
	return func(s *Store) { s.replica = r }
}

// New creates a Store over the given snapshot storage. Call Load before use.
func New(snap snapshot.Store, opts ...Option) *Store {
	s := &Store{snap: snap}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load reads the snapshot into memory. When no snapshot exists yet the store
// is seeded from the demo dataset and persisted immediately.
func (s *Store) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.snap.Load(ctx, SnapshotName)
	if err == snapshot.ErrNotFound {
		log.Info().Msg("No snapshot found, seeding demo dataset")
		s.data = seedData()
		return s.persist(ctx)
	}
	if err != nil {
		return err
	}
	return json.Unmarshal(data, &s.data)
}

// persist writes the full snapshot and triggers the replica fan-out. Callers
// must hold s.mu.
func (s *Store) persist(ctx context.Context) error {
	payload, err := json.Marshal(s.data)
	if err != nil {
		return err
	}
	if err := s.snap.Save(ctx, SnapshotName, payload); err != nil {
		return err
	}
	s.fanOut(payload)
	return nil
}

// nextID returns a time-derived id with the collection's prefix letter. The
// counter bump keeps ids distinct when two mutations land on the same
// millisecond. Callers must hold s.mu.
func (s *Store) nextID(prefix string) string {
	id := time.Now().UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return prefix + strconv.FormatInt(id, 10)
}
