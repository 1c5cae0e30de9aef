package store

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/proptrack-io/property-management-service/internal/crypto"
	"github.com/proptrack-io/property-management-service/internal/monitoring"
)

// ReplicaName is the fixed key the sealed snapshot is replicated under.
const ReplicaName = "proptrack:replica"

// Replicator uploads a snapshot payload to the remote replica.
type Replicator interface {
	Replicate(ctx context.Context, revision string, payload []byte) error
	Close() error
}

// RedisClient is the narrow slice of the redis API the replicator needs.
type RedisClient interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Close() error
}

// RedisReplicator writes the sealed snapshot to a redis instance standing in
// for the future spreadsheet sync target.
type RedisReplicator struct {
	client RedisClient
	key    string
}

func NewRedisReplicator(addr string) *RedisReplicator {
	rdb := redis.NewClient(&redis.Options{
		Addr: addr,
	})
	return &RedisReplicator{client: rdb, key: ReplicaName}
}

func (r *RedisReplicator) Replicate(ctx context.Context, revision string, payload []byte) error {
	if err := r.client.Set(ctx, r.key, payload, 0).Err(); err != nil {
		return err
	}
	return r.client.Set(ctx, r.key+":revision", revision, 0).Err()
}

func (r *RedisReplicator) Close() error {
	return r.client.Close()
}

// fanOut uploads the just-persisted payload to the replica in the background.
// The caller does not wait: a failed sync is alerted on and dropped, never
// retried. The syncing flag is raised before the goroutine starts so callers
// observe it immediately after the mutation returns.
func (s *Store) fanOut(payload []byte) {
	if s.replica == nil {
		return
	}
	s.syncing.Store(true)
	monitoring.SyncInFlight.Set(1)

	go func() {
		defer func() {
			s.syncing.Store(false)
			monitoring.SyncInFlight.Set(0)
		}()

		start := time.Now()
		sealed, err := crypto.Seal(payload)
		if err == nil {
			err = s.replica.Replicate(context.Background(), uuid.NewString(), sealed)
		}
		monitoring.SyncDuration.Observe(time.Since(start).Seconds())

		if err != nil {
			monitoring.SyncFailures.Inc()
			monitoring.Alert("replica sync failed", map[string]string{"error": err.Error()})
			return
		}
		now := time.Now()
		s.lastSync.Store(&now)
		log.Debug().Dur("duration", time.Since(start)).Msg("Replica sync complete")
	}()
}

// Syncing reports whether a replica upload is currently outstanding.
func (s *Store) Syncing() bool {
	return s.syncing.Load()
}

// LastSync returns the completion time of the most recent successful replica
// upload, or nil when none has succeeded yet.
func (s *Store) LastSync() *time.Time {
	return s.lastSync.Load()
}
