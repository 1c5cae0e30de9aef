package store

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/proptrack-io/property-management-service/internal/crypto"
	"github.com/proptrack-io/property-management-service/internal/model"
	"github.com/proptrack-io/property-management-service/internal/snapshot"
)

type fakeReplicator struct {
	mu       sync.Mutex
	payloads [][]byte
	err      error
}

func (f *fakeReplicator) Replicate(_ context.Context, _ string, payload []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.payloads = append(f.payloads, payload)
	return nil
}

func (f *fakeReplicator) Close() error { return nil }

func (f *fakeReplicator) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.payloads)
}

func (f *fakeReplicator) last() []byte {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.payloads[len(f.payloads)-1]
}

func TestFanOut_UploadsSealedSnapshot(t *testing.T) {
	replica := &fakeReplicator{}
	s := New(snapshot.NewMemory(), WithReplicator(replica))
	ctx := context.Background()
	require.NoError(t, s.Load(ctx)) // seeding persists, which fans out

	require.Eventually(t, func() bool {
		return replica.count() == 1 && !s.Syncing()
	}, time.Second, 10*time.Millisecond)

	_, err := s.AddOwner(ctx, model.Owner{Name: "Synced Owner"})
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		return replica.count() == 2 && !s.Syncing()
	}, time.Second, 10*time.Millisecond)

	// The uploaded payload is the sealed snapshot, not plaintext.
	opened, err := crypto.Open(replica.last())
	require.NoError(t, err)
	var data collections
	require.NoError(t, json.Unmarshal(opened, &data))
	assert.Len(t, data.Owners, 3)

	require.NotNil(t, s.LastSync())
	assert.WithinDuration(t, time.Now(), *s.LastSync(), time.Second)
}

func TestFanOut_FailureIsDroppedNotRetried(t *testing.T) {
	replica := &fakeReplicator{err: errors.New("replica unreachable")}
	s := New(snapshot.NewMemory(), WithReplicator(replica))
	ctx := context.Background()
	require.NoError(t, s.Load(ctx))

	require.Eventually(t, func() bool {
		return !s.Syncing()
	}, time.Second, 10*time.Millisecond)

	// The local write still succeeded; only the replica is behind.
	assert.Len(t, s.Owners(), 2)
	assert.Nil(t, s.LastSync())
	assert.Equal(t, 0, replica.count())
}

func TestFanOut_DisabledWithoutReplicator(t *testing.T) {
	s, _ := setupTestStore(t)

	assert.False(t, s.Syncing())
	assert.Nil(t, s.LastSync())
}
