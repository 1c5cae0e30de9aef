package snapshot

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_SaveLoadDelete(t *testing.T) {
	s := NewMemory()
	ctx := context.Background()

	_, err := s.Load(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, s.Save(ctx, "blob", []byte("first")))
	data, err := s.Load(ctx, "blob")
	require.NoError(t, err)
	assert.Equal(t, []byte("first"), data)

	// Save fully overwrites.
	require.NoError(t, s.Save(ctx, "blob", []byte("second")))
	data, err = s.Load(ctx, "blob")
	require.NoError(t, err)
	assert.Equal(t, []byte("second"), data)

	require.NoError(t, s.Delete(ctx, "blob"))
	_, err = s.Load(ctx, "blob")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStore_LoadReturnsCopy(t *testing.T) {
	s := NewMemory()
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, "blob", []byte("stable")))
	data, err := s.Load(ctx, "blob")
	require.NoError(t, err)
	data[0] = 'X'

	again, err := s.Load(ctx, "blob")
	require.NoError(t, err)
	assert.Equal(t, []byte("stable"), again)
}
