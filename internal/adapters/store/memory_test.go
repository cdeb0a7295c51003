package store

import (
	"context"
	"testing"
	"time"

	"github.com/storefront-br/pix-checkout-bridge/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strptr(s string) *string {
	return &s
}

func TestMemoryStoreSaveGet(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	params := domain.TrackingParams{
		Src:       strptr("fb-1"),
		UTMSource: strptr("facebook"),
	}
	require.NoError(t, s.Save(ctx, "PED-1-ABCD", params))

	got, found, err := s.Get(ctx, "PED-1-ABCD")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, params, got)
}

func TestMemoryStoreGetMissingKey(t *testing.T) {
	s := NewMemoryStore()

	_, found, err := s.Get(context.Background(), "never-saved")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestMemoryStoreDelete(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, "PED-1-ABCD", domain.TrackingParams{}))
	require.NoError(t, s.Delete(ctx, "PED-1-ABCD"))

	_, found, err := s.Get(ctx, "PED-1-ABCD")
	require.NoError(t, err)
	assert.False(t, found)

	// deleting again is a no-op
	require.NoError(t, s.Delete(ctx, "PED-1-ABCD"))
}

func TestMemoryStoreSaveOverwrites(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, "PED-1-ABCD", domain.TrackingParams{Src: strptr("old")}))
	require.NoError(t, s.Save(ctx, "PED-1-ABCD", domain.TrackingParams{Src: strptr("new")}))

	got, found, err := s.Get(ctx, "PED-1-ABCD")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "new", *got.Src)
}

func TestMemoryStoreDeleteExpired(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, "old-order", domain.TrackingParams{}))
	s.mu.Lock()
	entry := s.entries["old-order"]
	entry.savedAt = time.Now().Add(-2 * time.Hour)
	s.entries["old-order"] = entry
	s.mu.Unlock()

	require.NoError(t, s.Save(ctx, "fresh-order", domain.TrackingParams{}))

	removed, err := s.DeleteExpired(ctx, time.Hour)
	require.NoError(t, err)
	assert.Equal(t, int64(1), removed)

	_, found, _ := s.Get(ctx, "old-order")
	assert.False(t, found)
	_, found, _ = s.Get(ctx, "fresh-order")
	assert.True(t, found)
}
