package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nadanruchi/storefront/internal/adapter/logger"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := New(t.TempDir(), logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	_, ok, err := store.Get(ctx, "nr_orders")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Set(ctx, "nr_orders", []byte(`[{"id":"ORD-1"}]`)))
	data, ok, err := store.Get(ctx, "nr_orders")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `[{"id":"ORD-1"}]`, string(data))

	require.NoError(t, store.Remove(ctx, "nr_orders"))
	_, ok, err = store.Get(ctx, "nr_orders")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStore_RemoveMissingKeyIsNoError(t *testing.T) {
	store := newTestStore(t)
	assert.NoError(t, store.Remove(context.Background(), "never-written"))
}

func TestStore_KeysEscapeRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	// Cart keys contain characters that need escaping on disk.
	require.NoError(t, store.Set(ctx, "nr_cart:arun@yopmail.com", []byte(`[]`)))
	require.NoError(t, store.Set(ctx, "nr_menu", []byte(`[]`)))

	keys, err := store.Keys(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"nr_cart:arun@yopmail.com", "nr_menu"}, keys)
}

func TestStore_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")
	store, err := New(dir, logger.Nop())
	require.NoError(t, err)
	defer store.Close()

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestStore_ChangesSurfaceExternalWrites(t *testing.T) {
	dir := t.TempDir()
	store, err := New(dir, logger.Nop())
	require.NoError(t, err)
	defer store.Close()

	// Simulate another process writing into the same directory.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "nr_orders.json"), []byte(`[]`), 0o644))

	select {
	case key := <-store.Changes():
		assert.Equal(t, "nr_orders", key)
	case <-time.After(2 * time.Second):
		t.Fatal("expected a change event for the external write")
	}
}
