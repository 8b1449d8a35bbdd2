package storage

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedisStore(t *testing.T, slot string) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	store, err := NewRedisStore("redis://"+mr.Addr(), slot, testLogger())
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store, mr
}

func TestRedisStore_SaveLoadRoundTrip(t *testing.T) {
	store, mr := newTestRedisStore(t, "slot1")
	ctx := context.Background()

	player, gs := sampleSnapshot()
	require.NoError(t, store.Save(ctx, player, gs))

	// Documents are stored under a slot-scoped key.
	assert.True(t, mr.Exists("savegame:slot1"))

	loadedPlayer, loadedState, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Ada", loadedPlayer.Name)
	assert.Equal(t, "crossroad", loadedState.CurrentSceneID)
	assert.True(t, loadedState.FlagBool("torch_taken"))
}

func TestRedisStore_LoadMissing(t *testing.T) {
	store, _ := newTestRedisStore(t, "slot1")

	_, _, err := store.Load(context.Background())
	assert.ErrorIs(t, err, ErrNoSave)
}

func TestRedisStore_LoadRejectsBadDocument(t *testing.T) {
	store, mr := newTestRedisStore(t, "slot1")
	require.NoError(t, mr.Set("savegame:slot1", "{{{"))

	_, _, err := store.Load(context.Background())
	assert.ErrorIs(t, err, ErrCorrupt)
}

func TestRedisStore_SlotsAreIsolated(t *testing.T) {
	mr := miniredis.RunT(t)
	ctx := context.Background()

	storeA, err := NewRedisStore("redis://"+mr.Addr(), "a", testLogger())
	require.NoError(t, err)
	storeB, err := NewRedisStore("redis://"+mr.Addr(), "b", testLogger())
	require.NoError(t, err)

	player, gs := sampleSnapshot()
	require.NoError(t, storeA.Save(ctx, player, gs))

	_, _, err = storeB.Load(ctx)
	assert.ErrorIs(t, err, ErrNoSave)

	_, _, err = storeA.Load(ctx)
	assert.NoError(t, err)
}

func TestRedisStore_NameAndPing(t *testing.T) {
	store, _ := newTestRedisStore(t, "slot1")

	assert.Equal(t, "slot1", store.Name())
	assert.NoError(t, store.Ping(context.Background()))
}

func TestNewRedisStore_BadURL(t *testing.T) {
	_, err := NewRedisStore("not-a-url", "slot", testLogger())
	assert.Error(t, err)
}

func TestNewRedisStore_DefaultSlot(t *testing.T) {
	mr := miniredis.RunT(t)
	store, err := NewRedisStore("redis://"+mr.Addr(), "", testLogger())
	require.NoError(t, err)
	assert.Equal(t, "default", store.Name())
}
