package storage

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwebster45206/treasure-island/pkg/state"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func sampleSnapshot() (*state.Player, *state.GameState) {
	player := state.NewPlayer("Ada")
	player.AddItem("mesale")
	player.Score = 21
	player.Health = 4

	gs := state.NewGameState("camp")
	gs.Visit("camp")
	gs.Visit("crossroad")
	gs.SetFlag("torch_taken", true)
	gs.SetFlag("wrong_code_attempts", 1)
	return player, gs
}

func TestFileStore_SaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "savegame.json")
	store := NewFileStore(path, testLogger())
	ctx := context.Background()

	player, gs := sampleSnapshot()
	require.NoError(t, store.Save(ctx, player, gs))

	loadedPlayer, loadedState, err := store.Load(ctx)
	require.NoError(t, err)

	assert.Equal(t, "Ada", loadedPlayer.Name)
	assert.Equal(t, 4, loadedPlayer.Health)
	assert.Equal(t, 21, loadedPlayer.Score)
	assert.Equal(t, []string{"mesale"}, loadedPlayer.Inventory)

	assert.Equal(t, "crossroad", loadedState.CurrentSceneID)
	assert.Equal(t, []string{"camp", "crossroad"}, loadedState.History)
	assert.True(t, loadedState.FlagBool("torch_taken"))
	assert.Equal(t, 1, loadedState.FlagInt("wrong_code_attempts"))
}

func TestFileStore_DocumentShape(t *testing.T) {
	path := filepath.Join(t.TempDir(), "savegame.json")
	store := NewFileStore(path, testLogger())

	player, gs := sampleSnapshot()
	require.NoError(t, store.Save(context.Background(), player, gs))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	// Top-level field names are part of the save format contract.
	assert.Contains(t, string(data), `"version": 1`)
	assert.Contains(t, string(data), `"player"`)
	assert.Contains(t, string(data), `"state"`)
	assert.Contains(t, string(data), `"current_scene_id"`)
	assert.Contains(t, string(data), `"hints_left"`)
}

func TestFileStore_LoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string // empty means no file is written
		wantErr error
	}{
		{name: "missing file", wantErr: ErrNoSave},
		{name: "not json", content: "{{{", wantErr: ErrCorrupt},
		{name: "non-object payload", content: `[1, 2, 3]`, wantErr: ErrInvalidFormat},
		{name: "missing player", content: `{"version": 1, "state": {}}`, wantErr: ErrMissingFields},
		{name: "missing state", content: `{"version": 1, "player": {}}`, wantErr: ErrMissingFields},
		{name: "non-object player", content: `{"version": 1, "player": "x", "state": {}}`, wantErr: ErrMissingFields},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "savegame.json")
			if tt.content != "" {
				require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o644))
			}

			store := NewFileStore(path, testLogger())
			_, _, err := store.Load(context.Background())
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestFileStore_LenientFieldDecode(t *testing.T) {
	// Type mismatches inside player/state never fail the load; they collapse
	// to defaults via the lenient state decoders.
	content := `{
		"version": 1,
		"player": {"name": "Ada", "health": "broken", "inventory": 7},
		"state": {"current_scene_id": "marsh", "flags": [], "history": "nope"}
	}`
	path := filepath.Join(t.TempDir(), "savegame.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	store := NewFileStore(path, testLogger())
	player, gs, err := store.Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Ada", player.Name)
	assert.Equal(t, state.StartingHealth, player.Health)
	assert.Empty(t, player.Inventory)
	assert.Equal(t, "marsh", gs.CurrentSceneID)
	assert.Empty(t, gs.History)
}

func TestFileStore_NameAndPing(t *testing.T) {
	dir := t.TempDir()
	store := NewFileStore(filepath.Join(dir, "slot1.json"), testLogger())

	assert.Equal(t, "slot1.json", store.Name())
	assert.NoError(t, store.Ping(context.Background()))

	missing := NewFileStore(filepath.Join(dir, "nope", "deep", "slot.json"), testLogger())
	assert.Error(t, missing.Ping(context.Background()))
}
