package game

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwebster45206/treasure-island/internal/storage"
	"github.com/jwebster45206/treasure-island/pkg/state"
)

func TestSaveGame_BeforeStart(t *testing.T) {
	core, store := newTestCore(t)

	ok, message := core.SaveGame(context.Background())
	assert.False(t, ok)
	assert.Equal(t, "Nothing to save.", message)
	assert.Equal(t, 0, store.SaveCalls)
}

func TestSaveGame_Success(t *testing.T) {
	core, store := newTestCore(t)
	core.NewGame("Ada")
	core.GetNewMessages()

	ok, message := core.SaveGame(context.Background())
	assert.True(t, ok)
	assert.Equal(t, "Game saved: mock", message)
	assert.Equal(t, []string{"Game saved: mock"}, core.GetNewMessages())
	require.NotNil(t, store.SavedPlayer)
	assert.Equal(t, "Ada", store.SavedPlayer.Name)
	assert.Equal(t, "camp", store.SavedState.CurrentSceneID)
}

func TestSaveGame_WriteFailure(t *testing.T) {
	core, store := newTestCore(t)
	store.SaveFunc = func(ctx context.Context, player *state.Player, gs *state.GameState) error {
		return errors.New("disk full")
	}
	core.NewGame("Ada")
	core.GetNewMessages()

	ok, _ := core.SaveGame(context.Background())
	assert.False(t, ok)
	assert.Equal(t, []string{"Save failed: Save file could not be written."}, core.GetNewMessages())
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	core, store := newTestCore(t)
	ctx := context.Background()

	core.NewGame("Ada")
	core.Submit(ctx, "chest")
	core.Submit(ctx, "proceed")
	ok, _ := core.SaveGame(ctx)
	require.True(t, ok)

	// A fresh session over the same store restores the saved run.
	restored := NewCore(store, testLogger()).WithRand(&stubRand{})
	restored.NewGame("Someone Else")
	restored.GetNewMessages()

	loaded, message := restored.LoadGame(ctx)
	require.True(t, loaded)
	assert.Equal(t, "Save loaded: mock", message)

	view := restored.GetView()
	assert.Equal(t, "Ada", view.Status.Name)
	assert.Equal(t, "crossroad", view.SceneID)
	assert.Equal(t, 6, view.Status.Score)
	assert.Equal(t, "Copper Coin", view.Status.InventoryText)
	assert.True(t, restored.state.FlagBool("camp_chest_opened"))
}

func TestLoadGame_FailureLeavesStateUntouched(t *testing.T) {
	core, store := newTestCore(t)
	store.LoadFunc = func(ctx context.Context) (*state.Player, *state.GameState, error) {
		return nil, nil, storage.ErrCorrupt
	}
	ctx := context.Background()

	core.NewGame("Ada")
	core.Submit(ctx, "chest")
	scoreBefore := core.player.Score
	core.GetNewMessages()

	loaded, message := core.LoadGame(ctx)
	assert.False(t, loaded)
	assert.Equal(t, "Save file is corrupted or unreadable.", message)
	assert.Equal(t, "Ada", core.player.Name)
	assert.Equal(t, scoreBefore, core.player.Score)
	assert.Equal(t, "camp", core.state.CurrentSceneID)
}

func TestLoadGame_FailureMessages(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"no save", storage.ErrNoSave, "Save file was not found."},
		{"corrupt", storage.ErrCorrupt, "Save file is corrupted or unreadable."},
		{"invalid format", storage.ErrInvalidFormat, "Save file format is invalid."},
		{"missing fields", storage.ErrMissingFields, "Save file is missing required fields."},
		{"unexpected", errors.New("boom"), "Save file is invalid. Start a new game."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			core, store := newTestCore(t)
			store.LoadFunc = func(ctx context.Context) (*state.Player, *state.GameState, error) {
				return nil, nil, tt.err
			}
			core.NewGame("Ada")

			loaded, message := core.LoadGame(context.Background())
			assert.False(t, loaded)
			assert.Equal(t, tt.want, message)
		})
	}
}

func TestLoadGame_RejectsUnknownScene(t *testing.T) {
	core, store := newTestCore(t)
	store.LoadFunc = func(ctx context.Context) (*state.Player, *state.GameState, error) {
		return state.NewPlayer("Ada"), state.NewGameState("atlantis"), nil
	}
	core.NewGame("Ada")
	core.Submit(context.Background(), "proceed")

	loaded, message := core.LoadGame(context.Background())
	assert.False(t, loaded)
	assert.Equal(t, "Save invalid: unknown scene id.", message)
	assert.Equal(t, "crossroad", core.state.CurrentSceneID, "session unchanged")
}

func TestLoadGame_ClampsAndRepairs(t *testing.T) {
	core, store := newTestCore(t)
	store.LoadFunc = func(ctx context.Context) (*state.Player, *state.GameState, error) {
		player := state.NewPlayer("Ada")
		player.Health = 99
		player.HintsLeft = -4
		gs := state.NewGameState("marsh")
		return player, gs, nil
	}
	core.NewGame("Ada")

	loaded, _ := core.LoadGame(context.Background())
	require.True(t, loaded)

	assert.Equal(t, state.MaxHealth, core.player.Health)
	assert.Equal(t, 0, core.player.HintsLeft)
	assert.True(t, core.state.VisitedScenes["marsh"], "current scene marked visited")
	assert.Equal(t, []string{"marsh"}, core.state.History, "empty history repaired")
	assert.Equal(t, 0, core.state.FlagInt("wrong_code_attempts"), "default flags reseeded")
}

func TestLoadGame_ViaSubmit(t *testing.T) {
	core, _ := newTestCore(t)
	ctx := context.Background()

	core.NewGame("Ada")
	core.Submit(ctx, "save")
	core.Submit(ctx, "proceed")
	core.GetNewMessages()

	core.Submit(ctx, "load")
	messages := core.GetNewMessages()
	assert.Contains(t, messages, "Save loaded: mock")
	assert.Contains(t, messages, "Save loaded. Adventure resumed.")
	assert.Equal(t, "camp", core.state.CurrentSceneID)
}

func TestLoadGame_ViaSubmitFailure(t *testing.T) {
	core, _ := newTestCore(t)
	core.NewGame("Ada")
	core.GetNewMessages()

	core.Submit(context.Background(), "load")
	assert.Equal(t, []string{"Save file was not found."}, core.GetNewMessages())
}
