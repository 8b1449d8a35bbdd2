// Package game holds the UI-independent gameplay core: a command
// interpreter over the static scene catalog, mutating a Player/GameState
// pair and queuing display messages for the adapter to render.
package game

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/jwebster45206/treasure-island/internal/storage"
	"github.com/jwebster45206/treasure-island/pkg/scene"
	"github.com/jwebster45206/treasure-island/pkg/state"
	"github.com/jwebster45206/treasure-island/pkg/textkit"
)

// FallbackPlayerName is used when a new game starts with a blank name.
const FallbackPlayerName = "Explorer"

const welcomeMessage = "Welcome to Treasure Island. Your mission is to find the treasure."

// Core is the state holder and command interpreter. It performs no I/O of
// its own beyond the save store; adapters call GetView to render and Submit
// to advance. Single-threaded by contract: one adapter, one call at a time.
type Core struct {
	scenes map[string]scene.Scene
	store  storage.SaveStore
	logger *slog.Logger
	rng    Rand

	sessionID uuid.UUID
	player    *state.Player
	state     *state.GameState
	messages  []string
}

// NewCore creates a game core over the built-in scene catalog.
func NewCore(store storage.SaveStore, logger *slog.Logger) *Core {
	return &Core{
		scenes: scene.BuildScenes(),
		store:  store,
		logger: logger,
		rng:    defaultRand{},
	}
}

// WithRand overrides the randomness source for scene-entry events.
// Returns the Core for method chaining.
func (c *Core) WithRand(rng Rand) *Core {
	c.rng = rng
	return c
}

// Started reports whether a session is active.
func (c *Core) Started() bool {
	return c.player != nil && c.state != nil
}

// NewGame initializes a fresh game and enters the starting scene.
// A blank or whitespace name falls back to FallbackPlayerName.
func (c *Core) NewGame(playerName string) {
	name := strings.TrimSpace(playerName)
	if name == "" {
		name = FallbackPlayerName
	}

	c.sessionID = uuid.New()
	c.player = state.NewPlayer(name)
	c.state = state.NewGameState(scene.StartSceneID)
	c.ensureDefaultFlags()
	c.enterScene(scene.StartSceneID)
	c.push(welcomeMessage)

	c.logger.Info("New game started", "session_id", c.sessionID.String(), "player", name)
}

// LoadGame replaces the current session with the stored one. On failure the
// current Player/GameState are left untouched.
func (c *Core) LoadGame(ctx context.Context) (bool, string) {
	player, gs, err := c.store.Load(ctx)
	if err != nil {
		c.logger.Warn("Load failed", "error", err)
		return false, loadFailureMessage(err)
	}

	if _, ok := c.scenes[gs.CurrentSceneID]; !ok {
		c.logger.Warn("Load rejected: unknown scene", "scene_id", gs.CurrentSceneID)
		return false, "Save invalid: unknown scene id."
	}

	// Clamp numeric fields and repair invariants the lenient decoder
	// cannot enforce on its own.
	player.Health = textkit.Clamp(player.Health, 0, state.MaxHealth)
	player.HintsLeft = textkit.Clamp(player.HintsLeft, 0, state.MaxHints)
	gs.VisitedScenes[gs.CurrentSceneID] = true
	if len(gs.History) == 0 {
		gs.History = append(gs.History, gs.CurrentSceneID)
	}

	c.player = player
	c.state = gs
	if c.sessionID == uuid.Nil {
		c.sessionID = uuid.New()
	}
	c.ensureDefaultFlags()

	message := fmt.Sprintf("Save loaded: %s", c.store.Name())
	c.push(message)
	c.logger.Info("Game loaded", "session_id", c.sessionID.String(), "scene_id", gs.CurrentSceneID)
	return true, message
}

// SaveGame persists the current session. A failed save never mutates the
// in-memory state.
func (c *Core) SaveGame(ctx context.Context) (bool, string) {
	if !c.Started() {
		return false, "Nothing to save."
	}

	if err := c.store.Save(ctx, c.player, c.state); err != nil {
		c.logger.Error("Save failed", "session_id", c.sessionID.String(), "error", err)
		message := "Save file could not be written."
		c.push("Save failed: " + message)
		return false, message
	}

	message := fmt.Sprintf("Game saved: %s", c.store.Name())
	c.push(message)
	return true, message
}

// Submit processes exactly one command to completion. It is a no-op when
// the normalized command is empty, and pushes a notice when no session has
// been started.
func (c *Core) Submit(ctx context.Context, rawCommand string) {
	if !c.Started() {
		c.push("Game not started.")
		return
	}

	command := textkit.NormalizeCommand(rawCommand)
	if command == "" {
		return
	}

	sc, ok := c.currentScene()
	if !ok {
		// Catalog lookups are validated on load and transition; reaching
		// this is a programming error, not a gameplay condition.
		c.logger.Error("Current scene missing from catalog", "scene_id", c.state.CurrentSceneID)
		return
	}

	// 1) Global commands
	if c.handleGlobal(ctx, command, sc) {
		return
	}

	// 2) Special handler (puzzle)
	if sc.SpecialHandler == scene.SpecialVaultCode && strings.HasPrefix(command, "code") {
		c.handleVaultCode(command)
		return
	}

	// 3) Scene action
	action := sc.FindAction(command)
	if action == nil {
		c.push("Unknown command. Type 'help' to see options.")
		return
	}

	if !c.requirementsMet(action) {
		// A blocked action is a no-op with feedback, never an error.
		c.push(action.Blocked())
		return
	}

	if !action.Effects.IsZero() {
		c.applyEffects(action.Effects)
		if c.state.GameOver {
			return
		}
	}

	if action.ResultText != "" {
		c.push(action.ResultText)
	}

	if action.Target != "" && !c.state.GameOver {
		c.enterScene(action.Target)
	}
}

// push queues a message for the next GetView drain.
func (c *Core) push(text string) {
	c.messages = append(c.messages, text)
}

// drainMessages returns queued messages and clears the queue.
func (c *Core) drainMessages() []string {
	messages := c.messages
	c.messages = nil
	if messages == nil {
		messages = []string{}
	}
	return messages
}

func (c *Core) currentScene() (scene.Scene, bool) {
	sc, ok := c.scenes[c.state.CurrentSceneID]
	return sc, ok
}

// ensureDefaultFlags seeds flags used by scene requirements, without
// overwriting values restored from a save.
func (c *Core) ensureDefaultFlags() {
	defaults := map[string]any{
		"camp_chest_opened":   false,
		"rested_once":         false,
		"torch_taken":         false,
		"read_riddle":         false,
		"desk_checked":        false,
		"took_key":            false,
		"moon_phrase":         false,
		"gate_unlocked":       false,
		"took_disk":           false,
		"saw_mirror_signal":   false,
		"knows_code":          false,
		"vault_solved":        false,
		"wrong_code_attempts": 0,
	}
	for name, value := range defaults {
		c.state.SetDefaultFlag(name, value)
	}
}

// requirementsMet checks an action's required items and flags.
func (c *Core) requirementsMet(action *scene.Action) bool {
	if !c.Started() {
		return false
	}
	for _, itemID := range action.RequiredItems {
		if !c.player.HasItem(itemID) {
			return false
		}
	}
	for name, expected := range action.RequiredFlags {
		if !c.state.FlagEquals(name, expected) {
			return false
		}
	}
	return true
}

// enterScene performs scene-entry processing: record the visit, apply
// on-enter effects, then evaluate random events in declared order. An id
// absent from the catalog forces a bad ending instead of raising.
func (c *Core) enterScene(sceneID string) {
	sc, ok := c.scenes[sceneID]
	if !ok {
		c.logger.Error("Transition to unknown scene", "session_id", c.sessionID.String(), "scene_id", sceneID)
		c.state.End("bad", "You wander into a path that shouldn't exist.")
		return
	}

	c.state.Visit(sceneID)

	if !sc.OnEnterEffects.IsZero() {
		c.applyEffects(sc.OnEnterEffects)
		if c.state.GameOver {
			return
		}
	}

	for _, event := range sc.RandomEvents {
		flagKey := state.EventFlagKey(sc.ID, event.ID)
		if event.Once && c.state.FlagBool(flagKey) {
			continue
		}
		if c.rng.Float64() < event.Chance {
			c.push(event.Text)
			c.applyEffects(event.Effects)
			if c.state.GameOver {
				return
			}
		}
		// A once event is consumed by its first evaluated draw, fired or
		// not; it is never re-rolled on revisits.
		if event.Once {
			c.state.SetFlag(flagKey, true)
		}
	}
}

func loadFailureMessage(err error) string {
	switch {
	case errors.Is(err, storage.ErrNoSave):
		return "Save file was not found."
	case errors.Is(err, storage.ErrCorrupt):
		return "Save file is corrupted or unreadable."
	case errors.Is(err, storage.ErrInvalidFormat):
		return "Save file format is invalid."
	case errors.Is(err, storage.ErrMissingFields):
		return "Save file is missing required fields."
	default:
		return "Save file is invalid. Start a new game."
	}
}
