// Package storage persists the save document for the game core. The
// document format is versioned JSON and is shared by every backend; the
// core stays backend-agnostic behind the SaveStore interface.
package storage

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jwebster45206/treasure-island/pkg/state"
)

// DocumentVersion is the current save document version.
const DocumentVersion = 1

// Load failure conditions. Each maps to a distinct user-facing message in
// the game core.
var (
	ErrNoSave        = errors.New("save not found")
	ErrCorrupt       = errors.New("save corrupted or unreadable")
	ErrInvalidFormat = errors.New("save format invalid")
	ErrMissingFields = errors.New("save missing required fields")
)

// SaveStore persists and restores a player/world snapshot.
type SaveStore interface {
	// Save writes the full snapshot. In-memory state is never touched by a
	// failed save.
	Save(ctx context.Context, player *state.Player, gs *state.GameState) error

	// Load restores the snapshot. Failures are reported via the sentinel
	// errors above; semantic validation is the caller's job.
	Load(ctx context.Context) (*state.Player, *state.GameState, error)

	// Name identifies the save target in user-facing messages.
	Name() string

	Ping(ctx context.Context) error
	Close() error
}

// document is the versioned on-disk/on-wire payload:
// {"version": 1, "player": {...}, "state": {...}}.
type document struct {
	Version int              `json:"version"`
	Player  *state.Player    `json:"player"`
	State   *state.GameState `json:"state"`
}

func encodeDocument(player *state.Player, gs *state.GameState) ([]byte, error) {
	return json.MarshalIndent(document{
		Version: DocumentVersion,
		Player:  player,
		State:   gs,
	}, "", "  ")
}

// decodeDocument parses a save payload, distinguishing unreadable content,
// non-object payloads, and missing player/state sub-objects. Field-level
// type mismatches are tolerated by the lenient state decoders.
func decodeDocument(data []byte) (*state.Player, *state.GameState, error) {
	var probe any
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, nil, ErrCorrupt
	}
	if _, ok := probe.(map[string]any); !ok {
		return nil, nil, ErrInvalidFormat
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, nil, ErrCorrupt
	}

	playerRaw, ok := raw["player"]
	if !ok || !isObject(playerRaw) {
		return nil, nil, ErrMissingFields
	}
	stateRaw, ok := raw["state"]
	if !ok || !isObject(stateRaw) {
		return nil, nil, ErrMissingFields
	}

	var player state.Player
	if err := json.Unmarshal(playerRaw, &player); err != nil {
		return nil, nil, ErrInvalidFormat
	}
	var gs state.GameState
	if err := json.Unmarshal(stateRaw, &gs); err != nil {
		return nil, nil, ErrInvalidFormat
	}
	return &player, &gs, nil
}

func isObject(raw json.RawMessage) bool {
	var m map[string]json.RawMessage
	return json.Unmarshal(raw, &m) == nil
}
