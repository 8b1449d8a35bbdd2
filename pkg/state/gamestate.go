package state

import (
	"encoding/json"
	"fmt"
	"sort"
)

// GameState is the mutable world state of a single playthrough.
//
// Flags is an open-ended string-keyed map of booleans and numbers. Gameplay
// flags share it with a reserved synthetic namespace used for one-shot
// random event tracking (see EventFlagKey).
type GameState struct {
	CurrentSceneID string          `json:"current_scene_id"`
	Flags          map[string]any  `json:"flags"`
	VisitedScenes  map[string]bool `json:"visited_scenes"`
	History        []string        `json:"history"`
	GameOver       bool            `json:"game_over"`
	Ending         string          `json:"ending,omitempty"` // empty means no ending yet
	EndingText     string          `json:"ending_text"`
}

// NewGameState creates a world state positioned at the given scene.
func NewGameState(sceneID string) *GameState {
	return &GameState{
		CurrentSceneID: sceneID,
		Flags:          make(map[string]any),
		VisitedScenes:  make(map[string]bool),
		History:        make([]string, 0),
	}
}

// EventFlagKey returns the synthetic flag name tracking a one-shot random
// event. The underscore prefix keeps it out of the author-facing namespace.
func EventFlagKey(sceneID, eventID string) string {
	return fmt.Sprintf("_event_%s_%s", sceneID, eventID)
}

// FlagBool returns the flag as a boolean. Missing or non-boolean flags
// read as false.
func (gs *GameState) FlagBool(name string) bool {
	v, ok := gs.Flags[name].(bool)
	return ok && v
}

// FlagInt returns the flag as an integer, tolerating the float64 values
// produced by JSON decoding. Missing or non-numeric flags read as zero.
func (gs *GameState) FlagInt(name string) int {
	switch v := gs.Flags[name].(type) {
	case int:
		return v
	case float64:
		return int(v)
	case json.Number:
		if n, err := v.Int64(); err == nil {
			return int(n)
		}
	}
	return 0
}

// SetFlag stores a flag value, overwriting any existing value.
func (gs *GameState) SetFlag(name string, value any) {
	if gs.Flags == nil {
		gs.Flags = make(map[string]any)
	}
	gs.Flags[name] = value
}

// SetDefaultFlag stores a flag value only when the flag is absent. Used to
// seed defaults without clobbering values restored from a save.
func (gs *GameState) SetDefaultFlag(name string, value any) {
	if gs.Flags == nil {
		gs.Flags = make(map[string]any)
	}
	if _, ok := gs.Flags[name]; !ok {
		gs.Flags[name] = value
	}
}

// FlagEquals compares a flag against an expected value, normalizing numeric
// representations so a restored save compares equal to catalog literals.
func (gs *GameState) FlagEquals(name string, expected any) bool {
	current := gs.Flags[name]
	if cf, ok := toFloat(current); ok {
		if ef, ok2 := toFloat(expected); ok2 {
			return cf == ef
		}
		return false
	}
	return current == expected
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case float64:
		return n, true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	}
	return 0, false
}

// Visit records a scene entry: marks it visited and appends it to the
// history, even when it repeats the previous entry.
func (gs *GameState) Visit(sceneID string) {
	gs.CurrentSceneID = sceneID
	if gs.VisitedScenes == nil {
		gs.VisitedScenes = make(map[string]bool)
	}
	gs.VisitedScenes[sceneID] = true
	gs.History = append(gs.History, sceneID)
}

// End terminates the game with the given ending kind and narrative text.
func (gs *GameState) End(kind, text string) {
	gs.GameOver = true
	gs.Ending = kind
	gs.EndingText = text
}

// stateDoc is the persisted shape of the world state. Field names are part
// of the save file format and must not change. Visited scenes serialize
// sorted; the in-memory set is order-irrelevant.
type stateDoc struct {
	CurrentSceneID string         `json:"current_scene_id"`
	Flags          map[string]any `json:"flags"`
	VisitedScenes  []string       `json:"visited_scenes"`
	History        []string       `json:"history"`
	GameOver       bool           `json:"game_over"`
	Ending         *string        `json:"ending"`
	EndingText     string         `json:"ending_text"`
}

func (gs GameState) MarshalJSON() ([]byte, error) {
	visited := make([]string, 0, len(gs.VisitedScenes))
	for id := range gs.VisitedScenes {
		visited = append(visited, id)
	}
	sort.Strings(visited)

	flags := gs.Flags
	if flags == nil {
		flags = map[string]any{}
	}
	history := gs.History
	if history == nil {
		history = []string{}
	}
	var ending *string
	if gs.Ending != "" {
		ending = &gs.Ending
	}
	return json.Marshal(stateDoc{
		CurrentSceneID: gs.CurrentSceneID,
		Flags:          flags,
		VisitedScenes:  visited,
		History:        history,
		GameOver:       gs.GameOver,
		Ending:         ending,
		EndingText:     gs.EndingText,
	})
}

// UnmarshalJSON decodes world state leniently, mirroring Player: wrong-typed
// collections collapse to empty rather than failing the load.
func (gs *GameState) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	gs.CurrentSceneID = coerceString(raw["current_scene_id"], "camp")
	gs.Flags = coerceFlagMap(raw["flags"])
	gs.VisitedScenes = make(map[string]bool)
	for _, id := range coerceStringList(raw["visited_scenes"]) {
		gs.VisitedScenes[id] = true
	}
	gs.History = coerceStringList(raw["history"])
	gs.GameOver = coerceBool(raw["game_over"])
	gs.Ending = coerceString(raw["ending"], "")
	gs.EndingText = coerceString(raw["ending_text"], "")
	return nil
}
