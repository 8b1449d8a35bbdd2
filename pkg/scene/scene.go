package scene

// SpecialHandler tags a scene with a puzzle variant handled by the game core.
type SpecialHandler string

const (
	// SpecialNone marks a scene with no puzzle handler.
	SpecialNone SpecialHandler = ""
	// SpecialVaultCode marks the 3-digit vault lock puzzle.
	SpecialVaultCode SpecialHandler = "vault_code"
)

// Effects is a structured bag of mutations applied to player and world state.
// Fields are applied independently, in a fixed order; there is no rollback.
type Effects struct {
	Score       int            `json:"score,omitempty"`        // signed score delta
	AddItems    []string       `json:"add_items,omitempty"`    // idempotent adds
	RemoveItems []string       `json:"remove_items,omitempty"` // idempotent removes
	Health      int            `json:"health,omitempty"`       // signed delta, clamped by the core
	Flags       map[string]any `json:"flags,omitempty"`        // merged into world flags, overwriting
	End         string         `json:"end,omitempty"`          // ending kind; presence terminates the game
	EndingText  string         `json:"ending_text,omitempty"`  // narrative shown with the ending
}

// IsZero reports whether the effects bag carries no mutations.
func (e *Effects) IsZero() bool {
	return e == nil || (e.Score == 0 && len(e.AddItems) == 0 && len(e.RemoveItems) == 0 &&
		e.Health == 0 && len(e.Flags) == 0 && e.End == "")
}

// Action is a player-invokable command bound to a scene.
type Action struct {
	Command       string         `json:"command"`                  // canonical token
	Label         string         `json:"label"`                    // display text
	Target        string         `json:"target,omitempty"`         // scene id to transition to
	Aliases       []string       `json:"aliases,omitempty"`        // alternate tokens
	RequiredItems []string       `json:"required_items,omitempty"` // item ids that must be owned
	RequiredFlags map[string]any `json:"required_flags,omitempty"` // flag -> expected value
	BlockedText   string         `json:"blocked_text,omitempty"`   // shown when requirements unmet
	Effects       *Effects       `json:"effects,omitempty"`
	ResultText    string         `json:"result_text,omitempty"` // shown on success
}

// DefaultBlockedText is used when an action declares no blocked text.
const DefaultBlockedText = "You cannot do that right now."

// Matches reports whether the normalized command token invokes this action.
func (a *Action) Matches(command string) bool {
	if command == a.Command {
		return true
	}
	for _, alias := range a.Aliases {
		if command == alias {
			return true
		}
	}
	return false
}

// Blocked returns the action's blocked text, falling back to the default.
func (a *Action) Blocked() string {
	if a.BlockedText != "" {
		return a.BlockedText
	}
	return DefaultBlockedText
}

// RandomEvent is a probabilistic event evaluated on scene entry.
// Once events get exactly one draw per playthrough, tracked via a synthetic
// flag keyed by scene and event id.
type RandomEvent struct {
	ID      string   `json:"id"`
	Text    string   `json:"text"`
	Chance  float64  `json:"chance"` // probability in [0,1]
	Effects *Effects `json:"effects,omitempty"`
	Once    bool     `json:"once"`
}

// Scene is a node in the world graph. Edges are declared as string ids on
// actions and resolved lazily at traversal time.
type Scene struct {
	ID             string         `json:"id"`
	Title          string         `json:"title"`
	Description    string         `json:"description"`
	Actions        []Action       `json:"actions,omitempty"`
	HintText       string         `json:"hint_text,omitempty"`
	OnEnterEffects *Effects       `json:"on_enter_effects,omitempty"`
	RandomEvents   []RandomEvent  `json:"random_events,omitempty"`
	SpecialHandler SpecialHandler `json:"special_handler,omitempty"`
}

// FindAction returns the first action matching the command, or nil.
func (s *Scene) FindAction(command string) *Action {
	for i := range s.Actions {
		if s.Actions[i].Matches(command) {
			return &s.Actions[i]
		}
	}
	return nil
}
