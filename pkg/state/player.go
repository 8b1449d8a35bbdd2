package state

import "encoding/json"

const (
	// MaxHealth is the upper clamp for player health.
	MaxHealth = 5
	// MaxHints is the upper clamp for remaining hints.
	MaxHints = 3
	// StartingHealth is the health a fresh player begins with.
	StartingHealth = 3

	// FallbackName is applied when a save carries no usable player name.
	FallbackName = "Wanderer"
)

// Player is the mutable player state. Inventory is an ordered set of item
// ids: no duplicates, insertion order preserved.
type Player struct {
	Name      string   `json:"name"`
	Health    int      `json:"health"`
	Inventory []string `json:"inventory"`
	Score     int      `json:"score"`
	HintsLeft int      `json:"hints_left"`
}

// NewPlayer creates a fresh player with starting stats.
func NewPlayer(name string) *Player {
	return &Player{
		Name:      name,
		Health:    StartingHealth,
		Inventory: make([]string, 0),
		HintsLeft: MaxHints,
	}
}

// HasItem reports whether the player owns the item.
func (p *Player) HasItem(itemID string) bool {
	for _, item := range p.Inventory {
		if item == itemID {
			return true
		}
	}
	return false
}

// AddItem adds the item if missing. Returns true when the item was added.
func (p *Player) AddItem(itemID string) bool {
	if p.HasItem(itemID) {
		return false
	}
	p.Inventory = append(p.Inventory, itemID)
	return true
}

// RemoveItem removes the item if present. Returns true when removed.
func (p *Player) RemoveItem(itemID string) bool {
	for i, item := range p.Inventory {
		if item == itemID {
			p.Inventory = append(p.Inventory[:i], p.Inventory[i+1:]...)
			return true
		}
	}
	return false
}

// playerDoc is the persisted shape of a player. Field names are part of the
// save file format and must not change.
type playerDoc struct {
	Name      string   `json:"name"`
	Health    int      `json:"health"`
	Inventory []string `json:"inventory"`
	Score     int      `json:"score"`
	HintsLeft int      `json:"hints_left"`
}

// MarshalJSON serializes the player with a non-null inventory list.
func (p Player) MarshalJSON() ([]byte, error) {
	inventory := p.Inventory
	if inventory == nil {
		inventory = []string{}
	}
	return json.Marshal(playerDoc{
		Name:      p.Name,
		Health:    p.Health,
		Inventory: inventory,
		Score:     p.Score,
		HintsLeft: p.HintsLeft,
	})
}

// UnmarshalJSON decodes a player leniently: type-mismatched fields collapse
// to defaults instead of failing, so a semantically odd save can still be
// repaired by the core after load.
func (p *Player) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	p.Name = coerceString(raw["name"], FallbackName)
	if p.Name == "" {
		p.Name = FallbackName
	}
	p.Health = coerceInt(raw["health"], StartingHealth)
	p.Inventory = coerceStringList(raw["inventory"])
	p.Score = coerceInt(raw["score"], 0)
	p.HintsLeft = coerceInt(raw["hints_left"], MaxHints)
	return nil
}
