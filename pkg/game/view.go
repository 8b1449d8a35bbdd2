package game

import (
	"github.com/jwebster45206/treasure-island/pkg/scene"
	"github.com/jwebster45206/treasure-island/pkg/textkit"
)

const pathHighlightLimit = 8

// ViewAction is the display-ready form of a scene action.
type ViewAction struct {
	Command       string `json:"command"`
	Label         string `json:"label"`
	Enabled       bool   `json:"enabled"`
	BlockedReason string `json:"blocked_reason,omitempty"`
}

// Status is the player/world status block of a view snapshot.
type Status struct {
	Name           string   `json:"name"`
	Health         int      `json:"health"`
	Score          int      `json:"score"`
	HintsLeft      int      `json:"hints_left"`
	Inventory      []string `json:"inventory"`
	InventoryText  string   `json:"inventory_text"`
	LocationTitle  string   `json:"location_title"`
	VisitedCount   int      `json:"visited_count"`
	PathHighlights []string `json:"path_highlights"`
}

// View is a display-ready snapshot of core state. Adapters render it and
// must never hold their own mutable copy of player or world state.
type View struct {
	SceneID     string       `json:"scene_id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Actions     []ViewAction `json:"actions"`
	Status      Status       `json:"status"`
	GameOver    bool         `json:"game_over"`
	EndingType  string       `json:"ending_type,omitempty"`
	EndingText  string       `json:"ending_text"`
	NewMessages []string     `json:"new_messages"`
}

// GetView builds a snapshot of the current scene and status, draining the
// message queue into NewMessages. Each message is delivered in exactly one
// snapshot. Everything else about the view is a pure projection: calling
// GetView twice in a row differs only in NewMessages.
func (c *Core) GetView() View {
	if !c.Started() {
		return View{NewMessages: c.drainMessages(), Actions: []ViewAction{}}
	}

	sc, ok := c.currentScene()
	if !ok {
		c.logger.Error("Current scene missing from catalog", "scene_id", c.state.CurrentSceneID)
		return View{NewMessages: c.drainMessages(), Actions: []ViewAction{}}
	}

	inventory := make([]string, len(c.player.Inventory))
	copy(inventory, c.player.Inventory)

	return View{
		SceneID:     sc.ID,
		Title:       sc.Title,
		Description: sc.Description,
		Actions:     c.buildActionsView(sc),
		Status: Status{
			Name:           c.player.Name,
			Health:         c.player.Health,
			Score:          c.player.Score,
			HintsLeft:      c.player.HintsLeft,
			Inventory:      inventory,
			InventoryText:  textkit.FormatInventory(c.player.Inventory),
			LocationTitle:  sc.Title,
			VisitedCount:   len(c.state.VisitedScenes),
			PathHighlights: c.pathHighlights(pathHighlightLimit),
		},
		GameOver:    c.state.GameOver,
		EndingType:  c.state.Ending,
		EndingText:  c.state.EndingText,
		NewMessages: c.drainMessages(),
	}
}

// PeekView builds a snapshot without draining the message queue. Its
// NewMessages is always empty; adapters use it to re-render status panels
// between commands.
func (c *Core) PeekView() View {
	queued := c.messages
	view := c.GetView()
	c.messages = queued
	view.NewMessages = []string{}
	return view
}

// GetNewMessages returns and clears queued messages without building a full
// snapshot.
func (c *Core) GetNewMessages() []string {
	return c.drainMessages()
}

// buildActionsView projects scene actions with their enabled state. Vault
// scenes expose a synthetic helper entry for the code command.
func (c *Core) buildActionsView(sc scene.Scene) []ViewAction {
	out := make([]ViewAction, 0, len(sc.Actions)+1)
	for i := range sc.Actions {
		action := &sc.Actions[i]
		enabled := c.requirementsMet(action)
		va := ViewAction{
			Command: action.Command,
			Label:   action.Label,
			Enabled: enabled,
		}
		if !enabled {
			va.BlockedReason = action.Blocked()
		}
		out = append(out, va)
	}
	if sc.SpecialHandler == scene.SpecialVaultCode {
		out = append(out, ViewAction{
			Command: "code XXX",
			Label:   "Enter a 3-digit code (example: code 274)",
			Enabled: true,
		})
	}
	return out
}

// pathHighlights returns the titles of up to limit distinct visited scenes
// in first-seen order.
func (c *Core) pathHighlights(limit int) []string {
	titles := make([]string, 0, limit)
	for _, sceneID := range textkit.DedupePreserveOrder(c.state.History) {
		if sc, ok := c.scenes[sceneID]; ok {
			titles = append(titles, sc.Title)
		}
		if len(titles) >= limit {
			break
		}
	}
	return titles
}
