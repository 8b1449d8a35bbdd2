package game

import (
	"context"
	"fmt"
	"strings"

	"github.com/jwebster45206/treasure-island/pkg/scene"
	"github.com/jwebster45206/treasure-island/pkg/state"
	"github.com/jwebster45206/treasure-island/pkg/textkit"
)

// usableItems maps raw 'use' arguments to the internal id of an item the
// core knows how to apply. Only the healing herb is usable today; new
// usable items get an entry here plus a branch in useItem.
var usableItems = map[string]string{
	"healing_herb":        scene.ItemHealingHerb,
	"herb":                scene.ItemHealingHerb,
	scene.ItemHealingHerb: scene.ItemHealingHerb,
}

// handleGlobal dispatches commands available in every scene. Returns true
// when the command was handled.
func (c *Core) handleGlobal(ctx context.Context, command string, sc scene.Scene) bool {
	switch {
	case command == "help":
		c.pushHelp(sc)
		return true

	case command == "status":
		c.pushStatus(sc)
		return true

	case command == "hint":
		c.pushHint(sc)
		return true

	case command == "save":
		c.SaveGame(ctx)
		return true

	case command == "load":
		if loaded, message := c.LoadGame(ctx); loaded {
			c.push("Save loaded. Adventure resumed.")
		} else {
			c.push(message)
		}
		return true

	case command == "quit":
		// Purely a core-state transition; the adapter observes game_over
		// through the view and decides what to do with its process.
		c.state.End("quit", "You leave the island before its secrets are revealed.")
		c.push("Closing game...")
		return true

	case command == "use" || strings.HasPrefix(command, "use "):
		c.useItem(command)
		return true
	}

	return false
}

func (c *Core) pushHelp(sc scene.Scene) {
	lines := []string{
		fmt.Sprintf("Help - %s", sc.Title),
		"Scene commands:",
	}
	for _, action := range c.buildActionsView(sc) {
		line := fmt.Sprintf(" - %s: %s", action.Command, action.Label)
		if !action.Enabled {
			reason := action.BlockedReason
			if reason == "" {
				reason = "Unavailable"
			}
			line += fmt.Sprintf(" [blocked: %s]", reason)
		}
		lines = append(lines, line)
	}
	lines = append(lines,
		"Global commands:",
		" - help",
		" - status",
		" - hint",
		" - save",
		" - load",
		" - quit",
		" - use <item>",
	)
	c.push(strings.Join(lines, "\n"))
}

func (c *Core) pushStatus(sc scene.Scene) {
	lines := []string{
		"STATUS",
		fmt.Sprintf("Name: %s", c.player.Name),
		fmt.Sprintf("Health: %d", c.player.Health),
		fmt.Sprintf("Score: %d", c.player.Score),
		fmt.Sprintf("Hints left: %d", c.player.HintsLeft),
		fmt.Sprintf("Location: %s", sc.Title),
		fmt.Sprintf("Inventory: %s", textkit.FormatInventory(c.player.Inventory)),
		fmt.Sprintf("Visited areas: %d", len(c.state.VisitedScenes)),
	}
	if path := c.pathHighlights(pathHighlightLimit); len(path) > 0 {
		lines = append(lines, "Path Summary: "+strings.Join(path, " -> "))
	}
	c.push(strings.Join(lines, "\n"))
}

func (c *Core) pushHint(sc scene.Scene) {
	if c.player.HintsLeft <= 0 {
		c.push("You have no hints left.")
		return
	}
	if sc.HintText == "" {
		c.push("No hint is available for this area.")
		return
	}
	c.player.HintsLeft--
	c.push(fmt.Sprintf("Hint: %s\nHints remaining: %d", sc.HintText, c.player.HintsLeft))
}

// useItem handles 'use <item>'. Raw arguments fold spaces to underscores so
// 'use healing herb' resolves like 'use healing_herb'.
func (c *Core) useItem(command string) {
	parts := strings.SplitN(command, " ", 2)
	if len(parts) != 2 || strings.TrimSpace(parts[1]) == "" {
		c.push("Usage: use healing_herb")
		return
	}

	rawKey := strings.ReplaceAll(strings.TrimSpace(parts[1]), " ", "_")
	itemID, usable := usableItems[rawKey]
	if !usable {
		c.push("That item cannot be used here.")
		return
	}

	if !c.player.HasItem(itemID) {
		c.push("You do not have a healing herb.")
		return
	}

	c.player.RemoveItem(itemID)
	before := c.player.Health
	c.player.Health = textkit.Clamp(before+1, 0, state.MaxHealth)
	c.push(fmt.Sprintf("You used a healing herb. Health +%d.", c.player.Health-before))
}
