package game

import (
	"fmt"

	"github.com/jwebster45206/treasure-island/pkg/scene"
	"github.com/jwebster45206/treasure-island/pkg/state"
	"github.com/jwebster45206/treasure-island/pkg/textkit"
)

const collapseEndingText = "You collapse from your wounds. The island falls silent."

// applyEffects applies an effects bag to player and world state, pushing a
// message per visible change. Application is not transactional: fields are
// applied independently in a fixed order (score, items added, items
// removed, health, flags, ending/auto-death).
func (c *Core) applyEffects(effects *scene.Effects) {
	if effects == nil || !c.Started() {
		return
	}

	if effects.Score != 0 {
		c.player.Score += effects.Score
	}

	for _, itemID := range effects.AddItems {
		if c.player.AddItem(itemID) {
			c.push("Item acquired: " + textkit.ItemLabel(itemID))
		}
	}

	for _, itemID := range effects.RemoveItems {
		if c.player.RemoveItem(itemID) {
			c.push("Item used: " + textkit.ItemLabel(itemID))
		}
	}

	if effects.Health != 0 {
		before := c.player.Health
		c.player.Health = textkit.Clamp(before+effects.Health, 0, state.MaxHealth)
		diff := c.player.Health - before
		if diff > 0 {
			c.push(fmt.Sprintf("Health +%d", diff))
		} else if diff < 0 {
			c.push(fmt.Sprintf("Health %d", diff))
		}
	}

	for name, value := range effects.Flags {
		c.state.SetFlag(name, value)
	}

	if effects.End != "" {
		text := effects.EndingText
		if text == "" {
			text = "The story ends here."
		}
		c.state.End(effects.End, text)
		return
	}

	if c.player.Health <= 0 && !c.state.GameOver {
		c.state.End("bad", collapseEndingText)
	}
}
