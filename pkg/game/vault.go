package game

import (
	"strings"

	"github.com/jwebster45206/treasure-island/pkg/scene"
)

const (
	vaultCode        = "274"
	maxCodeAttempts  = 3
	vaultOpenedText  = "The rune panel trembles. The lock clicks open."
	wrongCodeText    = "Wrong code. Needles snap out of the panel."
	codeFormatText   = "Invalid format. Example: code 274"
	vaultCollapseEnd = "After three failures, the mechanism detonates and the chamber collapses."
)

// handleVaultCode resolves a 'code XXX' command on the vault lock.
// The argument must be exactly three digits; anything else is a format
// error with no state change.
func (c *Core) handleVaultCode(command string) {
	parts := strings.Fields(command)
	if len(parts) != 2 || !isThreeDigits(parts[1]) {
		c.push(codeFormatText)
		return
	}

	if parts[1] == vaultCode {
		// A code clue discovered earlier doubles the reward.
		bonus := 6
		if c.state.FlagBool("knows_code") {
			bonus = 12
		}
		c.applyEffects(&scene.Effects{
			Score: bonus,
			Flags: map[string]any{"vault_solved": true},
		})
		c.push(vaultOpenedText)
		c.enterScene(scene.TreasureSceneID)
		return
	}

	attempts := c.state.FlagInt("wrong_code_attempts") + 1
	c.state.SetFlag("wrong_code_attempts", attempts)
	c.push(wrongCodeText)
	c.applyEffects(&scene.Effects{Health: -1, Score: -2})

	// The third failure is fatal regardless of remaining health.
	if !c.state.GameOver && attempts >= maxCodeAttempts {
		c.state.End("bad", vaultCollapseEnd)
	}
}

func isThreeDigits(s string) bool {
	if len(s) != 3 {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
