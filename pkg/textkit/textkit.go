// Package textkit holds small helpers for command parsing and display
// formatting shared by the game core and its adapters.
package textkit

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ItemLabels maps internal item ids to display names.
var ItemLabels = map[string]string{
	"bakir_para":    "Copper Coin",
	"mesale":        "Torch",
	"gumus_anahtar": "Silver Key",
	"ay_diski":      "Moon Disk",
	"sifali_ot":     "Healing Herb",
}

var titleCaser = cases.Title(language.English)

// NormalizeCommand prepares raw input for matching: trim, lowercase, and
// collapse internal whitespace to single spaces.
func NormalizeCommand(raw string) string {
	return strings.Join(strings.Fields(strings.ToLower(raw)), " ")
}

// Clamp limits value to [minimum, maximum].
func Clamp(value, minimum, maximum int) int {
	if value < minimum {
		return minimum
	}
	if value > maximum {
		return maximum
	}
	return value
}

// ItemLabel returns the display name for an item id, title-casing unknown
// ids as a readable fallback.
func ItemLabel(itemID string) string {
	if label, ok := ItemLabels[itemID]; ok {
		return label
	}
	return titleCaser.String(strings.ReplaceAll(itemID, "_", " "))
}

// FormatInventory returns readable inventory text.
func FormatInventory(items []string) string {
	if len(items) == 0 {
		return "Empty"
	}
	labels := make([]string, 0, len(items))
	for _, item := range items {
		labels = append(labels, ItemLabel(item))
	}
	return strings.Join(labels, ", ")
}

// DedupePreserveOrder removes duplicates while preserving first-seen order.
func DedupePreserveOrder(values []string) []string {
	seen := make(map[string]bool, len(values))
	ordered := make([]string, 0, len(values))
	for _, value := range values {
		if seen[value] {
			continue
		}
		seen[value] = true
		ordered = append(ordered, value)
	}
	return ordered
}
