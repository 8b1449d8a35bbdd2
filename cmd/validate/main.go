// Command validate lints the built-in scene catalog: dangling transition
// targets, duplicate command tokens, unknown item ids, out-of-range event
// chances, and scenes unreachable from the start. It exits non-zero when
// any problem is found.
package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/jwebster45206/treasure-island/pkg/scene"
	"github.com/jwebster45206/treasure-island/pkg/textkit"
)

func main() {
	catalog := scene.BuildScenes()

	problems := lintCatalog(catalog)
	problems = append(problems, findUnreachable(catalog)...)

	if len(problems) == 0 {
		fmt.Printf("Catalog OK: %d scenes validated.\n", len(catalog))
		return
	}

	sort.Strings(problems)
	for _, problem := range problems {
		fmt.Fprintln(os.Stderr, problem)
	}
	fmt.Fprintf(os.Stderr, "%d problem(s) found in %d scenes.\n", len(problems), len(catalog))
	os.Exit(1)
}

func lintCatalog(catalog map[string]scene.Scene) []string {
	var problems []string

	for id, sc := range catalog {
		if sc.ID != id {
			problems = append(problems, fmt.Sprintf("%s: catalog key does not match scene id %q", id, sc.ID))
		}
		if sc.Title == "" {
			problems = append(problems, id+": missing title")
		}
		if sc.Description == "" {
			problems = append(problems, id+": missing description")
		}

		tokens := map[string]bool{}
		for _, action := range sc.Actions {
			if action.Command == "" {
				problems = append(problems, id+": action with empty command")
				continue
			}
			for _, token := range append([]string{action.Command}, action.Aliases...) {
				if tokens[token] {
					problems = append(problems, fmt.Sprintf("%s: duplicate command token %q", id, token))
				}
				tokens[token] = true
			}

			if action.Target != "" {
				if _, ok := catalog[action.Target]; !ok {
					problems = append(problems, fmt.Sprintf("%s/%s: target %q does not exist", id, action.Command, action.Target))
				}
			}
			problems = append(problems, lintItems(id, action.Command, action.RequiredItems)...)
			if action.Effects != nil {
				problems = append(problems, lintItems(id, action.Command, action.Effects.AddItems)...)
				problems = append(problems, lintItems(id, action.Command, action.Effects.RemoveItems)...)
			}
		}

		for _, event := range sc.RandomEvents {
			if event.ID == "" {
				problems = append(problems, id+": random event with empty id")
			}
			if event.Chance < 0 || event.Chance > 1 {
				problems = append(problems, fmt.Sprintf("%s/%s: chance %v outside [0,1]", id, event.ID, event.Chance))
			}
			if event.Effects != nil {
				problems = append(problems, lintItems(id, event.ID, event.Effects.AddItems)...)
			}
		}
	}

	return problems
}

// lintItems flags item ids without a display label. An unlabeled id is
// almost always a typo in the catalog.
func lintItems(sceneID, where string, items []string) []string {
	var problems []string
	for _, itemID := range items {
		if _, ok := textkit.ItemLabels[itemID]; !ok {
			problems = append(problems, fmt.Sprintf("%s/%s: unknown item id %q", sceneID, where, itemID))
		}
	}
	return problems
}

// findUnreachable walks action targets from the start scene and reports
// scenes no path can reach. The vault's treasure room is entered by the
// code handler rather than an action target, so it counts as reachable
// when the vault lock is.
func findUnreachable(catalog map[string]scene.Scene) []string {
	reached := map[string]bool{}
	frontier := []string{scene.StartSceneID}

	for len(frontier) > 0 {
		id := frontier[0]
		frontier = frontier[1:]
		if reached[id] {
			continue
		}
		reached[id] = true

		sc, ok := catalog[id]
		if !ok {
			continue
		}
		for _, action := range sc.Actions {
			if action.Target != "" && !reached[action.Target] {
				frontier = append(frontier, action.Target)
			}
		}
		if sc.SpecialHandler == scene.SpecialVaultCode && !reached[scene.TreasureSceneID] {
			frontier = append(frontier, scene.TreasureSceneID)
		}
	}

	var problems []string
	for id := range catalog {
		if !reached[id] {
			problems = append(problems, id+": unreachable from "+scene.StartSceneID)
		}
	}
	return problems
}
