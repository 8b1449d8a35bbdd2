package scene

// Scene and item ids referenced across the catalog and the game core.
const (
	StartSceneID    = "camp"
	TreasureSceneID = "treasure_room"

	ItemCopperCoin  = "bakir_para"
	ItemTorch       = "mesale"
	ItemSilverKey   = "gumus_anahtar"
	ItemMoonDisk    = "ay_diski"
	ItemHealingHerb = "sifali_ot"
)

// BuildScenes returns the full scene catalog, keyed by scene id. The catalog
// is static content; all mutable state lives in Player/GameState flags.
func BuildScenes() map[string]Scene {
	scenes := []Scene{
		{
			ID:    "camp",
			Title: "Shore Camp",
			Description: "Night is fading.\n" +
				"A cold firepit and a torn map lie at your feet.\n" +
				"Mist drifts over the path into the forest.",
			HintText: "Do not stay in camp too long. The trail is where the story starts.",
			Actions: []Action{
				{
					Command: "proceed",
					Label:   "Step onto the misty trail.",
					Target:  "crossroad",
					Effects: &Effects{Score: 2},
				},
				{
					Command:       "chest",
					Label:         "Search the old camp chest.",
					RequiredFlags: map[string]any{"camp_chest_opened": false},
					Effects: &Effects{
						AddItems: []string{ItemCopperCoin},
						Flags:    map[string]any{"camp_chest_opened": true},
						Score:    4,
					},
					ResultText:  "You find a copper coin and a faded note.",
					BlockedText: "The chest has nothing useful left.",
				},
				{
					Command:       "rest",
					Label:         "Take a short rest.",
					RequiredFlags: map[string]any{"rested_once": false},
					Effects: &Effects{
						Health: 1,
						Flags:  map[string]any{"rested_once": true},
					},
					ResultText:  "You steady your breathing. Health +1.",
					BlockedText: "If you linger longer, the mist will close in.",
				},
			},
		},
		{
			ID:    "crossroad",
			Title: "Fork in the Path",
			Description: "A cracked stone sign points in two directions.\n" +
				"Water scent comes from the left. The right path is a dark cut in the earth.",
			HintText: "Old tales suggest the first safe turn is left.",
			Actions: []Action{
				{Command: "left", Label: "Take the left path.", Target: "lake_shore", Effects: &Effects{Score: 5}},
				{Command: "right", Label: "Take the right path.", Target: "pitfall"},
				{Command: "tracks", Label: "Follow the strange footprints.", Target: "marsh", Effects: &Effects{Score: 2}},
			},
		},
		{
			ID:          "pitfall",
			Title:       "Collapsed Ground",
			Description: "The ground on the right path suddenly gives way.",
			OnEnterEffects: &Effects{
				End:        "bad",
				EndingText: "You fall into a deep pit. The island swallows you whole.",
			},
		},
		{
			ID:    "lake_shore",
			Title: "Silent Lake",
			Description: "The forest opens to a still lake.\n" +
				"In the center, an island house waits in the fog.",
			HintText: "Swimming looks faster, but this water is too quiet.",
			Actions: []Action{
				{Command: "wait", Label: "Wait for a boat at the shore.", Target: "island_dock", Effects: &Effects{Score: 5}},
				{Command: "swim", Label: "Try to swim across.", Target: "drowned"},
				{Command: "reeds", Label: "Move toward the reeds by the lake.", Target: "marsh"},
			},
		},
		{
			ID:          "drowned",
			Title:       "Dark Water",
			Description: "The lake twists into a hungry current.",
			OnEnterEffects: &Effects{
				End:        "bad",
				EndingText: "An undercurrent drags you under. Your trail vanishes.",
			},
		},
		{
			ID:    "island_dock",
			Title: "Island Dock",
			Description: "You step onto a rotten dock.\n" +
				"A house, a tower, and a marsh path stretch ahead.",
			HintText: "The doors in the house are central, but the tower hides key pieces too.",
			Actions: []Action{
				{Command: "house", Label: "Head for the dim house.", Target: "house_hall", Effects: &Effects{Score: 2}},
				{Command: "tower", Label: "Climb the stone tower.", Target: "watchtower"},
				{Command: "marsh", Label: "Take the path into the marsh.", Target: "marsh"},
			},
		},
		{
			ID:    "house_hall",
			Title: "Hall of Three Doors",
			Description: "The air turns cold.\n" +
				"Three doors stand ahead: red, yellow, blue.",
			HintText: "Do not assume red only means danger. Sometimes fire gives tools.",
			Actions: []Action{
				{Command: "red", Label: "Enter the red door.", Target: "red_room"},
				{Command: "yellow", Label: "Enter the yellow door.", Target: "yellow_room"},
				{Command: "blue", Label: "Enter the blue door.", Target: "blue_room"},
				{Command: "back", Label: "Return to the dock.", Target: "island_dock"},
			},
		},
		{
			ID:    "red_room",
			Title: "Ember Room",
			Description: "Heat drips off the walls.\n" +
				"A tar-coated torch leans in the corner.",
			HintText: "The torch can break through the blue door's darkness.",
			Actions: []Action{
				{
					Command:       "torch",
					Label:         "Take the torch and return to the hall.",
					Target:        "house_hall",
					RequiredFlags: map[string]any{"torch_taken": false},
					Effects: &Effects{
						AddItems: []string{ItemTorch},
						Flags:    map[string]any{"torch_taken": true},
						Score:    10,
					},
					ResultText:  "You grip the torch. The flame burns steady.",
					BlockedText: "The torch bracket is already empty.",
				},
				{Command: "back", Label: "Retreat before the heat takes you.", Target: "house_hall"},
			},
		},
		{
			ID:    "blue_room",
			Title: "Blue Gloom",
			Description: "The ceiling disappears into shadow.\n" +
				"A dark library corridor stretches ahead.",
			HintText: "A lit torch is the only safe way through this corridor.",
			Actions: []Action{
				{
					Command:       "forward",
					Label:         "Advance into the corridor.",
					Target:        "library",
					RequiredItems: []string{ItemTorch},
					Effects:       &Effects{Score: 8},
					BlockedText:   "Claws scrape in the dark. You need a torch first.",
				},
				{Command: "touch", Label: "Touch the hanging chain in the dark.", Target: "beast_den"},
				{Command: "back", Label: "Return to the hall.", Target: "house_hall"},
			},
		},
		{
			ID:          "beast_den",
			Title:       "Hunter's Den",
			Description: "The chain rattle wakes something huge in the room.",
			OnEnterEffects: &Effects{
				End:        "bad",
				EndingText: "A beast lunges from the dark. The blue door becomes your last step.",
			},
		},
		{
			ID:    "library",
			Title: "Dustbound Library",
			Description: "Stone shelves, moss scent, and a rusted stair.\n" +
				"A rune-carved book rests on a pedestal.",
			HintText: "The runes in the book form the core of the vault code.",
			Actions: []Action{
				{
					Command:       "book",
					Label:         "Read the rune-marked book.",
					RequiredFlags: map[string]any{"read_riddle": false},
					Effects: &Effects{
						Flags: map[string]any{"read_riddle": true, "knows_code": true},
						Score: 8,
					},
					ResultText:  "A line appears: 'The moon step is 2-7-4.'",
					BlockedText: "You read the same page again. Nothing new appears.",
				},
				{Command: "stairs", Label: "Climb the rusted stair to the tower.", Target: "watchtower", Effects: &Effects{Score: 2}},
				{Command: "tunnel", Label: "Take the narrow tunnel to the yellow room.", Target: "yellow_room"},
				{Command: "back", Label: "Return to the blue room.", Target: "blue_room"},
			},
		},
		{
			ID:    "yellow_room",
			Title: "Yellow Chamber",
			Description: "This room feels calmer than the rest.\n" +
				"There is a desk, a garden gate, and a sealed stone passage.",
			HintText: "The garden hides a key, and the desk repeats a clue.",
			Actions: []Action{
				{
					Command:       "desk",
					Label:         "Inspect the etched marks on the desk.",
					RequiredFlags: map[string]any{"desk_checked": false},
					Effects: &Effects{
						Flags: map[string]any{"desk_checked": true, "knows_code": true},
						Score: 6,
					},
					ResultText:  "The same numbers repeat in scratches: 2, 7, 4.",
					BlockedText: "You find no new marks on the desk.",
				},
				{Command: "garden", Label: "Step into the garden.", Target: "garden"},
				{
					Command:       "gate",
					Label:         "Approach the stone passage.",
					Target:        "cave_gate",
					RequiredItems: []string{ItemSilverKey},
					BlockedText:   "The passage demands a silver key.",
				},
				{Command: "back", Label: "Return to the hall.", Target: "house_hall"},
			},
		},
		{
			ID:    "garden",
			Title: "Moon Garden",
			Description: "Broken statues gleam under pale moonlight.\n" +
				"The soil near one plinth looks recently disturbed.",
			HintText: "Dig the loose soil. Read the statue base as well.",
			Actions: []Action{
				{
					Command:       "dig",
					Label:         "Dig into the loose soil.",
					RequiredFlags: map[string]any{"took_key": false},
					Effects: &Effects{
						AddItems: []string{ItemSilverKey},
						Flags:    map[string]any{"took_key": true},
						Score:    10,
					},
					ResultText:  "You pull a silver key from the earth.",
					BlockedText: "The pit is empty now.",
				},
				{
					Command:       "statue",
					Label:         "Read the writing on the statue base.",
					RequiredFlags: map[string]any{"moon_phrase": false},
					Effects: &Effects{
						Flags: map[string]any{"moon_phrase": true},
						Score: 4,
					},
					ResultText:  "It reads: 'The moon disk wakes at the silent door.'",
					BlockedText: "The phrase is already etched into your memory.",
				},
				{Command: "back", Label: "Return to the yellow chamber.", Target: "yellow_room"},
			},
		},
		{
			ID:    "watchtower",
			Title: "Watchtower",
			Description: "Wind moans through cracked stone.\n" +
				"A half-open chest and a broken spyglass face the island.",
			HintText: "The chest holds a key relic. You need it for the secret ending.",
			RandomEvents: []RandomEvent{
				{
					ID:      "tower_slip",
					Text:    "You slip on a wet step and scrape your arm. Health -1.",
					Chance:  0.25,
					Effects: &Effects{Health: -1},
					Once:    true,
				},
			},
			Actions: []Action{
				{
					Command:       "chest",
					Label:         "Open the tower chest.",
					RequiredFlags: map[string]any{"took_disk": false},
					Effects: &Effects{
						AddItems: []string{ItemMoonDisk},
						Flags:    map[string]any{"took_disk": true},
						Score:    9,
					},
					ResultText:  "Inside, you find a circular moon disk.",
					BlockedText: "The chest is empty.",
				},
				{
					Command:       "spyglass",
					Label:         "Look through the spyglass toward the marsh.",
					RequiredFlags: map[string]any{"saw_mirror_signal": false},
					Effects: &Effects{
						Flags: map[string]any{"saw_mirror_signal": true},
						Score: 3,
					},
					ResultText:  "You spot a glint near a hidden stone gate in the marsh.",
					BlockedText: "The view shows nothing new now.",
				},
				{Command: "down", Label: "Go back down to the library stair.", Target: "library"},
				{Command: "dock", Label: "Climb down toward the dock.", Target: "island_dock"},
				{Command: "marsh", Label: "Take the outer trail into the marsh.", Target: "marsh"},
			},
		},
		{
			ID:    "marsh",
			Title: "Sinking Marsh",
			Description: "The mud drags at each step.\n" +
				"A narrow path winds toward a stone wall.",
			HintText: "The stone inscriptions may unlock the secret route.",
			RandomEvents: []RandomEvent{
				{
					ID:      "swamp_gas",
					Text:    "A pocket of toxic marsh gas bursts. Health -1.",
					Chance:  0.45,
					Effects: &Effects{Health: -1},
					Once:    true,
				},
				{
					ID:      "swamp_herb",
					Text:    "You spot a healing herb among the reeds.",
					Chance:  0.35,
					Effects: &Effects{AddItems: []string{ItemHealingHerb}, Score: 5},
					Once:    true,
				},
			},
			Actions: []Action{
				{
					Command:       "stone",
					Label:         "Clean the stone slab and read it.",
					RequiredFlags: map[string]any{"moon_phrase": false},
					Effects: &Effects{
						Flags: map[string]any{"moon_phrase": true},
						Score: 5,
					},
					ResultText:  "The inscription repeats: 'The moon disk wakes at the silent door.'",
					BlockedText: "You already memorized the inscription.",
				},
				{Command: "path", Label: "Follow the narrow stone path.", Target: "cave_gate", Effects: &Effects{Score: 2}},
				{Command: "back", Label: "Backtrack toward the fork.", Target: "crossroad"},
				{Command: "lake", Label: "Return to the lake shore.", Target: "lake_shore"},
			},
		},
		{
			ID:    "cave_gate",
			Title: "Stone Gate",
			Description: "A massive stone gate is etched with runes.\n" +
				"Its lock socket is lined with silver.",
			HintText: "Open the gate by using the key first, then move forward.",
			Actions: []Action{
				{
					Command:       "key",
					Label:         "Insert the silver key into the lock.",
					RequiredItems: []string{ItemSilverKey},
					RequiredFlags: map[string]any{"gate_unlocked": false},
					Effects: &Effects{
						Flags: map[string]any{"gate_unlocked": true},
						Score: 7,
					},
					ResultText:  "The lock teeth shift. The gate opens.",
					BlockedText: "Either you lack the key, or the gate is already unlocked.",
				},
				{
					Command:       "forward",
					Label:         "Enter through the opened gate.",
					Target:        "vault_lock",
					RequiredFlags: map[string]any{"gate_unlocked": true},
					BlockedText:   "The gate is still sealed.",
				},
				{Command: "back", Label: "Return to the yellow chamber.", Target: "yellow_room"},
				{Command: "marsh", Label: "Head back into the marsh.", Target: "marsh"},
			},
		},
		{
			ID:    "vault_lock",
			Title: "Rune Lock",
			Description: "You enter a narrow chamber.\n" +
				"A 3-digit rune panel waits ahead.\n" +
				"Type 'code XXX' to input a code.",
			HintText:       "The code is repeated in clues scattered across the island.",
			SpecialHandler: SpecialVaultCode,
			Actions: []Action{
				{
					Command:       "disk",
					Label:         "Place the moon disk into the hidden slot below the panel.",
					Target:        "secret_sanctum",
					RequiredItems: []string{ItemMoonDisk},
					RequiredFlags: map[string]any{"moon_phrase": true},
					Effects:       &Effects{Score: 15},
					ResultText:    "The disk locks in place, and a hidden wall slides open.",
					BlockedText:   "You have not unlocked the phrase that activates the disk.",
				},
				{Command: "back", Label: "Return to the stone gate.", Target: "cave_gate"},
			},
		},
		{
			ID:          "treasure_room",
			Title:       "Treasure Vault",
			Description: "The rune door opens, revealing a chamber full of gold.",
			OnEnterEffects: &Effects{
				Score:      30,
				End:        "win",
				EndingText: "You found the ancient treasure. The island accepts you.",
			},
		},
		{
			ID:          "secret_sanctum",
			Title:       "Secret Sanctum",
			Description: "Beyond the vault lies a hidden moon sanctum untouched for ages.",
			OnEnterEffects: &Effects{
				Score:      45,
				End:        "secret",
				EndingText: "You awakened the moon sanctum and uncovered the island's deepest secret.",
			},
		},
	}

	catalog := make(map[string]Scene, len(scenes))
	for _, s := range scenes {
		catalog[s.ID] = s
	}
	return catalog
}
