package input

import "sort"

// actionRegistry maps canonical action names to actions
// Used by the keymap config loader to resolve TOML action strings to bindings
var actionRegistry = map[string]Action{
	// Unbind sentinel
	"none": ActionNone,

	"move_left":  ActionMoveLeft,
	"move_right": ActionMoveRight,
	"move_up":    ActionMoveUp,
	"move_down":  ActionMoveDown,

	"rotate": ActionRotate,

	"toggle_mute": ActionToggleMute,
	"quit":        ActionQuit,
}

// ActionByName resolves a canonical action name
// Returns ActionNone and false if name is unknown
func ActionByName(name string) (Action, bool) {
	a, ok := actionRegistry[name]
	return a, ok
}

// ActionNames returns all registered action names, sorted
func ActionNames() []string {
	names := make([]string, 0, len(actionRegistry))
	for name := range actionRegistry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
