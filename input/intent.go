package input

// Action discriminates what a key press asks the game to do
type Action uint8

const (
	ActionNone Action = iota

	// Movement within the visible slice
	ActionMoveLeft  // h, Left arrow
	ActionMoveRight // l, Right arrow
	ActionMoveUp    // k, Up arrow
	ActionMoveDown  // j, Down arrow

	// Cross-section
	ActionRotate // d, Space

	// System-level
	ActionToggleMute // m
	ActionQuit       // q, Esc, Ctrl+C
)

func (a Action) String() string {
	for name, act := range actionRegistry {
		if act == a {
			return name
		}
	}
	return "unknown"
}

// IsMove reports whether the action is one of the four movement actions
func (a Action) IsMove() bool {
	return a >= ActionMoveLeft && a <= ActionMoveDown
}
