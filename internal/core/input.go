package core

// Action is a semantic game action, decoupled from physical keys.
type Action int

const (
	ActionNone     Action = iota
	ActionLeft            // Left arrow, h, a
	ActionRight           // Right arrow, l, d
	ActionSoftDrop        // Down arrow, j, s
	ActionRotate          // Up arrow, k, w
	ActionPause           // P
	ActionRestart         // R, after game over
	ActionBack            // Esc, B - back to menu
	ActionQuit            // Q, Ctrl+C
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionSoftDrop:
		return "SoftDrop"
	case ActionRotate:
		return "Rotate"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
