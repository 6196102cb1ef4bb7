package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone      Action = iota
	ActionMoveUp           // W
	ActionMoveDown         // S
	ActionMoveLeft         // A
	ActionMoveRight        // D
	ActionFireUp           // Up arrow
	ActionFireDown         // Down arrow
	ActionFireLeft         // Left arrow
	ActionFireRight        // Right arrow
	ActionPause            // P, Escape
	ActionRestart          // R after game over
	ActionQuit             // Q, Ctrl+C
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionMoveUp:
		return "MoveUp"
	case ActionMoveDown:
		return "MoveDown"
	case ActionMoveLeft:
		return "MoveLeft"
	case ActionMoveRight:
		return "MoveRight"
	case ActionFireUp:
		return "FireUp"
	case ActionFireDown:
		return "FireDown"
	case ActionFireLeft:
		return "FireLeft"
	case ActionFireRight:
		return "FireRight"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// IsMovement reports whether the action is one of the four held movement keys.
func (a Action) IsMovement() bool {
	return a >= ActionMoveUp && a <= ActionMoveRight
}

// InputEvent is a single key transition in the order it was received.
type InputEvent struct {
	Action   Action
	Released bool
}

// InputFrame collects the key transitions that arrived during one frame.
type InputFrame struct {
	events []InputEvent
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Press records a key-down for the action.
func (f *InputFrame) Press(a Action) {
	f.events = append(f.events, InputEvent{Action: a})
}

// Release records a key-up for the action.
func (f *InputFrame) Release(a Action) {
	f.events = append(f.events, InputEvent{Action: a, Released: true})
}

// Has returns true if the action was pressed during this frame.
func (f InputFrame) Has(a Action) bool {
	for _, ev := range f.events {
		if ev.Action == a && !ev.Released {
			return true
		}
	}
	return false
}

// Events returns the recorded transitions in arrival order.
func (f InputFrame) Events() []InputEvent {
	return f.events
}

// Clear resets the frame for reuse.
func (f *InputFrame) Clear() {
	f.events = f.events[:0]
}
