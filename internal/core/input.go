package core

import "time"

// Action represents a semantic game action, abstracted from physical key
// presses and mouse gestures.
type Action int

const (
	ActionNone     Action = iota
	ActionLeft            // Left, A, H, drag left - shift piece left
	ActionRight           // Right, D, L, drag right - shift piece right
	ActionSoftDrop        // Down, S, J, swipe down - move piece down one row
	ActionRotate          // Up, W, X, K, tap - rotate clockwise
	ActionStart           // Enter, Space - start a game from the title screen
	ActionPause           // P, Escape - pause/unpause game
	ActionRestart         // R - restart after game over
	ActionQuit            // Q, Ctrl+C - exit
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
	case ActionStart:
		return "Start"
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

// InputFrame is the command queue for a single simulation tick.
// Actions are kept in arrival order and drained once per tick, so a move
// followed by a rotate is applied in that order.
type InputFrame struct {
	actions []Action

	// Elapsed is the wall-clock time since the previous tick.
	// Zero means the game should assume its nominal tick duration.
	Elapsed time.Duration
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Push appends an action to the queue. ActionNone is dropped.
func (f *InputFrame) Push(a Action) {
	if a == ActionNone {
		return
	}
	f.actions = append(f.actions, a)
}

// Actions returns the queued actions in arrival order.
func (f InputFrame) Actions() []Action {
	return f.actions
}

// Len returns the number of queued actions.
func (f InputFrame) Len() int {
	return len(f.actions)
}

// Clear resets the queue for the next frame, keeping the backing array.
func (f *InputFrame) Clear() {
	f.actions = f.actions[:0]
	f.Elapsed = 0
}
