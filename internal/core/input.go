package core

// Action is a semantic game action, abstracted from physical key presses
// and mouse clicks. The platform maps raw input to actions so the
// simulation never sees key codes.
type Action int

const (
	ActionNone    Action = iota
	ActionFlap           // Space, Up, W, or a mouse click - upward impulse
	ActionStart          // Enter/Space from the idle screen - begin a run
	ActionRestart        // R/Enter after game over - begin a new run
	ActionPause          // P - freeze/unfreeze the simulation
	ActionMute           // M - toggle audio cues
	ActionQuit           // Q, Ctrl+C - leave the game
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionFlap:
		return "Flap"
	case ActionStart:
		return "Start"
	case ActionRestart:
		return "Restart"
	case ActionPause:
		return "Pause"
	case ActionMute:
		return "Mute"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame holds the actions triggered during one simulation tick.
type InputFrame struct {
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}
