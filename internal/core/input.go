package core

// Action represents a semantic game action, abstracted from physical key or
// mouse events. The simulation works with high-level intents rather than
// raw input.
type Action int

const (
	ActionNone      Action = iota
	ActionJump             // Space, W, Up - jump (buffered/coyote rules apply)
	ActionDrawStart        // Mouse press - begin drawing an ink line
	ActionDrawPoint        // Mouse drag - extend the active ink line
	ActionDrawEnd          // Mouse release - seal the active ink line
	ActionRevive           // Enter after death - spend a revive
	ActionConfirm          // Enter - confirm selection in menus
	ActionBack             // B, Escape - go back
	ActionRestart          // R key - restart after the run ends
	ActionQuit             // Q, Ctrl+C - exit
	ActionPause            // P - pause/unpause
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionJump:
		return "Jump"
	case ActionDrawStart:
		return "DrawStart"
	case ActionDrawPoint:
		return "DrawPoint"
	case ActionDrawEnd:
		return "DrawEnd"
	case ActionRevive:
		return "Revive"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input gathered during one simulation tick.
// Draw actions carry the pointer position in world units.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool

	// Pointer is the world-space position accompanying draw actions.
	Pointer Vec2
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

// SetPointer marks a draw action and records the pointer position.
func (f *InputFrame) SetPointer(a Action, p Vec2) {
	f.Set(a)
	f.Pointer = p
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
	f.Pointer = Vec2{}
}
