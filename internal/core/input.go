package core

// Action is a semantic game intent, abstracted from physical keys.
type Action int

const (
	ActionNone      Action = iota
	ActionAimUp            // Up arrow - raise throw angle
	ActionAimDown          // Down arrow - lower throw angle
	ActionAimLeft          // Left arrow - less throw speed
	ActionAimRight         // Right arrow - more throw speed
	ActionThrow            // Space - throw banana
	ActionWind             // W - reroll wind
	ActionPause            // P - pause/unpause
	ActionRestart          // R - new round after a win
	ActionQuit             // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionAimUp:
		return "AimUp"
	case ActionAimDown:
		return "AimDown"
	case ActionAimLeft:
		return "AimLeft"
	case ActionAimRight:
		return "AimRight"
	case ActionThrow:
		return "Throw"
	case ActionWind:
		return "Wind"
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

// InputFrame is the input state for one frame.
// Pressed holds actions that went down this frame; Held holds actions whose
// key is currently down (a just-pressed action is also held).
type InputFrame struct {
	Pressed map[Action]bool
	Held    map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Pressed: make(map[Action]bool),
		Held:    make(map[Action]bool),
	}
}

// Press marks an action as just pressed (and therefore held).
func (f *InputFrame) Press(a Action) {
	if f.Pressed == nil {
		f.Pressed = make(map[Action]bool)
	}
	f.Pressed[a] = true
	f.Hold(a)
}

// Hold marks an action as held without a fresh press.
func (f *InputFrame) Hold(a Action) {
	if f.Held == nil {
		f.Held = make(map[Action]bool)
	}
	f.Held[a] = true
}

// Has returns true if the action was pressed this frame.
func (f InputFrame) Has(a Action) bool {
	return f.Pressed[a]
}

// IsHeld returns true if the action's key is down this frame.
func (f InputFrame) IsHeld(a Action) bool {
	return f.Held[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	clear(f.Pressed)
	clear(f.Held)
}
