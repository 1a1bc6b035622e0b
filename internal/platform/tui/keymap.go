package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-gorillas/internal/core"
)

// KeyMap defines the in-game key bindings.
type KeyMap struct {
	AimUp    key.Binding
	AimDown  key.Binding
	AimLeft  key.Binding
	AimRight key.Binding
	Throw    key.Binding
	Wind     key.Binding
	Pause    key.Binding
	Restart  key.Binding
	Quit     key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		AimUp: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/↓", "angle"),
		),
		AimDown: key.NewBinding(
			key.WithKeys("down", "j"),
		),
		AimLeft: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/→", "speed"),
		),
		AimRight: key.NewBinding(
			key.WithKeys("right", "l"),
		),
		Throw: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "throw"),
		),
		Wind: key.NewBinding(
			key.WithKeys("w"),
			key.WithHelp("w", "new wind"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "esc"),
			key.WithHelp("p", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r", "enter"),
			key.WithHelp("r", "next round"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.AimUp, k.AimLeft, k.Throw, k.Wind, k.Pause, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.AimUp, k.AimLeft, k.Throw},
		{k.Wind, k.Pause, k.Restart, k.Quit},
	}
}

// Action translates a key message to a game action.
func (k KeyMap) Action(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.AimUp):
		return core.ActionAimUp
	case key.Matches(msg, k.AimDown):
		return core.ActionAimDown
	case key.Matches(msg, k.AimLeft):
		return core.ActionAimLeft
	case key.Matches(msg, k.AimRight):
		return core.ActionAimRight
	case key.Matches(msg, k.Throw):
		return core.ActionThrow
	case key.Matches(msg, k.Wind):
		return core.ActionWind
	case key.Matches(msg, k.Pause):
		return core.ActionPause
	case key.Matches(msg, k.Restart):
		return core.ActionRestart
	}
	return core.ActionNone
}

// DefaultHoldWindow is how long a key counts as held after its last
// keystroke. It must cover the terminal's auto-repeat interval but stay
// below its initial repeat delay so a single tap is not treated as a hold.
const DefaultHoldWindow = 120 * time.Millisecond

// HoldTracker rebuilds press and hold state from a stream of keystrokes.
// Terminals only report key repeats, never releases.
type HoldTracker struct {
	Window  time.Duration
	last    map[core.Action]time.Time
	pressed map[core.Action]bool
}

// NewHoldTracker creates a tracker with the given hold window.
func NewHoldTracker(window time.Duration) *HoldTracker {
	return &HoldTracker{
		Window:  window,
		last:    make(map[core.Action]time.Time),
		pressed: make(map[core.Action]bool),
	}
}

// Key records a keystroke at now. The first keystroke after a release is a
// press; repeats inside the window only extend the hold.
func (h *HoldTracker) Key(a core.Action, now time.Time) {
	if !h.held(a, now) {
		h.pressed[a] = true
	}
	h.last[a] = now
}

func (h *HoldTracker) held(a core.Action, now time.Time) bool {
	t, ok := h.last[a]
	return ok && now.Sub(t) <= h.Window
}

// Frame fills dst with the state at now and forgets consumed presses.
func (h *HoldTracker) Frame(now time.Time, dst *core.InputFrame) {
	dst.Clear()
	for a := range h.pressed {
		dst.Press(a)
	}
	for a := range h.last {
		if h.held(a, now) {
			dst.Hold(a)
		} else {
			delete(h.last, a)
		}
	}
	clear(h.pressed)
}
