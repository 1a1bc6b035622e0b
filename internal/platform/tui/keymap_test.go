package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-gorillas/internal/core"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestKeyMapAction(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"up arrow", tea.KeyMsg{Type: tea.KeyUp}, core.ActionAimUp},
		{"vim down", runeKey("j"), core.ActionAimDown},
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionAimLeft},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.ActionAimRight},
		{"space", tea.KeyMsg{Type: tea.KeySpace}, core.ActionThrow},
		{"wind", runeKey("w"), core.ActionWind},
		{"pause", runeKey("p"), core.ActionPause},
		{"restart", runeKey("r"), core.ActionRestart},
		{"quit", runeKey("q"), core.ActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"unbound", runeKey("z"), core.ActionNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := km.Action(tt.msg); got != tt.want {
				t.Errorf("Action(%q) = %v, expected %v", tt.msg.String(), got, tt.want)
			}
		})
	}
}

func TestHoldTrackerTap(t *testing.T) {
	h := NewHoldTracker(100 * time.Millisecond)
	frame := core.NewInputFrame()
	t0 := time.Unix(0, 0)

	h.Key(core.ActionAimUp, t0)
	h.Frame(t0.Add(10*time.Millisecond), &frame)
	if !frame.Has(core.ActionAimUp) || !frame.IsHeld(core.ActionAimUp) {
		t.Fatal("first keystroke should press and hold")
	}

	h.Frame(t0.Add(50*time.Millisecond), &frame)
	if frame.Has(core.ActionAimUp) {
		t.Error("press must only be reported once")
	}
	if !frame.IsHeld(core.ActionAimUp) {
		t.Error("key should still count as held inside the window")
	}

	h.Frame(t0.Add(200*time.Millisecond), &frame)
	if frame.IsHeld(core.ActionAimUp) {
		t.Error("hold should lapse after the window")
	}
}

func TestHoldTrackerRepeat(t *testing.T) {
	h := NewHoldTracker(100 * time.Millisecond)
	frame := core.NewInputFrame()
	t0 := time.Unix(0, 0)

	h.Key(core.ActionAimRight, t0)
	h.Frame(t0, &frame)

	// terminal auto-repeat
	for i := 1; i <= 5; i++ {
		now := t0.Add(time.Duration(i) * 30 * time.Millisecond)
		h.Key(core.ActionAimRight, now)
		h.Frame(now, &frame)
		if frame.Has(core.ActionAimRight) {
			t.Fatalf("repeat %d reported as a new press", i)
		}
		if !frame.IsHeld(core.ActionAimRight) {
			t.Fatalf("repeat %d not held", i)
		}
	}

	// released then tapped again
	later := t0.Add(time.Second)
	h.Key(core.ActionAimRight, later)
	h.Frame(later, &frame)
	if !frame.Has(core.ActionAimRight) {
		t.Error("keystroke after release should be a fresh press")
	}
}
