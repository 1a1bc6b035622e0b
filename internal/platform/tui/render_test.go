package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-gorillas/internal/core"
)

func TestRenderScreenRows(t *testing.T) {
	s := core.NewScreen(6, 3)
	s.DrawTextColor(0, 0, "ab", core.ColorGray)
	s.DrawTextColor(2, 0, "cd", core.ColorBrown)
	s.SetColor(5, 2, '@', core.ColorGreen)

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	if !strings.Contains(lines[0], "ab") || !strings.Contains(lines[0], "cd") {
		t.Errorf("row 0 lost text: %q", lines[0])
	}
	if !strings.Contains(lines[2], "@") {
		t.Errorf("row 2 lost gorilla: %q", lines[2])
	}
}

func TestEveryColorHasStyle(t *testing.T) {
	for c := core.ColorDefault; c <= core.ColorSky; c++ {
		if _, ok := colorStyles[c]; !ok {
			t.Errorf("no style for color %d", c)
		}
	}
}
