package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-gorillas/internal/config"
	"github.com/vovakirdan/tui-gorillas/internal/core"
	"github.com/vovakirdan/tui-gorillas/internal/games/gorillas"
	"github.com/vovakirdan/tui-gorillas/internal/storage"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	game := gorillas.New(config.DefaultGorillasConfig())
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, FPS: 30, Seed: 42}
	m := NewModel(game, cfg, Options{})
	m.Init()
	return m
}

func TestModelThrowOnSpace(t *testing.T) {
	m := newTestModel(t)
	t0 := time.Unix(100, 0)

	next, _ := m.handleKey(tea.KeyMsg{Type: tea.KeySpace}, t0)
	m = next.(Model)
	next, cmd := m.Update(TickMsg(t0.Add(33 * time.Millisecond)))
	m = next.(Model)

	if cmd == nil {
		t.Error("tick should schedule the next tick")
	}
	if m.Game().Turn().Phase == gorillas.PhaseEnter {
		t.Error("space then tick should throw the banana")
	}
	if m.Game().World().Banana == nil {
		t.Error("banana should be in flight")
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(t)

	next, cmd := m.Update(runeKey("q"))
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if v := next.(Model).View(); v != "" {
		t.Errorf("view after quit = %q, expected empty", v)
	}
}

func TestModelViewLayout(t *testing.T) {
	m := newTestModel(t)

	next, _ := m.Update(tea.WindowSizeMsg{Width: 60, Height: 20})
	m = next.(Model)

	lines := strings.Split(m.View(), "\n")
	if len(lines) != 20 {
		t.Errorf("view has %d lines, expected 20", len(lines))
	}
	if m.screen.Height() != 20-hudLines-1 {
		t.Errorf("arena rows = %d", m.screen.Height())
	}
}

func TestArenaRowsNeverZero(t *testing.T) {
	if got := arenaRows(2); got != 1 {
		t.Errorf("arenaRows(2) = %d, expected 1", got)
	}
}

func TestFormatHUD(t *testing.T) {
	h := gorillas.HUD{
		Player:     core.Player1,
		PlayerName: "Kong",
		Phase:      gorillas.PhaseEnter,
		Angle:      45,
		Speed:      30,
		Wind:       -12,
		Names:      [2]string{"Kong", "Bonzo"},
		Wins:       [2]int{1, 3},
		Round:      5,
	}
	out := FormatHUD(h)
	for _, want := range []string{"Kong", "Bonzo", "45", "30", "-12", "←←←", "round"} {
		if !strings.Contains(out, want) {
			t.Errorf("HUD missing %q:\n%s", want, out)
		}
	}

	h.Phase = gorillas.PhaseWinner
	h.WinnerName = "Bonzo"
	if out := FormatHUD(h); !strings.Contains(out, "Bonzo wins!") {
		t.Errorf("winner HUD = %q", out)
	}

	h.Paused = true
	if out := FormatHUD(h); !strings.Contains(out, "PAUSED") {
		t.Errorf("paused HUD = %q", out)
	}
}

func TestWindArrow(t *testing.T) {
	tests := map[int]string{0: "·", 1: "→", 5: "→", 6: "→→", -20: "←←←←"}
	for wind, want := range tests {
		if got := windArrow(wind); got != want {
			t.Errorf("windArrow(%d) = %q, expected %q", wind, got, want)
		}
	}
}

type memResults struct {
	rounds  []storage.Round
	tallies []storage.Tally
}

func (m memResults) RecentRounds(int) ([]storage.Round, error) { return m.rounds, nil }
func (m memResults) Tallies() ([]storage.Tally, error)         { return m.tallies, nil }

func TestScoreboardViews(t *testing.T) {
	src := memResults{
		rounds:  []storage.Round{{Winner: "Kong", Loser: "Bonzo", Throws: 3, Wind: 4, Source: "local", CreatedAt: time.Now()}},
		tallies: []storage.Tally{{Name: "Kong", Wins: 1}, {Name: "Bonzo", Losses: 1}},
	}
	m := NewScoreboardModel(src, 100, 30)
	if !strings.Contains(m.View(), "RECENT ROUNDS") || !strings.Contains(m.View(), "Kong") {
		t.Errorf("rounds view:\n%s", m.View())
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)
	if !strings.Contains(m.View(), "PLAYERS") {
		t.Errorf("players view:\n%s", m.View())
	}
}

func TestScoreboardEmpty(t *testing.T) {
	m := NewScoreboardModel(memResults{}, 80, 24)
	if !strings.Contains(m.View(), "No rounds recorded yet") {
		t.Errorf("empty view:\n%s", m.View())
	}
}
