package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-gorillas/internal/core"
	"github.com/vovakirdan/tui-gorillas/internal/games/gorillas"
)

var (
	hudLabel  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	hudValue  = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true)
	hudSep    = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Render(" │ ")
	hudBanner = lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true)
)

// hudLines is how many rows the status area takes below the arena.
const hudLines = 2

// playerStyle colors a player name like their gorilla.
func playerStyle(p core.PlayerID) lipgloss.Style {
	st := lipgloss.NewStyle().Bold(true)
	if code, ok := palette[gorillas.GorillaColor[p.Index()]]; ok {
		st = st.Foreground(lipgloss.Color(code))
	}
	return st
}

// windArrow draws the wind as arrows, one per five units.
func windArrow(wind int) string {
	n := (abs(wind) + 4) / 5
	switch {
	case wind > 0:
		return strings.Repeat("→", n)
	case wind < 0:
		return strings.Repeat("←", n)
	default:
		return "·"
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func field(label string, value any) string {
	return hudLabel.Render(label+" ") + hudValue.Render(fmt.Sprint(value))
}

// FormatHUD renders the two status lines.
func FormatHUD(h gorillas.HUD) string {
	score := fmt.Sprintf("%s %d : %d %s",
		playerStyle(core.Player1).Render(h.Names[0]), h.Wins[0],
		h.Wins[1], playerStyle(core.Player2).Render(h.Names[1]))

	status := strings.Join([]string{
		field("round", h.Round),
		score,
		field("wind", fmt.Sprintf("%+d %s", h.Wind, windArrow(h.Wind))),
	}, hudSep)

	var turn string
	switch {
	case h.Paused:
		turn = hudBanner.Render("PAUSED") + hudLabel.Render("  press p to resume")
	case h.Phase == gorillas.PhaseWinner:
		turn = hudBanner.Render(h.WinnerName+" wins!") + hudLabel.Render("  press r for the next round")
	case h.Phase == gorillas.PhaseEnter:
		turn = strings.Join([]string{
			playerStyle(h.Player).Render(h.PlayerName),
			field("angle", h.Angle),
			field("speed", h.Speed),
		}, hudSep)
	default:
		turn = playerStyle(h.Player).Render(h.PlayerName) + hudLabel.Render(" throws...")
	}
	return status + "\n" + turn
}
