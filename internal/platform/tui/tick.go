// Package tui runs Gorillas in the terminal with Bubble Tea, locally or over
// SSH, and shows saved round results.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent once per rendered frame.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at fps.
func tickCmd(fps int) tea.Cmd {
	if fps <= 0 {
		fps = 30
	}
	interval := time.Second / time.Duration(fps)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
