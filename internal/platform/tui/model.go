package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-gorillas/internal/config"
	"github.com/vovakirdan/tui-gorillas/internal/core"
	"github.com/vovakirdan/tui-gorillas/internal/games/gorillas"
	"github.com/vovakirdan/tui-gorillas/internal/platform"
)

// Options wires a Model to its surroundings. Zero values are fine.
type Options struct {
	Store  platform.RoundSaver
	Sound  platform.Sound
	Logger *log.Logger
	Source string // tag for saved rounds
}

// Model is the Bubble Tea model for a Gorillas match.
type Model struct {
	game     *gorillas.Game
	screen   *core.Screen
	config   core.RuntimeConfig
	keys     KeyMap
	help     help.Model
	holds    *HoldTracker
	input    *core.InputFrame
	recorder *platform.Recorder
	last     *time.Time
	quitting bool
}

// NewModel creates a model around an existing game.
func NewModel(game *gorillas.Game, cfg core.RuntimeConfig, opts Options) Model {
	cfg = cfg.Seeded(time.Now())
	if opts.Source == "" {
		opts.Source = "local"
	}
	input := core.NewInputFrame()
	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:     game,
		screen:   core.NewScreen(cfg.ScreenW, arenaRows(cfg.ScreenH)),
		config:   cfg,
		keys:     DefaultKeyMap(),
		help:     h,
		holds:    NewHoldTracker(DefaultHoldWindow),
		input:    &input,
		recorder: platform.NewRecorder(opts.Store, opts.Sound, opts.Source, opts.Logger),
		last:     new(time.Time),
	}
}

// arenaRows leaves room for the HUD and the help line.
func arenaRows(height int) int {
	return core.Max(1, height-hudLines-1)
}

// Init starts the match and the frame loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.FPS)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg, time.Now())

	case tea.WindowSizeMsg:
		// the world has a fixed size, only the projection changes
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, arenaRows(msg.Height))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg, now time.Time) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}
	action := m.keys.Action(msg)
	switch action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionNone:
		return m, nil
	}
	m.holds.Key(action, now)
	return m, nil
}

func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	elapsed := time.Second / time.Duration(core.Max(1, m.config.FPS))
	if !m.last.IsZero() {
		elapsed = now.Sub(*m.last)
	}
	*m.last = now

	m.holds.Frame(now, m.input)
	res := m.game.Update(elapsed, *m.input)
	m.recorder.Handle(m.game, res)

	return m, tickCmd(m.config.FPS)
}

// saveScreenshot dumps the arena as plain text.
func (m Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(config.HomeDir(), "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(filepath.Join(dir, filename), []byte(m.screen.String()), 0o600)
}

// View renders the arena, the HUD and the key help.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	m.game.Render(m.screen)
	helpLine := lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Render(m.help.View(m.keys))
	return RenderScreen(m.screen) + "\n" + FormatHUD(m.game.HUD()) + "\n" + helpLine
}

// Game returns the running game.
func (m Model) Game() *gorillas.Game { return m.game }

// Run plays a match in the current terminal.
func Run(game *gorillas.Game, cfg core.RuntimeConfig, opts Options) error {
	p := tea.NewProgram(NewModel(game, cfg, opts), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
