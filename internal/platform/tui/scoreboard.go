package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-gorillas/internal/core"
	"github.com/vovakirdan/tui-gorillas/internal/storage"
)

const maxRounds = 100 // rounds loaded into the board

// ResultsSource is what the board reads from.
type ResultsSource interface {
	RecentRounds(limit int) ([]storage.Round, error)
	Tallies() ([]storage.Tally, error)
}

// boardView selects which table is shown.
type boardView int

const (
	viewRounds boardView = iota
	viewPlayers
)

func (v boardView) String() string {
	if v == viewPlayers {
		return "PLAYERS"
	}
	return "RECENT ROUNDS"
}

// ScoreboardKeyMap defines the key bindings for the results board.
type ScoreboardKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Switch key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Switch, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Switch, k.Quit}}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Switch: key.NewBinding(
			key.WithKeys("tab", "shift+tab", "left", "right"),
			key.WithHelp("tab", "rounds/players"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardModel is the Bubble Tea model for the results board.
type ScoreboardModel struct {
	source   ResultsSource
	view     boardView
	rounds   []storage.Round
	tallies  []storage.Tally
	err      error
	table    table.Model
	help     help.Model
	keys     ScoreboardKeyMap
	width    int
	height   int
	quitting bool
}

// NewScoreboardModel creates a results board and loads the data.
func NewScoreboardModel(source ResultsSource, width, height int) ScoreboardModel {
	h := help.New()
	h.Width = width

	m := ScoreboardModel{
		source: source,
		keys:   DefaultScoreboardKeyMap(),
		help:   h,
		width:  width,
		height: height,
	}
	m.load()
	m.table = m.createTable()
	return m
}

func (m *ScoreboardModel) load() {
	if m.source == nil {
		return
	}
	rounds, err := m.source.RecentRounds(maxRounds)
	if err != nil {
		m.err = err
		return
	}
	tallies, err := m.source.Tallies()
	if err != nil {
		m.err = err
		return
	}
	m.rounds, m.tallies = rounds, tallies
}

func (m *ScoreboardModel) columns() []table.Column {
	if m.view == viewPlayers {
		return []table.Column{
			{Title: "#", Width: 4},
			{Title: "Player", Width: 20},
			{Title: "Wins", Width: 6},
			{Title: "Losses", Width: 7},
		}
	}
	return []table.Column{
		{Title: "When", Width: 13},
		{Title: "Winner", Width: 14},
		{Title: "Loser", Width: 14},
		{Title: "Throws", Width: 7},
		{Title: "Wind", Width: 5},
		{Title: "Via", Width: 6},
	}
}

func (m *ScoreboardModel) rows() []table.Row {
	if m.view == viewPlayers {
		rows := make([]table.Row, len(m.tallies))
		for i, t := range m.tallies {
			rows[i] = table.Row{fmt.Sprintf("%d", i+1), t.Name, fmt.Sprintf("%d", t.Wins), fmt.Sprintf("%d", t.Losses)}
		}
		return rows
	}
	rows := make([]table.Row, len(m.rounds))
	for i, r := range m.rounds {
		rows[i] = table.Row{
			r.CreatedAt.Format("Jan 02 15:04"),
			r.Winner,
			r.Loser,
			fmt.Sprintf("%d", r.Throws),
			fmt.Sprintf("%+d", r.Wind),
			r.Source,
		}
	}
	return rows
}

func (m *ScoreboardModel) createTable() table.Model {
	t := table.New(
		table.WithColumns(m.columns()),
		table.WithRows(m.rows()),
		table.WithFocused(true),
		table.WithHeight(core.Max(3, m.height-8)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)
	return t
}

// Init initializes the results board.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the results board.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Switch):
			m.view = 1 - m.view
			m.table = m.createTable()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the results board.
func (m ScoreboardModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	b.WriteString(titleStyle.Render(centerText("GORILLAS - "+m.view.String(), m.width)))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(tableStyle.Render(m.tableContent()))
	b.WriteString("\n")

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

func (m ScoreboardModel) tableContent() string {
	emptyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(2, 4)
	switch {
	case m.err != nil:
		return emptyStyle.Render("Could not read results:\n" + m.err.Error())
	case len(m.rounds) == 0:
		return emptyStyle.Render("No rounds recorded yet.\nWin one to see it here!")
	}
	return m.table.View()
}

// centerText pads text to sit in the middle of width columns.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// RunScoreboard shows the results board until the user quits.
func RunScoreboard(source ResultsSource, width, height int) error {
	p := tea.NewProgram(NewScoreboardModel(source, width, height), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: results: %w", err)
	}
	return nil
}
