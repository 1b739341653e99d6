package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/vovakirdan/tui-asteroids/internal/session"
	"github.com/vovakirdan/tui-asteroids/internal/storage"
)

// Scoreboard layout constants
const (
	maxScores = 100 // Max rows to load per view
)

// Leaderboard is the read side of the score store.
type Leaderboard interface {
	TopPilots(limit int) ([]storage.PilotEntry, error)
	RecentRuns(pilot string, limit int) ([]session.Run, error)
}

// scoreView is one tab of the scoreboard.
type scoreView int

const (
	viewPilots scoreView = iota
	viewMyRuns
	viewAllRuns
	viewCount
)

func (v scoreView) title() string {
	switch v {
	case viewPilots:
		return "Top Pilots"
	case viewMyRuns:
		return "My Runs"
	default:
		return "Recent Runs"
	}
}

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextView key.Binding
	PrevView key.Binding
	Back     key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextView, k.PrevView, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextView, k.PrevView},
		{k.Back, k.Quit},
	}
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
		NextView: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next view"),
		),
		PrevView: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev view"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardModel is the Bubble Tea model for the scoreboard screen.
type ScoreboardModel struct {
	board     Leaderboard
	pilot     string
	view      scoreView
	rows      []table.Row
	loadErr   error
	table     table.Model
	help      help.Model
	keys      ScoreboardKeyMap
	width     int
	height    int
	now       func() time.Time
	quitting  bool
	goingBack bool
}

// NewScoreboardModel creates a scoreboard. board may be nil.
func NewScoreboardModel(board Leaderboard, pilot string, width, height int) ScoreboardModel {
	h := help.New()
	h.ShowAll = false

	m := ScoreboardModel{
		board:  board,
		pilot:  pilot,
		keys:   DefaultScoreboardKeyMap(),
		help:   h,
		width:  width,
		height: height,
		now:    time.Now,
	}
	m.table = m.createTable()
	m.load()
	return m
}

// columns returns the table layout of the current view.
func (m *ScoreboardModel) columns() []table.Column {
	if m.view == viewPilots {
		return []table.Column{
			{Title: "Rank", Width: 6},
			{Title: "Pilot", Width: 18},
			{Title: "Best", Width: 10},
			{Title: "Games", Width: 7},
			{Title: "Last Played", Width: 16},
		}
	}
	return []table.Column{
		{Title: "Pilot", Width: 14},
		{Title: "Score", Width: 10},
		{Title: "Map", Width: 10},
		{Title: "Ship", Width: 12},
		{Title: "Time", Width: 8},
		{Title: "When", Width: 16},
	}
}

// createTable creates a new table with appropriate columns.
func (m *ScoreboardModel) createTable() table.Model {
	t := table.New(
		table.WithColumns(m.columns()),
		table.WithFocused(true),
		table.WithHeight(max(m.height-8, 3)), // Leave room for header, help, and margins
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

// load fetches rows for the current view.
func (m *ScoreboardModel) load() {
	m.rows = nil
	m.loadErr = nil
	if m.board == nil {
		m.table.SetRows(nil)
		return
	}

	switch m.view {
	case viewPilots:
		pilots, err := m.board.TopPilots(maxScores)
		m.loadErr = err
		for i, p := range pilots {
			m.rows = append(m.rows, table.Row{
				fmt.Sprintf("#%d", i+1),
				p.Identity,
				humanize.Comma(int64(p.HighScore)),
				fmt.Sprintf("%d", p.Games),
				m.when(p.UpdatedAt),
			})
		}
	default:
		pilot := ""
		if m.view == viewMyRuns {
			pilot = m.pilot
		}
		runs, err := m.board.RecentRuns(pilot, maxScores)
		m.loadErr = err
		for _, r := range runs {
			m.rows = append(m.rows, table.Row{
				r.Pilot,
				humanize.Comma(int64(r.Score)),
				r.Map,
				r.Ship,
				r.Duration().Round(time.Second).String(),
				m.when(r.EndedAt),
			})
		}
	}

	m.table.SetRows(m.rows)
	m.table.GotoTop()
}

func (m *ScoreboardModel) when(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return humanize.RelTime(t, m.now(), "ago", "from now")
}

// switchView moves to another tab and reloads.
func (m *ScoreboardModel) switchView(delta int) {
	n := int(viewCount)
	m.view = scoreView((int(m.view) + delta + n) % n)
	// Rows must match the column count before the table renders
	m.table.SetRows(nil)
	m.table.SetColumns(m.columns())
	m.load()
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, nil

		case key.Matches(msg, m.keys.NextView):
			m.switchView(1)
			return m, nil

		case key.Matches(msg, m.keys.PrevView):
			m.switchView(-1)
			return m, nil

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.table.SetRows(m.rows)
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)
	b.WriteString(titleStyle.Render(centerText("HIGH SCORES - "+m.view.title(), m.width)))
	b.WriteString("\n\n")

	tabStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1)
	activeTabStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Padding(0, 1)
	tabs := make([]string, 0, viewCount)
	for v := range viewCount {
		if v == m.view {
			tabs = append(tabs, activeTabStyle.Render(v.title()))
		} else {
			tabs = append(tabs, tabStyle.Render(v.title()))
		}
	}
	b.WriteString(centerText(lipgloss.JoinHorizontal(lipgloss.Top, tabs...), m.width))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(tableStyle.Render(m.renderTableContent()))
	b.WriteString("\n")

	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderTableContent renders the table or an explanatory message.
func (m ScoreboardModel) renderTableContent() string {
	emptyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(2, 4)

	switch {
	case m.board == nil:
		return emptyStyle.Render("Scores are not being saved.\nThe database could not be opened.")
	case m.loadErr != nil:
		return emptyStyle.Render("Could not load scores:\n" + m.loadErr.Error())
	case len(m.rows) == 0:
		return emptyStyle.Render("No scores recorded yet.\nPlay a game to set a high score!")
	}
	return m.table.View()
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// Rows returns the loaded rows of the current view.
func (m ScoreboardModel) Rows() []table.Row {
	return m.rows
}
