package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/registry"
	"github.com/vovakirdan/tui-asteroids/internal/session"
)

// menuRow is a line of the pilot menu.
type menuRow int

const (
	rowMap menuRow = iota
	rowShip
	rowLaunch
	rowScores
	rowQuit
	rowCount
)

var (
	menuTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuPilotStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	menuCursor     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
	menuDimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	menuErrStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// MenuModel is the Bubble Tea model for choosing a map and a ship.
type MenuModel struct {
	maps           []registry.MapInfo
	ships          []registry.ShipInfo
	mapPos         int
	shipPos        int
	cursor         menuRow
	pilot          string
	best           int
	width          int
	height         int
	config         core.RuntimeConfig
	keyMapper      *KeyMapper
	err            error
	quitting       bool
	selected       *session.Settings // Set when user launches a game
	openScoreboard bool              // True if user asked for the scoreboard
}

// NewMenuModel creates a menu preselecting the given settings. The
// pilot's best score is read from store; a nil store or a failed read
// shows zero.
func NewMenuModel(store session.ScoreStore, cfg core.RuntimeConfig, initial session.Settings) MenuModel {
	m := MenuModel{
		maps:      registry.Maps(),
		ships:     registry.Ships(),
		cursor:    rowLaunch,
		pilot:     initial.Pilot,
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}
	for i, mi := range m.maps {
		if mi.Index == initial.Map {
			m.mapPos = i
		}
	}
	for i, si := range m.ships {
		if si.Index == initial.Ship {
			m.shipPos = i
		}
	}
	if store != nil && initial.Pilot != "" {
		if best, err := store.HighScore(initial.Pilot); err == nil {
			m.best = best
		}
	}
	return m
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		m.cursor = (m.cursor + rowCount - 1) % rowCount

	case MenuActionDown:
		m.cursor = (m.cursor + 1) % rowCount

	case MenuActionLeft:
		m.cycle(-1)

	case MenuActionRight:
		m.cycle(1)

	case MenuActionScoreboard:
		m.openScoreboard = true

	case MenuActionSelect:
		switch m.cursor {
		case rowMap, rowShip:
			m.cycle(1)
		case rowLaunch:
			settings := m.Settings()
			m.selected = &settings
		case rowScores:
			m.openScoreboard = true
		case rowQuit:
			m.quitting = true
			return m, tea.Quit
		}
	}

	return m, nil
}

// cycle moves the option under the cursor by delta, wrapping around.
func (m *MenuModel) cycle(delta int) {
	switch m.cursor {
	case rowMap:
		if n := len(m.maps); n > 0 {
			m.mapPos = (m.mapPos + delta + n) % n
		}
	case rowShip:
		if n := len(m.ships); n > 0 {
			m.shipPos = (m.shipPos + delta + n) % n
		}
	}
}

// Settings returns the current choices.
func (m MenuModel) Settings() session.Settings {
	s := session.Settings{Pilot: m.pilot}
	if len(m.maps) > 0 {
		s.Map = m.maps[m.mapPos].Index
	}
	if len(m.ships) > 0 {
		s.Ship = m.ships[m.shipPos].Index
	}
	return s
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("A S T E R O I D S"), m.width))
	b.WriteString("\n\n")

	pilot := m.pilot
	if pilot == "" {
		pilot = "anonymous"
	}
	info := fmt.Sprintf("Pilot %s   Best %s", pilot, humanize.Comma(int64(m.best)))
	b.WriteString(centerText(menuPilotStyle.Render(info), m.width))
	b.WriteString("\n\n")

	for row := range rowCount {
		line := m.rowLabel(row)
		if row == m.cursor {
			line = menuCursor.Render(" " + line + " ")
		} else {
			line = " " + line + " "
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(centerText(menuErrStyle.Render(m.err.Error()), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Left/Right: Change  |  Enter: Select  |  Tab: Scores  |  Q: Quit"
	b.WriteString(centerText(menuDimStyle.Render(controls), m.width))
	b.WriteString("\n")

	return b.String()
}

func (m MenuModel) rowLabel(row menuRow) string {
	switch row {
	case rowMap:
		if len(m.maps) == 0 {
			return "Map:  -"
		}
		return fmt.Sprintf("Map:   < %s >", m.maps[m.mapPos].Title)
	case rowShip:
		if len(m.ships) == 0 {
			return "Ship: -"
		}
		s := m.ships[m.shipPos]
		guns := "1 gun"
		if s.Guns > 1 {
			guns = fmt.Sprintf("%d guns", s.Guns)
		}
		return fmt.Sprintf("Ship:  < %s (%s) >", s.Title, guns)
	case rowLaunch:
		return "Launch"
	case rowScores:
		return "High Scores"
	case rowQuit:
		return "Quit"
	}
	return ""
}

// SetError shows a message under the menu, e.g. a failed setup.
func (m *MenuModel) SetError(err error) {
	m.err = err
}

// Selected returns the launched settings, or nil if none selected.
func (m MenuModel) Selected() *session.Settings {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width, measuring printable cells.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}
