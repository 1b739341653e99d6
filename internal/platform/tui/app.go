package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/session"
)

// Store is what the front end needs from persistence.
type Store interface {
	session.ScoreStore
	Leaderboard
}

type appScreen int

const (
	screenMenu appScreen = iota
	screenGame
	screenScores
)

// AppModel manages the full flow for one pilot: menu -> game -> menu,
// with the scoreboard reachable from the menu. It is the top-level model
// for both local play and SSH sessions.
type AppModel struct {
	ctx      context.Context
	store    Store
	session  *session.Session
	config   core.RuntimeConfig
	logger   *log.Logger
	pilot    string
	screen   appScreen
	menu     MenuModel
	game     GameModel
	scores   ScoreboardModel
	quitting bool
}

// NewAppModel creates the top-level model. store may be nil, in which
// case scores are neither shown nor saved.
func NewAppModel(ctx context.Context, sess *session.Session, store Store, cfg core.RuntimeConfig, pilot string, logger *log.Logger) AppModel {
	if logger == nil {
		logger = log.Default()
	}
	m := AppModel{
		ctx:     ctx,
		store:   store,
		session: sess,
		config:  cfg,
		logger:  logger,
		pilot:   pilot,
	}
	m.menu = NewMenuModel(m.scoreStore(), cfg, session.Settings{Pilot: pilot})
	return m
}

// scoreStore avoids handing out a typed nil.
func (m AppModel) scoreStore() session.ScoreStore {
	if m.store == nil {
		return nil
	}
	return m.store
}

func (m AppModel) leaderboard() Leaderboard {
	if m.store == nil {
		return nil
	}
	return m.store
}

// Init initializes the session.
func (m AppModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.screen {
	case screenGame:
		return m.updateGame(msg)
	case screenScores:
		return m.updateScores(msg)
	default:
		return m.updateMenu(msg)
	}
}

// updateMenu handles updates when in menu mode.
func (m AppModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.menu.Update(msg)
	if menuModel, ok := next.(MenuModel); ok {
		m.menu = menuModel
	}

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.menu.WantsScoreboard() {
		m.scores = NewScoreboardModel(m.leaderboard(), m.pilot, m.config.ScreenW, m.config.ScreenH)
		m.menu = NewMenuModel(m.scoreStore(), m.config, m.menu.Settings())
		m.screen = screenScores
		return m, m.scores.Init()
	}

	if selected := m.menu.Selected(); selected != nil {
		if err := m.session.Setup(*selected); err != nil {
			m.logger.Error("cannot set up game", "pilot", m.pilot, "error", err)
			m.menu = NewMenuModel(m.scoreStore(), m.config, *selected)
			m.menu.SetError(err)
			return m, nil
		}
		m.game = NewGameModel(m.ctx, m.session, m.config, m.logger)
		m.screen = screenGame
		return m, m.game.Init()
	}

	return m, cmd
}

// updateGame handles updates when in game mode.
func (m AppModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.game.Update(msg)
	if gameModel, ok := next.(GameModel); ok {
		m.game = gameModel
	}

	if m.game.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.game.BackToMenu() {
		m.menu = NewMenuModel(m.scoreStore(), m.config, m.session.Settings())
		m.screen = screenMenu
		return m, m.menu.Init()
	}

	return m, cmd
}

// updateScores handles updates when the scoreboard is open.
func (m AppModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.scores.Update(msg)
	if sb, ok := next.(ScoreboardModel); ok {
		m.scores = sb
	}

	if m.scores.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.scores.IsGoingBack() {
		m.screen = screenMenu
		return m, nil
	}
	return m, cmd
}

// View renders the current view.
func (m AppModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.screen {
	case screenGame:
		return m.game.View()
	case screenScores:
		return m.scores.View()
	default:
		return m.menu.View()
	}
}

// RunApp runs the menu-driven flow in the local terminal.
func RunApp(ctx context.Context, sess *session.Session, store Store, cfg core.RuntimeConfig, pilot string, logger *log.Logger) error {
	p := tea.NewProgram(
		NewAppModel(ctx, sess, store, cfg, pilot, logger),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	_, err := p.Run()
	sess.Stop()
	return err
}
