package tui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/dustin/go-humanize"

	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/session"
)

// GameModel is the Bubble Tea model for a running game. The simulation
// lives on the session's goroutine; the model only forwards key presses
// and draws published snapshots.
type GameModel struct {
	ctx        context.Context
	session    *session.Session
	screen     *core.Screen
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	logger     *log.Logger
	gen        uint64
	result     *session.GameOverEvent // set once the game ends
	restartErr error
	quitting   bool
	backToMenu bool
}

// NewGameModel creates a game model for a session that is already set up.
// The session is started by Init.
func NewGameModel(ctx context.Context, sess *session.Session, cfg core.RuntimeConfig, logger *log.Logger) GameModel {
	if logger == nil {
		logger = log.Default()
	}
	return GameModel{
		ctx:       ctx,
		session:   sess,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:    cfg,
		keyMapper: NewKeyMapper(),
		logger:    logger,
		gen:       nextTickGen(),
	}
}

// Init starts the simulation and the redraw loop.
func (m GameModel) Init() tea.Cmd {
	if err := m.session.Start(m.ctx); err != nil {
		m.logger.Error("cannot start game", "error", err)
		return tea.Quit
	}
	return tickCmd(m.config.FPS, m.gen)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		if msg.Gen != m.gen {
			return m, nil
		}
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, cmd := m.keyMapper.MapKey(msg)
	if action != core.ActionNone {
		m.session.Input().Press(action, time.Now())
		return m, nil
	}

	switch cmd {
	case CommandQuit:
		m.session.Cancel()
		m.quitting = true
		return m, tea.Quit

	case CommandBack:
		if m.result != nil {
			m.session.Return()
		} else {
			m.session.Cancel()
		}
		m.backToMenu = true
		return m, nil

	case CommandPause:
		if m.result == nil {
			m.session.TogglePause()
		}

	case CommandRestart:
		if m.result != nil {
			m.result = nil
			m.restartErr = m.session.Restart(m.ctx)
			if m.restartErr != nil {
				m.logger.Error("cannot restart game", "error", m.restartErr)
			}
		}

	case CommandScreenshot:
		m.saveScreenshot()
	}

	return m, nil
}

// handleTick picks up game-over events and schedules the next redraw.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	select {
	case ev := <-m.session.Events():
		m.result = &ev
	default:
	}
	return m, tickCmd(m.config.FPS, m.gen)
}

// render draws the latest snapshot and any overlay into the screen buffer.
func (m *GameModel) render() {
	snap := m.session.Snapshot()
	if snap == nil {
		m.screen.Clear()
		m.screen.DrawTextCentered(m.screen.Height()/2, "Preparing launch...")
		return
	}
	DrawArena(m.screen, snap)

	switch {
	case m.result != nil:
		drawOverlay(m.screen, gameOverLines(*m.result), core.ColorRed)
	case m.restartErr != nil:
		drawOverlay(m.screen, []string{"Cannot restart", m.restartErr.Error(), "ESC menu  Q quit"}, core.ColorRed)
	case m.session.Paused():
		drawOverlay(m.screen, []string{"PAUSED", "P to resume"}, core.ColorYellow)
	}
}

func gameOverLines(ev session.GameOverEvent) []string {
	lines := []string{
		"G A M E   O V E R",
		"",
		fmt.Sprintf("Score  %s", humanize.Comma(int64(ev.Run.Score))),
		fmt.Sprintf("Best   %s", humanize.Comma(int64(ev.HighScore))),
	}
	if ev.NewRecord {
		lines = append(lines, "New personal record!")
	}
	if ev.StoreErr != nil {
		lines = append(lines, "(score could not be saved)")
	}
	return append(lines, "", "R restart  ESC menu  Q quit")
}

// saveScreenshot saves the current frame to a file.
func (m *GameModel) saveScreenshot() {
	m.render()

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".asteroids", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("asteroids_%s.txt", timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("cannot save screenshot", "path", path, "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}
	m.render()
	return RenderScreen(m.screen)
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Result returns the game-over event, or nil while the game is running.
func (m GameModel) Result() *session.GameOverEvent {
	return m.result
}

// RunGame plays a single game in the local terminal. The session must
// already be set up.
func RunGame(ctx context.Context, sess *session.Session, cfg core.RuntimeConfig, logger *log.Logger) error {
	p := tea.NewProgram(
		standalone{NewGameModel(ctx, sess, cfg, logger)},
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	_, err := p.Run()
	sess.Stop()
	return err
}

// standalone quits the program where a menu would otherwise take over.
type standalone struct {
	GameModel
}

func (s standalone) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := s.GameModel.Update(msg)
	gm, ok := next.(GameModel)
	if !ok {
		return s, cmd
	}
	s.GameModel = gm
	if gm.BackToMenu() {
		return s, tea.Quit
	}
	return s, cmd
}
