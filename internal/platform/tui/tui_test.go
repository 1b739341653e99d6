package tui

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-asteroids/internal/config"
	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/game"
	"github.com/vovakirdan/tui-asteroids/internal/registry"
	"github.com/vovakirdan/tui-asteroids/internal/session"
	"github.com/vovakirdan/tui-asteroids/internal/storage"
)

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "ctrl+s":
		return tea.KeyMsg{Type: tea.KeyCtrlS}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		key    string
		action core.Action
		cmd    Command
	}{
		{"left", core.ActionLeft, CommandNone},
		{"a", core.ActionLeft, CommandNone},
		{"right", core.ActionRight, CommandNone},
		{"w", core.ActionUp, CommandNone},
		{"down", core.ActionDown, CommandNone},
		{" ", core.ActionFire, CommandNone},
		{"f", core.ActionFire, CommandNone},
		{"q", core.ActionNone, CommandQuit},
		{"ctrl+c", core.ActionNone, CommandQuit},
		{"p", core.ActionNone, CommandPause},
		{"r", core.ActionNone, CommandRestart},
		{"esc", core.ActionNone, CommandBack},
		{"ctrl+s", core.ActionNone, CommandScreenshot},
		{"z", core.ActionNone, CommandNone},
	}
	for _, tc := range tests {
		action, cmd := km.MapKey(keyMsg(tc.key))
		if action != tc.action || cmd != tc.cmd {
			t.Errorf("MapKey(%q) = (%v, %d), expected (%v, %d)", tc.key, action, cmd, tc.action, tc.cmd)
		}
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		key  string
		want MenuAction
	}{
		{"up", MenuActionUp},
		{"j", MenuActionDown},
		{"h", MenuActionLeft},
		{"right", MenuActionRight},
		{"enter", MenuActionSelect},
		{"esc", MenuActionBack},
		{"tab", MenuActionScoreboard},
		{"q", MenuActionQuit},
		{"x", MenuActionNone},
	}
	for _, tc := range tests {
		if got := km.MapKeyToMenuAction(keyMsg(tc.key)); got != tc.want {
			t.Errorf("MapKeyToMenuAction(%q) = %d, expected %d", tc.key, got, tc.want)
		}
	}
}

func TestViewport(t *testing.T) {
	vp := NewViewport(82, 26, 800, 600)

	if vp.Cols != 80 || vp.Rows != 22 || vp.Left != 1 || vp.Top != 2 {
		t.Fatalf("viewport = %+v", vp)
	}

	tests := []struct {
		x, y   float64
		cx, cy int
	}{
		{0, 0, 1, 2},
		{10, 0, 2, 2},
		{799.9, 599.9, 80, 23},
		{400, 300, 41, 13},
	}
	for _, tc := range tests {
		cx, cy := vp.Cell(tc.x, tc.y)
		if cx != tc.cx || cy != tc.cy {
			t.Errorf("Cell(%v, %v) = (%d, %d), expected (%d, %d)", tc.x, tc.y, cx, cy, tc.cx, tc.cy)
		}
		if !vp.Contains(cx, cy) {
			t.Errorf("Cell(%v, %v) falls outside the arena box", tc.x, tc.y)
		}
	}

	// Tiny entities still cover a cell
	if r := vp.Rect(100, 100, 2, 2); r.W != 1 || r.H != 1 {
		t.Errorf("Rect of a 2x2 laser = %+v, expected 1x1", r)
	}
	if r := vp.Rect(0, 0, 60, 60); r.W != 6 || r.H < 2 {
		t.Errorf("Rect of a large asteroid = %+v", r)
	}
}

func testSnapshot(t *testing.T) *game.Snapshot {
	t.Helper()
	m, _ := registry.Map(1)
	s, _ := registry.Ship(1)
	cfg := config.DefaultConfig()
	cfg.Asteroids.InitialCount = 3
	w := game.NewWorld(cfg, game.Options{Map: m, Ship: s, Pilot: "ace", HighScore: 12345, Seed: 1})
	return w.Snapshot()
}

func TestDrawArena(t *testing.T) {
	snap := testSnapshot(t)
	screen := core.NewScreen(100, 30)

	DrawArena(screen, snap)
	text := screen.String()

	for _, want := range []string{"SCORE 0", "HI 12,345", "HP ♥♥♥", "ROCKS 3", "Nebula", "Interceptor", "ace", "<A>"} {
		if !strings.Contains(text, want) {
			t.Errorf("rendered arena is missing %q", want)
		}
	}
	if screen.Get(0, 1) != '┌' {
		t.Errorf("arena frame corner = %q", screen.Get(0, 1))
	}

	out := RenderScreen(screen)
	if strings.Count(out, "\n") != 29 {
		t.Errorf("rendered %d lines, expected 30", strings.Count(out, "\n")+1)
	}
}

func TestDrawArenaHidesBlinkingShip(t *testing.T) {
	snap := testSnapshot(t)
	screen := core.NewScreen(100, 30)

	for i := range snap.Sprites {
		if snap.Sprites[i].Kind == game.KindShip {
			snap.Sprites[i].Phase = 1
		}
	}
	DrawArena(screen, snap)
	if strings.Contains(screen.String(), "<A>") {
		t.Error("ship should be hidden during the off phase of its blink")
	}
}

func TestDrawArenaTinyScreen(t *testing.T) {
	snap := testSnapshot(t)
	// Must not panic on degenerate sizes
	for _, size := range [][2]int{{0, 0}, {1, 1}, {5, 3}} {
		DrawArena(core.NewScreen(size[0], size[1]), snap)
	}
}

func TestHealthBar(t *testing.T) {
	tests := []struct {
		health int
		want   string
	}{
		{0, "-"},
		{3, "♥♥♥"},
		{12, "♥x12"},
	}
	for _, tc := range tests {
		if got := healthBar(tc.health); got != tc.want {
			t.Errorf("healthBar(%d) = %q, expected %q", tc.health, got, tc.want)
		}
	}
}

type fakeStore struct {
	best    map[string]int
	pilots  []storage.PilotEntry
	runs    []session.Run
	readErr error
}

func (f *fakeStore) HighScore(id string) (int, error) { return f.best[id], f.readErr }
func (f *fakeStore) RecordScore(id string, score int) error {
	f.best[id] = max(f.best[id], score)
	return nil
}
func (f *fakeStore) TopPilots(int) ([]storage.PilotEntry, error) { return f.pilots, f.readErr }
func (f *fakeStore) RecentRuns(pilot string, _ int) ([]session.Run, error) {
	var out []session.Run
	for _, r := range f.runs {
		if pilot == "" || r.Pilot == pilot {
			out = append(out, r)
		}
	}
	return out, f.readErr
}

func TestMenuSelection(t *testing.T) {
	store := &fakeStore{best: map[string]int{"ace": 4200}}
	m := NewMenuModel(store, core.DefaultConfig(), session.Settings{Map: 2, Ship: 0, Pilot: "ace"})

	if !strings.Contains(m.View(), "4,200") {
		t.Error("menu should show the pilot's best score")
	}
	if got := m.Settings(); got.Map != 2 || got.Ship != 0 {
		t.Fatalf("initial settings = %+v", got)
	}

	steps := []string{"up", "right", "right", "up", "right", "down", "down"}
	var model tea.Model = m
	for _, k := range steps {
		model, _ = model.Update(keyMsg(k))
	}
	m = model.(MenuModel)

	// ship: fighter -> bomber (two steps), map: belt -> deep (wraps)
	want := session.Settings{Map: 0, Ship: 2, Pilot: "ace"}
	if got := m.Settings(); got != want {
		t.Errorf("settings = %+v, expected %+v", got, want)
	}
	if m.Selected() != nil {
		t.Fatal("nothing should be launched yet")
	}

	model, _ = m.Update(keyMsg("enter"))
	m = model.(MenuModel)
	if sel := m.Selected(); sel == nil || *sel != want {
		t.Errorf("launched %+v, expected %+v", sel, want)
	}
}

func TestMenuScoreboardAndQuit(t *testing.T) {
	m := NewMenuModel(nil, core.DefaultConfig(), session.Settings{})
	model, _ := m.Update(keyMsg("tab"))
	if !model.(MenuModel).WantsScoreboard() {
		t.Error("tab should open the scoreboard")
	}

	model, cmd := m.Update(keyMsg("q"))
	if !model.(MenuModel).IsQuitting() || cmd == nil {
		t.Error("q should quit")
	}
}

func TestScoreboardViews(t *testing.T) {
	now := time.Now()
	store := &fakeStore{
		pilots: []storage.PilotEntry{
			{Identity: "ace", HighScore: 12000, Games: 4, UpdatedAt: now.Add(-time.Hour)},
			{Identity: "rookie", HighScore: 300, Games: 1},
		},
		runs: []session.Run{
			{ID: "1", Pilot: "ace", Map: "deep", Ship: "fighter", Score: 12000, StartedAt: now.Add(-2 * time.Minute), EndedAt: now.Add(-time.Minute)},
			{ID: "2", Pilot: "rookie", Map: "belt", Ship: "bomber", Score: 300, StartedAt: now.Add(-time.Minute), EndedAt: now},
		},
	}
	m := NewScoreboardModel(store, "ace", 100, 30)

	rows := m.Rows()
	if len(rows) != 2 || rows[0][1] != "ace" || rows[0][2] != "12,000" || rows[1][4] != "-" {
		t.Fatalf("pilot rows = %v", rows)
	}

	model, _ := m.Update(keyMsg("tab"))
	m = model.(ScoreboardModel)
	if rows := m.Rows(); len(rows) != 1 || rows[0][0] != "ace" || rows[0][4] != "1m0s" {
		t.Errorf("my runs = %v", rows)
	}

	model, _ = m.Update(keyMsg("tab"))
	m = model.(ScoreboardModel)
	if len(m.Rows()) != 2 {
		t.Errorf("all runs = %v", m.Rows())
	}

	model, _ = m.Update(keyMsg("esc"))
	if !model.(ScoreboardModel).IsGoingBack() {
		t.Error("esc should go back")
	}
}

func TestScoreboardLoadError(t *testing.T) {
	store := &fakeStore{readErr: errors.New("locked")}
	m := NewScoreboardModel(store, "ace", 100, 30)
	if !strings.Contains(m.View(), "locked") {
		t.Error("load errors should be shown")
	}
	if !strings.Contains(NewScoreboardModel(nil, "", 100, 30).View(), "not being saved") {
		t.Error("a missing store should be explained")
	}
}

func calmSession(t *testing.T) *session.Session {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.Asteroids.InitialCount = 0
	cfg.Asteroids.ReplenishBelow = 0
	cfg.UFOs.MaxAlive = 0
	cfg.Loop.Yield = time.Millisecond
	sess := session.New(cfg, session.WithSeed(3))
	if err := sess.Setup(session.Settings{Pilot: "ace"}); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(sess.Stop)
	return sess
}

func TestGameModelForwardsInput(t *testing.T) {
	sess := calmSession(t)
	m := NewGameModel(context.Background(), sess, core.DefaultConfig(), nil)
	if cmd := m.Init(); cmd == nil {
		t.Fatal("Init should schedule a redraw")
	}
	if sess.State() != session.StateRunning {
		t.Fatalf("session state = %v after Init", sess.State())
	}

	model, _ := m.Update(keyMsg("left"))
	m = model.(GameModel)
	if !sess.Input().Held(core.ActionLeft, time.Now()) {
		t.Error("left arrow should hold the left action")
	}

	model, _ = m.Update(keyMsg("p"))
	m = model.(GameModel)
	if !sess.Paused() || !strings.Contains(m.View(), "PAUSED") {
		t.Error("p should pause and show the overlay")
	}

	model, _ = m.Update(keyMsg("esc"))
	m = model.(GameModel)
	if !m.BackToMenu() || sess.State() != session.StateIdle {
		t.Errorf("esc should cancel the game, state = %v", sess.State())
	}
}

func TestGameModelIgnoresStaleTicks(t *testing.T) {
	sess := calmSession(t)
	m := NewGameModel(context.Background(), sess, core.DefaultConfig(), nil)
	if _, cmd := m.Update(TickMsg{Gen: m.gen + 1}); cmd != nil {
		t.Error("a tick from another game model should not reschedule")
	}
	if _, cmd := m.Update(TickMsg{Gen: m.gen}); cmd == nil {
		t.Error("own tick should reschedule")
	}
}

func TestAppLaunchesGame(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Loop.Yield = time.Millisecond
	sess := session.New(cfg, session.WithSeed(5))
	t.Cleanup(sess.Stop)

	app := NewAppModel(context.Background(), sess, nil, core.DefaultConfig(), "ace", nil)
	model, cmd := app.Update(keyMsg("enter"))
	app = model.(AppModel)

	if app.screen != screenGame || cmd == nil {
		t.Fatalf("enter on Launch should start a game, screen = %d", app.screen)
	}
	if sess.State() != session.StateRunning {
		t.Errorf("session state = %v", sess.State())
	}

	model, _ = app.Update(keyMsg("esc"))
	app = model.(AppModel)
	if app.screen != screenMenu {
		t.Error("esc should return to the menu")
	}
	if !strings.Contains(app.View(), "A S T E R O I D S") {
		t.Error("menu should be visible again")
	}
}
