package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/game"
	"github.com/vovakirdan/tui-asteroids/internal/registry"
)

// Screen rows taken by the HUD above the arena box and the help line below it.
const (
	hudRows  = 1
	helpRows = 1
)

// Viewport maps arena units onto a block of screen cells.
type Viewport struct {
	Left, Top      int // screen cell of the arena origin
	Cols, Rows     int // cells available to the arena
	ArenaW, ArenaH int
}

// NewViewport fits the arena inside a bordered box between the HUD and
// the help line.
func NewViewport(screenW, screenH, arenaW, arenaH int) Viewport {
	return Viewport{
		Left:   1,
		Top:    hudRows + 1,
		Cols:   max(screenW-2, 1),
		Rows:   max(screenH-hudRows-helpRows-2, 1),
		ArenaW: max(arenaW, 1),
		ArenaH: max(arenaH, 1),
	}
}

// Cell converts an arena position to a screen cell.
func (v Viewport) Cell(x, y float64) (int, int) {
	cx := int(math.Floor(x * float64(v.Cols) / float64(v.ArenaW)))
	cy := int(math.Floor(y * float64(v.Rows) / float64(v.ArenaH)))
	return v.Left + cx, v.Top + cy
}

// Rect converts an arena box to screen cells. Anything visible covers at
// least one cell.
func (v Viewport) Rect(x, y float64, w, h int) core.Rect {
	x0, y0 := v.Cell(x, y)
	x1, y1 := v.Cell(x+float64(w), y+float64(h))
	return core.NewRect(x0, y0, max(x1-x0, 1), max(y1-y0, 1))
}

// Contains reports whether a screen cell lies inside the arena box.
func (v Viewport) Contains(cx, cy int) bool {
	return cx >= v.Left && cx < v.Left+v.Cols && cy >= v.Top && cy < v.Top+v.Rows
}

// Frame is the box drawn around the arena.
func (v Viewport) Frame() core.Rect {
	return core.NewRect(v.Left-1, v.Top-1, v.Cols+2, v.Rows+2)
}

// arenaPainter draws into the arena box only.
type arenaPainter struct {
	screen *core.Screen
	vp     Viewport
}

func (p arenaPainter) set(cx, cy int, r rune, c core.Color) {
	if p.vp.Contains(cx, cy) {
		p.screen.SetColored(cx, cy, r, c)
	}
}

func (p arenaPainter) fill(r core.Rect, ch rune, c core.Color) {
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			p.set(x, y, ch, c)
		}
	}
}

func (p arenaPainter) text(cx, cy int, s string, c core.Color) {
	for i, r := range []rune(s) {
		p.set(cx+i, cy, r, c)
	}
}

// DrawArena rasterizes a snapshot: decoration, entities, explosions, the
// arena frame and the HUD.
func DrawArena(screen *core.Screen, snap *game.Snapshot) Viewport {
	screen.Clear()
	vp := NewViewport(screen.Width(), screen.Height(), snap.ArenaW, snap.ArenaH)
	p := arenaPainter{screen: screen, vp: vp}

	screen.DrawBox(vp.Frame(), core.ColorDarkGray)
	drawDecor(p, snap.Decor)
	for _, sp := range snap.Sprites {
		drawSprite(p, sp)
	}
	for _, e := range snap.Explosions {
		drawExplosion(p, e)
	}
	drawHUD(screen, snap)
	return vp
}

func drawDecor(p arenaPainter, items []game.DecorItem) {
	// Clouds first so stars show through
	for _, d := range items {
		switch d.Kind {
		case registry.DecorNebula:
			p.fill(p.vp.Rect(float64(d.X), float64(d.Y), d.Size, d.Size/2), '░', core.ColorPurple)
		case registry.DecorBelt:
			cx, cy := p.vp.Cell(float64(d.X), float64(d.Y))
			p.set(cx, cy, 'o', core.ColorDarkGray)
		}
	}
	for _, d := range items {
		if d.Kind != registry.DecorNone {
			continue
		}
		cx, cy := p.vp.Cell(float64(d.X), float64(d.Y))
		switch d.Size {
		case 1:
			p.set(cx, cy, '·', core.ColorDarkGray)
		case 2:
			p.set(cx, cy, '.', core.ColorGray)
		default:
			p.set(cx, cy, '*', core.ColorWhite)
		}
	}
}

var (
	asteroidFill = []rune{'#', '%', 'o'}
	hullArt      = []string{"/^\\", "<A>", "[M]"}
)

func drawSprite(p arenaPainter, sp game.Sprite) {
	if !sp.Visible() {
		return
	}
	r := p.vp.Rect(sp.X, sp.Y, sp.W, sp.H)
	midX, midY := r.X+r.W/2, r.Y+r.H/2

	switch sp.Kind {
	case game.KindAsteroid:
		fill := asteroidFill[len(asteroidFill)-1]
		if sp.Variant >= 0 && sp.Variant < len(asteroidFill) {
			fill = asteroidFill[sp.Variant]
		}
		p.fill(r, fill, sp.Color)

	case game.KindUFO:
		p.text(midX-1, midY, "<o>", sp.Color)

	case game.KindLaser:
		c := sp.Color
		if sp.Glowing() {
			c = core.ColorWhite
		}
		p.set(midX, midY, '|', c)

	case game.KindPowerUp:
		c := sp.Color
		if (sp.Phase/8)%2 == 1 {
			c = core.ColorWhite
		}
		p.set(midX, midY, game.PowerUpType(sp.Variant).Glyph(), c)

	case game.KindShip:
		art := hullArt[0]
		if sp.Variant >= 0 && sp.Variant < len(hullArt) {
			art = hullArt[sp.Variant]
		}
		if r.W < 3 {
			art = string([]rune(art)[1])
		}
		p.text(midX-len([]rune(art))/2, midY, art, sp.Color)
	}
}

// drawExplosion draws the marker as a ring of sparks.
func drawExplosion(p arenaPainter, e game.Explosion) {
	c := core.ColorYellow
	if e.Radius > 4 {
		c = core.ColorOrange
	}
	for i := range 8 {
		angle := float64(i) * math.Pi / 4
		x := e.X + math.Cos(angle)*float64(e.Radius)
		y := e.Y + math.Sin(angle)*float64(e.Radius)
		cx, cy := p.vp.Cell(x, y)
		p.set(cx, cy, '*', c)
	}
}

// drawHUD writes the status line and the help line.
func drawHUD(screen *core.Screen, snap *game.Snapshot) {
	status := fmt.Sprintf(" SCORE %s   HI %s   HP %s   ROCKS %d",
		humanize.Comma(int64(snap.Score)),
		humanize.Comma(int64(snap.HighScore)),
		healthBar(snap.Health),
		snap.Asteroids,
	)
	screen.DrawTextColored(0, 0, status, core.ColorWhite)

	where := fmt.Sprintf("%s · %s", snap.Map.Title, snap.Ship.Title)
	if snap.Pilot != "" {
		where += " · " + snap.Pilot
	}
	where += " "
	if x := screen.Width() - len([]rune(where)); x > len([]rune(status)) {
		screen.DrawTextColored(x, 0, where, core.ColorCyan)
	}

	help := " ←↑↓→/WASD move  SPACE fire  P pause  R restart  ESC menu  Q quit"
	screen.DrawTextColored(0, screen.Height()-1, help, core.ColorDarkGray)
}

func healthBar(health int) string {
	if health <= 0 {
		return "-"
	}
	if health > 10 {
		return fmt.Sprintf("♥x%d", health)
	}
	return strings.Repeat("♥", health)
}

// drawOverlay centres a framed message block over the arena.
func drawOverlay(screen *core.Screen, lines []string, c core.Color) {
	width := 0
	for _, l := range lines {
		width = max(width, len([]rune(l)))
	}
	w, h := width+4, len(lines)+2
	x := (screen.Width() - w) / 2
	y := (screen.Height() - h) / 2

	screen.DrawRect(core.NewRect(x, y, w, h), ' ', core.ColorDefault)
	screen.DrawBox(core.NewRect(x, y, w, h), c)
	for i, l := range lines {
		lx := x + 2 + (width-len([]rune(l)))/2
		screen.DrawTextColored(lx, y+1+i, l, c)
	}
}
