// Package tui provides the Bubble Tea front end for the asteroids game:
// local play, the pilot menu, the scoreboard and the SSH server.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a redraw from the latest snapshot.
// Gen identifies the game model that scheduled it.
type TickMsg struct {
	Time time.Time
	Gen  uint64
}

var tickGen atomic.Uint64

// nextTickGen returns a fresh generation so a replaced game model's
// pending ticks are ignored.
func nextTickGen() uint64 {
	return tickGen.Add(1)
}

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
// Redraws are decoupled from the simulation, which runs on its own goroutine.
func tickCmd(fps int, gen uint64) tea.Cmd {
	if fps <= 0 {
		fps = 30
	}
	interval := time.Second / time.Duration(fps)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Time: t, Gen: gen}
	})
}
