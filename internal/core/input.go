package core

import (
	"sync/atomic"
	"time"
)

// Action is a semantic control, abstracted from physical keys.
type Action int

const (
	ActionNone Action = iota
	ActionLeft
	ActionRight
	ActionUp
	ActionDown
	ActionFire
	actionCount
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionFire:
		return "Fire"
	default:
		return "Unknown"
	}
}

// opposite returns the direction that cancels a, or ActionNone.
func (a Action) opposite() Action {
	switch a {
	case ActionLeft:
		return ActionRight
	case ActionRight:
		return ActionLeft
	case ActionUp:
		return ActionDown
	case ActionDown:
		return ActionUp
	default:
		return ActionNone
	}
}

// InputFrame is the set of actions held during one simulation tick.
type InputFrame struct {
	Left, Right, Up, Down, Fire bool
}

// DefaultHoldWindow covers the interval between auto-repeated key events.
// It is shorter than most terminals' initial repeat delay, so a held key
// stalls briefly after its first press; a longer window makes taps drift.
// Set loop.hold_window to match the local keyboard.
const DefaultHoldWindow = 160 * time.Millisecond

// InputState is the one piece of state shared between the input path and
// the update goroutine. Every field is atomic; last write wins per action.
//
// Terminals report key presses but not releases, so a pressed action stays
// held until its hold window passes without another press. Hosts that do
// report releases call Release as well.
type InputState struct {
	hold   time.Duration
	stamps [actionCount]atomic.Int64 // UnixNano of last press, 0 when released
	cancel atomic.Bool
}

// NewInputState creates an input state with the given hold window.
func NewInputState(hold time.Duration) *InputState {
	if hold <= 0 {
		hold = DefaultHoldWindow
	}
	return &InputState{hold: hold}
}

func valid(a Action) bool {
	return a > ActionNone && a < actionCount
}

// Press records a key press at now. Pressing a direction releases its opposite.
func (s *InputState) Press(a Action, now time.Time) {
	if !valid(a) {
		return
	}
	s.stamps[a].Store(now.UnixNano())
	if o := a.opposite(); o != ActionNone {
		s.Release(o)
	}
}

// Release clears an action immediately.
func (s *InputState) Release(a Action) {
	if !valid(a) {
		return
	}
	s.stamps[a].Store(0)
}

// Held reports whether an action is held at now.
func (s *InputState) Held(a Action, now time.Time) bool {
	if !valid(a) {
		return false
	}
	stamp := s.stamps[a].Load()
	if stamp == 0 {
		return false
	}
	return now.UnixNano()-stamp < int64(s.hold)
}

// Frame samples all actions at now.
func (s *InputState) Frame(now time.Time) InputFrame {
	return InputFrame{
		Left:  s.Held(ActionLeft, now),
		Right: s.Held(ActionRight, now),
		Up:    s.Held(ActionUp, now),
		Down:  s.Held(ActionDown, now),
		Fire:  s.Held(ActionFire, now),
	}
}

// RequestCancel raises the edge-triggered cancel signal.
func (s *InputState) RequestCancel() {
	s.cancel.Store(true)
}

// TakeCancel reports and clears the cancel signal.
func (s *InputState) TakeCancel() bool {
	return s.cancel.Swap(false)
}

// Reset releases every action and clears cancel.
func (s *InputState) Reset() {
	for a := ActionNone + 1; a < actionCount; a++ {
		s.Release(a)
	}
	s.cancel.Store(false)
}
