package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// Command is a host-level request that does not reach the simulation.
type Command int

const (
	CommandNone Command = iota
	CommandQuit
	CommandPause
	CommandRestart
	CommandBack
	CommandScreenshot
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to a ship action or a host command.
// At most one of the two is set.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (core.Action, Command) {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionNone, CommandQuit
	case "p":
		return core.ActionNone, CommandPause
	case "r":
		return core.ActionNone, CommandRestart
	case "esc", "b":
		return core.ActionNone, CommandBack
	case "ctrl+s":
		return core.ActionNone, CommandScreenshot

	case "left", "a":
		return core.ActionLeft, CommandNone
	case "right", "d":
		return core.ActionRight, CommandNone
	case "up", "w":
		return core.ActionUp, CommandNone
	case "down", "s":
		return core.ActionDown, CommandNone
	case " ", "f", "enter":
		return core.ActionFire, CommandNone
	}

	return core.ActionNone, CommandNone
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionLeft
	MenuActionRight
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "a", "left", "h":
		return MenuActionLeft
	case "d", "right", "l":
		return MenuActionRight
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}

	return MenuActionNone
}
