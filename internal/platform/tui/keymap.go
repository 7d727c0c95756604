package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"tankduel/internal/core"
)

// KeyMapper translates Bubble Tea key messages to per-player game actions.
// This centralizes the shared-keyboard bindings and makes them testable.
//
// Player 1 drives with WASD and fires with space; Player 2 drives with
// the arrow keys and fires with enter. Pause, restart, and quit are
// shared keys routed through Player 1's frame.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an action for one player.
// hardQuit is set only for ctrl+c, which tears the program down
// immediately instead of ending the match through the game.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (player core.PlayerID, action core.Action, hardQuit bool) {
	key := msg.String()

	switch key {
	case "ctrl+c":
		return core.PlayerNone, core.ActionNone, true
	}

	// Player 1: WASD + space
	switch key {
	case "w":
		return core.Player1, core.ActionUp, false
	case "s":
		return core.Player1, core.ActionDown, false
	case "a":
		return core.Player1, core.ActionLeft, false
	case "d":
		return core.Player1, core.ActionRight, false
	case " ":
		return core.Player1, core.ActionFire, false
	}

	// Player 2: arrows + enter
	switch key {
	case "up":
		return core.Player2, core.ActionUp, false
	case "down":
		return core.Player2, core.ActionDown, false
	case "left":
		return core.Player2, core.ActionLeft, false
	case "right":
		return core.Player2, core.ActionRight, false
	case "enter":
		return core.Player2, core.ActionFire, false
	}

	// Shared match controls
	switch key {
	case "q":
		return core.Player1, core.ActionQuit, false
	case "p":
		return core.Player1, core.ActionPause, false
	case "r":
		return core.Player1, core.ActionRestart, false
	case "b", "esc":
		return core.Player1, core.ActionBack, false
	}

	return core.PlayerNone, core.ActionNone, false
}

// MapKeyToMultiFrame updates a multi-input frame based on a key message.
// Returns true if the key was a hard quit request.
func (km *KeyMapper) MapKeyToMultiFrame(msg tea.KeyMsg, frame *core.MultiInputFrame) bool {
	player, action, hardQuit := km.MapKey(msg)
	if action != core.ActionNone {
		frame.Press(player, action)
	}
	return hardQuit
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionHistory
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	key := msg.String()

	switch key {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "h":
		return MenuActionHistory
	}

	return MenuActionNone
}
