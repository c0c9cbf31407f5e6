package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/galactix/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	case " ", "up", "w":
		return core.ActionJump, false
	case "r", "enter":
		return core.ActionRestart, false
	case "m":
		return core.ActionMute, false
	case "tab":
		return core.ActionHistory, false
	case "b", "esc":
		return core.ActionBack, false
	}
	return core.ActionNone, false
}

// MapKeyToFrame translates a key message and records game actions in frame.
// Frontend actions (history, back, quit) are returned but not recorded.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) (action core.Action, isQuit bool) {
	action, isQuit = km.MapKey(msg)
	switch action {
	case core.ActionJump, core.ActionRestart, core.ActionMute:
		frame.Set(action)
	}
	return action, isQuit
}
