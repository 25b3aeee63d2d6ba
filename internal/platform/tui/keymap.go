package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/descent/internal/core"
)

// runKeys binds keys during a run. Terminals report presses only, so a
// steering key counts for the game's hold window rather than while held.
var runKeys = map[string]core.Action{
	"a": core.ActionLeft, "left": core.ActionLeft, "h": core.ActionLeft,
	"d": core.ActionRight, "right": core.ActionRight, "l": core.ActionRight,
	"w": core.ActionUp, "up": core.ActionUp,
	"s": core.ActionDown, "down": core.ActionDown,
	"b": core.ActionBack, "esc": core.ActionBack,
	"p": core.ActionPause, " ": core.ActionPause,
	"r": core.ActionRestart, "enter": core.ActionConfirm,
}

// quitKeys end the program from any screen.
var quitKeys = map[string]bool{"q": true, "ctrl+c": true}

// KeyMapper translates Bubble Tea key messages to game actions.
type KeyMapper struct{}

// NewKeyMapper creates a key mapper with the default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an action and reports whether it is a
// quit request. Unbound keys map to ActionNone.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (core.Action, bool) {
	k := msg.String()
	if quitKeys[k] {
		return core.ActionQuit, true
	}
	if action, ok := runKeys[k]; ok {
		return action, false
	}
	return core.ActionNone, false
}

// MapKeyToFrame records the action for msg in frame and reports whether it
// is a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	if action != core.ActionNone {
		frame.Set(action)
	}
	return isQuit
}

// MenuAction is an action on the difficulty menu.
type MenuAction int

const (
	MenuActionNone       MenuAction = iota
	MenuActionUp                    // previous difficulty
	MenuActionDown                  // next difficulty
	MenuActionLeft                  // previous orientation
	MenuActionRight                 // next orientation
	MenuActionSelect                // start a run
	MenuActionBack                  // leave the menu
	MenuActionScoreboard            // open the scoreboard
	MenuActionQuit
)

var menuKeys = map[string]MenuAction{
	"w": MenuActionUp, "up": MenuActionUp, "k": MenuActionUp,
	"s": MenuActionDown, "down": MenuActionDown, "j": MenuActionDown,
	"a": MenuActionLeft, "left": MenuActionLeft, "h": MenuActionLeft,
	"d": MenuActionRight, "right": MenuActionRight, "l": MenuActionRight,
	"b": MenuActionBack, "esc": MenuActionBack,
	" ": MenuActionSelect, "enter": MenuActionSelect,
	"tab": MenuActionScoreboard,
}

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	k := msg.String()
	if quitKeys[k] {
		return MenuActionQuit
	}
	return menuKeys[k]
}
