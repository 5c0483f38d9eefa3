package tui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/tui-grid/internal/core"
)

// KeyMapper translates tcell input events to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	runes map[rune]core.Action
	keys  map[tcell.Key]core.Action
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{
		runes: map[rune]core.Action{
			'q': core.ActionQuit,
			'p': core.ActionPause,
			' ': core.ActionPause,
			'k': core.ActionUp,
			'j': core.ActionDown,
			'h': core.ActionLeft,
			'l': core.ActionRight,
			'K': core.ActionPageUp,
			'J': core.ActionPageDown,
			'H': core.ActionPageLeft,
			'L': core.ActionPageRight,
			'g': core.ActionCenter,
			'n': core.ActionStep,
			'r': core.ActionRandomize,
			'c': core.ActionClear,
			'+': core.ActionFaster,
			'=': core.ActionFaster,
			'-': core.ActionSlower,
			'_': core.ActionSlower,
		},
		keys: map[tcell.Key]core.Action{
			tcell.KeyCtrlC:  core.ActionQuit,
			tcell.KeyEscape: core.ActionQuit,
			tcell.KeyUp:     core.ActionUp,
			tcell.KeyDown:   core.ActionDown,
			tcell.KeyLeft:   core.ActionLeft,
			tcell.KeyRight:  core.ActionRight,
			tcell.KeyPgUp:   core.ActionPageUp,
			tcell.KeyPgDn:   core.ActionPageDown,
			tcell.KeyHome:   core.ActionPageLeft,
			tcell.KeyEnd:    core.ActionPageRight,
		},
	}
}

// MapKey translates a key event to an action. Unbound keys map to
// core.ActionNone.
func (km *KeyMapper) MapKey(ev *tcell.EventKey) core.Action {
	if ev.Key() == tcell.KeyRune {
		return km.runes[ev.Rune()]
	}
	return km.keys[ev.Key()]
}

// MapMouse translates a mouse event to terminal coordinates and buttons.
func (km *KeyMapper) MapMouse(ev *tcell.EventMouse) core.MouseEvent {
	x, y := ev.Position()
	btns := ev.Buttons()

	var buttons core.MouseButton
	if btns&tcell.ButtonPrimary != 0 {
		buttons |= core.MousePrimary
	}
	if btns&tcell.ButtonSecondary != 0 {
		buttons |= core.MouseSecondary
	}
	if btns&tcell.ButtonMiddle != 0 {
		buttons |= core.MouseMiddle
	}
	return core.MouseEvent{X: x, Y: y, Buttons: buttons}
}
