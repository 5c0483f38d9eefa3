package core

// Action represents a semantic input action, abstracted from physical key presses.
// This allows the game to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone      Action = iota
	ActionUp               // K, Up arrow - scroll viewport up
	ActionDown             // J, Down arrow - scroll viewport down
	ActionLeft             // H, Left arrow - scroll viewport left
	ActionRight            // L, Right arrow - scroll viewport right
	ActionPageUp           // Shift+K, PgUp
	ActionPageDown         // Shift+J, PgDn
	ActionPageLeft         // Shift+H, Home
	ActionPageRight        // Shift+L, End
	ActionCenter           // G - center viewport on the map
	ActionPause            // P, Space - pause/unpause the simulation
	ActionStep             // N - advance one generation while paused
	ActionRandomize        // R - reseed the map
	ActionClear            // C - kill every cell
	ActionFaster           // + - fewer ticks per generation
	ActionSlower           // - - more ticks per generation
	ActionQuit             // Q, Esc, Ctrl+C - exit
)

var actionNames = [...]string{
	ActionNone:      "None",
	ActionUp:        "Up",
	ActionDown:      "Down",
	ActionLeft:      "Left",
	ActionRight:     "Right",
	ActionPageUp:    "PageUp",
	ActionPageDown:  "PageDown",
	ActionPageLeft:  "PageLeft",
	ActionPageRight: "PageRight",
	ActionCenter:    "Center",
	ActionPause:     "Pause",
	ActionStep:      "Step",
	ActionRandomize: "Randomize",
	ActionClear:     "Clear",
	ActionFaster:    "Faster",
	ActionSlower:    "Slower",
	ActionQuit:      "Quit",
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	if a < 0 || int(a) >= len(actionNames) {
		return "Unknown"
	}
	return actionNames[a]
}

// MouseButton is a bitmask of pressed mouse buttons.
type MouseButton uint8

const (
	MousePrimary   MouseButton = 1 << iota // Left button
	MouseSecondary                         // Right button
	MouseMiddle
)

// MouseNone reports that no button is held.
const MouseNone MouseButton = 0

// MouseEvent is a mouse report in terminal cell coordinates.
// Buttons is MouseNone for plain motion and button release.
type MouseEvent struct {
	X, Y    int
	Buttons MouseButton
}
