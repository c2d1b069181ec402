package core

// Action represents a semantic game action, abstracted from physical key presses.
// The platform layer decodes keyboard (or SSH session) input into these intents;
// the game core never sees raw key events.
type Action int

const (
	ActionNone          Action = iota
	ActionUp                   // Up arrow, K - move menu cursor up
	ActionDown                 // Down arrow, J - move menu cursor down
	ActionConfirm              // Enter, Space - start run, advance dialogue
	ActionBack                 // B, Escape - back out of a menu
	ActionOption1              // 1 - select option 1 of the active choice menu
	ActionOption2              // 2 - select option 2
	ActionOption3              // 3 - select option 3
	ActionOption4              // 4 - select option 4
	ActionOption5              // 5 - select option 5
	ActionPaceSteady           // Z - set travel pace to Steady
	ActionPaceStrenuous        // X - set travel pace to Strenuous
	ActionPaceGrueling         // C - set travel pace to Grueling
	ActionPrimary              // Space, F - hustle-break action (shoot, hop, dash)
	ActionRestart              // R key - restart after the run ends
	ActionQuit                 // Q, Ctrl+C - exit game/session
	ActionPause                // P - pause/unpause
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionOption1:
		return "Option1"
	case ActionOption2:
		return "Option2"
	case ActionOption3:
		return "Option3"
	case ActionOption4:
		return "Option4"
	case ActionOption5:
		return "Option5"
	case ActionPaceSteady:
		return "PaceSteady"
	case ActionPaceStrenuous:
		return "PaceStrenuous"
	case ActionPaceGrueling:
		return "PaceGrueling"
	case ActionPrimary:
		return "Primary"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// Option returns the 1-based choice index for option actions, or 0 if the
// action is not a choice selection.
func (a Action) Option() int {
	if a >= ActionOption1 && a <= ActionOption5 {
		return int(a-ActionOption1) + 1
	}
	return 0
}

// InputFrame represents the input state for a single simulation tick.
// It contains all actions that were triggered during this frame.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	// Using a map allows checking multiple actions without order dependency.
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Option returns the 1-based index of the first option action present in
// this frame, or 0 if no option key was pressed. Checked in ascending order
// so a frame carrying several digits resolves deterministically.
func (f InputFrame) Option() int {
	for a := ActionOption1; a <= ActionOption5; a++ {
		if f.Has(a) {
			return a.Option()
		}
	}
	return 0
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}
