package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone          Action = iota
	ActionSettings             // Esc - toggle the settings overlay
	ActionRestart              // R key - restart the puzzle (overlay open)
	ActionCycleBg              // B key - next background swatch (overlay open)
	ActionCycleDisk            // C key - next disk color swatch (overlay open)
	ActionQuit                 // Q, Ctrl+C - exit game/session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionSettings:
		return "Settings"
	case ActionRestart:
		return "Restart"
	case ActionCycleBg:
		return "CycleBackground"
	case ActionCycleDisk:
		return "CycleDiskColor"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// PointerFrame is the pointer activity collected during one tick.
// When a release arrives before the frame's press, the press starts a new
// gesture; ReleaseFirst records that order and ReleasedAgain records a
// release of that new gesture.
type PointerFrame struct {
	Pos           Point // Latest known pointer position
	Pressed       bool  // Primary button went down this frame
	PressPos      Point // Where it went down
	Released      bool  // Primary button went up this frame
	ReleasePos    Point // Where it first went up
	ReleaseFirst  bool  // The first release came before the press
	ReleasedAgain bool  // Went up again after a press that followed ReleaseFirst
}

// InputFrame represents the input state for a single player during one simulation tick.
// It contains all actions that were triggered during this frame.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	// Using a map allows checking multiple actions without order dependency.
	Actions map[Action]bool

	// Pointer carries mouse activity. Pos persists across Clear so a held
	// button keeps reporting where the pointer was last seen.
	Pointer PointerFrame
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

// Press records a primary button press at p.
// Only the first press of a frame is kept.
func (f *InputFrame) Press(p Point) {
	if !f.Pointer.Pressed {
		f.Pointer.Pressed = true
		f.Pointer.PressPos = p
	}
	f.Pointer.Pos = p
}

// Move records the pointer at p.
func (f *InputFrame) Move(p Point) {
	f.Pointer.Pos = p
}

// Release records a primary button release at p.
func (f *InputFrame) Release(p Point) {
	switch {
	case !f.Pointer.Released:
		f.Pointer.Released = true
		f.Pointer.ReleasePos = p
		f.Pointer.ReleaseFirst = !f.Pointer.Pressed
	case f.Pointer.ReleaseFirst && f.Pointer.Pressed:
		f.Pointer.ReleasedAgain = true
	}
	f.Pointer.Pos = p
}

// Clear resets all actions and pointer edges for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Pointer.Pressed = false
	f.Pointer.Released = false
	f.Pointer.ReleaseFirst = false
	f.Pointer.ReleasedAgain = false
}
