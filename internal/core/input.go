package core

// Action is a game-semantic command, abstracted from the device that
// produced it.
type Action int

const (
	ActionNone Action = iota
	ActionUp
	ActionDown
	ActionLeft
	ActionRight
	ActionActivate // jump, flap, launch, select
	ActionTap      // activate at the pointer position
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
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionActivate:
		return "Activate"
	case ActionTap:
		return "Tap"
	default:
		return "Unknown"
	}
}

// IsDirection reports whether a is one of the four directional commands.
func (a Action) IsDirection() bool {
	return a >= ActionUp && a <= ActionRight
}

// Opposite returns the reverse direction, or ActionNone for non-directions.
func (a Action) Opposite() Action {
	switch a {
	case ActionUp:
		return ActionDown
	case ActionDown:
		return ActionUp
	case ActionLeft:
		return ActionRight
	case ActionRight:
		return ActionLeft
	default:
		return ActionNone
	}
}

// Pointer is a position in world units. Valid is false until the device
// reports a position inside the playfield.
type Pointer struct {
	X, Y  float64
	Valid bool
}

// InputFrame holds the commands sampled at the start of one frame.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool

	// Direction is the latest directional command, ActionNone if none.
	Direction Action

	// Pointer is the last known pointer position.
	Pointer Pointer

	// Tap is where a tap landed this frame.
	Tap Pointer
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame. Directions also become
// the frame's latest Direction.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
	if a.IsDirection() {
		f.Direction = a
	}
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Activated reports an activate command from either the keyboard or a tap.
func (f InputFrame) Activated() bool {
	return f.Has(ActionActivate) || f.Has(ActionTap)
}

// Clear resets momentary commands. The pointer position survives.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Direction = ActionNone
	f.Tap = Pointer{}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := f
	clone.Actions = make(map[Action]bool, len(f.Actions))
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}

// Controls declares which input channels a game listens to.
type Controls struct {
	Direction bool // 4-way directional
	Activate  bool // momentary activate
	Pointer   bool // continuous pointer position
}
