package input

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/pocket-arcade/internal/core"
)

// Target receives routed commands. Coordinates are terminal cells.
type Target interface {
	Direction(a core.Action)
	Activate()
	Point(x, y int)
	Tap(x, y int)
}

// Router forwards key and mouse events to the attached Target. Only the
// channels named by the target's Controls are listened to; with nothing
// attached every event is ignored.
type Router struct {
	keys      KeyMap
	threshold int

	target   Target
	controls core.Controls

	pressed bool
	pressX  int
	pressY  int
}

// NewRouter creates a detached router. threshold is the swipe distance in
// cells.
func NewRouter(keys KeyMap, threshold int) *Router {
	if threshold <= 0 {
		threshold = 1
	}
	return &Router{keys: keys, threshold: threshold}
}

// Attach starts forwarding the channels in c to t, replacing any previous
// target.
func (r *Router) Attach(t Target, c core.Controls) {
	r.Detach()
	r.target = t
	r.controls = c
}

// Detach stops forwarding and drops any gesture in progress.
func (r *Router) Detach() {
	r.target = nil
	r.controls = core.Controls{}
	r.pressed = false
}

// Attached reports whether a target is attached.
func (r *Router) Attached() bool { return r.target != nil }

// Controls returns the attached channels.
func (r *Router) Controls() core.Controls { return r.controls }

// HandleKey forwards a key press. It returns true if the key was consumed.
func (r *Router) HandleKey(msg tea.KeyMsg) bool {
	if r.target == nil {
		return false
	}

	if r.controls.Direction {
		switch {
		case key.Matches(msg, r.keys.Up):
			r.target.Direction(core.ActionUp)
			return true
		case key.Matches(msg, r.keys.Down):
			r.target.Direction(core.ActionDown)
			return true
		}
	}
	// Horizontal keys also steer pointer games.
	if r.controls.Direction || r.controls.Pointer {
		switch {
		case key.Matches(msg, r.keys.Left):
			r.target.Direction(core.ActionLeft)
			return true
		case key.Matches(msg, r.keys.Right):
			r.target.Direction(core.ActionRight)
			return true
		}
	}
	if r.controls.Activate && key.Matches(msg, r.keys.Activate) {
		r.target.Activate()
		return true
	}
	return false
}

// HandleMouse forwards pointer motion, taps and swipes. It returns true if
// the event was consumed.
func (r *Router) HandleMouse(msg tea.MouseMsg) bool {
	if r.target == nil {
		return false
	}
	switch msg.Action {
	case tea.MouseActionMotion:
		if r.controls.Pointer {
			r.target.Point(msg.X, msg.Y)
			return true
		}
		return false

	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return false
		}
		r.pressed = true
		r.pressX, r.pressY = msg.X, msg.Y
		if r.controls.Pointer {
			r.target.Point(msg.X, msg.Y)
		}
		return true

	case tea.MouseActionRelease:
		if !r.pressed {
			return false
		}
		r.pressed = false
		return r.release(msg.X, msg.Y)
	}
	return false
}

func (r *Router) release(x, y int) bool {
	gesture := Classify(r.pressX, r.pressY, x, y, r.threshold)
	if gesture != core.ActionTap {
		if r.controls.Direction {
			r.target.Direction(gesture)
			return true
		}
		// A drag in a pointer game is just movement; the release still taps.
	}
	if r.controls.Activate || r.controls.Pointer {
		r.target.Tap(x, y)
		return true
	}
	return false
}
