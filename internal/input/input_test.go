package input

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/pocket-arcade/internal/core"
)

type call struct {
	kind string
	a    core.Action
	x, y int
}

type recorder struct {
	calls []call
}

func (r *recorder) Direction(a core.Action) { r.calls = append(r.calls, call{kind: "dir", a: a}) }
func (r *recorder) Activate() { r.calls = append(r.calls, call{kind: "activate"}) }
func (r *recorder) Point(x, y int) { r.calls = append(r.calls, call{kind: "point", x: x, y: y}) }
func (r *recorder) Tap(x, y int) { r.calls = append(r.calls, call{kind: "tap", x: x, y: y}) }

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "space":
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{' '}}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func mouse(action tea.MouseAction, x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: action, Button: tea.MouseButtonLeft}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name           string
		x0, y0, x1, y1 int
		expected       core.Action
	}{
		{"no movement is a tap", 10, 10, 10, 10, core.ActionTap},
		{"short drag is a tap", 10, 10, 12, 10, core.ActionTap},
		{"swipe right", 10, 10, 20, 11, core.ActionRight},
		{"swipe left", 20, 10, 10, 10, core.ActionLeft},
		{"swipe down", 10, 5, 11, 9, core.ActionDown},
		{"swipe up", 10, 9, 10, 5, core.ActionUp},
		// 8 columns is 4 rows of travel once aspect-corrected
		{"larger axis wins", 10, 10, 18, 13, core.ActionRight},
		{"vertical beats narrow horizontal", 10, 10, 14, 13, core.ActionDown},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Classify(tc.x0, tc.y0, tc.x1, tc.y1, 2); got != tc.expected {
				t.Errorf("Classify() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestRouterDetachedIgnoresInput(t *testing.T) {
	r := NewRouter(DefaultKeyMap(), 2)
	if r.HandleKey(keyMsg("up")) || r.HandleMouse(mouse(tea.MouseActionPress, 1, 1)) {
		t.Error("detached router consumed input")
	}
}

func TestRouterKeyChannels(t *testing.T) {
	tests := []struct {
		name     string
		controls core.Controls
		key      string
		expected []call
	}{
		{"direction game gets arrows", core.Controls{Direction: true}, "up", []call{{kind: "dir", a: core.ActionUp}}},
		{"vim keys", core.Controls{Direction: true}, "h", []call{{kind: "dir", a: core.ActionLeft}}},
		{"activate game ignores arrows", core.Controls{Activate: true}, "up", nil},
		{"activate game gets space", core.Controls{Activate: true}, "space", []call{{kind: "activate"}}},
		{"direction game ignores space", core.Controls{Direction: true}, "space", nil},
		{"pointer game steers with left", core.Controls{Pointer: true, Activate: true}, "left", []call{{kind: "dir", a: core.ActionLeft}}},
		{"pointer game ignores up", core.Controls{Pointer: true, Activate: true}, "up", nil},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := &recorder{}
			r := NewRouter(DefaultKeyMap(), 2)
			r.Attach(rec, tc.controls)

			consumed := r.HandleKey(keyMsg(tc.key))
			if consumed != (len(tc.expected) > 0) {
				t.Errorf("consumed = %v", consumed)
			}
			if len(rec.calls) != len(tc.expected) {
				t.Fatalf("calls = %+v, expected %+v", rec.calls, tc.expected)
			}
			for i := range tc.expected {
				if rec.calls[i] != tc.expected[i] {
					t.Errorf("call %d = %+v, expected %+v", i, rec.calls[i], tc.expected[i])
				}
			}
		})
	}
}

func TestRouterSwipeAndTap(t *testing.T) {
	rec := &recorder{}
	r := NewRouter(DefaultKeyMap(), 2)
	r.Attach(rec, core.Controls{Direction: true, Activate: true})

	r.HandleMouse(mouse(tea.MouseActionPress, 10, 10))
	r.HandleMouse(mouse(tea.MouseActionRelease, 10, 4))
	r.HandleMouse(mouse(tea.MouseActionPress, 30, 10))
	r.HandleMouse(mouse(tea.MouseActionRelease, 30, 10))

	expected := []call{{kind: "dir", a: core.ActionUp}, {kind: "tap", x: 30, y: 10}}
	if len(rec.calls) != 2 || rec.calls[0] != expected[0] || rec.calls[1] != expected[1] {
		t.Errorf("calls = %+v, expected %+v", rec.calls, expected)
	}
}

func TestRouterPointerMotion(t *testing.T) {
	rec := &recorder{}
	r := NewRouter(DefaultKeyMap(), 2)
	r.Attach(rec, core.Controls{Pointer: true, Activate: true})

	r.HandleMouse(mouse(tea.MouseActionMotion, 5, 6))
	r.HandleMouse(mouse(tea.MouseActionPress, 7, 6))
	r.HandleMouse(mouse(tea.MouseActionRelease, 30, 6))

	if len(rec.calls) != 3 {
		t.Fatalf("calls = %+v", rec.calls)
	}
	if rec.calls[0] != (call{kind: "point", x: 5, y: 6}) {
		t.Errorf("motion not forwarded: %+v", rec.calls[0])
	}
	if rec.calls[2].kind != "tap" {
		t.Errorf("drag release in a pointer game should tap, got %+v", rec.calls[2])
	}
}

func TestRouterDetachDropsGesture(t *testing.T) {
	rec := &recorder{}
	r := NewRouter(DefaultKeyMap(), 2)
	r.Attach(rec, core.Controls{Direction: true, Activate: true})

	r.HandleMouse(mouse(tea.MouseActionPress, 10, 10))
	r.Detach()
	r.Attach(rec, core.Controls{Direction: true, Activate: true})
	r.HandleMouse(mouse(tea.MouseActionRelease, 10, 2))

	if len(rec.calls) != 0 {
		t.Errorf("a gesture started before detach leaked: %+v", rec.calls)
	}
}

func TestKeyMapForControls(t *testing.T) {
	km := DefaultKeyMap().ForControls(core.Controls{Activate: true})
	if km.Up.Enabled() || km.Left.Enabled() {
		t.Error("direction keys should be disabled for an activate-only game")
	}
	if !km.Activate.Enabled() || !km.Quit.Enabled() {
		t.Error("activate and quit should stay enabled")
	}
	if DefaultKeyMap().WithCarousel(false).Next.Enabled() {
		t.Error("carousel keys should be disabled for a single game")
	}
}
