package registry

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/vovakirdan/pocket-arcade/internal/core"
	"github.com/vovakirdan/pocket-arcade/internal/engine"
)

type fakeGame struct{ id string }

func (f fakeGame) ID() string { return f.id }
func (f fakeGame) Title() string { return "Fake " + f.id }
func (f fakeGame) Instructions() string { return "" }
func (f fakeGame) Order() engine.ScoreOrder { return engine.LowerWins }
func (f fakeGame) Controls() core.Controls { return core.Controls{} }
func (f fakeGame) World() core.SizeF { return core.SizeF{W: 1, H: 1} }
func (f fakeGame) Start(*rand.Rand) {}
func (f fakeGame) Tick(float64, core.InputFrame) {}
func (f fakeGame) Terminal() bool { return false }
func (f fakeGame) Score() int { return 0 }
func (f fakeGame) Render(*core.Screen, core.Viewport) {}

func TestRegistry(t *testing.T) {
	created := 0
	Register("zz-fake", func() engine.Simulation {
		created++
		return fakeGame{id: "zz-fake"}
	})
	if created != 0 {
		t.Error("Register should not call the factory")
	}

	if !Exists("zz-fake") {
		t.Fatal("registered game not found")
	}

	g, err := Create("zz-fake")
	if err != nil || g.ID() != "zz-fake" {
		t.Fatalf("Create() = %v, %v", g, err)
	}

	var found bool
	for _, info := range List() {
		if info.ID == "zz-fake" {
			found = true
			if info.Title != "Fake zz-fake" || info.Order != engine.LowerWins {
				t.Errorf("info = %+v", info)
			}
		}
	}
	if !found {
		t.Error("List() is missing the registered game")
	}
}

func TestCreateUnknown(t *testing.T) {
	_, err := Create("no-such-game")
	if !errors.Is(err, ErrUnknownGame) {
		t.Errorf("Create() error = %v, expected ErrUnknownGame", err)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("dup-fake", func() engine.Simulation { return fakeGame{id: "dup-fake"} })
	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("dup-fake", func() engine.Simulation { return fakeGame{id: "dup-fake"} })
}
