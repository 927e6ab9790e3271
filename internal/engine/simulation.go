package engine

import (
	"math/rand"

	"github.com/vovakirdan/pocket-arcade/internal/core"
)

// Simulation is the contract every game implements. A Session drives it
// uniformly: Start re-derives all entities, Tick advances one scheduled
// frame, Terminal and Score are read after each Tick.
type Simulation interface {
	// ID returns a unique identifier used for the CLI and score keys.
	ID() string

	// Title returns the display name.
	Title() string

	// Instructions is the one-line hint shown on the idle screen.
	Instructions() string

	// Order is how final scores compare for the best score.
	Order() ScoreOrder

	// Controls lists the input channels the game listens to.
	Controls() core.Controls

	// World is the logical playfield size.
	World() core.SizeF

	// Start discards all entity state and builds a fresh game.
	Start(rng *rand.Rand)

	// Tick advances the game by dtMS milliseconds of real time. Commands
	// in the frame are applied before integration.
	Tick(dtMS float64, in core.InputFrame)

	// Terminal reports whether the game's end condition was met.
	Terminal() bool

	// Score is the current score (moves for lower-wins games).
	Score() int

	// Render draws the current entities into the viewport. It must not
	// change game state.
	Render(dst *core.Screen, vp core.Viewport)
}

// Faulter is implemented by simulations that can detect corrupted entity
// state. A non-nil Fault ends the session.
type Faulter interface {
	Fault() error
}
