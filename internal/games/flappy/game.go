// Package flappy implements a Flappy Bird-style game.
// The player flaps a bird through gaps in a stream of vertical pipes.
package flappy

import (
	"errors"
	"math"
	"math/rand"

	"github.com/vovakirdan/pocket-arcade/internal/config"
	"github.com/vovakirdan/pocket-arcade/internal/core"
	"github.com/vovakirdan/pocket-arcade/internal/engine"
	"github.com/vovakirdan/pocket-arcade/internal/registry"
)

// ID is the registry and best-score identifier.
const ID = "flappy"

// Visual characters for rendering
const (
	BirdChar   = '█'
	PipeChar   = '▓'
	GroundChar = '─'
)

// Game implements the Flappy game logic.
type Game struct {
	cfg   config.FlappyConfig
	world core.SizeF

	birdY float64 // centre of the bird
	birdV float64 // vertical velocity, positive is down
	pipes *PipeManager
	score int
	over  bool
	fault error
}

// New creates a Flappy game with the given tuning.
func New(cfg config.FlappyConfig) *Game {
	if cfg.SpawnEvery <= 0 {
		cfg.SpawnEvery = config.DefaultFlappyConfig().SpawnEvery
	}
	g := &Game{cfg: cfg, world: core.Arena}
	g.Start(rand.New(rand.NewSource(1)))
	return g
}

func init() {
	registry.Register(ID, func() engine.Simulation {
		cfg, err := config.LoadFlappy()
		if err != nil {
			cfg = config.DefaultFlappyConfig()
		}
		return New(cfg)
	})
}

// ID returns the game identifier.
func (g *Game) ID() string { return ID }

// Title returns the display name.
func (g *Game) Title() string { return "Flappy" }

// Instructions returns the idle screen hint.
func (g *Game) Instructions() string { return "Click or press Space to fly" }

// Order returns HigherWins.
func (g *Game) Order() engine.ScoreOrder { return engine.HigherWins }

// Controls returns the activate channel only.
func (g *Game) Controls() core.Controls { return core.Controls{Activate: true} }

// World returns the arena size.
func (g *Game) World() core.SizeF { return g.world }

// Start puts the bird mid-air at rest with no pipes.
func (g *Game) Start(rng *rand.Rand) {
	g.birdY = g.world.H / 2
	g.birdV = 0
	g.score = 0
	g.over = false
	g.fault = nil
	if g.pipes == nil {
		g.pipes = NewPipeManager(rng, g.world, &g.cfg)
	} else {
		g.pipes.Reset(rng)
	}
}

// BirdX returns the fixed horizontal centre of the bird.
func (g *Game) BirdX() float64 { return g.world.W * g.cfg.BirdX }

func (g *Game) birdBox() core.Box {
	half := g.cfg.BirdSize / 2
	return core.Box{X: g.BirdX() - half, Y: g.birdY - half, W: g.cfg.BirdSize, H: g.cfg.BirdSize}
}

// Tick applies a flap, integrates the bird, moves the pipes and then
// checks for a crash.
func (g *Game) Tick(dtMS float64, in core.InputFrame) {
	if g.over {
		return
	}
	s := core.Scale(dtMS)

	if in.Activated() {
		g.birdV = g.cfg.Flap
	}
	g.birdY += g.birdV*s + 0.5*g.cfg.Gravity*s*s
	g.birdV += g.cfg.Gravity * s

	g.score += g.pipes.Update(s, g.BirdX())

	if math.IsNaN(g.birdY) || math.IsInf(g.birdY, 0) {
		g.fault = errors.New("flappy: bird position is not finite")
		return
	}

	half := g.cfg.BirdSize / 2
	if g.birdY < half || g.birdY > g.world.H-g.cfg.Ground-half {
		g.over = true
		return
	}
	if g.pipes.Collides(g.birdBox()) {
		g.over = true
	}
}

// Terminal reports a crash.
func (g *Game) Terminal() bool { return g.over }

// Score returns pipes passed.
func (g *Game) Score() int { return g.score }

// Fault reports corrupted physics state.
func (g *Game) Fault() error { return g.fault }

// Render draws pipes, the ground line and the bird inside vp.
func (g *Game) Render(dst *core.Screen, vp core.Viewport) {
	for _, p := range g.pipes.Pipes() {
		dst.FillRect(vp.CellRect(p.TopBox(&g.cfg)), PipeChar, core.ColorMuted)
		dst.FillRect(vp.CellRect(p.BottomBox(&g.cfg, g.world.H)), PipeChar, core.ColorMuted)
	}

	gx, gy := vp.ToCell(0, g.world.H-g.cfg.Ground)
	dst.DrawHLine(gx, gy, vp.Region.W, GroundChar, core.ColorForeground)

	dst.FillRect(vp.CellRect(g.birdBox()), BirdChar, core.ColorForeground)
}

var (
	_ engine.Simulation = (*Game)(nil)
	_ engine.Faulter    = (*Game)(nil)
)
