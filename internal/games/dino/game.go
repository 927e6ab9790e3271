// Package dino implements a Chrome Dino-style endless runner game.
// The player must jump over obstacles while running automatically.
package dino

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
const ID = "dino"

// Visual characters for rendering
const (
	DinoBody   = '█'
	DinoHead   = '◆'
	DinoLeg1   = '╱'
	DinoLeg2   = '╲'
	CactusChar = '▓'
	GroundChar = '═'
)

// Game implements the Dino Runner game logic.
type Game struct {
	cfg   config.DinoConfig
	world core.SizeF

	playerY   float64 // height above the ground, never negative
	playerVel float64 // positive is down
	jumping   bool
	speed     float64
	distance  float64
	obstacles *ObstacleManager
	over      bool
	fault     error
}

// New creates a Dino Runner game with the given tuning.
func New(cfg config.DinoConfig) *Game {
	g := &Game{cfg: cfg, world: core.Arena}
	g.Start(rand.New(rand.NewSource(1)))
	return g
}

func init() {
	registry.Register(ID, func() engine.Simulation {
		cfg, err := config.LoadDino()
		if err != nil {
			cfg = config.DefaultDinoConfig()
		}
		return New(cfg)
	})
}

// ID returns the game identifier.
func (g *Game) ID() string { return ID }

// Title returns the display name.
func (g *Game) Title() string { return "Dino Run" }

// Instructions returns the idle screen hint.
func (g *Game) Instructions() string { return "Click or press Space to jump" }

// Order returns HigherWins.
func (g *Game) Order() engine.ScoreOrder { return engine.HigherWins }

// Controls returns the activate channel only.
func (g *Game) Controls() core.Controls { return core.Controls{Activate: true} }

// World returns the arena size.
func (g *Game) World() core.SizeF { return g.world }

// Start puts the runner on the ground at the initial speed.
func (g *Game) Start(rng *rand.Rand) {
	g.playerY = 0
	g.playerVel = 0
	g.jumping = false
	g.speed = g.cfg.Speed.Initial
	g.distance = 0
	g.over = false
	g.fault = nil
	if g.obstacles == nil {
		g.obstacles = NewObstacleManager(rng, g.world, &g.cfg)
	} else {
		g.obstacles.Reset(rng)
	}
}

func (g *Game) groundY() float64 { return g.world.H - g.cfg.Ground }

// playerBox returns the player's collision box in world coordinates.
func (g *Game) playerBox() core.Box {
	p := g.cfg.Player
	return core.Box{X: p.X, Y: g.groundY() - p.Height - g.playerY, W: p.Width, H: p.Height}
}

// Tick handles a jump, integrates the runner, scrolls the world and then
// checks for a collision.
func (g *Game) Tick(dtMS float64, in core.InputFrame) {
	if g.over {
		return
	}
	s := core.Scale(dtMS)

	// Only one jump in flight.
	if in.Activated() && !g.jumping {
		g.playerVel = g.cfg.Jump
		g.jumping = true
	}

	if g.jumping {
		g.playerY -= g.playerVel*s + 0.5*g.cfg.Gravity*s*s
		g.playerVel += g.cfg.Gravity * s
		if g.playerY <= 0 {
			g.playerY = 0
			g.playerVel = 0
			g.jumping = false
		}
	}

	step := g.speed*s + 0.5*g.cfg.Speed.Accel*s*s
	g.speed += g.cfg.Speed.Accel * s
	g.distance += step
	g.obstacles.Update(step, g.distance)

	if math.IsNaN(g.playerY) || math.IsNaN(g.distance) {
		g.fault = errors.New("dino: runner state is not finite")
		return
	}

	if g.obstacles.Collides(g.playerBox(), g.groundY()) {
		g.over = true
	}
}

// Terminal reports a collision.
func (g *Game) Terminal() bool { return g.over }

// Score is the distance run in tens of world units.
func (g *Game) Score() int { return int(math.Floor(g.distance / 10)) }

// Fault reports corrupted physics state.
func (g *Game) Fault() error { return g.fault }

// Speed returns the current scrolling speed per reference frame.
func (g *Game) Speed() float64 { return g.speed }

// Render draws the ground, the cacti and the runner inside vp.
func (g *Game) Render(dst *core.Screen, vp core.Viewport) {
	gx, gy := vp.ToCell(0, g.groundY())
	dst.DrawHLine(gx, gy, vp.Region.W, GroundChar, core.ColorForeground)

	for _, c := range g.obstacles.Cacti() {
		dst.FillRect(vp.CellRect(c.Box(g.groundY())), CactusChar, core.ColorGreen)
	}

	g.drawDino(dst, vp)
}

// drawDino renders the runner: a solid body with a head marker on the
// top-right cell and animated legs on the bottom row.
func (g *Game) drawDino(dst *core.Screen, vp core.Viewport) {
	r := vp.CellRect(g.playerBox())
	dst.FillRect(r, DinoBody, core.ColorForeground)
	if r.W < 2 || r.H < 2 {
		return
	}
	dst.SetColor(r.Right()-1, r.Y, DinoHead, core.ColorForeground)

	legs := r.Bottom() - 1
	for x := r.X; x < r.Right(); x++ {
		dst.SetColor(x, legs, ' ', core.ColorDefault)
	}
	switch {
	case g.jumping:
		dst.SetColor(r.X, legs, DinoLeg1, core.ColorForeground)
		dst.SetColor(r.X+1, legs, DinoLeg2, core.ColorForeground)
	case int(g.distance/20)%2 == 0:
		dst.SetColor(r.X, legs, DinoLeg1, core.ColorForeground)
		dst.SetColor(r.Right()-1, legs, DinoLeg2, core.ColorForeground)
	default:
		dst.SetColor(r.X+1, legs, DinoLeg1, core.ColorForeground)
		dst.SetColor(r.Right()-1, legs, DinoLeg2, core.ColorForeground)
	}
}

var (
	_ engine.Simulation = (*Game)(nil)
	_ engine.Faulter    = (*Game)(nil)
)
