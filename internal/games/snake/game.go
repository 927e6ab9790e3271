// Package snake implements Snake on a square grid. The snake steps on a
// fixed clock fed by frame deltas, so it stops with the frame scheduler.
package snake

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/pocket-arcade/internal/config"
	"github.com/vovakirdan/pocket-arcade/internal/core"
	"github.com/vovakirdan/pocket-arcade/internal/engine"
	"github.com/vovakirdan/pocket-arcade/internal/registry"
)

// ID is the registry and best-score identifier.
const ID = "snake"

// Visual characters for rendering
const (
	BodyChar = '█'
	FoodChar = '●'
)

// Point is a grid cell.
type Point struct {
	X, Y int
}

func (p Point) step(dir core.Action) Point {
	switch dir {
	case core.ActionUp:
		p.Y--
	case core.ActionDown:
		p.Y++
	case core.ActionLeft:
		p.X--
	case core.ActionRight:
		p.X++
	}
	return p
}

// Game implements Snake.
type Game struct {
	cfg config.SnakeConfig
	rng *rand.Rand

	body    []Point // head at index 0
	heading core.Action
	pending core.Action // latest requested heading, checked when the next step commits
	food    Point
	score   int
	clock   float64 // ms accumulated toward the next step
	steps   uint64
	over    bool
	won     bool
	fault   error
}

// New creates a Snake game with the given tuning.
func New(cfg config.SnakeConfig) *Game {
	if cfg.Grid < 2 {
		cfg.Grid = config.DefaultSnakeConfig().Grid
	}
	if cfg.StepMS <= 0 {
		cfg.StepMS = config.DefaultSnakeConfig().StepMS
	}
	cfg.Start.X = core.Clamp(cfg.Start.X, 0, cfg.Grid-1)
	cfg.Start.Y = core.Clamp(cfg.Start.Y, 0, cfg.Grid-1)

	g := &Game{cfg: cfg}
	g.Start(rand.New(rand.NewSource(1)))
	return g
}

func init() {
	registry.Register(ID, func() engine.Simulation {
		cfg, err := config.LoadSnake()
		if err != nil {
			cfg = config.DefaultSnakeConfig()
		}
		return New(cfg)
	})
}

// ID returns the game identifier.
func (g *Game) ID() string { return ID }

// Title returns the display name.
func (g *Game) Title() string { return "Snake" }

// Instructions returns the idle screen hint.
func (g *Game) Instructions() string { return "Arrow keys or swipe to move" }

// Order returns HigherWins.
func (g *Game) Order() engine.ScoreOrder { return engine.HigherWins }

// Controls returns the directional channel only.
func (g *Game) Controls() core.Controls { return core.Controls{Direction: true} }

// World returns the grid size in cells.
func (g *Game) World() core.SizeF {
	return core.SizeF{W: float64(g.cfg.Grid), H: float64(g.cfg.Grid)}
}

// Start rebuilds the board: a one-cell snake heading right and fresh food.
func (g *Game) Start(rng *rand.Rand) {
	g.rng = rng
	g.body = []Point{{X: g.cfg.Start.X, Y: g.cfg.Start.Y}}
	g.heading = core.ActionRight
	g.pending = core.ActionNone
	g.score = 0
	g.clock = 0
	g.steps = 0
	g.over = false
	g.won = false
	g.fault = nil
	g.spawnFood()
}

// Tick records the latest direction request and runs every step that
// came due during dtMS.
func (g *Game) Tick(dtMS float64, in core.InputFrame) {
	if g.over || g.won {
		return
	}
	if in.Direction.IsDirection() {
		g.pending = in.Direction
	}

	g.clock += dtMS
	for g.clock >= g.cfg.StepMS && !g.over && !g.won {
		g.clock -= g.cfg.StepMS
		g.step()
	}
}

// step moves the snake one cell. A pending heading that reverses the
// current one is dropped.
func (g *Game) step() {
	if g.pending != core.ActionNone && g.pending != g.heading.Opposite() {
		g.heading = g.pending
	}
	g.pending = core.ActionNone
	g.steps++

	head := g.body[0].step(g.heading)
	if !g.inBounds(head) || g.occupied(head) {
		g.over = true
		return
	}

	g.body = append(g.body, Point{})
	copy(g.body[1:], g.body)
	g.body[0] = head

	if head == g.food {
		g.score++
		g.spawnFood()
	} else {
		g.body = g.body[:len(g.body)-1]
	}
	g.checkInvariants()
}

func (g *Game) inBounds(p Point) bool {
	return p.X >= 0 && p.X < g.cfg.Grid && p.Y >= 0 && p.Y < g.cfg.Grid
}

// occupied checks the whole body, tail included.
func (g *Game) occupied(p Point) bool {
	for _, seg := range g.body {
		if seg == p {
			return true
		}
	}
	return false
}

// spawnFood places food uniformly on a free cell. A full board wins.
func (g *Game) spawnFood() {
	free := g.cfg.Grid*g.cfg.Grid - len(g.body)
	if free <= 0 {
		g.food = Point{X: -1, Y: -1}
		g.won = true
		return
	}

	n := g.rng.Intn(free)
	for y := 0; y < g.cfg.Grid; y++ {
		for x := 0; x < g.cfg.Grid; x++ {
			p := Point{X: x, Y: y}
			if g.occupied(p) {
				continue
			}
			if n == 0 {
				g.food = p
				return
			}
			n--
		}
	}
}

func (g *Game) checkInvariants() {
	seen := make(map[Point]bool, len(g.body))
	for _, seg := range g.body {
		if seen[seg] {
			g.fault = fmt.Errorf("snake: body overlaps itself at %v", seg)
			return
		}
		seen[seg] = true
	}
	if !g.won && seen[g.food] {
		g.fault = fmt.Errorf("snake: food %v under the body", g.food)
	}
}

// Terminal reports a wall or self hit, or a full board.
func (g *Game) Terminal() bool { return g.over || g.won }

// Score returns food eaten.
func (g *Game) Score() int { return g.score }

// Fault reports corrupted board state.
func (g *Game) Fault() error { return g.fault }

// Render draws the board inside vp.
func (g *Game) Render(dst *core.Screen, vp core.Viewport) {
	for _, seg := range g.body {
		dst.FillRect(vp.CellRect(cellBox(seg)), BodyChar, core.ColorForeground)
	}
	if g.food.X >= 0 {
		r := vp.CellRect(cellBox(g.food))
		cx, cy := r.Center()
		dst.SetColor(cx, cy, FoodChar, core.ColorBlue)
	}
}

func cellBox(p Point) core.Box {
	return core.Box{X: float64(p.X), Y: float64(p.Y), W: 1, H: 1}
}

var (
	_ engine.Simulation = (*Game)(nil)
	_ engine.Faulter    = (*Game)(nil)
)
