package breakout

import (
	"errors"
	"math"
	"math/rand"
	"unicode/utf8"

	"github.com/vovakirdan/pocket-arcade/internal/config"
	"github.com/vovakirdan/pocket-arcade/internal/core"
	"github.com/vovakirdan/pocket-arcade/internal/engine"
	"github.com/vovakirdan/pocket-arcade/internal/registry"
)

// ID is the registry and best-score identifier.
const ID = "breakout"

// Visual characters for rendering
const (
	PaddleChar = '▀'
	BallChar   = '●'
)

// BrickGlyphs are the brick fills by row, cycling.
var BrickGlyphs = []rune{'█', '▓', '▒', '░'}

// serveHint is shown under the paddle while the ball waits for launch.
const serveHint = "Press SPACE to launch"

// Game implements the Breakout game logic.
type Game struct {
	cfg   config.BreakoutConfig
	world core.SizeF

	paddle Paddle
	ball   Ball
	served bool         // ball has left the paddle
	aim    core.Pointer // pointer position already applied to the paddle
	level  *Level
	score  int
	over   bool
	won    bool
	fault  error
}

// New creates a Breakout game with the given tuning.
func New(cfg config.BreakoutConfig) *Game {
	g := &Game{cfg: cfg, world: core.Arena}
	g.Start(rand.New(rand.NewSource(1)))
	return g
}

func init() {
	registry.Register(ID, func() engine.Simulation {
		cfg, err := config.LoadBreakout()
		if err != nil {
			cfg = config.DefaultBreakoutConfig()
		}
		return New(cfg)
	})
}

// ID returns the game identifier.
func (g *Game) ID() string { return ID }

// Title returns the display name.
func (g *Game) Title() string { return "Breakout" }

// Instructions returns the idle screen hint.
func (g *Game) Instructions() string { return "Move mouse/finger to control paddle" }

// Order returns HigherWins.
func (g *Game) Order() engine.ScoreOrder { return engine.HigherWins }

// Controls returns the pointer and activate channels. Left and right keys
// arrive through the pointer channel's key fallback.
func (g *Game) Controls() core.Controls { return core.Controls{Pointer: true, Activate: true} }

// World returns the arena size.
func (g *Game) World() core.SizeF { return g.world }

// Start lays out a full wall, centres the paddle and parks the ball on it
// with a launch velocity in a random horizontal direction.
func (g *Game) Start(rng *rand.Rand) {
	p := g.cfg.Paddle
	g.paddle = Paddle{Y: g.world.H - p.Offset, Width: p.Width, Height: p.Height}
	g.paddle.MoveTo(g.world.W/2, g.world.W)

	vx := g.cfg.Ball.Speed
	if rng.Float64() <= 0.5 {
		vx = -vx
	}
	g.ball = Ball{VX: vx, VY: -g.cfg.Ball.Speed, R: g.cfg.Ball.Radius}
	g.placeBallOnPaddle()

	g.served = false
	g.aim = core.Pointer{}
	g.level = NewLevel(g.cfg.Bricks, g.world.W)
	g.score = 0
	g.over = false
	g.won = false
	g.fault = nil
}

// placeBallOnPaddle keeps a parked ball above the paddle centre.
func (g *Game) placeBallOnPaddle() {
	g.ball.X = core.ClampF(g.paddle.CenterX(), g.ball.R, g.world.W-g.ball.R)
	g.ball.Y = g.paddle.Y - g.cfg.Paddle.Offset
}

// Tick moves the paddle, then either keeps the ball parked or moves it and
// resolves walls, paddle and bricks before testing for a cleared wall and
// finally for a lost ball.
func (g *Game) Tick(dtMS float64, in core.InputFrame) {
	if g.over {
		return
	}
	g.updatePaddle(in)

	if !g.served {
		g.placeBallOnPaddle()
		if in.Activated() {
			g.served = true
		}
		return
	}

	g.ball.Move(core.Scale(dtMS))
	if math.IsNaN(g.ball.X) || math.IsNaN(g.ball.Y) {
		g.fault = errors.New("breakout: ball position is not finite")
		return
	}

	CheckWallCollision(&g.ball, g.world.W)
	CheckPaddleCollision(&g.ball, &g.paddle, g.cfg.Ball.Spin)
	points, _ := CheckBrickCollision(&g.ball, g.level)
	g.score += points

	switch {
	case g.level.Cleared():
		g.over = true
		g.won = true
	case g.ball.Y > g.world.H:
		g.over = true
	}
}

// updatePaddle follows the pointer when it moved and applies key nudges.
// A pointer that stays put does not undo a key nudge.
func (g *Game) updatePaddle(in core.InputFrame) {
	if in.Pointer.Valid && in.Pointer != g.aim {
		g.paddle.MoveTo(in.Pointer.X, g.world.W)
		g.aim = in.Pointer
	}
	if in.Has(core.ActionLeft) {
		g.paddle.MoveTo(g.paddle.CenterX()-g.cfg.Paddle.KeySpeed, g.world.W)
	}
	if in.Has(core.ActionRight) {
		g.paddle.MoveTo(g.paddle.CenterX()+g.cfg.Paddle.KeySpeed, g.world.W)
	}
}

// Terminal reports a lost ball or a cleared wall.
func (g *Game) Terminal() bool { return g.over }

// Won reports whether the game ended with every brick destroyed.
func (g *Game) Won() bool { return g.won }

// Score returns points from destroyed bricks.
func (g *Game) Score() int { return g.score }

// Fault reports corrupted physics state.
func (g *Game) Fault() error { return g.fault }

// Render draws the bricks, the paddle and the ball inside vp.
func (g *Game) Render(dst *core.Screen, vp core.Viewport) {
	g.renderBricks(dst, vp)
	dst.FillRect(vp.CellRect(g.paddle.Box()), PaddleChar, core.ColorForeground)

	bx, by := vp.ToCell(g.ball.X, g.ball.Y)
	dst.SetColor(bx, by, BallChar, core.ColorForeground)

	if !g.served && !g.over {
		r := vp.Region
		x := r.X + (r.W-utf8.RuneCountInString(serveHint))/2
		dst.DrawTextColor(max(x, r.X), r.Bottom()-1, serveHint, core.ColorMuted)
	}
}

// renderBricks draws all alive bricks in their row color.
func (g *Game) renderBricks(dst *core.Screen, vp core.Viewport) {
	for i, b := range g.level.Bricks {
		if !b.Alive {
			continue
		}
		row := i / g.level.Cols
		dst.FillRect(vp.CellRect(b.Box), BrickGlyphs[row%len(BrickGlyphs)], b.Tier)
	}
}

var (
	_ engine.Simulation = (*Game)(nil)
	_ engine.Faulter    = (*Game)(nil)
)
