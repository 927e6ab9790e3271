// Package memory implements a matching-pairs card game.
// The player flips two cards at a time looking for equal symbols; fewer
// moves is better.
package memory

import (
	"fmt"
	"math/rand"
	"unicode/utf8"

	"github.com/vovakirdan/pocket-arcade/internal/config"
	"github.com/vovakirdan/pocket-arcade/internal/core"
	"github.com/vovakirdan/pocket-arcade/internal/engine"
	"github.com/vovakirdan/pocket-arcade/internal/registry"
)

// ID is the registry and best-score identifier.
const ID = "memory"

// Visual characters for rendering
const (
	BackChar = '░'
)

// cardInset is the world-unit margin around each card inside its slot.
const cardInset = 0.08

// Game implements the Memory game logic.
type Game struct {
	cfg        config.MemoryConfig
	cols, rows int

	deck     []Card
	flipped  []int   // indices of face-up unresolved cards, at most two
	timer    float64 // ms left before the flipped pair resolves
	checking bool
	cursor   int
	moves    int
	over     bool
	fault    error
}

// New creates a Memory game with the given tuning.
func New(cfg config.MemoryConfig) *Game {
	def := config.DefaultMemoryConfig()
	if len(cfg.Symbols) == 0 {
		cfg.Symbols = def.Symbols
	}
	if cfg.Columns <= 0 {
		cfg.Columns = def.Columns
	}
	g := &Game{cfg: cfg, cols: cfg.Columns}
	g.rows = (2*len(cfg.Symbols) + g.cols - 1) / g.cols
	g.Start(rand.New(rand.NewSource(1)))
	return g
}

func init() {
	registry.Register(ID, func() engine.Simulation {
		cfg, err := config.LoadMemory()
		if err != nil {
			cfg = config.DefaultMemoryConfig()
		}
		return New(cfg)
	})
}

// ID returns the game identifier.
func (g *Game) ID() string { return ID }

// Title returns the display name.
func (g *Game) Title() string { return "Memory" }

// Instructions returns the idle screen hint.
func (g *Game) Instructions() string { return "Find all matching pairs" }

// Order returns LowerWins: the score is the move count.
func (g *Game) Order() engine.ScoreOrder { return engine.LowerWins }

// Controls returns the directional and activate channels.
func (g *Game) Controls() core.Controls { return core.Controls{Direction: true, Activate: true} }

// World is one unit per card slot.
func (g *Game) World() core.SizeF {
	return core.SizeF{W: float64(g.cols), H: float64(g.rows)}
}

// Start deals a freshly shuffled deck face down.
func (g *Game) Start(rng *rand.Rand) {
	g.deck = NewDeck(g.cfg.Symbols, rng)
	g.flipped = g.flipped[:0]
	g.timer = 0
	g.checking = false
	g.cursor = 0
	g.moves = 0
	g.over = false
	g.fault = nil
}

// Tick moves the cursor, flips the selected card and then runs the
// resolve timer. A pair flipped this frame starts its timer on the next.
func (g *Game) Tick(dtMS float64, in core.InputFrame) {
	if g.over {
		return
	}

	waiting := g.checking
	if in.Direction != core.ActionNone {
		g.moveCursor(in.Direction)
	}
	if in.Tap.Valid {
		if i, ok := g.cardAt(in.Tap.X, in.Tap.Y); ok {
			g.cursor = i
			g.flip(i)
		}
	} else if in.Has(core.ActionActivate) {
		g.flip(g.cursor)
	}

	if waiting {
		g.timer -= dtMS
		if g.timer <= 0 {
			g.resolve()
		}
	}

	if err := g.checkInvariants(); err != nil {
		g.fault = err
	}
}

// flip turns card i face up. Flips are ignored while a pair is being
// resolved and on cards that are already face up.
func (g *Game) flip(i int) {
	if g.checking || i < 0 || i >= len(g.deck) || g.deck[i].FaceUp() {
		return
	}
	g.deck[i].Flipped = true
	g.flipped = append(g.flipped, i)
	if len(g.flipped) < 2 {
		return
	}

	g.moves++
	g.checking = true
	if g.deck[g.flipped[0]].Symbol == g.deck[g.flipped[1]].Symbol {
		g.timer = g.cfg.MatchDelayMS
	} else {
		g.timer = g.cfg.MismatchDelayMS
	}
}

// resolve retires a matched pair or turns a mismatch back over.
func (g *Game) resolve() {
	a, b := g.flipped[0], g.flipped[1]
	match := g.deck[a].Symbol == g.deck[b].Symbol
	for _, i := range g.flipped {
		g.deck[i].Flipped = false
		g.deck[i].Matched = match
	}
	g.flipped = g.flipped[:0]
	g.checking = false
	g.timer = 0

	if countMatched(g.deck) == len(g.deck) {
		g.over = true
	}
}

func (g *Game) moveCursor(dir core.Action) {
	col, row := g.cursor%g.cols, g.cursor/g.cols
	switch dir {
	case core.ActionUp:
		row--
	case core.ActionDown:
		row++
	case core.ActionLeft:
		col--
	case core.ActionRight:
		col++
	}
	col = core.Clamp(col, 0, g.cols-1)
	row = core.Clamp(row, 0, g.rows-1)
	if i := row*g.cols + col; i < len(g.deck) {
		g.cursor = i
	}
}

// cardAt maps a world point to the card slot under it.
func (g *Game) cardAt(x, y float64) (int, bool) {
	if x < 0 || y < 0 {
		return 0, false
	}
	col, row := int(x), int(y)
	if col >= g.cols || row >= g.rows {
		return 0, false
	}
	i := row*g.cols + col
	return i, i < len(g.deck)
}

func (g *Game) checkInvariants() error {
	if len(g.flipped) > 2 {
		return fmt.Errorf("memory: %d unresolved cards face up", len(g.flipped))
	}
	if n := countMatched(g.deck); n%2 != 0 {
		return fmt.Errorf("memory: odd number of matched cards (%d)", n)
	}
	return nil
}

// Terminal reports that every card is matched.
func (g *Game) Terminal() bool { return g.over }

// Score returns the number of moves.
func (g *Game) Score() int { return g.moves }

// Fault reports a broken deck.
func (g *Game) Fault() error { return g.fault }

// Checking reports whether a flipped pair is waiting to resolve.
func (g *Game) Checking() bool { return g.checking }

// Cursor returns the index of the card under the keyboard cursor.
func (g *Game) Cursor() int { return g.cursor }

// Render draws every card and the cursor frame inside vp.
func (g *Game) Render(dst *core.Screen, vp core.Viewport) {
	for i, c := range g.deck {
		slot := g.slot(i)
		card := vp.CellRect(core.Box{
			X: slot.X + cardInset,
			Y: slot.Y + cardInset,
			W: slot.W - 2*cardInset,
			H: slot.H - 2*cardInset,
		})

		switch {
		case c.Matched:
			dst.FillRect(card, ' ', core.ColorDefault)
			drawSymbol(dst, card, c.Symbol, core.ColorMuted)
		case c.Flipped:
			dst.FillRect(card, ' ', core.ColorDefault)
			dst.PaintRect(card, core.ColorForeground)
			drawSymbol(dst, card, c.Symbol, core.ColorSecondary)
		default:
			dst.FillRect(card, BackChar, core.ColorMuted)
		}
	}

	if g.cursor < len(g.deck) {
		dst.DrawBox(vp.CellRect(g.slot(g.cursor)), core.ColorAmber)
	}
}

func (g *Game) slot(i int) core.Box {
	return core.Box{X: float64(i % g.cols), Y: float64(i / g.cols), W: 1, H: 1}
}

func drawSymbol(dst *core.Screen, r core.Rect, sym string, c core.Color) {
	x := r.X + (r.W-utf8.RuneCountInString(sym))/2
	dst.DrawTextColor(x, r.Y+r.H/2, sym, c)
}

var (
	_ engine.Simulation = (*Game)(nil)
	_ engine.Faulter    = (*Game)(nil)
)
