package memory

import (
	"math/rand"
	"testing"

	"pgregory.net/rapid"

	"github.com/vovakirdan/pocket-arcade/internal/config"
	"github.com/vovakirdan/pocket-arcade/internal/core"
)

func newTestGame(seed int64) *Game {
	g := New(config.DefaultMemoryConfig())
	g.Start(rand.New(rand.NewSource(seed)))
	return g
}

func idle() core.InputFrame { return core.NewInputFrame() }

// tap returns a frame tapping the centre of card i on a 4-column board.
func tap(i int) core.InputFrame {
	in := core.NewInputFrame()
	in.Set(core.ActionTap)
	in.Tap = core.Pointer{X: float64(i%4) + 0.5, Y: float64(i/4) + 0.5, Valid: true}
	return in
}

func press(a core.Action) core.InputFrame {
	in := core.NewInputFrame()
	in.Set(a)
	return in
}

// pairs groups card indices by symbol.
func pairs(g *Game) map[string][]int {
	out := make(map[string][]int)
	for i, c := range g.deck {
		out[c.Symbol] = append(out[c.Symbol], i)
	}
	return out
}

// mismatch returns two cards with different symbols.
func mismatch(g *Game) (int, int) {
	for j := 1; j < len(g.deck); j++ {
		if g.deck[j].Symbol != g.deck[0].Symbol {
			return 0, j
		}
	}
	panic("deck has a single symbol")
}

func TestFreshDeckIsBalanced(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		g := newTestGame(rapid.Int64().Draw(t, "seed"))
		if len(g.deck) != 16 {
			t.Fatalf("deck has %d cards", len(g.deck))
		}
		for sym, idx := range pairs(g) {
			if len(idx) != 2 {
				t.Fatalf("symbol %s appears %d times", sym, len(idx))
			}
		}
		for i, c := range g.deck {
			if c.FaceUp() {
				t.Fatalf("card %d dealt face up", i)
			}
		}
	})
}

func TestRestartDealsFresh(t *testing.T) {
	g := newTestGame(1)
	a, b := mismatch(g)
	g.Tick(16, tap(a))
	g.Tick(16, tap(b))
	g.Start(rand.New(rand.NewSource(2)))

	snap := g.Snapshot()
	if snap.FaceUp != 0 || snap.Matched != 0 || snap.Moves != 0 || snap.Checking || snap.Over {
		t.Errorf("restart left state behind: %+v", snap)
	}
}

func TestMismatchFlipsBack(t *testing.T) {
	g := newTestGame(1)
	a, b := mismatch(g)

	g.Tick(16, tap(a))
	if g.Score() != 0 {
		t.Fatal("first flip counted as a move")
	}
	g.Tick(16, tap(b))
	if g.Score() != 1 || !g.Checking() {
		t.Fatalf("second flip: moves=%d checking=%v", g.Score(), g.Checking())
	}

	// 62 frames is 992ms.
	for i := 0; i < 62; i++ {
		g.Tick(16, idle())
	}
	if !g.Checking() || !g.deck[a].Flipped {
		t.Fatal("mismatch resolved before 1000ms")
	}
	g.Tick(16, idle())
	if g.Checking() || g.deck[a].FaceUp() || g.deck[b].FaceUp() {
		t.Error("mismatch did not flip back after 1000ms")
	}
}

func TestMatchResolves(t *testing.T) {
	g := newTestGame(1)
	idx := pairs(g)[g.deck[0].Symbol]

	g.Tick(16, tap(idx[0]))
	g.Tick(16, tap(idx[1]))
	g.Tick(499, idle())
	if !g.Checking() {
		t.Fatal("match resolved before 500ms")
	}
	g.Tick(1, idle())
	if g.Checking() || !g.deck[idx[0]].Matched || !g.deck[idx[1]].Matched {
		t.Error("match did not resolve after 500ms")
	}
}

func TestInputBlockedWhileChecking(t *testing.T) {
	g := newTestGame(1)
	a, b := mismatch(g)
	g.Tick(16, tap(a))
	g.Tick(16, tap(b))

	c := 0
	for c == a || c == b {
		c++
	}
	g.Tick(16, tap(c))
	if g.deck[c].Flipped || g.Score() != 1 {
		t.Errorf("flip accepted while checking: moves=%d", g.Score())
	}
}

func TestFaceUpCardIgnored(t *testing.T) {
	g := newTestGame(1)
	g.Tick(16, tap(3))
	g.Tick(16, tap(3))
	if snap := g.Snapshot(); snap.FaceUp != 1 || snap.Moves != 0 {
		t.Errorf("tapping a face-up card changed state: %+v", snap)
	}
}

func TestPerfectGame(t *testing.T) {
	g := newTestGame(7)
	for _, idx := range pairs(g) {
		g.Tick(16, tap(idx[0]))
		g.Tick(16, tap(idx[1]))
		g.Tick(500, idle())
	}
	if !g.Terminal() {
		t.Fatal("all pairs matched but the game is not over")
	}
	if g.Score() != 8 {
		t.Errorf("perfect game took %d moves", g.Score())
	}
}

func TestWinWaitsForLastMatch(t *testing.T) {
	g := newTestGame(7)
	all := pairs(g)
	var last []int
	for sym, idx := range all {
		if last == nil {
			last = all[sym]
			continue
		}
		g.Tick(16, tap(idx[0]))
		g.Tick(16, tap(idx[1]))
		g.Tick(500, idle())
	}
	g.Tick(16, tap(last[0]))
	g.Tick(16, tap(last[1]))
	if g.Terminal() {
		t.Error("game ended before the last match resolved")
	}
	g.Tick(500, idle())
	if !g.Terminal() {
		t.Error("game did not end after the last match")
	}
}

func TestKeyboardCursor(t *testing.T) {
	g := newTestGame(1)
	g.Tick(16, press(core.ActionUp))
	g.Tick(16, press(core.ActionLeft))
	if g.Cursor() != 0 {
		t.Fatalf("cursor left the board: %d", g.Cursor())
	}

	g.Tick(16, press(core.ActionRight))
	g.Tick(16, press(core.ActionDown))
	if g.Cursor() != 5 {
		t.Fatalf("cursor = %d, expected 5", g.Cursor())
	}

	g.Tick(16, press(core.ActionActivate))
	if !g.deck[5].Flipped {
		t.Error("activate did not flip the card under the cursor")
	}

	for i := 0; i < 6; i++ {
		g.Tick(16, press(core.ActionDown))
		g.Tick(16, press(core.ActionRight))
	}
	if g.Cursor() != 15 {
		t.Errorf("cursor = %d, expected the last card", g.Cursor())
	}
}

func TestTapMovesCursor(t *testing.T) {
	g := newTestGame(1)
	g.Tick(16, tap(10))
	if g.Cursor() != 10 || !g.deck[10].Flipped {
		t.Errorf("cursor=%d flipped=%v", g.Cursor(), g.deck[10].Flipped)
	}
}

// Random play always keeps the deck consistent, and a finished game never
// takes fewer moves than there are pairs.
func TestRandomPlay(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		g := newTestGame(rapid.Int64().Draw(t, "seed"))
		for i := 0; i < 400 && !g.Terminal(); i++ {
			var in core.InputFrame
			switch rapid.IntRange(0, 2).Draw(t, "kind") {
			case 0:
				in = tap(rapid.IntRange(0, 15).Draw(t, "card"))
			case 1:
				in = press(core.ActionActivate)
			default:
				in = idle()
			}
			g.Tick(rapid.Float64Range(1, 600).Draw(t, "dt"), in)
			if err := g.Fault(); err != nil {
				t.Fatal(err)
			}
		}
		if g.Terminal() && g.Score() < 8 {
			t.Fatalf("won in %d moves", g.Score())
		}
	})
}

func TestDeterminism(t *testing.T) {
	run := func() Snapshot {
		g := newTestGame(99)
		for i := 0; i < 100; i++ {
			g.Tick(120, tap((i*7)%16))
		}
		return g.Snapshot()
	}
	if a, b := run(), run(); a != b {
		t.Errorf("same seed and input diverged:\n%+v\n%+v", a, b)
	}
}

func TestRender(t *testing.T) {
	g := newTestGame(1)
	g.Tick(16, tap(5))

	screen := core.NewScreen(80, 40)
	vp, ok := core.FitViewport(core.NewRect(0, 0, 80, 40), g.World())
	if !ok {
		t.Fatal("no viewport")
	}
	g.Render(screen, vp)

	frame := vp.CellRect(g.slot(5))
	if got := screen.Get(frame.X, frame.Y); got != '┌' {
		t.Errorf("cursor frame missing, got %q", got)
	}

	back := vp.CellRect(core.Box{X: 2.5, Y: 0.5, W: 0.01, H: 0.01})
	if got := screen.Get(back.X, back.Y); got != BackChar {
		t.Errorf("face-down card shows %q", got)
	}

	open := vp.CellRect(core.Box{X: 1.1, Y: 1.1, W: 0.8, H: 0.8})
	if cell := screen.GetCell(open.X, open.Y); cell.Bg != core.ColorForeground {
		t.Errorf("flipped card not painted: %+v", cell)
	}
}
