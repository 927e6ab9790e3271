package memory

import "strings"

// Snapshot captures the game state for determinism testing.
type Snapshot struct {
	Deck     string // symbols in deal order
	FaceUp   int    // unresolved face-up cards
	Matched  int
	Moves    int
	Cursor   int
	Checking bool
	Timer    float64
	Over     bool
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	var deck strings.Builder
	for _, c := range g.deck {
		deck.WriteString(c.Symbol)
	}
	return Snapshot{
		Deck:     deck.String(),
		FaceUp:   len(g.flipped),
		Matched:  countMatched(g.deck),
		Moves:    g.moves,
		Cursor:   g.cursor,
		Checking: g.checking,
		Timer:    g.timer,
		Over:     g.over,
	}
}
