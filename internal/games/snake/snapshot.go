package snake

import "github.com/vovakirdan/pocket-arcade/internal/core"

// Snapshot captures the game state for determinism testing.
type Snapshot struct {
	Steps   uint64
	Score   int
	Len     int
	HeadX   int
	HeadY   int
	Heading core.Action
	FoodX   int
	FoodY   int
	Over    bool
	Won     bool
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	head := g.body[0]
	return Snapshot{
		Steps:   g.steps,
		Score:   g.score,
		Len:     len(g.body),
		HeadX:   head.X,
		HeadY:   head.Y,
		Heading: g.heading,
		FoodX:   g.food.X,
		FoodY:   g.food.Y,
		Over:    g.over,
		Won:     g.won,
	}
}
