package flappy

// Snapshot captures the game state for determinism testing.
type Snapshot struct {
	BirdY float64
	BirdV float64
	Pipes int
	Score int
	Over  bool
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		BirdY: g.birdY,
		BirdV: g.birdV,
		Pipes: len(g.pipes.Pipes()),
		Score: g.score,
		Over:  g.over,
	}
}
