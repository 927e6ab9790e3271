package breakout

// Snapshot captures the game state for determinism testing.
type Snapshot struct {
	BallX, BallY   float64
	BallVX, BallVY float64
	PaddleX        float64
	Served         bool
	Bricks         int // alive
	Score          int
	Over           bool
	Won            bool
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		BallX:   g.ball.X,
		BallY:   g.ball.Y,
		BallVX:  g.ball.VX,
		BallVY:  g.ball.VY,
		PaddleX: g.paddle.X,
		Served:  g.served,
		Bricks:  g.level.CountAlive(),
		Score:   g.score,
		Over:    g.over,
		Won:     g.won,
	}
}
