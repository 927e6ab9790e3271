package dino

// Snapshot captures the game state for determinism testing.
type Snapshot struct {
	PlayerY  float64
	Jumping  bool
	Speed    float64
	Distance float64
	Cacti    int
	Score    int
	Over     bool
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		PlayerY:  g.playerY,
		Jumping:  g.jumping,
		Speed:    g.speed,
		Distance: g.distance,
		Cacti:    len(g.obstacles.Cacti()),
		Score:    g.Score(),
		Over:     g.over,
	}
}
