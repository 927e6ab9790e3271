package dino

import (
	"math/rand"

	"github.com/vovakirdan/pocket-arcade/internal/config"
	"github.com/vovakirdan/pocket-arcade/internal/core"
)

// Cactus represents a ground obstacle the player must jump over.
type Cactus struct {
	X      float64 // left edge
	Width  float64
	Height float64
}

// Box returns the collision box for this cactus standing on groundY.
func (c Cactus) Box(groundY float64) core.Box {
	return core.Box{X: c.X, Y: groundY - c.Height, W: c.Width, H: c.Height}
}

// ObstacleManager handles spawning, movement, and removal of cacti.
// A cactus spawns once the distance scrolled since the last spawn exceeds
// a minimum gap that is re-drawn every frame.
type ObstacleManager struct {
	cacti     []Cactus
	rng       *rand.Rand
	cfg       *config.DinoConfig
	world     core.SizeF
	lastSpawn float64 // distance at the last spawn
}

// NewObstacleManager creates an empty obstacle manager.
func NewObstacleManager(rng *rand.Rand, world core.SizeF, cfg *config.DinoConfig) *ObstacleManager {
	om := &ObstacleManager{
		cacti: make([]Cactus, 0, 8),
		cfg:   cfg,
		world: world,
	}
	om.Reset(rng)
	return om
}

// Reset clears all obstacles.
func (om *ObstacleManager) Reset(rng *rand.Rand) {
	om.cacti = om.cacti[:0]
	om.rng = rng
	om.lastSpawn = 0
}

// Update spawns a cactus at the right edge when distance has moved far
// enough past the last spawn, then scrolls every cactus left by step
// and drops the ones that are fully off-screen.
func (om *ObstacleManager) Update(step, distance float64) {
	minGap := om.cfg.Obstacles.MinGap + om.rng.Float64()*om.cfg.Obstacles.GapSpread
	if distance-om.lastSpawn > minGap {
		om.spawn()
		om.lastSpawn = distance
	}

	kept := om.cacti[:0]
	for _, c := range om.cacti {
		c.X -= step
		if c.X > -c.Width {
			kept = append(kept, c)
		}
	}
	om.cacti = kept
}

func (om *ObstacleManager) spawn() {
	o := om.cfg.Obstacles
	h := o.MinHeight + om.rng.Float64()*(o.MaxHeight-o.MinHeight)
	w := o.MinWidth + om.rng.Float64()*(o.MaxWidth-o.MinWidth)
	om.cacti = append(om.cacti, Cactus{X: om.world.W, Width: w, Height: h})
}

// Cacti returns the current list of obstacles, oldest first.
func (om *ObstacleManager) Cacti() []Cactus {
	return om.cacti
}

// Collides reports whether player overlaps any cactus standing on groundY.
// Only the player's bottom edge is tested vertically since cacti grow up
// from the ground.
func (om *ObstacleManager) Collides(player core.Box, groundY float64) bool {
	for _, c := range om.cacti {
		if player.Right() > c.X && player.X < c.X+c.Width && player.Bottom() > groundY-c.Height {
			return true
		}
	}
	return false
}
