package flappy

import (
	"math/rand"

	"github.com/vovakirdan/pocket-arcade/internal/config"
	"github.com/vovakirdan/pocket-arcade/internal/core"
)

// Pipe is a vertical obstacle with a gap for the bird to pass through.
type Pipe struct {
	X      float64 // left edge
	GapY   float64 // centre of the gap
	Passed bool    // whether the bird has cleared it (for scoring)
}

// TopBox returns the collision box above the gap.
func (p Pipe) TopBox(cfg *config.FlappyConfig) core.Box {
	return core.Box{X: p.X, Y: 0, W: cfg.PipeWidth, H: p.GapY - cfg.PipeGap/2}
}

// BottomBox returns the collision box below the gap, down to worldH.
func (p Pipe) BottomBox(cfg *config.FlappyConfig, worldH float64) core.Box {
	top := p.GapY + cfg.PipeGap/2
	return core.Box{X: p.X, Y: top, W: cfg.PipeWidth, H: worldH - top}
}

// PipeManager handles spawning, movement, and removal of pipes. Pipes
// spawn every SpawnEvery reference frames.
type PipeManager struct {
	pipes   []Pipe
	rng     *rand.Rand
	cfg     *config.FlappyConfig
	world   core.SizeF
	frames  float64 // reference frames elapsed
	spawned int
}

// NewPipeManager creates an empty pipe manager.
func NewPipeManager(rng *rand.Rand, world core.SizeF, cfg *config.FlappyConfig) *PipeManager {
	pm := &PipeManager{
		pipes: make([]Pipe, 0, 8),
		cfg:   cfg,
		world: world,
	}
	pm.Reset(rng)
	return pm
}

// Reset clears all pipes and the spawn counter.
func (pm *PipeManager) Reset(rng *rand.Rand) {
	pm.pipes = pm.pipes[:0]
	pm.rng = rng
	pm.frames = 0
	pm.spawned = 0
}

// Update advances the spawn counter by s reference frames, spawns due
// pipes at the right edge, moves every pipe left and drops the ones that
// are fully off-screen. It returns how many pipes the bird at birdX
// cleared this frame.
func (pm *PipeManager) Update(s, birdX float64) int {
	pm.frames += s
	for pm.frames >= float64((pm.spawned+1)*pm.cfg.SpawnEvery) {
		pm.spawned++
		pm.spawn()
	}

	passed := 0
	kept := pm.pipes[:0]
	for _, p := range pm.pipes {
		p.X -= pm.cfg.PipeSpeed * s
		if !p.Passed && p.X+pm.cfg.PipeWidth < birdX {
			p.Passed = true
			passed++
		}
		if p.X > -pm.cfg.PipeWidth {
			kept = append(kept, p)
		}
	}
	pm.pipes = kept
	return passed
}

func (pm *PipeManager) spawn() {
	span := max(pm.world.H-pm.cfg.GapTop-pm.cfg.GapBottom, 0)
	pm.pipes = append(pm.pipes, Pipe{
		X:    pm.world.W,
		GapY: pm.cfg.GapTop + pm.rng.Float64()*span,
	})
}

// Pipes returns the current pipes, oldest first.
func (pm *PipeManager) Pipes() []Pipe {
	return pm.pipes
}

// Collides reports whether bird overlaps any pipe outside its gap.
func (pm *PipeManager) Collides(bird core.Box) bool {
	for _, p := range pm.pipes {
		if bird.Intersects(p.TopBox(pm.cfg)) || bird.Intersects(p.BottomBox(pm.cfg, pm.world.H)) {
			return true
		}
	}
	return false
}
