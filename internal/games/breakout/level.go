// Package breakout implements a Breakout/Arkanoid-style brick breaker game.
package breakout

import (
	"github.com/vovakirdan/pocket-arcade/internal/config"
	"github.com/vovakirdan/pocket-arcade/internal/core"
)

// Brick represents a single brick in the wall.
type Brick struct {
	Box    core.Box
	Tier   core.Color // row color
	Points int        // points awarded when destroyed
	Alive  bool       // whether brick is still present
}

// Level is the brick wall of one game, laid out in rows and columns.
type Level struct {
	Rows, Cols int
	Bricks     []Brick // row-major
}

// NewLevel lays out a full wall across worldW. Columns share the width
// left over after a gap on both sides of every brick.
func NewLevel(cfg config.BreakoutBricks, worldW float64) *Level {
	l := &Level{
		Rows:   cfg.Rows,
		Cols:   cfg.Cols,
		Bricks: make([]Brick, 0, cfg.Rows*cfg.Cols),
	}
	if cfg.Rows <= 0 || cfg.Cols <= 0 {
		return l
	}

	w := (worldW - cfg.Gap*float64(cfg.Cols+1)) / float64(cfg.Cols)
	for row := range cfg.Rows {
		for col := range cfg.Cols {
			l.Bricks = append(l.Bricks, Brick{
				Box: core.Box{
					X: cfg.Gap + float64(col)*(w+cfg.Gap),
					Y: cfg.TopOffset + float64(row)*(cfg.Height+cfg.Gap),
					W: w,
					H: cfg.Height,
				},
				Tier:   core.BrickTiers[row%len(core.BrickTiers)],
				Points: cfg.Points,
				Alive:  true,
			})
		}
	}
	return l
}

// At returns the brick at row, col.
func (l *Level) At(row, col int) *Brick {
	return &l.Bricks[row*l.Cols+col]
}

// CountAlive returns the number of remaining bricks.
func (l *Level) CountAlive() int {
	count := 0
	for _, b := range l.Bricks {
		if b.Alive {
			count++
		}
	}
	return count
}

// Cleared reports whether every brick is destroyed.
func (l *Level) Cleared() bool {
	return l.CountAlive() == 0
}
