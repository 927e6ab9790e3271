package input

import (
	"github.com/vovakirdan/pocket-arcade/internal/core"
)

// Classify turns a press at (x0, y0) released at (x1, y1) into a swipe
// direction or a tap. Coordinates are terminal cells; horizontal travel is
// divided by the cell aspect so both axes are compared in the same units.
// A gesture shorter than threshold on both axes is a tap (ActionTap); on
// ties the horizontal axis wins.
func Classify(x0, y0, x1, y1, threshold int) core.Action {
	dx := float64(x1-x0) / core.CellAspect
	dy := float64(y1 - y0)
	adx, ady := abs(dx), abs(dy)

	if adx < float64(threshold) && ady < float64(threshold) {
		return core.ActionTap
	}
	if adx >= ady {
		if dx > 0 {
			return core.ActionRight
		}
		return core.ActionLeft
	}
	if dy > 0 {
		return core.ActionDown
	}
	return core.ActionUp
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
