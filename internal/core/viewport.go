package core

import "math"

// CellAspect is how many columns make a visually square cell.
const CellAspect = 2

// Viewport maps a logical world onto a region of screen cells. It is
// computed from the container on every draw and never cached by games.
type Viewport struct {
	Region Rect
	World  SizeF
}

// FitViewport finds the largest region inside area that keeps the world's
// aspect ratio, centered. It returns false when the area or world has no
// measurable size.
func FitViewport(area Rect, world SizeF) (Viewport, bool) {
	if area.Empty() || world.W <= 0 || world.H <= 0 {
		return Viewport{}, false
	}

	rows := area.H
	if byWidth := int(float64(area.W) * world.H / (CellAspect * world.W)); byWidth < rows {
		rows = byWidth
	}
	cols := int(math.Round(float64(rows) * CellAspect * world.W / world.H))
	cols = min(cols, area.W)
	if rows < 1 || cols < 1 {
		return Viewport{}, false
	}

	return Viewport{
		Region: NewRect(area.X+(area.W-cols)/2, area.Y+(area.H-rows)/2, cols, rows),
		World:  world,
	}, true
}

func (v Viewport) sx() float64 { return float64(v.Region.W) / v.World.W }
func (v Viewport) sy() float64 { return float64(v.Region.H) / v.World.H }

// ToCell maps a world point to the cell containing it.
func (v Viewport) ToCell(x, y float64) (int, int) {
	return v.Region.X + int(math.Floor(x*v.sx())), v.Region.Y + int(math.Floor(y*v.sy()))
}

// CellRect returns the cells covered by a world box, at least one cell in
// each direction, clipped to the region.
func (v Viewport) CellRect(b Box) Rect {
	x0 := int(math.Floor(b.X * v.sx()))
	y0 := int(math.Floor(b.Y * v.sy()))
	x1 := max(int(math.Ceil(b.Right()*v.sx())), x0+1)
	y1 := max(int(math.Ceil(b.Bottom()*v.sy())), y0+1)

	x0, x1 = Clamp(x0, 0, v.Region.W), Clamp(x1, 0, v.Region.W)
	y0, y1 = Clamp(y0, 0, v.Region.H), Clamp(y1, 0, v.Region.H)
	return NewRect(v.Region.X+x0, v.Region.Y+y0, x1-x0, y1-y0)
}

// ToWorld maps the center of a cell back to world units. It returns false
// for cells outside the region.
func (v Viewport) ToWorld(cx, cy int) (float64, float64, bool) {
	if !v.Region.Contains(cx, cy) {
		return 0, 0, false
	}
	x := (float64(cx-v.Region.X) + 0.5) / v.sx()
	y := (float64(cy-v.Region.Y) + 0.5) / v.sy()
	return x, y, true
}
