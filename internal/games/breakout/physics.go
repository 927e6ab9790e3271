package breakout

import "github.com/vovakirdan/pocket-arcade/internal/core"

// Ball is the ball state in world units. X and Y are the centre.
type Ball struct {
	X, Y   float64
	VX, VY float64 // velocity per reference frame
	R      float64
}

// Box returns the ball's bounding box.
func (b *Ball) Box() core.Box {
	return core.Box{X: b.X - b.R, Y: b.Y - b.R, W: 2 * b.R, H: 2 * b.R}
}

// Move advances the ball by s reference frames.
func (b *Ball) Move(s float64) {
	b.X += b.VX * s
	b.Y += b.VY * s
}

// Paddle is the player's paddle. X is the left edge.
type Paddle struct {
	X, Y          float64
	Width, Height float64
}

// Box returns the paddle's bounding box.
func (p *Paddle) Box() core.Box {
	return core.Box{X: p.X, Y: p.Y, W: p.Width, H: p.Height}
}

// CenterX returns the horizontal centre of the paddle.
func (p *Paddle) CenterX() float64 {
	return p.X + p.Width/2
}

// MoveTo centres the paddle on x, clamped inside [0, worldW].
func (p *Paddle) MoveTo(x, worldW float64) {
	p.X = core.ClampF(x-p.Width/2, 0, max(worldW-p.Width, 0))
}

// CollisionSide indicates which wall the ball touched.
type CollisionSide int

const (
	CollisionNone CollisionSide = iota
	CollisionTop
	CollisionLeft
	CollisionRight
)

// CheckWallCollision reflects the ball off the side and top walls and
// clamps it back inside so its edge never leaves the field.
func CheckWallCollision(ball *Ball, worldW float64) CollisionSide {
	side := CollisionNone
	if ball.X-ball.R <= 0 || ball.X+ball.R >= worldW {
		ball.VX = -ball.VX
		if ball.X-ball.R <= 0 {
			side = CollisionLeft
		} else {
			side = CollisionRight
		}
		ball.X = core.ClampF(ball.X, ball.R, worldW-ball.R)
	}
	if ball.Y-ball.R <= 0 {
		ball.VY = -ball.VY
		ball.Y = ball.R
		side = CollisionTop
	}
	return side
}

// CheckPaddleCollision bounces the ball upward when its bottom edge is
// within the paddle's band and its centre is over the paddle. The
// horizontal speed follows where on the paddle it landed, from -spin/2 at
// the left edge to +spin/2 at the right.
func CheckPaddleCollision(ball *Ball, paddle *Paddle, spin float64) bool {
	bottom := ball.Y + ball.R
	if bottom < paddle.Y || bottom > paddle.Y+paddle.Height {
		return false
	}
	if ball.X < paddle.X || ball.X > paddle.X+paddle.Width {
		return false
	}

	ball.VY = -abs(ball.VY)
	hit := (ball.X - paddle.X) / paddle.Width
	ball.VX = (hit - 0.5) * spin
	return true
}

// CheckBrickCollision destroys every live brick the ball overlaps and
// returns the points they were worth. The vertical velocity flips once
// if anything was hit, however many bricks broke.
func CheckBrickCollision(ball *Ball, level *Level) (points, hits int) {
	box := ball.Box()
	for i := range level.Bricks {
		b := &level.Bricks[i]
		if !b.Alive || !box.Intersects(b.Box) {
			continue
		}
		b.Alive = false
		points += b.Points
		hits++
	}
	if hits > 0 {
		ball.VY = -ball.VY
	}
	return points, hits
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
