package core

// Color is a theme token for a screen cell. Games only pick tokens; the
// host resolves them to concrete terminal colors at draw time, so a theme
// change shows up on the next frame.
type Color uint8

const (
	ColorDefault    Color = iota
	ColorForeground       // primary ink: paddle, ball, snake, bird
	ColorSecondary        // playfield background
	ColorMuted            // ground, face-down cards, hints
	ColorPurple
	ColorBlue
	ColorGreen
	ColorAmber
	ColorRed
)

// BrickTiers are the row colors of the brick grid, top row first.
var BrickTiers = [...]Color{ColorPurple, ColorBlue, ColorGreen, ColorAmber}

// String returns the token name.
func (c Color) String() string {
	switch c {
	case ColorForeground:
		return "foreground"
	case ColorSecondary:
		return "secondary"
	case ColorMuted:
		return "muted"
	case ColorPurple:
		return "purple"
	case ColorBlue:
		return "blue"
	case ColorGreen:
		return "green"
	case ColorAmber:
		return "amber"
	case ColorRed:
		return "red"
	default:
		return "default"
	}
}
