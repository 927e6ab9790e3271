package tui

import (
	"strings"

	"github.com/vovakirdan/pocket-arcade/internal/core"
)

// RenderScreen converts a Screen buffer to a styled string for display.
// Adjacent cells sharing ink and background are emitted as one run to keep
// the escape sequences short.
func RenderScreen(s *core.Screen, th *Theme) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			first := s.GetCell(x, y)

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != first.Color || cell.Bg != first.Bg {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			if first.Color == core.ColorDefault && first.Bg == core.ColorDefault {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(th.Cell(first.Color, first.Bg).Render(run.String()))
		}
	}
	return sb.String()
}
