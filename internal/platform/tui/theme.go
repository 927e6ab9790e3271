package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/pocket-arcade/internal/core"
)

// palette maps color tokens to 256-color codes.
type palette map[core.Color]string

var darkPalette = palette{
	core.ColorForeground: "255",
	core.ColorSecondary:  "235",
	core.ColorMuted:      "244",
	core.ColorPurple:     "135",
	core.ColorBlue:       "39",
	core.ColorGreen:      "42",
	core.ColorAmber:      "214",
	core.ColorRed:        "203",
}

var lightPalette = palette{
	core.ColorForeground: "234",
	core.ColorSecondary:  "254",
	core.ColorMuted:      "246",
	core.ColorPurple:     "92",
	core.ColorBlue:       "26",
	core.ColorGreen:      "28",
	core.ColorAmber:      "166",
	core.ColorRed:        "160",
}

// ThemeMode selects the palette.
type ThemeMode string

const (
	ThemeAuto  ThemeMode = "auto"
	ThemeDark  ThemeMode = "dark"
	ThemeLight ThemeMode = "light"
)

// ParseThemeMode validates a --theme flag value.
func ParseThemeMode(s string) (ThemeMode, error) {
	switch ThemeMode(s) {
	case "", ThemeAuto:
		return ThemeAuto, nil
	case ThemeDark, ThemeLight:
		return ThemeMode(s), nil
	}
	return "", fmt.Errorf("tui: unknown theme %q (want auto, dark or light)", s)
}

type cellKey struct {
	fg core.Color
	bg core.Color
}

// Theme resolves color tokens to lipgloss styles for one renderer. Styles
// are built lazily and cached per token pair.
type Theme struct {
	renderer *lipgloss.Renderer
	dark     bool
	colors   palette
	cells    map[cellKey]lipgloss.Style

	Title     lipgloss.Style
	Tab       lipgloss.Style
	ActiveTab lipgloss.Style
	Help      lipgloss.Style
	Border    lipgloss.Style
	Empty     lipgloss.Style
}

// NewTheme builds a theme for r. A nil renderer uses the process default;
// SSH sessions pass the renderer of their own terminal.
func NewTheme(r *lipgloss.Renderer, mode ThemeMode) *Theme {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	t := &Theme{renderer: r}
	switch mode {
	case ThemeDark:
		t.SetDark(true)
	case ThemeLight:
		t.SetDark(false)
	default:
		t.SetDark(r.HasDarkBackground())
	}
	return t
}

// SetDark switches palettes. The next rendered frame uses the new colors.
func (t *Theme) SetDark(dark bool) {
	t.dark = dark
	t.colors = lightPalette
	if dark {
		t.colors = darkPalette
	}
	t.cells = make(map[cellKey]lipgloss.Style)

	accent := t.color(core.ColorPurple)
	muted := t.color(core.ColorMuted)
	t.Title = t.renderer.NewStyle().Bold(true).Foreground(t.color(core.ColorAmber))
	t.Tab = t.renderer.NewStyle().Foreground(muted).Padding(0, 1)
	t.ActiveTab = t.renderer.NewStyle().Bold(true).
		Foreground(t.color(core.ColorForeground)).
		Background(accent).
		Padding(0, 1)
	t.Help = t.renderer.NewStyle().Foreground(muted)
	t.Border = t.renderer.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(muted).
		Padding(0, 1)
	t.Empty = t.renderer.NewStyle().Foreground(muted).Italic(true).Padding(2, 4)
}

// Dark reports whether the dark palette is in use.
func (t *Theme) Dark() bool { return t.dark }

// Renderer returns the renderer styles are bound to.
func (t *Theme) Renderer() *lipgloss.Renderer { return t.renderer }

func (t *Theme) color(c core.Color) lipgloss.TerminalColor {
	code, ok := t.colors[c]
	if !ok {
		return lipgloss.NoColor{}
	}
	return lipgloss.Color(code)
}

// Cell returns the style for a run of cells with ink fg on background bg.
func (t *Theme) Cell(fg, bg core.Color) lipgloss.Style {
	k := cellKey{fg: fg, bg: bg}
	if s, ok := t.cells[k]; ok {
		return s
	}
	s := t.renderer.NewStyle()
	if fg != core.ColorDefault {
		s = s.Foreground(t.color(fg))
	}
	if bg != core.ColorDefault {
		s = s.Background(t.color(bg))
	}
	t.cells[k] = s
	return s
}
