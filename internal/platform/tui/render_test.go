package tui

import (
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/vovakirdan/pocket-arcade/internal/core"
)

func TestRenderScreenPlainText(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawTextColor(0, 0, "ab", core.ColorForeground)
	s.DrawTextColor(2, 0, "cd", core.ColorRed)
	s.PaintRect(core.NewRect(0, 1, 6, 1), core.ColorSecondary)

	got := RenderScreen(s, testTheme())
	want := "abcd  \n      "
	if got != want {
		t.Errorf("RenderScreen() = %q, want %q", got, want)
	}
}

func TestRenderScreenGroupsRuns(t *testing.T) {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.ANSI256)
	th := NewTheme(r, ThemeDark)

	s := core.NewScreen(8, 1)
	s.DrawTextColor(0, 0, "aaaa", core.ColorGreen)
	s.DrawTextColor(4, 0, "bbbb", core.ColorGreen)

	out := RenderScreen(s, th)
	if n := strings.Count(out, "\x1b[0m"); n != 1 {
		t.Errorf("same-colored cells should form one run, got %d resets in %q", n, out)
	}

	s.Paint(6, 0, core.ColorSecondary)
	out = RenderScreen(s, th)
	if n := strings.Count(out, "\x1b[0m"); n != 3 {
		t.Errorf("a background change splits the run, got %d resets in %q", n, out)
	}
}

func TestThemeModes(t *testing.T) {
	r := lipgloss.NewRenderer(io.Discard)

	dark := NewTheme(r, ThemeDark)
	light := NewTheme(r, ThemeLight)
	if !dark.Dark() || light.Dark() {
		t.Fatal("explicit modes should override detection")
	}
	if dark.colors[core.ColorForeground] == light.colors[core.ColorForeground] {
		t.Error("palettes should differ")
	}

	cell := dark.Cell(core.ColorRed, core.ColorSecondary)
	if _, ok := dark.cells[cellKey{fg: core.ColorRed, bg: core.ColorSecondary}]; !ok {
		t.Error("Cell should cache its style")
	}
	if cell.GetForeground() != lipgloss.Color(darkPalette[core.ColorRed]) {
		t.Errorf("foreground = %v", cell.GetForeground())
	}

	dark.SetDark(false)
	if len(dark.cells) != 0 {
		t.Error("switching palettes must drop cached styles")
	}
	if got := dark.Cell(core.ColorRed, core.ColorDefault).GetForeground(); got != lipgloss.Color(lightPalette[core.ColorRed]) {
		t.Errorf("after switch foreground = %v", got)
	}
}

func TestParseThemeMode(t *testing.T) {
	tests := []struct {
		in      string
		want    ThemeMode
		wantErr bool
	}{
		{"", ThemeAuto, false},
		{"auto", ThemeAuto, false},
		{"dark", ThemeDark, false},
		{"light", ThemeLight, false},
		{"neon", "", true},
	}
	for _, tt := range tests {
		got, err := ParseThemeMode(tt.in)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("ParseThemeMode(%q) = %q, %v", tt.in, got, err)
		}
	}
}
