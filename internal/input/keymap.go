// Package input turns terminal key and mouse events into game commands.
// A Router is attached to one game at a time and only forwards the input
// channels that game listens to.
package input

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/vovakirdan/pocket-arcade/internal/core"
)

// KeyMap holds the arcade's key bindings. It implements help.KeyMap.
type KeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	Activate key.Binding
	Start    key.Binding

	Next       key.Binding
	Prev       key.Binding
	Help       key.Binding
	Scores     key.Binding
	Screenshot key.Binding
	Quit       key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "right"),
		),
		Activate: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "action"),
		),
		Start: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "play"),
		),
		Next: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next game"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "prev game"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Scores: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "scores"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ForControls returns a copy with the game bindings a game does not
// listen to disabled, so help only lists keys that do something.
func (k KeyMap) ForControls(c core.Controls) KeyMap {
	k.Up.SetEnabled(c.Direction)
	k.Down.SetEnabled(c.Direction)
	k.Left.SetEnabled(c.Direction || c.Pointer)
	k.Right.SetEnabled(c.Direction || c.Pointer)
	k.Activate.SetEnabled(c.Activate)
	return k
}

// WithCarousel enables or disables the bindings that only make sense when
// several games are mounted.
func (k KeyMap) WithCarousel(enabled bool) KeyMap {
	k.Next.SetEnabled(enabled)
	k.Prev.SetEnabled(enabled)
	k.Scores.SetEnabled(enabled)
	return k
}

// ShortHelp returns keybindings to be shown in the mini help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Start, k.Activate, k.Next, k.Help, k.Quit}
}

// FullHelp returns keybindings for the expanded help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Activate, k.Start},
		{k.Next, k.Prev, k.Scores},
		{k.Screenshot, k.Help, k.Quit},
	}
}
