package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/pocket-arcade/internal/engine"
	"github.com/vovakirdan/pocket-arcade/internal/registry"
)

// MountSessions creates one session per game id, in order. Each session
// gets its own seed stream derived from cfg.Seed.
func MountSessions(ids []string, cfg engine.Config) ([]*engine.Session, error) {
	sessions := make([]*engine.Session, 0, len(ids))
	for i, id := range ids {
		sim, err := registry.Create(id)
		if err != nil {
			return nil, fmt.Errorf("tui: mount %s: %w", id, err)
		}
		c := cfg
		if c.Seed != 0 {
			c.Seed += int64(i)
		}
		sessions = append(sessions, engine.NewSession(sim, c))
	}
	return sessions, nil
}

// CarouselOrder is the order games appear in the arcade.
var CarouselOrder = []string{"memory", "snake", "breakout", "flappy", "dino"}

// ArcadeIDs returns CarouselOrder followed by any other registered games.
func ArcadeIDs() []string {
	ids := make([]string, 0, len(CarouselOrder))
	seen := make(map[string]bool)
	for _, id := range CarouselOrder {
		if registry.Exists(id) {
			ids = append(ids, id)
			seen[id] = true
		}
	}
	for _, id := range registry.IDs() {
		if !seen[id] {
			ids = append(ids, id)
		}
	}
	return ids
}

// Run starts a Bubble Tea program for opts and blocks until it exits.
func Run(opts Options, extra ...tea.ProgramOption) error {
	model := NewModel(opts)

	programOpts := append([]tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	}, extra...)

	_, err := tea.NewProgram(model, programOpts...).Run()
	return err
}
