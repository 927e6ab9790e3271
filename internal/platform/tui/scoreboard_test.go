package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/pocket-arcade/internal/storage"
)

type fakeScores struct {
	ascending map[string]bool
}

func (f *fakeScores) TopScores(gameID string, limit int, ascending bool) ([]storage.ScoreEntry, error) {
	f.ascending[gameID] = ascending
	return []storage.ScoreEntry{
		{GameID: gameID, Score: 9, CreatedAt: time.Date(2026, 1, 2, 3, 4, 0, 0, time.UTC)},
	}, nil
}

func (f *fakeScores) Stats(gameID string) (*storage.GameStats, error) {
	return &storage.GameStats{GameID: gameID, GamesCount: 4, AvgScore: 7.5}, nil
}

type fixedBest map[string]int

func (b fixedBest) Load(key string) int { return b[key] }

func (b fixedBest) Save(string, int) error { return nil }

func TestScoreboardLoadsPerOrder(t *testing.T) {
	src := &fakeScores{ascending: make(map[string]bool)}
	m := NewScoreboardModel(src, fixedBest{"memory-best": 11}, testTheme(), 100, 30)

	m.SelectGame("memory")
	if !src.ascending["memory"] {
		t.Error("memory history should be read lowest first")
	}
	if g, _ := m.Game(); g.ID != "memory" {
		t.Fatalf("selected %s", g.ID)
	}

	v := m.View()
	for _, want := range []string{"HIGH SCORES - Memory", "Best: 11", "Games: 4", "Avg: 7.5", "Jan 02 03:04"} {
		if !strings.Contains(v, want) {
			t.Errorf("view missing %q", want)
		}
	}

	m.SelectGame("snake")
	if src.ascending["snake"] {
		t.Error("snake history should be read highest first")
	}
}

func TestScoreboardCyclesGames(t *testing.T) {
	m := NewScoreboardModel(nil, nil, testTheme(), 60, 30)
	first, _ := m.Game()

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)
	if g, _ := m.Game(); g.ID == first.ID {
		t.Error("tab should move to the next game")
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m = next.(ScoreboardModel)
	if g, _ := m.Game(); g.ID != first.ID {
		t.Errorf("shift+tab should return to %s, got %s", first.ID, g.ID)
	}
	if !strings.Contains(m.View(), "No scores recorded yet.") {
		t.Error("empty history should show the placeholder")
	}
}

func TestScoreboardBack(t *testing.T) {
	standalone := NewScoreboardModel(nil, nil, testTheme(), 80, 24)
	_, cmd := standalone.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Error("standalone back should quit the program")
	}

	overlay := standalone.AsOverlay()
	next, cmd := overlay.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd != nil {
		t.Error("overlay back must not quit")
	}
	if !next.(ScoreboardModel).IsGoingBack() {
		t.Error("overlay back should be reported")
	}
}
