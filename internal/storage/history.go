package storage

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/pocket-arcade/internal/engine"
)

// History appends every finished game with a non-zero score to the score
// table. It is an engine.Observer.
type History struct {
	store  *Store
	logger *log.Logger
}

// NewHistory records into store. logger may be nil.
func NewHistory(store *Store, logger *log.Logger) *History {
	if logger == nil {
		logger = log.Default()
	}
	return &History{store: store, logger: logger}
}

// Observe records GameOver transitions.
func (h *History) Observe(e engine.Event) {
	if e.To != engine.GameOver || e.Score == 0 {
		return
	}
	if _, err := h.store.SaveScore(e.Game, e.Score); err != nil {
		h.logger.Warn("score history not saved", "game", e.Game, "error", err)
	}
}

var (
	_ engine.Observer  = (*History)(nil)
	_ engine.BestStore = (*BestScores)(nil)
)
