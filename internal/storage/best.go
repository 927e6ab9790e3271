package storage

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
)

// BestScores stores best scores as decimal strings in a KV. Reads never
// fail: a missing, unreadable or corrupt value is 0. Writes are bounded by
// a short timeout so a slow store cannot stall a frame.
type BestScores struct {
	kv      KV
	logger  *log.Logger
	timeout time.Duration
}

// NewBestScores wraps kv. logger may be nil.
func NewBestScores(kv KV, logger *log.Logger) *BestScores {
	if logger == nil {
		logger = log.Default()
	}
	return &BestScores{kv: kv, logger: logger, timeout: time.Second}
}

// Load returns the stored score for key, or 0.
func (b *BestScores) Load(key string) int {
	ctx, cancel := context.WithTimeout(context.Background(), b.timeout)
	defer cancel()

	raw, err := b.kv.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			b.logger.Warn("best score unreadable", "key", key, "error", err)
		}
		return 0
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		b.logger.Warn("best score corrupt", "key", key, "value", raw)
		return 0
	}
	return n
}

// Save stores score under key.
func (b *BestScores) Save(key string, score int) error {
	ctx, cancel := context.WithTimeout(context.Background(), b.timeout)
	defer cancel()
	return b.kv.Set(ctx, key, strconv.Itoa(score))
}
