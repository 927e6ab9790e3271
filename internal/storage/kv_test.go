package storage

import (
	"context"
	"errors"
	"io"
	"os"
	"strconv"
	"testing"

	"github.com/charmbracelet/log"
	"go.uber.org/mock/gomock"

	"github.com/vovakirdan/pocket-arcade/internal/engine"
	"github.com/vovakirdan/pocket-arcade/internal/storage/mocks"
)

func quietLogger() *log.Logger {
	return log.New(io.Discard)
}

func TestMemoryKV(t *testing.T) {
	var kv MemoryKV
	ctx := context.Background()

	if _, err := kv.Get(ctx, "x"); !errors.Is(err, ErrNotFound) {
		t.Errorf("zero MemoryKV Get() = %v, expected ErrNotFound", err)
	}
	kv.Set(ctx, "x", "1")
	if v, err := kv.Get(ctx, "x"); err != nil || v != "1" {
		t.Errorf("Get() = %q, %v", v, err)
	}
}

func TestBestScoresLoad(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		err      error
		expected int
	}{
		{"stored value", "42", nil, 42},
		{"missing key", "", ErrNotFound, 0},
		{"store failure", "", errors.New("connection reset"), 0},
		{"not a number", "forty", nil, 0},
		{"negative", "-3", nil, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			kv := mocks.NewMockKV(ctrl)
			kv.EXPECT().Get(gomock.Any(), "breakout-best").Return(tc.value, tc.err)

			best := NewBestScores(kv, quietLogger())
			if got := best.Load("breakout-best"); got != tc.expected {
				t.Errorf("Load() = %d, expected %d", got, tc.expected)
			}
		})
	}
}

func TestBestScoresSave(t *testing.T) {
	ctrl := gomock.NewController(t)
	kv := mocks.NewMockKV(ctrl)
	kv.EXPECT().Set(gomock.Any(), "memory-best", "14").Return(nil)

	if err := NewBestScores(kv, quietLogger()).Save("memory-best", 14); err != nil {
		t.Errorf("Save() = %v", err)
	}
}

// A failing store must not stop a game from reaching GameOver.
func TestBestScoresFailSoftInMachine(t *testing.T) {
	ctrl := gomock.NewController(t)
	kv := mocks.NewMockKV(ctrl)
	kv.EXPECT().Get(gomock.Any(), "flappy-best").Return("", errors.New("read-only")).Times(2)
	kv.EXPECT().Set(gomock.Any(), "flappy-best", "6").Return(errors.New("read-only"))

	m := engine.NewMachine("flappy", engine.HigherWins, NewBestScores(kv, quietLogger()), quietLogger())
	m.Start()
	m.Commit()
	m.End(6)
	ev, _ := m.Commit()

	if ev.To != engine.GameOver || m.Best() != 6 {
		t.Errorf("event = %+v, best = %d", ev, m.Best())
	}
}

// Sessions sharing one store must never lower the stored best, even when
// one of them loaded its best before the other finished.
func TestSharedBestNeverRegresses(t *testing.T) {
	tests := []struct {
		name   string
		game   string
		order  engine.ScoreOrder
		first  int
		second int
		want   int
	}{
		{"higher wins", "snake", engine.HigherWins, 50, 20, 50},
		{"higher wins improves", "snake", engine.HigherWins, 20, 50, 50},
		{"lower wins", "memory", engine.LowerWins, 10, 30, 10},
		{"lower wins improves", "memory", engine.LowerWins, 30, 10, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			best := NewBestScores(NewMemoryKV(), quietLogger())
			a := engine.NewMachine(tt.game, tt.order, best, quietLogger())
			b := engine.NewMachine(tt.game, tt.order, best, quietLogger())

			for _, run := range []struct {
				m     *engine.Machine
				final int
			}{{a, tt.first}, {b, tt.second}} {
				run.m.Start()
				run.m.Commit()
				run.m.End(run.final)
				run.m.Commit()
			}

			if got := best.Load(engine.BestKey(tt.game)); got != tt.want {
				t.Errorf("stored best = %d after %d then %d, want %d", got, tt.first, tt.second, tt.want)
			}
			if b.Best() != tt.want {
				t.Errorf("second session best = %d, want %d", b.Best(), tt.want)
			}
		})
	}
}

func TestHistoryRecordsFinishedGames(t *testing.T) {
	store := openTestStore(t)
	h := NewHistory(store, quietLogger())

	h.Observe(engine.Event{Game: "snake", From: engine.Idle, To: engine.Playing})
	h.Observe(engine.Event{Game: "snake", From: engine.Playing, To: engine.Paused, Score: 9})
	h.Observe(engine.Event{Game: "snake", From: engine.Playing, To: engine.GameOver, Score: 0})
	h.Observe(engine.Event{Game: "snake", From: engine.Playing, To: engine.GameOver, Score: 7})

	scores, err := store.TopScores("snake", 10, false)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 1 || scores[0].Score != 7 {
		t.Errorf("history = %+v, expected only the finished score 7", scores)
	}
}

// Runs only against a live server.
func TestRedisKVIntegration(t *testing.T) {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		t.Skip("REDIS_ADDR not set; skipping integration test")
	}
	db := 0
	if v := os.Getenv("REDIS_DB"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			db = n
		}
	}

	ctx := context.Background()
	kv, err := OpenRedis(ctx, RedisOptions{Addr: addr, Password: os.Getenv("REDIS_PASSWORD"), DB: db})
	if err != nil {
		t.Fatalf("OpenRedis() failed: %v", err)
	}
	defer kv.Close()

	if _, err := kv.Get(ctx, "test-missing-key"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get() on missing key = %v", err)
	}
	if err := kv.Set(ctx, "test-best", "5"); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}
	if v, _ := kv.Get(ctx, "test-best"); v != "5" {
		t.Errorf("Get() = %q, expected 5", v)
	}
}

func TestOpenRedisRejectsEmptyAddr(t *testing.T) {
	if _, err := OpenRedis(context.Background(), RedisOptions{}); err == nil {
		t.Error("expected an error for an empty address")
	}
}
