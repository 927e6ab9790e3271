package tui

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/vovakirdan/pocket-arcade/internal/engine"
	"github.com/vovakirdan/pocket-arcade/internal/metrics"
	"github.com/vovakirdan/pocket-arcade/internal/storage"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestHTTP(t *testing.T) (*HTTPServer, *storage.Store, *metrics.Metrics) {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	reg := prometheus.NewRegistry()
	m := metrics.New(reg)
	backend := Backend{
		Best:    storage.NewBestScores(store, quiet),
		Scores:  store,
		Metrics: m,
	}
	return NewHTTPServer(":0", backend, reg, quiet), store, m
}

func get(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	h.ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	srv, _, _ := newTestHTTP(t)
	rec := get(t, srv.Handler(), "/healthz")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"status":"ok"`) {
		t.Errorf("body = %s", rec.Body.String())
	}
}

func TestGamesListsBestScores(t *testing.T) {
	srv, store, _ := newTestHTTP(t)
	if err := store.Set(context.Background(), engine.BestKey("snake"), "12"); err != nil {
		t.Fatal(err)
	}

	rec := get(t, srv.Handler(), "/api/games")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var body struct {
		Games []GameResponse `json:"games"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(body.Games) != 5 {
		t.Fatalf("games = %d, want 5", len(body.Games))
	}
	for _, g := range body.Games {
		switch g.ID {
		case "snake":
			if g.Best != 12 {
				t.Errorf("snake best = %d, want 12", g.Best)
			}
		case "memory":
			if g.Order != "lower-wins" {
				t.Errorf("memory order = %s", g.Order)
			}
		}
	}
}

func TestBestScoreEndpoint(t *testing.T) {
	srv, store, _ := newTestHTTP(t)
	if err := store.Set(context.Background(), engine.BestKey("dino"), "250"); err != nil {
		t.Fatal(err)
	}
	h := srv.Handler()

	rec := get(t, h, "/api/best/dino")
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), `"best":250`) {
		t.Errorf("dino: %d %s", rec.Code, rec.Body.String())
	}
	rec = get(t, h, "/api/best/flappy")
	if !strings.Contains(rec.Body.String(), `"best":0`) {
		t.Errorf("unplayed game should report 0: %s", rec.Body.String())
	}
	if rec = get(t, h, "/api/best/tetris"); rec.Code != http.StatusNotFound {
		t.Errorf("unknown game status = %d", rec.Code)
	}
}

func TestTopScoresFollowOrder(t *testing.T) {
	srv, store, _ := newTestHTTP(t)
	for _, s := range []int{20, 12, 16} {
		if _, err := store.SaveScore("memory", s); err != nil {
			t.Fatal(err)
		}
		if _, err := store.SaveScore("snake", s); err != nil {
			t.Fatal(err)
		}
	}
	h := srv.Handler()

	tests := []struct {
		path  string
		first int
	}{
		{"/api/scores/memory", 12},
		{"/api/scores/snake", 20},
	}
	for _, tt := range tests {
		rec := get(t, h, tt.path)
		var body struct {
			Scores []struct {
				Rank  int `json:"rank"`
				Score int `json:"score"`
			} `json:"scores"`
		}
		if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
			t.Fatalf("%s: decode: %v", tt.path, err)
		}
		if len(body.Scores) != 3 || body.Scores[0].Score != tt.first || body.Scores[0].Rank != 1 {
			t.Errorf("%s: scores = %+v", tt.path, body.Scores)
		}
	}

	if rec := get(t, h, "/api/scores/snake?limit=abc"); rec.Code != http.StatusBadRequest {
		t.Errorf("bad limit status = %d", rec.Code)
	}
	if rec := get(t, h, "/api/scores/nope"); rec.Code != http.StatusNotFound {
		t.Errorf("unknown game status = %d", rec.Code)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	srv, _, m := newTestHTTP(t)
	m.Observe(engine.Event{Game: "snake", From: engine.Idle, To: engine.Playing})

	rec := get(t, srv.Handler(), "/metrics")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `arcade_games_started_total{game="snake"} 1`) {
		t.Errorf("metrics body missing counter:\n%s", rec.Body.String())
	}
}

func TestListenAndServeStopsOnCancel(t *testing.T) {
	srv, _, _ := newTestHTTP(t)
	srv.server.Addr = "127.0.0.1:0"

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.ListenAndServe(ctx) }()
	cancel()

	if err := <-done; err != nil {
		t.Errorf("ListenAndServe() = %v", err)
	}
}
