package tui

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/vovakirdan/pocket-arcade/internal/engine"
	"github.com/vovakirdan/pocket-arcade/internal/registry"
)

// HTTPServer exposes health, metrics and read-only score endpoints next
// to the SSH server.
type HTTPServer struct {
	server    *http.Server
	backend   Backend
	gatherer  prometheus.Gatherer
	logger    *log.Logger
	startTime time.Time
}

// GameResponse is one entry of /api/games.
type GameResponse struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Instructions string `json:"instructions"`
	Order        string `json:"order"`
	Best         int    `json:"best"`
}

// NewHTTPServer builds the router. A nil gatherer serves the default
// prometheus registry.
func NewHTTPServer(addr string, backend Backend, gatherer prometheus.Gatherer, logger *log.Logger) *HTTPServer {
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	if logger == nil {
		logger = log.Default()
	}
	h := &HTTPServer{
		backend:   backend,
		gatherer:  gatherer,
		logger:    logger.WithPrefix("http"),
		startTime: time.Now(),
	}
	h.server = &http.Server{
		Addr:              addr,
		Handler:           h.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	return h
}

// Handler returns the gin engine with every route mounted.
func (h *HTTPServer) Handler() http.Handler {
	r := gin.New()
	r.Use(gin.Recovery(), h.requestLogger)

	r.GET("/healthz", h.health)
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(h.gatherer, promhttp.HandlerOpts{})))

	api := r.Group("/api")
	api.GET("/games", h.games)
	api.GET("/best/:game", h.bestScore)
	api.GET("/scores/:game", h.topScores)
	return r
}

func (h *HTTPServer) requestLogger(c *gin.Context) {
	start := time.Now()
	c.Next()
	h.logger.Debug("request",
		"method", c.Request.Method,
		"path", c.FullPath(),
		"status", c.Writer.Status(),
		"duration", time.Since(start),
	)
}

func (h *HTTPServer) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"uptime": time.Since(h.startTime).Round(time.Second).String(),
	})
}

func (h *HTTPServer) best(gameID string) int {
	if h.backend.Best == nil {
		return 0
	}
	return h.backend.Best.Load(engine.BestKey(gameID))
}

func (h *HTTPServer) games(c *gin.Context) {
	list := registry.List()
	out := make([]GameResponse, 0, len(list))
	for _, g := range list {
		out = append(out, GameResponse{
			ID:           g.ID,
			Title:        g.Title,
			Instructions: g.Instructions,
			Order:        g.Order.String(),
			Best:         h.best(g.ID),
		})
	}
	c.JSON(http.StatusOK, gin.H{"games": out})
}

func (h *HTTPServer) bestScore(c *gin.Context) {
	id := c.Param("game")
	if !registry.Exists(id) {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown game"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"game": id, "best": h.best(id)})
}

func (h *HTTPServer) topScores(c *gin.Context) {
	id := c.Param("game")
	sim, err := registry.Create(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown game"})
		return
	}
	if h.backend.Scores == nil {
		c.JSON(http.StatusNotImplemented, gin.H{"error": "score history disabled"})
		return
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil || limit <= 0 || limit > maxScores {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
		return
	}

	scores, err := h.backend.Scores.TopScores(id, limit, sim.Order() == engine.LowerWins)
	if err != nil {
		h.logger.Warn("score history unavailable", "game", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get scores"})
		return
	}

	type entry struct {
		Rank      int       `json:"rank"`
		Score     int       `json:"score"`
		CreatedAt time.Time `json:"created_at"`
	}
	out := make([]entry, len(scores))
	for i, s := range scores {
		out[i] = entry{Rank: i + 1, Score: s.Score, CreatedAt: s.CreatedAt}
	}
	c.JSON(http.StatusOK, gin.H{"game": id, "order": sim.Order().String(), "scores": out})
}

// ListenAndServe serves until ctx is cancelled, then shuts down.
func (h *HTTPServer) ListenAndServe(ctx context.Context) error {
	h.logger.Info("starting HTTP server", "address", h.server.Addr)

	errc := make(chan error, 1)
	go func() {
		err := h.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			err = nil
		}
		errc <- err
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return h.server.Shutdown(shutdownCtx)
}
