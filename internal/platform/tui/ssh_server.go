package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"
	"github.com/google/uuid"

	"github.com/vovakirdan/pocket-arcade/internal/engine"
	"github.com/vovakirdan/pocket-arcade/internal/metrics"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23234").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.arcade/host_key.
	HostKeyPath string

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration

	Interval       time.Duration
	SwipeThreshold int
	Theme          ThemeMode
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		IdleTimeout: 30 * time.Minute,
		Theme:       ThemeAuto,
	}
}

// Backend is what every SSH session shares: persistence, observers and
// metrics. All fields are optional.
type Backend struct {
	Best      engine.BestStore
	Scores    ScoreSource
	Observers []engine.Observer
	Metrics   *metrics.Metrics
}

// SSHServer wraps a Wish SSH server. Each connection gets its own arcade
// with all games mounted.
type SSHServer struct {
	config  SSHServerConfig
	backend Backend
	server  *ssh.Server
	logger  *log.Logger
}

// NewSSHServer creates a new SSH server with the given configuration.
func NewSSHServer(cfg SSHServerConfig, backend Backend, logger *log.Logger) (*SSHServer, error) {
	if logger == nil {
		logger = log.Default()
	}
	srv := &SSHServer{
		config:  cfg,
		backend: backend,
		logger:  logger.WithPrefix("ssh"),
	}

	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("tui: cannot get home directory: %w", err)
		}
		hostKeyPath = filepath.Join(home, ".arcade", "host_key")
	}
	if err := os.MkdirAll(filepath.Dir(hostKeyPath), 0o700); err != nil {
		return nil, fmt.Errorf("tui: cannot create host key directory: %w", err)
	}

	server, err := wish.NewServer(
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.loggingMiddleware,
		),
	)
	if err != nil {
		return nil, fmt.Errorf("tui: cannot create SSH server: %w", err)
	}
	srv.server = server
	return srv, nil
}

// teaHandler mounts a fresh arcade for each SSH session.
func (s *SSHServer) teaHandler(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sess.Pty()
	if !ok {
		s.logger.Warn("no PTY requested", "user", sess.User())
		return nil, nil
	}

	logger := s.logger.With("session", sessionID(sess), "user", sess.User())
	sessions, err := MountSessions(ArcadeIDs(), engine.Config{
		Store:     s.backend.Best,
		Logger:    logger,
		Observers: s.backend.Observers,
	})
	if err != nil || len(sessions) == 0 {
		logger.Error("cannot mount games", "error", err)
		return nil, nil
	}

	renderer := bubbletea.MakeRenderer(sess)
	model := NewModel(Options{
		Sessions:       sessions,
		Interval:       s.config.Interval,
		SwipeThreshold: s.config.SwipeThreshold,
		Theme:          NewTheme(renderer, s.config.Theme),
		Scores:         s.backend.Scores,
		Best:           s.backend.Best,
		Logger:         logger,
		Width:          pty.Window.Width,
		Height:         pty.Window.Height,
	})

	return model, []tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	}
}

type sessionIDKey struct{}

func sessionID(sess ssh.Session) string {
	if id, ok := sess.Context().Value(sessionIDKey{}).(string); ok {
		return id
	}
	return ""
}

// loggingMiddleware tags each session with an ID, logs it and tracks the
// connected session gauge.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		id := uuid.NewString()
		sess.Context().SetValue(sessionIDKey{}, id)

		if m := s.backend.Metrics; m != nil {
			m.Sessions.Inc()
			defer m.Sessions.Dec()
		}

		start := time.Now()
		s.logger.Info("session started",
			"session", id,
			"user", sess.User(),
			"remote", sess.RemoteAddr().String(),
		)
		next(sess)
		s.logger.Info("session ended",
			"session", id,
			"user", sess.User(),
			"duration", time.Since(start).Round(time.Second),
		)
	}
}

// ListenAndServe serves until ctx is cancelled, then shuts down.
func (s *SSHServer) ListenAndServe(ctx context.Context) error {
	s.logger.Info("starting SSH server", "address", s.config.Address)

	errc := make(chan error, 1)
	go func() {
		err := s.server.ListenAndServe()
		if errors.Is(err, ssh.ErrServerClosed) {
			err = nil
		}
		errc <- err
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}
	s.logger.Info("shutting down")
	return s.Shutdown()
}

// Shutdown gracefully stops the server.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return s.server.Shutdown(ctx)
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Address
}
