package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/pocket-arcade/internal/config"
	"github.com/vovakirdan/pocket-arcade/internal/core"
	"github.com/vovakirdan/pocket-arcade/internal/engine"
	"github.com/vovakirdan/pocket-arcade/internal/platform/tui"
	"github.com/vovakirdan/pocket-arcade/internal/storage"
)

// app holds what every command shares: settings, logger and stores.
type app struct {
	cfg     config.ArcadeConfig
	logger  *log.Logger
	history *storage.Store // nil when history is unavailable
	best    *storage.BestScores
	closers []io.Closer
}

// newApp loads arcade.yaml, applies the global flags and opens the stores.
// Store failures degrade to an in-memory store; they are never fatal.
func newApp(ctx context.Context, logOut io.Writer) (*app, error) {
	config.SetDir(flagConfigDir)
	cfg, err := config.LoadArcade()
	if err != nil {
		return nil, err
	}
	if flagFPS > 0 {
		cfg.FPS = flagFPS
	}
	if flagDBPath != "" {
		cfg.Store.Path = flagDBPath
	}
	if flagRedis != "" {
		cfg.Store.Driver = "redis"
		cfg.Store.Redis.Addr = flagRedis
	}

	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level: %w", err)
	}
	logger := log.NewWithOptions(logOut, log.Options{
		ReportTimestamp: true,
		Prefix:          "arcade",
		Level:           level,
	})

	a := &app{cfg: cfg, logger: logger}
	a.openStores(ctx)
	return a, nil
}

func (a *app) openStores(ctx context.Context) {
	var kv storage.KV

	if a.cfg.Store.Driver != "memory" {
		store, err := storage.Open(a.cfg.Store.Path)
		if err != nil {
			a.logger.Warn("could not open scores database", "path", a.cfg.Store.Path, "error", err)
		} else {
			a.history = store
			a.closers = append(a.closers, store)
			kv = store
		}
	}

	if a.cfg.Store.Driver == "redis" {
		r := a.cfg.Store.Redis
		rkv, err := storage.OpenRedis(ctx, storage.RedisOptions{Addr: r.Addr, Password: r.Password, DB: r.DB})
		if err != nil {
			a.logger.Warn("redis unavailable, keeping best scores locally", "error", err)
		} else {
			a.closers = append(a.closers, rkv)
			kv = rkv
		}
	}

	if kv == nil {
		kv = storage.NewMemoryKV()
	}
	a.best = storage.NewBestScores(kv, a.logger)
}

// Close releases the stores.
func (a *app) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i].Close(); err != nil {
			a.logger.Warn("close failed", "error", err)
		}
	}
}

// runtime returns the host settings for the current terminal.
func (a *app) runtime() core.RuntimeConfig {
	rc := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		rc.ScreenW, rc.ScreenH = w, h
	}
	rc.FPS = a.cfg.FPS
	rc.Seed = flagSeed
	return rc
}

// observers returns the lifecycle observers every session gets.
func (a *app) observers() []engine.Observer {
	if a.history == nil {
		return nil
	}
	return []engine.Observer{storage.NewHistory(a.history, a.logger)}
}

// scores returns the history as a scoreboard source, or nil.
func (a *app) scores() tui.ScoreSource {
	if a.history == nil {
		return nil
	}
	return a.history
}

// mount creates sessions for ids and the options to host them.
func (a *app) mount(ids []string) (tui.Options, error) {
	mode, err := tui.ParseThemeMode(flagTheme)
	if err != nil {
		return tui.Options{}, err
	}
	rc := a.runtime()

	sessions, err := tui.MountSessions(ids, engine.Config{
		Store:     a.best,
		Logger:    a.logger,
		Observers: a.observers(),
		Seed:      rc.Seed,
	})
	if err != nil {
		return tui.Options{}, err
	}

	return tui.Options{
		Sessions:       sessions,
		Interval:       rc.FrameInterval(),
		SwipeThreshold: a.cfg.SwipeThreshold,
		Theme:          tui.NewTheme(nil, mode),
		Scores:         a.scores(),
		Best:           a.best,
		Logger:         a.logger,
		Width:          rc.ScreenW,
		Height:         rc.ScreenH,
	}, nil
}

// openLogFile opens ~/.arcade/arcade.log for appending. Interactive
// commands log there because the TUI owns the terminal.
func openLogFile() (io.WriteCloser, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	dir := filepath.Join(home, ".arcade")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	f, err := os.OpenFile(filepath.Join(dir, "arcade.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, err
	}
	return f, nil
}

// interactiveApp sets up an app that logs to the log file, or discards
// logs if the file cannot be opened.
func interactiveApp(ctx context.Context) (*app, error) {
	var out io.Writer = io.Discard
	f, err := openLogFile()
	if err == nil {
		out = f
	}
	a, appErr := newApp(ctx, out)
	if appErr != nil {
		if f != nil {
			f.Close()
		}
		return nil, appErr
	}
	if f != nil {
		a.closers = append([]io.Closer{f}, a.closers...)
	}
	return a, nil
}
