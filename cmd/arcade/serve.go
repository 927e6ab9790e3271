package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/pocket-arcade/internal/metrics"
	"github.com/vovakirdan/pocket-arcade/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHTTPAddr    string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the arcade SSH server",
	Long: `Start an SSH server that allows users to connect and play games.

Each SSH connection gets its own arcade with every game mounted. Best
scores are shared by all players of the server. With --http, a status
server exposes /healthz, /metrics and a small read-only score API.

Settings can also come from the environment or a .env file:
  ARCADE_SSH_ADDR, ARCADE_HTTP_ADDR, ARCADE_REDIS_ADDR, ARCADE_DB
Flags win over the environment.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.arcade/host_key

Examples:
  arcade serve                           # Listen on :23234 with auto-generated key
  arcade serve --ssh :2222               # Listen on port 2222
  arcade serve --http :8080              # Also serve status and metrics
  arcade serve --redis localhost:6379    # Share best scores through Redis

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHTTPAddr, "http", "", "HTTP status server address (empty = disabled)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting (0 = default)")
}

// envFlags maps environment variables onto flags the user did not set.
var envFlags = []struct {
	env  string
	flag string
}{
	{"ARCADE_SSH_ADDR", "ssh"},
	{"ARCADE_HTTP_ADDR", "http"},
	{"ARCADE_REDIS_ADDR", "redis"},
	{"ARCADE_DB", "db"},
}

func applyEnv(flags *pflag.FlagSet) error {
	for _, ef := range envFlags {
		f := flags.Lookup(ef.flag)
		if f == nil || f.Changed {
			continue
		}
		if v, ok := os.LookupEnv(ef.env); ok && v != "" {
			if err := f.Value.Set(v); err != nil {
				return err
			}
		}
	}
	return nil
}

// loadEnvFile loads .env files into the environment. A missing file is
// not an error.
func loadEnvFile(filenames ...string) error {
	if err := godotenv.Load(filenames...); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

func runServe(cmd *cobra.Command, _ []string) error {
	envErr := loadEnvFile()
	if err := applyEnv(cmd.Flags()); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a, err := newApp(ctx, os.Stderr)
	if err != nil {
		return err
	}
	defer a.Close()
	if envErr != nil {
		a.logger.Warn("ignoring .env", "error", envErr)
	}

	mode, err := tui.ParseThemeMode(flagTheme)
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	m := metrics.New(reg)
	backend := tui.Backend{
		Best:      a.best,
		Scores:    a.scores(),
		Observers: append(a.observers(), m),
		Metrics:   m,
	}

	rc := a.runtime()
	sshCfg := tui.DefaultSSHServerConfig()
	if flagSSHAddr != "" {
		sshCfg.Address = flagSSHAddr
	}
	if flagIdleTimeout > 0 {
		sshCfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	}
	sshCfg.HostKeyPath = flagHostKey
	sshCfg.Interval = rc.FrameInterval()
	sshCfg.SwipeThreshold = a.cfg.SwipeThreshold
	sshCfg.Theme = mode

	sshSrv, err := tui.NewSSHServer(sshCfg, backend, a.logger)
	if err != nil {
		return err
	}

	a.logger.Info("arcade server ready", "ssh", sshSrv.Addr(), "http", flagHTTPAddr)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return sshSrv.ListenAndServe(ctx)
	})
	if flagHTTPAddr != "" {
		web := tui.NewHTTPServer(flagHTTPAddr, backend, reg, a.logger)
		g.Go(func() error {
			return web.ListenAndServe(ctx)
		})
	}

	err = g.Wait()
	a.logger.Info("arcade server stopped")
	return err
}
