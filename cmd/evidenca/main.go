package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/erazemk/evidenca/internal/api"
	"github.com/erazemk/evidenca/internal/config"
	"github.com/erazemk/evidenca/internal/db"
	"github.com/erazemk/evidenca/internal/store"
)

// levelRouter is a slog.Handler that routes INFO/WARN to stdout and ERROR+ to stderr.
type levelRouter struct {
	stdout slog.Handler
	stderr slog.Handler
}

func (lr *levelRouter) Enabled(_ context.Context, level slog.Level) bool {
	return level >= slog.LevelInfo
}

func (lr *levelRouter) Handle(ctx context.Context, r slog.Record) error {
	if r.Level >= slog.LevelError {
		return lr.stderr.Handle(ctx, r)
	}
	return lr.stdout.Handle(ctx, r)
}

func (lr *levelRouter) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &levelRouter{
		stdout: lr.stdout.WithAttrs(attrs),
		stderr: lr.stderr.WithAttrs(attrs),
	}
}

func (lr *levelRouter) WithGroup(name string) slog.Handler {
	return &levelRouter{
		stdout: lr.stdout.WithGroup(name),
		stderr: lr.stderr.WithGroup(name),
	}
}

// setupLogger configures structured logging. INFO/WARN go to stdout, ERROR goes
// to stderr. If logPath is non-empty, all levels are also written to that file.
// Returns a cleanup function that closes the log file (if opened).
func setupLogger(stdout, stderr io.Writer, logPath string) (func(), error) {
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}

	cleanup := func() {}

	if logPath != "" {
		f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, fmt.Errorf("opening log file: %w", err)
		}
		cleanup = func() { f.Close() }
		stdout = io.MultiWriter(stdout, f)
		stderr = io.MultiWriter(stderr, f)
	}

	handler := &levelRouter{
		stdout: slog.NewTextHandler(stdout, opts),
		stderr: slog.NewTextHandler(stderr, opts),
	}
	slog.SetDefault(slog.New(handler))
	return cleanup, nil
}

// flags holds command-line overrides. Empty values leave the config untouched.
type flags struct {
	configPath string
	dbURI      string
	addr       string
	logPath    string
}

func parseFlags(args []string) (*flags, error) {
	fs := flag.NewFlagSet("evidenca", flag.ContinueOnError)

	var f flags
	fs.StringVar(&f.configPath, "config", "", "")
	fs.StringVar(&f.configPath, "c", "", "")
	fs.StringVar(&f.dbURI, "db", "", "")
	fs.StringVar(&f.dbURI, "d", "", "")
	fs.StringVar(&f.addr, "addr", "", "")
	fs.StringVar(&f.addr, "a", "", "")
	fs.StringVar(&f.logPath, "log", "", "")
	fs.StringVar(&f.logPath, "l", "", "")

	fs.Usage = func() {
		fmt.Fprint(os.Stdout, `Usage: evidenca [flags]

Flags:
  -c, -config <path>      YAML config file (default: none)
  -d, -db <uri>           SQLite path or postgres:// URL (default: evidenca.sqlite3)
  -a, -addr <host:port>   listen address (default: :8080)
  -l, -log <path>         log file path (default: no file, stdout/stderr only)
  -h, -help               show this help and exit

Environment:
  DATABASE_URI, LISTEN_ADDR, JWT_SECRET, LOG_PATH, RATE_LIMIT_RPS, RATE_LIMIT_BURST
  (also read from ./.env)
`)
	}

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		fs.Usage()
		return nil, fmt.Errorf("unexpected argument: %s", fs.Arg(0))
	}
	return &f, nil
}

// apply overlays the flags that were set onto cfg.
func (f *flags) apply(cfg *config.Config) {
	if f.dbURI != "" {
		cfg.DatabaseURI = f.dbURI
	}
	if f.addr != "" {
		cfg.Addr = f.addr
	}
	if f.logPath != "" {
		cfg.LogPath = f.logPath
	}
}

func main() {
	f, err := parseFlags(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	cfg, err := config.Load(f.configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	f.apply(cfg)

	// Set up structured logging: INFO/WARN → stdout, ERROR → stderr.
	// Optionally also write to a log file.
	closeLog, err := setupLogger(os.Stdout, os.Stderr, cfg.LogPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	if err := run(cfg); err != nil {
		slog.Error("fatal", "error", err)
		closeLog()
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	slog.Info("starting", "config", cfg.String())

	database, err := db.Open(cfg.DatabaseURI)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Ensure schema and indexes exist (idempotent).
	if err := db.Migrate(database); err != nil {
		return fmt.Errorf("migrating database: %w", err)
	}
	slog.Info("database ready", "driver", database.DriverName())

	// Use the configured JWT secret, or the one generated on first run.
	jwtSecret := cfg.JWTSecret
	if jwtSecret == "" {
		jwtSecret, err = store.GetJWTSecret(context.Background(), database)
		if err != nil {
			return fmt.Errorf("getting JWT secret: %w", err)
		}
	}

	var opts api.Options
	if cfg.RateLimit.RPS > 0 {
		opts.Limiter = api.NewRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst)
	}

	server := &http.Server{
		Addr:              cfg.Addr,
		Handler:           api.NewRouter(database, jwtSecret, opts),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	// Graceful shutdown on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server started", "addr", cfg.Addr)
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
	case <-ctx.Done():
		slog.Info("shutdown signal received")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Error("server forced to shutdown", "error", err)
		}
	}

	slog.Info("server stopped, closing database")
	return nil
}
