// Package logger configures process-wide structured logging on top of
// log/slog and exposes per-component child loggers used across the bot.
package logger

import (
	"errors"
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Options control the global logger initialization.
type Options struct {
	Level  string
	Format string
	Dir    string
	File   string
	// Profile selects human-friendly defaults when set to "debug" or "dev".
	Profile string
}

var (
	initOnce   sync.Once
	shutdownMu sync.Mutex
	shutdowned bool
	logClosers []io.Closer

	levelVar slog.LevelVar

	// L is the base logger shared by all components.
	L *slog.Logger

	// DB logs database connection events.
	DB *slog.Logger
	// MIG logs schema migration events.
	MIG *slog.Logger
	// TG logs Telegram transport events.
	TG *slog.Logger
	// FSM logs dialogue engine transitions.
	FSM *slog.Logger
	// Catalog logs repository activity.
	Catalog *slog.Logger
)

func init() {
	// Safe defaults so component loggers work before Init is called (tests).
	wireComponents(slog.Default())
}

// Init configures the global structured logger. It may be called only once;
// subsequent calls are no-ops.
func Init(opts Options) error {
	var initErr error
	initOnce.Do(func() {
		levelVar.Set(selectLevel(opts.Level))

		writers, closers, err := buildOutputs(opts)
		if err != nil {
			initErr = err
			return
		}
		logClosers = closers
		out := io.MultiWriter(writers...)

		var handler slog.Handler
		if selectFormat(opts) == "text" {
			handler = slog.NewTextHandler(out, &slog.HandlerOptions{Level: &levelVar})
		} else {
			handler = slog.NewJSONHandler(out, &slog.HandlerOptions{Level: &levelVar})
		}

		base := slog.New(handler)
		slog.SetDefault(base)
		wireComponents(base)
	})
	return initErr
}

func wireComponents(base *slog.Logger) {
	L = base
	DB = base.With("component", "db")
	MIG = base.With("component", "db.migrate")
	TG = base.With("component", "tg")
	FSM = base.With("component", "dialog.fsm")
	Catalog = base.With("component", "catalog")
}

// Shutdown closes any opened log sinks.
func Shutdown() error {
	shutdownMu.Lock()
	defer shutdownMu.Unlock()
	if shutdowned {
		return nil
	}
	shutdowned = true

	var errs []error
	for _, c := range logClosers {
		if err := c.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func selectLevel(raw string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func selectFormat(opts Options) string {
	switch strings.ToLower(strings.TrimSpace(opts.Format)) {
	case "text", "kv", "pretty":
		return "text"
	case "json":
		return "json"
	}
	// Prefer human-friendly output when the profile indicates dev mode.
	if strings.EqualFold(opts.Profile, "debug") || strings.EqualFold(opts.Profile, "dev") {
		return "text"
	}
	return "json"
}

func buildOutputs(opts Options) ([]io.Writer, []io.Closer, error) {
	writers := []io.Writer{os.Stdout}
	var closers []io.Closer

	dir := strings.TrimSpace(opts.Dir)
	file := strings.TrimSpace(opts.File)
	if dir != "" && file != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			log.Printf("logger: failed to create log dir %s: %v", dir, err)
		} else {
			path := filepath.Join(dir, file)
			f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
			if err != nil {
				log.Printf("logger: failed to open log file %s: %v", path, err)
			} else {
				writers = append(writers, f)
				closers = append(closers, f)
			}
		}
	}
	return writers, closers, nil
}
