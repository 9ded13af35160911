// Package logging configures the process-wide slog logger.
//
// Logs always go to stderr; stdout is reserved for the recommendation
// itself so it can be piped or captured verbatim.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/hypha/chaos-agent/pkg/defaults"
)

// Options controls logger construction.
type Options struct {
	// Name is attached to every record as the "module" attribute.
	Name string
	// Version is attached to every record as the "version" attribute.
	Version string
	// Debug forces debug level regardless of Level.
	Debug bool
	// JSON selects the JSON handler instead of the text handler.
	JSON bool
	// Level is one of debug, info, warn, error. Empty means LOG_LEVEL or info.
	Level string
}

// ParseLogLevel converts a level name into a slog.Level.
// Unknown values resolve to info.
func ParseLogLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
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

// NewLogger builds a logger writing to w.
func NewLogger(w io.Writer, opts Options) *slog.Logger {
	levelName := opts.Level
	if levelName == "" {
		levelName = os.Getenv(defaults.EnvLogLevel)
	}
	level := ParseLogLevel(levelName)
	if opts.Debug {
		level = slog.LevelDebug
	}

	handlerOpts := &slog.HandlerOptions{
		Level:     level,
		AddSource: level == slog.LevelDebug,
	}

	var handler slog.Handler
	if opts.JSON {
		handler = slog.NewJSONHandler(w, handlerOpts)
	} else {
		handler = slog.NewTextHandler(w, handlerOpts)
	}

	return slog.New(handler).With(
		slog.String("module", opts.Name),
		slog.String("version", opts.Version),
	)
}

// SetDefaultLogger installs a logger writing to w as the slog default.
// A nil w means os.Stderr.
func SetDefaultLogger(w io.Writer, opts Options) {
	if w == nil {
		w = os.Stderr
	}
	slog.SetDefault(NewLogger(w, opts))
}
