// Package logging builds the structured slog.Logger used across the
// engine and its entrypoint, matching the teacher's slog-based logging
// (server.Config.Log) while adding the human/JSON mode switch operators
// expect from a long-running service.
package logging

import (
	"io"
	"log/slog"
	"os"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
)

// Config controls how New builds its logger.
type Config struct {
	// Level is the minimum level logged: "debug", "info", "warn", or
	// "error". Empty defaults to "info".
	Level string
	// JSON forces structured JSON output even when stdout is a terminal.
	// Left false, output is text when stdout is a TTY and JSON otherwise
	// (the teacher's console logging distinguishes the same way between
	// an interactive session and a redirected one).
	JSON bool
	// Output overrides the log destination. Defaults to os.Stdout wrapped
	// for ANSI colour support on Windows consoles via go-colorable.
	Output io.Writer
}

// New builds a slog.Logger per cfg. A zero Config produces sensible
// defaults: info level, human-readable text on a TTY, colour-safe via
// go-colorable, and go-isatty deciding whether colour escapes are safe to
// emit at all.
func New(cfg Config) *slog.Logger {
	level := parseLevel(cfg.Level)
	out := cfg.Output
	if out == nil {
		out = colorable.NewColorableStdout()
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	switch {
	case cfg.JSON:
		handler = slog.NewJSONHandler(out, opts)
	case isatty.IsTerminal(os.Stdout.Fd()):
		handler = slog.NewTextHandler(out, opts)
	default:
		handler = slog.NewJSONHandler(out, opts)
	}
	return slog.New(handler)
}

func parseLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// WithTick returns a logger annotated with the current simulation tick, the
// one piece of context nearly every engine log line needs.
func WithTick(log *slog.Logger, tick uint64) *slog.Logger {
	return log.With(slog.Uint64("tick", tick))
}
