// Package logging emits the gateway's JSON structured logs.
package logging

import (
	"io"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with gateway-specific construction.
type Logger struct {
	*slog.Logger
}

// New creates a stdout JSON logger at the given level. Every record carries
// the service name, and the deployment environment when one is set.
func New(level, env string) *Logger {
	return NewWithWriter(os.Stdout, level, env)
}

// NewWithWriter is New with an explicit destination.
func NewWithWriter(w io.Writer, level, env string) *Logger {
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: parseLevel(level),
	})
	logger := slog.New(handler).With("service", "leads-gateway")
	if env != "" {
		logger = logger.With("env", env)
	}
	return &Logger{Logger: logger}
}

// With returns a child logger carrying the extra attributes.
func (l *Logger) With(args ...any) *Logger {
	return &Logger{Logger: l.Logger.With(args...)}
}

// Default returns an info-level logger with no environment attribution.
func Default() *Logger {
	return New("info", "")
}

func parseLevel(level string) slog.Level {
	switch level {
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
