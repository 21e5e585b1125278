// Package logger builds slog loggers from nmtkit's logging configuration.
package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/nmtkit/nmtkit/pkg/config"
)

// New creates a slog.Logger writing to w with the configured level and
// format. Invalid values default to Info level and text format.
func New(w io.Writer, cfg *config.LogConfig) *slog.Logger {
	return slog.New(NewHandler(w, cfg))
}

// NewHandler creates the slog.Handler matching the configuration.
func NewHandler(w io.Writer, cfg *config.LogConfig) slog.Handler {
	if w == nil {
		w = os.Stderr
	}
	opts := &slog.HandlerOptions{Level: ParseLevel(cfg.Level)}
	if strings.ToLower(cfg.Format) == "json" {
		return slog.NewJSONHandler(w, opts)
	}
	return slog.NewTextHandler(w, opts)
}

// ParseLevel converts a string log level to slog.Level.
// Valid levels: "debug", "info", "warn", "error" (case-insensitive).
// Invalid levels default to Info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info", "":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
