// Package logging configures the default structured logger.
package logging

import (
	"io"
	"log/slog"
	"os"

	"github.com/govalues/decimal96/internal/config"
)

// Setup installs a text logger writing to stderr as the default logger.
// Unknown levels fall back to info.
func Setup(cfg config.Options) {
	SetupWriter(os.Stderr, cfg)
}

// SetupWriter is like [Setup] but writes to w.
func SetupWriter(w io.Writer, cfg config.Options) {
	logger := slog.New(
		slog.NewTextHandler(w, &slog.HandlerOptions{Level: Level(cfg.LogLevel)}),
	)
	slog.SetDefault(logger)
}

// Level maps the name of a log level to an slog level.
func Level(name string) slog.Level {
	switch name {
	case "error":
		return slog.LevelError
	case "warn":
		return slog.LevelWarn
	case "debug":
		return slog.LevelDebug
	}
	return slog.LevelInfo
}
