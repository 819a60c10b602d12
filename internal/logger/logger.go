// Package logger builds the process-wide slog logger and a few attribute helpers
// so log lines share the same keys across packages.
package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"go.uber.org/fx"

	"github.com/phanterra/website/internal/config"
)

var Module = fx.Module("logger",
	fx.Provide(NewFromConfig),
)

// NewLogger builds a logger from LOG_LEVEL and GO_ENV.
func NewLogger() *slog.Logger {
	return New(os.Stdout, os.Getenv("LOG_LEVEL"), os.Getenv("GO_ENV"))
}

// NewFromConfig builds a logger from the loaded configuration.
func NewFromConfig(cfg *config.Config) *slog.Logger {
	return New(os.Stdout, cfg.LogLevel, cfg.Environment)
}

// New returns a text logger, or a JSON logger when environment is "production".
func New(w io.Writer, level, environment string) *slog.Logger {
	opts := &slog.HandlerOptions{Level: ParseLevel(level)}

	var h slog.Handler
	if strings.EqualFold(environment, "production") {
		h = slog.NewJSONHandler(w, opts)
	} else {
		h = slog.NewTextHandler(w, opts)
	}
	return slog.New(h)
}

// ParseLevel maps a level name to a slog.Level. Unknown names fall back to info.
func ParseLevel(level string) slog.Level {
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

// Scope tags log lines with the subsystem that emitted them.
func Scope(scope string) slog.Attr {
	return slog.String("scope", scope)
}

// Error attaches err under the "error" key.
func Error(err error) slog.Attr {
	return slog.Any("error", err)
}
