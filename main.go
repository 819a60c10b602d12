// Command website serves the Phanterra landing page.
package main

import (
	"log/slog"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"

	"github.com/phanterra/website/internal/config"
	"github.com/phanterra/website/internal/handlers"
	"github.com/phanterra/website/internal/logger"
	"github.com/phanterra/website/internal/metrics"
	"github.com/phanterra/website/internal/server"
)

func main() {
	// Load .env files if present (for local development); .env.local wins over .env
	config.LoadDotEnv(".")

	fx.New(
		fx.WithLogger(func(log *slog.Logger) fxevent.Logger {
			return &fxevent.SlogLogger{Logger: log}
		}),

		config.Module,
		logger.Module,
		metrics.Module,
		handlers.Module,
		server.Module,
	).Run()
}
