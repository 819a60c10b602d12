package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/klauspost/compress/gzhttp"
	"go.uber.org/fx"

	"github.com/phanterra/website/internal/config"
	"github.com/phanterra/website/internal/handlers"
	"github.com/phanterra/website/internal/logger"
	"github.com/phanterra/website/internal/metrics"
	"github.com/phanterra/website/internal/version"
	"github.com/phanterra/website/static"
)

var Module = fx.Module("server",
	fx.Provide(NewRouter),
	fx.Invoke(StartServer),
)

// RouterParams are the dependencies for building the router.
type RouterParams struct {
	fx.In

	Config  *config.Config
	Log     *slog.Logger
	Metrics *metrics.Metrics
	Pages   *handlers.Pages
	Health  *handlers.Health
}

// NewRouter wires routes and middleware. The returned handler gzips responses
// for clients that accept it.
func NewRouter(p RouterParams) http.Handler {
	log := p.Log.With(logger.Scope("http"))

	r := chi.NewRouter()
	r.Use(
		middleware.RequestID,
		middleware.RealIP,
		RequestLogger(log),
		Instrument(p.Metrics),
		Recoverer(log),
		middleware.GetHead,
	)

	r.Get("/", p.Pages.Home)
	r.Get("/health", p.Health.Health)
	r.Get("/healthz", p.Health.Healthz)
	if p.Config.MetricsEnabled {
		r.Method(http.MethodGet, "/metrics", p.Metrics.Handler())
	}
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(static.FS))))
	r.NotFound(p.Pages.NotFound)

	return gzhttp.GzipHandler(r)
}

// StartServer binds the HTTP server to the fx lifecycle.
func StartServer(lc fx.Lifecycle, h http.Handler, cfg *config.Config, log *slog.Logger) {
	log = log.With(logger.Scope("server"))

	server := &http.Server{
		Addr:         cfg.ListenAddr(),
		Handler:      h,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info("starting HTTP server",
				slog.String("address", server.Addr),
				slog.String("environment", cfg.Environment),
				slog.String("version", version.Info().String()),
			)

			go func() {
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Error("server error", logger.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("shutting down HTTP server")

			shutdownCtx, cancel := context.WithTimeout(ctx, cfg.ShutdownTimeout)
			defer cancel()

			return server.Shutdown(shutdownCtx)
		},
	})
}
