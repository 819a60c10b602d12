package handlers

import (
	"log/slog"
	"net/http"

	g "maragu.dev/gomponents"

	"github.com/phanterra/website/internal/components"
	"github.com/phanterra/website/internal/config"
	"github.com/phanterra/website/internal/logger"
	"github.com/phanterra/website/internal/metrics"
)

// Pages serves the HTML pages of the site.
type Pages struct {
	log     *slog.Logger
	metrics *metrics.Metrics
	baseURL string
}

func NewPages(cfg *config.Config, log *slog.Logger, m *metrics.Metrics) *Pages {
	return &Pages{
		log:     log.With(logger.Scope("pages")),
		metrics: m,
		baseURL: cfg.BaseURL,
	}
}

func (p *Pages) Home(w http.ResponseWriter, r *http.Request) {
	page := components.HomePage(components.PageConfig{URL: p.baseURL + "/"})
	p.render(w, r, "home", http.StatusOK, page)
}

func (p *Pages) NotFound(w http.ResponseWriter, r *http.Request) {
	p.render(w, r, "not_found", http.StatusNotFound, components.NotFoundPage(r.URL.Path))
}

func (p *Pages) render(w http.ResponseWriter, r *http.Request, name string, status int, page g.Node) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)

	p.metrics.PageRenders.WithLabelValues(name).Inc()
	if err := page.Render(w); err != nil {
		p.metrics.RenderErrors.WithLabelValues(name).Inc()
		p.log.WarnContext(r.Context(), "page render failed",
			slog.String("page", name),
			slog.String("path", r.URL.Path),
			logger.Error(err),
		)
	}
}
