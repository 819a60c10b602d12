package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/phanterra/website/internal/logger"
	"github.com/phanterra/website/internal/version"
)

// Health answers liveness probes.
type Health struct {
	log     *slog.Logger
	startAt time.Time
	now     func() time.Time
}

func NewHealth(log *slog.Logger) *Health {
	return &Health{
		log:     log.With(logger.Scope("health")),
		startAt: time.Now(),
		now:     time.Now,
	}
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status    string              `json:"status"`
	Timestamp string              `json:"timestamp"`
	Uptime    string              `json:"uptime"`
	Version   version.VersionInfo `json:"version"`
}

func (h *Health) Health(w http.ResponseWriter, r *http.Request) {
	now := h.now()
	resp := HealthResponse{
		Status:    "ok",
		Timestamp: now.UTC().Format(time.RFC3339),
		Uptime:    now.Sub(h.startAt).Round(time.Second).String(),
		Version:   version.Info(),
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.log.WarnContext(r.Context(), "write health response", logger.Error(err))
	}
}

// Healthz is the bare liveness probe.
func (h *Health) Healthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}
