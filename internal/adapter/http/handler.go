package httpadapter

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"nova-ads/internal/core/port"
)

// Handler is the inbound HTTP adapter. It holds the delivery usecase, the
// event sink and a logger, and registers all routes on a chi.Router.
type Handler struct {
	svc    port.DeliveryUseCase
	events port.EventSink
	logger *slog.Logger
	router chi.Router
}

// NewHandler creates a handler with all routes configured.
func NewHandler(svc port.DeliveryUseCase, events port.EventSink, logger *slog.Logger) *Handler {
	h := &Handler{svc: svc, events: events, logger: logger}
	r := chi.NewRouter()

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/ad/select", h.handleAdSelect)
		r.Get("/ad/click/{token}", h.handleAdClick)
		r.Post("/events", h.handleEvent)
		r.Get("/ads/{id}/metrics", h.handleAdMetrics)
		r.Get("/stats/overview", h.handleStatsOverview)
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}
