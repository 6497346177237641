package httpadapter

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"nova-ads/internal/core/port"
)

// handleAdClick handles click redirects and records click events. It
// expects a {token} path parameter bound by the router. On success it
// redirects to the ad's destination URL. Missing tokens produce HTTP 400,
// unknown tokens HTTP 404. Internal errors are logged and also answered
// with 404.
func (h *Handler) handleAdClick(w http.ResponseWriter, r *http.Request) {
	token := chi.URLParam(r, "token")
	if token == "" {
		http.Error(w, "missing token", http.StatusBadRequest)
		return
	}
	destination, err := h.svc.RegisterClick(r.Context(), token)
	if err != nil {
		if !errors.Is(err, port.ErrNotFound) {
			h.logger.Error("click error", slog.Any("error", err))
		}
		http.NotFound(w, r)
		return
	}
	http.Redirect(w, r, destination, http.StatusFound)
}
