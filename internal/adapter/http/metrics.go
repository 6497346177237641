package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"nova-ads/internal/core/port"
)

// handleAdMetrics returns one ad's counters and derived rates. Invalid ids
// produce HTTP 400, unknown ads HTTP 404.
func (h *Handler) handleAdMetrics(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid ad id", http.StatusBadRequest)
		return
	}
	metrics, err := h.svc.AdMetrics(r.Context(), id)
	if err != nil {
		if errors.Is(err, port.ErrNotFound) {
			http.NotFound(w, r)
			return
		}
		h.logger.Error("ad metrics error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if err = json.NewEncoder(w).Encode(metrics); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}
