package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"nova-ads/internal/core/domain"
	"nova-ads/internal/core/port"
)

// handleEvent ingests one impression/click/conversion event. Accepted or
// deduplicated events return HTTP 202; validation failures return HTTP
// 400. Unknown ad ids are dropped inside the recorder and still return
// 202 so clients never retry data-quality problems.
func (h *Handler) handleEvent(w http.ResponseWriter, r *http.Request) {
	var ev domain.AdEvent
	if err := json.NewDecoder(r.Body).Decode(&ev); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if err := h.events.Record(r.Context(), ev); err != nil {
		if errors.Is(err, port.ErrValidation) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		h.logger.Error("record event error", slog.Any("error", err), slog.String("event_id", ev.EventID))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusAccepted)
}
