package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"nova-ads/internal/core/domain"
	"nova-ads/internal/core/port"
)

// selectRequest is the body the feed service posts for one ad-eligible
// slot.
type selectRequest struct {
	Viewer domain.ViewerContext `json:"viewer"`
	Slot   domain.SlotContext   `json:"slot"`
}

// handleAdSelect fills one feed slot. It returns the creative payload as
// JSON, HTTP 204 when no ad is eligible, HTTP 400 on a malformed viewer
// context and HTTP 500 on internal errors.
func (h *Handler) handleAdSelect(w http.ResponseWriter, r *http.Request) {
	var req selectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	decision, err := h.svc.SelectAd(r.Context(), req.Viewer, req.Slot)
	if err != nil {
		if errors.Is(err, port.ErrValidation) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		h.logger.Error("select ad error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	if decision == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if err = json.NewEncoder(w).Encode(decision); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}
