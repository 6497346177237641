package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"nova-ads/internal/core/domain"
	"nova-ads/internal/core/port"
)

// MetricsRecorder is the single writer of impression/click/conversion
// counters and spend. Every event is validated, resolved to a known ad and
// deduplicated by event id before any counter moves, so replaying an event
// is a no-op. Spend updates are conditional in the repository: a
// conversion racing for the last bit of budget is charged only the
// remaining headroom, which keeps spend <= budget under concurrency.
type MetricsRecorder struct {
	repo   port.AdRepository
	freq   port.FrequencyStore
	logger *slog.Logger
}

// NewMetricsRecorder builds a recorder.
func NewMetricsRecorder(repo port.AdRepository, freq port.FrequencyStore, logger *slog.Logger) *MetricsRecorder {
	if logger == nil {
		logger = slog.Default()
	}
	return &MetricsRecorder{repo: repo, freq: freq, logger: logger}
}

// Record processes one delivery event. Malformed events return an error
// wrapping port.ErrValidation; events for unknown ads are logged and
// dropped; duplicate event ids succeed without side effects.
func (r *MetricsRecorder) Record(ctx context.Context, ev domain.AdEvent) error {
	if err := validation().Struct(&ev); err != nil {
		return fmt.Errorf("%w: %v", port.ErrValidation, err)
	}
	if ev.Timestamp.IsZero() {
		ev.Timestamp = time.Now().UTC()
	}

	ad, err := r.repo.GetAd(ctx, ev.AdID)
	if err != nil {
		if errors.Is(err, port.ErrNotFound) {
			// data-quality drop, never fatal to the producer
			r.logger.Warn("event for unknown ad dropped",
				slog.String("event_id", ev.EventID), slog.Int64("ad_id", ev.AdID))
			return nil
		}
		return err
	}

	switch ev.Type {
	case domain.EventImpression:
		return r.recordImpression(ctx, ad, ev)
	case domain.EventClick:
		return r.recordClick(ctx, ev)
	case domain.EventConversion:
		return r.recordConversion(ctx, ev)
	default:
		return fmt.Errorf("%w: unknown type %q", port.ErrValidation, ev.Type)
	}
}

func (r *MetricsRecorder) recordImpression(ctx context.Context, ad *domain.Ad, ev domain.AdEvent) error {
	err := r.repo.ApplyImpression(ctx, ev)
	if errors.Is(err, port.ErrDuplicateEvent) {
		return nil
	}
	if err != nil {
		return err
	}
	// frequency bookkeeping happens only for first-time events
	if err = r.freq.Increment(ctx, ev.ViewerID, ev.AdID, ad.Placement.FrequencyCap, ev.Timestamp); err != nil {
		if errors.Is(err, port.ErrCapExceeded) {
			// the atomic compare-and-increment held the cap; the slot race
			// was lost but the day counter stays exact
			r.logger.Debug("impression beyond frequency cap",
				slog.String("viewer_id", ev.ViewerID), slog.Int64("ad_id", ev.AdID))
		} else {
			r.logger.Error("frequency increment failed", slog.Any("error", err))
		}
	}
	if err = r.freq.TouchShown(ctx, ev.ViewerID, ev.AdID, ev.Timestamp); err != nil {
		r.logger.Error("recency update failed", slog.Any("error", err))
	}
	return nil
}

func (r *MetricsRecorder) recordClick(ctx context.Context, ev domain.AdEvent) error {
	err := r.repo.ApplyClick(ctx, ev)
	if errors.Is(err, port.ErrDuplicateEvent) {
		return nil
	}
	return err
}

func (r *MetricsRecorder) recordConversion(ctx context.Context, ev domain.AdEvent) error {
	charged, err := r.repo.ApplyConversion(ctx, ev)
	if errors.Is(err, port.ErrDuplicateEvent) {
		return nil
	}
	if err != nil {
		return err
	}
	if charged < ev.CostAttributed {
		r.logger.Info("conversion charge capped at remaining budget",
			slog.String("event_id", ev.EventID),
			slog.Int64("ad_id", ev.AdID),
			slog.Int64("attributed", ev.CostAttributed),
			slog.Int64("charged", charged))
	}
	return nil
}
