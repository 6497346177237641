package port

import (
	"context"

	"nova-ads/internal/core/domain"
)

// DeliveryUseCase is the primary port the feed service calls. Mock
// implementations can be generated from this interface for testing.
type DeliveryUseCase interface {
	// SelectAd picks the winning ad for one feed slot, records a
	// server-side impression and returns the creative payload. It returns
	// nil when no ad is eligible; internal filter outcomes (cap reached,
	// budget exhausted, deadline hit) are never surfaced as errors.
	SelectAd(ctx context.Context, viewer domain.ViewerContext, slot domain.SlotContext) (*AdDecision, error)

	// RegisterClick resolves an impression token to its ad, records a click
	// event and returns the destination URL for redirection. Duplicate
	// clicks on the same token are idempotent and return the same URL.
	RegisterClick(ctx context.Context, token string) (string, error)

	// AdMetrics returns an ad's counters and derived rates.
	AdMetrics(ctx context.Context, adID int64) (*AdMetrics, error)

	// Stats returns aggregated delivery stats for a period.
	Stats(ctx context.Context, req StatsReq) (*StatsResp, error)
}

// EventSink accepts delivery events reported by clients.
type EventSink interface {
	// Record processes one event exactly once per event id. It returns an
	// error wrapping ErrValidation for malformed input; data-quality
	// problems such as unknown ad ids are logged and dropped.
	Record(ctx context.Context, ev domain.AdEvent) error
}

// AdDecision is the creative payload returned to the feed service. It is a
// DTO for the HTTP layer and carries no domain behaviour.
type AdDecision struct {
	AdID         int64  `json:"ad_id"`
	Headline     string `json:"headline"`
	Body         string `json:"body,omitempty"`
	CallToAction string `json:"call_to_action,omitempty"`
	ImageURL     string `json:"image_url,omitempty"`
	VideoURL     string `json:"video_url,omitempty"`
	ClickURL     string `json:"click_url"`
}

// AdMetrics exposes the read-only counters plus derived rates for one ad.
// Rates are 0 when their denominator is 0.
type AdMetrics struct {
	AdID           int64   `json:"ad_id"`
	Impressions    int64   `json:"impressions"`
	Clicks         int64   `json:"clicks"`
	Conversions    int64   `json:"conversions"`
	Spend          int64   `json:"spend"`
	CTR            float64 `json:"ctr"`
	CPC            float64 `json:"cpc"`
	CPM            float64 `json:"cpm"`
	ConversionRate float64 `json:"conversion_rate"`
}
