package port

import (
	"context"
	"time"

	"nova-ads/internal/core/domain"
)

// AdRepository is the persistence port for the delivery engine. It is an
// outbound port in hexagonal architecture. Implementations must be
// concurrency-safe; the Apply* methods must deduplicate by event id and
// update counters atomically.
type AdRepository interface {
	// CandidateAds returns a snapshot of ads that pass the coarse SQL-level
	// servability filter (lifecycle active, moderation approved, schedule
	// window open, budget headroom remaining). Fine-grained targeting and
	// frequency checks happen in the engine.
	CandidateAds(ctx context.Context) ([]domain.Ad, error)

	// GetAd returns an ad by id, or ErrNotFound.
	GetAd(ctx context.Context, id int64) (*domain.Ad, error)

	// ApplyImpression records an impression event and increments the ad's
	// impression counter. Returns ErrDuplicateEvent for replayed ids and
	// ErrNotFound for unknown ads.
	ApplyImpression(ctx context.Context, ev domain.AdEvent) error

	// ApplyClick records a click event and increments the click counter.
	// Clicks do not add spend.
	ApplyClick(ctx context.Context, ev domain.AdEvent) error

	// ApplyConversion records a conversion event, increments the conversion
	// counter and atomically adds the attributed cost to spend, capped at
	// the remaining budget headroom. It returns the amount actually
	// charged, which may be less than ev.CostAttributed.
	ApplyConversion(ctx context.Context, ev domain.AdEvent) (int64, error)

	// FindEvent returns a previously recorded event by id, or nil when the
	// id is unknown.
	FindEvent(ctx context.Context, eventID string) (*domain.AdEvent, error)

	// Stats returns aggregated event counts and spend for a period.
	Stats(ctx context.Context, req StatsReq) (*StatsResp, error)
}

// StatsReq selects the period and optional ad or campaign scope for an
// aggregation query.
type StatsReq struct {
	From       time.Time
	To         time.Time
	AdID       *int64
	CampaignID *int64
}

// StatsResp contains aggregated event counts and charged spend for the
// requested scope, in integer currency units.
type StatsResp struct {
	Impressions int64 `json:"impressions"`
	Clicks      int64 `json:"clicks"`
	Conversions int64 `json:"conversions"`
	Spend       int64 `json:"spend"`
}
