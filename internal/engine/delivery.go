package engine

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"nova-ads/internal/core/domain"
	"nova-ads/internal/core/port"
)

// Delivery is the facade the feed service calls. It composes the gate,
// matcher, frequency tracker, pacer and selector per request and drives
// the recorder for the server-side impression. The whole selection runs
// under a short deadline because it sits on the feed-rendering critical
// path; on deadline exceeded the slot simply stays organic.
type Delivery struct {
	repo     port.AdRepository
	freq     port.FrequencyStore
	gate     *ModerationGate
	matcher  *TargetingMatcher
	pacer    *BudgetPacer
	selector *AdSelector
	recorder *MetricsRecorder
	deadline time.Duration
	logger   *slog.Logger
	now      func() time.Time
}

// DeliveryOptions carry the tunables wired from configuration.
type DeliveryOptions struct {
	Deadline        time.Duration
	Weights         Weights
	RecencyHorizon  time.Duration
	ResolverTimeout time.Duration
	Now             func() time.Time
}

// NewDelivery wires the engine components around the given ports.
func NewDelivery(repo port.AdRepository, freq port.FrequencyStore, resolver port.AudienceResolver, logger *slog.Logger, opts DeliveryOptions) *Delivery {
	if logger == nil {
		logger = slog.Default()
	}
	if opts.Deadline <= 0 {
		opts.Deadline = 50 * time.Millisecond
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &Delivery{
		repo:     repo,
		freq:     freq,
		gate:     NewModerationGate(now),
		matcher:  NewTargetingMatcher(resolver, opts.ResolverTimeout, logger),
		pacer:    NewBudgetPacer(now),
		selector: NewAdSelector(opts.Weights, opts.RecencyHorizon, now),
		recorder: NewMetricsRecorder(repo, freq, logger),
		deadline: opts.Deadline,
		logger:   logger,
		now:      now,
	}
}

// Recorder exposes the recorder the delivery path shares with the event
// ingest endpoint, so both write counters through a single component.
func (d *Delivery) Recorder() *MetricsRecorder {
	return d.recorder
}

// SelectAd narrows the candidate snapshot through the hard filters, scores
// the survivors and records an impression for the winner. A nil decision
// with a nil error means the slot stays organic.
func (d *Delivery) SelectAd(ctx context.Context, viewer domain.ViewerContext, slot domain.SlotContext) (*port.AdDecision, error) {
	if err := validation().Struct(&viewer); err != nil {
		return nil, fmt.Errorf("%w: %v", port.ErrValidation, err)
	}
	ctx, cancel := context.WithTimeout(ctx, d.deadline)
	defer cancel()

	ads, err := d.repo.CandidateAds(ctx)
	if err != nil {
		d.logger.Error("candidate query failed", slog.Any("error", err))
		return nil, nil
	}

	candidates := make([]Candidate, 0, len(ads))
	for i := range ads {
		ad := &ads[i]
		if ctx.Err() != nil {
			d.logger.Warn("selection deadline exceeded", slog.String("viewer_id", viewer.UserID))
			return nil, nil
		}
		if slot.Surface != "" && ad.Placement.Surface != "" && ad.Placement.Surface != slot.Surface {
			continue
		}
		if !d.gate.IsServable(ad) {
			continue
		}
		if !d.matcher.Matches(ctx, &ad.Targeting, &viewer) {
			continue
		}
		if !d.frequencyAllowed(ctx, viewer.UserID, ad) {
			continue
		}
		if !d.pacer.HasBudget(ad) {
			continue
		}
		last, _, lerr := d.freq.LastShown(ctx, viewer.UserID, ad.ID)
		if lerr != nil {
			last = time.Time{}
		}
		candidates = append(candidates, Candidate{
			Ad:        *ad,
			Pacing:    d.pacer.PacingScore(ad),
			LastShown: last,
		})
	}

	winner := d.selector.Select(candidates, slot)
	if winner == nil {
		return nil, nil
	}

	// the impression token doubles as the event id, so replays of the
	// click URL and retried impression posts stay idempotent
	token := uuid.NewString()
	ev := domain.AdEvent{
		EventID:   token,
		Type:      domain.EventImpression,
		AdID:      winner.ID,
		ViewerID:  viewer.UserID,
		Timestamp: d.now().UTC(),
	}
	if err = d.recorder.Record(ctx, ev); err != nil {
		d.logger.Error("impression record failed", slog.Any("error", err), slog.Int64("ad_id", winner.ID))
		return nil, nil
	}

	return &port.AdDecision{
		AdID:         winner.ID,
		Headline:     winner.Creative.Headline,
		Body:         winner.Creative.Body,
		CallToAction: winner.Creative.CallToAction,
		ImageURL:     winner.Creative.ImageURL,
		VideoURL:     winner.Creative.VideoURL,
		ClickURL:     fmt.Sprintf("/api/v1/ad/click/%s", token),
	}, nil
}

// frequencyAllowed reads today's count for the viewer/ad pair. Store
// errors fail safe toward under-delivery.
func (d *Delivery) frequencyAllowed(ctx context.Context, viewerID string, ad *domain.Ad) bool {
	cnt, err := d.freq.Count(ctx, viewerID, ad.ID, d.now())
	if err != nil {
		d.logger.Error("frequency lookup failed", slog.Any("error", err), slog.Int64("ad_id", ad.ID))
		return false
	}
	return cnt < int64(ad.Placement.FrequencyCap)
}

// RegisterClick resolves an impression token, records the click and
// returns the destination URL. The click event id is derived from the
// token so repeated clicks on one impression dedupe to a single charge.
func (d *Delivery) RegisterClick(ctx context.Context, token string) (string, error) {
	if token == "" {
		return "", fmt.Errorf("%w: empty token", port.ErrValidation)
	}
	imp, err := d.repo.FindEvent(ctx, token)
	if err != nil {
		return "", err
	}
	if imp == nil || imp.Type != domain.EventImpression {
		return "", port.ErrNotFound
	}
	ad, err := d.repo.GetAd(ctx, imp.AdID)
	if err != nil {
		return "", err
	}
	ev := domain.AdEvent{
		EventID:   token + ":click",
		Type:      domain.EventClick,
		AdID:      imp.AdID,
		ViewerID:  imp.ViewerID,
		Timestamp: d.now().UTC(),
	}
	if err = d.recorder.Record(ctx, ev); err != nil {
		return "", err
	}
	return ad.Creative.DestinationURL, nil
}

// AdMetrics returns the counters plus derived rates for one ad.
func (d *Delivery) AdMetrics(ctx context.Context, adID int64) (*port.AdMetrics, error) {
	ad, err := d.repo.GetAd(ctx, adID)
	if err != nil {
		return nil, err
	}
	c := ad.Counters
	return &port.AdMetrics{
		AdID:           ad.ID,
		Impressions:    c.Impressions,
		Clicks:         c.Clicks,
		Conversions:    c.Conversions,
		Spend:          c.Spend,
		CTR:            c.CTR(),
		CPC:            c.CPC(),
		CPM:            c.CPM(),
		ConversionRate: c.ConversionRate(),
	}, nil
}

// Stats returns aggregated delivery stats for a period.
func (d *Delivery) Stats(ctx context.Context, req port.StatsReq) (*port.StatsResp, error) {
	return d.repo.Stats(ctx, req)
}

var _ port.DeliveryUseCase = (*Delivery)(nil)
var _ port.EventSink = (*MetricsRecorder)(nil)
