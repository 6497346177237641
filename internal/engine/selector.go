package engine

import (
	"time"

	"nova-ads/internal/core/domain"
)

// Weights are the injectable scoring coefficients for the selector. They
// are configuration, not business logic baked into the algorithm.
type Weights struct {
	Bid     float64
	Pacing  float64
	Recency float64
}

// DefaultWeights are used when configuration provides none.
var DefaultWeights = Weights{Bid: 0.6, Pacing: 0.3, Recency: 0.1}

// Candidate is an ad that survived the gate, targeting, frequency and
// budget filters, annotated with the soft signals the selector scores on.
type Candidate struct {
	Ad        domain.Ad
	Pacing    float64
	LastShown time.Time // zero when the viewer never saw the ad
	score     float64
}

// AdSelector scores candidates for a single slot and picks one winner.
// score = wBid*normalizedBid + wPacing*pacingScore + wRecency*recencyPenalty
// where recencyPenalty is in [-1,0] and decays to zero as the last exposure
// ages past the horizon. Ties break on bid, then fewer lifetime
// impressions, then smallest id, so selection is deterministic.
type AdSelector struct {
	weights Weights
	horizon time.Duration
	now     func() time.Time
}

// NewAdSelector builds a selector. Zero weights fall back to
// DefaultWeights; a non-positive horizon defaults to one hour.
func NewAdSelector(w Weights, recencyHorizon time.Duration, now func() time.Time) *AdSelector {
	if w == (Weights{}) {
		w = DefaultWeights
	}
	if recencyHorizon <= 0 {
		recencyHorizon = time.Hour
	}
	if now == nil {
		now = time.Now
	}
	return &AdSelector{weights: w, horizon: recencyHorizon, now: now}
}

// Select returns the highest-scoring candidate, or nil when there are
// none. It serves exactly one slot per call.
func (s *AdSelector) Select(candidates []Candidate, _ domain.SlotContext) *domain.Ad {
	if len(candidates) == 0 {
		return nil
	}
	maxBid := int64(0)
	for i := range candidates {
		if candidates[i].Ad.BidAmount > maxBid {
			maxBid = candidates[i].Ad.BidAmount
		}
	}
	now := s.now()
	best := -1
	for i := range candidates {
		c := &candidates[i]
		normBid := 0.0
		if maxBid > 0 {
			normBid = float64(c.Ad.BidAmount) / float64(maxBid)
		}
		c.score = s.weights.Bid*normBid +
			s.weights.Pacing*c.Pacing +
			s.weights.Recency*s.recencyPenalty(c.LastShown, now)
		if best < 0 || s.beats(c, &candidates[best]) {
			best = i
		}
	}
	return &candidates[best].Ad
}

// recencyPenalty is a soft anti-fatigue signal, distinct from the hard
// frequency cap: an ad shown moments ago scores -1 and the penalty fades
// linearly to 0 at the horizon.
func (s *AdSelector) recencyPenalty(lastShown time.Time, now time.Time) float64 {
	if lastShown.IsZero() {
		return 0
	}
	age := now.Sub(lastShown)
	if age >= s.horizon || age < 0 {
		return 0
	}
	return -(1 - float64(age)/float64(s.horizon))
}

// beats implements the score comparison with deterministic tie-breaks.
func (s *AdSelector) beats(a, b *Candidate) bool {
	const eps = 1e-9
	if d := a.score - b.score; d > eps || d < -eps {
		return d > 0
	}
	if a.Ad.BidAmount != b.Ad.BidAmount {
		return a.Ad.BidAmount > b.Ad.BidAmount
	}
	if a.Ad.Counters.Impressions != b.Ad.Counters.Impressions {
		return a.Ad.Counters.Impressions < b.Ad.Counters.Impressions
	}
	return a.Ad.ID < b.Ad.ID
}
