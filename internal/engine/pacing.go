package engine

import (
	"time"

	"nova-ads/internal/core/domain"
)

// BudgetPacer gates on budget headroom and scores how far an ad is behind
// an even spend rate across its schedule window. HasBudget is a hard
// filter; PacingScore only feeds ranking so that budget is neither
// front-loaded nor abandoned early in the window.
type BudgetPacer struct {
	now func() time.Time
}

// NewBudgetPacer builds a pacer. A nil clock defaults to time.Now.
func NewBudgetPacer(now func() time.Time) *BudgetPacer {
	if now == nil {
		now = time.Now
	}
	return &BudgetPacer{now: now}
}

// HasBudget reports whether the ad still has unspent budget.
func (p *BudgetPacer) HasBudget(ad *domain.Ad) bool {
	return ad.Counters.Spend < ad.Budget
}

// PacingScore returns a value in [0,1] that grows as the ad under-delivers
// relative to an even spend rate. An ad exactly on pace scores 0; an ad
// that has spent nothing against a half-elapsed window scores 1.
func (p *BudgetPacer) PacingScore(ad *domain.Ad) float64 {
	expected := float64(ad.Budget) * elapsedFraction(ad.ScheduledStart, ad.ScheduledEnd, p.now())
	if expected <= 0 {
		// window has not started; nothing is behind schedule yet
		return 0
	}
	score := 1 - float64(ad.Counters.Spend)/expected
	if score < 0 {
		return 0
	}
	if score > 1 {
		return 1
	}
	return score
}

// elapsedFraction returns how much of the window [start, end] has passed
// at now, clamped to [0,1]. A degenerate window counts as fully elapsed.
func elapsedFraction(start, end, now time.Time) float64 {
	total := end.Sub(start)
	if total <= 0 {
		return 1
	}
	f := float64(now.Sub(start)) / float64(total)
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}
