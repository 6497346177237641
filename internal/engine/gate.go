package engine

import (
	"time"

	"nova-ads/internal/core/domain"
)

// ModerationGate decides whether an ad may be served at all. Lifecycle and
// moderation state are orthogonal: an ad must be lifecycle-active AND
// moderation-approved AND inside its schedule window. The gate is pure and
// must be re-evaluated on every request because both statuses can change
// between requests.
type ModerationGate struct {
	now func() time.Time
}

// NewModerationGate builds a gate. A nil clock defaults to time.Now.
func NewModerationGate(now func() time.Time) *ModerationGate {
	if now == nil {
		now = time.Now
	}
	return &ModerationGate{now: now}
}

// IsServable reports whether the ad is eligible for delivery right now.
func (g *ModerationGate) IsServable(ad *domain.Ad) bool {
	if ad.Lifecycle != domain.LifecycleActive {
		return false
	}
	if ad.Moderation != domain.ModerationApproved {
		return false
	}
	now := g.now()
	if now.Before(ad.ScheduledStart) || now.After(ad.ScheduledEnd) {
		return false
	}
	return true
}
