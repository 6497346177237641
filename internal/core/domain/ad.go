package domain

import "time"

// LifecycleStatus is the operator-driven delivery state of an ad. The
// engine never originates transitions; it only reads the current value.
type LifecycleStatus string

const (
	LifecycleDraft           LifecycleStatus = "draft"
	LifecyclePendingApproval LifecycleStatus = "pending_approval"
	LifecycleApproved        LifecycleStatus = "approved"
	LifecycleRejected        LifecycleStatus = "rejected"
	LifecycleActive          LifecycleStatus = "active"
	LifecyclePaused          LifecycleStatus = "paused"
	LifecycleCompleted       LifecycleStatus = "completed"
	LifecycleArchived        LifecycleStatus = "archived"
)

// ModerationStatus is the review outcome for an ad's creative. It is kept
// separate from LifecycleStatus because an ad can be lifecycle-active and
// still be re-flagged by moderation.
type ModerationStatus string

const (
	ModerationPending  ModerationStatus = "pending"
	ModerationApproved ModerationStatus = "approved"
	ModerationRejected ModerationStatus = "rejected"
)

// Creative holds the renderable parts of an ad.
type Creative struct {
	Headline       string
	Body           string
	CallToAction   string // learn_more, shop_now, sign_up, download, contact_us
	ImageURL       string
	VideoURL       string
	DestinationURL string
}

// Placement describes where in the content feed an ad may appear and how
// often a single viewer may see it per UTC day.
type Placement struct {
	Surface      string // feed, stories, marketplace, live
	Position     int
	FrequencyCap int // impressions per viewer per day, >= 1
}

// Counters are the running delivery totals for an ad. They are written
// exclusively by the metrics recorder and are monotonically non-decreasing.
// Spend is in integer currency units (cents).
type Counters struct {
	Impressions int64
	Clicks      int64
	Conversions int64
	Spend       int64
}

// CTR returns the click-through rate as a percentage. Zero impressions
// yield zero rather than a division error.
func (c Counters) CTR() float64 {
	if c.Impressions == 0 {
		return 0
	}
	return float64(c.Clicks) / float64(c.Impressions) * 100
}

// CPC returns the average cost per click in currency units.
func (c Counters) CPC() float64 {
	if c.Clicks == 0 {
		return 0
	}
	return float64(c.Spend) / float64(c.Clicks)
}

// CPM returns the cost per thousand impressions in currency units.
func (c Counters) CPM() float64 {
	if c.Impressions == 0 {
		return 0
	}
	return float64(c.Spend) / float64(c.Impressions) * 1000
}

// ConversionRate returns conversions per click as a percentage.
func (c Counters) ConversionRate() float64 {
	if c.Clicks == 0 {
		return 0
	}
	return float64(c.Conversions) / float64(c.Clicks) * 100
}

// Ad is a single creative plus its delivery configuration. Bid and budget
// are stored in integer units (cents).
type Ad struct {
	ID           int64
	AdvertiserID int64
	AdSetID      int64
	CampaignID   int64

	Creative  Creative
	Placement Placement

	Lifecycle  LifecycleStatus
	Moderation ModerationStatus

	ScheduledStart time.Time
	ScheduledEnd   time.Time

	BidAmount int64
	Budget    int64

	Targeting Targeting
	Counters  Counters

	CreatedAt time.Time
	UpdatedAt time.Time
}

// RemainingBudget returns the unspent budget headroom, never negative.
func (a *Ad) RemainingBudget() int64 {
	if rem := a.Budget - a.Counters.Spend; rem > 0 {
		return rem
	}
	return 0
}
