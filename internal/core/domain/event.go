package domain

import "time"

// EventType discriminates delivery events reported by the client.
type EventType string

const (
	EventImpression EventType = "impression"
	EventClick      EventType = "click"
	EventConversion EventType = "conversion"
)

// AdEvent is an immutable delivery fact. EventID is generated by the
// producer and is the deduplication key: replaying the same id never
// double-counts. CostAttributed is only meaningful for conversions and is
// in integer currency units.
type AdEvent struct {
	EventID        string    `json:"event_id" validate:"required"`
	Type           EventType `json:"type" validate:"required,oneof=impression click conversion"`
	AdID           int64     `json:"ad_id" validate:"required,gt=0"`
	ViewerID       string    `json:"viewer_id" validate:"required"`
	Timestamp      time.Time `json:"timestamp"`
	CostAttributed int64     `json:"cost_attributed,omitempty" validate:"gte=0"`
}
