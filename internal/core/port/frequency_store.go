package port

import (
	"context"
	"time"
)

// FrequencyStore tracks per-(viewer, ad, UTC day) impression counts and
// per-(viewer, ad) last-shown timestamps. It is the only writer of
// frequency-cap state. Increment must be a single atomic
// compare-and-increment so two concurrent requests cannot both pass a
// cap of count+1.
type FrequencyStore interface {
	// Count returns today's impression count for the key. Days older than
	// the eviction horizon may be gone; callers only ever read the current
	// day.
	Count(ctx context.Context, viewerID string, adID int64, ts time.Time) (int64, error)

	// Increment atomically increments the day counter if it is below cap,
	// returning ErrCapExceeded without incrementing otherwise.
	Increment(ctx context.Context, viewerID string, adID int64, cap int, ts time.Time) error

	// LastShown returns when the ad was last shown to the viewer. The
	// second result is false when it never was (or the entry aged out).
	LastShown(ctx context.Context, viewerID string, adID int64) (time.Time, bool, error)

	// TouchShown records ts as the viewer's most recent exposure to the ad.
	TouchShown(ctx context.Context, viewerID string, adID int64, ts time.Time) error
}
