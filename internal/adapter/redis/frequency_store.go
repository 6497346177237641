package redisstore

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"nova-ads/internal/core/port"
)

// entryTTL keeps day counters around past the day boundary; caps are
// per-day so stale entries are never read again, only evicted.
const entryTTL = 48 * time.Hour

// incrBelowCap atomically increments the day counter only while it is
// below the cap. It returns the new count, or -1 when the cap is already
// reached. Running it as a script closes the read-then-increment race
// between concurrent requests.
var incrBelowCap = redis.NewScript(`
local c = tonumber(redis.call('GET', KEYS[1]) or '0')
if c >= tonumber(ARGV[1]) then
    return -1
end
c = redis.call('INCR', KEYS[1])
if c == 1 then
    redis.call('EXPIRE', KEYS[1], ARGV[2])
end
return c
`)

// FrequencyStore implements port.FrequencyStore on Redis. Day counters are
// keyed by (viewer, ad, UTC calendar date); last-shown markers feed the
// selector's recency penalty.
type FrequencyStore struct {
	client  *redis.Client
	horizon time.Duration
}

// NewFrequencyStore returns a store using the given client. recencyHorizon
// bounds how long last-shown markers are kept.
func NewFrequencyStore(client *redis.Client, recencyHorizon time.Duration) *FrequencyStore {
	if recencyHorizon <= 0 {
		recencyHorizon = time.Hour
	}
	return &FrequencyStore{client: client, horizon: recencyHorizon}
}

func dayKey(viewerID string, adID int64, ts time.Time) string {
	return fmt.Sprintf("freq:%s:%d:%s", viewerID, adID, ts.UTC().Format("2006-01-02"))
}

func seenKey(viewerID string, adID int64) string {
	return fmt.Sprintf("seen:%s:%d", viewerID, adID)
}

// Count returns today's impression count for the viewer/ad pair.
func (s *FrequencyStore) Count(ctx context.Context, viewerID string, adID int64, ts time.Time) (int64, error) {
	n, err := s.client.Get(ctx, dayKey(viewerID, adID, ts)).Int64()
	if err == redis.Nil {
		return 0, nil
	}
	return n, err
}

// Increment is the atomic compare-and-increment behind the frequency cap.
func (s *FrequencyStore) Increment(ctx context.Context, viewerID string, adID int64, cap int, ts time.Time) error {
	n, err := incrBelowCap.Run(ctx, s.client,
		[]string{dayKey(viewerID, adID, ts)},
		cap, int(entryTTL.Seconds()),
	).Int64()
	if err != nil {
		return err
	}
	if n < 0 {
		return port.ErrCapExceeded
	}
	return nil
}

// LastShown returns the viewer's latest exposure to the ad, if any.
func (s *FrequencyStore) LastShown(ctx context.Context, viewerID string, adID int64) (time.Time, bool, error) {
	v, err := s.client.Get(ctx, seenKey(viewerID, adID)).Result()
	if err == redis.Nil {
		return time.Time{}, false, nil
	}
	if err != nil {
		return time.Time{}, false, err
	}
	unix, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return time.Time{}, false, err
	}
	return time.Unix(unix, 0).UTC(), true, nil
}

// TouchShown records ts as the most recent exposure.
func (s *FrequencyStore) TouchShown(ctx context.Context, viewerID string, adID int64, ts time.Time) error {
	return s.client.Set(ctx, seenKey(viewerID, adID), ts.UTC().Unix(), s.horizon).Err()
}

var _ port.FrequencyStore = (*FrequencyStore)(nil)
