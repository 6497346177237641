package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"nova-ads/internal/core/domain"
	"nova-ads/internal/core/port"
)

// serialization failures are retried this many times before giving up
const maxTxRetries = 3

// AdRepository implements port.AdRepository using pgxpool for PostgreSQL.
// Counter updates run in serializable transactions with row locks so the
// spend and event tables stay consistent under concurrent writers.
type AdRepository struct {
	pool *pgxpool.Pool
}

// NewAdRepository returns a new repository instance.
func NewAdRepository(pool *pgxpool.Pool) *AdRepository {
	return &AdRepository{pool: pool}
}

const adColumns = `
    id, advertiser_id, ad_set_id, campaign_id,
    headline, body, call_to_action, image_url, video_url, destination_url,
    surface, position, frequency_cap,
    lifecycle_status, moderation_status,
    scheduled_start, scheduled_end,
    bid_amount, budget, targeting,
    impressions, clicks, conversions, spend,
    created_at, updated_at`

func scanAd(row pgx.Row) (domain.Ad, error) {
	var (
		a   domain.Ad
		raw []byte
	)
	err := row.Scan(
		&a.ID, &a.AdvertiserID, &a.AdSetID, &a.CampaignID,
		&a.Creative.Headline, &a.Creative.Body, &a.Creative.CallToAction,
		&a.Creative.ImageURL, &a.Creative.VideoURL, &a.Creative.DestinationURL,
		&a.Placement.Surface, &a.Placement.Position, &a.Placement.FrequencyCap,
		&a.Lifecycle, &a.Moderation,
		&a.ScheduledStart, &a.ScheduledEnd,
		&a.BidAmount, &a.Budget, &raw,
		&a.Counters.Impressions, &a.Counters.Clicks, &a.Counters.Conversions, &a.Counters.Spend,
		&a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return a, err
	}
	if len(raw) > 0 {
		if err = json.Unmarshal(raw, &a.Targeting); err != nil {
			return a, fmt.Errorf("decode targeting for ad %d: %w", a.ID, err)
		}
	}
	return a, nil
}

// CandidateAds returns the request-scoped snapshot of coarsely servable
// ads. The SQL filter mirrors the moderation gate; the engine re-checks it
// on the snapshot plus the fine-grained predicates.
func (r *AdRepository) CandidateAds(ctx context.Context) ([]domain.Ad, error) {
	query := `
        SELECT` + adColumns + `
        FROM ads
        WHERE lifecycle_status = 'active'
          AND moderation_status = 'approved'
          AND now() BETWEEN scheduled_start AND scheduled_end
          AND spend < budget`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Ad, error) {
		return scanAd(row)
	})
}

// GetAd returns an ad by id, or port.ErrNotFound.
func (r *AdRepository) GetAd(ctx context.Context, id int64) (*domain.Ad, error) {
	row := r.pool.QueryRow(ctx, `SELECT`+adColumns+` FROM ads WHERE id = $1`, id)
	a, err := scanAd(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, port.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// ApplyImpression records the event and increments the impression counter.
func (r *AdRepository) ApplyImpression(ctx context.Context, ev domain.AdEvent) error {
	return r.applyEvent(ctx, ev, `UPDATE ads SET impressions = impressions + 1, updated_at = now() WHERE id = $1`)
}

// ApplyClick records the event and increments the click counter. Clicks
// do not add spend.
func (r *AdRepository) ApplyClick(ctx context.Context, ev domain.AdEvent) error {
	return r.applyEvent(ctx, ev, `UPDATE ads SET clicks = clicks + 1, updated_at = now() WHERE id = $1`)
}

// applyEvent inserts the event row and runs the counter update in one
// serializable transaction. A conflicting event id rolls everything back
// and reports ErrDuplicateEvent.
func (r *AdRepository) applyEvent(ctx context.Context, ev domain.AdEvent, counterSQL string) error {
	return r.withRetry(ctx, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx,
			`INSERT INTO ad_events (event_id, ad_id, viewer_id, event_type, cost, charged, created_at)
             VALUES ($1,$2,$3,$4,$5,$6,$7) ON CONFLICT (event_id) DO NOTHING`,
			ev.EventID, ev.AdID, ev.ViewerID, ev.Type, ev.CostAttributed, int64(0), ev.Timestamp.UTC())
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return port.ErrDuplicateEvent
		}
		tag, err = tx.Exec(ctx, counterSQL, ev.AdID)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return port.ErrNotFound
		}
		return nil
	})
}

// ApplyConversion locks the ad row, charges the smaller of the attributed
// cost and the remaining headroom, and counts the conversion. The
// conditional update is what keeps spend <= budget when concurrent
// conversions race for the last of the budget.
func (r *AdRepository) ApplyConversion(ctx context.Context, ev domain.AdEvent) (int64, error) {
	var charged int64
	err := r.withRetry(ctx, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx,
			`INSERT INTO ad_events (event_id, ad_id, viewer_id, event_type, cost, charged, created_at)
             VALUES ($1,$2,$3,$4,$5,$6,$7) ON CONFLICT (event_id) DO NOTHING`,
			ev.EventID, ev.AdID, ev.ViewerID, ev.Type, ev.CostAttributed, int64(0), ev.Timestamp.UTC())
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return port.ErrDuplicateEvent
		}
		var spend, budget int64
		err = tx.QueryRow(ctx, `SELECT spend, budget FROM ads WHERE id = $1 FOR UPDATE`, ev.AdID).Scan(&spend, &budget)
		if errors.Is(err, pgx.ErrNoRows) {
			return port.ErrNotFound
		}
		if err != nil {
			return err
		}
		charged = ev.CostAttributed
		if headroom := budget - spend; charged > headroom {
			charged = headroom
		}
		if charged < 0 {
			charged = 0
		}
		_, err = tx.Exec(ctx,
			`UPDATE ads SET spend = spend + $1, conversions = conversions + 1, updated_at = now() WHERE id = $2`,
			charged, ev.AdID)
		if err != nil {
			return err
		}
		_, err = tx.Exec(ctx, `UPDATE ad_events SET charged = $1 WHERE event_id = $2`, charged, ev.EventID)
		return err
	})
	return charged, err
}

// withRetry runs fn in a serializable transaction, retrying a bounded
// number of times on serialization failures (SQLSTATE 40001) before
// reporting ErrConflict.
func (r *AdRepository) withRetry(ctx context.Context, fn func(tx pgx.Tx) error) error {
	var err error
	for attempt := 0; attempt < maxTxRetries; attempt++ {
		err = r.inTx(ctx, fn)
		if err == nil || !isSerializationFailure(err) {
			return err
		}
	}
	return fmt.Errorf("%w: %v", port.ErrConflict, err)
}

func (r *AdRepository) inTx(ctx context.Context, fn func(tx pgx.Tx) error) (err error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()
	err = fn(tx)
	return err
}

func isSerializationFailure(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "40001"
}

// FindEvent returns a recorded event by id, or nil when unknown.
func (r *AdRepository) FindEvent(ctx context.Context, eventID string) (*domain.AdEvent, error) {
	var ev domain.AdEvent
	err := r.pool.QueryRow(ctx,
		`SELECT event_id, ad_id, viewer_id, event_type, cost, created_at FROM ad_events WHERE event_id = $1`,
		eventID).Scan(&ev.EventID, &ev.AdID, &ev.ViewerID, &ev.Type, &ev.CostAttributed, &ev.Timestamp)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &ev, nil
}

// Stats returns aggregated events for the period, optionally scoped to an
// ad or a campaign.
func (r *AdRepository) Stats(ctx context.Context, req port.StatsReq) (*port.StatsResp, error) {
	args := []interface{}{req.From, req.To}
	where := `e.created_at >= $1 AND e.created_at <= $2`
	join := ""
	if req.AdID != nil {
		args = append(args, *req.AdID)
		where += fmt.Sprintf(" AND e.ad_id = $%d", len(args))
	}
	if req.CampaignID != nil {
		join = "JOIN ads a ON a.id = e.ad_id"
		args = append(args, *req.CampaignID)
		where += fmt.Sprintf(" AND a.campaign_id = $%d", len(args))
	}
	query := fmt.Sprintf(`
        SELECT
            COALESCE(count(*) FILTER (WHERE e.event_type = 'impression'), 0),
            COALESCE(count(*) FILTER (WHERE e.event_type = 'click'), 0),
            COALESCE(count(*) FILTER (WHERE e.event_type = 'conversion'), 0),
            COALESCE(sum(e.charged), 0)
        FROM ad_events e %s WHERE %s`, join, where)
	var resp port.StatsResp
	err := r.pool.QueryRow(ctx, query, args...).
		Scan(&resp.Impressions, &resp.Clicks, &resp.Conversions, &resp.Spend)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}
