package db

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"nova-ads/internal/core/domain"
)

// Seed inserts demo ads and events for local development.
func Seed(ctx context.Context, pool *pgxpool.Pool) error {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	surfaces := []string{"feed", "stories", "marketplace"}
	ctas := []string{"learn_more", "shop_now", "sign_up"}

	for i := 1; i <= 20; i++ {
		targeting := domain.Targeting{
			AgeMin:      18,
			AgeMax:      54,
			Genders:     []string{"all"},
			Locations:   []domain.GeoEntry{{Country: "US"}, {Country: "CA"}},
			Interests:   []string{"fashion", "tech", "sports"}[:1+r.Intn(3)],
			DeviceTypes: []string{"all"},
		}
		tgtJSON, _ := json.Marshal(targeting)
		_, err := pool.Exec(ctx, `INSERT INTO ads
    (id, advertiser_id, ad_set_id, campaign_id,
     headline, body, call_to_action, image_url, video_url, destination_url,
     surface, position, frequency_cap,
     lifecycle_status, moderation_status,
     scheduled_start, scheduled_end,
     bid_amount, budget, targeting,
     created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,'',$9,$10,$11,$12,'active','approved',$13,$14,$15,$16,$17,now(),now())
ON CONFLICT DO NOTHING`,
			i, (i-1)/5+1, (i-1)/2+1, (i-1)/4+1,
			fmt.Sprintf("Demo ad %d", i),
			"Limited time offer.",
			ctas[r.Intn(len(ctas))],
			fmt.Sprintf("https://cdn.example.com/creatives/%d.jpg", i),
			fmt.Sprintf("https://shop.example.com/products/%d", i),
			surfaces[r.Intn(len(surfaces))], r.Intn(5), 3,
			time.Now().AddDate(0, 0, -1), time.Now().AddDate(0, 1, 0),
			int64(100+r.Intn(900)), int64(500000), tgtJSON)
		if err != nil {
			return err
		}
	}

	// historical impressions with a sprinkling of clicks and conversions
	for i := 0; i < 500; i++ {
		adID := int64(r.Intn(20) + 1)
		viewerID := fmt.Sprintf("user-%d", r.Intn(100)+1)
		impID := uuid.NewString()
		_, err := pool.Exec(ctx, `INSERT INTO ad_events
(event_id, ad_id, viewer_id, event_type, cost, charged, created_at)
VALUES ($1,$2,$3,'impression',0,0,now()) ON CONFLICT DO NOTHING`,
			impID, adID, viewerID)
		if err != nil {
			return err
		}
		if r.Intn(10) == 0 {
			_, err = pool.Exec(ctx, `INSERT INTO ad_events
(event_id, ad_id, viewer_id, event_type, cost, charged, created_at)
VALUES ($1,$2,$3,'click',0,0,now()) ON CONFLICT DO NOTHING`,
				impID+":click", adID, viewerID)
			if err != nil {
				return err
			}
		}
	}

	// align ad counters with the seeded event history
	_, err := pool.Exec(ctx, `UPDATE ads SET
        impressions = e.impressions, clicks = e.clicks
    FROM (
        SELECT ad_id,
               count(*) FILTER (WHERE event_type = 'impression') AS impressions,
               count(*) FILTER (WHERE event_type = 'click') AS clicks
        FROM ad_events GROUP BY ad_id
    ) e WHERE ads.id = e.ad_id`)
	return err
}
