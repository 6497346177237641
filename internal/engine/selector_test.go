package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"nova-ads/internal/core/domain"
)

func TestSelectEmpty(t *testing.T) {
	sel := NewAdSelector(Weights{}, 0, nil)
	require.Nil(t, sel.Select(nil, domain.SlotContext{}))
}

func TestSelectPacingFavorsUnderDelivered(t *testing.T) {
	sel := NewAdSelector(DefaultWeights, time.Hour, nil)

	// identical bids, only pacing differs
	a := Candidate{Ad: domain.Ad{ID: 1, BidAmount: 500}, Pacing: 0.9}
	b := Candidate{Ad: domain.Ad{ID: 2, BidAmount: 500}, Pacing: 0.1}

	winner := sel.Select([]Candidate{b, a}, domain.SlotContext{})
	require.NotNil(t, winner)
	require.Equal(t, int64(1), winner.ID)
}

func TestSelectRecencyPenalty(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	sel := NewAdSelector(DefaultWeights, time.Hour, func() time.Time { return now })

	fresh := Candidate{Ad: domain.Ad{ID: 1, BidAmount: 500}}
	fatigued := Candidate{Ad: domain.Ad{ID: 2, BidAmount: 500}, LastShown: now.Add(-time.Minute)}

	winner := sel.Select([]Candidate{fatigued, fresh}, domain.SlotContext{})
	require.Equal(t, int64(1), winner.ID)

	// past the horizon the penalty is gone and the tie-break picks the
	// smaller id
	fatigued.LastShown = now.Add(-2 * time.Hour)
	winner = sel.Select([]Candidate{fatigued, fresh}, domain.SlotContext{})
	require.Equal(t, int64(1), winner.ID)
}

func TestSelectTieBreaks(t *testing.T) {
	sel := NewAdSelector(DefaultWeights, time.Hour, nil)

	t.Run("higher bid wins on equal score", func(t *testing.T) {
		// equal normalized scores are impossible with different bids, so
		// pin scores by zeroing other signals and comparing bids directly
		a := Candidate{Ad: domain.Ad{ID: 1, BidAmount: 300}}
		b := Candidate{Ad: domain.Ad{ID: 2, BidAmount: 500}}
		winner := sel.Select([]Candidate{a, b}, domain.SlotContext{})
		require.Equal(t, int64(2), winner.ID)
	})

	t.Run("fewer impressions wins", func(t *testing.T) {
		a := Candidate{Ad: domain.Ad{ID: 1, BidAmount: 500}}
		a.Ad.Counters.Impressions = 1000
		b := Candidate{Ad: domain.Ad{ID: 2, BidAmount: 500}}
		b.Ad.Counters.Impressions = 10
		winner := sel.Select([]Candidate{a, b}, domain.SlotContext{})
		require.Equal(t, int64(2), winner.ID)
	})

	t.Run("smallest id wins deterministically", func(t *testing.T) {
		a := Candidate{Ad: domain.Ad{ID: 7, BidAmount: 500}}
		b := Candidate{Ad: domain.Ad{ID: 3, BidAmount: 500}}
		winner := sel.Select([]Candidate{a, b}, domain.SlotContext{})
		require.Equal(t, int64(3), winner.ID)
	})
}
