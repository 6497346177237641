package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"nova-ads/internal/core/domain"
)

func TestHasBudget(t *testing.T) {
	pacer := NewBudgetPacer(nil)

	ad := domain.Ad{Budget: 100}
	ad.Counters.Spend = 99
	require.True(t, pacer.HasBudget(&ad))

	ad.Counters.Spend = 100
	require.False(t, pacer.HasBudget(&ad))

	ad.Budget = 0
	ad.Counters.Spend = 0
	require.False(t, pacer.HasBudget(&ad))
}

func TestPacingScoreFavorsUnderDelivery(t *testing.T) {
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 10)
	now := start.AddDate(0, 0, 5) // halfway through the window
	pacer := NewBudgetPacer(func() time.Time { return now })

	// expected spend at the midpoint is half the budget
	under := domain.Ad{Budget: 10000, ScheduledStart: start, ScheduledEnd: end}
	under.Counters.Spend = 500 // 10% of expected
	over := under
	over.Counters.Spend = 4500 // 90% of expected

	uScore := pacer.PacingScore(&under)
	oScore := pacer.PacingScore(&over)
	require.Greater(t, uScore, oScore)
	require.InDelta(t, 0.9, uScore, 1e-9)
	require.InDelta(t, 0.1, oScore, 1e-9)
}

func TestPacingScoreBounds(t *testing.T) {
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 10)

	ad := domain.Ad{Budget: 1000, ScheduledStart: start, ScheduledEnd: end}

	// before the window nothing is behind schedule
	pacer := NewBudgetPacer(func() time.Time { return start.Add(-time.Hour) })
	require.Equal(t, 0.0, pacer.PacingScore(&ad))

	// ahead of pace clamps at zero
	pacer = NewBudgetPacer(func() time.Time { return start.AddDate(0, 0, 1) })
	ad.Counters.Spend = 900
	require.Equal(t, 0.0, pacer.PacingScore(&ad))

	// untouched budget halfway in scores the maximum
	pacer = NewBudgetPacer(func() time.Time { return start.AddDate(0, 0, 5) })
	ad.Counters.Spend = 0
	require.Equal(t, 1.0, pacer.PacingScore(&ad))
}
