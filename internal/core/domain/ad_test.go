package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCountersDerivedMetrics(t *testing.T) {
	tests := []struct {
		name     string
		counters Counters
		ctr      float64
		cpc      float64
		cpm      float64
		convRate float64
	}{
		{
			name:     "typical delivery",
			counters: Counters{Impressions: 1000, Clicks: 20, Conversions: 5, Spend: 400},
			ctr:      2.0,
			cpc:      20.0,
			cpm:      400.0,
			convRate: 25.0,
		},
		{
			name:     "no impressions",
			counters: Counters{},
			ctr:      0,
			cpc:      0,
			cpm:      0,
			convRate: 0,
		},
		{
			name:     "impressions without clicks",
			counters: Counters{Impressions: 500, Spend: 100},
			ctr:      0,
			cpc:      0,
			cpm:      200.0,
			convRate: 0,
		},
		{
			name:     "clicks without conversions",
			counters: Counters{Impressions: 100, Clicks: 10, Spend: 50},
			ctr:      10.0,
			cpc:      5.0,
			cpm:      500.0,
			convRate: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.ctr, tt.counters.CTR(), 1e-9)
			assert.InDelta(t, tt.cpc, tt.counters.CPC(), 1e-9)
			assert.InDelta(t, tt.cpm, tt.counters.CPM(), 1e-9)
			assert.InDelta(t, tt.convRate, tt.counters.ConversionRate(), 1e-9)
		})
	}
}

func TestRemainingBudget(t *testing.T) {
	ad := &Ad{Budget: 1000, Counters: Counters{Spend: 400}}
	assert.Equal(t, int64(600), ad.RemainingBudget())

	ad.Counters.Spend = 1000
	assert.Equal(t, int64(0), ad.RemainingBudget())

	// overspend must never surface as negative headroom
	ad.Counters.Spend = 1200
	assert.Equal(t, int64(0), ad.RemainingBudget())
}
