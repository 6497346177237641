package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"nova-ads/internal/core/domain"
)

func TestGateStatusCrossProduct(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	gate := NewModerationGate(func() time.Time { return now })

	lifecycles := []domain.LifecycleStatus{
		domain.LifecycleDraft,
		domain.LifecyclePendingApproval,
		domain.LifecycleApproved,
		domain.LifecycleRejected,
		domain.LifecycleActive,
		domain.LifecyclePaused,
		domain.LifecycleCompleted,
		domain.LifecycleArchived,
	}
	moderations := []domain.ModerationStatus{
		domain.ModerationPending,
		domain.ModerationApproved,
		domain.ModerationRejected,
	}

	for _, lc := range lifecycles {
		for _, mod := range moderations {
			ad := domain.Ad{
				Lifecycle:      lc,
				Moderation:     mod,
				ScheduledStart: now.Add(-time.Hour),
				ScheduledEnd:   now.Add(time.Hour),
			}
			want := lc == domain.LifecycleActive && mod == domain.ModerationApproved
			require.Equal(t, want, gate.IsServable(&ad), "lifecycle=%s moderation=%s", lc, mod)
		}
	}
}

func TestGateScheduleWindow(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	gate := NewModerationGate(func() time.Time { return now })

	base := domain.Ad{
		Lifecycle:  domain.LifecycleActive,
		Moderation: domain.ModerationApproved,
	}

	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  bool
	}{
		{"inside window", now.Add(-time.Hour), now.Add(time.Hour), true},
		{"ended one second ago", now.Add(-time.Hour), now.Add(-time.Second), false},
		{"starts in the future", now.Add(time.Minute), now.Add(time.Hour), false},
		{"exactly at start", now, now.Add(time.Hour), true},
		{"exactly at end", now.Add(-time.Hour), now, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ad := base
			ad.ScheduledStart = tt.start
			ad.ScheduledEnd = tt.end
			require.Equal(t, tt.want, gate.IsServable(&ad))
		})
	}
}
