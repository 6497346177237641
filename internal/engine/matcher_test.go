package engine

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"nova-ads/internal/core/domain"
	"nova-ads/internal/core/port/mocks"
)

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }

func TestMatcherExclusionOverridesMatch(t *testing.T) {
	m := NewTargetingMatcher(nil, 0, nil)

	targeting := domain.Targeting{
		Locations:     []domain.GeoEntry{{Country: "US"}},
		ExcludedUsers: []string{"viewer42"},
	}
	viewer := domain.ViewerContext{UserID: "viewer42", Country: "US"}
	require.False(t, m.Matches(context.Background(), &targeting, &viewer))

	viewer.UserID = "viewer43"
	require.True(t, m.Matches(context.Background(), &targeting, &viewer))
}

func TestMatcherAge(t *testing.T) {
	m := NewTargetingMatcher(nil, 0, nil)
	targeting := domain.Targeting{AgeMin: 18, AgeMax: 35}

	tests := []struct {
		name string
		age  *int
		want bool
	}{
		{"unknown age passes", nil, true},
		{"inside range", intPtr(25), true},
		{"too young", intPtr(15), false},
		{"too old", intPtr(60), false},
		{"at lower bound", intPtr(18), true},
		{"at upper bound", intPtr(35), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			viewer := domain.ViewerContext{UserID: "u1", Age: tt.age}
			require.Equal(t, tt.want, m.Matches(context.Background(), &targeting, &viewer))
		})
	}
}

func TestMatcherGenderAndDevice(t *testing.T) {
	m := NewTargetingMatcher(nil, 0, nil)

	targeting := domain.Targeting{Genders: []string{"female"}, DeviceTypes: []string{"ios"}}
	viewer := domain.ViewerContext{UserID: "u1", Gender: "female", Device: "ios"}
	require.True(t, m.Matches(context.Background(), &targeting, &viewer))

	viewer.Device = "android"
	require.False(t, m.Matches(context.Background(), &targeting, &viewer))

	targeting.DeviceTypes = []string{"all"}
	require.True(t, m.Matches(context.Background(), &targeting, &viewer))

	targeting.Genders = []string{"all"}
	viewer.Gender = "male"
	require.True(t, m.Matches(context.Background(), &targeting, &viewer))
}

func TestMatcherGeoRadius(t *testing.T) {
	m := NewTargetingMatcher(nil, 0, nil)

	// 25km radius around central Berlin
	targeting := domain.Targeting{Locations: []domain.GeoEntry{
		{Lat: 52.52, Lon: 13.405, RadiusKm: 25},
	}}

	near := domain.ViewerContext{UserID: "u1", Lat: floatPtr(52.45), Lon: floatPtr(13.5)}
	require.True(t, m.Matches(context.Background(), &targeting, &near))

	far := domain.ViewerContext{UserID: "u1", Lat: floatPtr(48.14), Lon: floatPtr(11.58)} // Munich
	require.False(t, m.Matches(context.Background(), &targeting, &far))

	// a viewer without coordinates cannot satisfy a radius entry
	noCoords := domain.ViewerContext{UserID: "u1", Country: "DE"}
	require.False(t, m.Matches(context.Background(), &targeting, &noCoords))
}

func TestMatcherInterestsIntersect(t *testing.T) {
	m := NewTargetingMatcher(nil, 0, nil)

	targeting := domain.Targeting{Interests: []string{"running", "cycling"}}

	viewer := domain.ViewerContext{UserID: "u1", Interests: []string{"cooking", "cycling"}}
	require.True(t, m.Matches(context.Background(), &targeting, &viewer))

	viewer.Interests = []string{"cooking"}
	require.False(t, m.Matches(context.Background(), &targeting, &viewer))

	// empty targeting list is a wildcard
	targeting.Interests = nil
	require.True(t, m.Matches(context.Background(), &targeting, &viewer))
}

func TestMatcherLookalike(t *testing.T) {
	targeting := domain.Targeting{LookalikeAudiences: []string{"aud-1"}}
	viewer := domain.ViewerContext{UserID: "u1"}

	t.Run("member matches", func(t *testing.T) {
		resolver := mocks.NewMockAudienceResolver(t)
		resolver.EXPECT().IsMember(mock.Anything, "u1", []string{"aud-1"}).Return(true, nil)
		m := NewTargetingMatcher(resolver, 100*time.Millisecond, nil)
		require.True(t, m.Matches(context.Background(), &targeting, &viewer))
	})

	t.Run("non-member fails", func(t *testing.T) {
		resolver := mocks.NewMockAudienceResolver(t)
		resolver.EXPECT().IsMember(mock.Anything, "u1", []string{"aud-1"}).Return(false, nil)
		m := NewTargetingMatcher(resolver, 100*time.Millisecond, nil)
		require.False(t, m.Matches(context.Background(), &targeting, &viewer))
	})

	t.Run("resolver error fails closed", func(t *testing.T) {
		resolver := mocks.NewMockAudienceResolver(t)
		resolver.EXPECT().IsMember(mock.Anything, "u1", []string{"aud-1"}).
			Return(false, errors.New("deadline exceeded"))
		m := NewTargetingMatcher(resolver, 100*time.Millisecond, nil)
		require.False(t, m.Matches(context.Background(), &targeting, &viewer))
	})

	t.Run("no resolver fails closed", func(t *testing.T) {
		m := NewTargetingMatcher(nil, 100*time.Millisecond, nil)
		require.False(t, m.Matches(context.Background(), &targeting, &viewer))
	})
}
