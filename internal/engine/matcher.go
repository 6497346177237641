package engine

import (
	"context"
	"log/slog"
	"math"
	"slices"
	"time"

	"nova-ads/internal/core/domain"
	"nova-ads/internal/core/port"
)

const earthRadiusKm = 6371.0

// TargetingMatcher evaluates an ad's targeting predicate against a viewer
// context. Clauses are ANDed; values within a clause are ORed; an empty
// clause is a wildcard. User exclusion is checked first and overrides
// everything else. Lookalike membership is resolved through an external
// collaborator with a bounded timeout and fails closed.
type TargetingMatcher struct {
	resolver port.AudienceResolver
	timeout  time.Duration
	logger   *slog.Logger
}

// NewTargetingMatcher builds a matcher. resolver may be nil when lookalike
// targeting is not in use; ads that require it then never match.
func NewTargetingMatcher(resolver port.AudienceResolver, timeout time.Duration, logger *slog.Logger) *TargetingMatcher {
	if timeout <= 0 {
		timeout = 150 * time.Millisecond
	}
	return &TargetingMatcher{resolver: resolver, timeout: timeout, logger: logger}
}

// Matches reports whether the viewer satisfies the targeting predicate.
func (m *TargetingMatcher) Matches(ctx context.Context, t *domain.Targeting, viewer *domain.ViewerContext) bool {
	// exclusion overrides every other clause
	if slices.Contains(t.ExcludedUsers, viewer.UserID) {
		return false
	}
	if !matchAge(t, viewer.Age) {
		return false
	}
	if !matchSet(t.Genders, viewer.Gender) {
		return false
	}
	if !matchGeo(t.Locations, viewer) {
		return false
	}
	if !intersects(t.Interests, viewer.Interests) {
		return false
	}
	if !intersects(t.Behaviors, viewer.Behaviors) {
		return false
	}
	if !matchSet(t.DeviceTypes, viewer.Device) {
		return false
	}
	if len(t.LookalikeAudiences) > 0 && !m.isAudienceMember(ctx, viewer.UserID, t.LookalikeAudiences) {
		return false
	}
	return true
}

// matchAge applies the age-range clause. An unknown viewer age passes.
func matchAge(t *domain.Targeting, age *int) bool {
	if t.AgeMin == 0 && t.AgeMax == 0 {
		return true
	}
	if age == nil {
		return true
	}
	if t.AgeMin > 0 && *age < t.AgeMin {
		return false
	}
	if t.AgeMax > 0 && *age > t.AgeMax {
		return false
	}
	return true
}

func matchSet(values []string, v string) bool {
	if len(values) == 0 || slices.Contains(values, "all") {
		return true
	}
	return slices.Contains(values, v)
}

// intersects reports a non-empty intersection. An empty targeting list is
// a wildcard.
func intersects(targeting, viewer []string) bool {
	if len(targeting) == 0 {
		return true
	}
	for _, v := range targeting {
		if slices.Contains(viewer, v) {
			return true
		}
	}
	return false
}

func matchGeo(entries []domain.GeoEntry, viewer *domain.ViewerContext) bool {
	if len(entries) == 0 {
		return true
	}
	for _, e := range entries {
		if e.RadiusKm > 0 {
			if viewer.Lat == nil || viewer.Lon == nil {
				continue
			}
			if haversineKm(e.Lat, e.Lon, *viewer.Lat, *viewer.Lon) <= e.RadiusKm {
				return true
			}
			continue
		}
		if e.Country != "" && e.Country != viewer.Country {
			continue
		}
		if e.Region != "" && e.Region != viewer.Region {
			continue
		}
		if e.City != "" && e.City != viewer.City {
			continue
		}
		return true
	}
	return false
}

// isAudienceMember queries the external resolver with a bounded timeout.
// Any error, including timeout, is treated as non-membership so a slow
// collaborator never blocks delivery.
func (m *TargetingMatcher) isAudienceMember(ctx context.Context, viewerID string, audiences []string) bool {
	if m.resolver == nil {
		return false
	}
	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()
	member, err := m.resolver.IsMember(ctx, viewerID, audiences)
	if err != nil {
		if m.logger != nil {
			m.logger.Debug("audience lookup failed closed", slog.Any("error", err))
		}
		return false
	}
	return member
}

// haversineKm returns the great-circle distance between two points.
func haversineKm(lat1, lon1, lat2, lon2 float64) float64 {
	toRad := func(deg float64) float64 { return deg * math.Pi / 180 }
	dLat := toRad(lat2 - lat1)
	dLon := toRad(lon2 - lon1)
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRad(lat1))*math.Cos(toRad(lat2))*math.Sin(dLon/2)*math.Sin(dLon/2)
	return 2 * earthRadiusKm * math.Asin(math.Sqrt(a))
}
