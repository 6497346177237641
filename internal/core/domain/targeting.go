package domain

// GeoEntry is one geographic targeting rule. When RadiusKm is positive the
// entry matches by haversine distance from (Lat, Lon); otherwise it matches
// by string equality on the place fields.
type GeoEntry struct {
	Country  string  `json:"country,omitempty"`
	Region   string  `json:"region,omitempty"`
	City     string  `json:"city,omitempty"`
	Lat      float64 `json:"lat,omitempty"`
	Lon      float64 `json:"lon,omitempty"`
	RadiusKm float64 `json:"radius_km,omitempty"`
}

// Targeting describes who should see an ad. Clauses are combined with AND;
// values inside a clause are OR. An empty clause is a wildcard.
type Targeting struct {
	AgeMin             int        `json:"age_min,omitempty"`
	AgeMax             int        `json:"age_max,omitempty"`
	Genders            []string   `json:"genders,omitempty"` // "all" matches everyone
	Locations          []GeoEntry `json:"locations,omitempty"`
	Interests          []string   `json:"interests,omitempty"`
	Behaviors          []string   `json:"behaviors,omitempty"`
	DeviceTypes        []string   `json:"device_types,omitempty"` // "all" matches everyone
	LookalikeAudiences []string   `json:"lookalike_audiences,omitempty"`
	ExcludedUsers      []string   `json:"excluded_users,omitempty"`
}
