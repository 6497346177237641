package configs

import "time"

// Delivery holds the engine tunables. The scoring weights are exposed here
// so ranking behaviour can change without touching the selection
// algorithm.
type Delivery struct {
	// Deadline bounds one SelectAd call; on expiry the slot stays organic.
	Deadline time.Duration `env:"DEADLINE" envDefault:"50ms"`
	// BidWeight scales the normalized bid term of the candidate score.
	BidWeight float64 `env:"BID_WEIGHT" envDefault:"0.6"`
	// PacingWeight scales the under-delivery term.
	PacingWeight float64 `env:"PACING_WEIGHT" envDefault:"0.3"`
	// RecencyWeight scales the soft anti-fatigue penalty.
	RecencyWeight float64 `env:"RECENCY_WEIGHT" envDefault:"0.1"`
	// RecencyHorizon is how long a past exposure keeps penalising an ad.
	RecencyHorizon time.Duration `env:"RECENCY_HORIZON" envDefault:"1h"`
}
