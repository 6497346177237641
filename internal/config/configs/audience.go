package configs

import "time"

// Audience configures the external lookalike-audience resolver. Lookalike
// targeting clauses fail closed when the resolver is slow or unavailable,
// so the timeout should stay well under the delivery deadline.
type Audience struct {
	// BaseURL is the root of the user-similarity service. Empty disables
	// lookalike targeting: ads requiring it never match.
	BaseURL string `env:"BASE_URL" envDefault:""`
	// Timeout bounds each membership lookup.
	Timeout time.Duration `env:"TIMEOUT" envDefault:"150ms"`
}
