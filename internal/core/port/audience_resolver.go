package port

import "context"

// AudienceResolver answers lookalike-audience membership queries against an
// external user-similarity service. Implementations must bound the call
// with the context deadline; callers treat any error as "not a member".
type AudienceResolver interface {
	// IsMember reports whether the viewer belongs to at least one of the
	// given audiences.
	IsMember(ctx context.Context, viewerID string, audienceIDs []string) (bool, error)
}
