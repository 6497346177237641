package audience

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"

	"nova-ads/internal/core/port"
)

// Resolver queries the external user-similarity service for lookalike
// audience membership. The call is wrapped in a circuit breaker so a
// degraded collaborator stops being queried instead of slowing every ad
// request; the matcher treats errors as non-membership either way.
type Resolver struct {
	baseURL string
	client  *http.Client
	cb      *gobreaker.CircuitBreaker[bool]
	logger  *slog.Logger
}

// NewResolver builds a resolver for the service at baseURL. timeout bounds
// each HTTP call.
func NewResolver(baseURL string, timeout time.Duration, logger *slog.Logger) *Resolver {
	if timeout <= 0 {
		timeout = 150 * time.Millisecond
	}
	if logger == nil {
		logger = slog.Default()
	}
	cb := gobreaker.NewCircuitBreaker[bool](gobreaker.Settings{
		Name:    "audience-resolver",
		Timeout: 30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.Requests >= 10 &&
				float64(counts.TotalFailures)/float64(counts.Requests) >= 0.6
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("audience resolver breaker state change",
				slog.String("from", from.String()), slog.String("to", to.String()))
		},
	})
	return &Resolver{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
		cb:      cb,
		logger:  logger,
	}
}

// IsMember reports whether the viewer belongs to at least one of the given
// audiences.
func (r *Resolver) IsMember(ctx context.Context, viewerID string, audienceIDs []string) (bool, error) {
	return r.cb.Execute(func() (bool, error) {
		q := url.Values{}
		q.Set("viewer_id", viewerID)
		q.Set("audience_ids", strings.Join(audienceIDs, ","))
		req, err := http.NewRequestWithContext(ctx, http.MethodGet,
			r.baseURL+"/v1/audiences/membership?"+q.Encode(), nil)
		if err != nil {
			return false, err
		}
		resp, err := r.client.Do(req)
		if err != nil {
			return false, err
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			return false, fmt.Errorf("audience resolver status %d", resp.StatusCode)
		}
		var body struct {
			Member bool `json:"member"`
		}
		if err = json.NewDecoder(resp.Body).Decode(&body); err != nil {
			return false, err
		}
		return body.Member, nil
	})
}

var _ port.AudienceResolver = (*Resolver)(nil)
