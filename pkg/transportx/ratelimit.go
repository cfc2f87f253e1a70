package transportx

import (
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

// RateLimitTransport throttles outgoing requests through a token-bucket
// limiter, waiting (bounded by the request context) rather than failing when
// the budget is exhausted. Useful for bulk operations against backends that
// enforce per-client quotas.
type RateLimitTransport struct {
	base    http.RoundTripper
	limiter *rate.Limiter
}

// NewRateLimitTransport wraps base with the given limiter.
func NewRateLimitTransport(base http.RoundTripper, limiter *rate.Limiter) *RateLimitTransport {
	if base == nil {
		base = http.DefaultTransport
	}
	return &RateLimitTransport{
		base:    base,
		limiter: limiter,
	}
}

// NewClientLimiter builds a limiter allowing requestsPerMinute sustained with
// the whole window available as a burst.
func NewClientLimiter(requestsPerMinute int) *rate.Limiter {
	if requestsPerMinute <= 0 {
		return rate.NewLimiter(rate.Inf, 0)
	}
	interval := time.Minute / time.Duration(requestsPerMinute)
	return rate.NewLimiter(rate.Every(interval), requestsPerMinute)
}

func (t *RateLimitTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if err := t.limiter.Wait(req.Context()); err != nil {
		return nil, err
	}
	return t.base.RoundTrip(req)
}
