package transportx

import (
	"log/slog"
	"net/http"
	"time"
)

// Retry bounds for read requests: one initial attempt plus up to three
// retries, backing off 1s, 2s, 4s.
const (
	readRetries       = 3
	readRetryBaseWait = time.Second
)

// RetryTransport retries GET requests that fail with a network error or a
// 5xx response. Non-GET requests are never retried (idempotency), and 401/403
// responses propagate immediately: retrying them cannot succeed and risks
// loops. Other 4xx responses propagate without retry.
type RetryTransport struct {
	base   http.RoundTripper
	logger *slog.Logger

	sleep sleepFunc
}

// NewRetryTransport wraps base with bounded retry for GET requests.
func NewRetryTransport(base http.RoundTripper, logger *slog.Logger) *RetryTransport {
	if base == nil {
		base = http.DefaultTransport
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &RetryTransport{
		base:   base,
		logger: logger,
		sleep:  sleepContext,
	}
}

// retryable reports whether the attempt outcome is a transient failure worth
// another try: a transport-level error (no response) or a 5xx status.
func retryable(resp *http.Response, err error) bool {
	if err != nil {
		return true
	}
	return resp.StatusCode >= 500 && resp.StatusCode < 600
}

func (t *RetryTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Method != http.MethodGet {
		return t.base.RoundTrip(req)
	}

	var (
		resp *http.Response
		err  error
	)
	for attempt := 0; ; attempt++ {
		attemptReq := req
		if attempt > 0 {
			var cloneErr error
			attemptReq, cloneErr = cloneForReplay(req)
			if cloneErr != nil {
				return resp, err
			}
		}

		resp, err = t.base.RoundTrip(attemptReq)
		if !retryable(resp, err) {
			return resp, err
		}
		if attempt >= readRetries {
			return resp, err
		}

		if resp != nil {
			drainAndClose(resp.Body)
			resp.Body = http.NoBody
		}

		delay := readRetryBaseWait << attempt
		t.logger.Debug("retrying read request",
			"url", req.URL.Path,
			"attempt", attempt+1,
			"delay", delay,
			"error", err,
		)
		if sleepErr := t.sleep(req.Context(), delay); sleepErr != nil {
			return resp, err
		}
	}
}
