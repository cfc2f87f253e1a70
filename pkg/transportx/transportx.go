// Package transportx implements the SiteShield authenticated-request pipeline
// as composable http.RoundTripper middleware: bearer-token attachment, tenant
// and CSRF headers, bounded retry for reads, single-flight token refresh on
// 401, and terminal-failure notification.
//
// The transports are assembled outermost-first as
//
//	Notify -> Refresh -> Retry -> Auth -> Tenant -> CSRF -> RequestID -> [RateLimit] -> Logging -> base
//
// so that a request replayed by the refresh coordinator re-traverses the
// header-attaching transports, while the failure classifier observes the final
// outcome after retry and refresh have run their course.
package transportx

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"
)

// Header names understood by the SiteShield backend.
const (
	// HeaderRetryAttempt marks a request already replayed once after a
	// token refresh. Its presence stops any further refresh attempts.
	HeaderRetryAttempt = "X-Retry-Attempt"

	// HeaderTenantID carries the tenant resolved from user claims.
	HeaderTenantID = "X-Tenant-Id"

	// HeaderCSRFToken mirrors the CSRF cookie (double-submit pattern).
	HeaderCSRFToken = "X-CSRF-Token"

	// HeaderRequestID carries a client-generated correlation ID.
	HeaderRequestID = "X-Request-Id"
)

// CSRFCookieName is the same-site cookie mirrored into HeaderCSRFToken.
const CSRFCookieName = "XSRF-TOKEN"

// underBase reports whether the request targets the protected API. Requests
// outside the API base pass through every transport unmodified.
func underBase(req *http.Request, base string) bool {
	if base == "" {
		return false
	}
	return strings.HasPrefix(req.URL.String(), base)
}

// sleepFunc delays for d or until the context is done. Transports hold it as
// a field so tests can substitute a fake clock.
type sleepFunc func(ctx context.Context, d time.Duration) error

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

var errBodyNotReplayable = errors.New("transportx: request body cannot be replayed")

// cloneForReplay clones req with a fresh body so it can be sent again. The
// original body has already been consumed by the first attempt, so a body-
// carrying request without GetBody cannot be replayed.
func cloneForReplay(req *http.Request) (*http.Request, error) {
	clone := req.Clone(req.Context())
	if req.Body == nil || req.Body == http.NoBody {
		return clone, nil
	}
	if req.GetBody == nil {
		return nil, errBodyNotReplayable
	}
	body, err := req.GetBody()
	if err != nil {
		return nil, err
	}
	clone.Body = body
	return clone, nil
}

// drainAndClose discards an abandoned response body so the underlying
// connection can be reused.
func drainAndClose(body io.ReadCloser) {
	if body == nil {
		return
	}
	_, _ = io.Copy(io.Discard, io.LimitReader(body, 4096))
	_ = body.Close()
}
