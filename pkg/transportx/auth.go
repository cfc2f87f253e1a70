package transportx

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/siteshield/siteshield-go/pkg/identity"
)

// Token-retrieval retry bounds: one initial attempt plus up to three retries,
// backing off 500ms, 1s, 2s.
const (
	tokenFetchRetries  = 3
	tokenFetchBaseWait = 500 * time.Millisecond
	tokenFetchMaxWait  = 2 * time.Second
)

// AuthTransport attaches a bearer token to API requests. Requests outside the
// API base, requests already carrying the retry marker (they were given a
// fresh token by the refresh path), and requests made while unauthenticated
// pass through untouched.
//
// When token retrieval fails or yields an empty token, the request is still
// sent without an Authorization header: the backend answers 401 and the
// refresh path takes over. This is deliberate; the server owns the "no token"
// decision.
type AuthTransport struct {
	base     http.RoundTripper
	apiBase  string
	provider identity.TokenProvider
	logger   *slog.Logger

	sleep sleepFunc
}

// NewAuthTransport wraps base with bearer-token attachment for requests under
// apiBase.
func NewAuthTransport(
	base http.RoundTripper,
	apiBase string,
	provider identity.TokenProvider,
	logger *slog.Logger,
) *AuthTransport {
	if base == nil {
		base = http.DefaultTransport
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &AuthTransport{
		base:     base,
		apiBase:  apiBase,
		provider: provider,
		logger:   logger,
		sleep:    sleepContext,
	}
}

func (t *AuthTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if !underBase(req, t.apiBase) {
		return t.base.RoundTrip(req)
	}
	if req.Header.Get(HeaderRetryAttempt) != "" {
		return t.base.RoundTrip(req)
	}
	if !t.provider.IsAuthenticated() {
		return t.base.RoundTrip(req)
	}

	token, err := t.fetchToken(req.Context())
	if err != nil {
		if !identity.IsConsentRequired(err) {
			t.logger.Warn("token retrieval failed, sending request without token",
				"url", req.URL.Path,
				"error", err,
			)
		}
		return t.base.RoundTrip(req)
	}
	if token == "" {
		t.logger.Warn("token provider returned empty token, sending request without it",
			"url", req.URL.Path,
		)
		return t.base.RoundTrip(req)
	}

	clone := req.Clone(req.Context())
	clone.Header.Set("Authorization", "Bearer "+token)
	return t.base.RoundTrip(clone)
}

// fetchToken asks the provider for a token, retrying transient failures with
// exponential backoff. Consent-required failures propagate immediately: they
// need user interaction and retrying cannot help.
func (t *AuthTransport) fetchToken(ctx context.Context) (string, error) {
	var lastErr error
	for attempt := 0; ; attempt++ {
		token, err := t.provider.AccessToken(ctx, identity.TokenRequest{})
		if err == nil {
			return token, nil
		}
		if identity.IsConsentRequired(err) {
			return "", err
		}
		lastErr = err
		if attempt >= tokenFetchRetries {
			return "", lastErr
		}

		delay := tokenFetchBaseWait << attempt
		if delay > tokenFetchMaxWait {
			delay = tokenFetchMaxWait
		}
		if err := t.sleep(ctx, delay); err != nil {
			return "", lastErr
		}
	}
}
