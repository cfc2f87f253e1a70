package transportx

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/siteshield/siteshield-go/pkg/identity"
)

// RefreshFailureCooldown is how long new refresh attempts are skipped after a
// failed refresh, protecting the identity provider from repeated failing
// calls while the user's session is genuinely dead.
const RefreshFailureCooldown = 5 * time.Second

var errEmptyRefreshedToken = errors.New("transportx: refresh yielded an empty token")

// RefreshCoordinator owns the cross-request refresh state: the single-flight
// group sharing one in-flight refresh among all concurrent callers, and the
// failure-cooldown timestamp. It is an injected, mutex-guarded object rather
// than package globals so tests can own their own instance.
type RefreshCoordinator struct {
	provider identity.TokenProvider
	cooldown time.Duration

	mu          sync.Mutex
	lastFailure time.Time
	group       singleflight.Group

	// now is replaceable for tests.
	now func() time.Time
}

// NewRefreshCoordinator creates a coordinator with the standard cooldown.
func NewRefreshCoordinator(provider identity.TokenProvider) *RefreshCoordinator {
	return &RefreshCoordinator{
		provider: provider,
		cooldown: RefreshFailureCooldown,
		now:      time.Now,
	}
}

// InCooldown reports whether a refresh failed within the cooldown window.
func (c *RefreshCoordinator) InCooldown() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return !c.lastFailure.IsZero() && c.now().Sub(c.lastFailure) < c.cooldown
}

// Refresh obtains a verified-fresh token, bypassing the provider's cache. If
// a refresh is already in flight, the caller awaits that same result instead
// of starting another; the in-flight handle is discarded as soon as the call
// settles, success or failure, before any further refresh can begin. An empty
// token counts as a failure. Failures start the cooldown window; success
// clears it.
func (c *RefreshCoordinator) Refresh(ctx context.Context) (string, error) {
	result, err, _ := c.group.Do("token-refresh", func() (any, error) {
		token, err := c.provider.AccessToken(ctx, identity.TokenRequest{ForceRefresh: true})
		if err != nil {
			c.recordFailure()
			return nil, err
		}
		if token == "" {
			c.recordFailure()
			return nil, errEmptyRefreshedToken
		}
		c.clearFailure()
		return token, nil
	})
	if err != nil {
		return "", err
	}
	return result.(string), nil
}

func (c *RefreshCoordinator) recordFailure() {
	c.mu.Lock()
	c.lastFailure = c.now()
	c.mu.Unlock()
}

func (c *RefreshCoordinator) clearFailure() {
	c.mu.Lock()
	c.lastFailure = time.Time{}
	c.mu.Unlock()
}

// RefreshTransport recovers from 401 responses on API requests made while the
// session claims to be authenticated: it obtains one fresh token through the
// coordinator and replays the original request exactly once, marked with
// HeaderRetryAttempt so no further refresh loops are possible. The replay
// goes back through the wrapped chain, so tenant and CSRF headers are applied
// to it as usual while the auth transport passes it through.
//
// All user-facing messaging for 401s lives here; the failure classifier
// deliberately stays silent on 401 so a terminal authentication failure
// yields exactly one notification.
type RefreshTransport struct {
	base     http.RoundTripper
	apiBase  string
	provider identity.TokenProvider
	coord    *RefreshCoordinator
	notifier Notifier
	logger   *slog.Logger
}

// NewRefreshTransport wraps base (the remainder of the pipeline) with 401
// recovery.
func NewRefreshTransport(
	base http.RoundTripper,
	apiBase string,
	provider identity.TokenProvider,
	coord *RefreshCoordinator,
	notifier Notifier,
	logger *slog.Logger,
) *RefreshTransport {
	if base == nil {
		base = http.DefaultTransport
	}
	if notifier == nil {
		notifier = NopNotifier{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &RefreshTransport{
		base:     base,
		apiBase:  apiBase,
		provider: provider,
		coord:    coord,
		notifier: notifier,
		logger:   logger,
	}
}

func (t *RefreshTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	resp, err := t.base.RoundTrip(req)
	if err != nil || resp.StatusCode != http.StatusUnauthorized {
		return resp, err
	}
	if !underBase(req, t.apiBase) {
		return resp, nil
	}

	// A 401 while unauthenticated is expected during login flows; stay
	// silent and let the caller handle it.
	if !t.provider.IsAuthenticated() {
		return resp, nil
	}

	// Already replayed once with a fresh token; refreshing again cannot
	// help.
	if req.Header.Get(HeaderRetryAttempt) != "" {
		t.notifySessionExpired()
		return resp, nil
	}

	if t.coord.InCooldown() {
		t.notifySessionExpired()
		return resp, nil
	}

	token, refreshErr := t.coord.Refresh(req.Context())
	if refreshErr != nil {
		if !identity.IsConsentRequired(refreshErr) {
			t.logger.Warn("token refresh failed",
				"url", req.URL.Path,
				"error", refreshErr,
			)
		}
		t.notifySessionExpired()
		return resp, nil
	}

	replay, cloneErr := cloneForReplay(req)
	if cloneErr != nil {
		t.logger.Warn("cannot replay request after refresh", "url", req.URL.Path, "error", cloneErr)
		return resp, nil
	}
	replay.Header.Set("Authorization", "Bearer "+token)
	replay.Header.Set(HeaderRetryAttempt, "true")

	drainAndClose(resp.Body)

	replayResp, replayErr := t.base.RoundTrip(replay)
	if replayErr == nil && replayResp.StatusCode == http.StatusUnauthorized {
		t.notifySessionExpired()
	}
	return replayResp, replayErr
}

func (t *RefreshTransport) notifySessionExpired() {
	t.notifier.Notify(Notification{
		Severity: SeverityWarn,
		Summary:  "Authentication Required",
		Detail:   "Your session has expired. Please log in again.",
		Life:     NotificationLife,
	})
}
