package transportx

import (
	"errors"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/siteshield/siteshield-go/pkg/identity"
)

func sessionExpired(n Notification) bool {
	return n.Severity == SeverityWarn &&
		n.Summary == "Authentication Required" &&
		n.Detail == "Your session has expired. Please log in again."
}

func TestRefreshReplaysOnceWithFreshToken(t *testing.T) {
	t.Parallel()

	provider := &fakeProvider{authenticated: true}
	provider.tokenFn = func(identity.TokenRequest) (string, error) { return "fresh-token", nil }

	notifier := &recordingNotifier{}
	var requests []*http.Request
	base := rtFunc(func(req *http.Request) (*http.Response, error) {
		requests = append(requests, req)
		if req.Header.Get(HeaderRetryAttempt) != "" {
			return newResponse(http.StatusOK), nil
		}
		return newResponse(http.StatusUnauthorized), nil
	})

	transport := NewRefreshTransport(
		base, testAPIBase, provider, NewRefreshCoordinator(provider), notifier, nil,
	)

	resp, err := transport.RoundTrip(newAPIRequest(http.MethodGet, "/site"))
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, requests, 2)

	replay := requests[1]
	require.Equal(t, "true", replay.Header.Get(HeaderRetryAttempt))
	require.Equal(t, "Bearer fresh-token", replay.Header.Get("Authorization"))

	// Recovery succeeded, so the user hears nothing.
	require.Empty(t, notifier.all())
	require.Equal(t, 1, provider.forceRefreshCalls())
}

func TestRefreshConcurrent401sShareOneRefresh(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	provider := &fakeProvider{authenticated: true}
	provider.tokenFn = func(req identity.TokenRequest) (string, error) {
		<-release
		return "fresh-token", nil
	}

	base := rtFunc(func(req *http.Request) (*http.Response, error) {
		if req.Header.Get(HeaderRetryAttempt) != "" {
			return newResponse(http.StatusOK), nil
		}
		return newResponse(http.StatusUnauthorized), nil
	})
	transport := NewRefreshTransport(
		base, testAPIBase, provider, NewRefreshCoordinator(provider), nil, nil,
	)

	const concurrency = 8
	var wg sync.WaitGroup
	results := make([]int, concurrency)
	errs := make([]error, concurrency)

	for i := 0; i < concurrency; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			resp, err := transport.RoundTrip(newAPIRequest(http.MethodGet, "/site"))
			errs[i] = err
			if err == nil {
				results[i] = resp.StatusCode
				resp.Body.Close()
			}
		}(i)
	}

	// Let all goroutines pile onto the in-flight refresh before it settles.
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	for i := 0; i < concurrency; i++ {
		require.NoError(t, errs[i])
		require.Equal(t, http.StatusOK, results[i])
	}
	require.Equal(t, 1, provider.forceRefreshCalls())
}

func TestRefreshFailureNotifiesAndReturnsOriginal(t *testing.T) {
	t.Parallel()

	provider := &fakeProvider{authenticated: true}
	provider.tokenFn = func(identity.TokenRequest) (string, error) {
		return "", errors.New("refresh_token expired")
	}

	notifier := &recordingNotifier{}
	attempts := 0
	base := rtFunc(func(req *http.Request) (*http.Response, error) {
		attempts++
		return newResponse(http.StatusUnauthorized), nil
	})
	transport := NewRefreshTransport(
		base, testAPIBase, provider, NewRefreshCoordinator(provider), notifier, nil,
	)

	resp, err := transport.RoundTrip(newAPIRequest(http.MethodGet, "/site"))
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	require.Equal(t, 1, attempts)

	notifications := notifier.all()
	require.Len(t, notifications, 1)
	require.True(t, sessionExpired(notifications[0]))
	require.Equal(t, NotificationLife, notifications[0].Life)
}

func TestRefreshEmptyTokenCountsAsFailure(t *testing.T) {
	t.Parallel()

	provider := &fakeProvider{authenticated: true}

	notifier := &recordingNotifier{}
	coord := NewRefreshCoordinator(provider)
	transport := NewRefreshTransport(
		rtFunc(func(req *http.Request) (*http.Response, error) {
			return newResponse(http.StatusUnauthorized), nil
		}),
		testAPIBase, provider, coord, notifier, nil,
	)

	resp, err := transport.RoundTrip(newAPIRequest(http.MethodGet, "/site"))
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	require.Len(t, notifier.all(), 1)
	require.True(t, coord.InCooldown())
}

func TestRefreshCooldownSkipsProvider(t *testing.T) {
	t.Parallel()

	provider := &fakeProvider{authenticated: true}
	provider.tokenFn = func(identity.TokenRequest) (string, error) {
		return "", errors.New("refresh_token expired")
	}

	now := time.Now()
	coord := NewRefreshCoordinator(provider)
	coord.now = func() time.Time { return now }

	notifier := &recordingNotifier{}
	transport := NewRefreshTransport(
		rtFunc(func(req *http.Request) (*http.Response, error) {
			return newResponse(http.StatusUnauthorized), nil
		}),
		testAPIBase, provider, coord, notifier, nil,
	)

	// First 401 attempts a refresh and starts the cooldown.
	resp, err := transport.RoundTrip(newAPIRequest(http.MethodGet, "/site"))
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, 1, provider.forceRefreshCalls())

	// Within the window the provider is left alone.
	now = now.Add(RefreshFailureCooldown - time.Millisecond)
	resp, err = transport.RoundTrip(newAPIRequest(http.MethodGet, "/site"))
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, 1, provider.forceRefreshCalls())

	// Both failures notified the user.
	require.Len(t, notifier.all(), 2)

	// Once the window lapses, refresh is attempted again.
	now = now.Add(2 * time.Millisecond)
	resp, err = transport.RoundTrip(newAPIRequest(http.MethodGet, "/site"))
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, 2, provider.forceRefreshCalls())
}

func TestRefreshSuccessClearsCooldown(t *testing.T) {
	t.Parallel()

	failing := true
	provider := &fakeProvider{authenticated: true}
	provider.tokenFn = func(identity.TokenRequest) (string, error) {
		if failing {
			return "", errors.New("temporarily down")
		}
		return "fresh-token", nil
	}

	now := time.Now()
	coord := NewRefreshCoordinator(provider)
	coord.now = func() time.Time { return now }

	base := rtFunc(func(req *http.Request) (*http.Response, error) {
		if req.Header.Get(HeaderRetryAttempt) != "" {
			return newResponse(http.StatusOK), nil
		}
		return newResponse(http.StatusUnauthorized), nil
	})
	transport := NewRefreshTransport(base, testAPIBase, provider, coord, nil, nil)

	resp, err := transport.RoundTrip(newAPIRequest(http.MethodGet, "/site"))
	require.NoError(t, err)
	resp.Body.Close()
	require.True(t, coord.InCooldown())

	failing = false
	now = now.Add(RefreshFailureCooldown + time.Millisecond)

	resp, err = transport.RoundTrip(newAPIRequest(http.MethodGet, "/site"))
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.False(t, coord.InCooldown())
}

func TestRefreshMarkedRequestIsNeverRefreshedAgain(t *testing.T) {
	t.Parallel()

	provider := &fakeProvider{authenticated: true}
	provider.tokenFn = func(identity.TokenRequest) (string, error) { return "fresh-token", nil }

	notifier := &recordingNotifier{}
	transport := NewRefreshTransport(
		rtFunc(func(req *http.Request) (*http.Response, error) {
			return newResponse(http.StatusUnauthorized), nil
		}),
		testAPIBase, provider, NewRefreshCoordinator(provider), notifier, nil,
	)

	req := newAPIRequest(http.MethodGet, "/site")
	req.Header.Set(HeaderRetryAttempt, "true")

	resp, err := transport.RoundTrip(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	require.Zero(t, provider.forceRefreshCalls())

	notifications := notifier.all()
	require.Len(t, notifications, 1)
	require.True(t, sessionExpired(notifications[0]))
}

func TestRefreshReplay401NotifiesOnce(t *testing.T) {
	t.Parallel()

	provider := &fakeProvider{authenticated: true}
	provider.tokenFn = func(identity.TokenRequest) (string, error) { return "fresh-token", nil }

	notifier := &recordingNotifier{}
	transport := NewRefreshTransport(
		rtFunc(func(req *http.Request) (*http.Response, error) {
			// Even the replayed request is rejected.
			return newResponse(http.StatusUnauthorized), nil
		}),
		testAPIBase, provider, NewRefreshCoordinator(provider), notifier, nil,
	)

	resp, err := transport.RoundTrip(newAPIRequest(http.MethodGet, "/site"))
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	require.Equal(t, 1, provider.forceRefreshCalls())

	notifications := notifier.all()
	require.Len(t, notifications, 1)
	require.True(t, sessionExpired(notifications[0]))
}

func TestRefreshSilentWhenUnauthenticated(t *testing.T) {
	t.Parallel()

	provider := &fakeProvider{authenticated: false}

	notifier := &recordingNotifier{}
	transport := NewRefreshTransport(
		rtFunc(func(req *http.Request) (*http.Response, error) {
			return newResponse(http.StatusUnauthorized), nil
		}),
		testAPIBase, provider, NewRefreshCoordinator(provider), notifier, nil,
	)

	resp, err := transport.RoundTrip(newAPIRequest(http.MethodGet, "/site"))
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	require.Empty(t, notifier.all())
	require.Zero(t, provider.accessTokenCalls())
}

func TestRefreshIgnoresNonAPIRequests(t *testing.T) {
	t.Parallel()

	provider := &fakeProvider{authenticated: true}

	notifier := &recordingNotifier{}
	transport := NewRefreshTransport(
		rtFunc(func(req *http.Request) (*http.Response, error) {
			return newResponse(http.StatusUnauthorized), nil
		}),
		testAPIBase, provider, NewRefreshCoordinator(provider), notifier, nil,
	)

	req, err := http.NewRequest(http.MethodGet, "https://other.example.com/health", nil)
	require.NoError(t, err)

	resp, err := transport.RoundTrip(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Empty(t, notifier.all())
	require.Zero(t, provider.accessTokenCalls())
}
