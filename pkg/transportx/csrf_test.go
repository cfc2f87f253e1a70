package transportx

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func csrfRoundTrip(t *testing.T, cookies CookieSource, req *http.Request) *http.Request {
	t.Helper()

	var seen *http.Request
	transport := NewCSRFTransport(rtFunc(func(req *http.Request) (*http.Response, error) {
		seen = req
		return newResponse(http.StatusOK), nil
	}), testAPIBase, cookies)

	resp, err := transport.RoundTrip(req)
	require.NoError(t, err)
	resp.Body.Close()
	return seen
}

func TestCSRFMirrorsCookieOnStateChangingMethods(t *testing.T) {
	t.Parallel()

	cookies := staticCookies{{Name: CSRFCookieName, Value: "csrf-abc"}}

	for _, method := range []string{
		http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete,
	} {
		method := method
		t.Run(method, func(t *testing.T) {
			t.Parallel()

			seen := csrfRoundTrip(t, cookies, newAPIRequest(method, "/site"))
			require.Equal(t, "csrf-abc", seen.Header.Get(HeaderCSRFToken))
		})
	}
}

func TestCSRFSkipsReads(t *testing.T) {
	t.Parallel()

	cookies := staticCookies{{Name: CSRFCookieName, Value: "csrf-abc"}}

	for _, method := range []string{http.MethodGet, http.MethodHead, http.MethodOptions} {
		method := method
		t.Run(method, func(t *testing.T) {
			t.Parallel()

			seen := csrfRoundTrip(t, cookies, newAPIRequest(method, "/site"))
			require.Empty(t, seen.Header.Get(HeaderCSRFToken))
		})
	}
}

func TestCSRFMissingCookieIsNotAnError(t *testing.T) {
	t.Parallel()

	seen := csrfRoundTrip(t, staticCookies{}, newAPIRequest(http.MethodPost, "/site"))
	require.Empty(t, seen.Header.Get(HeaderCSRFToken))
}

func TestCSRFIgnoresOtherCookies(t *testing.T) {
	t.Parallel()

	cookies := staticCookies{
		{Name: "session", Value: "abc"},
		{Name: CSRFCookieName, Value: "csrf-abc"},
	}

	seen := csrfRoundTrip(t, cookies, newAPIRequest(http.MethodDelete, "/site/1"))
	require.Equal(t, "csrf-abc", seen.Header.Get(HeaderCSRFToken))
}
