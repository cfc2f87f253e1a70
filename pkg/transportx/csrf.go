package transportx

import (
	"net/http"
	"net/url"
)

// CookieSource exposes cookies for a URL. *http.CookieJar implementations
// satisfy it directly.
type CookieSource interface {
	Cookies(u *url.URL) []*http.Cookie
}

// CSRFTransport implements the double-submit cookie pattern: for
// state-changing API requests it mirrors the XSRF-TOKEN cookie into the
// X-CSRF-Token header. A missing cookie is not an error; the backend accepts
// a valid bearer token as an alternative proof.
type CSRFTransport struct {
	base       http.RoundTripper
	apiBase    string
	cookies    CookieSource
	cookieName string
}

// NewCSRFTransport wraps base with CSRF-header mirroring from cookies.
func NewCSRFTransport(base http.RoundTripper, apiBase string, cookies CookieSource) *CSRFTransport {
	if base == nil {
		base = http.DefaultTransport
	}
	return &CSRFTransport{
		base:       base,
		apiBase:    apiBase,
		cookies:    cookies,
		cookieName: CSRFCookieName,
	}
}

// isStateChanging reports whether method can mutate server state.
func isStateChanging(method string) bool {
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
		return true
	default:
		return false
	}
}

func (t *CSRFTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if !underBase(req, t.apiBase) {
		return t.base.RoundTrip(req)
	}
	if !isStateChanging(req.Method) {
		return t.base.RoundTrip(req)
	}
	if t.cookies == nil {
		return t.base.RoundTrip(req)
	}

	for _, cookie := range t.cookies.Cookies(req.URL) {
		if cookie.Name == t.cookieName && cookie.Value != "" {
			clone := req.Clone(req.Context())
			clone.Header.Set(HeaderCSRFToken, cookie.Value)
			return t.base.RoundTrip(clone)
		}
	}

	return t.base.RoundTrip(req)
}
