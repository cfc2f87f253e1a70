package transportx

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/siteshield/siteshield-go/pkg/identity"
)

const testAPIBase = "https://api.example.com/api"

// rtFunc adapts a function to http.RoundTripper.
type rtFunc func(req *http.Request) (*http.Response, error)

func (f rtFunc) RoundTrip(req *http.Request) (*http.Response, error) { return f(req) }

func newResponse(status int) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader("")),
		Header:     make(http.Header),
	}
}

// noSleep replaces the backoff sleep so tests run instantly, recording the
// requested delays.
type sleepRecorder struct {
	mu     sync.Mutex
	delays []time.Duration
}

func (s *sleepRecorder) sleep(ctx context.Context, d time.Duration) error {
	s.mu.Lock()
	s.delays = append(s.delays, d)
	s.mu.Unlock()
	return ctx.Err()
}

func (s *sleepRecorder) recorded() []time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]time.Duration(nil), s.delays...)
}

// fakeProvider is a scriptable identity.TokenProvider.
type fakeProvider struct {
	mu            sync.Mutex
	authenticated bool
	claims        identity.Claims

	// tokenFn services AccessToken calls; calls counts them, forceCalls
	// counts only ForceRefresh ones.
	tokenFn    func(req identity.TokenRequest) (string, error)
	calls      int
	forceCalls int
}

func (p *fakeProvider) IsAuthenticated() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.authenticated
}

func (p *fakeProvider) Claims() (identity.Claims, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.claims, p.claims != nil
}

func (p *fakeProvider) AccessToken(_ context.Context, req identity.TokenRequest) (string, error) {
	p.mu.Lock()
	p.calls++
	if req.ForceRefresh {
		p.forceCalls++
	}
	fn := p.tokenFn
	p.mu.Unlock()

	if fn == nil {
		return "", nil
	}
	return fn(req)
}

func (p *fakeProvider) Login(context.Context) error  { return nil }
func (p *fakeProvider) Logout(context.Context) error { return nil }

func (p *fakeProvider) accessTokenCalls() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.calls
}

func (p *fakeProvider) forceRefreshCalls() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.forceCalls
}

// recordingNotifier captures notifications for assertions.
type recordingNotifier struct {
	mu            sync.Mutex
	notifications []Notification
}

func (n *recordingNotifier) Notify(notification Notification) {
	n.mu.Lock()
	n.notifications = append(n.notifications, notification)
	n.mu.Unlock()
}

func (n *recordingNotifier) all() []Notification {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]Notification(nil), n.notifications...)
}

// staticCookies serves a fixed cookie set for every URL.
type staticCookies []*http.Cookie

func (c staticCookies) Cookies(*url.URL) []*http.Cookie { return c }

func newAPIRequest(method, path string) *http.Request {
	req, err := http.NewRequest(method, testAPIBase+path, nil)
	if err != nil {
		panic(err)
	}
	return req
}
