package transportx

import (
	"net/http"

	"github.com/siteshield/siteshield-go/pkg/idx"
)

// RequestIDTransport stamps each outgoing request with a ULID correlation ID
// when the caller did not set one. The backend echoes the ID in its logs,
// which makes client-to-server log correlation trivial.
type RequestIDTransport struct {
	base http.RoundTripper
}

// NewRequestIDTransport wraps base with request-ID stamping.
func NewRequestIDTransport(base http.RoundTripper) *RequestIDTransport {
	if base == nil {
		base = http.DefaultTransport
	}
	return &RequestIDTransport{base: base}
}

func (t *RequestIDTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Header.Get(HeaderRequestID) != "" {
		return t.base.RoundTrip(req)
	}

	clone := req.Clone(req.Context())
	clone.Header.Set(HeaderRequestID, idx.New().String())
	return t.base.RoundTrip(clone)
}
