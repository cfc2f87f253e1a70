package transportx

import (
	"net/http"
	"strings"

	"github.com/siteshield/siteshield-go/pkg/identity"
)

// DefaultTenantClaimKeys is the claim-key chain checked in priority order
// when resolving the tenant for the X-Tenant-Id header. The namespaced keys
// come first because the identity provider prefixes custom claims.
var DefaultTenantClaimKeys = []string{
	"https://ss-app.com/tenantId",
	"tenantId",
	"tenant_id",
	"https://api.siteshield.com/tenantId",
}

// defaultBootstrapPath is the session-bootstrap endpoint. It never carries a
// tenant header: the backend resolves the tenant from the authenticated
// identity while the user record is being synced.
const defaultBootstrapPath = "/auth/sync"

// TenantTransport attaches X-Tenant-Id to API requests, resolving the tenant
// from the first non-empty claim in the configured key chain. When no claim
// matches, the header is omitted and the backend resolves the tenant from the
// authenticated identity.
type TenantTransport struct {
	base     http.RoundTripper
	apiBase  string
	provider identity.TokenProvider

	// claimKeys is an ordered lookup chain; extend it rather than adding
	// branching logic.
	claimKeys     []string
	bootstrapPath string
}

// NewTenantTransport wraps base with tenant-header attachment using
// DefaultTenantClaimKeys.
func NewTenantTransport(
	base http.RoundTripper,
	apiBase string,
	provider identity.TokenProvider,
) *TenantTransport {
	if base == nil {
		base = http.DefaultTransport
	}
	return &TenantTransport{
		base:          base,
		apiBase:       apiBase,
		provider:      provider,
		claimKeys:     DefaultTenantClaimKeys,
		bootstrapPath: defaultBootstrapPath,
	}
}

// WithClaimKeys replaces the claim-key chain. Keys are checked in order.
func (t *TenantTransport) WithClaimKeys(keys ...string) *TenantTransport {
	t.claimKeys = keys
	return t
}

func (t *TenantTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if !underBase(req, t.apiBase) {
		return t.base.RoundTrip(req)
	}
	if strings.Contains(req.URL.Path, t.bootstrapPath) {
		return t.base.RoundTrip(req)
	}
	if !t.provider.IsAuthenticated() {
		return t.base.RoundTrip(req)
	}

	claims, ok := t.provider.Claims()
	if !ok {
		return t.base.RoundTrip(req)
	}

	for _, key := range t.claimKeys {
		if tenantID := claims.String(key); tenantID != "" {
			clone := req.Clone(req.Context())
			clone.Header.Set(HeaderTenantID, tenantID)
			return t.base.RoundTrip(clone)
		}
	}

	return t.base.RoundTrip(req)
}
