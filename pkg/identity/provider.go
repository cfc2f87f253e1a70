// Package identity defines the access-token provider boundary consumed by the
// SiteShield request pipeline, along with a concrete OIDC refresh-grant
// implementation. The pipeline only ever sees the TokenProvider interface, so
// alternative providers (test fakes, platform SDK wrappers) plug in without
// touching transport code.
package identity

import (
	"context"
	"time"
)

// TokenRequest carries per-fetch options for AccessToken.
type TokenRequest struct {
	// ForceRefresh bypasses any cached token and obtains a verified-fresh
	// one from the identity provider. Used by the 401 recovery path.
	ForceRefresh bool
}

// TokenProvider is the identity-provider surface the request pipeline depends
// on. Implementations must be safe for concurrent use; IsAuthenticated and
// Claims are non-blocking snapshots and must never perform network I/O.
type TokenProvider interface {
	// IsAuthenticated reports whether the session currently claims to be
	// authenticated. A true result does not guarantee the access token is
	// still valid, only that credentials exist.
	IsAuthenticated() bool

	// Claims returns the current user claims and true, or false when no
	// user is known.
	Claims() (Claims, bool)

	// AccessToken returns a bearer token, refreshing as needed. It may
	// return an empty token with a nil error; callers treat that as "send
	// the request without a token and let the backend answer".
	AccessToken(ctx context.Context, req TokenRequest) (string, error)

	// Login establishes a session from the provider's configured
	// credentials (stored refresh token or client secret).
	Login(ctx context.Context) error

	// Logout discards session state and any persisted tokens.
	Logout(ctx context.Context) error
}

// TokenSet is the provider-agnostic result of a successful grant.
type TokenSet struct {
	AccessToken  string
	RefreshToken string
	Scope        string
	ExpiresAt    time.Time
}

// TokenSink receives token updates after each successful grant. Refresh
// tokens rotate on use, so anything persisting them must observe every
// rotation or the stored token goes stale.
type TokenSink interface {
	StoreTokens(ctx context.Context, set TokenSet) error
	ClearTokens(ctx context.Context) error
}
