package identity

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"
)

// expirySkew is subtracted from the reported token lifetime so a refresh
// happens before the backend starts rejecting the token.
const expirySkew = 30 * time.Second

// OIDCConfig configures an OIDCProvider.
type OIDCConfig struct {
	// TokenURL is the identity provider's token endpoint.
	TokenURL string

	// ClientID identifies this application to the provider.
	ClientID string

	// ClientSecret enables the client_credentials grant for
	// machine-to-machine sessions. Optional.
	ClientSecret string

	// Audience is the API identifier requested for issued tokens. Optional.
	Audience string

	// Scopes requested on initial grants. Optional.
	Scopes []string

	// RefreshToken seeds the session from a previously persisted refresh
	// token. Optional.
	RefreshToken string

	// Sink, when set, is notified after every successful grant and on
	// logout so rotated refresh tokens can be persisted.
	Sink TokenSink

	// HTTPClient performs token-endpoint calls. Defaults to a client with
	// a 10 second timeout. This client must NOT use the authenticated
	// pipeline transport, or a refresh could recurse into itself.
	HTTPClient *http.Client

	Logger *slog.Logger
}

// OIDCProvider implements TokenProvider against a standard OAuth2/OIDC token
// endpoint using the refresh_token and client_credentials grants. It caches
// the access token until shortly before expiry and refreshes on demand with a
// mutex-guarded double check, so concurrent callers trigger a single grant.
type OIDCProvider struct {
	cfg        OIDCConfig
	httpClient *http.Client
	logger     *slog.Logger

	mu           sync.RWMutex
	accessToken  string
	refreshToken string
	expiresAt    time.Time
	claims       Claims

	// now is replaceable for tests.
	now func() time.Time
}

// NewOIDCProvider creates a provider. The session starts unauthenticated
// unless cfg.RefreshToken is set.
func NewOIDCProvider(cfg OIDCConfig) *OIDCProvider {
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &OIDCProvider{
		cfg:          cfg,
		httpClient:   httpClient,
		logger:       logger,
		refreshToken: cfg.RefreshToken,
		now:          time.Now,
	}
}

// SetTokens seeds session state, typically from a persisted TokenSet.
func (p *OIDCProvider) SetTokens(set TokenSet) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.accessToken = set.AccessToken
	p.refreshToken = set.RefreshToken
	p.expiresAt = set.ExpiresAt
	p.claims = nil
	if set.AccessToken != "" {
		if claims, err := ParseClaims(set.AccessToken); err == nil {
			p.claims = claims
		}
	}
}

// IsAuthenticated reports whether any session credentials exist. The access
// token may already be expired; the pipeline's refresh path handles that.
func (p *OIDCProvider) IsAuthenticated() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.accessToken != "" || p.refreshToken != ""
}

// Claims returns the claims parsed from the current access token.
func (p *OIDCProvider) Claims() (Claims, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.claims == nil {
		return nil, false
	}
	return p.claims, true
}

// AccessToken returns a bearer token, refreshing through the token endpoint
// when the cached one is expired or req.ForceRefresh is set.
func (p *OIDCProvider) AccessToken(ctx context.Context, req TokenRequest) (string, error) {
	if !req.ForceRefresh {
		p.mu.RLock()
		if p.accessToken != "" && p.now().Before(p.expiresAt) {
			token := p.accessToken
			p.mu.RUnlock()
			return token, nil
		}
		p.mu.RUnlock()
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	// Another caller may have refreshed while we waited for the lock.
	if !req.ForceRefresh && p.accessToken != "" && p.now().Before(p.expiresAt) {
		return p.accessToken, nil
	}

	if p.refreshToken == "" {
		if p.cfg.ClientSecret != "" {
			return p.grantLocked(ctx, p.clientCredentialsForm())
		}
		return "", ErrNotAuthenticated
	}

	return p.grantLocked(ctx, p.refreshForm())
}

// Login establishes a session from the configured credentials: the stored
// refresh token when present, otherwise the client_credentials grant.
func (p *OIDCProvider) Login(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	var form url.Values
	switch {
	case p.refreshToken != "":
		form = p.refreshForm()
	case p.cfg.ClientSecret != "":
		form = p.clientCredentialsForm()
	default:
		return ErrNotAuthenticated
	}

	_, err := p.grantLocked(ctx, form)
	return err
}

// Logout clears session state and any persisted tokens.
func (p *OIDCProvider) Logout(ctx context.Context) error {
	p.mu.Lock()
	p.accessToken = ""
	p.refreshToken = ""
	p.expiresAt = time.Time{}
	p.claims = nil
	p.mu.Unlock()

	if p.cfg.Sink != nil {
		return p.cfg.Sink.ClearTokens(ctx)
	}
	return nil
}

func (p *OIDCProvider) refreshForm() url.Values {
	form := url.Values{
		"grant_type":    {"refresh_token"},
		"refresh_token": {p.refreshToken},
		"client_id":     {p.cfg.ClientID},
	}
	if p.cfg.Audience != "" {
		form.Set("audience", p.cfg.Audience)
	}
	return form
}

func (p *OIDCProvider) clientCredentialsForm() url.Values {
	form := url.Values{
		"grant_type":    {"client_credentials"},
		"client_id":     {p.cfg.ClientID},
		"client_secret": {p.cfg.ClientSecret},
	}
	if p.cfg.Audience != "" {
		form.Set("audience", p.cfg.Audience)
	}
	if len(p.cfg.Scopes) > 0 {
		form.Set("scope", strings.Join(p.cfg.Scopes, " "))
	}
	return form
}

// tokenResponse is the token endpoint response per RFC 6749.
type tokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token,omitempty"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int    `json:"expires_in"`
	Scope        string `json:"scope,omitempty"`
}

// grantErrorResponse is the token endpoint error body per RFC 6749.
type grantErrorResponse struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

// grantLocked performs one token-endpoint call and updates session state.
// Callers must hold p.mu.
func (p *OIDCProvider) grantLocked(ctx context.Context, form url.Values) (string, error) {
	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		p.cfg.TokenURL,
		strings.NewReader(form.Encode()),
	)
	if err != nil {
		return "", fmt.Errorf("failed to create token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to send token request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read token response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", p.grantError(resp.StatusCode, body)
	}

	var token tokenResponse
	if err := json.Unmarshal(body, &token); err != nil {
		return "", fmt.Errorf("failed to decode token response: %w", err)
	}

	p.accessToken = token.AccessToken
	if token.RefreshToken != "" {
		p.refreshToken = token.RefreshToken
	}
	p.expiresAt = p.now().Add(time.Duration(token.ExpiresIn)*time.Second - expirySkew)
	p.claims = nil
	if token.AccessToken != "" {
		if claims, err := ParseClaims(token.AccessToken); err == nil {
			p.claims = claims
		} else {
			p.logger.Debug("access token claims not parseable", "error", err)
		}
	}

	if p.cfg.Sink != nil {
		set := TokenSet{
			AccessToken:  p.accessToken,
			RefreshToken: p.refreshToken,
			Scope:        token.Scope,
			ExpiresAt:    p.expiresAt,
		}
		if err := p.cfg.Sink.StoreTokens(ctx, set); err != nil {
			// The grant itself succeeded; a persistence failure only
			// costs durability across restarts.
			p.logger.Warn("failed to persist tokens", "error", err)
		}
	}

	return p.accessToken, nil
}

// grantError maps a token-endpoint error body to a typed error, keeping the
// consent-required condition distinguishable.
func (p *OIDCProvider) grantError(status int, body []byte) error {
	var errResp grantErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error != "" {
		if errResp.Error == "consent_required" ||
			strings.Contains(errResp.ErrorDescription, "Consent required") {
			return fmt.Errorf("%w: %s", ErrConsentRequired, errResp.ErrorDescription)
		}
		return fmt.Errorf("token grant failed: %s: %s", errResp.Error, errResp.ErrorDescription)
	}
	return fmt.Errorf("token grant failed with status %d: %s", status, string(body))
}
