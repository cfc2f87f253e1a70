package shieldsdk

import (
	"errors"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"strings"
	"time"

	"github.com/siteshield/siteshield-go/pkg/identity"
	"github.com/siteshield/siteshield-go/pkg/transportx"
)

// Config configures a Client.
type Config struct {
	// BaseURL is the API base, e.g. "https://api.siteshield.example.com/api".
	// Only requests under this prefix receive pipeline headers.
	BaseURL string

	// Provider supplies bearer tokens and session state.
	Provider identity.TokenProvider

	// Notifier receives user-visible failure notifications. Optional;
	// defaults to discarding them.
	Notifier transportx.Notifier

	Logger *slog.Logger

	// CookieJar holds backend cookies, including the CSRF cookie the
	// pipeline mirrors into X-CSRF-Token. Optional; a fresh in-memory jar
	// is created when nil.
	CookieJar http.CookieJar

	// RequestsPerMinute enables client-side throttling when positive.
	RequestsPerMinute int

	// Transport is the base RoundTripper under the pipeline. Optional;
	// defaults to http.DefaultTransport.
	Transport http.RoundTripper

	// Timeout bounds one logical request including retries and refresh.
	// Defaults to 30 seconds.
	Timeout time.Duration
}

// Client is a SiteShield API client. All methods are safe for concurrent use.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// New assembles the transport pipeline and returns a ready Client.
func New(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, errors.New("shieldsdk: BaseURL is required")
	}
	if cfg.Provider == nil {
		return nil, errors.New("shieldsdk: Provider is required")
	}

	baseURL := strings.TrimSuffix(cfg.BaseURL, "/")

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	jar := cfg.CookieJar
	if jar == nil {
		jar, _ = cookiejar.New(nil)
	}

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	// Assemble innermost-first. See the transportx package doc for the
	// ordering rationale.
	rt := cfg.Transport
	if rt == nil {
		rt = http.DefaultTransport
	}
	// A nil logger here makes round-trip logging pick up the per-request
	// context logger.
	rt = transportx.NewLoggingTransport(rt, cfg.Logger)
	if cfg.RequestsPerMinute > 0 {
		rt = transportx.NewRateLimitTransport(rt, transportx.NewClientLimiter(cfg.RequestsPerMinute))
	}
	rt = transportx.NewRequestIDTransport(rt)
	rt = transportx.NewCSRFTransport(rt, baseURL, jar)
	rt = transportx.NewTenantTransport(rt, baseURL, cfg.Provider)
	rt = transportx.NewAuthTransport(rt, baseURL, cfg.Provider, logger)
	rt = transportx.NewRetryTransport(rt, logger)
	coord := transportx.NewRefreshCoordinator(cfg.Provider)
	rt = transportx.NewRefreshTransport(rt, baseURL, cfg.Provider, coord, cfg.Notifier, logger)
	rt = transportx.NewNotifyTransport(rt, baseURL, cfg.Notifier)

	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Transport: rt,
			Jar:       jar,
			Timeout:   timeout,
		},
		logger: logger,
	}, nil
}

// HTTPClient exposes the pipeline-wrapped http.Client for callers that need
// raw access to endpoints the typed surface does not cover.
func (c *Client) HTTPClient() *http.Client {
	return c.httpClient
}

// BaseURL returns the configured API base without a trailing slash.
func (c *Client) BaseURL() string {
	return c.baseURL
}
