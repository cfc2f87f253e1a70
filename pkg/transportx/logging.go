package transportx

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/siteshield/siteshield-go/pkg/slogx"
)

// LoggingTransport logs round trips through slog. Expected outcomes (2xx/3xx,
// and 401/403 which are part of normal auth flows) log at debug; server
// errors and transport failures log at warn.
type LoggingTransport struct {
	base   http.RoundTripper
	logger *slog.Logger
}

// NewLoggingTransport wraps base with round-trip logging. A nil logger means
// each request's logger is resolved from its context via slogx.FromContext.
func NewLoggingTransport(base http.RoundTripper, logger *slog.Logger) *LoggingTransport {
	if base == nil {
		base = http.DefaultTransport
	}
	return &LoggingTransport{
		base:   base,
		logger: logger,
	}
}

func (t *LoggingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	logger := t.logger
	if logger == nil {
		logger = slogx.FromContext(req.Context())
	}

	start := time.Now()
	resp, err := t.base.RoundTrip(req)
	elapsed := time.Since(start)

	if err != nil {
		logger.Warn("http request failed",
			"method", req.Method,
			"url", req.URL.Path,
			"duration", elapsed,
			"error", err,
		)
		return resp, err
	}

	level := slog.LevelDebug
	if resp.StatusCode >= 500 {
		level = slog.LevelWarn
	}
	logger.Log(req.Context(), level, "http request",
		"method", req.Method,
		"url", req.URL.Path,
		"status", resp.StatusCode,
		"duration", elapsed,
	)
	return resp, nil
}
