// Package app wires configuration, logging, the token cache, the identity
// provider and the API client into a ready-to-use CLI application.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/siteshield/siteshield-go/internal/tokenstore"
	"github.com/siteshield/siteshield-go/pkg/identity"
	"github.com/siteshield/siteshield-go/pkg/shieldsdk"
	"github.com/siteshield/siteshield-go/pkg/slogx"
	"github.com/siteshield/siteshield-go/pkg/transportx"
)

const (
	// BuildVersion should be set at build time via ldflags.
	BuildVersion = "v0.1.0"
)

// Application holds the wired dependencies for one CLI invocation.
type Application struct {
	Cfg      Config
	Logger   *slog.Logger
	Store    *tokenstore.Store
	Provider *identity.OIDCProvider
	Client   *shieldsdk.Client
}

// New loads config, opens the token cache, seeds the identity provider from
// any persisted session and assembles the API client.
func New(ctx context.Context) (*Application, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, err
	}

	logger := slogx.New(slogx.Config{
		Service: "shieldctl",
		Version: BuildVersion,
		Env:     cfg.Env,
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
	})

	store, err := tokenstore.Open(cfg.TokenDBFile)
	if err != nil {
		return nil, fmt.Errorf("failed to open token store: %w", err)
	}

	provider := identity.NewOIDCProvider(identity.OIDCConfig{
		TokenURL:     cfg.TokenURL,
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		Audience:     cfg.Audience,
		Scopes:       cfg.Scopes,
		Sink:         store,
		Logger:       logger,
	})

	// Resume the previous session if one was persisted.
	set, err := store.LoadTokens(ctx)
	switch {
	case err == nil:
		provider.SetTokens(set)
	case errors.Is(err, tokenstore.ErrNoTokens):
		// First run, stay unauthenticated until login.
	default:
		_ = store.Close()
		return nil, fmt.Errorf("failed to load stored tokens: %w", err)
	}

	client, err := shieldsdk.New(shieldsdk.Config{
		BaseURL:           cfg.APIBaseURL,
		Provider:          provider,
		Notifier:          stderrNotifier(),
		Logger:            logger,
		RequestsPerMinute: cfg.RequestsPerMinute,
		Timeout:           cfg.RequestTimeout,
	})
	if err != nil {
		_ = store.Close()
		return nil, err
	}

	return &Application{
		Cfg:      cfg,
		Logger:   logger,
		Store:    store,
		Provider: provider,
		Client:   client,
	}, nil
}

// Close releases held resources.
func (app *Application) Close() error {
	return app.Store.Close()
}

// stderrNotifier renders pipeline notifications as single stderr lines, the
// CLI stand-in for the product's toast banners.
func stderrNotifier() transportx.Notifier {
	return transportx.NotifierFunc(func(n transportx.Notification) {
		fmt.Fprintf(os.Stderr, "[%s] %s: %s\n", n.Severity, n.Summary, n.Detail)
	})
}
