// Package cli implements the shieldctl command tree. Commands share one
// wired Application created lazily on first use, so config and token-store
// errors surface only for commands that actually talk to the backend.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/siteshield/siteshield-go/internal/app"
	"github.com/siteshield/siteshield-go/pkg/slogx"
)

var rootCmd = &cobra.Command{
	Use:   "shieldctl",
	Short: "Command-line client for the SiteShield monitoring API",
	Long: `shieldctl talks to a SiteShield backend through the same authenticated
request pipeline the product uses: bearer tokens with transparent refresh,
bounded retries for transient failures, and tenant scoping on every call.

Configuration comes from the environment (or a .env file):
  SITESHIELD_API_URL       API base URL (required)
  SITESHIELD_TOKEN_URL     identity provider token endpoint (required)
  SITESHIELD_CLIENT_ID     OAuth client ID (required)
  SITESHIELD_CLIENT_SECRET OAuth client secret for machine sessions
  SITESHIELD_TOKEN_DB      token cache path (default siteshield-tokens.db)`,
	SilenceUsage: true,
}

var application *app.Application

// ensureApp wires the application on first use and attaches its logger to
// the command context so the request pipeline can pick it up.
func ensureApp(cmd *cobra.Command) (*app.Application, error) {
	if application == nil {
		a, err := app.New(cmd.Context())
		if err != nil {
			return nil, err
		}
		application = a
	}
	cmd.SetContext(slogx.WithContext(cmd.Context(), application.Logger))
	return application, nil
}

// Execute runs the command tree and returns a process exit code.
func Execute() int {
	rootCmd.Version = app.BuildVersion

	err := rootCmd.ExecuteContext(context.Background())
	if application != nil {
		_ = application.Close()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return 1
	}
	return 0
}
