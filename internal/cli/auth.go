package cli

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/siteshield/siteshield-go/pkg/shieldsdk"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Establish a session with the identity provider",
	Long: `Obtain tokens from the identity provider using the configured
credentials, persist them in the local token cache, and bootstrap the
backend user record.`,
	RunE: runLogin,
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Discard the current session and persisted tokens",
	RunE:  runLogout,
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the current session's identity claims",
	RunE:  runWhoami,
}

func init() {
	rootCmd.AddCommand(loginCmd, logoutCmd, whoamiCmd)
}

func runLogin(cmd *cobra.Command, args []string) error {
	a, err := ensureApp(cmd)
	if err != nil {
		return err
	}

	if err := a.Provider.Login(cmd.Context()); err != nil {
		return fmt.Errorf("login failed: %w", err)
	}

	claims, _ := a.Provider.Claims()
	sync, err := a.Client.SyncUser(cmd.Context(), shieldsdk.SyncUserRequest{
		IdentityID: claims.Subject(),
		Email:      claims.Email(),
		FirstName:  claims.String("given_name"),
		LastName:   claims.String("family_name"),
		Provider:   providerFromSubject(claims.Subject()),
	})
	if err != nil {
		return fmt.Errorf("session bootstrap failed: %w", err)
	}

	if sync.IsNewUser {
		fmt.Printf("Welcome, %s. Your account has been created.\n", sync.Email)
	} else {
		fmt.Printf("Logged in as %s.\n", sync.Email)
	}
	if len(sync.Roles) > 0 {
		fmt.Printf("Roles: %s\n", strings.Join(sync.Roles, ", "))
	}
	return nil
}

func runLogout(cmd *cobra.Command, args []string) error {
	a, err := ensureApp(cmd)
	if err != nil {
		return err
	}

	if err := a.Provider.Logout(cmd.Context()); err != nil {
		return err
	}
	fmt.Println("Logged out.")
	return nil
}

func runWhoami(cmd *cobra.Command, args []string) error {
	a, err := ensureApp(cmd)
	if err != nil {
		return err
	}

	if !a.Provider.IsAuthenticated() {
		fmt.Println("Not logged in.")
		return nil
	}

	claims, ok := a.Provider.Claims()
	if !ok {
		fmt.Println("Logged in (no identity claims available).")
		return nil
	}

	renderTable(table.Row{"Claim", "Value"}, []table.Row{
		{"subject", claims.Subject()},
		{"email", claims.Email()},
		{"name", strings.TrimSpace(claims.String("given_name") + " " + claims.String("family_name"))},
	})
	return nil
}

// providerFromSubject extracts the provider prefix from subjects shaped like
// "auth0|abc123". Plain subjects fall back to "oidc".
func providerFromSubject(sub string) string {
	if prefix, _, found := strings.Cut(sub, "|"); found && prefix != "" {
		return prefix
	}
	return "oidc"
}
