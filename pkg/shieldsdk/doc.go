// Package shieldsdk is a typed Go client for the SiteShield facilities
// monitoring API. It covers the full resource surface (zones, sites, devices,
// sensors, readings, events, maintenance, notification rules, roles, tenants,
// users and dashboards) and routes every request through the authenticated
// transport pipeline in pkg/transportx: bearer-token attachment with
// single-flight refresh on 401, tenant and CSRF headers, bounded retry for
// reads, and user-visible failure classification.
//
// Basic usage:
//
//	provider := identity.NewOIDCProvider(identity.OIDCConfig{
//		TokenURL: "https://id.example.com/oauth/token",
//		ClientID: "shieldctl",
//		RefreshToken: storedToken,
//	})
//
//	client, err := shieldsdk.New(shieldsdk.Config{
//		BaseURL:  "https://api.siteshield.example.com/api",
//		Provider: provider,
//	})
//	if err != nil {
//		// ...
//	}
//
//	sites, err := client.ListSites(ctx, shieldsdk.ListSitesParams{ZoneID: 2})
package shieldsdk
