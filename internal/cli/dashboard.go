package cli

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/siteshield/siteshield-go/pkg/shieldsdk"
)

var dashboardSiteID int64

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show the monitoring dashboard summary",
	RunE:  runDashboard,
}

func init() {
	dashboardCmd.Flags().Int64Var(&dashboardSiteID, "site", 0, "scope to one site")
	rootCmd.AddCommand(dashboardCmd)
}

func runDashboard(cmd *cobra.Command, args []string) error {
	a, err := ensureApp(cmd)
	if err != nil {
		return err
	}

	data, err := a.Client.GetDashboardData(cmd.Context(), shieldsdk.DashboardParams{
		SiteID: dashboardSiteID,
	})
	if err != nil {
		return err
	}

	s := data.Summary
	fmt.Printf("Sites: %d (%d green, %d yellow, %d red)\n",
		s.TotalSites, s.GreenSites, s.YellowSites, s.RedSites)
	fmt.Printf("Devices: %d  Sensors: %d  Active events: %d\n",
		s.TotalDevices, s.TotalSensors, s.ActiveEvents)

	if len(data.SiteOverview) == 0 {
		return nil
	}

	fmt.Println()
	rows := make([]table.Row, 0, len(data.SiteOverview))
	for _, site := range data.SiteOverview {
		level := "-"
		if site.Level != nil {
			level = *site.Level
		}
		rows = append(rows, table.Row{site.SiteID, site.SiteName, site.ZoneName, site.Status, level})
	}
	renderTable(table.Row{"ID", "Site", "Zone", "Status", "Level"}, rows)
	return nil
}
