package cli

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/siteshield/siteshield-go/pkg/shieldsdk"
)

var (
	listPage     int
	listPageSize int

	sitesZoneID   int64
	sitesSearch   string
	sitesStatus   string
	devicesSiteID int64
	devicesZoneID int64
	sensorsDevice int64
	sensorsSearch string
)

var zonesCmd = &cobra.Command{
	Use:   "zones",
	Short: "List zones",
	RunE:  runZones,
}

var sitesCmd = &cobra.Command{
	Use:   "sites",
	Short: "List monitored sites and their status",
	RunE:  runSites,
}

var devicesCmd = &cobra.Command{
	Use:   "devices",
	Short: "List field devices",
	RunE:  runDevices,
}

var sensorsCmd = &cobra.Command{
	Use:   "sensors",
	Short: "List sensors",
	RunE:  runSensors,
}

func init() {
	for _, cmd := range []*cobra.Command{zonesCmd, sitesCmd, devicesCmd, sensorsCmd} {
		cmd.Flags().IntVar(&listPage, "page", 0, "page number (1-based)")
		cmd.Flags().IntVar(&listPageSize, "page-size", 0, "items per page")
	}
	sitesCmd.Flags().Int64Var(&sitesZoneID, "zone", 0, "filter by zone ID")
	sitesCmd.Flags().StringVar(&sitesSearch, "search", "", "filter by site name")
	sitesCmd.Flags().StringVar(&sitesStatus, "status", "", "filter by status (Green, Yellow, Red)")
	devicesCmd.Flags().Int64Var(&devicesSiteID, "site", 0, "filter by site ID")
	devicesCmd.Flags().Int64Var(&devicesZoneID, "zone", 0, "filter by zone ID")
	sensorsCmd.Flags().Int64Var(&sensorsDevice, "device", 0, "filter by device ID")
	sensorsCmd.Flags().StringVar(&sensorsSearch, "search", "", "filter by sensor name")

	rootCmd.AddCommand(zonesCmd, sitesCmd, devicesCmd, sensorsCmd)
}

func listPaging() shieldsdk.Paging {
	return shieldsdk.Paging{PageNumber: listPage, PageSize: listPageSize}
}

func runZones(cmd *cobra.Command, args []string) error {
	a, err := ensureApp(cmd)
	if err != nil {
		return err
	}

	result, err := a.Client.ListZones(cmd.Context(), shieldsdk.ListZonesParams{Paging: listPaging()})
	if err != nil {
		return err
	}

	rows := make([]table.Row, 0, len(result.Items))
	for _, z := range result.Items {
		rows = append(rows, table.Row{z.ID, z.Name, z.Description, fmtTime(z.CreatedDate)})
	}
	renderTable(table.Row{"ID", "Name", "Description", "Created"}, rows)
	renderPageFooter(len(result.Items), result.TotalCount)
	return nil
}

func runSites(cmd *cobra.Command, args []string) error {
	a, err := ensureApp(cmd)
	if err != nil {
		return err
	}

	result, err := a.Client.ListSites(cmd.Context(), shieldsdk.ListSitesParams{
		ZoneID:       sitesZoneID,
		NameSearch:   sitesSearch,
		StatusFilter: sitesStatus,
		Paging:       listPaging(),
	})
	if err != nil {
		return err
	}

	rows := make([]table.Row, 0, len(result.Items))
	for _, s := range result.Items {
		status := "-"
		if s.SiteStatus != nil {
			status = string(s.SiteStatus.CurrentStatus)
		}
		rows = append(rows, table.Row{s.ID, s.Name, s.ZoneName, status})
	}
	renderTable(table.Row{"ID", "Name", "Zone", "Status"}, rows)
	renderPageFooter(len(result.Items), result.TotalCount)
	return nil
}

func runDevices(cmd *cobra.Command, args []string) error {
	a, err := ensureApp(cmd)
	if err != nil {
		return err
	}

	result, err := a.Client.ListDevices(cmd.Context(), shieldsdk.ListDevicesParams{
		SiteID: devicesSiteID,
		ZoneID: devicesZoneID,
		Paging: listPaging(),
	})
	if err != nil {
		return err
	}

	rows := make([]table.Row, 0, len(result.Items))
	for _, d := range result.Items {
		rows = append(rows, table.Row{d.ID, d.Name, d.IP, d.SiteName, d.ZoneName})
	}
	renderTable(table.Row{"ID", "Name", "IP", "Site", "Zone"}, rows)
	renderPageFooter(len(result.Items), result.TotalCount)
	return nil
}

func runSensors(cmd *cobra.Command, args []string) error {
	a, err := ensureApp(cmd)
	if err != nil {
		return err
	}

	result, err := a.Client.ListSensors(cmd.Context(), shieldsdk.ListSensorsParams{
		DeviceID:   sensorsDevice,
		NameSearch: sensorsSearch,
		Paging:     listPaging(),
	})
	if err != nil {
		return err
	}

	rows := make([]table.Row, 0, len(result.Items))
	for _, s := range result.Items {
		rows = append(rows, table.Row{
			s.ID, s.Name, s.DeviceName, s.SiteName,
			s.RegTypeName, fmtFloatPtr(s.Threshold),
		})
	}
	renderTable(table.Row{"ID", "Name", "Device", "Site", "Register", "Threshold"}, rows)
	renderPageFooter(len(result.Items), result.TotalCount)
	return nil
}
