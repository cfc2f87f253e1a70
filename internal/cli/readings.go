package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/siteshield/siteshield-go/pkg/shieldsdk"
)

var readingsSensorID int64

var readingsCmd = &cobra.Command{
	Use:   "readings",
	Short: "List sensor readings",
	RunE:  runReadings,
}

var readingsLatestCmd = &cobra.Command{
	Use:   "latest <sensor-id>",
	Short: "Show a sensor's most recent reading",
	Args:  cobra.ExactArgs(1),
	RunE:  runReadingsLatest,
}

func init() {
	readingsCmd.Flags().Int64Var(&readingsSensorID, "sensor", 0, "filter by sensor ID")
	readingsCmd.Flags().IntVar(&listPage, "page", 0, "page number (1-based)")
	readingsCmd.Flags().IntVar(&listPageSize, "page-size", 0, "items per page")

	readingsCmd.AddCommand(readingsLatestCmd)
	rootCmd.AddCommand(readingsCmd)
}

func readingValues(r *shieldsdk.Reading) string {
	if len(r.Values) == 0 {
		return "-"
	}
	values := make([]string, 0, len(r.Values))
	for _, v := range r.Values {
		values = append(values, v.Value)
	}
	return strings.Join(values, ", ")
}

func runReadings(cmd *cobra.Command, args []string) error {
	a, err := ensureApp(cmd)
	if err != nil {
		return err
	}

	result, err := a.Client.ListReadings(cmd.Context(), shieldsdk.ListReadingsParams{
		SensorID: readingsSensorID,
		Paging:   listPaging(),
	})
	if err != nil {
		return err
	}

	rows := make([]table.Row, 0, len(result.Items))
	for i := range result.Items {
		r := &result.Items[i]
		rows = append(rows, table.Row{r.ID, fmtTime(r.Timestamp), r.SensorName, readingValues(r)})
	}
	renderTable(table.Row{"ID", "Timestamp", "Sensor", "Values"}, rows)
	renderPageFooter(len(result.Items), result.TotalCount)
	return nil
}

func runReadingsLatest(cmd *cobra.Command, args []string) error {
	a, err := ensureApp(cmd)
	if err != nil {
		return err
	}

	sensorID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid sensor ID %q", args[0])
	}

	reading, err := a.Client.LatestReading(cmd.Context(), sensorID)
	if err != nil {
		return err
	}
	fmt.Printf("%s  %s  %s\n", fmtTime(reading.Timestamp), reading.SensorName, readingValues(reading))
	return nil
}
