package cli

import (
	"fmt"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/siteshield/siteshield-go/pkg/shieldsdk"
)

var (
	eventsSensorID   int64
	eventsUnresolved bool
	resolveNotes     string
)

var eventsCmd = &cobra.Command{
	Use:   "events",
	Short: "List alert events",
	RunE:  runEvents,
}

var eventsCountCmd = &cobra.Command{
	Use:   "count",
	Short: "Show the unresolved event count",
	RunE:  runEventsCount,
}

var eventsResolveCmd = &cobra.Command{
	Use:   "resolve <event-id>",
	Short: "Mark an event resolved",
	Args:  cobra.ExactArgs(1),
	RunE:  runEventsResolve,
}

func init() {
	eventsCmd.Flags().Int64Var(&eventsSensorID, "sensor", 0, "filter by sensor ID")
	eventsCmd.Flags().BoolVar(&eventsUnresolved, "unresolved", false, "show only unresolved events")
	eventsCmd.Flags().IntVar(&listPage, "page", 0, "page number (1-based)")
	eventsCmd.Flags().IntVar(&listPageSize, "page-size", 0, "items per page")
	eventsResolveCmd.Flags().StringVar(&resolveNotes, "notes", "", "resolution notes")

	eventsCmd.AddCommand(eventsCountCmd, eventsResolveCmd)
	rootCmd.AddCommand(eventsCmd)
}

func runEvents(cmd *cobra.Command, args []string) error {
	a, err := ensureApp(cmd)
	if err != nil {
		return err
	}

	params := shieldsdk.ListEventsParams{
		SensorID: eventsSensorID,
		Paging:   listPaging(),
	}
	if eventsUnresolved {
		resolved := false
		params.Resolved = &resolved
	}

	result, err := a.Client.ListEvents(cmd.Context(), params)
	if err != nil {
		return err
	}

	rows := make([]table.Row, 0, len(result.Items))
	for _, e := range result.Items {
		rows = append(rows, table.Row{
			e.ID, fmtTime(e.TimeRaised), e.EventTypeName, e.EventTypeSeverity,
			e.SensorName, e.SiteName, fmtBool(e.Resolved),
		})
	}
	renderTable(table.Row{"ID", "Raised", "Type", "Severity", "Sensor", "Site", "Resolved"}, rows)
	renderPageFooter(len(result.Items), result.TotalCount)
	return nil
}

func runEventsCount(cmd *cobra.Command, args []string) error {
	a, err := ensureApp(cmd)
	if err != nil {
		return err
	}

	count, err := a.Client.UnresolvedEventCount(cmd.Context())
	if err != nil {
		return err
	}
	fmt.Println(count)
	return nil
}

func runEventsResolve(cmd *cobra.Command, args []string) error {
	a, err := ensureApp(cmd)
	if err != nil {
		return err
	}

	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid event ID %q", args[0])
	}

	event, err := a.Client.ResolveEvent(cmd.Context(), id, shieldsdk.ResolveEventRequest{
		ResolutionNotes: resolveNotes,
	})
	if err != nil {
		return err
	}
	fmt.Printf("Event %d resolved at %s.\n", event.ID, fmtTimePtr(event.ResolvedAt))
	return nil
}
