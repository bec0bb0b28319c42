package ui

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jfmartinez/almanac/internal/dateutil"
)

func (a *App) listCmd() *cobra.Command {
	var (
		startDate string
		endDate   string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List events in a date range",
		Long: `List all events within a date range, grouped by day.

If no dates are specified, lists today's events.
If only --start is specified, lists events for that single day.
If both --start and --end are specified, lists events in that range (inclusive).`,
		Example: `  almanac list
  almanac list --start=2026-09-01
  almanac list --start=2026-09-01 --end=2026-09-07`,
		RunE: func(_ *cobra.Command, _ []string) error {
			if err := a.ensureRepo(); err != nil {
				return err
			}

			from, err := dateutil.ParseDate(startDate)
			if err != nil {
				return err
			}
			to := from
			if endDate != "" {
				to, err = dateutil.ParseDate(endDate)
				if err != nil {
					return err
				}
			}
			if to.Before(from) {
				return dateutil.ErrEndBeforeStart
			}

			events, err := a.repo.ListEventsByRange(context.Background(), from, dateutil.EndOfDay(to))
			if err != nil {
				return fmt.Errorf("listing events: %w", err)
			}

			if len(events) == 0 {
				fmt.Println("No events found in the specified date range.")
				return nil
			}

			// Print events grouped by date
			var currentDate string
			for _, ev := range events {
				date := ev.Start.Format("2006-01-02")
				if date != currentDate {
					if currentDate != "" {
						fmt.Println()
					}
					fmt.Printf("=== %s ===\n", formatHeader(date))
					currentDate = date
				}

				fmt.Printf("  %s #%d %s-%s %s %s\n",
					formatEvent(string(ev.Color), "●"),
					ev.ID,
					ev.Start.Format("15:04"),
					ev.End.Format("15:04"),
					ev.Title,
					formatMuted("["+string(ev.Category)+"]"),
				)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&startDate, "start", "", "Start date (YYYY-MM-DD, defaults to today)")
	cmd.Flags().StringVar(&endDate, "end", "", "End date (YYYY-MM-DD, defaults to start date)")

	return cmd
}
