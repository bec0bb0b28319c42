package ui

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jfmartinez/almanac/internal/dateutil"
	"github.com/jfmartinez/almanac/internal/event"
)

func (a *App) showCmd() *cobra.Command {
	var noColor bool
	var date string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show a day's agenda",
		Long: `Display one day's events in start order with a category
breakdown. Defaults to today.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			if noColor {
				DisableColor()
			}
			if err := a.ensureRepo(); err != nil {
				return err
			}

			day, err := dateutil.ParseDate(date)
			if err != nil {
				return err
			}
			day = dateutil.TruncateToDay(day)

			ctx := context.Background()
			events, err := a.repo.ListEventsByRange(ctx, day, dateutil.EndOfDay(day))
			if err != nil {
				return fmt.Errorf("fetching events: %w", err)
			}

			if len(events) == 0 {
				fmt.Println("No events scheduled.")
				return nil
			}

			fmt.Printf("=== %s ===\n\n", formatHeader(day.Format("Monday, January 2, 2006")))

			var stats Stats
			for _, ev := range events {
				printEventRow(ev)
				AccumulateStats(&stats, ev)
			}

			fmt.Println()
			PrintStats(stats)
			if stats.TotalMinutes > 0 {
				for _, c := range event.Categories() {
					m := stats.CategoryMinutes[c]
					if m == 0 {
						continue
					}
					fmt.Printf("  %-9s %s %s\n", string(c), CategoryBar(m, stats.TotalMinutes, 20), formatMuted(FormatMinutes(m)))
				}
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Date to show (YYYY-MM-DD, default: today)")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable color output")
	return cmd
}

func printEventRow(ev *event.Event) {
	title := ev.Title
	maxTitle := termWidth() - 30
	if maxTitle > 0 && len(title) > maxTitle {
		title = title[:maxTitle-3] + "..."
	}

	fmt.Printf("  %s %s-%s %-7s %s\n",
		formatEvent(string(ev.Color), "●"),
		ev.Start.Format("15:04"),
		ev.End.Format("15:04"),
		formatMuted(FormatMinutes(int(ev.Duration().Minutes()))),
		title,
	)
	if ev.Description != "" {
		fmt.Printf("    %s\n", formatMuted(ev.Description))
	}
}
