package ui

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jfmartinez/almanac/internal/dateutil"
	"github.com/jfmartinez/almanac/internal/event"
)

func (a *App) addCmd() *cobra.Command {
	var (
		date        string
		start       string
		end         string
		description string
		category    string
		colorName   string
	)

	cmd := &cobra.Command{
		Use:   "add [title]",
		Short: "Add a new event",
		Long: `Add a new event to the calendar.

Example:
  almanac add "Team standup" --date=2026-09-01 --start=09:00 --end=09:30 --category=meeting`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if err := a.ensureRepo(); err != nil {
				return err
			}

			day, err := dateutil.ParseDate(date)
			if err != nil {
				return err
			}
			sh, sm, err := dateutil.ParseClock(start)
			if err != nil {
				return fmt.Errorf("start: %w", err)
			}
			eh, em, err := dateutil.ParseClock(end)
			if err != nil {
				return fmt.Errorf("end: %w", err)
			}

			ev, err := event.New(args[0], description, dateutil.At(day, sh, sm), dateutil.At(day, eh, em))
			if err != nil {
				return err
			}
			if category != "" {
				ev.Category = event.Category(category)
			}
			if colorName != "" {
				ev.Color = event.Color(colorName)
			}

			ctx := context.Background()
			if err := a.repo.CreateEvent(ctx, ev); err != nil {
				return fmt.Errorf("creating event: %w", err)
			}

			fmt.Printf("Created event #%d: %s [%s] %s %s-%s\n",
				ev.ID,
				ev.Title,
				ev.Category,
				ev.Start.Format("2006-01-02"),
				ev.Start.Format("15:04"),
				ev.End.Format("15:04"),
			)

			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Event date (YYYY-MM-DD, default: today)")
	cmd.Flags().StringVar(&start, "start", "", "Start time (HH:MM, required)")
	cmd.Flags().StringVar(&end, "end", "", "End time (HH:MM, required)")
	cmd.Flags().StringVar(&description, "desc", "", "Optional description")
	cmd.Flags().StringVar(&category, "category", "", "Category: meeting, personal, work, reminder, or other")
	cmd.Flags().StringVar(&colorName, "color", "", "Color: blue, green, red, yellow, or purple")

	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("end")

	return cmd
}
