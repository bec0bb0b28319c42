// Package commands provides TUI command constructors and message types.
package commands

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jfmartinez/almanac/internal/calendar"
	"github.com/jfmartinez/almanac/internal/dateutil"
	"github.com/jfmartinez/almanac/internal/event"
)

// EventsLoadedMsg is sent when the visible range's events are loaded.
type EventsLoadedMsg struct {
	Events []*event.Event
}

// ErrMsg is sent when an error occurs.
type ErrMsg struct {
	Err error
}

// StatusMsgCmd is sent for temporary status messages.
type StatusMsgCmd struct {
	Msg string
}

// ClearStatusMsg is sent to clear the status message.
type ClearStatusMsg struct{}

// VisibleRange returns the date span a state's grid can show. Month
// view covers the whole 42-cell grid including adjacent-month padding.
func VisibleRange(s calendar.State) (start, end time.Time) {
	switch s.View {
	case calendar.ViewWeek:
		start = dateutil.StartOfWeek(s.CurrentDate)
		end = dateutil.EndOfDay(start.AddDate(0, 0, 6))
	default:
		grid := dateutil.MonthGrid(s.CurrentDate)
		start = grid[0]
		end = dateutil.EndOfDay(grid[len(grid)-1])
	}
	return start, end
}

// LoadEvents loads the events for the state's visible range. The
// collection is fetched fresh on every interaction; the widget never
// keeps a stale copy.
func LoadEvents(repo event.Repository, s calendar.State) tea.Cmd {
	return func() tea.Msg {
		start, end := VisibleRange(s)
		events, err := repo.ListEventsByRange(context.Background(), start, end)
		if err != nil {
			return ErrMsg{Err: err}
		}
		return EventsLoadedMsg{Events: events}
	}
}
