package calendar

import (
	"time"

	"github.com/jfmartinez/almanac/internal/dateutil"
	"github.com/jfmartinez/almanac/internal/event"
)

// Cell is one derived grid cell. Cells are recomputed from the state
// and the wall clock on every request and never cached across
// transitions.
type Cell struct {
	Date           time.Time
	IsToday        bool
	IsCurrentMonth bool // month view only
	IsSelected     bool
	Events         []*event.Event
}

// MonthCells derives the 42 month-view cells for the state's anchor
// month, each carrying the events that start on its day.
func MonthCells(s State, events []*event.Event, now time.Time) []Cell {
	grid := dateutil.MonthGrid(s.CurrentDate)
	cells := make([]Cell, len(grid))
	for i, day := range grid {
		cells[i] = Cell{
			Date:           day,
			IsToday:        dateutil.SameDay(day, now),
			IsCurrentMonth: day.Month() == s.CurrentDate.Month(),
			IsSelected:     !s.SelectedDate.IsZero() && dateutil.SameDay(day, s.SelectedDate),
			Events:         event.OnDay(events, day),
		}
	}
	return cells
}

// WeekCells derives the 7 week-view day cells. Each cell carries every
// event touching its day; the week view buckets them into time slots
// afterwards.
func WeekCells(s State, events []*event.Event, now time.Time) []Cell {
	grid := dateutil.WeekGrid(s.CurrentDate)
	cells := make([]Cell, len(grid))
	for i, day := range grid {
		cells[i] = Cell{
			Date:       day,
			IsToday:    dateutil.SameDay(day, now),
			IsSelected: !s.SelectedDate.IsZero() && dateutil.SameDay(day, s.SelectedDate),
			Events:     event.OverlappingDay(events, day),
		}
	}
	return cells
}
