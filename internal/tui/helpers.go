package tui

import (
	"fmt"
	"sort"
	"time"

	"github.com/jfmartinez/almanac/internal/calendar"
	"github.com/jfmartinez/almanac/internal/dateutil"
	"github.com/jfmartinez/almanac/internal/event"
)

const (
	timeColWidth   = 7 // "09:30 " plus border allowance
	chromeHeight   = 6 // title, header, footer lines around the grid
	minColWidth    = 9
	maxMonthChips  = 3 // event chips per month cell before "+N more"
	monthCellLines = 1 + maxMonthChips
)

// calculateColWidth splits the terminal width over the seven day
// columns, reserving the time gutter in week view.
func (m Model) calculateColWidth() int {
	if m.width <= 0 {
		return defaultColWidth
	}
	usable := m.width - 4 // app padding
	if m.state.View == calendar.ViewWeek {
		usable -= timeColWidth
	}
	w := usable / 7
	if w < minColWidth {
		w = minColWidth
	}
	return w
}

// visibleRows is the number of slot rows the week grid can show.
func (m Model) visibleRows() int {
	rows := m.height - chromeHeight
	if rows < 1 {
		rows = 1
	}
	if rows > dateutil.SlotsPerDay {
		rows = dateutil.SlotsPerDay
	}
	return rows
}

// ensureCursorVisible scrolls the week grid so the cursor slot stays
// on screen.
func (m *Model) ensureCursorVisible() {
	visible := m.visibleRows()
	if m.cursor.Slot < m.scrollOffset {
		m.scrollOffset = m.cursor.Slot
	}
	if m.cursor.Slot >= m.scrollOffset+visible {
		m.scrollOffset = m.cursor.Slot - visible + 1
	}
	if m.scrollOffset < 0 {
		m.scrollOffset = 0
	}
}

// weekStart is the Sunday anchoring the visible week.
func (m Model) weekStart() time.Time {
	return dateutil.StartOfWeek(m.state.CurrentDate)
}

// cursorDate is the date under the cursor: the selected date in month
// view, the cursor's day column in week view.
func (m Model) cursorDate() time.Time {
	if m.state.View == calendar.ViewWeek {
		return m.weekStart().AddDate(0, 0, m.cursor.Day)
	}
	if !m.state.SelectedDate.IsZero() {
		return m.state.SelectedDate
	}
	return dateutil.TruncateToDay(m.state.CurrentDate)
}

// cursorTime is the wall-clock moment under the cursor. Month view
// defaults to 09:00 on the selected day.
func (m Model) cursorTime() time.Time {
	day := m.cursorDate()
	if m.state.View == calendar.ViewWeek {
		slot := dateutil.TimeSlots()[m.cursor.Slot]
		return slot.Start(day)
	}
	return dateutil.At(day, 9, 0)
}

// eventsAtCursor lists the events the detail modal can page through:
// the selected day's events in month view, the events covering the
// cursor slot in week view.
func (m Model) eventsAtCursor() []*event.Event {
	day := m.cursorDate()
	if m.state.View == calendar.ViewWeek {
		slot := dateutil.TimeSlots()[m.cursor.Slot]
		covering := coveringSlot(event.OverlappingDay(m.events, day), slot.Start(day))
		return covering
	}
	return event.OnDay(m.events, day)
}

// coveringSlot filters to events whose span touches the half-hour
// starting at slotStart.
func coveringSlot(events []*event.Event, slotStart time.Time) []*event.Event {
	slotEnd := slotStart.Add(dateutil.SlotDuration)
	var out []*event.Event
	for _, e := range events {
		if e.Start.Before(slotEnd) && e.End.After(slotStart) {
			out = append(out, e)
		}
	}
	return out
}

// columnPlacements maps event IDs to their side-by-side column within
// a day's overlap groups.
func columnPlacements(dayEvents []*event.Event) map[int64]event.Span {
	sorted := make([]*event.Event, len(dayEvents))
	copy(sorted, dayEvents)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Start.Before(sorted[j].Start)
	})

	spans := make(map[int64]event.Span, len(sorted))
	for _, group := range event.GroupOverlapping(sorted) {
		n := len(group)
		for i, e := range group {
			spans[e.ID] = event.Column(i, n)
		}
	}
	return spans
}

// formatTimeRange formats an event's span as "09:00 - 10:30".
func formatTimeRange(e *event.Event) string {
	return e.Start.Format("15:04") + " - " + e.End.Format("15:04")
}

// formatDateLabel formats a day as "Mon, Mar 15 2024".
func formatDateLabel(d time.Time) string {
	return d.Format("Mon, Jan 2 2006")
}

// eventSummary is the clipboard form of an event.
func eventSummary(e *event.Event) string {
	s := fmt.Sprintf("%s (%s, %s)", e.Title, formatDateLabel(e.Start), formatTimeRange(e))
	if e.Description != "" {
		s += "\n" + e.Description
	}
	return s
}
