package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/jfmartinez/almanac/internal/calendar"
	"github.com/jfmartinez/almanac/internal/dateutil"
	"github.com/jfmartinez/almanac/internal/event"
	"github.com/jfmartinez/almanac/internal/tui/view"
)

// renderWeekView renders the seven day columns over the visible
// window of half-hour slot rows, with overlapping events laid out side
// by side inside their day column.
func (m Model) renderWeekView() string {
	cells := calendar.WeekCells(m.state, m.events, m.now())
	slots := dateutil.TimeSlots()

	// Per-day column layout, computed once per render.
	spans := make([]map[int64]event.Span, 7)
	for d := 0; d < 7; d++ {
		spans[d] = columnPlacements(cells[d].Events)
	}

	var rows []string
	rows = append(rows, m.renderWeekHeader())

	visible := m.visibleRows()
	for r := 0; r < visible; r++ {
		idx := m.scrollOffset + r
		if idx >= dateutil.SlotsPerDay {
			break
		}
		slot := slots[idx]

		parts := make([]string, 0, 8)
		parts = append(parts, m.styles.TimeColumnStyle.Width(timeColWidth).Render(slot.Label()+" "))
		for d := 0; d < 7; d++ {
			isCursor := d == m.cursor.Day && idx == m.cursor.Slot
			parts = append(parts, m.renderSlotCell(cells[d], slot, spans[d], isCursor))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, parts...))
	}

	return strings.Join(rows, "\n")
}

func (m Model) renderWeekHeader() string {
	labels, todayCols := view.WeekHeaderLabels(m.weekStart(), m.now())
	parts := make([]string, 0, 8)
	parts = append(parts, m.styles.TimeColumnStyle.Width(timeColWidth).Render(""))
	for i, label := range labels {
		style := m.styles.DayHeaderStyle
		if todayCols[i] {
			style = m.styles.DayHeaderTodayStyle
		}
		parts = append(parts, style.Width(m.colWidth).Render(label))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

// renderSlotCell renders one day-by-slot cell. Events covering the
// slot paint their column span; the event title appears on its first
// visible row of the day.
func (m Model) renderSlotCell(c calendar.Cell, slot dateutil.Slot, spans map[int64]event.Span, isCursor bool) string {
	slotStart := slot.Start(c.Date)
	covering := coveringSlot(c.Events, slotStart)

	base := m.styles.EmptyCellStyle
	if isCursor {
		base = m.styles.CursorStyle
	}
	if len(covering) == 0 {
		return base.Render(strings.Repeat(" ", m.colWidth))
	}

	// Paint each covering event into its horizontal span. Column
	// cells reference a style table so adjacent cells with the same
	// style render as one run.
	styleTable := []lipgloss.Style{base}
	chars := make([]string, m.colWidth)
	styleOf := make([]int, m.colWidth)
	for i := range chars {
		chars[i] = " "
	}
	for _, e := range covering {
		span, ok := spans[e.ID]
		if !ok {
			span = event.Column(0, 1)
		}
		left := int(span.Left * float64(m.colWidth))
		right := int(span.Right * float64(m.colWidth))
		if right > m.colWidth {
			right = m.colWidth
		}
		if right <= left {
			right = left + 1
		}

		style := m.styles.ChipStyle(e.Color)
		if isCursor {
			style = style.Background(m.styles.colorBgSelection)
		}
		styleTable = append(styleTable, style)
		styleIdx := len(styleTable) - 1

		label := ""
		if m.eventStartsInSlot(e, c.Date, slot) {
			label = e.Title
		}
		runes := []rune(label)
		for col := left; col < right && col < m.colWidth; col++ {
			ch := " "
			if n := col - left; n < len(runes) {
				ch = string(runes[n])
			}
			chars[col] = ch
			styleOf[col] = styleIdx
		}
	}

	var b strings.Builder
	run := chars[0]
	runStyle := styleOf[0]
	for i := 1; i < m.colWidth; i++ {
		if styleOf[i] == runStyle {
			run += chars[i]
			continue
		}
		b.WriteString(styleTable[runStyle].Render(run))
		run = chars[i]
		runStyle = styleOf[i]
	}
	b.WriteString(styleTable[runStyle].Render(run))

	out := b.String()
	if lipgloss.Width(out) > m.colWidth {
		out = ansi.Cut(out, 0, m.colWidth)
	}
	return out
}

// eventStartsInSlot reports whether the slot row should carry the
// event title: the slot containing the start, or the day's first slot
// for events carried over from an earlier day.
func (m Model) eventStartsInSlot(e *event.Event, day time.Time, slot dateutil.Slot) bool {
	if e.Start.Before(dateutil.TruncateToDay(day)) {
		return slot.Index() == 0
	}
	return event.Place(e, 1).Offset == slot.Index() && dateutil.SameDay(e.Start, day)
}
