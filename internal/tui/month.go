package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/jfmartinez/almanac/internal/calendar"
	"github.com/jfmartinez/almanac/internal/tui/view"
)

// renderMonthView renders the 42-cell month grid: six week rows of
// seven day cells, each cell a day number over up to three event
// chips.
func (m Model) renderMonthView() string {
	cells := calendar.MonthCells(m.state, m.events, m.now())

	var rows []string
	rows = append(rows, m.renderWeekdayHeader())

	for week := 0; week < 6; week++ {
		cellBlocks := make([]string, 7)
		for day := 0; day < 7; day++ {
			cellBlocks[day] = m.renderMonthCell(cells[week*7+day])
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cellBlocks...))
	}

	return strings.Join(rows, "\n")
}

func (m Model) renderWeekdayHeader() string {
	labels := view.WeekdayHeaders()
	parts := make([]string, 7)
	for i, label := range labels {
		parts[i] = m.styles.DayHeaderStyle.Width(m.colWidth).Render(label)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

// renderMonthCell renders one day cell as a fixed-size block.
func (m Model) renderMonthCell(c calendar.Cell) string {
	lines := make([]string, 0, monthCellLines)

	numStyle := m.styles.DayNumberStyle
	switch {
	case c.IsToday:
		numStyle = m.styles.DayNumberTodayStyle
	case !c.IsCurrentMonth:
		numStyle = m.styles.DayNumberAdjacentStyle
	}
	num := fmt.Sprintf("%2d", c.Date.Day())
	if c.IsToday {
		num += "*"
	}
	if c.IsSelected {
		lines = append(lines, m.padCell(num, m.styles.CellCursorStyle))
	} else {
		lines = append(lines, m.padCell(num, numStyle))
	}

	shown := len(c.Events)
	if shown > maxMonthChips {
		shown = maxMonthChips - 1
	}
	for _, e := range c.Events[:shown] {
		chip := m.styles.ChipStyle(e.Color)
		lines = append(lines, m.padCell(" "+e.Title, chip))
	}
	if len(c.Events) > shown {
		more := fmt.Sprintf(" +%d more", len(c.Events)-shown)
		lines = append(lines, m.padCell(more, m.styles.MoreEventsStyle))
	}
	for len(lines) < monthCellLines {
		lines = append(lines, m.padCell("", m.styles.EmptyCellStyle))
	}

	return strings.Join(lines, "\n")
}

// padCell truncates and pads a line to the column width with the
// given style.
func (m Model) padCell(s string, style lipgloss.Style) string {
	w := m.colWidth
	if lipgloss.Width(s) > w {
		s = ansi.Cut(s, 0, w-1) + "…"
	}
	if pad := w - lipgloss.Width(s); pad > 0 {
		s += strings.Repeat(" ", pad)
	}
	return style.Render(s)
}
