package view

import (
	"strconv"
	"time"

	"github.com/jfmartinez/almanac/internal/dateutil"
)

// MonthTitle formats the month-view heading, e.g. "March 2024".
func MonthTitle(anchor time.Time) string {
	return anchor.Format("January 2006")
}

// WeekTitle formats the week-view heading as the week's date span,
// e.g. "Mar 10 - Mar 16 2024".
func WeekTitle(anchor time.Time) string {
	start := dateutil.StartOfWeek(anchor)
	end := start.AddDate(0, 0, 6)
	if start.Month() == end.Month() {
		return start.Format("Jan 2") + " - " + strconv.Itoa(end.Day()) + end.Format(" 2006")
	}
	return start.Format("Jan 2") + " - " + end.Format("Jan 2 2006")
}

// WeekdayHeaders returns the seven column labels starting on Sunday.
func WeekdayHeaders() []string {
	labels := make([]string, 7)
	for i := 0; i < 7; i++ {
		labels[i] = dateutil.WeekdayShortName(i)
	}
	return labels
}

// WeekHeaderLabels builds week-view column labels and marks today's
// column.
func WeekHeaderLabels(weekStart time.Time, today time.Time) ([]string, map[int]bool) {
	labels := make([]string, 7)
	todayCols := make(map[int]bool)

	for i := 0; i < 7; i++ {
		day := weekStart.AddDate(0, 0, i)
		label := dateutil.WeekdayShortName(i) + " " + strconv.Itoa(day.Day())
		if dateutil.SameDay(day, today) {
			label = "*" + label + "*"
			todayCols[i] = true
		}
		labels[i] = label
	}

	return labels, todayCols
}
