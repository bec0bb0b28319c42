package ui

import (
	"fmt"
	"strings"

	"github.com/jfmartinez/almanac/internal/event"
)

// Stats holds aggregated statistics for a set of events.
type Stats struct {
	TotalEvents     int
	TotalMinutes    int
	CategoryMinutes map[event.Category]int
}

// AccumulateStats folds one event into the stats.
func AccumulateStats(s *Stats, ev *event.Event) {
	if s.CategoryMinutes == nil {
		s.CategoryMinutes = make(map[event.Category]int)
	}
	minutes := int(ev.Duration().Minutes())
	s.TotalEvents++
	s.TotalMinutes += minutes
	s.CategoryMinutes[ev.Category] += minutes
}

// BusiestCategory returns the category with the most scheduled
// minutes.
func (s Stats) BusiestCategory() (event.Category, int) {
	var best event.Category
	bestMinutes := 0
	for c, m := range s.CategoryMinutes {
		if m > bestMinutes {
			best = c
			bestMinutes = m
		}
	}
	return best, bestMinutes
}

// PrintStats prints the aggregate block.
func PrintStats(s Stats) {
	hours := s.TotalMinutes / 60
	mins := s.TotalMinutes % 60
	fmt.Printf("%s %s across %d events\n",
		formatHeader("Scheduled:"),
		formatStats(fmt.Sprintf("%dh %02dm", hours, mins)),
		s.TotalEvents,
	)
	if cat, m := s.BusiestCategory(); m > 0 {
		fmt.Printf("%s %s (%s)\n",
			formatHeader("Busiest category:"),
			string(cat),
			formatMuted(FormatMinutes(m)),
		)
	}
}

// CategoryBar renders a proportional bar for one category.
func CategoryBar(minutes, total, width int) string {
	if total <= 0 || width <= 0 {
		return ""
	}
	filled := (minutes * width) / total
	if filled < 1 && minutes > 0 {
		filled = 1
	}
	return formatStats(strings.Repeat("█", filled)) + formatMuted(strings.Repeat("░", width-filled))
}

// FormatMinutes formats minutes as "Xh Ym".
func FormatMinutes(minutes int) string {
	if minutes < 60 {
		return fmt.Sprintf("%dm", minutes)
	}
	h := minutes / 60
	m := minutes % 60
	if m == 0 {
		return fmt.Sprintf("%dh", h)
	}
	return fmt.Sprintf("%dh %dm", h, m)
}
