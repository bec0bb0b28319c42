package event

import (
	"time"

	"github.com/jfmartinez/almanac/internal/dateutil"
)

// The indexer functions are pure: they allocate fresh result slices
// and never mutate the input collection. Records missing a start or
// end date are excluded rather than aborting the computation.

// OnDay returns the events whose start falls on the same calendar day
// as day, compared by local year/month/day fields.
func OnDay(events []*Event, day time.Time) []*Event {
	result := make([]*Event, 0)
	for _, e := range events {
		if e.StartsOn(day) {
			result = append(result, e)
		}
	}
	return result
}

// InWeek returns the events starting within the seven days beginning
// at weekStart, from midnight through the last instant of the final day.
func InWeek(events []*Event, weekStart time.Time) []*Event {
	start := dateutil.TruncateToDay(weekStart)
	end := dateutil.EndOfDay(start.AddDate(0, 0, 6))

	result := make([]*Event, 0)
	for _, e := range events {
		if !e.Valid() {
			continue
		}
		if !e.Start.Before(start) && !e.Start.After(end) {
			result = append(result, e)
		}
	}
	return result
}

// InTimeSlot returns the events starting within [slotStart,
// slotStart+duration). Placement is by start time only, not full span:
// a chip renders in the row its event begins in.
func InTimeSlot(events []*Event, slotStart time.Time, duration time.Duration) []*Event {
	slotEnd := slotStart.Add(duration)

	result := make([]*Event, 0)
	for _, e := range events {
		if !e.Valid() {
			continue
		}
		if !e.Start.Before(slotStart) && e.Start.Before(slotEnd) {
			result = append(result, e)
		}
	}
	return result
}

// OverlappingDay returns the events that touch the given day at all:
// starting on it, ending on it, or spanning across it. Week view uses
// this per-day set before bucketing into time slots.
func OverlappingDay(events []*Event, day time.Time) []*Event {
	dayStart := dateutil.TruncateToDay(day)
	dayEnd := dateutil.EndOfDay(day)

	result := make([]*Event, 0)
	for _, e := range events {
		if !e.Valid() {
			continue
		}
		startsToday := dateutil.SameDay(e.Start, day)
		endsToday := dateutil.SameDay(e.End, day)
		spansToday := e.Start.Before(dayStart) && e.End.After(dayEnd)
		inProgress := !e.Start.After(dayEnd) && !e.End.Before(dayStart)
		if startsToday || endsToday || spansToday || inProgress {
			result = append(result, e)
		}
	}
	return result
}
