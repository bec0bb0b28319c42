package dateutil

import "time"

// MonthGridSize is the fixed number of cells in a month grid. Six full
// weeks keep the grid height stable across months.
const MonthGridSize = 42

// SlotsPerDay is the number of 30-minute slots in a day.
const SlotsPerDay = 48

// SlotDuration is the length of one time slot.
const SlotDuration = 30 * time.Minute

// StartOfWeek returns the Sunday on or before t, at midnight.
func StartOfWeek(t time.Time) time.Time {
	t = TruncateToDay(t)
	return t.AddDate(0, 0, -int(t.Weekday()))
}

// MonthGrid returns the 42 dates shown for ref's month: the grid starts
// on the Sunday on or before the 1st and runs for six full weeks,
// padding with adjacent-month days. Year rollover at January and
// December boundaries is handled by the date arithmetic.
func MonthGrid(ref time.Time) []time.Time {
	first := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, ref.Location())
	start := StartOfWeek(first)

	grid := make([]time.Time, MonthGridSize)
	for i := range grid {
		grid[i] = start.AddDate(0, 0, i)
	}
	return grid
}

// WeekGrid returns the 7 dates of the Sunday-starting week containing ref.
func WeekGrid(ref time.Time) []time.Time {
	start := StartOfWeek(ref)
	week := make([]time.Time, 7)
	for i := range week {
		week[i] = start.AddDate(0, 0, i)
	}
	return week
}

// Slot is a 30-minute subdivision of a day, identified by its start.
type Slot struct {
	Hour   int
	Minute int
}

// Label formats the slot start as HH:MM.
func (s Slot) Label() string {
	return At(time.Time{}, s.Hour, s.Minute).Format("15:04")
}

// Start returns the slot's start instant on the given day.
func (s Slot) Start(day time.Time) time.Time {
	return At(day, s.Hour, s.Minute)
}

// Index returns the slot's position within the day (0..47).
func (s Slot) Index() int {
	return s.Hour*2 + s.Minute/30
}

// TimeSlots returns the 48 half-hour markers from 00:00 to 23:30,
// shared by every day column in week view.
func TimeSlots() []Slot {
	slots := make([]Slot, 0, SlotsPerDay)
	for hour := 0; hour < 24; hour++ {
		slots = append(slots, Slot{Hour: hour}, Slot{Hour: hour, Minute: 30})
	}
	return slots
}

// AddMonths steps d by the given number of calendar months, clamping
// the day-of-month to the target month's length. AddDate would
// normalize Jan 31 + 1 month into March; clamping lands on Feb 28/29
// instead. The round trip is therefore not guaranteed when the source
// day does not exist in the target month.
func AddMonths(d time.Time, months int) time.Time {
	first := time.Date(d.Year(), d.Month(), 1, d.Hour(), d.Minute(), d.Second(), d.Nanosecond(), d.Location())
	target := first.AddDate(0, months, 0)

	day := d.Day()
	if last := DaysInMonth(target); day > last {
		day = last
	}
	return time.Date(target.Year(), target.Month(), day, d.Hour(), d.Minute(), d.Second(), d.Nanosecond(), d.Location())
}

// NextMonth returns d advanced by one calendar month.
func NextMonth(d time.Time) time.Time {
	return AddMonths(d, 1)
}

// PrevMonth returns d moved back by one calendar month.
func PrevMonth(d time.Time) time.Time {
	return AddMonths(d, -1)
}

// NextWeek returns d advanced by seven days.
func NextWeek(d time.Time) time.Time {
	return d.AddDate(0, 0, 7)
}

// PrevWeek returns d moved back by seven days.
func PrevWeek(d time.Time) time.Time {
	return d.AddDate(0, 0, -7)
}
