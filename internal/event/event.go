// Package event defines the calendar event domain type and the pure
// helpers that index, validate, and lay out events on a grid.
package event

import (
	"errors"
	"strings"
	"time"

	"github.com/jfmartinez/almanac/internal/dateutil"
)

// Field limits enforced by validation.
const (
	MaxTitleLen       = 100
	MaxDescriptionLen = 500
)

// Domain errors.
var (
	ErrEventNotFound = errors.New("event not found")
)

// Category labels an event. The set is fixed but not enforced as
// exhaustive; unknown labels are carried through untouched.
type Category string

const (
	CategoryMeeting  Category = "meeting"
	CategoryPersonal Category = "personal"
	CategoryWork     Category = "work"
	CategoryReminder Category = "reminder"
	CategoryOther    Category = "other"
)

// Categories returns the known category labels in display order.
func Categories() []Category {
	return []Category{CategoryMeeting, CategoryPersonal, CategoryWork, CategoryReminder, CategoryOther}
}

// Color identifies a swatch from the theme palette.
type Color string

const (
	ColorBlue   Color = "blue"
	ColorGreen  Color = "green"
	ColorRed    Color = "red"
	ColorYellow Color = "yellow"
	ColorPurple Color = "purple"
)

// Colors returns the available swatches in display order.
func Colors() []Color {
	return []Color{ColorBlue, ColorGreen, ColorRed, ColorYellow, ColorPurple}
}

// Event is a scheduled calendar entry. Events are owned by the
// embedding application; the widget only ever reads them.
type Event struct {
	ID          int64
	Title       string
	Description string
	Start       time.Time
	End         time.Time
	Color       Color
	Category    Category
	CreatedAt   time.Time
}

// New creates an Event with defaults applied and fields validated.
func New(title, description string, start, end time.Time) (*Event, error) {
	e := &Event{
		Title:       strings.TrimSpace(title),
		Description: description,
		Start:       start,
		End:         end,
		Color:       ColorBlue,
		Category:    CategoryMeeting,
		CreatedAt:   time.Now(),
	}
	if errs := Validate(e); len(errs) > 0 {
		return nil, errs
	}
	return e, nil
}

// Duration returns the event length.
func (e *Event) Duration() time.Duration {
	return e.End.Sub(e.Start)
}

// Valid reports whether the event carries the dates a grid computation
// needs. Malformed records are excluded from results, never fatal.
func (e *Event) Valid() bool {
	return e != nil && !e.Start.IsZero() && !e.End.IsZero()
}

// StartsOn reports whether the event starts on the given calendar day.
func (e *Event) StartsOn(day time.Time) bool {
	return e.Valid() && dateutil.SameDay(e.Start, day)
}

// Overlaps reports whether two events' [Start, End) intervals
// intersect. Half-open, so back-to-back events do not overlap.
func Overlaps(a, b *Event) bool {
	if !a.Valid() || !b.Valid() {
		return false
	}
	return a.Start.Before(b.End) && b.Start.Before(a.End)
}
