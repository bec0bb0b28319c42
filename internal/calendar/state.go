// Package calendar holds the widget's view state and its pure
// transition functions. The UI layer calls a transition, receives the
// next state, and re-renders; nothing here touches storage.
package calendar

import (
	"time"

	"github.com/jfmartinez/almanac/internal/dateutil"
	"github.com/jfmartinez/almanac/internal/event"
)

// View selects the visible grid.
type View string

const (
	ViewMonth View = "month"
	ViewWeek  View = "week"
)

// Valid reports whether the view is a known value.
func (v View) Valid() bool {
	return v == ViewMonth || v == ViewWeek
}

// Direction of a navigation step.
type Direction int

const (
	Prev Direction = iota
	Next
)

// State is the whole of the widget's interaction state. It is created
// once per widget instance and replaced wholesale by the transitions
// below; a nil SelectedEvent with ModalOpen set means create mode.
type State struct {
	CurrentDate   time.Time
	View          View
	SelectedDate  time.Time // zero when nothing is selected
	SelectedEvent *event.Event
	ModalOpen     bool
}

// New returns the initial state. A zero initialDate anchors on today;
// an unknown view falls back to month.
func New(initialView View, initialDate time.Time) State {
	if !initialView.Valid() {
		initialView = ViewMonth
	}
	if initialDate.IsZero() {
		initialDate = dateutil.TruncateToDay(time.Now())
	}
	return State{
		CurrentDate: initialDate,
		View:        initialView,
	}
}

// Navigate steps the anchor date one month or one week depending on
// the active view. Selection and modal state are untouched.
func (s State) Navigate(dir Direction) State {
	switch s.View {
	case ViewWeek:
		if dir == Next {
			s.CurrentDate = dateutil.NextWeek(s.CurrentDate)
		} else {
			s.CurrentDate = dateutil.PrevWeek(s.CurrentDate)
		}
	default:
		if dir == Next {
			s.CurrentDate = dateutil.NextMonth(s.CurrentDate)
		} else {
			s.CurrentDate = dateutil.PrevMonth(s.CurrentDate)
		}
	}
	return s
}

// GoToToday re-anchors on the given wall-clock date without changing
// view or selection.
func (s State) GoToToday(now time.Time) State {
	s.CurrentDate = dateutil.TruncateToDay(now)
	return s
}

// SetView swaps between month and week. The anchor date is kept so the
// same date stays visible in the new view.
func (s State) SetView(v View) State {
	if v.Valid() {
		s.View = v
	}
	return s
}

// ToggleView flips between the two views.
func (s State) ToggleView() State {
	if s.View == ViewMonth {
		return s.SetView(ViewWeek)
	}
	return s.SetView(ViewMonth)
}

// SelectDate marks a date as selected. It does not open the modal.
func (s State) SelectDate(d time.Time) State {
	s.SelectedDate = dateutil.TruncateToDay(d)
	return s
}

// OpenModal opens the event dialog. A non-nil ev enters edit mode; nil
// enters create mode anchored at date. A zero date keeps the previous
// selection.
func (s State) OpenModal(ev *event.Event, date time.Time) State {
	s.SelectedEvent = ev
	s.ModalOpen = true
	if !date.IsZero() {
		s.SelectedDate = dateutil.TruncateToDay(date)
	}
	return s
}

// CloseModal closes the dialog and clears the event under edit. The
// selected date is kept so the last clicked day stays highlighted.
func (s State) CloseModal() State {
	s.SelectedEvent = nil
	s.ModalOpen = false
	return s
}

// EditMode reports whether the open modal is editing an existing event.
func (s State) EditMode() bool {
	return s.SelectedEvent != nil
}
