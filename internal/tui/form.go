package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"

	"github.com/jfmartinez/almanac/internal/config"
	"github.com/jfmartinez/almanac/internal/dateutil"
	"github.com/jfmartinez/almanac/internal/event"
)

// Form field focus order.
const (
	formFocusTitle = iota
	formFocusDescription
	formFocusDate
	formFocusStart
	formFocusEnd
	formFocusColor
	formFocusCategory
	formFieldCount
)

// eventForm holds the create/edit modal's input state. Text fields are
// bubbles textinputs; color and category are cycled pickers.
type eventForm struct {
	title       textinput.Model
	description textinput.Model
	date        textinput.Model
	start       textinput.Model
	end         textinput.Model

	colorIdx    int
	categoryIdx int
	focus       int

	// Validation errors keyed by field name, refreshed on submit and
	// cleared per field as the user edits it.
	errors event.FieldErrors

	// Event being edited, nil in create mode.
	editing *event.Event
}

func newEventForm(styles *Styles, cfg *config.Config) eventForm {
	f := eventForm{
		colorIdx:    colorIndex(event.Color(cfg.Calendar.DefaultColor)),
		categoryIdx: categoryIndex(event.Category(cfg.Calendar.DefaultCategory)),
		errors:      event.FieldErrors{},
	}

	f.title = newFormInput(styles, "Event title", event.MaxTitleLen, 40)
	f.description = newFormInput(styles, "Optional description", event.MaxDescriptionLen, 40)
	f.date = newFormInput(styles, "YYYY-MM-DD", 10, 12)
	f.start = newFormInput(styles, "HH:MM", 5, 7)
	f.end = newFormInput(styles, "HH:MM", 5, 7)

	return f
}

func newFormInput(styles *Styles, placeholder string, charLimit, width int) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = charLimit
	ti.Width = width
	ti.PlaceholderStyle = styles.ModalPlaceholderStyle
	ti.TextStyle = styles.ModalInputTextStyle
	ti.PromptStyle = styles.ModalInputTextStyle
	ti.Cursor.Style = styles.ModalInputCursorStyle
	ti.Cursor.TextStyle = styles.ModalInputTextStyle
	return ti
}

// reset prepares the form for creating an event starting at the given
// time.
func (f *eventForm) reset(start time.Time, cfg *config.Config) {
	f.editing = nil
	f.errors = event.FieldErrors{}
	f.title.SetValue("")
	f.description.SetValue("")
	f.date.SetValue(start.Format("2006-01-02"))
	f.start.SetValue(start.Format("15:04"))
	f.end.SetValue(start.Add(time.Hour).Format("15:04"))
	f.colorIdx = colorIndex(event.Color(cfg.Calendar.DefaultColor))
	f.categoryIdx = categoryIndex(event.Category(cfg.Calendar.DefaultCategory))
	f.setFocus(formFocusTitle)
}

// load fills the form from an existing event for editing.
func (f *eventForm) load(ev *event.Event) {
	f.editing = ev
	f.errors = event.FieldErrors{}
	f.title.SetValue(ev.Title)
	f.description.SetValue(ev.Description)
	f.date.SetValue(ev.Start.Format("2006-01-02"))
	f.start.SetValue(ev.Start.Format("15:04"))
	f.end.SetValue(ev.End.Format("15:04"))
	f.colorIdx = colorIndex(ev.Color)
	f.categoryIdx = categoryIndex(ev.Category)
	f.setFocus(formFocusTitle)
}

func (f *eventForm) setFocus(focus int) {
	f.focus = focus
	inputs := f.inputs()
	for i, in := range inputs {
		if i == focus {
			in.Focus()
		} else {
			in.Blur()
		}
	}
}

func (f *eventForm) nextFocus() {
	f.setFocus((f.focus + 1) % formFieldCount)
}

func (f *eventForm) prevFocus() {
	f.setFocus((f.focus + formFieldCount - 1) % formFieldCount)
}

// inputs returns the text inputs indexed by focus position. Picker
// positions map to nil.
func (f *eventForm) inputs() []*textinput.Model {
	return []*textinput.Model{
		formFocusTitle:       &f.title,
		formFocusDescription: &f.description,
		formFocusDate:        &f.date,
		formFocusStart:       &f.start,
		formFocusEnd:         &f.end,
		formFocusColor:       nil,
		formFocusCategory:    nil,
	}
}

// focusedInput returns the currently focused text input, or nil when a
// picker is focused.
func (f *eventForm) focusedInput() *textinput.Model {
	inputs := f.inputs()
	if f.focus < 0 || f.focus >= len(inputs) {
		return nil
	}
	return inputs[f.focus]
}

// clearFieldError drops the validation error for the focused field so
// stale messages disappear as soon as the user starts fixing them.
func (f *eventForm) clearFieldError() {
	switch f.focus {
	case formFocusTitle:
		delete(f.errors, event.FieldTitle)
	case formFocusDescription:
		delete(f.errors, event.FieldDescription)
	case formFocusDate, formFocusStart:
		delete(f.errors, event.FieldStart)
	case formFocusEnd:
		delete(f.errors, event.FieldEnd)
	}
}

// cyclePicker moves the focused picker by delta. No-op for text fields.
func (f *eventForm) cyclePicker(delta int) {
	switch f.focus {
	case formFocusColor:
		n := len(event.Colors())
		f.colorIdx = (f.colorIdx + delta + n) % n
	case formFocusCategory:
		n := len(event.Categories())
		f.categoryIdx = (f.categoryIdx + delta + n) % n
	}
}

// buildEvent assembles an event from the form fields and validates it.
// Every rule is evaluated; a non-empty FieldErrors means the form
// stays open with inline messages.
func (f *eventForm) buildEvent() (*event.Event, event.FieldErrors) {
	errs := event.FieldErrors{}

	var start, end time.Time
	dateVal := strings.TrimSpace(f.date.Value())
	startVal := strings.TrimSpace(f.start.Value())
	endVal := strings.TrimSpace(f.end.Value())

	day, dateErr := dateutil.ParseDate(dateVal)
	if dateVal == "" {
		errs[event.FieldStart] = "start date is required"
	} else if dateErr != nil {
		errs[event.FieldStart] = "date must be YYYY-MM-DD"
	}

	if dateErr == nil && dateVal != "" {
		if h, min, err := dateutil.ParseClock(startVal); err != nil {
			errs[event.FieldStart] = "start time must be HH:MM"
		} else {
			start = dateutil.At(day, h, min)
		}
		if h, min, err := dateutil.ParseClock(endVal); err != nil {
			errs[event.FieldEnd] = "end time must be HH:MM"
		} else {
			end = dateutil.At(day, h, min)
		}
	}

	ev := &event.Event{
		Title:       strings.TrimSpace(f.title.Value()),
		Description: strings.TrimSpace(f.description.Value()),
		Start:       start,
		End:         end,
		Color:       event.Colors()[f.colorIdx],
		Category:    event.Categories()[f.categoryIdx],
	}
	if f.editing != nil {
		ev.ID = f.editing.ID
		ev.CreatedAt = f.editing.CreatedAt
	}

	for field, msg := range event.Validate(ev) {
		if _, taken := errs[field]; !taken {
			errs[field] = msg
		}
	}

	if len(errs) > 0 {
		return nil, errs
	}
	return ev, nil
}

func colorIndex(c event.Color) int {
	for i, known := range event.Colors() {
		if known == c {
			return i
		}
	}
	return 0
}

func categoryIndex(c event.Category) int {
	for i, known := range event.Categories() {
		if known == c {
			return i
		}
	}
	return 0
}
