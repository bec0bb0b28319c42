package tui

import (
	"context"
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jfmartinez/almanac/internal/calendar"
	"github.com/jfmartinez/almanac/internal/dateutil"
	"github.com/jfmartinez/almanac/internal/event"
)

// handleKeyMsg handles keyboard input.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Log keystroke
	LogKeyPress(msg)

	// Global keys (work in all modes)
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}
	if m.mode == ModeModal {
		return m.handleModalKeys(msg)
	}
	return m.handleNormalKeys(msg)
}

// handleNormalKeys handles keys in normal mode.
func (m Model) handleNormalKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit

	// Cursor movement
	case "h", "left":
		return m.moveCursorDays(-1)
	case "l", "right":
		return m.moveCursorDays(1)
	case "j", "down":
		if m.state.View == calendar.ViewWeek {
			if m.cursor.Slot < dateutil.SlotsPerDay-1 {
				m.cursor.Slot++
			}
			m.ensureCursorVisible()
			return m, nil
		}
		return m.moveCursorDays(7)
	case "k", "up":
		if m.state.View == calendar.ViewWeek {
			if m.cursor.Slot > 0 {
				m.cursor.Slot--
			}
			m.ensureCursorVisible()
			return m, nil
		}
		return m.moveCursorDays(-7)

	// Page navigation (week view slot grid)
	case "pgdown", "ctrl+d":
		if m.state.View == calendar.ViewWeek {
			visible := m.visibleRows()
			m.cursor.Slot = min(dateutil.SlotsPerDay-1, m.cursor.Slot+visible)
			m.ensureCursorVisible()
		}
		return m, nil
	case "pgup", "ctrl+u":
		if m.state.View == calendar.ViewWeek {
			visible := m.visibleRows()
			m.cursor.Slot = max(0, m.cursor.Slot-visible)
			m.ensureCursorVisible()
		}
		return m, nil

	// Period navigation (month or week depending on active view)
	case "H", "shift+left", "p":
		prev := m.state.View
		m.state = m.state.Navigate(calendar.Prev)
		m.state = m.state.SelectDate(m.state.CurrentDate)
		LogNavigate(string(prev), m.state.CurrentDate, "prev")
		return m, m.reload()
	case "L", "shift+right", "n":
		prev := m.state.View
		m.state = m.state.Navigate(calendar.Next)
		m.state = m.state.SelectDate(m.state.CurrentDate)
		LogNavigate(string(prev), m.state.CurrentDate, "next")
		return m, m.reload()

	case "t":
		now := m.now()
		m.state = m.state.GoToToday(now)
		m.state = m.state.SelectDate(now)
		m.cursor.Day = int(now.Weekday())
		m.cursor.Slot = now.Hour() * 2
		m.scrollOffset = defaultScrollOffset(m.cursor.Slot)
		return m, m.reload()

	// View switching
	case "v", "tab":
		from := m.state.View
		m.state = m.state.ToggleView()
		m.syncCursorToView()
		LogViewChange(string(from), string(m.state.View), "toggle")
		return m, m.reload()
	case "m", "M":
		m.state = m.state.SetView(calendar.ViewMonth)
		return m, m.reload()
	case "w", "W":
		m.state = m.state.SetView(calendar.ViewWeek)
		m.syncCursorToView()
		return m, m.reload()

	// Actions
	case "enter":
		return m.handleEnter()

	case "a":
		return m.openCreateForm()

	case "x", "d":
		evs := m.eventsAtCursor()
		if len(evs) == 0 {
			m.statusMsg = "No event to delete"
			return m, nil
		}
		m.mode = ModeModal
		m.modalType = ModalConfirmDelete
		m.detailIndex = 0
		m.state = m.state.OpenModal(evs[0], m.cursorDate())
		m.confirmMsg = fmt.Sprintf("Delete event: %s?", evs[0].Title)
		LogModalChange("confirm_delete", "open")
		return m, nil
	}

	return m, nil
}

// moveCursorDays moves the date cursor by a day delta, navigating to
// the adjacent period when it leaves the visible grid.
func (m Model) moveCursorDays(delta int) (tea.Model, tea.Cmd) {
	target := m.cursorDate().AddDate(0, 0, delta)
	m.state = m.state.SelectDate(target)

	if m.state.View == calendar.ViewWeek {
		ws := m.weekStart()
		if target.Before(ws) || !target.Before(ws.AddDate(0, 0, 7)) {
			m.state.CurrentDate = target
			m.cursor.Day = int(target.Weekday())
			return m, m.reload()
		}
		m.cursor.Day = int(target.Weekday())
		return m, nil
	}

	// Month view: selecting outside the anchor month re-anchors.
	if target.Month() != m.state.CurrentDate.Month() || target.Year() != m.state.CurrentDate.Year() {
		m.state.CurrentDate = target
		return m, m.reload()
	}
	return m, nil
}

// syncCursorToView re-derives the week cursor after a view switch so
// the selected date stays under it.
func (m *Model) syncCursorToView() {
	if m.state.View != calendar.ViewWeek {
		return
	}
	m.cursor.Day = int(m.cursorDate().Weekday())
	m.ensureCursorVisible()
}

// handleEnter opens the detail modal when the cursor is on an event,
// otherwise the create form.
func (m Model) handleEnter() (tea.Model, tea.Cmd) {
	evs := m.eventsAtCursor()
	if len(evs) == 0 {
		return m.openCreateForm()
	}

	m.mode = ModeModal
	m.modalType = ModalEventDetail
	m.detailIndex = 0
	m.state = m.state.OpenModal(evs[0], m.cursorDate())
	LogModalChange("event_detail", "open")
	return m, nil
}

// openCreateForm opens the event form in create mode, prefilled from
// the cursor position.
func (m Model) openCreateForm() (tea.Model, tea.Cmd) {
	m.mode = ModeModal
	m.modalType = ModalEventForm
	m.state = m.state.OpenModal(nil, m.cursorDate())
	m.form.reset(m.cursorTime(), m.config)
	LogModalChange("event_form", "open_create")
	return m, textinput.Blink
}

// handleModalKeys handles keys in modal mode.
func (m Model) handleModalKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.modalType {
	case ModalEventForm:
		return m.handleEventFormKeys(msg)
	case ModalEventDetail:
		return m.handleEventDetailKeys(msg)
	case ModalConfirmDelete:
		return m.handleConfirmDeleteKeys(msg)
	default:
		if msg.String() == "esc" {
			return m.closeModal(), nil
		}
	}
	return m, nil
}

// closeModal returns to normal mode, keeping the selected date.
func (m Model) closeModal() Model {
	m.mode = ModeNormal
	m.modalType = ModalNone
	m.detailIndex = 0
	m.state = m.state.CloseModal()
	LogModalChange("none", "close")
	return m
}

// handleEventFormKeys handles keys in the event form modal.
func (m Model) handleEventFormKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return m.closeModal(), nil

	case "tab", "down":
		m.form.nextFocus()
		return m, textinput.Blink

	case "shift+tab", "up":
		m.form.prevFocus()
		return m, textinput.Blink

	case "left":
		if m.form.focusedInput() == nil {
			m.form.cyclePicker(-1)
			return m, nil
		}

	case "right":
		if m.form.focusedInput() == nil {
			m.form.cyclePicker(1)
			return m, nil
		}

	case "enter":
		return m.saveEventFromForm()
	}

	// Route remaining keys to the focused text input.
	if in := m.form.focusedInput(); in != nil {
		var cmd tea.Cmd
		*in, cmd = in.Update(msg)
		m.form.clearFieldError()
		return m, cmd
	}

	return m, nil
}

// saveEventFromForm validates the form and persists the event. A
// failed validation keeps the modal open with inline field errors.
func (m Model) saveEventFromForm() (tea.Model, tea.Cmd) {
	ev, errs := m.form.buildEvent()
	if len(errs) > 0 {
		m.form.errors = errs
		return m, nil
	}

	ctx := context.Background()
	if m.form.editing != nil {
		patch := event.Patch{
			Title:       &ev.Title,
			Description: &ev.Description,
			Start:       &ev.Start,
			End:         &ev.End,
			Color:       &ev.Color,
			Category:    &ev.Category,
		}
		if err := m.repo.UpdateEvent(ctx, ev.ID, patch); err != nil {
			m.statusMsg = fmt.Sprintf("Error: %v", err)
			return m, nil
		}
		if err := m.hooks.Update(ev.ID, patch); err != nil {
			LogError("hook update", err)
		}
		m.statusMsg = fmt.Sprintf("Updated: %s", ev.Title)
	} else {
		if err := m.repo.CreateEvent(ctx, ev); err != nil {
			m.statusMsg = fmt.Sprintf("Error: %v", err)
			return m, nil
		}
		if err := m.hooks.Add(ev); err != nil {
			LogError("hook add", err)
		}
		m.statusMsg = fmt.Sprintf("Created: %s", ev.Title)
	}

	m = m.closeModal()
	m.state = m.state.SelectDate(ev.Start)
	return m, m.reload()
}

// handleEventDetailKeys handles keys in the event detail modal.
func (m Model) handleEventDetailKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	evs := m.eventsAtCursor()
	if m.detailIndex >= len(evs) {
		return m.closeModal(), nil
	}
	current := evs[m.detailIndex]

	switch msg.String() {
	case "esc", "enter":
		return m.closeModal(), nil

	case "tab", "j", "down":
		if len(evs) > 1 {
			m.detailIndex = (m.detailIndex + 1) % len(evs)
			m.state = m.state.OpenModal(evs[m.detailIndex], m.cursorDate())
		}
		return m, nil

	case "shift+tab", "k", "up":
		if len(evs) > 1 {
			m.detailIndex = (m.detailIndex + len(evs) - 1) % len(evs)
			m.state = m.state.OpenModal(evs[m.detailIndex], m.cursorDate())
		}
		return m, nil

	case "e":
		m.modalType = ModalEventForm
		m.form.load(current)
		LogModalChange("event_form", "open_edit")
		return m, textinput.Blink

	case "y":
		if err := clipboard.WriteAll(eventSummary(current)); err != nil {
			m.statusMsg = fmt.Sprintf("Error: %v", err)
			return m, nil
		}
		m.statusMsg = "Copied to clipboard"
		return m, nil

	case "x", "d":
		m.modalType = ModalConfirmDelete
		m.confirmMsg = fmt.Sprintf("Delete event: %s?", current.Title)
		LogModalChange("confirm_delete", "open")
		return m, nil
	}
	return m, nil
}

// handleConfirmDeleteKeys handles keys in the delete confirmation
// modal.
func (m Model) handleConfirmDeleteKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "n":
		// Back to the detail view of the same event.
		if m.state.SelectedEvent != nil {
			m.modalType = ModalEventDetail
			return m, nil
		}
		return m.closeModal(), nil

	case "enter", "y":
		ev := m.state.SelectedEvent
		if ev == nil {
			return m.closeModal(), nil
		}
		ctx := context.Background()
		if err := m.repo.DeleteEvent(ctx, ev.ID); err != nil {
			m.statusMsg = fmt.Sprintf("Error: %v", err)
			return m.closeModal(), nil
		}
		if err := m.hooks.Delete(ev.ID); err != nil {
			LogError("hook delete", err)
		}
		m.statusMsg = fmt.Sprintf("Deleted: %s", ev.Title)
		m = m.closeModal()
		return m, m.reload()
	}
	return m, nil
}
