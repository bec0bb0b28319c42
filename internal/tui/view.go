package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jfmartinez/almanac/internal/calendar"
	"github.com/jfmartinez/almanac/internal/event"
	"github.com/jfmartinez/almanac/internal/tui/view"
)

// View renders the TUI.
func (m Model) View() string {
	showModal := m.mode == ModeModal && m.modalType != ModalNone
	modal := ""
	if showModal {
		modal = m.renderModal()
	}

	return view.Render(view.ViewState{
		Width:            m.width,
		Height:           m.height,
		BaseContent:      m.renderAppContent(),
		ModalContent:     modal,
		ShowModal:        showModal,
		ModalBg:          m.styles.ModalBgColor,
		EmptyPlaceholder: "Loading...",
	})
}

func (m Model) renderAppContent() string {
	if m.width < 40 || m.height < 10 {
		return "Terminal too small"
	}

	title := m.renderTitle()
	var grid string
	if m.state.View == calendar.ViewWeek {
		grid = m.renderWeekView()
	} else {
		grid = m.renderMonthView()
	}
	footer := m.renderFooter()

	content := lipgloss.JoinVertical(lipgloss.Left, title, grid, footer)
	app := m.styles.AppStyle.Render(content)
	return view.PadLinesWithBackground(app, m.width, m.height, m.styles.colorBg)
}

func (m Model) renderTitle() string {
	var heading string
	if m.state.View == calendar.ViewWeek {
		heading = view.WeekTitle(m.state.CurrentDate)
	} else {
		heading = view.MonthTitle(m.state.CurrentDate)
	}
	label := m.styles.HelpStyle.Render(" [" + string(m.state.View) + "]")
	return m.styles.TitleStyle.Render(heading) + label
}

func (m Model) renderFooter() string {
	status := m.statusMsg
	if status == "" && m.loading {
		status = "Loading..."
	}

	help := "hjkl move · H/L prev/next · t today · v view · enter open · a add · x delete · q quit"
	lines := []string{
		m.styles.SeparatorStyle.Render(strings.Repeat("─", max(0, m.width-4))),
		m.styles.StatusStyle.Render(status),
		m.styles.HelpStyle.Render(help),
	}
	return strings.Join(lines, "\n")
}

// renderModal dispatches to the active modal body.
func (m Model) renderModal() string {
	switch m.modalType {
	case ModalEventForm:
		return m.renderEventFormModal()
	case ModalEventDetail:
		return m.renderEventDetailModal()
	case ModalConfirmDelete:
		return m.renderConfirmDeleteModal()
	}
	return ""
}

func (m Model) modalStyles() view.ModalStyles {
	return view.ModalStyles{
		ModalHeaderStyle:       m.styles.ModalHeaderStyle,
		ModalTitleStyle:        m.styles.ModalTitleStyle,
		ModalFooterStyle:       m.styles.ModalFooterStyle,
		ModalStyle:             m.styles.ModalStyle,
		ModalButtonStyle:       m.styles.ModalButtonStyle,
		ModalButtonActiveStyle: m.styles.ModalButtonActiveStyle,
		ModalBodyStyle:         m.styles.ModalBodyStyle,
	}
}

func (m Model) renderEventFormModal() string {
	f := m.form

	title := "New Event"
	if f.editing != nil {
		title = "Edit Event"
	}

	fields := []view.FormField{
		{
			Label:   "TITLE",
			Input:   f.title.View(),
			Error:   f.errors[event.FieldTitle],
			Focused: f.focus == formFocusTitle,
		},
		{
			Label:   "DESCRIPTION",
			Input:   f.description.View(),
			Error:   f.errors[event.FieldDescription],
			Focused: f.focus == formFocusDescription,
		},
		{
			Label:   "DATE",
			Input:   f.date.View(),
			Focused: f.focus == formFocusDate,
		},
		{
			Label:   "START",
			Input:   f.start.View(),
			Error:   f.errors[event.FieldStart],
			Focused: f.focus == formFocusStart,
		},
		{
			Label:   "END",
			Input:   f.end.View(),
			Error:   f.errors[event.FieldEnd],
			Focused: f.focus == formFocusEnd,
		},
	}

	colorOpts := make([]string, 0, len(event.Colors()))
	for _, c := range event.Colors() {
		colorOpts = append(colorOpts, string(c))
	}
	categoryOpts := make([]string, 0, len(event.Categories()))
	for _, c := range event.Categories() {
		categoryOpts = append(categoryOpts, string(c))
	}
	pickers := []view.FormPicker{
		{Label: "COLOR", Options: colorOpts, Active: f.colorIdx, Focused: f.focus == formFocusColor},
		{Label: "CATEGORY", Options: categoryOpts, Active: f.categoryIdx, Focused: f.focus == formFocusCategory},
	}

	body := view.RenderEventFormBody(
		view.EventFormModel{Fields: fields, Pickers: pickers},
		view.EventFormStyles{
			BodyStyle:      m.styles.ModalBodyStyle,
			LabelStyle:     m.styles.ModalLabelStyle,
			FocusStyle:     m.styles.ModalTitleStyle,
			ErrorStyle:     m.styles.ModalErrorStyle,
			OptionActive:   m.styles.OptionActiveStyle,
			OptionInactive: m.styles.OptionInactiveStyle,
			HintStyle:      m.styles.ModalHintStyle,
		},
	)

	return view.RenderModalFrame(title, body, "enter save · tab next field · esc cancel", m.modalStyles())
}

func (m Model) renderEventDetailModal() string {
	ev := m.state.SelectedEvent
	if ev == nil {
		return ""
	}

	position := ""
	if n := len(m.eventsAtCursor()); n > 1 {
		position = fmt.Sprintf("%d/%d", m.detailIndex+1, n)
	}

	body := view.RenderEventDetailBody(
		view.EventDetailModel{
			Title:         ev.Title,
			Description:   ev.Description,
			CategoryLabel: string(ev.Category),
			ColorLabel:    string(ev.Color),
			TimeRange:     formatTimeRange(ev),
			DateLabel:     formatDateLabel(ev.Start),
			Position:      position,
		},
		view.EventDetailStyles{
			BodyStyle:  m.styles.ModalBodyStyle,
			LabelStyle: m.styles.ModalLabelStyle,
			MetaStyle:  m.styles.ModalHintStyle,
		},
	)

	return view.RenderModalFrame("Event", body, "e edit · x delete · y copy · esc close", m.modalStyles())
}

func (m Model) renderConfirmDeleteModal() string {
	ev := m.state.SelectedEvent

	model := view.ConfirmDeleteModel{HasEvent: ev != nil}
	if ev != nil {
		model.Title = ev.Title
		model.TimeRange = formatTimeRange(ev)
		model.DateLabel = formatDateLabel(ev.Start)
	}

	body := view.RenderConfirmDeleteBody(model, view.ConfirmDeleteStyles{
		BodyStyle: m.styles.ModalBodyStyle,
	})
	buttons := view.RenderModalButtons(m.modalStyles(), "Delete (y)", "Keep (n)")

	return view.RenderModalFrame("Delete Event", body+"\n\n"+buttons, "enter/y confirm · esc/n cancel", m.modalStyles())
}
