package view

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func plainFormStyles() EventFormStyles {
	s := lipgloss.NewStyle()
	return EventFormStyles{
		BodyStyle:      s,
		LabelStyle:     s,
		FocusStyle:     s,
		ErrorStyle:     s,
		OptionActive:   s,
		OptionInactive: s,
		HintStyle:      s,
	}
}

func TestRenderEventFormBody(t *testing.T) {
	model := EventFormModel{
		Fields: []FormField{
			{Label: "TITLE", Input: "dentist", Focused: true},
			{Label: "START", Input: "9am", Error: "start time must be HH:MM"},
		},
		Pickers: []FormPicker{
			{Label: "COLOR", Options: []string{"blue", "green"}, Active: 1, Focused: true},
		},
	}

	out := RenderEventFormBody(model, plainFormStyles())

	for _, want := range []string{"TITLE", "dentist", "START", "start time must be HH:MM", "COLOR", "green", "Use left/right"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRenderEventDetailBody(t *testing.T) {
	model := EventDetailModel{
		Title:         "retro",
		Description:   "sprint 12",
		CategoryLabel: "work",
		ColorLabel:    "green",
		TimeRange:     "14:00 - 15:30",
		DateLabel:     "Wed, Mar 20 2024",
		Position:      "2/3",
	}
	styles := EventDetailStyles{
		BodyStyle:  lipgloss.NewStyle(),
		LabelStyle: lipgloss.NewStyle(),
		MetaStyle:  lipgloss.NewStyle(),
	}

	out := RenderEventDetailBody(model, styles)
	for _, want := range []string{"retro", "sprint 12", "[green] work", "14:00 - 15:30", "Event 2/3"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRenderConfirmDeleteBody(t *testing.T) {
	styles := ConfirmDeleteStyles{BodyStyle: lipgloss.NewStyle()}

	withEvent := RenderConfirmDeleteBody(ConfirmDeleteModel{
		Title:     "old meeting",
		TimeRange: "09:00 - 10:00",
		DateLabel: "Fri, Mar 15 2024",
		HasEvent:  true,
	}, styles)
	if !strings.Contains(withEvent, `"old meeting"`) {
		t.Errorf("output missing quoted title:\n%s", withEvent)
	}
	if !strings.Contains(withEvent, "Are you sure?") {
		t.Error("output missing confirmation question")
	}

	without := RenderConfirmDeleteBody(ConfirmDeleteModel{}, styles)
	if strings.Contains(without, `""`) {
		t.Error("empty event details should be omitted")
	}
}

func TestRenderModalFrame(t *testing.T) {
	s := lipgloss.NewStyle()
	styles := ModalStyles{
		ModalHeaderStyle: s, ModalTitleStyle: s, ModalFooterStyle: s,
		ModalStyle: s, ModalButtonStyle: s, ModalButtonActiveStyle: s,
		ModalBodyStyle: s,
	}

	out := RenderModalFrame("Title", "body", "footer", styles)
	for _, want := range []string{"Title", "body", "footer"} {
		if !strings.Contains(out, want) {
			t.Errorf("frame missing %q", want)
		}
	}

	buttons := RenderModalButtons(styles, "OK", "Cancel")
	if !strings.Contains(buttons, "OK") || !strings.Contains(buttons, "Cancel") {
		t.Errorf("buttons = %q", buttons)
	}
}
