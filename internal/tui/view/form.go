package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// FormField is one rendered form row: a label, the input's view, and
// an optional validation message shown beneath it.
type FormField struct {
	Label   string
	Input   string
	Error   string
	Focused bool
}

// FormPicker is a cycled option row (color, category).
type FormPicker struct {
	Label   string
	Options []string
	Active  int
	Focused bool
}

// EventFormModel contains everything needed to render the event form body.
type EventFormModel struct {
	Fields  []FormField
	Pickers []FormPicker
}

// EventFormStyles groups styles for the event form body.
type EventFormStyles struct {
	BodyStyle      lipgloss.Style
	LabelStyle     lipgloss.Style
	FocusStyle     lipgloss.Style
	ErrorStyle     lipgloss.Style
	OptionActive   lipgloss.Style
	OptionInactive lipgloss.Style
	HintStyle      lipgloss.Style
}

// RenderEventFormBody renders the modal body for the event form.
func RenderEventFormBody(model EventFormModel, styles EventFormStyles) string {
	var body strings.Builder
	sep := styles.BodyStyle.Render(" ")

	for _, f := range model.Fields {
		label := styles.LabelStyle.Render(f.Label)
		if f.Focused {
			label = styles.FocusStyle.Render(f.Label)
		}
		body.WriteString(label + "\n")
		body.WriteString(f.Input + "\n")
		if f.Error != "" {
			body.WriteString(styles.ErrorStyle.Render(f.Error) + "\n")
		}
	}

	for _, p := range model.Pickers {
		body.WriteString("\n")
		label := styles.LabelStyle.Render(p.Label)
		if p.Focused {
			label = styles.FocusStyle.Render(p.Label)
		}
		body.WriteString(label + "\n")
		parts := make([]string, 0, len(p.Options))
		for i, opt := range p.Options {
			if i == p.Active {
				parts = append(parts, styles.OptionActive.Render(opt))
			} else {
				parts = append(parts, styles.OptionInactive.Render(opt))
			}
		}
		body.WriteString(strings.Join(parts, sep))
		if p.Focused {
			body.WriteString(sep + styles.HintStyle.Render("Use left/right"))
		}
		body.WriteString("\n")
	}

	return body.String()
}

// EventDetailModel contains the fields needed to render the event
// detail body.
type EventDetailModel struct {
	Title         string
	Description   string
	CategoryLabel string
	ColorLabel    string
	TimeRange     string
	DateLabel     string
	Position      string // "2/3" when paging through a day's events
}

// EventDetailStyles groups styles for the event detail body.
type EventDetailStyles struct {
	BodyStyle  lipgloss.Style
	LabelStyle lipgloss.Style
	MetaStyle  lipgloss.Style
}

// RenderEventDetailBody renders the modal body for event details.
func RenderEventDetailBody(model EventDetailModel, styles EventDetailStyles) string {
	var body strings.Builder

	body.WriteString(" " + styles.BodyStyle.Render(model.Title) + "\n\n")
	if model.Description != "" {
		body.WriteString(styles.BodyStyle.Render(" "+model.Description) + "\n\n")
	}
	body.WriteString(styles.BodyStyle.Render(fmt.Sprintf(" [%s] %s", model.ColorLabel, model.CategoryLabel)) + "\n")
	body.WriteString(styles.BodyStyle.Render(" "+model.TimeRange) + "\n")
	body.WriteString(styles.BodyStyle.Render(" "+model.DateLabel) + "\n")
	if model.Position != "" {
		body.WriteString("\n" + styles.MetaStyle.Render(" Event "+model.Position+" (tab to cycle)"))
	}

	return body.String()
}

// ConfirmDeleteModel contains the fields needed to render the confirm
// delete body.
type ConfirmDeleteModel struct {
	Title     string
	TimeRange string
	DateLabel string
	HasEvent  bool
}

// ConfirmDeleteStyles groups styles for the confirm delete body.
type ConfirmDeleteStyles struct {
	BodyStyle lipgloss.Style
}

// RenderConfirmDeleteBody renders the modal body for the delete
// confirmation.
func RenderConfirmDeleteBody(model ConfirmDeleteModel, styles ConfirmDeleteStyles) string {
	var body strings.Builder

	if model.HasEvent {
		body.WriteString(styles.BodyStyle.Render(fmt.Sprintf("%q", model.Title)) + "\n")
		body.WriteString(styles.BodyStyle.Render(model.TimeRange) + "\n")
		body.WriteString(styles.BodyStyle.Render(model.DateLabel) + "\n\n")
	}
	body.WriteString(styles.BodyStyle.Render("This will permanently remove the event.\nAre you sure?"))

	return body.String()
}
