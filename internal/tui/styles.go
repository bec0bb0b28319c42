package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/jfmartinez/almanac/internal/event"
	"github.com/jfmartinez/almanac/internal/tui/theme"
)

// Default column width - will be recalculated dynamically.
const defaultColWidth = 16

// Styles holds all lipgloss styles for the TUI, derived from a theme.
type Styles struct {
	// Theme colors as lipgloss colors
	colorBg          lipgloss.Color
	colorBgHighlight lipgloss.Color
	colorBgSelection lipgloss.Color
	colorFg          lipgloss.Color
	colorFgMuted     lipgloss.Color
	colorAccent      lipgloss.Color
	colorToday       lipgloss.Color
	colorWarning     lipgloss.Color

	// Event swatches by color name
	swatches map[event.Color]lipgloss.Color

	// Title style
	TitleStyle lipgloss.Style

	// Header styles
	DayHeaderStyle      lipgloss.Style
	DayHeaderTodayStyle lipgloss.Style

	// Time column (week view)
	TimeColumnStyle lipgloss.Style

	// Month cell styles
	DayNumberStyle         lipgloss.Style
	DayNumberTodayStyle    lipgloss.Style
	DayNumberAdjacentStyle lipgloss.Style
	CellSelectedStyle      lipgloss.Style
	CellCursorStyle        lipgloss.Style
	MoreEventsStyle        lipgloss.Style

	// Event chips
	chipStyles map[event.Color]lipgloss.Style

	// Empty cell
	EmptyCellStyle lipgloss.Style

	// Cursor style (week view slot)
	CursorStyle lipgloss.Style

	// Status message
	StatusStyle lipgloss.Style
	ErrorStyle  lipgloss.Style

	// Help and legend text
	HelpStyle   lipgloss.Style
	LegendStyle lipgloss.Style

	// Modal styles
	ModalStyle             lipgloss.Style
	ModalBgColor           lipgloss.Color
	ModalBackdropColor     lipgloss.Color
	ModalHeaderStyle       lipgloss.Style
	ModalFooterStyle       lipgloss.Style
	ModalTitleStyle        lipgloss.Style
	ModalBodyStyle         lipgloss.Style
	ModalLabelStyle        lipgloss.Style
	ModalErrorStyle        lipgloss.Style
	ModalInputTextStyle    lipgloss.Style
	ModalInputCursorStyle  lipgloss.Style
	ModalPlaceholderStyle  lipgloss.Style
	ModalButtonStyle       lipgloss.Style
	ModalButtonActiveStyle lipgloss.Style
	ModalHintStyle         lipgloss.Style

	// Picker option styles (color, category)
	OptionActiveStyle   lipgloss.Style
	OptionInactiveStyle lipgloss.Style

	// Grid container
	TableStyle lipgloss.Style

	// App container
	AppStyle lipgloss.Style

	// Separator style
	SeparatorStyle lipgloss.Style
}

// NewStyles creates a new Styles instance from a theme.
func NewStyles(t *theme.Theme) *Styles {
	s := &Styles{}

	s.colorBg = theme.Color(t.Bg)
	s.colorBgHighlight = theme.Color(t.BgHighlight)
	s.colorBgSelection = theme.Color(t.BgSelection)
	s.colorFg = theme.Color(t.Fg)
	s.colorFgMuted = theme.Color(t.FgMuted)
	s.colorAccent = theme.Color(t.Accent)
	s.colorToday = theme.Color(t.Today)
	s.colorWarning = theme.Color(t.Warning)

	s.swatches = map[event.Color]lipgloss.Color{}
	for _, c := range event.Colors() {
		s.swatches[c] = theme.Color(t.Swatch(string(c)))
	}

	base := lipgloss.NewStyle().Background(s.colorBg)

	s.TitleStyle = base.
		Foreground(s.colorAccent).
		Bold(true)

	s.DayHeaderStyle = base.
		Foreground(s.colorFg).
		Bold(true).
		Align(lipgloss.Center)
	s.DayHeaderTodayStyle = s.DayHeaderStyle.
		Foreground(s.colorToday)

	s.TimeColumnStyle = base.
		Foreground(s.colorFgMuted).
		Align(lipgloss.Right)

	s.DayNumberStyle = base.Foreground(s.colorFg)
	s.DayNumberTodayStyle = base.
		Foreground(s.colorToday).
		Bold(true)
	s.DayNumberAdjacentStyle = base.Foreground(s.colorFgMuted)
	s.CellSelectedStyle = lipgloss.NewStyle().
		Background(s.colorBgSelection).
		Foreground(s.colorFg)
	s.CellCursorStyle = lipgloss.NewStyle().
		Background(s.colorBgSelection).
		Foreground(s.colorFg).
		Bold(true)
	s.MoreEventsStyle = base.Foreground(s.colorFgMuted).Italic(true)

	s.chipStyles = map[event.Color]lipgloss.Style{}
	for c, col := range s.swatches {
		s.chipStyles[c] = lipgloss.NewStyle().
			Background(s.colorBgHighlight).
			Foreground(col)
	}

	s.EmptyCellStyle = base.Foreground(s.colorFgMuted)
	s.CursorStyle = lipgloss.NewStyle().
		Background(s.colorBgSelection).
		Foreground(s.colorFg)

	s.StatusStyle = base.Foreground(s.colorFg)
	s.ErrorStyle = base.Foreground(s.colorWarning)
	s.HelpStyle = base.Foreground(s.colorFgMuted)
	s.LegendStyle = base.Foreground(s.colorFgMuted)

	modal := t.Modal()
	s.ModalBgColor = theme.Color(modal.BaseBg)
	s.ModalBackdropColor = s.colorBg

	modalBase := lipgloss.NewStyle().Background(s.ModalBgColor)
	s.ModalStyle = modalBase.
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Color(modal.ModalBorder)).
		BorderBackground(s.ModalBgColor).
		Padding(1, 2)
	s.ModalHeaderStyle = modalBase
	s.ModalFooterStyle = modalBase.Foreground(theme.Color(modal.TextMuted))
	s.ModalTitleStyle = modalBase.
		Foreground(theme.Color(modal.TextPrimary)).
		Bold(true)
	s.ModalBodyStyle = modalBase.Foreground(theme.Color(modal.TextPrimary))
	s.ModalLabelStyle = modalBase.
		Foreground(theme.Color(modal.TextMuted)).
		Bold(true)
	s.ModalErrorStyle = modalBase.Foreground(s.colorWarning)
	s.ModalInputTextStyle = modalBase.Foreground(theme.Color(modal.TextPrimary))
	s.ModalInputCursorStyle = modalBase.Foreground(theme.Color(modal.Highlight))
	s.ModalPlaceholderStyle = modalBase.Foreground(theme.Color(modal.TextMuted))
	s.ModalButtonStyle = modalBase.
		Foreground(theme.Color(modal.TextMuted)).
		Padding(0, 2)
	s.ModalButtonActiveStyle = lipgloss.NewStyle().
		Background(theme.Color(modal.Highlight)).
		Foreground(theme.Color(modal.TextPrimary)).
		Bold(true).
		Padding(0, 2)
	s.ModalHintStyle = modalBase.Foreground(theme.Color(modal.TextMuted)).Italic(true)

	s.OptionActiveStyle = lipgloss.NewStyle().
		Background(theme.Color(modal.Highlight)).
		Foreground(theme.Color(modal.TextPrimary)).
		Bold(true).
		Padding(0, 1)
	s.OptionInactiveStyle = modalBase.
		Foreground(theme.Color(modal.TextMuted)).
		Padding(0, 1)

	s.TableStyle = base.
		Border(lipgloss.RoundedBorder()).
		BorderForeground(s.colorAccent).
		BorderBackground(s.colorBg).
		Padding(0, 1)

	s.AppStyle = base.Padding(0, 2)

	s.SeparatorStyle = base.Foreground(s.colorBgHighlight)

	return s
}

// ChipStyle returns the style for an event chip of the given color.
func (s *Styles) ChipStyle(c event.Color) lipgloss.Style {
	if st, ok := s.chipStyles[c]; ok {
		return st
	}
	return s.chipStyles[event.ColorBlue]
}
