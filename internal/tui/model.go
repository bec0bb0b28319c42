package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jfmartinez/almanac/internal/calendar"
	"github.com/jfmartinez/almanac/internal/config"
	"github.com/jfmartinez/almanac/internal/event"
	"github.com/jfmartinez/almanac/internal/tui/commands"
	"github.com/jfmartinez/almanac/internal/tui/theme"
)

// Mode represents the current interaction mode.
type Mode int

const (
	ModeNormal Mode = iota
	ModeModal
)

// ModalType identifies the type of modal.
type ModalType int

const (
	ModalNone ModalType = iota
	ModalEventForm
	ModalEventDetail
	ModalConfirmDelete
)

// Position represents the week-view cursor: a day column and a
// half-hour slot row.
type Position struct {
	Day  int // 0=Sunday, 6=Saturday
	Slot int // 0..47, half-hour rows
}

// Model is the main TUI model.
type Model struct {
	// Dependencies
	repo   event.Repository
	config *config.Config
	hooks  calendar.Hooks

	// Theme and styles
	theme  *theme.Theme
	styles *Styles

	// Calendar state (pure transitions)
	state calendar.State

	// Events for the visible range, reloaded after every mutation
	// and navigation step
	events  []*event.Event
	loading bool

	// Week-view cursor
	cursor       Position
	scrollOffset int // first visible slot row in the week grid

	// Mode and modal state
	mode        Mode
	modalType   ModalType
	detailIndex int // which of the day's events the detail modal shows
	form        eventForm
	confirmMsg  string

	// Terminal dimensions and layout
	width    int
	height   int
	colWidth int

	// Messages
	statusMsg  string
	statusTime time.Time

	// Error state
	err error

	// Clock, swappable in tests
	now func() time.Time
}

// ModelOption configures optional model behavior.
type ModelOption func(*Model)

// WithNow overrides the model's clock.
func WithNow(now func() time.Time) ModelOption {
	return func(m *Model) {
		m.now = now
	}
}

// WithHooks installs mutation callbacks fired after create, update,
// and delete operations.
func WithHooks(h calendar.Hooks) ModelOption {
	return func(m *Model) {
		m.hooks = h
	}
}

// New creates a new TUI model.
func New(repo event.Repository, cfg *config.Config, opts ...ModelOption) *Model {
	// Load theme from config
	t, err := theme.Load(cfg.UI.Theme)
	if err != nil {
		// Fallback to mocha on error
		t, _ = theme.Load("mocha")
	}

	styles := NewStyles(t)

	m := &Model{
		repo:     repo,
		config:   cfg,
		theme:    t,
		styles:   styles,
		mode:     ModeNormal,
		colWidth: defaultColWidth,
		now:      time.Now,
	}

	for _, opt := range opts {
		opt(m)
	}

	today := m.now()
	m.state = calendar.New(calendar.View(cfg.Calendar.InitialView), today)
	m.state = m.state.SelectDate(today)
	m.cursor = Position{
		Day:  int(today.Weekday()),
		Slot: today.Hour() * 2,
	}
	m.scrollOffset = defaultScrollOffset(m.cursor.Slot)
	m.form = newEventForm(styles, cfg)

	return m
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return commands.LoadEvents(m.repo, m.state)
}

// defaultScrollOffset positions the week grid so the given slot sits a
// few rows below the top edge.
func defaultScrollOffset(slot int) int {
	off := slot - 4
	if off < 0 {
		off = 0
	}
	return off
}
