package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jfmartinez/almanac/internal/calendar"
	"github.com/jfmartinez/almanac/internal/config"
	"github.com/jfmartinez/almanac/internal/event"
)

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func pressKey(t *testing.T, m Model, msg tea.KeyMsg) Model {
	t.Helper()
	updated, _ := m.handleKeyMsg(msg)
	model, ok := updated.(Model)
	if !ok {
		t.Fatalf("handleKeyMsg returned %T, want Model", updated)
	}
	return model
}

func TestNavigateKeys_MonthView(t *testing.T) {
	m := newTestModel(t, newFakeRepo())

	next := pressKey(t, *m, keyRune('L'))
	if got := next.state.CurrentDate; got.Month() != time.April {
		t.Errorf("after L: month = %v, want April", got.Month())
	}

	back := pressKey(t, next, keyRune('H'))
	if got := back.state.CurrentDate; got.Month() != time.March {
		t.Errorf("after H: month = %v, want March", got.Month())
	}
}

func TestNavigateKeys_WeekView(t *testing.T) {
	m := newTestModel(t, newFakeRepo())
	model := pressKey(t, *m, keyRune('W'))
	if model.state.View != calendar.ViewWeek {
		t.Fatalf("view = %q, want week", model.state.View)
	}

	model = pressKey(t, model, keyRune('L'))
	want := time.Date(2024, time.March, 22, 0, 0, 0, 0, time.Local)
	if !model.state.CurrentDate.Equal(want) {
		t.Errorf("after L in week view: anchor = %v, want %v", model.state.CurrentDate, want)
	}
}

func TestTodayKey(t *testing.T) {
	m := newTestModel(t, newFakeRepo())
	moved := pressKey(t, *m, keyRune('L'))
	moved = pressKey(t, moved, keyRune('L'))

	back := pressKey(t, moved, keyRune('t'))
	want := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.Local)
	if !back.state.CurrentDate.Equal(want) {
		t.Errorf("after t: anchor = %v, want %v", back.state.CurrentDate, want)
	}
	if !back.state.SelectedDate.Equal(want) {
		t.Errorf("after t: selected = %v, want %v", back.state.SelectedDate, want)
	}
}

func TestCursorMove_ReanchorsAcrossMonth(t *testing.T) {
	m := newTestModel(t, newFakeRepo())
	m.state = m.state.SelectDate(time.Date(2024, time.March, 31, 0, 0, 0, 0, time.Local))

	model := pressKey(t, *m, keyRune('l'))
	want := time.Date(2024, time.April, 1, 0, 0, 0, 0, time.Local)
	if !model.state.SelectedDate.Equal(want) {
		t.Errorf("selected = %v, want %v", model.state.SelectedDate, want)
	}
	if model.state.CurrentDate.Month() != time.April {
		t.Errorf("anchor month = %v, want April", model.state.CurrentDate.Month())
	}
}

func TestViewToggleKey(t *testing.T) {
	m := newTestModel(t, newFakeRepo())

	week := pressKey(t, *m, keyRune('v'))
	if week.state.View != calendar.ViewWeek {
		t.Fatalf("after v: view = %q, want week", week.state.View)
	}
	month := pressKey(t, week, keyRune('v'))
	if month.state.View != calendar.ViewMonth {
		t.Fatalf("after vv: view = %q, want month", month.state.View)
	}
}

func TestEnterOnEmptyDay_OpensCreateForm(t *testing.T) {
	m := newTestModel(t, newFakeRepo())

	model := pressKey(t, *m, tea.KeyMsg{Type: tea.KeyEnter})
	if model.mode != ModeModal || model.modalType != ModalEventForm {
		t.Fatalf("mode=%v modal=%v, want modal event form", model.mode, model.modalType)
	}
	if !model.state.ModalOpen {
		t.Error("state.ModalOpen = false, want true")
	}
	if model.state.SelectedEvent != nil {
		t.Error("SelectedEvent should be nil in create mode")
	}
	if got := model.form.date.Value(); got != "2024-03-15" {
		t.Errorf("form date = %q, want 2024-03-15", got)
	}
}

func TestEnterOnEventDay_OpensDetail(t *testing.T) {
	repo := newFakeRepo()
	m := newTestModel(t, repo)
	ev := &event.Event{
		ID:    7,
		Title: "standup",
		Start: time.Date(2024, time.March, 15, 9, 0, 0, 0, time.Local),
		End:   time.Date(2024, time.March, 15, 9, 30, 0, 0, time.Local),
	}
	m.events = []*event.Event{ev}

	model := pressKey(t, *m, tea.KeyMsg{Type: tea.KeyEnter})
	if model.modalType != ModalEventDetail {
		t.Fatalf("modal = %v, want detail", model.modalType)
	}
	if model.state.SelectedEvent == nil || model.state.SelectedEvent.ID != 7 {
		t.Errorf("SelectedEvent = %+v, want ID 7", model.state.SelectedEvent)
	}
}

func TestEscClosesModal_KeepsSelectedDate(t *testing.T) {
	m := newTestModel(t, newFakeRepo())
	m.state = m.state.SelectDate(time.Date(2024, time.March, 20, 0, 0, 0, 0, time.Local))

	opened := pressKey(t, *m, tea.KeyMsg{Type: tea.KeyEnter})
	closed := pressKey(t, opened, tea.KeyMsg{Type: tea.KeyEsc})

	if closed.mode != ModeNormal || closed.state.ModalOpen {
		t.Fatal("modal still open after esc")
	}
	want := time.Date(2024, time.March, 20, 0, 0, 0, 0, time.Local)
	if !closed.state.SelectedDate.Equal(want) {
		t.Errorf("selected = %v, want %v", closed.state.SelectedDate, want)
	}
}

func TestFormSubmit_InvalidKeepsModalOpen(t *testing.T) {
	m := newTestModel(t, newFakeRepo())
	opened := pressKey(t, *m, tea.KeyMsg{Type: tea.KeyEnter})
	opened.form.title.SetValue("") // title required

	after := pressKey(t, opened, tea.KeyMsg{Type: tea.KeyEnter})
	if after.modalType != ModalEventForm {
		t.Fatal("modal closed despite validation errors")
	}
	if after.form.errors[event.FieldTitle] == "" {
		t.Error("expected title error")
	}
}

func TestFormSubmit_CreatesEvent(t *testing.T) {
	repo := newFakeRepo()
	var added *event.Event
	m := New(repo, config.Default(),
		WithNow(func() time.Time { return testNow }),
		WithHooks(calendar.Hooks{OnEventAdd: func(e *event.Event) error {
			added = e
			return nil
		}}),
	)

	opened := pressKey(t, *m, tea.KeyMsg{Type: tea.KeyEnter})
	opened.form.title.SetValue("dentist")

	after := pressKey(t, opened, tea.KeyMsg{Type: tea.KeyEnter})
	if after.mode != ModeNormal {
		t.Fatalf("mode = %v, want normal; errors: %v", after.mode, after.form.errors)
	}
	if len(repo.events) != 1 {
		t.Fatalf("repo has %d events, want 1", len(repo.events))
	}
	if added == nil || added.Title != "dentist" {
		t.Errorf("add hook got %+v, want dentist", added)
	}
}

func TestConfirmDelete(t *testing.T) {
	repo := newFakeRepo()
	m := newTestModel(t, repo)
	ev := &event.Event{
		ID:    3,
		Title: "old meeting",
		Start: time.Date(2024, time.March, 15, 9, 0, 0, 0, time.Local),
		End:   time.Date(2024, time.March, 15, 10, 0, 0, 0, time.Local),
	}
	cp := *ev
	repo.events[3] = &cp
	m.events = []*event.Event{ev}

	opened := pressKey(t, *m, keyRune('x'))
	if opened.modalType != ModalConfirmDelete {
		t.Fatalf("modal = %v, want confirm delete", opened.modalType)
	}

	after := pressKey(t, opened, keyRune('y'))
	if len(repo.deleted) != 1 || repo.deleted[0] != 3 {
		t.Errorf("deleted = %v, want [3]", repo.deleted)
	}
	if after.mode != ModeNormal {
		t.Errorf("mode = %v, want normal", after.mode)
	}
}

func TestConfirmDelete_DeclineReturnsToDetail(t *testing.T) {
	repo := newFakeRepo()
	m := newTestModel(t, repo)
	ev := &event.Event{
		ID:    3,
		Title: "keep me",
		Start: time.Date(2024, time.March, 15, 9, 0, 0, 0, time.Local),
		End:   time.Date(2024, time.March, 15, 10, 0, 0, 0, time.Local),
	}
	m.events = []*event.Event{ev}

	detail := pressKey(t, *m, tea.KeyMsg{Type: tea.KeyEnter})
	confirm := pressKey(t, detail, keyRune('x'))
	back := pressKey(t, confirm, keyRune('n'))

	if back.modalType != ModalEventDetail {
		t.Errorf("modal = %v, want detail", back.modalType)
	}
}
