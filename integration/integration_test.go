package integration

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/jfmartinez/almanac/internal/dateutil"
	"github.com/jfmartinez/almanac/internal/db"
	"github.com/jfmartinez/almanac/internal/event"
)

// openRepo creates a fresh repository for each test with automatic cleanup.
func openRepo(t *testing.T) *db.SQLite {
	t.Helper()
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")
	repo, err := db.New(dbPath)
	if err != nil {
		t.Fatalf("failed to open repo: %v", err)
	}
	t.Cleanup(func() { _ = repo.Close() })
	return repo
}

// mustParseDate parses a date string or fails the test.
func mustParseDate(t *testing.T, s string) time.Time {
	t.Helper()
	date, err := dateutil.ParseDate(s)
	if err != nil {
		t.Fatalf("failed to parse date %q: %v", s, err)
	}
	return date
}

// createEvent is a helper to build and insert an event.
func createEvent(t *testing.T, repo *db.SQLite, title, date, start, end string) *event.Event {
	t.Helper()
	ctx := context.Background()
	day := mustParseDate(t, date)
	fromH, fromM, err := dateutil.ParseClock(start)
	if err != nil {
		t.Fatalf("failed to parse start %q: %v", start, err)
	}
	toH, toM, err := dateutil.ParseClock(end)
	if err != nil {
		t.Fatalf("failed to parse end %q: %v", end, err)
	}
	ev, err := event.New(title, "", dateutil.At(day, fromH, fromM), dateutil.At(day, toH, toM))
	if err != nil {
		t.Fatalf("failed to build event: %v", err)
	}
	if err := repo.CreateEvent(ctx, ev); err != nil {
		t.Fatalf("failed to insert event: %v", err)
	}
	return ev
}

func TestCreateEvent(t *testing.T) {
	repo := openRepo(t)
	ctx := context.Background()

	ev := createEvent(t, repo, "Integration test event", "2025-01-20", "08:00", "09:00")
	if ev.ID == 0 {
		t.Error("expected event ID to be set after insert")
	}

	got, err := repo.GetEvent(ctx, ev.ID)
	if err != nil {
		t.Fatalf("failed to get event: %v", err)
	}
	if got == nil {
		t.Fatalf("event %d not found in database", ev.ID)
	}
	if got.Title != "Integration test event" {
		t.Errorf("Title: got %q, want %q", got.Title, "Integration test event")
	}
	if !got.Start.Equal(ev.Start) {
		t.Errorf("Start: got %v, want %v", got.Start, ev.Start)
	}
	if !got.End.Equal(ev.End) {
		t.Errorf("End: got %v, want %v", got.End, ev.End)
	}
	if got.Category != event.CategoryMeeting {
		t.Errorf("Category: got %q, want %q", got.Category, event.CategoryMeeting)
	}
	if got.Color != event.ColorBlue {
		t.Errorf("Color: got %q, want %q", got.Color, event.ColorBlue)
	}
}

func TestCreateEvent_ValidationErrors(t *testing.T) {
	repo := openRepo(t)
	ctx := context.Background()

	start := mustParseDate(t, "2025-01-20").Add(9 * time.Hour)
	invalid := &event.Event{
		Title: "",
		Start: start,
		End:   start.Add(time.Hour),
	}

	err := repo.CreateEvent(ctx, invalid)
	if err == nil {
		t.Fatal("expected validation error for empty title")
	}
	var fieldErrs event.FieldErrors
	if !errors.As(err, &fieldErrs) {
		t.Fatalf("expected FieldErrors, got %T: %v", err, err)
	}
	if _, ok := fieldErrs[event.FieldTitle]; !ok {
		t.Errorf("expected error for %q, got %v", event.FieldTitle, fieldErrs)
	}
}

func TestGetEvent_NotFound(t *testing.T) {
	repo := openRepo(t)
	ctx := context.Background()

	got, err := repo.GetEvent(ctx, 99999)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != nil {
		t.Errorf("expected nil for non-existent event, got %+v", got)
	}
}

func TestUpdateEvent(t *testing.T) {
	repo := openRepo(t)
	ctx := context.Background()

	ev := createEvent(t, repo, "Event to rename", "2025-01-21", "11:00", "12:00")

	newTitle := "Renamed event"
	newColor := event.ColorGreen
	patch := event.Patch{Title: &newTitle, Color: &newColor}
	if err := repo.UpdateEvent(ctx, ev.ID, patch); err != nil {
		t.Fatalf("failed to update event: %v", err)
	}

	got, err := repo.GetEvent(ctx, ev.ID)
	if err != nil {
		t.Fatalf("failed to get event: %v", err)
	}
	if got.Title != newTitle {
		t.Errorf("Title: got %q, want %q", got.Title, newTitle)
	}
	if got.Color != newColor {
		t.Errorf("Color: got %q, want %q", got.Color, newColor)
	}
	// Untouched fields stay as stored.
	if !got.Start.Equal(ev.Start) {
		t.Errorf("Start changed: got %v, want %v", got.Start, ev.Start)
	}
}

func TestUpdateEvent_NotFound(t *testing.T) {
	repo := openRepo(t)
	ctx := context.Background()

	title := "ghost"
	err := repo.UpdateEvent(ctx, 99999, event.Patch{Title: &title})
	if !errors.Is(err, event.ErrEventNotFound) {
		t.Errorf("expected ErrEventNotFound, got: %v", err)
	}
}

func TestDeleteEvent(t *testing.T) {
	repo := openRepo(t)
	ctx := context.Background()

	ev := createEvent(t, repo, "Event to delete", "2025-01-21", "13:00", "14:00")

	if err := repo.DeleteEvent(ctx, ev.ID); err != nil {
		t.Fatalf("failed to delete event: %v", err)
	}

	got, err := repo.GetEvent(ctx, ev.ID)
	if err != nil {
		t.Fatalf("failed to get event: %v", err)
	}
	if got != nil {
		t.Errorf("expected event to be gone, got %+v", got)
	}
}

func TestDeleteEvent_NotFound(t *testing.T) {
	repo := openRepo(t)
	ctx := context.Background()

	err := repo.DeleteEvent(ctx, 99999)
	if !errors.Is(err, event.ErrEventNotFound) {
		t.Errorf("expected ErrEventNotFound, got: %v", err)
	}
}

func TestListEventsByRange(t *testing.T) {
	repo := openRepo(t)
	ctx := context.Background()

	createEvent(t, repo, "List test morning", "2025-02-01", "09:00", "10:00")
	createEvent(t, repo, "List test afternoon", "2025-02-01", "14:00", "15:00")
	createEvent(t, repo, "List test next day", "2025-02-02", "10:00", "11:00")

	day := mustParseDate(t, "2025-02-01")
	events, err := repo.ListEventsByRange(ctx, day, dateutil.EndOfDay(day))
	if err != nil {
		t.Fatalf("failed to list events: %v", err)
	}

	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
	// Ordered by start time.
	if events[0].Title != "List test morning" {
		t.Errorf("expected first event to be 'List test morning', got %q", events[0].Title)
	}
	if events[1].Title != "List test afternoon" {
		t.Errorf("expected second event to be 'List test afternoon', got %q", events[1].Title)
	}
}

func TestListEventsByRange_MultiDay(t *testing.T) {
	repo := openRepo(t)
	ctx := context.Background()

	createEvent(t, repo, "Range test day1", "2025-03-01", "09:00", "10:00")
	createEvent(t, repo, "Range test day2", "2025-03-02", "09:00", "10:00")
	createEvent(t, repo, "Range test day3", "2025-03-03", "09:00", "10:00")
	createEvent(t, repo, "Range test outside", "2025-03-05", "09:00", "10:00")

	start := mustParseDate(t, "2025-03-01")
	end := dateutil.EndOfDay(mustParseDate(t, "2025-03-03"))
	events, err := repo.ListEventsByRange(ctx, start, end)
	if err != nil {
		t.Fatalf("failed to list events: %v", err)
	}

	if len(events) != 3 {
		t.Fatalf("expected 3 events, got %d", len(events))
	}

	titles := make(map[string]bool)
	for _, ev := range events {
		titles[ev.Title] = true
	}
	for _, expected := range []string{"Range test day1", "Range test day2", "Range test day3"} {
		if !titles[expected] {
			t.Errorf("expected event %q to be in results", expected)
		}
	}
	if titles["Range test outside"] {
		t.Error("event 'Range test outside' should not be in results")
	}
}

func TestListEventsByRange_Empty(t *testing.T) {
	repo := openRepo(t)
	ctx := context.Background()

	start := mustParseDate(t, "2099-01-01")
	end := mustParseDate(t, "2099-01-31")
	events, err := repo.ListEventsByRange(ctx, start, end)
	if err != nil {
		t.Fatalf("failed to list events: %v", err)
	}
	if len(events) != 0 {
		t.Errorf("expected 0 events, got %d", len(events))
	}
}

// TestFullWorkflow tests a complete event lifecycle: create, list,
// reschedule, and delete.
func TestFullWorkflow(t *testing.T) {
	repo := openRepo(t)
	ctx := context.Background()

	standup := createEvent(t, repo, "Standup", "2025-05-01", "09:00", "09:30")
	review := createEvent(t, repo, "Code review", "2025-05-01", "10:00", "11:00")
	dentist := createEvent(t, repo, "Dentist", "2025-05-01", "14:00", "15:00")

	day := mustParseDate(t, "2025-05-01")
	events, err := repo.ListEventsByRange(ctx, day, dateutil.EndOfDay(day))
	if err != nil {
		t.Fatalf("failed to list events: %v", err)
	}
	if len(events) != 3 {
		t.Fatalf("expected 3 events, got %d", len(events))
	}

	// Reschedule the dentist appointment to the next day.
	nextDay := mustParseDate(t, "2025-05-02")
	newStart := nextDay.Add(10 * time.Hour)
	newEnd := nextDay.Add(11 * time.Hour)
	patch := event.Patch{Start: &newStart, End: &newEnd}
	if err := repo.UpdateEvent(ctx, dentist.ID, patch); err != nil {
		t.Fatalf("failed to reschedule event: %v", err)
	}

	moved, err := repo.ListEventsByRange(ctx, nextDay, dateutil.EndOfDay(nextDay))
	if err != nil {
		t.Fatalf("failed to list next day: %v", err)
	}
	if len(moved) != 1 || moved[0].ID != dentist.ID {
		t.Fatalf("expected rescheduled event on next day, got %v", moved)
	}

	// Cancel the review.
	if err := repo.DeleteEvent(ctx, review.ID); err != nil {
		t.Fatalf("failed to delete event: %v", err)
	}

	remaining, err := repo.ListEventsByRange(ctx, day, dateutil.EndOfDay(day))
	if err != nil {
		t.Fatalf("failed to list final: %v", err)
	}
	if len(remaining) != 1 {
		t.Fatalf("expected 1 event remaining, got %d", len(remaining))
	}
	if remaining[0].ID != standup.ID {
		t.Errorf("expected standup to remain, got %q", remaining[0].Title)
	}
}
