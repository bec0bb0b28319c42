package tui

import (
	"testing"
	"time"

	"github.com/jfmartinez/almanac/internal/event"
)

func slotAt(hour, minute int) time.Time {
	return time.Date(2024, time.March, 15, hour, minute, 0, 0, time.Local)
}

func testEvent(id int64, sh, sm, eh, em int) *event.Event {
	return &event.Event{
		ID:    id,
		Title: "e",
		Start: slotAt(sh, sm),
		End:   slotAt(eh, em),
	}
}

func TestCoveringSlot(t *testing.T) {
	events := []*event.Event{
		testEvent(1, 9, 0, 10, 0),
		testEvent(2, 10, 0, 11, 0),
	}

	tests := []struct {
		name string
		slot time.Time
		want []int64
	}{
		{name: "first half hour", slot: slotAt(9, 0), want: []int64{1}},
		{name: "boundary belongs to second event", slot: slotAt(10, 0), want: []int64{2}},
		{name: "empty slot", slot: slotAt(12, 0), want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := coveringSlot(events, tt.slot)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d events, want %d", len(got), len(tt.want))
			}
			for i, e := range got {
				if e.ID != tt.want[i] {
					t.Errorf("event[%d].ID = %d, want %d", i, e.ID, tt.want[i])
				}
			}
		})
	}
}

func TestColumnPlacements(t *testing.T) {
	a := testEvent(1, 9, 0, 10, 0)
	b := testEvent(2, 9, 30, 10, 30)
	c := testEvent(3, 14, 0, 15, 0)

	spans := columnPlacements([]*event.Event{c, a, b})

	// a and b overlap: half column each, in start order.
	if got := spans[1]; got.Left != 0 || got.Right != 0.5 {
		t.Errorf("span[a] = %+v, want [0, 0.5]", got)
	}
	if got := spans[2]; got.Left != 0.5 || got.Right != 1 {
		t.Errorf("span[b] = %+v, want [0.5, 1]", got)
	}
	// c stands alone: full width.
	if got := spans[3]; got.Left != 0 || got.Right != 1 {
		t.Errorf("span[c] = %+v, want [0, 1]", got)
	}
}

func TestEventSummary(t *testing.T) {
	ev := &event.Event{
		Title:       "dentist",
		Description: "bring card",
		Start:       slotAt(9, 0),
		End:         slotAt(10, 0),
	}
	got := eventSummary(ev)
	want := "dentist (Fri, Mar 15 2024, 09:00 - 10:00)\nbring card"
	if got != want {
		t.Errorf("summary = %q, want %q", got, want)
	}
}

func TestVisibleRangeFollowsCursor(t *testing.T) {
	m := newTestModel(t, nil)
	m.height = 20
	m.cursor.Slot = 40
	m.scrollOffset = 0
	m.ensureCursorVisible()

	visible := m.visibleRows()
	if m.cursor.Slot < m.scrollOffset || m.cursor.Slot >= m.scrollOffset+visible {
		t.Errorf("cursor slot %d outside window [%d, %d)", m.cursor.Slot, m.scrollOffset, m.scrollOffset+visible)
	}
}
