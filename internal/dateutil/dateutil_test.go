package dateutil

import (
	"errors"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	t.Run("valid date", func(t *testing.T) {
		got, err := ParseDate("2024-03-15")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := time.Date(2024, 3, 15, 0, 0, 0, 0, time.Local)
		if !got.Equal(want) {
			t.Errorf("got %v, want %v", got, want)
		}
	})

	t.Run("empty defaults to today", func(t *testing.T) {
		got, err := ParseDate("")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		today := TruncateToDay(time.Now())
		if !got.Equal(today) {
			t.Errorf("got %v, want %v", got, today)
		}
	})

	t.Run("invalid format", func(t *testing.T) {
		_, err := ParseDate("15-03-2024")
		if !errors.Is(err, ErrInvalidDateFormat) {
			t.Errorf("got error %v, want %v", err, ErrInvalidDateFormat)
		}
	})
}

func TestParseClock(t *testing.T) {
	tests := []struct {
		input      string
		wantHour   int
		wantMinute int
		wantErr    bool
	}{
		{input: "00:00", wantHour: 0, wantMinute: 0},
		{input: "09:30", wantHour: 9, wantMinute: 30},
		{input: "23:59", wantHour: 23, wantMinute: 59},
		{input: "9:30", wantErr: true},
		{input: "25:00", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		hour, minute, err := ParseClock(tt.input)
		if tt.wantErr {
			if !errors.Is(err, ErrInvalidClockFormat) {
				t.Errorf("ParseClock(%q) error = %v, want %v", tt.input, err, ErrInvalidClockFormat)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseClock(%q) unexpected error: %v", tt.input, err)
			continue
		}
		if hour != tt.wantHour || minute != tt.wantMinute {
			t.Errorf("ParseClock(%q) = %d:%d, want %d:%d", tt.input, hour, minute, tt.wantHour, tt.wantMinute)
		}
	}
}

func TestSameDay(t *testing.T) {
	tests := []struct {
		name string
		a    time.Time
		b    time.Time
		want bool
	}{
		{
			name: "same day different times",
			a:    time.Date(2024, 3, 15, 9, 0, 0, 0, time.Local),
			b:    time.Date(2024, 3, 15, 23, 30, 0, 0, time.Local),
			want: true,
		},
		{
			name: "adjacent days",
			a:    time.Date(2024, 3, 15, 23, 59, 0, 0, time.Local),
			b:    time.Date(2024, 3, 16, 0, 0, 0, 0, time.Local),
			want: false,
		},
		{
			name: "same day-of-month different months",
			a:    time.Date(2024, 3, 15, 0, 0, 0, 0, time.Local),
			b:    time.Date(2024, 4, 15, 0, 0, 0, 0, time.Local),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SameDay(tt.a, tt.b); got != tt.want {
				t.Errorf("SameDay() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDaysInMonth(t *testing.T) {
	tests := []struct {
		date time.Time
		want int
	}{
		{time.Date(2024, 1, 10, 0, 0, 0, 0, time.Local), 31},
		{time.Date(2024, 2, 1, 0, 0, 0, 0, time.Local), 29}, // leap year
		{time.Date(2025, 2, 1, 0, 0, 0, 0, time.Local), 28},
		{time.Date(2024, 4, 30, 0, 0, 0, 0, time.Local), 30},
	}

	for _, tt := range tests {
		if got := DaysInMonth(tt.date); got != tt.want {
			t.Errorf("DaysInMonth(%v) = %d, want %d", tt.date, got, tt.want)
		}
	}
}
