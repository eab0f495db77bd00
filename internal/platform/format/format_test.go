package format

import (
	"testing"
	"time"
)

func TestThousands(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{1234567, "1,234,567"},
		{-45123, "-45,123"},
	}
	for _, tt := range tests {
		if got := Thousands(tt.in); got != tt.want {
			t.Errorf("Thousands(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestPercent1(t *testing.T) {
	t.Parallel()

	if got := Percent1(0); got != "0.0%" {
		t.Errorf("Percent1(0) = %q, want 0.0%%", got)
	}
	if got := Percent1(62.5); got != "62.5%" {
		t.Errorf("Percent1(62.5) = %q, want 62.5%%", got)
	}
}

func TestCalendarDate(t *testing.T) {
	t.Parallel()

	if got := CalendarDate(time.Time{}); got != "N/A" {
		t.Errorf("zero date = %q, want N/A", got)
	}
	d := time.Date(2025, 9, 7, 13, 0, 0, 0, time.UTC)
	if got := CalendarDate(d); got != "Sep 7, 2025" {
		t.Errorf("got %q, want Sep 7, 2025", got)
	}
}

func TestTitleCase(t *testing.T) {
	t.Parallel()

	tests := []struct{ in, want string }{
		{"passing_yards", "Passing Yards"},
		{"touchdowns", "Touchdowns"},
		{"passes_defensed", "Passes Defensed"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := TitleCase(tt.in); got != tt.want {
			t.Errorf("TitleCase(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestOrdinal(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   int
		want string
	}{
		{1, "1st"}, {2, "2nd"}, {3, "3rd"}, {4, "4th"},
		{11, "11th"}, {12, "12th"}, {13, "13th"},
		{21, "21st"}, {102, "102nd"}, {0, "0"},
	}
	for _, tt := range tests {
		if got := Ordinal(tt.in); got != tt.want {
			t.Errorf("Ordinal(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
