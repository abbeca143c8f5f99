package timefmt

import (
	"testing"
	"time"
)

func TestFormatDate(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want string
	}{
		{"regular date", time.Date(2025, time.March, 7, 14, 30, 0, 0, time.UTC), "Mar 7, 2025"},
		{"single digit day", time.Date(2024, time.January, 2, 0, 0, 0, 0, time.UTC), "Jan 2, 2024"},
		{"zero time", time.Time{}, "N/A"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatDate(tt.in); got != tt.want {
				t.Errorf("FormatDate(%v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestFormatDateTime(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want string
	}{
		{"afternoon", time.Date(2025, time.March, 7, 14, 30, 0, 0, time.UTC), "Mar 7, 2025 2:30 PM"},
		{"morning", time.Date(2025, time.March, 7, 9, 5, 0, 0, time.UTC), "Mar 7, 2025 9:05 AM"},
		{"midnight", time.Date(2025, time.March, 7, 0, 0, 0, 0, time.UTC), "Mar 7, 2025 12:00 AM"},
		{"zero time", time.Time{}, "N/A"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatDateTime(tt.in); got != tt.want {
				t.Errorf("FormatDateTime(%v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
