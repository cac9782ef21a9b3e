package countdown

import (
	"testing"
	"time"
)

func TestFormatRemaining(t *testing.T) {
	tests := []struct {
		in   int
		want string
	}{
		{0, "00:00:00"},
		{59, "00:00:59"},
		{3661, "01:01:01"},
		{36000, "10:00:00"},
		{90000, "25:00:00"},
		{-5, "00:00:00"},
	}
	for _, tt := range tests {
		if got := FormatRemaining(tt.in); got != tt.want {
			t.Fatalf("FormatRemaining(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestRemainingFloorsAndClamps(t *testing.T) {
	now := time.Date(2026, 10, 18, 6, 0, 0, 0, time.UTC)
	tests := []struct {
		end  time.Time
		want int
	}{
		{now.Add(10 * time.Second), 10},
		{now.Add(10*time.Second + 999*time.Millisecond), 10},
		{now.Add(999 * time.Millisecond), 0},
		{now, 0},
		{now.Add(-time.Hour), 0},
	}
	for _, tt := range tests {
		if got := Remaining(tt.end, now); got != tt.want {
			t.Fatalf("Remaining(%v) = %d, want %d", tt.end.Sub(now), got, tt.want)
		}
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want string
	}{
		{45 * time.Second, "45s"},
		{5 * time.Minute, "5m"},
		{2 * time.Hour, "2h"},
		{2*time.Hour + 15*time.Minute, "2h 15m"},
	}
	for _, tt := range tests {
		if got := FormatDuration(tt.in); got != tt.want {
			t.Fatalf("FormatDuration(%s) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
