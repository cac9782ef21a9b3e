package models

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// CardStatus enumerates the possible states of a countdown card.
type CardStatus string

const (
	StatusLoading CardStatus = "loading"
	StatusRunning CardStatus = "running"
	StatusExpired CardStatus = "expired"
)

// TimeOfDay is a wall-clock hour and minute without a date.
type TimeOfDay struct {
	Hour   int
	Minute int
}

// ParseTimeOfDay parses "HH:MM" (or "H:MM"). Range checks are left to callers.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	hh, mm, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok {
		return TimeOfDay{}, fmt.Errorf("time of day %q: expected HH:MM", s)
	}
	h, err := strconv.Atoi(hh)
	if err != nil {
		return TimeOfDay{}, fmt.Errorf("time of day %q: hour: %w", s, err)
	}
	m, err := strconv.Atoi(mm)
	if err != nil {
		return TimeOfDay{}, fmt.Errorf("time of day %q: minute: %w", s, err)
	}
	return TimeOfDay{Hour: h, Minute: m}, nil
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// On returns the instant at this time of day on the date of anchor, in anchor's location.
func (t TimeOfDay) On(anchor time.Time) time.Time {
	y, mo, d := anchor.Date()
	return time.Date(y, mo, d, t.Hour, t.Minute, 0, 0, anchor.Location())
}

// CardDescriptor is built once per slot and never changes for the card's lifetime.
type CardDescriptor struct {
	Title  string
	Target string
	End    time.Time
}
