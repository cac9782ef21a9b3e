// Package schedule generates the fixed time slots that countdown cards target.
package schedule

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/akyairhashvil/slotgrid/internal/models"
)

var (
	ErrInvalidTimeOfDay = errors.New("invalid time of day")
	ErrInvalidInterval  = errors.New("interval must be positive")
)

// Config describes a slot sequence independent of any date.
type Config struct {
	Start    models.TimeOfDay
	End      models.TimeOfDay
	Interval time.Duration
}

// Validate rejects hours outside 0-23, minutes outside 0-59 and non-positive intervals.
func (c Config) Validate() error {
	for _, t := range []models.TimeOfDay{c.Start, c.End} {
		if t.Hour < 0 || t.Hour > 23 || t.Minute < 0 || t.Minute > 59 {
			return fmt.Errorf("%w: %02d:%02d", ErrInvalidTimeOfDay, t.Hour, t.Minute)
		}
	}
	if c.Interval <= 0 {
		return fmt.Errorf("%w: %s", ErrInvalidInterval, c.Interval)
	}
	return nil
}

// Slots generates the sequence for c anchored on the date of anchor.
func (c Config) Slots(anchor time.Time) []time.Time {
	return Generate(anchor, c.Start, c.End, c.Interval)
}

// Generate returns the slots from start to end (inclusive) on anchor's date,
// stepping by interval. An empty result is returned when start is after end or
// interval is not positive.
func Generate(anchor time.Time, start, end models.TimeOfDay, interval time.Duration) []time.Time {
	if interval <= 0 {
		return nil
	}
	cur := start.On(anchor)
	last := end.On(anchor)
	var slots []time.Time
	for !cur.After(last) {
		slots = append(slots, cur)
		cur = cur.Add(interval)
	}
	return slots
}

// Descriptors builds one card descriptor per slot. Titles and targets are
// derived from the 1-indexed position.
func Descriptors(slots []time.Time) []models.CardDescriptor {
	out := make([]models.CardDescriptor, 0, len(slots))
	for i, s := range slots {
		out = append(out, models.CardDescriptor{
			Title:  fmt.Sprintf("Card %d", i+1),
			Target: Target(i + 1),
			End:    s,
		})
	}
	return out
}

const targetPrefix = "/page"

// Target is the navigation target of the n-th slot, 1-indexed.
func Target(n int) string {
	return targetPrefix + strconv.Itoa(n)
}

// TargetIndex is the inverse of Target. ok is false for anything Target
// would not produce.
func TargetIndex(target string) (n int, ok bool) {
	rest, found := strings.CutPrefix(target, targetPrefix)
	if !found || rest == "" || rest[0] == '+' || rest[0] == '-' {
		return 0, false
	}
	n, err := strconv.Atoi(rest)
	if err != nil || n < 1 {
		return 0, false
	}
	return n, true
}
