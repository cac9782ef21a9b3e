package tui

import (
	"time"

	"github.com/akyairhashvil/slotgrid/internal/clock"
	"github.com/akyairhashvil/slotgrid/internal/countdown"
	"github.com/akyairhashvil/slotgrid/internal/schedule"
	tea "github.com/charmbracelet/bubbletea"
)

// CardSet owns the cards of one grid render and the day they are anchored to.
type CardSet struct {
	Day   time.Time
	Cards []countdown.Card
}

// BuildCardSet generates the slots for the day of now and wraps each in an
// unmounted card.
func BuildCardSet(cfg schedule.Config, clk clock.Clock, now time.Time, styles countdown.Styles) CardSet {
	descs := schedule.Descriptors(cfg.Slots(now))
	cards := make([]countdown.Card, 0, len(descs))
	for _, d := range descs {
		c := countdown.New(d, clk)
		c.Styles = styles
		cards = append(cards, c)
	}
	y, mo, d := now.Date()
	return CardSet{Day: time.Date(y, mo, d, 0, 0, 0, 0, now.Location()), Cards: cards}
}

// MountAll mounts every card and batches their tick commands.
func (s CardSet) MountAll() (CardSet, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, len(s.Cards))
	for i, c := range s.Cards {
		var cmd tea.Cmd
		s.Cards[i], cmd = c.Mount()
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return s, tea.Batch(cmds...)
}

// UnmountAll releases every card's timer.
func (s CardSet) UnmountAll() CardSet {
	for i, c := range s.Cards {
		s.Cards[i] = c.Unmount()
	}
	return s
}

// Route delivers a tick to the card it belongs to.
func (s CardSet) Route(msg countdown.TickMsg) (CardSet, tea.Cmd) {
	for i, c := range s.Cards {
		if c.ID() != msg.ID {
			continue
		}
		var cmd tea.Cmd
		s.Cards[i], cmd = c.Update(msg)
		return s, cmd
	}
	return s, nil
}

// SameDay reports whether t falls on the set's anchor date.
func (s CardSet) SameDay(t time.Time) bool {
	y1, m1, d1 := s.Day.Date()
	y2, m2, d2 := t.In(s.Day.Location()).Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// Counts returns how many cards are still running and how many expired.
func (s CardSet) Counts() (running, expired int) {
	for _, c := range s.Cards {
		switch {
		case c.Expired():
			expired++
		case c.Navigable():
			running++
		}
	}
	return running, expired
}

// Next returns the running card with the least time left.
func (s CardSet) Next() (countdown.Card, bool) {
	var best countdown.Card
	found := false
	for _, c := range s.Cards {
		if !c.Navigable() {
			continue
		}
		rem, _ := c.Remaining()
		if bestRem, _ := best.Remaining(); !found || rem < bestRem {
			best, found = c, true
		}
	}
	return best, found
}
