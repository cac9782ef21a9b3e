package testutil

import (
	"sync"
	"time"

	"github.com/akyairhashvil/slotgrid/internal/clock"
)

// Epoch is the default start time of a FakeClock.
var Epoch = time.Date(2026, 10, 18, 5, 30, 0, 0, time.UTC)

// FakeClock is a manually advanced clock.Clock. Timers fire only from Advance.
type FakeClock struct {
	mu      sync.Mutex
	now     time.Time
	timers  []*fakeTimer
	created int
}

func NewFakeClock(start time.Time) *FakeClock {
	return &FakeClock{now: start}
}

func (c *FakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *FakeClock) NewTimer(d time.Duration) clock.Timer {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := &fakeTimer{
		owner:    c,
		deadline: c.now.Add(d),
		c:        make(chan time.Time, 1),
		done:     make(chan struct{}),
	}
	c.timers = append(c.timers, t)
	c.created++
	return t
}

// Advance moves the clock forward and fires every timer whose deadline passed.
// It returns the number of timers fired.
func (c *FakeClock) Advance(d time.Duration) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
	fired := 0
	live := c.timers[:0]
	for _, t := range c.timers {
		if t.deadline.After(c.now) {
			live = append(live, t)
			continue
		}
		t.c <- c.now
		fired++
	}
	c.timers = live
	return fired
}

// Set jumps the clock to now without firing anything.
func (c *FakeClock) Set(now time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = now
}

// Pending reports timers that have neither fired nor been stopped.
func (c *FakeClock) Pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.timers)
}

// Created reports how many timers were ever requested.
func (c *FakeClock) Created() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.created
}

func (c *FakeClock) remove(t *fakeTimer) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, other := range c.timers {
		if other == t {
			c.timers = append(c.timers[:i], c.timers[i+1:]...)
			return true
		}
	}
	return false
}

type fakeTimer struct {
	owner    *FakeClock
	deadline time.Time
	c        chan time.Time
	done     chan struct{}
	once     sync.Once
}

func (t *fakeTimer) C() <-chan time.Time    { return t.c }
func (t *fakeTimer) Done() <-chan struct{} { return t.done }

func (t *fakeTimer) Stop() bool {
	stopped := t.owner.remove(t)
	t.once.Do(func() { close(t.done) })
	return stopped
}
