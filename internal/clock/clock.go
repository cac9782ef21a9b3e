// Package clock abstracts wall-clock reads and one-shot timers so countdowns
// can be driven by a controllable clock in tests.
package clock

import (
	"sync"
	"time"
)

// Timer is a one-shot timer handle. Stop releases it; after Stop, Done is
// closed and nothing further is delivered on C.
type Timer interface {
	C() <-chan time.Time
	Done() <-chan struct{}
	Stop() bool
}

// Clock provides the current time and timers.
type Clock interface {
	Now() time.Time
	NewTimer(d time.Duration) Timer
}

// System is the Clock backed by the runtime.
var System Clock = systemClock{}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}

func (systemClock) NewTimer(d time.Duration) Timer {
	return &systemTimer{t: time.NewTimer(d), done: make(chan struct{})}
}

type systemTimer struct {
	t    *time.Timer
	done chan struct{}
	once sync.Once
}

func (s *systemTimer) C() <-chan time.Time    { return s.t.C }
func (s *systemTimer) Done() <-chan struct{} { return s.done }

func (s *systemTimer) Stop() bool {
	stopped := s.t.Stop()
	s.once.Do(func() { close(s.done) })
	return stopped
}

// Wait blocks until t fires or is stopped. ok is false when the timer was
// stopped, including when it was stopped after firing but before Wait ran.
func Wait(t Timer) (at time.Time, ok bool) {
	select {
	case <-t.Done():
		return time.Time{}, false
	default:
	}
	select {
	case at = <-t.C():
		return at, true
	case <-t.Done():
		return time.Time{}, false
	}
}
