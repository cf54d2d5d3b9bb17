package common

import (
	"sort"
	"sync"
	"time"
)

// Timer is a pending one-shot callback.
type Timer interface {
	// Stop cancels the callback. It reports whether the call prevented the
	// callback from running. Stopping twice is harmless.
	Stop() bool
}

// Scheduler arms one-shot callbacks. Components that reschedule themselves
// (the music sequencer, the feedback delay) take a Scheduler instead of
// touching the platform timer directly.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

// RealScheduler runs callbacks on their own goroutine via time.AfterFunc.
type RealScheduler struct{}

// AfterFunc implements Scheduler.
func (RealScheduler) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// ManualScheduler is a virtual clock. Nothing fires until Advance is called;
// callbacks then run synchronously on the caller's goroutine in due order.
type ManualScheduler struct {
	mu     sync.Mutex
	now    time.Duration
	seq    int
	timers []*manualTimer
}

type manualTimer struct {
	s       *ManualScheduler
	due     time.Duration
	seq     int
	f       func()
	stopped bool
	fired   bool
}

// NewManualScheduler returns a ManualScheduler at time zero.
func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{}
}

// AfterFunc implements Scheduler.
func (s *ManualScheduler) AfterFunc(d time.Duration, f func()) Timer {
	s.mu.Lock()
	defer s.mu.Unlock()
	if d < 0 {
		d = 0
	}
	s.seq++
	t := &manualTimer{s: s, due: s.now + d, seq: s.seq, f: f}
	s.timers = append(s.timers, t)
	return t
}

// Now returns the virtual time.
func (s *ManualScheduler) Now() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.now
}

// Pending returns the number of armed, unfired timers.
func (s *ManualScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, t := range s.timers {
		if !t.stopped && !t.fired {
			n++
		}
	}
	return n
}

// Advance moves the clock forward by d, running every callback that comes
// due, including ones armed by callbacks during the advance.
func (s *ManualScheduler) Advance(d time.Duration) {
	s.mu.Lock()
	end := s.now + d
	s.mu.Unlock()
	for {
		t := s.next(end)
		if t == nil {
			break
		}
		t.f()
	}
	s.mu.Lock()
	s.now = end
	s.mu.Unlock()
}

// next pops the earliest due timer, moving the clock to its deadline.
func (s *ManualScheduler) next(end time.Duration) *manualTimer {
	s.mu.Lock()
	defer s.mu.Unlock()
	live := s.timers[:0]
	for _, t := range s.timers {
		if !t.stopped && !t.fired {
			live = append(live, t)
		}
	}
	s.timers = live
	if len(s.timers) == 0 {
		return nil
	}
	sort.Slice(s.timers, func(i, j int) bool {
		if s.timers[i].due == s.timers[j].due {
			return s.timers[i].seq < s.timers[j].seq
		}
		return s.timers[i].due < s.timers[j].due
	})
	t := s.timers[0]
	if t.due > end {
		return nil
	}
	t.fired = true
	s.now = t.due
	return t
}

func (t *manualTimer) Stop() bool {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()
	if t.stopped || t.fired {
		return false
	}
	t.stopped = true
	return true
}
