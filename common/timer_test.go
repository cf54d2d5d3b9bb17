package common

import (
	"testing"
	"time"
)

func TestManualScheduler_FiresInOrder(t *testing.T) {
	s := NewManualScheduler()
	var got []int
	s.AfterFunc(30*time.Millisecond, func() { got = append(got, 3) })
	s.AfterFunc(10*time.Millisecond, func() { got = append(got, 1) })
	s.AfterFunc(20*time.Millisecond, func() { got = append(got, 2) })

	s.Advance(15 * time.Millisecond)
	if len(got) != 1 || got[0] != 1 {
		t.Fatalf("Expected [1] after 15ms, got %v", got)
	}
	s.Advance(20 * time.Millisecond)
	if len(got) != 3 || got[1] != 2 || got[2] != 3 {
		t.Fatalf("Expected [1 2 3], got %v", got)
	}
}

func TestManualScheduler_StopPreventsFire(t *testing.T) {
	s := NewManualScheduler()
	fired := false
	tm := s.AfterFunc(time.Millisecond, func() { fired = true })
	if !tm.Stop() {
		t.Error("Expected first Stop to report true")
	}
	if tm.Stop() {
		t.Error("Expected second Stop to report false")
	}
	s.Advance(time.Second)
	if fired {
		t.Error("Expected stopped timer not to fire")
	}
	if s.Pending() != 0 {
		t.Errorf("Expected 0 pending timers, got %d", s.Pending())
	}
}

func TestManualScheduler_RearmDuringAdvance(t *testing.T) {
	s := NewManualScheduler()
	count := 0
	var tick func()
	tick = func() {
		count++
		s.AfterFunc(100*time.Millisecond, tick)
	}
	s.AfterFunc(100*time.Millisecond, tick)
	s.Advance(1050 * time.Millisecond)
	if count != 10 {
		t.Errorf("Expected 10 ticks, got %d", count)
	}
	if s.Now() != 1050*time.Millisecond {
		t.Errorf("Expected clock at 1.05s, got %v", s.Now())
	}
}

func TestRealScheduler_Stop(t *testing.T) {
	fired := make(chan struct{}, 1)
	tm := RealScheduler{}.AfterFunc(time.Hour, func() { fired <- struct{}{} })
	if !tm.Stop() {
		t.Error("Expected Stop to cancel a pending timer")
	}
	select {
	case <-fired:
		t.Error("Expected no callback")
	default:
	}
}
