package dock

import (
	"testing"
	"time"
)

func TestManualScheduler_FiresInDeadlineOrder(t *testing.T) {
	var s ManualScheduler
	var got []string
	s.AfterFunc(30*time.Millisecond, func() { got = append(got, "late") })
	s.AfterFunc(10*time.Millisecond, func() { got = append(got, "early") })
	s.AfterFunc(10*time.Millisecond, func() { got = append(got, "early-second") })

	s.Advance(20 * time.Millisecond)
	if len(got) != 2 || got[0] != "early" || got[1] != "early-second" {
		t.Fatalf("fired %v, want [early early-second]", got)
	}
	if s.Pending() != 1 {
		t.Fatalf("Pending = %d, want 1", s.Pending())
	}
	s.Advance(10 * time.Millisecond)
	if len(got) != 3 || got[2] != "late" {
		t.Fatalf("fired %v, want late last", got)
	}
	if s.Now() != 30*time.Millisecond {
		t.Fatalf("Now = %v, want 30ms", s.Now())
	}
}

func TestManualScheduler_StopAndChaining(t *testing.T) {
	var s ManualScheduler
	fired := 0
	timer := s.AfterFunc(5*time.Millisecond, func() { fired++ })
	if !timer.Stop() {
		t.Fatalf("Stop = false, want true")
	}
	if timer.Stop() {
		t.Fatalf("second Stop = true, want false")
	}

	// A callback scheduling another one inside the advanced span fires both.
	s.AfterFunc(5*time.Millisecond, func() {
		s.AfterFunc(5*time.Millisecond, func() { fired += 10 })
	})
	s.Advance(20 * time.Millisecond)
	if fired != 10 {
		t.Fatalf("fired = %d, want 10", fired)
	}
}
