package state

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestStore_StartedAndSnapshotClone(t *testing.T) {
	var s Store

	before := time.Now()
	s.Started("browser", 123)
	s.Started("notes", 0)

	snap := s.Snapshot()
	if !snap.IsRunning("browser") || snap.Running["browser"].PID != 123 {
		t.Fatalf("snapshot running = %#v, want browser pid=123", snap.Running)
	}
	if snap.Launches != 2 {
		t.Fatalf("Launches = %d, want 2", snap.Launches)
	}
	if snap.LastUpdated.Before(before) {
		t.Fatalf("LastUpdated = %v, want >= %v", snap.LastUpdated, before)
	}
	if diff := cmp.Diff([]string{"browser", "notes"}, snap.Names()); diff != "" {
		t.Fatalf("Names mismatch (-want +got):\n%s", diff)
	}

	// Returned snapshot should be independent of the stored one.
	delete(snap.Running, "browser")
	if !s.Snapshot().IsRunning("browser") {
		t.Fatalf("Snapshot should clone the running map")
	}
}

func TestStore_ExitedRecordsError(t *testing.T) {
	var s Store
	s.Started("terminal", 42)
	s.Exited("terminal", nil)

	snap := s.Snapshot()
	if snap.IsRunning("terminal") {
		t.Fatalf("terminal still running after Exited")
	}
	if snap.LastError != nil {
		t.Fatalf("LastError = %v, want nil", snap.LastError)
	}

	origErr := errors.New("exit status 1")
	s.Started("terminal", 43)
	s.Exited("terminal", origErr)
	snap = s.Snapshot()
	if snap.LastError == nil || snap.LastError.Error() != "exit status 1" || snap.LastFailed != "terminal" {
		t.Fatalf("LastError = %v (%q), want exit status 1 (terminal)", snap.LastError, snap.LastFailed)
	}
	if reflect.ValueOf(snap.LastError).Pointer() == reflect.ValueOf(origErr).Pointer() {
		t.Fatalf("Snapshot should clone error instance")
	}
}

func TestStore_ZeroValue(t *testing.T) {
	var s Store
	snap := s.Snapshot()
	if snap.IsRunning("anything") || len(snap.Names()) != 0 {
		t.Fatalf("zero Store reports running items: %#v", snap.Running)
	}
	s.Exited("never-started", nil)
}
