package state

import (
	"fmt"
	"sort"
	"sync"
	"time"
)

// Process describes one launched command.
type Process struct {
	PID     int
	Started time.Time
}

// Snapshot is the launch state visible to the UI.
type Snapshot struct {
	Running     map[string]Process
	Launches    int
	LastUpdated time.Time
	LastError   error
	// LastFailed names the item whose command produced LastError.
	LastFailed string
}

// IsRunning reports whether name has a live process.
func (s Snapshot) IsRunning(name string) bool {
	_, ok := s.Running[name]
	return ok
}

// Names returns the running item names, sorted.
func (s Snapshot) Names() []string {
	names := make([]string, 0, len(s.Running))
	for name := range s.Running {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Store coordinates concurrent updates from launcher goroutines.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

// Started records that name is running as pid.
func (s *Store) Started(name string, pid int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.snapshot.Running == nil {
		s.snapshot.Running = make(map[string]Process)
	}
	now := time.Now()
	s.snapshot.Running[name] = Process{PID: pid, Started: now}
	s.snapshot.Launches++
	s.snapshot.LastUpdated = now
}

// Exited records that name stopped. A non-nil err is kept for display.
func (s *Store) Exited(name string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.snapshot.Running, name)
	if err != nil {
		s.snapshot.LastError = err
		s.snapshot.LastFailed = name
	}
	s.snapshot.LastUpdated = time.Now()
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	snap.Running = cloneRunning(s.snapshot.Running)
	if s.snapshot.LastError != nil {
		snap.LastError = fmt.Errorf("%w", s.snapshot.LastError)
	}
	return snap
}

func cloneRunning(in map[string]Process) map[string]Process {
	if len(in) == 0 {
		return nil
	}
	dup := make(map[string]Process, len(in))
	for k, v := range in {
		dup[k] = v
	}
	return dup
}
