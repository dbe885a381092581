package ui

import (
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/dockbar/internal/dock"
)

// timerMsg carries a due callback back into the Update loop.
type timerMsg struct {
	id uint64
}

// Scheduler implements dock.Scheduler for a Bubble Tea program. Timers fire
// on their own goroutine, but the callback only runs when Update receives the
// resulting timerMsg, so the engine is never touched concurrently.
type Scheduler struct {
	mu        sync.Mutex
	send      func(tea.Msg)
	next      uint64
	callbacks map[uint64]func()
}

// NewScheduler returns a scheduler that is not attached to a program yet.
func NewScheduler() *Scheduler {
	return &Scheduler{callbacks: make(map[uint64]func())}
}

// Attach sets where due timers are delivered, usually tea.Program.Send.
func (s *Scheduler) Attach(send func(tea.Msg)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.send = send
}

// AfterFunc implements dock.Scheduler.
func (s *Scheduler) AfterFunc(d time.Duration, f func()) dock.Timer {
	s.mu.Lock()
	s.next++
	id := s.next
	s.callbacks[id] = f
	s.mu.Unlock()

	t := &uiTimer{s: s, id: id}
	t.timer = time.AfterFunc(d, func() { s.deliver(id) })
	return t
}

func (s *Scheduler) deliver(id uint64) {
	s.mu.Lock()
	send := s.send
	_, live := s.callbacks[id]
	s.mu.Unlock()
	if live && send != nil {
		send(timerMsg{id: id})
	}
}

// fire runs the callback for id. It reports false if the timer was stopped
// in the meantime.
func (s *Scheduler) fire(id uint64) bool {
	s.mu.Lock()
	f, ok := s.callbacks[id]
	delete(s.callbacks, id)
	s.mu.Unlock()
	if !ok {
		return false
	}
	f()
	return true
}

// Pending returns how many timers have neither fired nor been stopped.
func (s *Scheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.callbacks)
}

type uiTimer struct {
	s     *Scheduler
	id    uint64
	timer *time.Timer
}

// Stop implements dock.Timer. A timerMsg already in flight is discarded
// when it reaches Update.
func (t *uiTimer) Stop() bool {
	t.timer.Stop()
	t.s.mu.Lock()
	defer t.s.mu.Unlock()
	if _, ok := t.s.callbacks[t.id]; !ok {
		return false
	}
	delete(t.s.callbacks, t.id)
	return true
}
