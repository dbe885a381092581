package dock

import "time"

// DefaultDebounce matches the slot transition duration.
const DefaultDebounce = 250 * time.Millisecond

// ApplyFunc applies one intent against live state. It reports whether the
// intent committed a change; only committed intents hold the debounce window.
type ApplyFunc func(Intent) bool

// Queue serializes intents: one is applied at a time and the next waits
// until the previous one's debounce window has closed. An intent that is
// queued or inside its window is pending and cannot be queued again.
type Queue struct {
	sched    Scheduler
	debounce time.Duration
	apply    ApplyFunc

	fifo     []Intent
	pending  map[Intent]struct{}
	window   Timer
	gen      int
	draining bool
}

// NewQueue builds a queue that applies intents through apply.
func NewQueue(sched Scheduler, debounce time.Duration, apply ApplyFunc) *Queue {
	if debounce < 0 {
		debounce = 0
	}
	return &Queue{
		sched:    sched,
		debounce: debounce,
		apply:    apply,
		pending:  make(map[Intent]struct{}),
	}
}

// Push queues in unless it is already pending. It reports whether the
// intent was accepted. Accepted intents may be applied before Push returns.
func (q *Queue) Push(in Intent) bool {
	if _, dup := q.pending[in]; dup {
		return false
	}
	q.pending[in] = struct{}{}
	q.fifo = append(q.fifo, in)
	q.drain()
	return true
}

// IsPending reports whether in is queued or inside its debounce window.
func (q *Queue) IsPending(in Intent) bool {
	_, ok := q.pending[in]
	return ok
}

// Len returns the number of intents waiting to be applied.
func (q *Queue) Len() int {
	return len(q.fifo)
}

// Queued returns a copy of the waiting intents in FIFO order.
func (q *Queue) Queued() []Intent {
	out := make([]Intent, len(q.fifo))
	copy(out, q.fifo)
	return out
}

// Busy reports whether a debounce window is open.
func (q *Queue) Busy() bool {
	return q.window != nil
}

// Flush discards every waiting intent and closes the open window early.
func (q *Queue) Flush() {
	if q.window != nil {
		q.window.Stop()
		q.window = nil
	}
	q.gen++
	q.fifo = nil
	q.pending = make(map[Intent]struct{})
}

func (q *Queue) drain() {
	if q.draining {
		return
	}
	q.draining = true
	defer func() { q.draining = false }()

	for q.window == nil && len(q.fifo) > 0 {
		in := q.fifo[0]
		q.fifo = q.fifo[1:]
		if !q.apply(in) {
			delete(q.pending, in)
			continue
		}
		q.gen++
		gen := q.gen
		q.window = q.sched.AfterFunc(q.debounce, func() { q.close(gen, in) })
	}
}

func (q *Queue) close(gen int, in Intent) {
	if gen != q.gen {
		return
	}
	q.window = nil
	delete(q.pending, in)
	q.drain()
}
