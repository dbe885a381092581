package motion

import (
	"math"
	"sync"
	"time"

	"github.com/five82/dockbar/internal/dock"
)

const (
	// DefaultDuration matches the dock's debounce window so a slot has
	// settled before the next intent is applied.
	DefaultDuration = 250 * time.Millisecond
	// DefaultJumpDuration is how long a launched icon bounces.
	DefaultJumpDuration = 325 * time.Millisecond
	// DefaultJumpHeight is the bounce height in rows.
	DefaultJumpHeight = 1.0
)

// Options configure a Driver. Zero values pick the defaults.
type Options struct {
	Duration     time.Duration
	JumpDuration time.Duration
	JumpHeight   float64
	Easing       EasingFunc
	Scheduler    dock.Scheduler
	Now          func() time.Time
}

// transition decays an offset from (dx, dy) to zero.
type transition struct {
	dx, dy   float64
	start    time.Time
	duration time.Duration
	easing   EasingFunc
	done     dock.Timer
}

func (t *transition) offset(now time.Time) (float64, float64) {
	if t.duration <= 0 {
		return 0, 0
	}
	p := clamp01(float64(now.Sub(t.start)) / float64(t.duration))
	remain := 1 - t.easing(p)
	return t.dx * remain, t.dy * remain
}

func (t *transition) running(now time.Time) bool {
	return now.Sub(t.start) < t.duration
}

type point struct{ x, y float64 }

// Driver implements dock.Animator. Shifted slots carry an offset that
// shrinks to zero; while it does, the slot is not interactive. The dragged
// item is pinned to an absolute position instead.
type Driver struct {
	opts Options

	mu     sync.Mutex
	shifts map[dock.ItemID]*transition
	jumps  map[dock.ItemID]*transition
	pinned map[dock.ItemID]point
}

// New builds a Driver.
func New(opts Options) *Driver {
	if opts.Duration <= 0 {
		opts.Duration = DefaultDuration
	}
	if opts.JumpDuration <= 0 {
		opts.JumpDuration = DefaultJumpDuration
	}
	if opts.JumpHeight <= 0 {
		opts.JumpHeight = DefaultJumpHeight
	}
	if opts.Easing == nil {
		opts.Easing = EaseLinear
	}
	if opts.Scheduler == nil {
		opts.Scheduler = dock.RealScheduler{}
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Driver{
		opts:   opts,
		shifts: make(map[dock.ItemID]*transition),
		jumps:  make(map[dock.ItemID]*transition),
		pinned: make(map[dock.ItemID]point),
	}
}

// Shift implements dock.Animator. A slot already in motion starts from
// where it is currently drawn.
func (d *Driver) Shift(id dock.ItemID, from, to dock.Rect) {
	d.mu.Lock()
	defer d.mu.Unlock()
	now := d.opts.Now()
	dx, dy := from.Left-to.Left, from.Top-to.Top
	if prev := d.shifts[id]; prev != nil {
		px, py := prev.offset(now)
		dx, dy = dx+px, dy+py
		prev.done.Stop()
	}
	d.startShift(id, dx, dy, now)
}

// Track implements dock.Animator.
func (d *Driver) Track(id dock.ItemID, x, y float64) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.pinned[id] = point{x, y}
}

// Return implements dock.Animator. The glyph is released from the pointer
// and glides from x, y into slot.
func (d *Driver) Return(id dock.ItemID, x, y float64, slot dock.Rect) {
	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.pinned, id)
	if prev := d.shifts[id]; prev != nil {
		prev.done.Stop()
	}
	d.startShift(id, x-slot.Left, y-slot.Top, d.opts.Now())
}

func (d *Driver) startShift(id dock.ItemID, dx, dy float64, now time.Time) {
	if dx == 0 && dy == 0 {
		delete(d.shifts, id)
		return
	}
	t := &transition{dx: dx, dy: dy, start: now, duration: d.opts.Duration, easing: d.opts.Easing}
	t.done = d.opts.Scheduler.AfterFunc(d.opts.Duration, func() { d.settle(d.shifts, id, t) })
	d.shifts[id] = t
}

// Jump bounces id up and back down, as when it is launched.
func (d *Driver) Jump(id dock.ItemID) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if prev := d.jumps[id]; prev != nil {
		prev.done.Stop()
	}
	t := &transition{start: d.opts.Now(), duration: d.opts.JumpDuration, easing: EaseOutQuad}
	t.done = d.opts.Scheduler.AfterFunc(d.opts.JumpDuration, func() { d.settle(d.jumps, id, t) })
	d.jumps[id] = t
}

func (d *Driver) settle(set map[dock.ItemID]*transition, id dock.ItemID, t *transition) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if set[id] == t {
		delete(set, id)
	}
}

// Interactive implements dock.Animator.
func (d *Driver) Interactive(id dock.ItemID) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	_, moving := d.shifts[id]
	return !moving
}

// Forget implements dock.Animator.
func (d *Driver) Forget(id dock.ItemID) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if t := d.shifts[id]; t != nil {
		t.done.Stop()
	}
	if t := d.jumps[id]; t != nil {
		t.done.Stop()
	}
	delete(d.shifts, id)
	delete(d.jumps, id)
	delete(d.pinned, id)
}

// Pinned returns the absolute position of a dragged item.
func (d *Driver) Pinned(id dock.ItemID) (x, y float64, ok bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	p, ok := d.pinned[id]
	return p.x, p.y, ok
}

// Offset returns how far id is drawn from its slot at now.
func (d *Driver) Offset(id dock.ItemID, now time.Time) (dx, dy float64) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if t := d.shifts[id]; t != nil {
		dx, dy = t.offset(now)
	}
	if t := d.jumps[id]; t != nil && t.running(now) {
		p := clamp01(float64(now.Sub(t.start)) / float64(t.duration))
		// Up during the first half, back down during the second.
		dy -= d.opts.JumpHeight * t.easing(1-math.Abs(2*p-1))
	}
	return dx, dy
}

// Active reports whether anything is still moving at now, meaning the
// renderer should keep requesting frames.
func (d *Driver) Active(now time.Time) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, t := range d.shifts {
		if t.running(now) {
			return true
		}
	}
	for _, t := range d.jumps {
		if t.running(now) {
			return true
		}
	}
	return false
}
