package dock

import (
	"fmt"
	"io"
	"log/slog"
	"time"
)

// DefaultAnchors pins the leftmost "home" slot.
const DefaultAnchors = 1

// Options configure an Engine.
type Options struct {
	// Anchors is the number of leading slots that can neither be dragged nor
	// displaced.
	Anchors   int
	Debounce  time.Duration
	Layout    Layout
	Scheduler Scheduler
	Animator  Animator
	Shell     Shell
	Logger    *slog.Logger
	// Strict makes invariant violations return errors instead of no-ops.
	Strict bool
}

// Engine owns the dock order, geometry and the active drag. It is not safe
// for concurrent use; drive it from a single event loop.
type Engine struct {
	anchors  int
	layout   Layout
	animator Animator
	shell    Shell
	log      *slog.Logger
	strict   bool

	order     *Order
	geometry  *Geometry
	session   *Session
	queue     *Queue
	listeners []func(Event)
}

// New builds an engine around the initial order.
func New(initial []ItemID, opts Options) *Engine {
	if opts.Anchors < 0 {
		opts.Anchors = 0
	}
	if opts.Debounce <= 0 {
		opts.Debounce = DefaultDebounce
	}
	if opts.Scheduler == nil {
		opts.Scheduler = RealScheduler{}
	}
	if opts.Animator == nil {
		opts.Animator = nopAnimator{}
	}
	if opts.Shell == nil {
		opts.Shell = nopShell{}
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	e := &Engine{
		anchors:  opts.Anchors,
		layout:   opts.Layout,
		animator: opts.Animator,
		shell:    opts.Shell,
		log:      opts.Logger.With("component", "dock"),
		strict:   opts.Strict,
		order:    NewOrder(initial),
		geometry: NewGeometry(),
	}
	e.queue = NewQueue(opts.Scheduler, opts.Debounce, e.apply)
	e.geometry.Refresh(e.order.IDs(), e.layout)
	return e
}

// Subscribe registers fn for every subsequent event.
func (e *Engine) Subscribe(fn func(Event)) {
	e.listeners = append(e.listeners, fn)
}

// Order returns a copy of the current order.
func (e *Engine) Order() []ItemID {
	return e.order.IDs()
}

// Anchors returns the number of pinned slots.
func (e *Engine) Anchors() int {
	return e.anchors
}

// Session returns a copy of the active drag, if any.
func (e *Engine) Session() (Session, bool) {
	if e.session == nil {
		return Session{}, false
	}
	return *e.session, true
}

// Slot returns the last measured rect for id.
func (e *Engine) Slot(id ItemID) (Rect, bool) {
	return e.geometry.Lookup(id)
}

// Icon resolves how id should be drawn.
func (e *Engine) Icon(id ItemID) Icon {
	return e.shell.ResolveIcon(id)
}

// Busy reports whether a debounce window is open or intents are waiting.
func (e *Engine) Busy() bool {
	return e.queue.Busy() || e.queue.Len() > 0
}

// SetLayout replaces the layout and re-measures without animating, as on a
// resize.
func (e *Engine) SetLayout(layout Layout) {
	e.layout = layout
	e.geometry.Refresh(e.order.IDs(), layout)
}

// Record overwrites the measured rect for id, for renderers that measure
// slots themselves.
func (e *Engine) Record(id ItemID, r Rect) error {
	if !e.order.Contains(id) {
		return e.violation(ErrUnknownItem, "record geometry", id)
	}
	e.geometry.Record(id, r)
	return nil
}

// BeginDrag starts dragging the docked item id. Pinned items are silently
// ignored.
func (e *Engine) BeginDrag(id ItemID, p Pointer) error {
	if e.session != nil {
		return e.violation(ErrDragActive, "begin drag", id)
	}
	idx := e.order.Index(id)
	if idx < 0 {
		return e.violation(ErrUnknownItem, "begin drag", id)
	}
	if idx < e.anchors {
		e.log.Debug("drag refused on pinned slot", "item", id, "index", idx)
		return nil
	}
	slot, ok := e.geometry.Lookup(id)
	if !ok {
		return e.violation(ErrUnknownItem, "begin drag geometry", id)
	}
	e.session = &Session{
		Dragging: id,
		Origin:   idx,
		OffsetX:  p.X - slot.Left,
		OffsetY:  p.Y - slot.Top,
		PointerX: p.X,
		PointerY: p.Y,
	}
	e.animator.Track(id, slot.Left, slot.Top)
	e.log.Debug("drag started", "item", id, "origin", idx)
	e.emit(Event{Kind: EventDragStarted, Item: id})
	return nil
}

// BeginExternalDrag starts dragging an item that is not in the dock yet.
// The session starts in limbo; hovering a slot inserts the item.
func (e *Engine) BeginExternalDrag(id ItemID, p Pointer) error {
	if e.session != nil {
		return e.violation(ErrDragActive, "begin external drag", id)
	}
	if e.order.Contains(id) {
		return e.BeginDrag(id, p)
	}
	e.session = &Session{
		Dragging: id,
		Origin:   -1,
		PointerX: p.X,
		PointerY: p.Y,
		Limbo:    true,
	}
	e.animator.Track(id, p.X, p.Y)
	e.log.Debug("external drag started", "item", id)
	e.emit(Event{Kind: EventDragStarted, Item: id})
	return nil
}

// Placed reports whether the dragged item will be on the bar once every
// queued intent has been applied. A Drop pushed while Placed is false
// takes the item off the dock.
func (e *Engine) Placed() bool {
	s := e.session
	if s == nil {
		return false
	}
	limbo := s.Limbo
	for _, in := range e.queue.Queued() {
		switch in.Kind {
		case Remove:
			if in.Target == s.Dragging {
				limbo = true
			}
		case InsertLeft, InsertRight:
			limbo = false
		}
	}
	return !limbo
}

// UpdatePointer moves the dragged glyph under the pointer.
func (e *Engine) UpdatePointer(x, y float64) {
	if e.session == nil {
		return
	}
	e.session.PointerX = x
	e.session.PointerY = y
	px, py := e.session.Projection()
	e.animator.Track(e.session.Dragging, px, py)
}

// DragOver handles the pointer hovering target's slot at cursorX.
func (e *Engine) DragOver(target ItemID, cursorX float64) error {
	s := e.session
	if s == nil || s.Dropping {
		return nil
	}
	if !e.animator.Interactive(target) {
		return nil
	}
	rect, ok := e.geometry.Lookup(target)
	if !ok {
		return e.violation(ErrUnknownItem, "drag over", target)
	}
	in, ok := Classify(e.order, s, target, rect, cursorX, e.anchors)
	if !ok {
		return nil
	}
	if e.queue.Push(in) {
		e.log.Debug("intent queued", "intent", in.String())
	}
	return nil
}

// Lift takes the dragged item off the bar. Its slot closes and the session
// enters limbo once the queued Remove is applied.
func (e *Engine) Lift() error {
	s := e.session
	if s == nil {
		return e.violation(ErrNoSession, "lift", "")
	}
	if s.Limbo || s.Dropping {
		return nil
	}
	in := Intent{Kind: Remove, Target: s.Dragging}
	if e.queue.Push(in) {
		e.log.Debug("intent queued", "intent", in.String())
	}
	return nil
}

// Drop ends the drag after every queued intent has been applied. An item
// still in limbo at that point leaves the dock.
func (e *Engine) Drop() error {
	s := e.session
	if s == nil {
		return e.violation(ErrNoSession, "drop", "")
	}
	if s.Dropping {
		return nil
	}
	s.Dropping = true
	e.queue.Push(Intent{Kind: Drop})
	return nil
}

// Cancel abandons the drag: queued intents are discarded and the item goes
// back to the slot it started from.
func (e *Engine) Cancel() error {
	s := e.session
	if s == nil {
		return e.violation(ErrNoSession, "cancel", "")
	}
	e.queue.Flush()
	id := s.Dragging
	e.commit(Intent{}, func() bool {
		if s.External() {
			return e.order.Remove(id)
		}
		if e.order.Index(id) == s.Origin {
			return false
		}
		e.order.Insert(s.Origin, id)
		return true
	})
	e.finish(s, true)
	return nil
}

// Click launches id. Clicks are ignored while dragging.
func (e *Engine) Click(id ItemID) error {
	if e.session != nil {
		return nil
	}
	if !e.order.Contains(id) {
		return e.violation(ErrUnknownItem, "click", id)
	}
	running := e.shell.ResolveIcon(id).Running
	e.shell.Launch(id)
	e.log.Info("launched", "item", id, "already_running", running)
	e.emit(Event{Kind: EventLaunched, Item: id, Running: running})
	return nil
}

func (e *Engine) apply(in Intent) bool {
	s := e.session
	if s == nil {
		e.log.Debug("intent skipped", "intent", in.String(), "reason", "no session")
		return false
	}

	switch in.Kind {
	case ShiftLeft, ShiftRight:
		if s.Limbo {
			return e.skip(in, "in limbo")
		}
		d, t := e.order.Index(s.Dragging), e.order.Index(in.Target)
		if d < 0 || t < 0 || t < e.anchors {
			return e.skip(in, "target unavailable")
		}
		if (in.Kind == ShiftLeft && t != d+1) || (in.Kind == ShiftRight && t != d-1) {
			return e.skip(in, "no longer adjacent")
		}
		return e.commit(in, func() bool { return e.order.Swap(d, t) })

	case InsertLeft, InsertRight:
		if !s.Limbo {
			return e.skip(in, "already placed")
		}
		if !e.order.Contains(in.Target) {
			return e.skip(in, "target unavailable")
		}
		return e.commit(in, func() bool {
			e.order.Remove(s.Dragging)
			idx := e.order.Index(in.Target)
			if in.Kind == InsertRight {
				idx++
			}
			if idx < e.anchors {
				idx = e.anchors
			}
			e.order.Insert(idx, s.Dragging)
			s.Limbo = false
			return true
		})

	case Remove:
		if s.Limbo || in.Target != s.Dragging {
			return e.skip(in, "not on the bar")
		}
		return e.commit(in, func() bool {
			if !e.order.Remove(s.Dragging) {
				return false
			}
			s.Limbo = true
			return true
		})

	case Drop:
		// A docked item dropped off the bar was already taken out of the
		// order by its Remove intent; dropping makes that final.
		removed := s.Limbo && !s.External()
		e.finish(s, false)
		if removed {
			e.animator.Forget(s.Dragging)
			e.log.Info("item removed from dock", "item", s.Dragging)
			e.emit(Event{Kind: EventRemoved, Item: s.Dragging, Order: e.order.IDs()})
		}
		return false
	}
	return e.skip(in, "unknown kind")
}

// commit runs mutate and, when it changed the order, re-measures every slot
// and animates each item that moved. The dragged item is excluded: it
// follows the pointer.
func (e *Engine) commit(in Intent, mutate func() bool) bool {
	before := e.geometry.Snapshot()
	if !mutate() {
		return false
	}
	e.geometry.Refresh(e.order.IDs(), e.layout)

	var dragging ItemID
	if e.session != nil {
		dragging = e.session.Dragging
	}
	for _, id := range e.order.IDs() {
		if id == dragging {
			continue
		}
		from, had := before[id]
		to, ok := e.geometry.Lookup(id)
		if had && ok && from != to {
			e.animator.Shift(id, from, to)
		}
	}
	if in.Kind != 0 {
		e.log.Debug("intent applied", "intent", in.String(), "order", fmt.Sprint(e.order.IDs()))
	}
	e.emit(Event{Kind: EventOrderChanged, Item: dragging, Intent: in, Order: e.order.IDs()})
	return true
}

func (e *Engine) finish(s *Session, cancelled bool) {
	e.session = nil
	if slot, ok := e.geometry.Lookup(s.Dragging); ok {
		px, py := s.Projection()
		e.animator.Return(s.Dragging, px, py, slot)
	} else {
		e.animator.Forget(s.Dragging)
	}
	e.log.Debug("drag ended", "item", s.Dragging, "cancelled", cancelled)
	e.emit(Event{Kind: EventDragEnded, Item: s.Dragging, Cancelled: cancelled, Order: e.order.IDs()})
}

func (e *Engine) skip(in Intent, reason string) bool {
	e.log.Debug("intent skipped", "intent", in.String(), "reason", reason)
	return false
}

func (e *Engine) violation(err error, op string, id ItemID) error {
	if e.strict {
		e.log.Error("dock invariant violated", "op", op, "item", id, "err", err)
		return fmt.Errorf("%s %q: %w", op, id, err)
	}
	e.log.Warn("dock invariant violated", "op", op, "item", id, "err", err)
	return nil
}

func (e *Engine) emit(ev Event) {
	for _, fn := range e.listeners {
		fn(ev)
	}
}
