// Package dock implements the reordering engine behind the dock bar.
//
// # Overview
//
// The dock is a horizontal bar of fixed-size slots. The user drags one icon at
// a time; while the pointer hovers other slots the bar shifts items out of the
// way, and on drop the order settles into its new arrangement. This package
// owns that order and every rule that changes it. It never draws anything:
// renderers feed pointer events in and subscribe to events coming out.
//
// # Components
//
//	Order     ordered, duplicate-free list of ItemIDs (the List Mutator)
//	Geometry  last measured Rect per item, refreshed through a Layout
//	Session   the single active drag: dragged id, origin, pointer offset
//	Classify  turns one dragover into at most one Intent
//	Queue     FIFO + pending set; one intent applied per debounce window
//	Engine    the controller that owns all of the above
//
// # Data Flow
//
//	pointer event
//	     ↓
//	Engine.DragOver ──→ Classify ──→ Queue.Push (dropped if already pending)
//	                                     ↓
//	                          drain (one per window)
//	                                     ↓
//	                   Engine.apply: re-resolve ids, mutate Order
//	                                     ↓
//	                  Geometry.Refresh ──→ Animator.Shift per moved item
//	                                     ↓
//	                              Event listeners
//
// Intents carry ids, never indices. Each one is re-checked against the live
// order when it is applied; an intent whose target is gone or no longer
// adjacent is skipped and logged at debug level.
//
// # Intent Rules
//
// With the cursor in the left half of a slot (strictly left of its midpoint):
//
//   - right neighbor of the dragged item: ShiftLeft
//   - any slot while the dragged item is off the bar: InsertLeft, except the
//     leftmost slot
//
// With the cursor in the right half:
//
//   - left neighbor of the dragged item: ShiftRight
//   - any slot while the dragged item is off the bar: InsertRight
//
// Everything else is a dead zone. Pinned slots (the first Options.Anchors
// entries, the "home" icon by default) can neither be dragged nor shifted.
//
// # Timing
//
// All timers go through Scheduler. ManualScheduler makes tests deterministic;
// RealScheduler wraps time.AfterFunc. The TUI supplies its own scheduler that
// turns timer callbacks into Bubble Tea messages so the engine is only ever
// touched from the Update loop.
//
// # Errors
//
// Misuse such as dragging an unknown id, or a second concurrent drag, is an
// invariant violation. With Options.Strict set the engine logs it at error
// level and returns a wrapped ErrUnknownItem, ErrDragActive or ErrNoSession.
// Otherwise the violation is logged at warn level and the call is a no-op.
//
// # Concurrency
//
// Engine is not safe for concurrent use. Drive it from one goroutine.
package dock
