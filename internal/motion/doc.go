// Package motion animates dock slots in terminal cell space.
//
// Driver implements dock.Animator. When the engine reorders the bar it
// reports each displaced item's old and new slot; the driver keeps the
// difference as an offset that decays to zero over Options.Duration, so the
// renderer draws the item at slot + Offset(id, now). The dragged item is
// pinned to an absolute position (Pinned) until Return releases it.
//
// Transition ends are scheduled through the same dock.Scheduler the engine
// uses, which keeps tests deterministic with dock.ManualScheduler.
package motion
