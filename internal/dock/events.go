package dock

import "errors"

var (
	// ErrUnknownItem is returned in strict mode for ids missing from the dock.
	ErrUnknownItem = errors.New("dock: unknown item")
	// ErrDragActive is returned when a drag starts while another is active.
	ErrDragActive = errors.New("dock: drag already active")
	// ErrNoSession is returned in strict mode for drag operations without a drag.
	ErrNoSession = errors.New("dock: no active drag")
)

// EventKind classifies engine notifications.
type EventKind int

const (
	EventOrderChanged EventKind = iota + 1
	EventDragStarted
	EventDragEnded
	EventRemoved
	EventLaunched
)

func (k EventKind) String() string {
	switch k {
	case EventOrderChanged:
		return "order-changed"
	case EventDragStarted:
		return "drag-started"
	case EventDragEnded:
		return "drag-ended"
	case EventRemoved:
		return "removed"
	case EventLaunched:
		return "launched"
	default:
		return "unknown"
	}
}

// Event describes a change listeners may react to.
type Event struct {
	Kind EventKind
	Item ItemID
	// Intent is set for order changes caused by a queued intent.
	Intent Intent
	// Order is a copy of the order after the change.
	Order []ItemID
	// Cancelled is set on EventDragEnded when the drag was abandoned.
	Cancelled bool
	// Running is set on EventLaunched when the item was already running.
	Running bool
}

// Icon is what the shell reports about an item for rendering.
type Icon struct {
	Image   string
	Label   string
	Running bool
}

// Shell is the surrounding desktop the dock queries and launches through.
type Shell interface {
	ResolveIcon(id ItemID) Icon
	Launch(id ItemID)
}

// Animator turns geometry changes into visual transitions.
type Animator interface {
	// Shift animates id from its previous slot to its new one.
	Shift(id ItemID, from, to Rect)
	// Track pins the dragged item's glyph at x, y with no transition.
	Track(id ItemID, x, y float64)
	// Return animates the dragged item from x, y back into slot.
	Return(id ItemID, x, y float64, slot Rect)
	// Interactive reports whether id currently accepts pointer events.
	Interactive(id ItemID) bool
	// Forget drops any state held for id.
	Forget(id ItemID)
}

type nopAnimator struct{}

func (nopAnimator) Shift(ItemID, Rect, Rect) {}
func (nopAnimator) Track(ItemID, float64, float64) {}
func (nopAnimator) Return(ItemID, float64, float64, Rect) {}
func (nopAnimator) Interactive(ItemID) bool { return true }
func (nopAnimator) Forget(ItemID) {}

type nopShell struct{}

func (nopShell) ResolveIcon(id ItemID) Icon { return Icon{Label: string(id)} }
func (nopShell) Launch(ItemID) {}
