package dock

import "fmt"

// IntentKind enumerates the structural changes the queue can carry.
type IntentKind int

const (
	ShiftLeft IntentKind = iota + 1
	ShiftRight
	InsertLeft
	InsertRight
	Remove
	Drop
)

// String returns a short name for logs.
func (k IntentKind) String() string {
	switch k {
	case ShiftLeft:
		return "shift-left"
	case ShiftRight:
		return "shift-right"
	case InsertLeft:
		return "insert-left"
	case InsertRight:
		return "insert-right"
	case Remove:
		return "remove"
	case Drop:
		return "drop"
	default:
		return "unknown"
	}
}

// Intent is one queued change to the order. Target is the hovered item for
// shifts and inserts, the lifted item for Remove, and empty for Drop.
// Intents are comparable so they double as de-dup keys.
type Intent struct {
	Kind   IntentKind
	Target ItemID
}

func (i Intent) String() string {
	if i.Target == "" {
		return i.Kind.String()
	}
	return fmt.Sprintf("%s(%s)", i.Kind, i.Target)
}

// Classify turns a dragover of target into an intent. rect is the target's
// slot, cursorX the pointer position and anchors the number of pinned
// leading slots. Pinned slots never shift. The leftmost slot is never an
// insert-left target, pinned or not. Left-neighbor rules are checked before
// right-neighbor ones; at an exact midpoint the cursor counts as the right half.
func Classify(order *Order, s *Session, target ItemID, rect Rect, cursorX float64, anchors int) (Intent, bool) {
	if s == nil || target == s.Dragging {
		return Intent{}, false
	}
	targetIdx := order.Index(target)
	if targetIdx < 0 {
		return Intent{}, false
	}
	leftHalf := cursorX < rect.Center()
	pinned := targetIdx < anchors
	leftmost := targetIdx == 0

	if s.Limbo {
		switch {
		case leftHalf && !leftmost && !pinned:
			return Intent{Kind: InsertLeft, Target: target}, true
		case !leftHalf:
			return Intent{Kind: InsertRight, Target: target}, true
		}
		return Intent{}, false
	}

	dragIdx := order.Index(s.Dragging)
	if dragIdx < 0 || pinned {
		return Intent{}, false
	}
	switch {
	case targetIdx == dragIdx+1 && leftHalf:
		return Intent{Kind: ShiftLeft, Target: target}, true
	case targetIdx == dragIdx-1 && !leftHalf:
		return Intent{Kind: ShiftRight, Target: target}, true
	}
	return Intent{}, false
}
