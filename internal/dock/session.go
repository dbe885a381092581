package dock

// Pointer is a pointer position in viewport coordinates.
type Pointer struct {
	X float64
	Y float64
}

// Session is the state of the one active drag gesture.
type Session struct {
	Dragging ItemID
	// Origin is the slot index the drag started from, -1 for items dragged
	// in from outside the dock.
	Origin   int
	OffsetX  float64
	OffsetY  float64
	PointerX float64
	PointerY float64
	// Limbo is set while the item is out of the order.
	Limbo bool
	// Dropping is set once a Drop intent is queued; later dragovers are ignored.
	Dropping bool
}

// External reports whether the drag started outside the dock.
func (s *Session) External() bool {
	return s.Origin < 0
}

// Projection returns where the dragged glyph's origin sits: the pointer
// minus the grab offset.
func (s *Session) Projection() (x, y float64) {
	return s.PointerX - s.OffsetX, s.PointerY - s.OffsetY
}
