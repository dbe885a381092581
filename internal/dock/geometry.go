package dock

// Rect is a slot's bounding box in viewport coordinates.
type Rect struct {
	Left  float64
	Top   float64
	Width float64
}

// Center returns the horizontal midpoint.
func (r Rect) Center() float64 {
	return r.Left + r.Width/2
}

// Contains reports whether x lies within the slot horizontally.
func (r Rect) Contains(x float64) bool {
	return x >= r.Left && x < r.Left+r.Width
}

// Layout measures where each item of an order is placed.
type Layout interface {
	Measure(order []ItemID) []Rect
}

// SlotLayout places items in equal-width slots starting at Left.
type SlotLayout struct {
	Left      float64
	Top       float64
	SlotWidth float64
	Gap       float64
}

// Measure implements Layout.
func (l SlotLayout) Measure(order []ItemID) []Rect {
	rects := make([]Rect, len(order))
	for i := range order {
		rects[i] = Rect{
			Left:  l.Left + float64(i)*(l.SlotWidth+l.Gap),
			Top:   l.Top,
			Width: l.SlotWidth,
		}
	}
	return rects
}

// Geometry caches the last measured rect of every slot. It does no
// computation of its own beyond Refresh.
type Geometry struct {
	rects map[ItemID]Rect
}

// NewGeometry returns an empty tracker.
func NewGeometry() *Geometry {
	return &Geometry{rects: make(map[ItemID]Rect)}
}

// Record stores or overwrites the rect for id.
func (g *Geometry) Record(id ItemID, r Rect) {
	g.rects[id] = r
}

// Lookup returns the rect recorded for id.
func (g *Geometry) Lookup(id ItemID) (Rect, bool) {
	r, ok := g.rects[id]
	return r, ok
}

// Forget drops the entry for id.
func (g *Geometry) Forget(id ItemID) {
	delete(g.rects, id)
}

// Snapshot returns a copy of every recorded rect.
func (g *Geometry) Snapshot() map[ItemID]Rect {
	out := make(map[ItemID]Rect, len(g.rects))
	for id, r := range g.rects {
		out[id] = r
	}
	return out
}

// Refresh re-measures all entries for order. Entries for ids no longer in
// the order are dropped.
func (g *Geometry) Refresh(order []ItemID, layout Layout) {
	if layout == nil {
		return
	}
	rects := layout.Measure(order)
	next := make(map[ItemID]Rect, len(order))
	for i, id := range order {
		if i < len(rects) {
			next[id] = rects[i]
		}
	}
	g.rects = next
}
