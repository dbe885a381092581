package ui

import (
	"math"
	"time"

	"github.com/five82/dockbar/internal/dock"
)

// Screen geometry. Rows are counted from the bottom of the terminal.
const (
	// MinWidth and MinHeight are the smallest terminal the dock renders in.
	MinWidth  = 20
	MinHeight = 8

	// dockRows is the bar itself: jump headroom, icons, labels, running dots.
	dockRows = 4

	// shelfRow is where items that are not on the dock are listed.
	shelfRow = 2

	// DragThreshold is how far, in cells, the pointer must travel after a
	// press before it counts as a drag instead of a click.
	DragThreshold = 1
)

// Log overlay limits.
const (
	// LogTailLines is how many log lines the overlay reads.
	LogTailLines = 500
)

// Timing constants.
const (
	// FrameInterval paces redraws while slots are moving.
	FrameInterval = time.Second / 30

	// LogRefreshInterval is how often the open log overlay rereads the file.
	LogRefreshInterval = time.Second
)

// screen maps the terminal size onto dock rows.
type screen struct {
	width, height int
}

func (s screen) footerRow() int { return s.height - 1 }
func (s screen) dotRow() int    { return s.height - 2 }
func (s screen) labelRow() int  { return s.height - 3 }
func (s screen) iconRow() int   { return s.height - 4 }
func (s screen) jumpRow() int   { return s.height - 5 }

// inBar reports whether row y belongs to the dock bar.
func (s screen) inBar(y int) bool {
	return y >= s.jumpRow() && y <= s.dotRow()
}

func (s screen) fits() bool {
	return s.width >= MinWidth && s.height >= MinHeight
}

// dockLayout centers equal slots in the terminal's icon row.
type dockLayout struct {
	Width     int
	SlotWidth int
	Top       int
}

// Measure implements dock.Layout.
func (l dockLayout) Measure(order []dock.ItemID) []dock.Rect {
	total := len(order) * l.SlotWidth
	left := (l.Width - total) / 2
	if left < 0 {
		left = 0
	}
	return dock.SlotLayout{
		Left:      float64(left),
		Top:       float64(l.Top),
		SlotWidth: float64(l.SlotWidth),
	}.Measure(order)
}

// cell rounds a float coordinate to the nearest terminal cell.
func cell(v float64) int {
	return int(math.Round(v))
}

// pointer converts a cell position to engine coordinates: the middle of the
// cell horizontally, so midpoint checks treat both halves of a slot alike.
func pointer(x, y int) dock.Pointer {
	return dock.Pointer{X: float64(x) + 0.5, Y: float64(y)}
}
