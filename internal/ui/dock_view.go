package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	zone "github.com/lrstanley/bubblezone"

	"github.com/five82/dockbar/internal/dock"
)

// shelfLeft is the first column of the shelf.
const shelfLeft = 2

// Footer button zone ids.
const (
	zoneHelp   = "btn-help"
	zoneLogs   = "btn-logs"
	zoneTheme  = "btn-theme"
	zoneLabels = "btn-labels"
	zoneQuit   = "btn-quit"
)

// shelfItem is an item that is not on the dock, listed above it so it can
// be dragged in.
type shelfItem struct {
	id   dock.ItemID
	rect dock.Rect
}

// shelf lists catalog items missing from the order, left to right. The item
// currently being dragged is left out.
func (m Model) shelf() []shelfItem {
	docked := make(map[dock.ItemID]bool)
	for _, id := range m.engine.Order() {
		docked[id] = true
	}
	if s, ok := m.engine.Session(); ok {
		docked[s.Dragging] = true
	}
	w := m.effectiveSlotWidth()
	var out []shelfItem
	for _, id := range m.catalog.IDs() {
		if docked[id] {
			continue
		}
		out = append(out, shelfItem{
			id: id,
			rect: dock.Rect{
				Left:  float64(shelfLeft + len(out)*w),
				Top:   shelfRow,
				Width: float64(w),
			},
		})
	}
	return out
}

// renderCanvas draws the desktop, shelf and dock. Rows 0 and the footer row
// are left blank for the header and footer strings.
func (m Model) renderCanvas() *canvas {
	styles := m.theme.Styles()
	c := newCanvas(m.screen.width, m.screen.height, styles.Desktop)
	var (
		bar     = c.style(styles.Bar)
		icon    = c.style(styles.Icon)
		pinned  = c.style(styles.Pinned)
		focus   = c.style(styles.Focus)
		dragged = c.style(styles.Dragged)
		label   = c.style(styles.Label)
		dot     = c.style(styles.Dot)
		shelf   = c.style(styles.Shelf)
		faint   = c.style(styles.FaintText.Inherit(styles.Desktop))
		slotGap = c.style(styles.FaintText.Inherit(styles.Bar))
	)

	now := m.now()
	session, dragging := m.engine.Session()

	// Shelf
	items := m.shelf()
	if len(items) > 0 {
		c.text(shelfLeft, shelfRow-1, "not in dock", faint)
	}
	for _, it := range items {
		ic := m.engine.Icon(it.id)
		x, w := cell(it.rect.Left), cell(it.rect.Width)
		c.fill(x, shelfRow, w-1, shelf)
		c.centered(x, shelfRow, w-1, ic.Image, shelf)
		c.centered(x, shelfRow+1, w-1, ic.Label, faint)
	}

	// Bar background
	order := m.engine.Order()
	left, right := m.barSpan(order)
	for y := m.screen.iconRow(); y <= m.screen.dotRow(); y++ {
		c.fill(left, y, right-left, bar)
	}

	// Slots
	for i, id := range order {
		slot, ok := m.engine.Slot(id)
		if !ok {
			continue
		}
		x, w := cell(slot.Left), cell(slot.Width)
		if dragging && id == session.Dragging {
			c.centered(x, m.screen.iconRow(), w, "·", slotGap)
			continue
		}

		ic := m.engine.Icon(id)
		var dx, dy float64
		if m.driver != nil {
			dx, dy = m.driver.Offset(id, now)
		}
		ox, oy := cell(slot.Left+dx), cell(slot.Top+dy)

		style := icon
		switch {
		case m.kbFocus && !dragging && i == m.focus:
			style = focus
			c.fill(ox, oy, w, focus)
		case i < m.engine.Anchors():
			style = pinned
		}
		c.centered(ox, oy, w, ic.Image, style)
		if m.showLabels {
			c.centered(ox, m.screen.labelRow(), w, ic.Label, label)
		}
		if ic.Running {
			c.centered(ox, m.screen.dotRow(), w, "•", dot)
		}
	}

	// Items gliding back after a drop are drawn by the slot loop; only the
	// item under the pointer is drawn here, on top of everything else.
	if dragging && m.driver != nil {
		if px, py, ok := m.driver.Pinned(session.Dragging); ok {
			w := m.effectiveSlotWidth()
			x, y := cell(px), cell(py)
			c.fill(x, y, w, dragged)
			c.centered(x, y, w, m.engine.Icon(session.Dragging).Image, dragged)
		}
	}
	return c
}

// barSpan returns the columns covered by the bar background: the slots plus
// one cell of padding either side. An empty dock keeps a small stub.
func (m Model) barSpan(order []dock.ItemID) (left, right int) {
	if len(order) == 0 {
		mid := m.screen.width / 2
		return mid - 2, mid + 2
	}
	first, _ := m.engine.Slot(order[0])
	last, _ := m.engine.Slot(order[len(order)-1])
	left = cell(first.Left) - 1
	right = cell(last.Left+last.Width) + 1
	if left < 0 {
		left = 0
	}
	if right > m.screen.width {
		right = m.screen.width
	}
	return left, right
}

// renderHeader renders the logo, the latest dock activity and the running
// count.
func (m Model) renderHeader() string {
	styles := m.theme.Styles()
	header := styles.Header.Width(m.screen.width)

	logo := styles.Logo.Render("▰ dockbar")

	snap := m.catalog.Snapshot()
	var status string
	switch {
	case snap.LastError != nil:
		status = styles.DangerText.Render(fmt.Sprintf("%s: %v", snap.LastFailed, snap.LastError))
	case m.activity.text != "":
		status = styles.MutedText.Render(m.activity.text)
	}
	if n := len(snap.Running); n > 0 {
		running := styles.SuccessText.Render(fmt.Sprintf("%d running", n))
		if status != "" {
			status += styles.FaintText.Render(" · ")
		}
		status += running
	}

	inner := m.screen.width - header.GetHorizontalFrameSize()
	gap := inner - lipgloss.Width(logo) - lipgloss.Width(status)
	if gap < 1 {
		status = ansi.Truncate(status, max(inner-lipgloss.Width(logo)-1, 0), "…")
		gap = inner - lipgloss.Width(logo) - lipgloss.Width(status)
	}
	return header.Render(logo + strings.Repeat(" ", max(gap, 0)) + status)
}

// renderFooter renders clickable buttons and a usage hint.
func (m Model) renderFooter() string {
	styles := m.theme.Styles()
	footer := styles.Footer.Width(m.screen.width)

	buttons := []struct{ id, text string }{
		{zoneHelp, "? help"},
		{zoneLogs, "L logs"},
		{zoneTheme, "T " + m.theme.Name},
		{zoneLabels, "l labels"},
		{zoneQuit, "q quit"},
	}
	parts := make([]string, len(buttons))
	for i, b := range buttons {
		parts[i] = zone.Mark(b.id, styles.Button.Render(b.text))
	}
	row := strings.Join(parts, " ")

	hint := "drag icons to reorder · drag off the bar to remove"
	if _, ok := m.engine.Session(); ok {
		hint = "release to drop · esc to cancel"
	}
	inner := m.screen.width - footer.GetHorizontalFrameSize()
	room := inner - lipgloss.Width(row) - 2
	if room > 0 {
		row += "  " + styles.FaintText.Render(ansi.Truncate(hint, room, "…"))
	}
	return footer.Render(row)
}
