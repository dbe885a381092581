package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"github.com/five82/dockbar/internal/dock"
)

// gesture tracks one press-move-release sequence. A press only becomes a
// drag once the pointer has moved DragThreshold cells; releasing before that
// is a click. A drag released over the bar before its item has landed stays
// open as releasing until the drop is safe.
type gesture struct {
	active    bool
	id        dock.ItemID
	external  bool
	startX    int
	startY    int
	lastX     int
	lastY     int
	dragging  bool
	releasing bool
}

// handleMouse processes mouse input for the dock and the footer buttons.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.showHelp || m.showLogs {
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			m.showHelp = false
			m.showLogs = false
		}
		return m, nil
	}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		if cmd, ok := m.pressButton(msg); ok {
			return m, cmd
		}
		m.beginGesture(msg.X, msg.Y)

	case tea.MouseActionMotion:
		m.moveGesture(msg.X, msg.Y)

	case tea.MouseActionRelease:
		m.endGesture(msg.X, msg.Y)
	}
	return m, m.animate()
}

// pressButton handles a click on a footer button.
func (m *Model) pressButton(msg tea.MouseMsg) (tea.Cmd, bool) {
	switch {
	case zone.Get(zoneHelp).InBounds(msg):
		m.showHelp = true
	case zone.Get(zoneLogs).InBounds(msg):
		return m.openLogs(), true
	case zone.Get(zoneTheme).InBounds(msg):
		m.cycleTheme()
	case zone.Get(zoneLabels).InBounds(msg):
		m.toggleLabels()
	case zone.Get(zoneQuit).InBounds(msg):
		return tea.Quit, true
	default:
		return nil, false
	}
	return nil, true
}

func (m *Model) beginGesture(x, y int) {
	m.kbFocus = false
	if _, ok := m.engine.Session(); ok {
		return
	}
	if id, ok := m.slotAt(x, y); ok {
		m.gesture = gesture{active: true, id: id, startX: x, startY: y}
		return
	}
	if id, ok := m.shelfAt(x, y); ok {
		m.gesture = gesture{active: true, id: id, external: true, startX: x, startY: y}
	}
}

func (m *Model) moveGesture(x, y int) {
	g := &m.gesture
	if !g.active || g.releasing {
		return
	}
	g.lastX, g.lastY = x, y
	if !g.dragging {
		if abs(x-g.startX) < DragThreshold && abs(y-g.startY) < DragThreshold {
			return
		}
		start := pointer(g.startX, g.startY)
		var err error
		if g.external {
			err = m.engine.BeginExternalDrag(g.id, start)
		} else {
			err = m.engine.BeginDrag(g.id, start)
		}
		if _, ok := m.engine.Session(); err != nil || !ok {
			// Pinned items cannot be dragged; swallow the rest of the gesture.
			if err != nil {
				m.log.Warn("drag refused", "item", g.id, "err", err)
			}
			*g = gesture{}
			return
		}
		g.dragging = true
	}

	p := pointer(x, y)
	m.engine.UpdatePointer(p.X, p.Y)
	m.dragOverAt(x, y)
}

// dragOverAt forwards the pointer position to the engine: a dragover when it
// hovers a slot, a lift when it has left the bar.
func (m *Model) dragOverAt(x, y int) {
	s, ok := m.engine.Session()
	if !ok {
		return
	}
	if !m.screen.inBar(y) {
		if !s.Limbo {
			m.report(m.engine.Lift())
		}
		return
	}
	cursor := pointer(x, y).X
	if target, ok := m.slotAtX(cursor); ok {
		m.report(m.engine.DragOver(target, cursor))
	}
}

func (m *Model) endGesture(x, y int) {
	g := &m.gesture
	if !g.active || g.releasing {
		return
	}
	if !g.dragging {
		id, external := g.id, g.external
		*g = gesture{}
		if !external {
			m.report(m.engine.Click(id))
		}
		return
	}
	g.lastX, g.lastY = x, y
	g.releasing = true
	p := pointer(x, y)
	m.engine.UpdatePointer(p.X, p.Y)
	m.settleRelease()
}

// followPointer replays the last pointer position after a timer has fired.
// Terminals only report motion, so a slot that was still sliding when the
// pointer reached it would otherwise never see a dragover.
func (m *Model) followPointer() {
	g := m.gesture
	if !g.active || !g.dragging {
		return
	}
	if _, ok := m.engine.Session(); !ok {
		m.gesture = gesture{}
		return
	}
	if g.releasing {
		m.settleRelease()
		return
	}
	m.dragOverAt(g.lastX, g.lastY)
}

// settleRelease drops a released drag once that cannot discard an item the
// pointer was released over. Off the bar, or over no slot, the drop happens
// at once and takes the item off the dock. Over a slot it waits while a
// lift is still queued or the slot is sliding, replaying the dragover until
// the item lands; a slot that refuses the item after settling ends the drag
// as well.
func (m *Model) settleRelease() {
	g := &m.gesture
	if _, ok := m.engine.Session(); !ok {
		*g = gesture{}
		return
	}
	m.dragOverAt(g.lastX, g.lastY)

	drop := !m.screen.inBar(g.lastY) || m.engine.Placed()
	if !drop {
		target, ok := m.slotAtX(pointer(g.lastX, g.lastY).X)
		drop = !ok || (!m.engine.Busy() && m.interactive(target))
	}
	if drop {
		*g = gesture{}
		m.report(m.engine.Drop())
	}
}

func (m Model) interactive(id dock.ItemID) bool {
	return m.driver == nil || m.driver.Interactive(id)
}

// slotAt returns the docked item under a press. The whole bar height below
// the jump headroom counts.
func (m Model) slotAt(x, y int) (dock.ItemID, bool) {
	if y < m.screen.iconRow() || y > m.screen.dotRow() {
		return "", false
	}
	return m.slotAtX(pointer(x, y).X)
}

// slotAtX returns the docked item whose slot spans cursor.
func (m Model) slotAtX(cursor float64) (dock.ItemID, bool) {
	for _, id := range m.engine.Order() {
		if r, ok := m.engine.Slot(id); ok && r.Contains(cursor) {
			return id, true
		}
	}
	return "", false
}

// shelfAt returns the shelf item under a press: its icon or its label.
func (m Model) shelfAt(x, y int) (dock.ItemID, bool) {
	if y != shelfRow && y != shelfRow+1 {
		return "", false
	}
	cursor := pointer(x, y).X
	for _, it := range m.shelf() {
		if it.rect.Contains(cursor) {
			return it.id, true
		}
	}
	return "", false
}

// report logs engine errors, which only occur in strict mode.
func (m Model) report(err error) {
	if err != nil {
		m.log.Error("dock operation failed", "err", err)
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
