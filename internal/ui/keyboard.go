package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/dockbar/internal/dock"
)

// keyDrag is a drag driven from the keyboard. The engine sees the same
// pickup, dragover and drop calls a mouse drag produces; the pointer is
// placed over the slot being targeted.
type keyDrag struct {
	active bool
	id     dock.ItemID
	// hover is the slot index targeted while the item is off the bar.
	hover int
	// confirm is set once the user has asked to drop; the drop waits until
	// it would not discard the item.
	confirm bool
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Any key closes help
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	if m.showLogs {
		return m.handleLogsKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.Logs):
		return m, m.openLogs()

	case key.Matches(msg, m.keys.CycleTheme):
		m.cycleTheme()
		return m, nil

	case key.Matches(msg, m.keys.Labels):
		m.toggleLabels()
		return m, nil

	case key.Matches(msg, m.keys.Cancel):
		if _, ok := m.engine.Session(); ok {
			m.report(m.engine.Cancel())
			m.gesture = gesture{}
			m.keyDrag = keyDrag{}
		}
		return m, m.animate()
	}

	if m.keyDrag.active {
		m.handleDragKey(msg)
	} else {
		m.handleDockKey(msg)
	}
	m.syncKeyDrag()
	return m, m.animate()
}

// handleDockKey moves the focus, launches and picks items up.
func (m *Model) handleDockKey(msg tea.KeyMsg) {
	if _, ok := m.engine.Session(); ok {
		// A mouse drag is in progress.
		return
	}
	order := m.engine.Order()
	if len(order) == 0 {
		return
	}
	m.focus = clampIndex(m.focus, len(order))

	switch {
	case key.Matches(msg, m.keys.Left):
		m.kbFocus = true
		m.focus = clampIndex(m.focus-1, len(order))

	case key.Matches(msg, m.keys.Right):
		m.kbFocus = true
		m.focus = clampIndex(m.focus+1, len(order))

	case key.Matches(msg, m.keys.Confirm):
		m.report(m.engine.Click(order[m.focus]))

	case key.Matches(msg, m.keys.PickUp):
		m.kbFocus = true
		id := order[m.focus]
		slot, ok := m.engine.Slot(id)
		if !ok {
			return
		}
		m.report(m.engine.BeginDrag(id, dock.Pointer{X: slot.Center(), Y: slot.Top}))
		if _, ok := m.engine.Session(); ok {
			m.keyDrag = keyDrag{active: true, id: id, hover: m.focus}
		}
	}
}

// handleDragKey steers a keyboard drag.
func (m *Model) handleDragKey(msg tea.KeyMsg) {
	s, ok := m.engine.Session()
	if !ok {
		m.keyDrag = keyDrag{}
		return
	}
	order := m.engine.Order()

	switch {
	case key.Matches(msg, m.keys.Left):
		m.stepDrag(s, order, -1)

	case key.Matches(msg, m.keys.Right):
		m.stepDrag(s, order, 1)

	case key.Matches(msg, m.keys.Lift):
		if !m.engine.Placed() {
			// Already lifted: dropping here removes it.
			m.report(m.engine.Drop())
			return
		}
		// Hover the left neighbor so confirming puts it back where it was.
		m.keyDrag.hover = max(indexOf(order, s.Dragging)-1, 0)
		m.report(m.engine.Lift())

	case key.Matches(msg, m.keys.Confirm), key.Matches(msg, m.keys.PickUp):
		m.keyDrag.confirm = true
	}
}

// confirmDrop drops the keyboard-dragged item, putting it back to the right
// of the hovered slot when it is off the bar. It waits while a lift is still
// queued or the hovered slot is sliding, since a dragover would be ignored
// and the drop would remove the item. It reports whether the drop was sent.
func (m *Model) confirmDrop() bool {
	s, ok := m.engine.Session()
	if !ok || s.Dropping {
		return true
	}
	if !s.Limbo && !m.engine.Placed() {
		return false
	}
	if order := m.engine.Order(); s.Limbo && len(order) > 0 {
		target := order[clampIndex(m.keyDrag.hover, len(order))]
		if !m.interactive(target) {
			return false
		}
		if r, ok := m.engine.Slot(target); ok {
			m.report(m.engine.DragOver(target, r.Left+r.Width*0.75))
		}
		if !m.engine.Placed() {
			return false
		}
	}
	m.report(m.engine.Drop())
	return true
}

// stepDrag moves the dragged item one slot in dir by hovering the matching
// half of its neighbor, or moves the insertion point while off the bar.
func (m *Model) stepDrag(s dock.Session, order []dock.ItemID, dir int) {
	if s.Limbo {
		m.keyDrag.hover = clampIndex(m.keyDrag.hover+dir, len(order))
		return
	}
	idx := indexOf(order, s.Dragging)
	t := idx + dir
	if idx < 0 || t < 0 || t >= len(order) {
		return
	}
	target := order[t]
	r, ok := m.engine.Slot(target)
	if !ok {
		return
	}
	// Right neighbor: left half. Left neighbor: right half.
	cursor := r.Left + r.Width*0.25
	if dir < 0 {
		cursor = r.Left + r.Width*0.75
	}
	m.report(m.engine.DragOver(target, cursor))
}

// syncKeyDrag keeps the keyboard-dragged glyph one row above its slot, or
// above the insertion point while off the bar. It also ends the keyboard
// drag once the engine has finished the session.
func (m *Model) syncKeyDrag() {
	s, ok := m.engine.Session()
	if !ok {
		if m.keyDrag.active {
			if idx := indexOf(m.engine.Order(), m.keyDrag.id); idx >= 0 {
				m.focus = idx
			}
		}
		m.keyDrag = keyDrag{}
		return
	}
	if !m.keyDrag.active {
		return
	}
	if m.keyDrag.confirm && m.confirmDrop() {
		m.keyDrag.confirm = false
		if s, ok = m.engine.Session(); !ok {
			m.syncKeyDrag()
			return
		}
	}

	order := m.engine.Order()
	if s.Limbo {
		if len(order) == 0 {
			return
		}
		m.keyDrag.hover = clampIndex(m.keyDrag.hover, len(order))
		if r, ok := m.engine.Slot(order[m.keyDrag.hover]); ok {
			// Glyph straddles the hovered slot's right edge.
			m.engine.UpdatePointer(r.Left+r.Width, r.Top-1)
		}
		return
	}
	if r, ok := m.engine.Slot(s.Dragging); ok {
		m.engine.UpdatePointer(r.Center(), r.Top-1)
		m.focus = indexOf(order, s.Dragging)
	}
}

func indexOf(order []dock.ItemID, id dock.ItemID) int {
	for i, v := range order {
		if v == id {
			return i
		}
	}
	return -1
}

func clampIndex(i, n int) int {
	if i >= n {
		i = n - 1
	}
	if i < 0 {
		i = 0
	}
	return i
}
