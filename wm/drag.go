package wm

import "distortion-os/log"

type dragState struct {
	id string
	// offset is the pointer position relative to the window origin at press time.
	offset Point
}

// BeginDrag starts moving window id with the pointer at p. The window is
// raised either way; it only starts moving if it is not maximized and the
// layout is not mobile. A centered window is resolved to concrete
// coordinates first.
func (m *Manager) BeginDrag(id string, p Point) bool {
	w, ok := m.windows[id]
	if !ok {
		return false
	}
	m.bringToFront(w)
	if m.Mobile() || w.Maximized {
		return false
	}
	b := m.bounds(w)
	w.Position = &Point{X: b.X, Y: b.Y}
	m.drag = &dragState{id: id, offset: Point{X: p.X - b.X, Y: p.Y - b.Y}}
	log.Tracef(log.TopicInput, "drag start %s at %d,%d", id, p.X, p.Y)
	return true
}

// DragTo moves the dragged window so the pointer keeps its offset from the
// window origin. The result is clamped so the header stays reachable.
func (m *Manager) DragTo(p Point) {
	if m.drag == nil {
		return
	}
	w := m.windows[m.drag.id]
	b := m.bounds(w)
	vw, vh := m.viewport.Width, m.viewport.Height

	x := p.X - m.drag.offset.X
	y := p.Y - m.drag.offset.Y
	if minX := -b.Width + m.metrics.MinVisibleWidth; x < minX {
		x = minX
	}
	if maxX := vw - m.metrics.MinVisibleWidth; x > maxX {
		x = maxX
	}
	if y < 0 {
		y = 0
	}
	if maxY := vh - m.metrics.HeaderHeight; y > maxY {
		y = maxY
	}
	w.Position = &Point{X: x, Y: y}
}

// EndDrag stops the current drag.
func (m *Manager) EndDrag() {
	m.drag = nil
}

// Dragging returns the id of the window being dragged.
func (m *Manager) Dragging() (string, bool) {
	if m.drag == nil {
		return "", false
	}
	return m.drag.id, true
}

// BeginRecovery starts a recovery drag with the pointer at p.
func (m *Manager) BeginRecovery(p Point) {
	m.recovery = &p
	log.Tracef(log.TopicInput, "recovery start at %d,%d", p.X, p.Y)
}

// RecoverTo moves every displayed window by the pointer motion since the last
// call. Positions are not clamped. Maximized windows stay pinned, and the
// mobile layout has nothing to move.
func (m *Manager) RecoverTo(p Point) {
	if m.recovery == nil {
		return
	}
	dx, dy := p.X-m.recovery.X, p.Y-m.recovery.Y
	m.recovery = &p
	if m.Mobile() || (dx == 0 && dy == 0) {
		return
	}
	for _, id := range m.order {
		w := m.windows[id]
		if !w.Displayed() || w.Maximized {
			continue
		}
		b := m.bounds(w)
		w.Position = &Point{X: b.X + dx, Y: b.Y + dy}
	}
}

// EndRecovery stops the recovery drag.
func (m *Manager) EndRecovery() {
	m.recovery = nil
}

// Recovering reports whether a recovery drag is in progress.
func (m *Manager) Recovering() bool {
	return m.recovery != nil
}
