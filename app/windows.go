package app

import (
	"distortion-os/config"
	"distortion-os/gallery"
	"distortion-os/log"
	"distortion-os/ui"
	"distortion-os/ui/layout"
	"distortion-os/viewer"
	"distortion-os/wm"

	tea "github.com/charmbracelet/bubbletea"
)

const (
	winOverview  = "win-overview"
	winEmployees = "win-employees"
	winArchive   = "win-archive"
	winShop      = "win-shop"
	winComm      = "win-comm"
	winViewer    = "win-viewer"
	winSelector  = "win-selector"
)

// windowSpecs declares every window. Sizes are for the normal scale on a
// roomy terminal; layout.WindowSize fits them to the screen.
var windowSpecs = []wm.Spec{
	{ID: winOverview, Title: "win_overview", DefaultSize: wm.Size{Width: 64, Height: 20}},
	{ID: winEmployees, Title: "win_employees", DefaultSize: wm.Size{Width: 84, Height: 18}},
	{ID: winArchive, Title: "win_archive", DefaultSize: wm.Size{Width: 70, Height: 22}},
	{ID: winShop, Title: "win_shop", DefaultSize: wm.Size{Width: 52, Height: 14}},
	{ID: winComm, Title: "win_comm", DefaultSize: wm.Size{Width: 56, Height: 16}},
	{ID: winViewer, Title: "win_viewer", DefaultSize: wm.Size{Width: 52, Height: 26}},
	{ID: winSelector, Title: "win_selector", DefaultSize: wm.Size{Width: 48, Height: 12}},
}

// desktopWindows have an icon and a number key, in this order.
var desktopWindows = []string{winOverview, winEmployees, winArchive, winShop, winComm}

// pane is the body of a window.
type pane interface {
	View(width, height int) string
}

func (m *home) pane(id string) pane {
	switch id {
	case winOverview:
		return m.overview
	case winEmployees:
		return m.employees
	case winArchive:
		return m.archive
	case winShop:
		return m.shop
	case winComm:
		return m.comm
	case winViewer:
		return m.viewerPane
	case winSelector:
		return m.selector
	}
	return nil
}

func titleOf(id string) string {
	for _, s := range windowSpecs {
		if s.ID == id {
			return s.Title
		}
	}
	return id
}

// relayout recomputes the layout after a resize or a settings change.
func (m *home) relayout() {
	m.constraints = layout.ComputeConstraints(m.width, m.height, layout.Options{
		MobileWidth: m.appConfig.MobileWidth,
		ForceMobile: m.forceMobile,
		Large:       m.appConfig.UIScale == config.ScaleLarge,
	})
	m.degradation = layout.ComputeDegradation(m.constraints)

	m.wm.SetMobileWidth(m.appConfig.MobileWidth)
	m.wm.SetMobile(m.forceMobile)
	m.wm.SetViewport(m.width, m.height)
	for _, s := range windowSpecs {
		m.wm.SetDefaultSize(s.ID, layout.WindowSize(s.DefaultSize, m.constraints))
	}
	m.menu.SetWidth(m.width / 2)
	m.boot.SetWidth(min(48, max(m.width-4, 20)))
	log.Tracef(log.TopicLayout, "layout %s %dx%d", m.constraints.Mode, m.width, m.height)
}

// syncMenu picks the key hints for what has focus.
func (m *home) syncMenu() {
	if m.screen != screenDesktop {
		m.menu.SetState(ui.StateLogin)
		return
	}
	id, ok := m.wm.Active()
	if !ok {
		m.menu.SetState(ui.StateDesktop)
		return
	}
	switch id {
	case winOverview:
		m.menu.SetState(ui.StateOverview)
	case winArchive:
		if m.archive.Searching() {
			m.menu.SetState(ui.StateSearch)
		} else {
			m.menu.SetState(ui.StateArchive)
		}
	case winSelector:
		m.menu.SetState(ui.StateSelector)
	case winViewer:
		m.menu.SetState(ui.StateViewer)
	default:
		m.menu.SetState(ui.StateWindow)
	}
}

// onWindowEvent is subscribed to the window bus.
func (m *home) onWindowEvent(e wm.Event) {
	log.InfoLog.Printf("%s %s", e.Kind, e.ID)
	if e.Kind == wm.Opened && e.ID == winArchive {
		m.archive.SetSort(gallery.SortAll)
	}
	if e.Kind == wm.Closed && e.ID == winArchive {
		m.archive.BlurSearch()
	}
}

// cycleFocus raises the bottom window of the stack.
func (m *home) cycleFocus() {
	stack := m.wm.Stack()
	if len(stack) > 1 {
		m.wm.BringToFront(stack[0].ID)
	}
}

// pixel sizes of a cell, so pointer motion over the viewer turns at the rate
// the engine expects from a pointer in pixels
const (
	cellPixelsX = 8
	cellPixelsY = 16
)

func pointerAt(p wm.Point, onButton bool) viewer.Pointer {
	return viewer.Pointer{X: float64(p.X * cellPixelsX), Y: float64(p.Y * cellPixelsY), OnButton: onButton}
}

// handleWindowPress deals with a left press on window id.
func (m *home) handleWindowPress(id string, p wm.Point) tea.Cmd {
	switch m.wm.ControlAt(id, p) {
	case wm.ControlMinimize:
		m.wm.Minimize(id)
		return nil
	case wm.ControlMaximize:
		m.wm.ToggleMaximize(id)
		return nil
	case wm.ControlClose:
		m.wm.Close(id)
		return nil
	}
	if m.wm.InHeader(id, p) {
		m.wm.BeginDrag(id, p)
		return nil
	}

	m.wm.BringToFront(id)
	r, _ := m.wm.Bounds(id)
	origin := ui.BodyOrigin(r)
	bp := wm.Point{X: p.X - origin.X, Y: p.Y - origin.Y}
	bw, bh := ui.BodySize(r.Width, r.Height)
	if bp.X < 0 || bp.Y < 0 || bp.X >= bw || bp.Y >= bh {
		// the border
		return nil
	}

	var action ui.Action
	switch id {
	case winOverview:
		action = m.overview.Click(bp, bw, bh)
	case winArchive:
		action = m.archive.Click(bp, bw, bh)
	case winShop:
		action = m.shop.Click(bp, bw, bh)
	case winSelector:
		action = m.selector.Click(bp, bw, bh)
	case winViewer:
		a, onButton := m.viewerPane.Click(bp, bw, bh)
		if onButton || m.viewerPane.OnSurface(bp, bw, bh) {
			m.engine.StartDrag(pointerAt(p, onButton))
		}
		action = a
	}
	return m.runAction(action)
}

// handleWheel scrolls or zooms whatever window is under p.
func (m *home) handleWheel(p wm.Point, up bool) {
	id, ok := m.wm.WindowAt(p)
	if !ok {
		return
	}
	delta := 1
	if up {
		delta = -1
	}
	switch id {
	case winViewer:
		m.engine.Wheel(up)
	case winArchive:
		m.archive.Scroll(delta)
	case winEmployees:
		m.employees.Scroll(delta)
	case winSelector:
		m.selector.Move(delta)
	}
}
