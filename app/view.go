package app

import (
	"strconv"

	"distortion-os/inspect"
	"distortion-os/log"
	"distortion-os/ui"
	"distortion-os/ui/layout"
	"distortion-os/ui/overlay"
	"distortion-os/wm"

	"github.com/charmbracelet/lipgloss"
)

// wallpaper is the empty desktop filling the terminal.
func (m *home) wallpaper() string {
	return lipgloss.Place(m.width, m.height, lipgloss.Left, lipgloss.Top, "",
		lipgloss.WithWhitespaceBackground(ui.Desktop))
}

func (m *home) topBar() ui.Rendered {
	return ui.RenderTopBar(ui.TopBar{
		Brand:   m.tr.T("brand"),
		Lang:    m.tr.T("lang_name"),
		Mobile:  m.wm.Mobile(),
		Large:   m.constraints.Large,
		Latency: m.latency,
		Hash:    m.hash,
		Clock:   ui.FormatClock(m.now),
	}, m.width, m.degradation, m.tr.T)
}

func (m *home) taskbar() ui.Rendered {
	active, _ := m.wm.Active()
	var tasks []ui.Task
	for _, w := range m.wm.Windows() {
		if w.State() == wm.StateClosed {
			continue
		}
		tasks = append(tasks, ui.Task{
			ID:        w.ID,
			Title:     m.tr.T(w.Title),
			Active:    w.ID == active,
			Minimized: w.Minimized,
		})
	}
	return ui.RenderTaskbar(ui.Taskbar{
		Start:   m.tr.T("taskbar_start"),
		Desktop: m.tr.T("show_desktop"),
		Tasks:   tasks,
		Hints:   m.menu.String(),
	}, m.width, m.degradation)
}

func (m *home) icons() ui.Rendered {
	icons := make([]ui.DesktopIcon, 0, len(desktopWindows))
	for _, id := range desktopWindows {
		icons = append(icons, ui.DesktopIcon{ID: id, Label: m.tr.T(titleOf(id))})
	}
	return ui.RenderIcons(icons, m.constraints.WorkHeight-1)
}

func (m *home) iconsOrigin() wm.Point {
	return wm.Point{X: 1, Y: m.constraints.WorkTop + 1}
}

// startMenuOrigin puts the start menu just above the start button.
func (m *home) startMenuOrigin(view string) wm.Point {
	return wm.Point{X: 0, Y: max(m.height-layout.TaskbarHeight-lipgloss.Height(view), 0)}
}

// renderDesktop draws the desktop back to front: icons, windows, bars,
// toasts, the assistant and the start menu.
func (m *home) renderDesktop() string {
	view := m.wallpaper()

	if m.degradation.ShouldShowIcons() {
		o := m.iconsOrigin()
		view = overlay.PlaceOverlay(o.X, o.Y, m.icons().View, view, false, false)
	}

	active, _ := m.wm.Active()
	for _, w := range m.wm.Stack() {
		r, _ := m.wm.Bounds(w.ID)
		view = overlay.PlaceOverlay(r.X, r.Y, m.renderWindow(w, r, active), view, !w.Maximized && !m.wm.Mobile(), false)
	}

	view = overlay.PlaceOverlay(0, 0, m.topBar().View, view, false, false)
	view = overlay.PlaceOverlay(0, m.height-layout.TaskbarHeight, m.taskbar().View, view, false, false)

	y := layout.TopBarHeight
	for _, t := range m.toasts {
		rendered := t.Render()
		view = overlay.PlaceOverlay(m.width-lipgloss.Width(rendered)-1, y, rendered, view, false, false)
		y += lipgloss.Height(rendered)
	}

	if m.assistant.visible {
		a, origin := m.assistantLayout()
		view = overlay.PlaceOverlay(origin.X, origin.Y, a.View, view, false, false)
	}

	if m.startMenu != nil {
		rendered := m.startMenu.Render()
		o := m.startMenuOrigin(rendered)
		view = overlay.PlaceOverlay(o.X, o.Y, rendered, view, true, false)
	}
	return view
}

// renderWindow draws w with the size of r.
func (m *home) renderWindow(w wm.Window, r wm.Rect, active string) string {
	done := log.GetProfiler().StartRender(w.ID)
	defer done()

	var body string
	if p := m.pane(w.ID); p != nil {
		bw, bh := ui.BodySize(r.Width, r.Height)
		body = p.View(bw, bh)
	}
	return ui.RenderWindow(ui.Frame{
		Title:     m.tr.T(w.Title),
		Active:    w.ID == active,
		Maximized: w.Maximized,
		Fading:    w.Fading(),
		Width:     r.Width,
		Height:    r.Height,
	}, body)
}

// snapshot describes the current state for the inspector.
func (m *home) snapshot() *inspect.Snapshot {
	active, _ := m.wm.Active()
	info := inspect.AppStateInfo{
		Screen:       m.screen.String(),
		Language:     m.tr.Language(),
		Scale:        m.appConfig.UIScale,
		ActiveWindow: active,
		Toasts:       len(m.toasts),
		Assistant:    m.bubble(),
	}
	if m.startMenu != nil {
		info.HasOverlay, info.OverlayType = true, "start_menu"
	}

	var card string
	if c, ok := m.viewerPane.Card(); ok {
		card = c.Code()
	}

	root := inspect.NewNode("desktop").WithBounds(0, 0, m.width, m.height)
	if m.screen == screenDesktop {
		m.addDesktopNodes(root, active)
	}

	return inspect.NewSnapshot().
		WithTerminal(m.width, m.height).
		WithAppState(info).
		WithWindows(m.wm).
		WithViewer(m.engine.Transform(), card).
		WithLayout(m.constraints, m.degradation).
		WithComponents(root)
}

// addDesktopNodes mirrors renderDesktop, back to front.
func (m *home) addDesktopNodes(root *inspect.Node, active string) {
	for _, w := range m.wm.Stack() {
		r, _ := m.wm.Bounds(w.ID)
		style, name := ui.WindowStyles.Body, "WindowStyles.Body"
		if w.ID == active {
			style, name = ui.WindowStyles.BodyActive, "WindowStyles.BodyActive"
		}
		root.AddChild(inspect.NewNode("window").
			WithID(w.ID).
			WithBounds(r.X, r.Y, r.Width, r.Height).
			WithState("phase", w.Phase.String()).
			WithState("z", w.Z).
			WithStyles(inspect.ExtractStyleInfo(style, name)))
	}

	root.AddChild(inspect.NewNode("top_bar").WithBounds(0, 0, m.width, layout.TopBarHeight))
	root.AddChild(inspect.NewNode("taskbar").
		WithBounds(0, m.height-layout.TaskbarHeight, m.width, layout.TaskbarHeight))

	y := layout.TopBarHeight
	for _, t := range m.toasts {
		rendered := t.Render()
		w, h := lipgloss.Width(rendered), lipgloss.Height(rendered)
		root.AddChild(inspect.NewNode("toast").
			WithID(strconv.Itoa(t.ID)).
			WithBounds(m.width-w-1, y, w, h).
			WithState("alert", t.Alert).
			WithStyles(inspect.ExtractStyleInfo(ui.ToastStyle(), "ToastStyle")))
		y += h
	}

	if m.assistant.visible {
		a, o := m.assistantLayout()
		root.AddChild(inspect.NewNode("assistant").
			WithBounds(o.X, o.Y, lipgloss.Width(a.View), lipgloss.Height(a.View)).
			WithState("bubble", m.bubble()))
	}

	if m.startMenu != nil {
		rendered := m.startMenu.Render()
		o := m.startMenuOrigin(rendered)
		root.AddChild(inspect.NewNode("start_menu").
			WithBounds(o.X, o.Y, lipgloss.Width(rendered), lipgloss.Height(rendered)))
	}
}
