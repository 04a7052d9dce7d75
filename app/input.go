package app

import (
	"distortion-os/keys"
	"distortion-os/log"
	"distortion-os/ui"
	"distortion-os/ui/layout"
	"distortion-os/viewer"
	"distortion-os/wm"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

func (m *home) handleMouse(msg tea.MouseMsg) tea.Cmd {
	p := wm.Point{X: msg.X, Y: msg.Y}
	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonRight:
			// no context menus on a secure terminal
			return m.securityAlert(codeUnauthorized)
		case tea.MouseButtonWheelUp, tea.MouseButtonWheelDown:
			if m.screen == screenDesktop && m.startMenu == nil {
				m.handleWheel(p, msg.Button == tea.MouseButtonWheelUp)
			}
			return nil
		case tea.MouseButtonLeft:
			log.Tracef(log.TopicInput, "press %d,%d", p.X, p.Y)
			return m.handlePress(p, msg.Alt, msg.Ctrl, msg.Shift)
		}
	case tea.MouseActionMotion:
		m.handleMotion(p)
	case tea.MouseActionRelease:
		return m.handleRelease()
	}
	return nil
}

// handlePress routes a left press to whatever is on top at p.
func (m *home) handlePress(p wm.Point, alt, ctrl, shift bool) tea.Cmd {
	if m.screen != screenDesktop {
		return nil
	}
	if m.appConfig.RecoveryHeld(alt, ctrl, shift) {
		m.wm.BeginRecovery(p)
		return nil
	}

	if m.startMenu != nil {
		view := m.startMenu.Render()
		origin := m.startMenuOrigin(view)
		box := wm.Rect{X: origin.X, Y: origin.Y, Width: lipgloss.Width(view), Height: lipgloss.Height(view)}
		if !box.Contains(p) {
			m.startMenu = nil
			return nil
		}
		if m.startMenu.HandleClick(p.Y - origin.Y) {
			return m.closeStartMenu()
		}
		return nil
	}

	cmd := m.pressDesktop(p)
	if id, _ := m.wm.Active(); id != winArchive {
		m.archive.BlurSearch()
	}
	m.syncMenu()
	return cmd
}

func (m *home) pressDesktop(p wm.Point) tea.Cmd {
	if p.Y < layout.TopBarHeight {
		return m.runAction(m.topBar().Click(p))
	}
	if p.Y >= m.height-layout.TaskbarHeight {
		return m.runAction(m.taskbar().Click(wm.Point{X: p.X, Y: 0}))
	}
	if hit, cmd := m.assistantPress(p); hit {
		return cmd
	}
	if id, ok := m.wm.WindowAt(p); ok {
		return m.handleWindowPress(id, p)
	}
	if m.degradation.ShouldShowIcons() {
		origin := m.iconsOrigin()
		icons := m.icons()
		return m.runAction(icons.Click(wm.Point{X: p.X - origin.X, Y: p.Y - origin.Y}))
	}
	return nil
}

func (m *home) handleMotion(p wm.Point) {
	if m.wm.Recovering() {
		m.wm.RecoverTo(p)
		return
	}
	if _, ok := m.wm.Dragging(); ok {
		m.wm.DragTo(p)
		return
	}
	if m.engine.Dragging() {
		m.engine.Drag(pointerAt(p, false))
		return
	}
	m.assistantMove(p)
}

// handleRelease ends every drag in progress.
func (m *home) handleRelease() tea.Cmd {
	m.wm.EndRecovery()
	m.wm.EndDrag()
	m.engine.EndDrag()
	return m.assistantRelease()
}

// highlight underlines the pressed key in the menu for a moment.
func (m *home) highlight(name keys.KeyName) tea.Cmd {
	m.menu.Keydown(name)
	return m.keydownCallback()
}

func (m *home) handleKeyPress(msg tea.KeyMsg) tea.Cmd {
	if msg.String() == "ctrl+c" {
		return tea.Quit
	}
	name, ok := keys.GlobalKeyStringsMap[msg.String()]
	if ok && name == keys.KeySecurity {
		return m.securityAlert(codeDebugLocked)
	}

	switch m.screen {
	case screenBoot:
		return nil
	case screenLogin:
		return m.handleLoginKey(msg)
	}

	if m.startMenu != nil {
		if m.startMenu.HandleKeyPress(msg) {
			return m.closeStartMenu()
		}
		return nil
	}
	if m.archive.Searching() {
		return m.handleSearchKey(msg)
	}
	if !ok {
		return nil
	}
	cmd := m.handleDesktopKey(name)
	m.syncMenu()
	return tea.Batch(m.highlight(name), cmd)
}

func (m *home) handleLoginKey(msg tea.KeyMsg) tea.Cmd {
	if m.login.phase != loginIdle {
		return nil
	}
	if msg.Type == tea.KeyEnter {
		return m.submitLogin()
	}
	var cmd tea.Cmd
	m.login.input, cmd = m.login.input.Update(msg)
	return cmd
}

func (m *home) handleSearchKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyEsc, tea.KeyEnter:
		m.archive.BlurSearch()
		m.syncMenu()
		return nil
	}
	return m.archive.UpdateSearch(msg)
}

func (m *home) handleDesktopKey(name keys.KeyName) tea.Cmd {
	switch name {
	case keys.KeyQuit:
		return tea.Quit
	case keys.KeyStart:
		m.toggleStartMenu()
		return nil
	case keys.KeyCycle:
		m.cycleFocus()
		return nil
	case keys.KeyShowDesktop:
		return m.runAction(ui.Action{Kind: ui.ActionShowDesktop})
	case keys.KeyResetLayout:
		return m.resetLayout()
	case keys.KeyOpenOverview, keys.KeyOpenEmployees, keys.KeyOpenArchive, keys.KeyOpenShop, keys.KeyOpenComm:
		m.wm.Open(desktopWindows[name-keys.KeyOpenOverview])
		return nil
	case keys.KeyLanguage:
		return m.runAction(ui.Action{Kind: ui.ActionLanguage})
	case keys.KeyToggleMobile:
		return m.runAction(ui.Action{Kind: ui.ActionToggleMobile})
	case keys.KeyScale:
		return m.runAction(ui.Action{Kind: ui.ActionScale})
	case keys.KeyAssistantNext:
		return m.nextStep()
	}

	id, ok := m.wm.Active()
	if !ok {
		return nil
	}
	switch name {
	case keys.KeyClose:
		m.wm.Close(id)
		return nil
	case keys.KeyMinimize:
		m.wm.Minimize(id)
		return nil
	case keys.KeyMaximize:
		m.wm.ToggleMaximize(id)
		return nil
	}
	return m.handlePaneKey(id, name)
}

// handlePaneKey handles the keys of the active window.
func (m *home) handlePaneKey(id string, name keys.KeyName) tea.Cmd {
	switch id {
	case winOverview:
		switch name {
		case keys.KeyBriefPrev, keys.KeyLeft:
			return m.runAction(ui.Action{Kind: ui.ActionBriefPrev})
		case keys.KeyBriefNext, keys.KeyRight:
			return m.runAction(ui.Action{Kind: ui.ActionBriefNext})
		}
	case winEmployees:
		switch name {
		case keys.KeyUp:
			m.employees.Scroll(-1)
		case keys.KeyDown:
			m.employees.Scroll(1)
		}
	case winArchive:
		switch name {
		case keys.KeyUp:
			m.archive.Move(0, -1)
		case keys.KeyDown:
			m.archive.Move(0, 1)
		case keys.KeyLeft:
			m.archive.Move(-1, 0)
		case keys.KeyRight:
			m.archive.Move(1, 0)
		case keys.KeyEnter:
			if e, ok := m.archive.Selected(); ok {
				m.openEntry(e)
			}
		case keys.KeySort:
			return m.runAction(ui.Action{Kind: ui.ActionSort, Sort: m.archive.Sort().Next()})
		case keys.KeySearch:
			return m.runAction(ui.Action{Kind: ui.ActionFocusSearch})
		}
	case winSelector:
		switch name {
		case keys.KeyUp:
			m.selector.Move(-1)
		case keys.KeyDown:
			m.selector.Move(1)
		case keys.KeyEnter:
			m.selectVariant(m.selector.Cursor())
		}
	case winViewer:
		switch name {
		case keys.KeyZoomIn:
			m.engine.AdjustZoom(viewer.ZoomStep)
		case keys.KeyZoomOut:
			m.engine.AdjustZoom(-viewer.ZoomStep)
		case keys.KeyResetView:
			return m.runAction(ui.Action{Kind: ui.ActionResetView})
		case keys.KeyCopyLink:
			return m.runAction(ui.Action{Kind: ui.ActionCopyLink})
		}
	}
	return nil
}
