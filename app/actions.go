package app

import (
	"sync"

	"distortion-os/audio"
	"distortion-os/config"
	"distortion-os/gallery"
	"distortion-os/log"
	"distortion-os/ui"
	"distortion-os/ui/overlay"
	"distortion-os/viewer"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

// soundSwitch is an audio.Player whose backing player can be replaced.
type soundSwitch struct {
	mu     sync.Mutex
	player audio.Player
}

func (s *soundSwitch) Play(e audio.Effect) {
	s.mu.Lock()
	p := s.player
	s.mu.Unlock()
	p.Play(e)
}

// Set replaces the backing player.
func (s *soundSwitch) Set(p audio.Player) {
	s.mu.Lock()
	s.player = p
	s.mu.Unlock()
}

// writeClipboard is replaced in tests.
var writeClipboard = clipboard.WriteAll

// runAction carries out what a click on a pane or the desktop chrome asked for.
func (m *home) runAction(a ui.Action) tea.Cmd {
	switch a.Kind {
	case ui.ActionNone:
		return nil
	case ui.ActionSort:
		m.sound.Play(audio.Click)
		m.archive.SetSort(a.Sort)
	case ui.ActionFocusSearch:
		cmd := m.archive.FocusSearch()
		m.syncMenu()
		return cmd
	case ui.ActionSelectEntry:
		entries := m.archive.Entries()
		if a.Index < 0 || a.Index >= len(entries) {
			return nil
		}
		m.archive.SetCursor(a.Index)
		m.openEntry(entries[a.Index])
	case ui.ActionSelectVariant:
		m.selectVariant(a.Index)
	case ui.ActionZoomIn:
		m.engine.AdjustZoom(viewer.ZoomStep)
	case ui.ActionZoomOut:
		m.engine.AdjustZoom(-viewer.ZoomStep)
	case ui.ActionResetView:
		m.sound.Play(audio.Click)
		m.engine.Reset()
	case ui.ActionCopyLink:
		return m.copyLink()
	case ui.ActionBriefPrev:
		m.sound.Play(audio.Click)
		m.overview.Step(-1)
	case ui.ActionBriefNext:
		m.sound.Play(audio.Click)
		m.overview.Step(1)
	case ui.ActionStoreLink:
		return m.storeLink()
	case ui.ActionStart:
		m.toggleStartMenu()
	case ui.ActionOpenWindow:
		m.wm.Open(a.ID)
	case ui.ActionShowDesktop:
		m.sound.Play(audio.Click)
		m.wm.ShowDesktop()
	case ui.ActionLanguage:
		m.sound.Play(audio.Click)
		m.setLanguage(m.tr.Next())
	case ui.ActionToggleMobile:
		m.sound.Play(audio.Click)
		m.forceMobile = !m.forceMobile
		m.relayout()
	case ui.ActionScale:
		m.sound.Play(audio.Click)
		if m.appConfig.UIScale == config.ScaleLarge {
			m.appConfig.UIScale = config.ScaleNormal
		} else {
			m.appConfig.UIScale = config.ScaleLarge
		}
		m.relayout()
	case ui.ActionResetLayout:
		return m.resetLayout()
	case ui.ActionAssistantNext:
		return m.nextStep()
	case ui.ActionAssistantSkip:
		m.sound.Play(audio.Click)
		return m.finishTutorial()
	}
	m.syncMenu()
	return nil
}

// openEntry opens an archive tile. Variant tiles go straight to the viewer;
// card tiles ask which variant first when there is more than one.
func (m *home) openEntry(e gallery.Entry) {
	m.sound.Play(audio.Click)
	if e.Variant != nil {
		m.showInViewer(e.Card, e.Variant)
		return
	}
	variants := m.catalog.VariantsOf(e.Card.ID)
	if len(variants) > 1 {
		m.selector.Show(e.Card, variants)
		m.wm.Open(winSelector)
		return
	}
	var v *gallery.Variant
	if len(variants) == 1 {
		v = &variants[0]
	}
	m.showInViewer(e.Card, v)
}

func (m *home) selectVariant(i int) {
	variants := m.selector.Variants()
	if i < 0 || i >= len(variants) {
		return
	}
	m.sound.Play(audio.Click)
	card, ok := m.catalog.Card(variants[i].CardID)
	if !ok {
		return
	}
	v := variants[i]
	m.wm.Close(winSelector)
	m.showInViewer(card, &v)
}

func (m *home) showInViewer(card gallery.Card, v *gallery.Variant) {
	m.engine.Reset()
	m.viewerPane.Show(card, v)
	m.wm.Open(winViewer)
}

// copyLink copies the social link of the artist on display.
func (m *home) copyLink() tea.Cmd {
	link, ok := m.viewerPane.Link()
	if !ok {
		return nil
	}
	m.sound.Play(audio.Click)
	if err := writeClipboard(link); err != nil {
		log.WarningLog.Printf("could not copy link: %v", err)
		return nil
	}
	m.viewerPane.SetCopied(true)
	return after(copiedDuration, copiedResetMsg{})
}

// storeLink copies the store page, the closest a terminal gets to opening it.
func (m *home) storeLink() tea.Cmd {
	m.sound.Play(audio.Click)
	if err := writeClipboard(m.appConfig.StoreURL); err != nil {
		log.WarningLog.Printf("could not copy store link: %v", err)
		return m.toast(m.tr.T("notice_title"), m.appConfig.StoreURL, false)
	}
	return m.toast(m.tr.T("store_copied"), m.appConfig.StoreURL, false)
}

func (m *home) resetLayout() tea.Cmd {
	m.sound.Play(audio.Click)
	m.wm.ResetLayout()
	m.syncMenu()
	return m.toast(m.tr.T("notice_title"), codeReorganized, false)
}

// setLanguage switches every string on screen and remembers the choice.
func (m *home) setLanguage(pref string) {
	lang := m.tr.SetLanguage(pref)
	if err := m.appState.SetLastLanguage(lang); err != nil {
		log.WarningLog.Printf("could not save language: %v", err)
	}
	m.archive.Refresh()
}

const (
	menuLanguage = "language"
	menuMobile   = "mobile"
	menuScale    = "scale"
	menuReset    = "reset"
	menuDesktop  = "desktop"
	menuQuit     = "quit"
)

func (m *home) toggleStartMenu() {
	m.sound.Play(audio.Click)
	if m.startMenu != nil {
		m.startMenu = nil
		return
	}
	var options []overlay.MenuOption
	for _, id := range desktopWindows {
		options = append(options, overlay.MenuOption{Action: id, Name: m.tr.T(titleOf(id)), Available: true})
	}
	mode := m.tr.T("ui_mode_desktop")
	if m.wm.Mobile() {
		mode = m.tr.T("ui_mode_mobile")
	}
	scale := m.tr.T("btn_scale_large")
	if m.appConfig.UIScale == config.ScaleLarge {
		scale = m.tr.T("btn_scale_normal")
	}
	options = append(options,
		overlay.MenuOption{Action: menuLanguage, Name: m.tr.T("lang_name"), Hint: m.tr.Next(), Available: true},
		overlay.MenuOption{Action: menuMobile, Name: mode, Available: true},
		overlay.MenuOption{Action: menuScale, Name: scale, Available: true},
		overlay.MenuOption{Action: menuReset, Name: m.tr.T("btn_reset_layout"), Available: true},
		overlay.MenuOption{Action: menuDesktop, Name: m.tr.T("show_desktop"), Available: m.screen == screenDesktop},
		overlay.MenuOption{Action: menuQuit, Name: m.tr.T("menu_quit"), Available: true},
	)
	m.startMenu = overlay.NewStartMenuOverlay(m.tr.T("start_title"), options)
	m.startMenu.SetWidth(28)
}

// closeStartMenu runs what was picked in the start menu, if anything.
func (m *home) closeStartMenu() tea.Cmd {
	picked := m.startMenu.GetSelected()
	m.startMenu = nil
	switch picked {
	case "":
		return nil
	case menuLanguage:
		return m.runAction(ui.Action{Kind: ui.ActionLanguage})
	case menuMobile:
		return m.runAction(ui.Action{Kind: ui.ActionToggleMobile})
	case menuScale:
		return m.runAction(ui.Action{Kind: ui.ActionScale})
	case menuReset:
		return m.runAction(ui.Action{Kind: ui.ActionResetLayout})
	case menuDesktop:
		return m.runAction(ui.Action{Kind: ui.ActionShowDesktop})
	case menuQuit:
		return tea.Quit
	}
	return m.runAction(ui.Action{Kind: ui.ActionOpenWindow, ID: picked})
}
