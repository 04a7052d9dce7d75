package app

import (
	"context"
	"fmt"
	"os"
	"time"

	"distortion-os/ambient"
	"distortion-os/audio"
	"distortion-os/config"
	"distortion-os/gallery"
	"distortion-os/i18n"
	"distortion-os/inspect"
	"distortion-os/log"
	"distortion-os/ui"
	"distortion-os/ui/layout"
	"distortion-os/ui/overlay"
	"distortion-os/viewer"
	"distortion-os/wm"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// Options are the command line settings of a session.
type Options struct {
	// Language overrides the configured language.
	Language string
	// ForceMobile starts in the mobile layout whatever the terminal width.
	ForceMobile bool
	// NoSound mutes every effect.
	NoSound bool
}

// Run is the main entrypoint into the application.
func Run(ctx context.Context, opts Options) error {
	h := newHome(ctx, opts, deps{
		config:    config.LoadConfig(),
		state:     config.LoadState(),
		newPlayer: func(enabled bool) audio.Player { return audio.New(enabled, os.Stdout) },
	})
	p := tea.NewProgram(
		h,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(), // drags need motion without a button change
		tea.WithContext(ctx),
	)
	if err := config.Watch(ctx, func(cfg *config.Config) {
		p.Send(configReloadedMsg{cfg: cfg})
	}); err != nil {
		log.WarningLog.Printf("config changes will not be picked up: %v", err)
	}
	_, err := p.Run()
	return err
}

type screen int

const (
	// screenBoot is the boot console.
	screenBoot screen = iota
	// screenLogin is the access code prompt.
	screenLogin
	// screenDesktop is the desktop with its windows.
	screenDesktop
)

func (s screen) String() string {
	switch s {
	case screenBoot:
		return "boot"
	case screenLogin:
		return "login"
	default:
		return "desktop"
	}
}

// deps are what a home is built from, swapped out in tests.
type deps struct {
	config    *config.Config
	state     config.AppState
	newPlayer func(enabled bool) audio.Player
}

type home struct {
	ctx context.Context

	// -- Storage and Configuration --

	// appConfig stores persistent application configuration
	appConfig *config.Config
	// appState stores persistent application state like the finished tutorial
	appState  config.AppState
	newPlayer func(enabled bool) audio.Player
	noSound   bool
	// sound is handed to the window manager, so a config reload can swap the
	// player underneath it.
	sound *soundSwitch

	tr      *i18n.Catalog
	catalog *gallery.Catalog

	// -- State --

	screen      screen
	width       int
	height      int
	constraints layout.Constraints
	degradation layout.Degradation
	forceMobile bool

	queue  *wm.Queue
	wm     *wm.Manager
	engine *viewer.Engine

	now     time.Time
	latency int
	hash    string

	assistant assistant

	toasts    []overlay.Toast
	nextToast int

	// -- UI Components --

	overview   *ui.OverviewPane
	employees  *ui.EmployeesPane
	archive    *ui.ArchivePane
	shop       *ui.ShopPane
	comm       *ui.CommPane
	selector   *ui.SelectorPane
	viewerPane *ui.ViewerPane

	// menu displays the key hints in the taskbar
	menu *ui.Menu
	// global spinner instance. we plumb this down to where it's needed
	spinner spinner.Model
	boot    *overlay.LoadingOverlay
	login   login
	// startMenu is open while non-nil
	startMenu *overlay.StartMenuOverlay
}

// newHome builds the model. If anything goes wrong, including a panic, a
// minimal model showing the login screen is returned instead.
func newHome(ctx context.Context, opts Options, d deps) (h *home) {
	defer func() {
		if r := recover(); r != nil {
			log.ErrorLog.Printf("failed to build the desktop: %v", r)
			h = fallbackHome(ctx)
		}
	}()

	tr, err := i18n.Load()
	if err != nil {
		log.ErrorLog.Printf("%v", err)
		return fallbackHome(ctx)
	}
	catalog, err := gallery.Load()
	if err != nil {
		log.ErrorLog.Printf("%v", err)
		return fallbackHome(ctx)
	}
	return build(ctx, opts, d, tr, catalog)
}

// fallbackHome is the model used when the real one cannot be built: no
// cards, default settings, no sound, straight to the login screen.
func fallbackHome(ctx context.Context) *home {
	tr, err := i18n.Parse([]byte("en: {strings: {}}"))
	if err != nil {
		panic(fmt.Sprintf("fallback string table: %v", err))
	}
	catalog, err := gallery.Parse(nil)
	if err != nil {
		panic(fmt.Sprintf("fallback catalog: %v", err))
	}
	h := build(ctx, Options{NoSound: true}, deps{
		config:    config.DefaultConfig(),
		state:     config.DefaultState(),
		newPlayer: func(bool) audio.Player { return audio.Nop{} },
	}, tr, catalog)
	h.screen = screenLogin
	h.login.input.Focus()
	return h
}

func build(ctx context.Context, opts Options, d deps, tr *i18n.Catalog, catalog *gallery.Catalog) *home {
	h := &home{
		ctx:         ctx,
		appConfig:   d.config,
		appState:    d.state,
		newPlayer:   d.newPlayer,
		noSound:     opts.NoSound,
		tr:          tr,
		catalog:     catalog,
		screen:      screenBoot,
		forceMobile: opts.ForceMobile,
		queue:       &wm.Queue{},
		spinner:     spinner.New(spinner.WithSpinner(spinner.MiniDot)),
		menu:        ui.NewMenu(),
		now:         time.Now(),
		latency:     ambient.Latency(),
		hash:        ambient.Hash(),
	}
	h.sound = &soundSwitch{player: h.newPlayer(h.appConfig.Sound && !h.noSound)}
	tr.SetLanguage(startLanguage(opts, d.config, d.state))

	h.wm = wm.New(windowSpecs,
		wm.WithScheduler(h.queue),
		wm.WithPlayer(h.sound),
		wm.WithMobileWidth(h.appConfig.MobileWidth),
	)
	h.wm.Bus().Subscribe(h.onWindowEvent)

	h.overview = ui.NewOverviewPane(tr)
	h.employees = ui.NewEmployeesPane(tr, catalog)
	h.archive = ui.NewArchivePane(tr, catalog)
	h.shop = ui.NewShopPane(tr, h.appConfig.Events)
	h.comm = ui.NewCommPane(tr, h.appConfig.Events)
	h.comm.SetNow(h.now)
	h.selector = ui.NewSelectorPane(tr)
	h.viewerPane = ui.NewViewerPane(tr)
	h.engine = viewer.New(h.viewerPane)

	h.boot = newBootOverlay(tr.T("boot_title"), &h.spinner)
	h.login = newLogin(tr.T("login_placeholder"))
	return h
}

// startLanguage picks the language of a new session: the flag, the config,
// the last session, then the environment.
func startLanguage(opts Options, cfg *config.Config, state config.AppState) string {
	for _, lang := range []string{opts.Language, cfg.Language, state.GetLastLanguage()} {
		if lang != "" {
			return lang
		}
	}
	return os.Getenv("LANG")
}

func (m *home) Init() tea.Cmd {
	// Upon starting, we want to start the spinner. Whenever we get a spinner.TickMsg, we
	// update the spinner, which sends a new spinner.TickMsg.
	return tea.Batch(
		m.spinner.Tick,
		bootCmds(),
		tickClock(),
	)
}

// Update handles msg and then turns the window transitions it caused into
// timers. With inspection enabled, every update leaves a snapshot behind.
func (m *home) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd := m.update(msg)
	if inspect.IsEnabled() {
		if err := inspect.WriteSnapshot(m.snapshot()); err != nil && snapshotErrors.ShouldLog() {
			log.WarningLog.Printf("could not write inspect snapshot: %v", err)
		}
	}
	return m, tea.Batch(cmd, m.drainTransitions())
}

var snapshotErrors = log.NewEvery(time.Minute)

func (m *home) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.relayout()
		return nil
	case transitionMsg:
		m.wm.Advance(msg.ID, msg.Seq)
		m.syncMenu()
		return nil
	case bootLineMsg:
		return m.handleBootLine(msg)
	case showLoginMsg:
		return m.showLogin()
	case autoLoginTickMsg:
		return m.handleAutoLoginTick()
	case typeCodeMsg:
		return m.handleTypeCode()
	case submitLoginMsg:
		return m.submitLogin()
	case loginStepMsg:
		return m.handleLoginStep(msg)
	case clockTickMsg:
		m.now = time.Time(msg)
		m.latency = ambient.Latency()
		m.hash = ambient.Hash()
		m.comm.SetNow(m.now)
		return tickClock()
	case openWindowMsg:
		m.wm.Open(msg.id)
		m.syncMenu()
		return nil
	case assistantOpenMsg:
		return m.openAssistant()
	case chatterTickMsg:
		return m.handleChatterTick()
	case hideBubbleMsg:
		if msg.seq == m.assistant.bubbleSeq {
			m.assistant.chat = ""
		}
		return nil
	case hideToastMsg:
		m.hideToast(msg.id)
		return nil
	case copiedResetMsg:
		m.viewerPane.SetCopied(false)
		return nil
	case configReloadedMsg:
		m.applyConfig(msg.cfg)
		return nil
	case keyupMsg:
		m.menu.ClearKeydown()
		return nil
	case tea.MouseMsg:
		return m.handleMouse(msg)
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return cmd
	}
	return nil
}

// applyConfig takes over a configuration edited while running.
func (m *home) applyConfig(cfg *config.Config) {
	log.InfoLog.Printf("config reloaded")
	prev := m.appConfig
	m.appConfig = cfg
	m.sound.Set(m.newPlayer(cfg.Sound && !m.noSound))
	m.shop.SetEvents(cfg.Events)
	m.comm.SetEvents(cfg.Events)
	if cfg.Language != "" && (prev == nil || cfg.Language != prev.Language) {
		m.setLanguage(cfg.Language)
	}
	m.relayout()
}

func (m *home) hideToast(id int) {
	for i, t := range m.toasts {
		if t.ID == id {
			m.toasts = append(m.toasts[:i], m.toasts[i+1:]...)
			return
		}
	}
}

// toast shows a notice in the top right corner for a few seconds.
func (m *home) toast(title, code string, alert bool) tea.Cmd {
	m.nextToast++
	id := m.nextToast
	m.toasts = append(m.toasts, overlay.Toast{ID: id, Title: title, Code: code, Alert: alert})
	return after(toastDuration, hideToastMsg{id: id})
}

const (
	codeUnauthorized = "UNAUTHORIZED_ACCESS_ATTEMPT"
	codeDebugLocked  = "DEBUGGING_INTERFACE_LOCKED"
	codeReorganized  = "WORKSPACE_REORGANIZED"
)

func (m *home) securityAlert(code string) tea.Cmd {
	m.sound.Play(audio.Hiss)
	return m.toast(m.tr.T("security_alert"), code, true)
}

func (m *home) View() string {
	defer log.GetProfiler().StartFrame()()
	if m.width <= 0 || m.height <= 0 {
		return ""
	}
	switch m.screen {
	case screenBoot:
		return overlay.PlaceOverlay(0, 0, m.boot.Render(), m.wallpaper(), true, true)
	case screenLogin:
		return overlay.PlaceOverlay(0, 0, m.renderLogin(), m.wallpaper(), true, true)
	}
	if m.constraints.ShowMinWarning {
		warning := ui.ToastStyle().Render(fmt.Sprintf(m.tr.T("min_size"), layout.MinWidth, layout.MinHeight))
		return overlay.PlaceOverlay(0, 0, warning, m.wallpaper(), false, true)
	}
	return m.renderDesktop()
}
