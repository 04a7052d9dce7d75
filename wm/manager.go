package wm

import (
	"sort"
	"time"

	"distortion-os/audio"
	"distortion-os/log"
)

// DefaultMobileWidth is the viewport width below which the desktop switches
// to the mobile layout.
const DefaultMobileWidth = 60

// Manager owns the state of every declared window.
type Manager struct {
	order   []string
	windows map[string]*Window

	metrics     Metrics
	viewport    Viewport
	mobileWidth int
	forceMobile bool

	// z is the last value handed out by bringToFront. It only ever grows.
	z int

	sched  Scheduler
	player audio.Player
	bus    Bus

	drag     *dragState
	recovery *Point
}

// Option configures a Manager.
type Option func(*Manager)

// WithScheduler sets where deferred phase transitions go. Without one,
// transitions complete immediately.
func WithScheduler(s Scheduler) Option {
	return func(m *Manager) { m.sched = s }
}

// WithPlayer sets the effect player used for window sounds.
func WithPlayer(p audio.Player) Option {
	return func(m *Manager) { m.player = p }
}

// WithMetrics overrides DefaultMetrics.
func WithMetrics(metrics Metrics) Option {
	return func(m *Manager) { m.metrics = metrics }
}

// WithViewport sets the initial screen size.
func WithViewport(width, height int) Option {
	return func(m *Manager) { m.viewport = Viewport{Width: width, Height: height} }
}

// WithMobileWidth sets the width below which the mobile layout is used.
func WithMobileWidth(width int) Option {
	return func(m *Manager) { m.mobileWidth = width }
}

// New declares the windows in specs. Duplicate ids keep the first declaration.
func New(specs []Spec, opts ...Option) *Manager {
	m := &Manager{
		windows:     make(map[string]*Window, len(specs)),
		metrics:     DefaultMetrics(),
		viewport:    Viewport{Width: 120, Height: 40},
		mobileWidth: DefaultMobileWidth,
		player:      audio.Nop{},
	}
	for _, opt := range opts {
		opt(m)
	}
	for _, s := range specs {
		if _, dup := m.windows[s.ID]; dup {
			log.WarningLog.Printf("window %s declared twice, keeping the first", s.ID)
			continue
		}
		m.order = append(m.order, s.ID)
		m.windows[s.ID] = &Window{ID: s.ID, Title: s.Title, DefaultSize: s.DefaultSize}
	}
	return m
}

// Bus returns the bus Open and Close publish on.
func (m *Manager) Bus() *Bus {
	return &m.bus
}

// Metrics returns the metrics the manager lays windows out with.
func (m *Manager) Metrics() Metrics {
	return m.metrics
}

// Viewport returns the current screen size.
func (m *Manager) Viewport() Viewport {
	return m.viewport
}

// Mobile reports whether the mobile layout is in effect, either because the
// viewport is narrow or because it was forced.
func (m *Manager) Mobile() bool {
	return m.forceMobile || m.viewport.Width < m.mobileWidth
}

// SetMobile forces the mobile layout on or hands the decision back to the
// viewport width.
func (m *Manager) SetMobile(forced bool) {
	m.forceMobile = forced
}

// SetMobileWidth moves the mobile breakpoint. Zero restores DefaultMobileWidth.
func (m *Manager) SetMobileWidth(width int) {
	if width <= 0 {
		width = DefaultMobileWidth
	}
	m.mobileWidth = width
}

// SetViewport records a new screen size and re-pins maximized windows to it.
func (m *Manager) SetViewport(width, height int) {
	m.viewport = Viewport{Width: width, Height: height}
	for _, id := range m.order {
		w := m.windows[id]
		if w.Maximized {
			m.pin(w)
		}
	}
	log.Tracef(log.TopicLayout, "viewport %dx%d mobile=%v", width, height, m.Mobile())
}

// SetDefaultSize changes the size a window takes when it has no explicit
// size, as when the UI scale changes.
func (m *Manager) SetDefaultSize(id string, size Size) {
	if w, ok := m.windows[id]; ok {
		w.DefaultSize = size
	}
}

// Open shows a window and gives it focus.
func (m *Manager) Open(id string) {
	w, ok := m.windows[id]
	if !ok {
		return
	}
	if m.Mobile() {
		w.Position = nil
		w.Size = nil
		w.Maximized = false
		w.saved = nil
	} else if w.Position != nil && !m.onScreen(*w.Position) {
		w.Position = nil
	}

	m.bringToFront(w)
	w.Minimized = false
	if w.Phase != PhaseOpen {
		w.Phase = PhaseOpening
		w.seq++
		m.schedule(w, m.metrics.FrameDelay)
	}
	m.player.Play(audio.Click)
	m.bus.Publish(Event{Kind: Opened, ID: id})
}

// onScreen reports whether a saved position can be reused as is.
func (m *Manager) onScreen(p Point) bool {
	vw, vh := m.viewport.Width, m.viewport.Height
	switch {
	case p.Y < 0, p.Y > vh-m.metrics.HeaderHeight:
		return false
	case p.X < -m.metrics.OffscreenMargin, p.X > vw-m.metrics.MinVisibleWidth:
		return false
	}
	return true
}

// Close hides a window after its exit animation. Its flags change at once.
// Closing a window that is already closed or closing does nothing.
func (m *Manager) Close(id string) {
	w, ok := m.windows[id]
	if !ok || w.State() == StateClosed {
		return
	}
	m.close(w)
	m.player.Play(audio.Click)
}

func (m *Manager) close(w *Window) {
	w.Active = false
	w.Minimized = false
	if w.Phase != PhaseClosing {
		w.Phase = PhaseClosing
		w.seq++
		m.schedule(w, m.metrics.CloseDelay)
	}
	if m.drag != nil && m.drag.id == w.ID {
		m.drag = nil
	}
	m.bus.Publish(Event{Kind: Closed, ID: w.ID})
}

// Minimize hides a window to the taskbar. Its z and position are kept.
func (m *Manager) Minimize(id string) {
	w, ok := m.windows[id]
	if !ok {
		return
	}
	w.Minimized = true
	w.Active = false
	m.player.Play(audio.Click)
}

// ToggleMaximize pins a window to the full work area or restores it. It does
// nothing in the mobile layout.
func (m *Manager) ToggleMaximize(id string) {
	w, ok := m.windows[id]
	if !ok || m.Mobile() {
		return
	}
	if w.Maximized {
		w.Maximized = false
		if w.saved != nil {
			w.Position = w.saved.position
			w.Size = w.saved.size
		} else {
			w.Position = &Point{X: m.viewport.Width / 10, Y: m.viewport.Height / 10}
			size := m.metrics.FallbackSize
			w.Size = &size
		}
		w.saved = nil
	} else {
		w.saved = &snapshot{position: clonePoint(w.Position), size: cloneSize(w.Size)}
		w.Maximized = true
		m.pin(w)
	}
	m.bringToFront(w)
	m.player.Play(audio.Click)
}

func (m *Manager) pin(w *Window) {
	area := m.workArea()
	w.Position = &Point{X: area.X, Y: area.Y}
	w.Size = &Size{Width: area.Width, Height: area.Height}
}

// workArea is the region between the top bar and the taskbar.
func (m *Manager) workArea() Rect {
	h := m.viewport.Height - m.metrics.TopBarHeight - m.metrics.TaskbarHeight
	if h < 0 {
		h = 0
	}
	return Rect{X: 0, Y: m.metrics.TopBarHeight, Width: m.viewport.Width, Height: h}
}

// BringToFront raises a window above all others and makes it the only
// active one.
func (m *Manager) BringToFront(id string) {
	if w, ok := m.windows[id]; ok {
		m.bringToFront(w)
	}
}

func (m *Manager) bringToFront(w *Window) {
	m.z++
	w.Z = m.z
	for _, other := range m.windows {
		other.Active = false
	}
	w.Active = true
}

// ShowDesktop closes every displayed window.
func (m *Manager) ShowDesktop() {
	for _, id := range m.order {
		if w := m.windows[id]; w.State() != StateClosed {
			m.close(w)
		}
	}
	m.player.Play(audio.Click)
}

// ResetLayout drops every position, size, maximize and minimize override so
// windows go back to their centered default geometry.
func (m *Manager) ResetLayout() {
	for _, id := range m.order {
		w := m.windows[id]
		w.Position = nil
		w.Size = nil
		w.Maximized = false
		w.Minimized = false
		w.saved = nil
	}
	m.drag = nil
	m.recovery = nil
}

// Advance completes a scheduled transition. Transitions for unknown ids and
// transitions superseded by a later open or close are ignored. It reports
// whether the window changed.
func (m *Manager) Advance(id string, seq uint64) bool {
	w, ok := m.windows[id]
	if !ok || w.seq != seq {
		return false
	}
	switch w.Phase {
	case PhaseOpening:
		w.Phase = PhaseOpen
	case PhaseClosing:
		w.Phase = PhaseClosed
	default:
		return false
	}
	log.Tracef(log.TopicTransition, "%s %s", id, w.Phase)
	return true
}

func (m *Manager) schedule(w *Window, after time.Duration) {
	if m.sched == nil {
		m.Advance(w.ID, w.seq)
		return
	}
	m.sched.Schedule(Transition{ID: w.ID, Seq: w.seq, After: after})
}

// Window returns a copy of the record for id.
func (m *Manager) Window(id string) (Window, bool) {
	w, ok := m.windows[id]
	if !ok {
		return Window{}, false
	}
	return w.clone(), true
}

// Windows returns copies of every record in declaration order.
func (m *Manager) Windows() []Window {
	out := make([]Window, 0, len(m.order))
	for _, id := range m.order {
		out = append(out, m.windows[id].clone())
	}
	return out
}

// Stack returns the drawn windows from bottom to top.
func (m *Manager) Stack() []Window {
	var out []Window
	for _, id := range m.order {
		if w := m.windows[id]; w.Visible() {
			out = append(out, w.clone())
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Z < out[j].Z })
	return out
}

// Active returns the id of the active window.
func (m *Manager) Active() (string, bool) {
	for _, id := range m.order {
		if m.windows[id].Active {
			return id, true
		}
	}
	return "", false
}

// Bounds returns where a window is drawn.
func (m *Manager) Bounds(id string) (Rect, bool) {
	w, ok := m.windows[id]
	if !ok {
		return Rect{}, false
	}
	return m.bounds(w), true
}

func (m *Manager) bounds(w *Window) Rect {
	area := m.workArea()
	if m.Mobile() {
		return area
	}
	size := w.DefaultSize
	if w.Size != nil {
		size = *w.Size
	}
	if !w.Maximized {
		size.Width = clamp(size.Width, 1, max(area.Width, 1))
		size.Height = clamp(size.Height, 1, max(area.Height, 1))
	}
	if w.Position == nil {
		return Rect{
			X:      area.X + (area.Width-size.Width)/2,
			Y:      area.Y + (area.Height-size.Height)/2,
			Width:  size.Width,
			Height: size.Height,
		}
	}
	return Rect{X: w.Position.X, Y: w.Position.Y, Width: size.Width, Height: size.Height}
}

// WindowAt returns the topmost drawn window under p.
func (m *Manager) WindowAt(p Point) (string, bool) {
	stack := m.Stack()
	for i := len(stack) - 1; i >= 0; i-- {
		if m.bounds(m.windows[stack[i].ID]).Contains(p) {
			return stack[i].ID, true
		}
	}
	return "", false
}

// ControlAt returns the header button of window id under p.
func (m *Manager) ControlAt(id string, p Point) Control {
	w, ok := m.windows[id]
	if !ok {
		return ControlNone
	}
	return m.metrics.controlAt(m.bounds(w), p)
}

// InHeader reports whether p is on the draggable part of a window's header,
// which excludes its buttons.
func (m *Manager) InHeader(id string, p Point) bool {
	w, ok := m.windows[id]
	if !ok {
		return false
	}
	b := m.bounds(w)
	if !b.Contains(p) || p.Y >= b.Y+m.metrics.HeaderHeight {
		return false
	}
	return m.metrics.controlAt(b, p) == ControlNone
}
