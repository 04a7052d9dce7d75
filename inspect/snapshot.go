package inspect

import (
	"fmt"
	"strings"
	"time"

	"distortion-os/ui/layout"
	"distortion-os/viewer"
	"distortion-os/wm"
)

// Snapshot is the desktop state after one update.
type Snapshot struct {
	// Timestamp when the snapshot was taken.
	Timestamp time.Time `json:"timestamp"`

	// Version of the snapshot format.
	Version string `json:"version"`

	// Terminal contains terminal dimensions.
	Terminal TerminalInfo `json:"terminal"`

	// AppState contains application state information.
	AppState AppStateInfo `json:"app_state"`

	// Windows lists every declared window in declaration order.
	Windows []WindowInfo `json:"windows"`

	// Viewer is the card viewer transform.
	Viewer ViewerInfo `json:"viewer"`

	// Layout contains layout configuration.
	Layout LayoutInfo `json:"layout"`

	// Components is the root of the component tree.
	Components *Node `json:"components,omitempty"`

	// Breakpoints contains information about responsive breakpoints.
	Breakpoints []BreakpointInfo `json:"breakpoints"`
}

// TerminalInfo contains terminal dimensions.
type TerminalInfo struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// AppStateInfo contains application-level state.
type AppStateInfo struct {
	// Screen is "boot", "login" or "desktop".
	Screen string `json:"screen"`

	// Language is the display language code.
	Language string `json:"language"`

	// Scale is the UI scale, "normal" or "large".
	Scale string `json:"scale"`

	// HasOverlay indicates if an overlay is currently displayed.
	HasOverlay bool `json:"has_overlay"`

	// OverlayType is the type of overlay if one is displayed.
	OverlayType string `json:"overlay_type,omitempty"`

	// ActiveWindow is the id of the focused window.
	ActiveWindow string `json:"active_window,omitempty"`

	// Toasts is the number of toasts on screen.
	Toasts int `json:"toasts"`

	// Assistant is the assistant bubble text, empty when hidden.
	Assistant string `json:"assistant,omitempty"`
}

// WindowInfo describes one window record.
type WindowInfo struct {
	ID     string `json:"id"`
	State  string `json:"state"`
	Phase  string `json:"phase"`
	Z      int    `json:"z"`
	Active bool   `json:"active"`
	Bounds Bounds `json:"bounds"`
}

// ViewerInfo is the viewer transform.
type ViewerInfo struct {
	Scale     float64 `json:"scale"`
	RotationX float64 `json:"rotation_x"`
	RotationY float64 `json:"rotation_y"`
	CSS       string  `json:"css"`
	Card      string  `json:"card,omitempty"`
}

// LayoutInfo contains layout configuration.
type LayoutInfo struct {
	// Mode is the current layout mode.
	Mode string `json:"mode"`

	// Mobile indicates the mobile layout is in effect.
	Mobile bool `json:"mobile"`

	// WorkWidth is the width of the area between the bars.
	WorkWidth int `json:"work_width"`

	// WorkHeight is the height of the area between the bars.
	WorkHeight int `json:"work_height"`

	// Degradation contains active degradation flags.
	Degradation DegradationInfo `json:"degradation"`
}

// DegradationInfo contains active UI degradation flags.
type DegradationInfo struct {
	HideHash       bool `json:"hide_hash"`
	HideLatency    bool `json:"hide_latency"`
	HideSettings   bool `json:"hide_settings"`
	ShortTaskbar   bool `json:"short_taskbar"`
	HideMenuHints  bool `json:"hide_menu_hints"`
	HideIcons      bool `json:"hide_icons"`
	ShowMinWarning bool `json:"show_min_warning"`
}

// BreakpointInfo contains information about a responsive breakpoint.
type BreakpointInfo struct {
	// Name is the breakpoint name.
	Name string `json:"name"`

	// Threshold is the dimension threshold.
	Threshold int `json:"threshold"`

	// Active indicates if this breakpoint is currently triggered.
	Active bool `json:"active"`

	// Dimension is "width" or "height".
	Dimension string `json:"dimension"`
}

// NewSnapshot creates a new snapshot with current timestamp.
func NewSnapshot() *Snapshot {
	return &Snapshot{
		Timestamp: time.Now(),
		Version:   "1.0.0",
	}
}

// WithTerminal sets terminal info and returns the snapshot for chaining.
func (s *Snapshot) WithTerminal(width, height int) *Snapshot {
	s.Terminal = TerminalInfo{Width: width, Height: height}
	return s
}

// WithAppState sets the application state and returns the snapshot for chaining.
func (s *Snapshot) WithAppState(info AppStateInfo) *Snapshot {
	s.AppState = info
	return s
}

// WithWindows records every window of m.
func (s *Snapshot) WithWindows(m *wm.Manager) *Snapshot {
	s.Windows = s.Windows[:0]
	for _, w := range m.Windows() {
		b, _ := m.Bounds(w.ID)
		s.Windows = append(s.Windows, WindowInfo{
			ID:     w.ID,
			State:  w.State().String(),
			Phase:  w.Phase.String(),
			Z:      w.Z,
			Active: w.Active,
			Bounds: Bounds{X: b.X, Y: b.Y, Width: b.Width, Height: b.Height},
		})
	}
	return s
}

// WithViewer records the viewer transform and the card on display.
func (s *Snapshot) WithViewer(t viewer.Transform, card string) *Snapshot {
	s.Viewer = ViewerInfo{
		Scale:     t.Scale,
		RotationX: t.RotationX,
		RotationY: t.RotationY,
		CSS:       t.CSS(),
		Card:      card,
	}
	return s
}

// WithLayout sets layout info from constraints and degradation.
func (s *Snapshot) WithLayout(c layout.Constraints, d layout.Degradation) *Snapshot {
	s.Layout = LayoutInfo{
		Mode:       c.Mode.String(),
		Mobile:     c.Mobile,
		WorkWidth:  c.WorkWidth,
		WorkHeight: c.WorkHeight,
		Degradation: DegradationInfo{
			HideHash:       d.HideHash,
			HideLatency:    d.HideLatency,
			HideSettings:   d.HideSettings,
			ShortTaskbar:   d.ShortTaskbar,
			HideMenuHints:  d.HideMenuHints,
			HideIcons:      d.HideIcons,
			ShowMinWarning: d.ShowMinWarning,
		},
	}

	// Add breakpoint information
	s.Breakpoints = []BreakpointInfo{
		{Name: "hide_hash", Threshold: layout.HashHideWidth, Active: d.HideHash, Dimension: "width"},
		{Name: "hide_latency", Threshold: layout.LatencyHideWidth, Active: d.HideLatency, Dimension: "width"},
		{Name: "hide_settings", Threshold: layout.SettingsHideWidth, Active: d.HideSettings, Dimension: "width"},
		{Name: "short_taskbar", Threshold: layout.ShortTaskbarWidth, Active: d.ShortTaskbar, Dimension: "width"},
		{Name: "hide_menu_hints", Threshold: layout.MenuHintsHideWidth, Active: d.HideMenuHints, Dimension: "width"},
		{Name: "hide_icons", Threshold: layout.IconsHideHeight, Active: d.HideIcons, Dimension: "height"},
	}

	return s
}

// WithComponents sets the component tree root.
func (s *Snapshot) WithComponents(root *Node) *Snapshot {
	s.Components = root
	return s
}

// ToText renders the snapshot for a person reading it in a terminal.
func (s *Snapshot) ToText() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s  %dx%d  %s/%s  scale=%s\n", s.Timestamp.Format(time.RFC3339),
		s.Terminal.Width, s.Terminal.Height, s.AppState.Screen, s.AppState.Language, s.AppState.Scale)
	fmt.Fprintf(&b, "layout %s, work area %dx%d", s.Layout.Mode, s.Layout.WorkWidth, s.Layout.WorkHeight)
	if s.Layout.Mobile {
		b.WriteString(", mobile")
	}
	b.WriteString("\n")

	var hit []string
	for _, bp := range s.Breakpoints {
		if bp.Active {
			hit = append(hit, fmt.Sprintf("%s(<%d %s)", bp.Name, bp.Threshold, bp.Dimension))
		}
	}
	if len(hit) > 0 {
		fmt.Fprintf(&b, "degraded: %s\n", strings.Join(hit, " "))
	}

	b.WriteString("\nwindows:\n")
	for _, w := range s.Windows {
		mark := " "
		if w.Active {
			mark = "*"
		}
		fmt.Fprintf(&b, " %s %-14s %-9s %-8s z=%-3d %d,%d %dx%d\n",
			mark, w.ID, w.State, w.Phase, w.Z, w.Bounds.X, w.Bounds.Y, w.Bounds.Width, w.Bounds.Height)
	}

	fmt.Fprintf(&b, "\nviewer: %s", s.Viewer.CSS)
	if s.Viewer.Card != "" {
		fmt.Fprintf(&b, " card=%s", s.Viewer.Card)
	}
	b.WriteString("\n")

	if a := s.AppState; a.Toasts > 0 || a.Assistant != "" || a.HasOverlay {
		fmt.Fprintf(&b, "toasts=%d overlay=%q assistant=%q\n", a.Toasts, a.OverlayType, a.Assistant)
	}

	if s.Components != nil {
		b.WriteString("\ntree:\n")
		writeNode(&b, s.Components, 1)
	}
	return b.String()
}

func writeNode(b *strings.Builder, n *Node, depth int) {
	fmt.Fprintf(b, "%s%s", strings.Repeat("  ", depth), n.Kind)
	if n.ID != "" {
		fmt.Fprintf(b, " %s", n.ID)
	}
	fmt.Fprintf(b, " @%d,%d %dx%d\n", n.Bounds.X, n.Bounds.Y, n.Bounds.Width, n.Bounds.Height)
	for _, c := range n.Children {
		writeNode(b, c, depth+1)
	}
}
