package layout

// Degradation holds flags indicating which UI features should be hidden or simplified.
// Features are listed in order of degradation priority (first to hide).
type Degradation struct {
	// Top bar degradation
	HideHash      bool // Hide the encryption hash (width < 110)
	HideLatency   bool // Hide the latency readout (width < 90)
	HideSettings  bool // Hide scale and layout buttons (width < 80)
	ShortTaskbar  bool // Task buttons show icons only (width < 80)
	HideMenuHints bool // Hide key hints in the taskbar (width < 120)

	// Desktop degradation
	HideIcons bool // Hide the desktop icons (mobile or height < 14)

	// Critical degradation
	ShowMinWarning bool // Terminal too small warning (below MinWidth/MinHeight)
}

// Threshold constants for degradation
const (
	HashHideWidth      = 110
	LatencyHideWidth   = 90
	SettingsHideWidth  = 80
	ShortTaskbarWidth  = 80
	MenuHintsHideWidth = 120
	IconsHideHeight    = 14
)

// ComputeDegradation calculates which UI features should be degraded.
func ComputeDegradation(c Constraints) Degradation {
	return Degradation{
		HideHash:      c.TerminalWidth < HashHideWidth,
		HideLatency:   c.TerminalWidth < LatencyHideWidth,
		HideSettings:  c.TerminalWidth < SettingsHideWidth,
		ShortTaskbar:  c.TerminalWidth < ShortTaskbarWidth,
		HideMenuHints: c.TerminalWidth < MenuHintsHideWidth,

		HideIcons: c.Mobile || c.IconWidth == 0 || c.TerminalHeight < IconsHideHeight,

		ShowMinWarning: c.ShowMinWarning,
	}
}

// ShouldShowIcons returns true if the desktop icons should be drawn.
func (d Degradation) ShouldShowIcons() bool {
	return !d.HideIcons
}

// ShouldShowTelemetry returns true if any telemetry segment fits.
func (d Degradation) ShouldShowTelemetry() bool {
	return !d.HideLatency || !d.HideHash
}
