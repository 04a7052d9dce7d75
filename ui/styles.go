package ui

import "github.com/charmbracelet/lipgloss"

// Desktop palette
// Gold for chrome, terminal green for system output, cyan for links and
// red for alerts. Every state also differs in shape, never in color alone.
var (
	// Gold is the accent of active window chrome
	Gold = lipgloss.AdaptiveColor{Light: "#A67C00", Dark: "#D4AF37"}

	// GoldDim is for inactive chrome and secondary labels
	GoldDim = lipgloss.AdaptiveColor{Light: "#8A7A4A", Dark: "#8A7A4A"}

	// TerminalGreen is for boot output and success messages
	TerminalGreen = lipgloss.AdaptiveColor{Light: "#15803D", Dark: "#00FF41"}

	// Cyan is for roles and links
	Cyan = lipgloss.AdaptiveColor{Light: "#0E7490", Dark: "#00F0FF"}

	// Alert is for security toasts
	Alert = lipgloss.AdaptiveColor{Light: "#B91C1C", Dark: "#FF3B3B"}
)

// UI chrome colors - structural elements
var (
	// Border is the default border color
	Border = lipgloss.AdaptiveColor{Light: "#D1D5DB", Dark: "#3C3C3C"}

	// BorderFocus is the border color for the active window
	BorderFocus = Gold

	// TextPrimary is the main text color
	TextPrimary = lipgloss.AdaptiveColor{Light: "#1a1a1a", Dark: "#dddddd"}

	// TextSecondary is for secondary text (descriptions, labels)
	TextSecondary = lipgloss.AdaptiveColor{Light: "#4B5563", Dark: "#9CA3AF"}

	// TextMuted is for hints and subtle text
	TextMuted = lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: "#6B7280"}

	// Desktop is the wallpaper color
	Desktop = lipgloss.AdaptiveColor{Light: "#E5E7EB", Dark: "#0B0B0F"}

	// BackgroundSubtle is for window bodies, bars and overlays
	BackgroundSubtle = lipgloss.AdaptiveColor{Light: "#F3F4F6", Dark: "#16161D"}

	// BackgroundSelected is for selected items
	BackgroundSelected = lipgloss.AdaptiveColor{Light: "#F0E6C8", Dark: "#3A3320"}
)

// Glyphs used across the desktop
const (
	IconMinimize = "_"
	IconMaximize = "□"
	IconRestore  = "▣"
	IconClose    = "×"
	IconAlert    = "!"
	IconCursor   = "▸"
	IconFolder   = "▤"
)

// TextStyles contains pre-built styles for text elements
var TextStyles = struct {
	Primary   lipgloss.Style
	Secondary lipgloss.Style
	Muted     lipgloss.Style
	Accent    lipgloss.Style
	Terminal  lipgloss.Style
	Link      lipgloss.Style
	Alert     lipgloss.Style
}{
	Primary:   lipgloss.NewStyle().Foreground(TextPrimary),
	Secondary: lipgloss.NewStyle().Foreground(TextSecondary),
	Muted:     lipgloss.NewStyle().Foreground(TextMuted),
	Accent:    lipgloss.NewStyle().Foreground(Gold).Bold(true),
	Terminal:  lipgloss.NewStyle().Foreground(TerminalGreen),
	Link:      lipgloss.NewStyle().Foreground(Cyan).Underline(true),
	Alert:     lipgloss.NewStyle().Foreground(Alert).Bold(true),
}

// WindowStyles holds the chrome of a window: its title bar and its body.
// The body border omits the top edge because the header row replaces it.
var WindowStyles = struct {
	Header       lipgloss.Style
	HeaderActive lipgloss.Style
	Body         lipgloss.Style
	BodyActive   lipgloss.Style
	Fading       lipgloss.Style
}{
	Header: lipgloss.NewStyle().
		Foreground(TextSecondary).
		Background(BackgroundSubtle),
	HeaderActive: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#0B0B0F")).
		Background(Gold).
		Bold(true),
	Body: lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), false, true, true, true).
		BorderForeground(Border).
		Background(BackgroundSubtle),
	BodyActive: lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), false, true, true, true).
		BorderForeground(BorderFocus).
		Background(BackgroundSubtle),
	Fading: lipgloss.NewStyle().
		Faint(true),
}

// BarStyle is the style of the top bar and the taskbar.
var BarStyle = lipgloss.NewStyle().
	Foreground(TextPrimary).
	Background(BackgroundSubtle)

// BadgeStyle creates a styled badge with the given color
func BadgeStyle(color lipgloss.TerminalColor) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("#0B0B0F")).
		Background(color).
		Padding(0, 1)
}

// ButtonStyle renders a clickable label. Active buttons are inverted.
func ButtonStyle(active bool) lipgloss.Style {
	if active {
		return BadgeStyle(Gold).Bold(true)
	}
	return lipgloss.NewStyle().
		Foreground(Gold).
		Padding(0, 1)
}

// Spacing constants for consistent layout
const (
	SpaceXS = 1
	SpaceSM = 2
	SpaceMD = 4
)

// OverlayStyle creates a style for overlay/modal containers
func OverlayStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(BorderFocus).
		Padding(1, 2).
		Background(BackgroundSubtle)
}

// ToastStyle creates a style for security toasts
func ToastStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.ThickBorder()).
		BorderForeground(Alert).
		Padding(0, 1).
		Background(BackgroundSubtle)
}

// CardStyle creates a style for card-like containers
func CardStyle(selected bool) lipgloss.Style {
	color := lipgloss.TerminalColor(Border)
	if selected {
		color = BorderFocus
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(color).
		Padding(0, 1)
}
