package overlay

import (
	"distortion-os/ui"

	"github.com/charmbracelet/lipgloss"
)

// Toast is a short notice in the top right corner.
type Toast struct {
	// ID tells the hide message of this toast apart from later ones.
	ID    int
	Title string
	Code  string
	// Alert toasts are drawn red with the alert glyph.
	Alert bool
}

// Render renders the toast box.
func (t Toast) Render() string {
	title := ui.TextStyles.Accent.Render(t.Title)
	style := ui.OverlayStyle().Padding(0, 1)
	if t.Alert {
		title = ui.TextStyles.Alert.Render(ui.IconAlert + " " + t.Title)
		style = ui.ToastStyle()
	}
	return style.Render(lipgloss.JoinVertical(lipgloss.Left,
		title,
		ui.TextStyles.Secondary.Render(t.Code),
	))
}
