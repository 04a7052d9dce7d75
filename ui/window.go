package ui

import (
	"strings"

	"distortion-os/wm"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

// Frame describes the chrome of one window.
type Frame struct {
	Title     string
	Active    bool
	Maximized bool
	// Fading windows are opening or closing and drawn faint.
	Fading bool
	Width  int
	Height int
}

// controls renders the header buttons. Each takes wm.ControlWidth cells.
func controls(maximized bool) string {
	toggle := IconMaximize
	if maximized {
		toggle = IconRestore
	}
	return " " + IconMinimize + "  " + toggle + "  " + IconClose + " "
}

// RenderHeader renders the title row of a window.
func RenderHeader(f Frame) string {
	style := WindowStyles.Header
	if f.Active {
		style = WindowStyles.HeaderActive
	}
	if f.Fading {
		style = style.Inherit(WindowStyles.Fading)
	}
	titleWidth := f.Width - wm.ControlsWidth
	if titleWidth < 0 {
		return style.Render(FitLine(controls(f.Maximized), f.Width))
	}
	title := truncate.StringWithTail(" "+f.Title, uint(titleWidth), "…")
	return style.Render(FitLine(title, titleWidth) + controls(f.Maximized))
}

// RenderWindow draws a window of f.Width x f.Height cells with body inside.
// The body is cut to BodySize.
func RenderWindow(f Frame, body string) string {
	if f.Width <= 0 || f.Height <= 0 {
		return ""
	}
	header := RenderHeader(f)
	if f.Height == 1 {
		return header
	}

	bw, bh := BodySize(f.Width, f.Height)
	style := WindowStyles.Body
	if f.Active {
		style = WindowStyles.BodyActive
	}
	if f.Fading {
		style = style.Inherit(WindowStyles.Fading)
	}
	var rendered string
	if bw <= 0 || bh <= 0 {
		rendered = Fit(strings.Repeat("─", f.Width), f.Width, f.Height-1)
	} else {
		rendered = style.Render(Fit(body, bw, bh))
	}
	return lipgloss.JoinVertical(lipgloss.Left, header, rendered)
}

// BodySize is the space inside the border of a width x height window.
func BodySize(width, height int) (int, int) {
	return width - 2, height - 2
}

// BodyOrigin is where the body of a window drawn at r starts on screen.
func BodyOrigin(r wm.Rect) wm.Point {
	return wm.Point{X: r.X + 1, Y: r.Y + 1}
}
