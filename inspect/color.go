package inspect

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// StyleInfo is the part of a lipgloss style a script can check against the
// desktop palette.
type StyleInfo struct {
	Name       string `json:"name"`
	Foreground *Color `json:"foreground,omitempty"`
	Background *Color `json:"background,omitempty"`
	Bold       bool   `json:"bold,omitempty"`
	Reverse    bool   `json:"reverse,omitempty"`
	Faint      bool   `json:"faint,omitempty"`

	// Border is the preset name and Sides the drawn edges, e.g. "rbl" for
	// a window body that leaves its top edge to the header.
	Border      string `json:"border,omitempty"`
	Sides       string `json:"sides,omitempty"`
	BorderColor *Color `json:"border_color,omitempty"`
}

// Color is a palette entry for both terminal backgrounds.
type Color struct {
	Light string `json:"light"`
	Dark  string `json:"dark"`
}

// ExtractStyleInfo describes style under name.
func ExtractStyleInfo(style lipgloss.Style, name string) *StyleInfo {
	info := &StyleInfo{
		Name:       name,
		Foreground: colorOf(style.GetForeground()),
		Background: colorOf(style.GetBackground()),
		Bold:       style.GetBold(),
		Reverse:    style.GetReverse(),
		Faint:      style.GetFaint(),
	}

	var sides strings.Builder
	for _, s := range []struct {
		on   bool
		name byte
	}{
		{style.GetBorderTop(), 't'},
		{style.GetBorderRight(), 'r'},
		{style.GetBorderBottom(), 'b'},
		{style.GetBorderLeft(), 'l'},
	} {
		if s.on {
			sides.WriteByte(s.name)
		}
	}
	if sides.Len() > 0 {
		info.Border = borderName(style.GetBorderStyle())
		info.Sides = sides.String()
		info.BorderColor = colorOf(style.GetBorderBottomForeground())
	}
	return info
}

func colorOf(c lipgloss.TerminalColor) *Color {
	switch v := c.(type) {
	case nil, lipgloss.NoColor:
		return nil
	case lipgloss.Color:
		return &Color{Light: string(v), Dark: string(v)}
	case lipgloss.AdaptiveColor:
		return &Color{Light: v.Light, Dark: v.Dark}
	case lipgloss.CompleteAdaptiveColor:
		return &Color{Light: v.Light.TrueColor, Dark: v.Dark.TrueColor}
	default:
		s := fmt.Sprint(c)
		return &Color{Light: s, Dark: s}
	}
}

// borderName names the lipgloss border presets the desktop uses.
func borderName(b lipgloss.Border) string {
	switch b {
	case lipgloss.RoundedBorder():
		return "rounded"
	case lipgloss.ThickBorder():
		return "thick"
	case lipgloss.NormalBorder():
		return "normal"
	default:
		return "custom"
	}
}
