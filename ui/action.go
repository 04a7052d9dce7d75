package ui

import (
	"strings"

	"distortion-os/gallery"
	"distortion-os/wm"

	"github.com/charmbracelet/lipgloss"
)

// ActionKind is what a click inside a window body asks the app to do.
type ActionKind int

const (
	ActionNone ActionKind = iota
	ActionSort
	ActionFocusSearch
	ActionSelectEntry
	ActionSelectVariant
	ActionZoomIn
	ActionZoomOut
	ActionResetView
	ActionCopyLink
	ActionBriefPrev
	ActionBriefNext
	ActionStoreLink

	// Desktop chrome
	ActionStart
	ActionOpenWindow
	ActionShowDesktop
	ActionLanguage
	ActionToggleMobile
	ActionScale
	ActionResetLayout
	ActionAssistantNext
	ActionAssistantSkip
)

// Action is the result of a click inside a window body.
type Action struct {
	Kind ActionKind
	// Index is the grid entry or variant for the select actions.
	Index int
	// Sort is the order picked by ActionSort.
	Sort gallery.Sort
	// ID is the window of ActionOpenWindow.
	ID string
}

// button is a clickable area of a pane in body coordinates.
type button struct {
	rect   wm.Rect
	action Action
}

// hit returns the action of the first button under p.
func hit(buttons []button, p wm.Point) Action {
	for _, b := range buttons {
		if b.rect.Contains(p) {
			return b.action
		}
	}
	return Action{}
}

// buttonRow lays out labels left to right on row y, one cell apart, and
// returns the rendered row with the button of each label.
func buttonRow(y int, labels []string, actions []Action, active []bool) (string, []button) {
	var (
		parts   []string
		buttons []button
		x       int
	)
	for i, label := range labels {
		on := i < len(active) && active[i]
		rendered := ButtonStyle(on).Render(label)
		w := lipgloss.Width(rendered)
		buttons = append(buttons, button{rect: wm.Rect{X: x, Y: y, Width: w, Height: 1}, action: actions[i]})
		parts = append(parts, rendered)
		x += w + 1
	}
	return strings.Join(parts, " "), buttons
}
