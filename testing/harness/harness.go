// Package harness drives a Bubble Tea model the way a terminal would: key
// presses, typed text, pointer gestures and resizes. Commands returned by the
// model are handed back to the caller instead of being run, so timers never
// fire on their own.
package harness

import (
	"testing"

	"distortion-os/testing/snapshot"
	"distortion-os/ui/layout"

	tea "github.com/charmbracelet/bubbletea"
)

// Harness wraps a tea.Model under test.
type Harness struct {
	t      *testing.T
	model  tea.Model
	width  int
	height int
}

// New wraps model and sends it the initial terminal size.
func New(t *testing.T, model tea.Model, width, height int) *Harness {
	h := &Harness{t: t, model: model}
	h.Resize(width, height)
	return h
}

// Send delivers msg to the model.
func (h *Harness) Send(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	h.model, cmd = h.model.Update(msg)
	return cmd
}

// Key presses a named key such as "enter", "esc" or "f12". Anything else is
// sent as runes.
func (h *Harness) Key(name string) tea.Cmd {
	if k, ok := namedKeys[name]; ok {
		return h.Send(tea.KeyMsg{Type: k})
	}
	return h.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(name)})
}

var namedKeys = map[string]tea.KeyType{
	"enter":     tea.KeyEnter,
	"esc":       tea.KeyEsc,
	"tab":       tea.KeyTab,
	"backspace": tea.KeyBackspace,
	"up":        tea.KeyUp,
	"down":      tea.KeyDown,
	"left":      tea.KeyLeft,
	"right":     tea.KeyRight,
	"ctrl+u":    tea.KeyCtrlU,
	"ctrl+c":    tea.KeyCtrlC,
	"f12":       tea.KeyF12,
}

// Type sends text one rune at a time, like someone typing it.
func (h *Harness) Type(text string) {
	for _, r := range text {
		h.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

// Mouse sends a pointer event at cell (x, y).
func (h *Harness) Mouse(x, y int, button tea.MouseButton, action tea.MouseAction) tea.Cmd {
	return h.Send(tea.MouseMsg{X: x, Y: y, Button: button, Action: action})
}

// Press holds the left button down at (x, y).
func (h *Harness) Press(x, y int) tea.Cmd {
	return h.Mouse(x, y, tea.MouseButtonLeft, tea.MouseActionPress)
}

// Motion moves the pointer to (x, y) with the left button held.
func (h *Harness) Motion(x, y int) tea.Cmd {
	return h.Mouse(x, y, tea.MouseButtonLeft, tea.MouseActionMotion)
}

// Release lets go of the left button at (x, y).
func (h *Harness) Release(x, y int) tea.Cmd {
	return h.Mouse(x, y, tea.MouseButtonLeft, tea.MouseActionRelease)
}

// Click presses and releases at (x, y).
func (h *Harness) Click(x, y int) {
	h.Press(x, y)
	h.Release(x, y)
}

// Drag presses at (x0, y0), moves to (x1, y1) in one step and releases.
func (h *Harness) Drag(x0, y0, x1, y1 int) {
	h.Press(x0, y0)
	h.Motion(x1, y1)
	h.Release(x1, y1)
}

// Wheel scrolls once at (x, y). Up is away from the user.
func (h *Harness) Wheel(x, y int, up bool) tea.Cmd {
	button := tea.MouseButtonWheelDown
	if up {
		button = tea.MouseButtonWheelUp
	}
	return h.Mouse(x, y, button, tea.MouseActionPress)
}

// Resize changes the terminal size.
func (h *Harness) Resize(width, height int) tea.Cmd {
	h.width, h.height = width, height
	return h.Send(tea.WindowSizeMsg{Width: width, Height: height})
}

// View returns the rendered view with its escapes.
func (h *Harness) View() string {
	return h.model.View()
}

// Screen returns the rendered view as plain text.
func (h *Harness) Screen() string {
	return snapshot.StripANSI(h.model.View())
}

// Model returns the wrapped model.
func (h *Harness) Model() tea.Model {
	return h.model
}

// Size returns the current terminal size.
func (h *Harness) Size() (width, height int) {
	return h.width, h.height
}

// TerminalSize names a terminal size to render at.
type TerminalSize struct {
	Name   string
	Width  int
	Height int
}

// DesktopSizes sit on either side of each layout breakpoint.
var DesktopSizes = []TerminalSize{
	{Name: "mobile", Width: layout.MinWidth + 10, Height: 24},
	{Name: "compact", Width: layout.DefaultMobileWidth + 20, Height: layout.StandardHeight - 6},
	{Name: "standard", Width: layout.StandardWidth + 20, Height: layout.FullHeight},
	{Name: "full", Width: layout.FullWidth + 40, Height: 50},
	{Name: "wide", Width: 200, Height: layout.MinHeight + 4},
}

// RunWithSizes runs fn as a subtest for each size.
func RunWithSizes(t *testing.T, sizes []TerminalSize, fn func(t *testing.T, size TerminalSize)) {
	for _, size := range sizes {
		t.Run(size.Name, func(t *testing.T) {
			fn(t, size)
		})
	}
}
