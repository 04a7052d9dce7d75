package overlay

import (
	"strings"

	"distortion-os/ui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// MenuOption is one entry of the start menu.
type MenuOption struct {
	// Action is what the app does when the entry is picked.
	Action string
	// Name is the already translated label.
	Name string
	// Hint is drawn dimmed after the name, like the state a toggle is in.
	Hint string
	// Available entries can be picked. Others are drawn struck through.
	Available bool
}

// StartMenuOverlay is the taskbar start menu.
type StartMenuOverlay struct {
	Dismissed bool
	Selected  string // Action of the picked entry
	title     string
	options   []MenuOption
	cursor    int
	width     int
}

// optionsTop is the row of the first entry inside the rendered menu: border,
// padding, title and a blank line.
const optionsTop = 4

// NewStartMenuOverlay creates a start menu with the cursor on the first
// available entry.
func NewStartMenuOverlay(title string, options []MenuOption) *StartMenuOverlay {
	m := &StartMenuOverlay{
		title:   title,
		options: options,
		width:   32,
		cursor:  -1,
	}
	m.moveCursor(1)
	return m
}

// HandleKeyPress processes a key press and updates the state. It reports
// whether the menu should close.
func (m *StartMenuOverlay) HandleKeyPress(msg tea.KeyMsg) bool {
	switch msg.String() {
	case "up", "k":
		m.moveCursor(-1)
		return false
	case "down", "j", "tab":
		m.moveCursor(1)
		return false
	case "enter":
		return m.pick(m.cursor)
	case "esc", " ":
		m.Dismissed = true
		return true
	default:
		return false
	}
}

// HandleClick picks the entry on row y of the rendered menu. Clicks on
// anything else are ignored.
func (m *StartMenuOverlay) HandleClick(y int) bool {
	return m.pick(y - optionsTop)
}

func (m *StartMenuOverlay) pick(i int) bool {
	if i < 0 || i >= len(m.options) || !m.options[i].Available {
		return false
	}
	m.cursor = i
	m.Selected = m.options[i].Action
	m.Dismissed = true
	return true
}

// moveCursor moves the cursor up or down, skipping unavailable options
func (m *StartMenuOverlay) moveCursor(delta int) {
	if len(m.options) == 0 {
		return
	}
	newCursor := m.cursor
	for attempts := 0; attempts < len(m.options); attempts++ {
		newCursor += delta
		if newCursor < 0 {
			newCursor = len(m.options) - 1
		} else if newCursor >= len(m.options) {
			newCursor = 0
		}
		if m.options[newCursor].Available {
			m.cursor = newCursor
			return
		}
	}
}

// Render renders the start menu
func (m *StartMenuOverlay) Render(opts ...WhitespaceOption) string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(ui.Gold)

	selectedStyle := lipgloss.NewStyle().
		Foreground(ui.Gold).
		Bold(true)

	normalStyle := ui.TextStyles.Primary

	unavailableStyle := lipgloss.NewStyle().
		Foreground(ui.TextMuted).
		Strikethrough(true)

	var content strings.Builder
	content.WriteString(titleStyle.Render(m.title))
	content.WriteString("\n\n")

	for i, opt := range m.options {
		prefix := "  "
		nameStyle := normalStyle
		switch {
		case !opt.Available:
			nameStyle = unavailableStyle
		case i == m.cursor:
			prefix = ui.IconCursor + " "
			nameStyle = selectedStyle
		}
		content.WriteString(prefix)
		content.WriteString(nameStyle.Render(opt.Name))
		if opt.Hint != "" {
			content.WriteString(" ")
			content.WriteString(ui.TextStyles.Muted.Render(opt.Hint))
		}
		if i != len(m.options)-1 {
			content.WriteString("\n")
		}
	}

	borderStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ui.BorderFocus).
		Padding(1, 2).
		Width(m.width)

	return borderStyle.Render(content.String())
}

// SetWidth sets the width of the overlay
func (m *StartMenuOverlay) SetWidth(width int) {
	m.width = width
}

// GetSelected returns the picked action
func (m *StartMenuOverlay) GetSelected() string {
	return m.Selected
}
