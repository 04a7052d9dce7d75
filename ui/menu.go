package ui

import (
	"strings"

	"distortion-os/keys"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

var keyStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{
	Light: "#655F5F",
	Dark:  "#7F7A7A",
})

var descStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{
	Light: "#7A7474",
	Dark:  "#9C9494",
})

var sepStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{
	Light: "#DDDADA",
	Dark:  "#3C3C3C",
})

var actionGroupStyle = lipgloss.NewStyle().Foreground(Gold)

var separator = " • "
var verticalSeparator = " │ "

// MenuState selects which key hints the menu shows.
type MenuState int

const (
	StateLogin MenuState = iota
	StateDesktop
	StateWindow
	StateOverview
	StateArchive
	StateSearch
	StateSelector
	StateViewer
)

// Menu is the row of key hints at the right of the taskbar. The first group
// is the context group and is drawn in the accent color.
type Menu struct {
	groups [][]keys.KeyName
	width  int
	state  MenuState

	// keyDown is the key which is pressed. The default is -1.
	keyDown keys.KeyName
}

var windowGroup = []keys.KeyName{keys.KeyCycle, keys.KeyMinimize, keys.KeyMaximize, keys.KeyClose}
var systemGroup = []keys.KeyName{keys.KeyStart, keys.KeyLanguage, keys.KeyQuit}

var menuGroups = map[MenuState][][]keys.KeyName{
	StateLogin:    {{keys.KeyEnter}},
	StateDesktop:  {{keys.KeyOpenOverview, keys.KeyOpenArchive, keys.KeyShowDesktop}, systemGroup},
	StateWindow:   {windowGroup, systemGroup},
	StateOverview: {{keys.KeyBriefPrev, keys.KeyBriefNext}, windowGroup, systemGroup},
	StateArchive:  {{keys.KeySort, keys.KeySearch, keys.KeyEnter}, windowGroup, systemGroup},
	StateSearch:   {{keys.KeyEnter, keys.KeyEsc}},
	StateSelector: {{keys.KeyUp, keys.KeyDown, keys.KeyEnter}, windowGroup, systemGroup},
	StateViewer:   {{keys.KeyZoomIn, keys.KeyZoomOut, keys.KeyResetView, keys.KeyCopyLink}, windowGroup, systemGroup},
}

func NewMenu() *Menu {
	m := &Menu{keyDown: -1}
	m.SetState(StateLogin)
	return m
}

func (m *Menu) Keydown(name keys.KeyName) {
	m.keyDown = name
}

func (m *Menu) ClearKeydown() {
	m.keyDown = -1
}

// SetState updates the menu state and options accordingly
func (m *Menu) SetState(state MenuState) {
	m.state = state
	m.groups = menuGroups[state]
}

// State returns the current menu state.
func (m *Menu) State() MenuState {
	return m.state
}

// SetWidth sets how many cells the menu may use. Hints that do not fit are cut.
func (m *Menu) SetWidth(width int) {
	m.width = width
}

func (m *Menu) String() string {
	var s strings.Builder
	for g, group := range m.groups {
		for i, k := range group {
			binding := keys.GlobalkeyBindings[k]

			var (
				localKeyStyle  = keyStyle
				localDescStyle = descStyle
			)
			if g == 0 {
				localKeyStyle = actionGroupStyle
				localDescStyle = actionGroupStyle
			}
			if m.keyDown == k {
				localKeyStyle = localKeyStyle.Underline(true)
				localDescStyle = localDescStyle.Underline(true)
			}

			s.WriteString(localKeyStyle.Render(binding.Help().Key))
			s.WriteString(" ")
			s.WriteString(localDescStyle.Render(binding.Help().Desc))

			if i != len(group)-1 {
				s.WriteString(sepStyle.Render(separator))
			}
		}
		if g != len(m.groups)-1 {
			s.WriteString(sepStyle.Render(verticalSeparator))
		}
	}
	if m.width <= 0 {
		return s.String()
	}
	return truncate.StringWithTail(s.String(), uint(m.width), "…")
}
