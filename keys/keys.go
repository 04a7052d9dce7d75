package keys

import (
	"github.com/charmbracelet/bubbles/key"
)

type KeyName int

const (
	KeyUp KeyName = iota
	KeyDown
	KeyLeft
	KeyRight
	KeyEnter
	KeyEsc

	KeyCycle
	KeyClose
	KeyMinimize
	KeyMaximize
	KeyShowDesktop
	KeyResetLayout

	KeyOpenOverview
	KeyOpenEmployees
	KeyOpenArchive
	KeyOpenShop
	KeyOpenComm

	KeySort
	KeySearch
	KeyZoomIn
	KeyZoomOut
	KeyResetView
	KeyCopyLink
	KeyBriefPrev
	KeyBriefNext

	KeyStart
	KeyLanguage
	KeyToggleMobile
	KeyScale
	KeyAssistantNext
	KeySecurity

	KeyQuit
)

// GlobalKeyStringsMap is a global, immutable map string to keybinding.
var GlobalKeyStringsMap = map[string]KeyName{
	"up":     KeyUp,
	"k":      KeyUp,
	"down":   KeyDown,
	"j":      KeyDown,
	"left":   KeyLeft,
	"h":      KeyLeft,
	"right":  KeyRight,
	"l":      KeyRight,
	"enter":  KeyEnter,
	"esc":    KeyEsc,
	"tab":    KeyCycle,
	"x":      KeyClose,
	"m":      KeyMinimize,
	"f":      KeyMaximize,
	"d":      KeyShowDesktop,
	"R":      KeyResetLayout,
	"1":      KeyOpenOverview,
	"2":      KeyOpenEmployees,
	"3":      KeyOpenArchive,
	"4":      KeyOpenShop,
	"5":      KeyOpenComm,
	"s":      KeySort,
	"/":      KeySearch,
	"+":      KeyZoomIn,
	"=":      KeyZoomIn,
	"-":      KeyZoomOut,
	"0":      KeyResetView,
	"c":      KeyCopyLink,
	"[":      KeyBriefPrev,
	"]":      KeyBriefNext,
	" ":      KeyStart,
	"g":      KeyLanguage,
	"M":      KeyToggleMobile,
	"z":      KeyScale,
	"n":      KeyAssistantNext,
	"f12":    KeySecurity,
	"ctrl+u": KeySecurity,
	"q":      KeyQuit,
	"ctrl+c": KeyQuit,
}

// GlobalkeyBindings is a global, immutable map of KeyName to keybinding.
var GlobalkeyBindings = map[KeyName]key.Binding{
	KeyUp: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	KeyDown: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	KeyLeft: key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("←/h", "left"),
	),
	KeyRight: key.NewBinding(
		key.WithKeys("right", "l"),
		key.WithHelp("→/l", "right"),
	),
	KeyEnter: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("↵", "select"),
	),
	KeyEsc: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "back"),
	),
	KeyCycle: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "next window"),
	),
	KeyClose: key.NewBinding(
		key.WithKeys("x"),
		key.WithHelp("x", "close"),
	),
	KeyMinimize: key.NewBinding(
		key.WithKeys("m"),
		key.WithHelp("m", "minimize"),
	),
	KeyMaximize: key.NewBinding(
		key.WithKeys("f"),
		key.WithHelp("f", "maximize"),
	),
	KeyShowDesktop: key.NewBinding(
		key.WithKeys("d"),
		key.WithHelp("d", "desktop"),
	),
	KeyResetLayout: key.NewBinding(
		key.WithKeys("R"),
		key.WithHelp("R", "reset layout"),
	),
	KeyOpenOverview: key.NewBinding(
		key.WithKeys("1"),
		key.WithHelp("1", "brief"),
	),
	KeyOpenEmployees: key.NewBinding(
		key.WithKeys("2"),
		key.WithHelp("2", "roster"),
	),
	KeyOpenArchive: key.NewBinding(
		key.WithKeys("3"),
		key.WithHelp("3", "archive"),
	),
	KeyOpenShop: key.NewBinding(
		key.WithKeys("4"),
		key.WithHelp("4", "depot"),
	),
	KeyOpenComm: key.NewBinding(
		key.WithKeys("5"),
		key.WithHelp("5", "comm"),
	),
	KeySort: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "sort"),
	),
	KeySearch: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "search"),
	),
	KeyZoomIn: key.NewBinding(
		key.WithKeys("+", "="),
		key.WithHelp("+", "zoom in"),
	),
	KeyZoomOut: key.NewBinding(
		key.WithKeys("-"),
		key.WithHelp("-", "zoom out"),
	),
	KeyResetView: key.NewBinding(
		key.WithKeys("0"),
		key.WithHelp("0", "reset view"),
	),
	KeyCopyLink: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "copy link"),
	),
	KeyBriefPrev: key.NewBinding(
		key.WithKeys("["),
		key.WithHelp("[", "prev fig"),
	),
	KeyBriefNext: key.NewBinding(
		key.WithKeys("]"),
		key.WithHelp("]", "next fig"),
	),
	KeyStart: key.NewBinding(
		key.WithKeys(" "),
		key.WithHelp("space", "start"),
	),
	KeyLanguage: key.NewBinding(
		key.WithKeys("g"),
		key.WithHelp("g", "language"),
	),
	KeyToggleMobile: key.NewBinding(
		key.WithKeys("M"),
		key.WithHelp("M", "mobile"),
	),
	KeyScale: key.NewBinding(
		key.WithKeys("z"),
		key.WithHelp("z", "ui scale"),
	),
	KeyAssistantNext: key.NewBinding(
		key.WithKeys("n"),
		key.WithHelp("n", "next tip"),
	),
	KeySecurity: key.NewBinding(
		key.WithKeys("f12", "ctrl+u"),
		key.WithHelp("f12", "devtools"),
	),
	KeyQuit: key.NewBinding(
		key.WithKeys("ctrl+c", "q"),
		key.WithHelp("q", "quit"),
	),
}
