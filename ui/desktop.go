package ui

import (
	"fmt"
	"strings"

	"distortion-os/ui/layout"
	"distortion-os/wm"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"
)

// Rendered is a piece of desktop chrome together with its clickable areas,
// relative to its own top-left corner.
type Rendered struct {
	View    string
	buttons []button
}

// Click returns the action under p.
func (r Rendered) Click(p wm.Point) Action {
	return hit(r.buttons, p)
}

// TopBar is the state the top bar shows.
type TopBar struct {
	Brand   string
	Lang    string
	Mobile  bool
	Large   bool
	Latency int
	Hash    string
	Clock   string
}

// RenderTopBar draws the top bar across width cells. Labels come from T.
func RenderTopBar(bar TopBar, width int, d layout.Degradation, T func(string) string) Rendered {
	brand := TextStyles.Accent.Render(" ◆ " + bar.Brand + " ")
	x := lipgloss.Width(brand)

	labels := []string{bar.Lang}
	actions := []Action{{Kind: ActionLanguage}}
	if !d.HideSettings {
		// the mode button names the current mode, the scale button the other scale
		mode := T("ui_mode_desktop")
		if bar.Mobile {
			mode = T("ui_mode_mobile")
		}
		scale := T("btn_scale_large")
		if bar.Large {
			scale = T("btn_scale_normal")
		}
		labels = append(labels, mode, scale, T("btn_reset_layout"))
		actions = append(actions, Action{Kind: ActionToggleMobile}, Action{Kind: ActionScale}, Action{Kind: ActionResetLayout})
	}
	row, buttons := buttonRow(0, labels, actions, nil)
	for i := range buttons {
		buttons[i].rect.X += x
	}

	var right []string
	if !d.HideLatency {
		right = append(right, fmt.Sprintf("%s %dms", T("latency"), bar.Latency))
	}
	if !d.HideHash {
		right = append(right, T("encryption")+" "+bar.Hash)
	}
	right = append(right, bar.Clock)
	telemetry := TextStyles.Terminal.Render(strings.Join(right, " │ ") + " ")

	left := brand + row
	gap := width - lipgloss.Width(left) - lipgloss.Width(telemetry)
	if gap < 1 {
		return Rendered{View: BarStyle.Render(FitLine(left, width)), buttons: buttons}
	}
	return Rendered{
		View:    BarStyle.Render(left + strings.Repeat(" ", gap) + telemetry),
		buttons: buttons,
	}
}

// Task is one taskbar button.
type Task struct {
	ID        string
	Title     string
	Active    bool
	Minimized bool
}

// Taskbar is the state the taskbar shows.
type Taskbar struct {
	Start   string
	Desktop string
	Tasks   []Task
	// Hints is the rendered key hint menu, drawn at the right when it fits.
	Hints string
}

// shortTitleWidth is the label width of task buttons in the short taskbar.
const shortTitleWidth = 4

// RenderTaskbar draws the taskbar across width cells.
func RenderTaskbar(bar Taskbar, width int, d layout.Degradation) Rendered {
	labels := []string{"▶ " + bar.Start}
	actions := []Action{{Kind: ActionStart}}
	active := []bool{false}
	for _, t := range bar.Tasks {
		title := t.Title
		if d.ShortTaskbar {
			title = truncate.String(title, shortTitleWidth)
		}
		if t.Minimized {
			title = IconMinimize + title
		}
		labels = append(labels, title)
		actions = append(actions, Action{Kind: ActionOpenWindow, ID: t.ID})
		active = append(active, t.Active)
	}
	labels = append(labels, bar.Desktop)
	actions = append(actions, Action{Kind: ActionShowDesktop})
	active = append(active, false)

	row, buttons := buttonRow(0, labels, actions, active)
	if !d.HideMenuHints && bar.Hints != "" {
		if gap := width - lipgloss.Width(row) - lipgloss.Width(bar.Hints); gap >= 2 {
			row += strings.Repeat(" ", gap) + bar.Hints
		}
	}
	return Rendered{View: BarStyle.Render(FitLine(row, width)), buttons: buttons}
}

// DesktopIcon is a shortcut on the desktop that opens a window.
type DesktopIcon struct {
	ID    string
	Label string
}

// RenderIcons draws the icon column, at most height rows.
func RenderIcons(icons []DesktopIcon, height int) Rendered {
	var (
		lines   []string
		buttons []button
	)
	inner := layout.IconColumnWidth - 1
	for i, icon := range icons {
		y := i * layout.IconHeight
		if y >= height {
			break
		}
		label := FitLine(IconFolder+" "+icon.Label, inner)
		lines = append(lines, TextStyles.Accent.Render(label), "")
		buttons = append(buttons, button{
			rect:   wm.Rect{X: 0, Y: y, Width: inner, Height: 1},
			action: Action{Kind: ActionOpenWindow, ID: icon.ID},
		})
	}
	return Rendered{View: strings.Join(lines, "\n"), buttons: buttons}
}

// avatar is the assistant's face.
var avatar = []string{
	` /\_/\ `,
	`( o.o )`,
	` > ^ < `,
}

// AvatarSize is the size of the assistant avatar with its name row.
var AvatarSize = wm.Size{Width: lipgloss.Width(avatar[0]), Height: len(avatar) + 1}

// bubbleWidth is the width of the speech bubble, border included.
const bubbleWidth = 36

// Assistant is the state of the office cat.
type Assistant struct {
	Name   string
	Bubble string
	// Controls shows the tutorial buttons under the text.
	Controls bool
	Next     string
	Skip     string
}

// AssistantLayout is the rendered assistant. Avatar is where the avatar
// sits inside View, for hit testing drags.
type AssistantLayout struct {
	Rendered
	Avatar wm.Rect
}

// RenderAssistant draws the speech bubble, when there is text, above the
// avatar. The avatar sits at the bottom right of the block.
func RenderAssistant(a Assistant) AssistantLayout {
	face := make([]string, 0, AvatarSize.Height)
	for _, l := range avatar {
		face = append(face, TextStyles.Accent.Render(l))
	}
	face = append(face, TextStyles.Muted.Render(FitLine(a.Name, AvatarSize.Width)))
	faceBlock := strings.Join(face, "\n")

	if a.Bubble == "" {
		return AssistantLayout{
			Rendered: Rendered{View: faceBlock},
			Avatar:   wm.Rect{Width: AvatarSize.Width, Height: AvatarSize.Height},
		}
	}

	inner := bubbleWidth - 4
	text := wordwrap.String(a.Bubble, inner)
	var buttons []button
	if a.Controls {
		row, bs := buttonRow(0, []string{a.Next, a.Skip},
			[]Action{{Kind: ActionAssistantNext}, {Kind: ActionAssistantSkip}}, []bool{true, false})
		// buttons sit on the last text row inside the border and padding
		y := strings.Count(text, "\n") + 3
		for i := range bs {
			bs[i].rect.X += 2
			bs[i].rect.Y = y
		}
		buttons = bs
		text += "\n\n" + row
	}
	bubble := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(GoldDim).
		Padding(0, 1).
		Width(bubbleWidth - 2).
		Render(TextStyles.Primary.Render(text))

	bw := lipgloss.Width(bubble)
	block := lipgloss.JoinVertical(lipgloss.Right, bubble, faceBlock)
	width := max(bw, AvatarSize.Width)
	return AssistantLayout{
		Rendered: Rendered{View: block, buttons: buttons},
		Avatar: wm.Rect{
			X:      width - AvatarSize.Width,
			Y:      lipgloss.Height(bubble),
			Width:  AvatarSize.Width,
			Height: AvatarSize.Height,
		},
	}
}
