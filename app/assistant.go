package app

import (
	"distortion-os/ambient"
	"distortion-os/audio"
	"distortion-os/log"
	"distortion-os/ui"
	"distortion-os/ui/layout"
	"distortion-os/wm"

	tea "github.com/charmbracelet/bubbletea"
)

// tour is the window each tutorial step shows. Steps without a window keep
// whatever is open.
var tour = []string{"", winOverview, winEmployees, winArchive, winShop, winComm}

// assistant is the state of the office cat.
type assistant struct {
	visible bool
	// touring is set while the tutorial controls are shown.
	touring bool
	step    int
	// chat is the idle line in the bubble, empty when hidden.
	chat      string
	bubbleSeq int
	chatter   bool

	// pos is where the avatar sits once dragged. Nil means the default
	// corner.
	pos  *wm.Point
	drag *assistantDrag
}

type assistantDrag struct {
	start  wm.Point
	origin wm.Point
	moved  bool
}

// openAssistant shows the cat next to the overview and starts the tour,
// unless a previous session finished it.
func (m *home) openAssistant() tea.Cmd {
	m.assistant.visible = true
	m.wm.Open(winOverview)
	m.syncMenu()
	if m.appState.GetTutorialComplete() {
		return m.startChatter()
	}
	m.assistant.touring = true
	m.assistant.step = 0
	m.sound.Play(audio.Meow)
	return nil
}

// nextStep advances the tour. Steps that show a window close the previous
// one and open theirs shortly after.
func (m *home) nextStep() tea.Cmd {
	if !m.assistant.touring {
		return nil
	}
	m.sound.Play(audio.Click)
	steps := m.tr.List("assistant_steps")
	if m.assistant.step >= len(steps)-1 {
		return m.finishTutorial()
	}
	m.assistant.step++
	s := m.assistant.step
	if s < 2 || s >= len(tour) {
		return nil
	}
	m.wm.Close(tour[s-1])
	return after(tutorialStepDelay, openWindowMsg{id: tour[s]})
}

// finishTutorial ends the tour for good and lets the cat chatter.
func (m *home) finishTutorial() tea.Cmd {
	if err := m.appState.SetTutorialComplete(true); err != nil {
		log.WarningLog.Printf("could not save tutorial progress: %v", err)
	}
	m.wm.Close(winComm)
	m.assistant.touring = false
	m.assistant.chat = ""
	m.syncMenu()
	return m.startChatter()
}

func (m *home) startChatter() tea.Cmd {
	if m.assistant.chatter {
		return nil
	}
	m.assistant.chatter = true
	return after(chatterInterval, chatterTickMsg{})
}

func (m *home) handleChatterTick() tea.Cmd {
	next := after(chatterInterval, chatterTickMsg{})
	if m.assistant.touring || !ambient.Chance(chatterChance) {
		return next
	}
	return tea.Batch(next, m.say())
}

// say shows a random line with a meow and hides it a few seconds later.
func (m *home) say() tea.Cmd {
	m.sound.Play(audio.Meow)
	if m.assistant.touring {
		return nil
	}
	m.assistant.chat = ambient.Pick(m.tr.List("cat_lines"))
	m.assistant.bubbleSeq++
	return after(chatterLinger, hideBubbleMsg{seq: m.assistant.bubbleSeq})
}

// bubble is the text in the speech bubble.
func (m *home) bubble() string {
	if m.assistant.touring {
		steps := m.tr.List("assistant_steps")
		if m.assistant.step < len(steps) {
			return steps[m.assistant.step]
		}
		return ""
	}
	return m.assistant.chat
}

// assistantLayout renders the assistant and returns where its block goes.
func (m *home) assistantLayout() (ui.AssistantLayout, wm.Point) {
	a := ui.RenderAssistant(ui.Assistant{
		Name:     m.tr.T("assistant_name"),
		Bubble:   m.bubble(),
		Controls: m.assistant.touring,
		Next:     m.tr.T("assistant_next"),
		Skip:     m.tr.T("assistant_skip"),
	})
	avatar := m.avatarPos()
	return a, wm.Point{X: avatar.X - a.Avatar.X, Y: avatar.Y - a.Avatar.Y}
}

// avatarPos is the top-left corner of the avatar on screen.
func (m *home) avatarPos() wm.Point {
	if m.assistant.pos != nil {
		return *m.assistant.pos
	}
	return wm.Point{
		X: m.width - ui.AvatarSize.Width - 1,
		Y: m.height - layout.TaskbarHeight - ui.AvatarSize.Height,
	}
}

// assistantPress handles a press on the assistant block. It reports whether
// the press landed on it.
func (m *home) assistantPress(p wm.Point) (bool, tea.Cmd) {
	if !m.assistant.visible {
		return false, nil
	}
	a, origin := m.assistantLayout()
	local := wm.Point{X: p.X - origin.X, Y: p.Y - origin.Y}
	if a.Avatar.Contains(local) {
		m.sound.Play(audio.Hiss)
		m.assistant.drag = &assistantDrag{start: p, origin: m.avatarPos()}
		return true, nil
	}
	switch a.Click(local).Kind {
	case ui.ActionAssistantNext:
		return true, m.nextStep()
	case ui.ActionAssistantSkip:
		m.sound.Play(audio.Click)
		return true, m.finishTutorial()
	}
	return false, nil
}

// assistantMove drags the avatar, keeping it on screen.
func (m *home) assistantMove(p wm.Point) {
	d := m.assistant.drag
	if d == nil {
		return
	}
	if p != d.start {
		d.moved = true
	}
	pos := wm.Point{
		X: min(max(d.origin.X+p.X-d.start.X, 0), max(m.width-ui.AvatarSize.Width, 0)),
		Y: min(max(d.origin.Y+p.Y-d.start.Y, layout.TopBarHeight), max(m.height-ui.AvatarSize.Height, 0)),
	}
	m.assistant.pos = &pos
}

// assistantRelease ends the drag. A press without motion is a pet.
func (m *home) assistantRelease() tea.Cmd {
	d := m.assistant.drag
	if d == nil {
		return nil
	}
	m.assistant.drag = nil
	if d.moved {
		return nil
	}
	return m.say()
}
