package app

import (
	"strings"
	"time"

	"distortion-os/audio"
	"distortion-os/ui"
	"distortion-os/ui/overlay"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// bootLine is one line of the boot console and when it appears.
type bootLine struct {
	overlay.BootLine
	at time.Duration
}

var bootLines = []bootLine{
	{overlay.BootLine{Text: "> SYSTEM KERNEL ... OK"}, 50 * time.Millisecond},
	{overlay.BootLine{Text: "> LOADING DRIVERS ... OK"}, 150 * time.Millisecond},
	{overlay.BootLine{Text: "> CHECKING MEMORY ... 64TB OK"}, 200 * time.Millisecond},
	{overlay.BootLine{Text: "> ESTABLISHING SECURE CONNECTION..."}, 400 * time.Millisecond},
	{overlay.BootLine{Text: "> ENCRYPTING TRAFFIC ... [AES-4096]"}, 550 * time.Millisecond},
	{overlay.BootLine{Text: "> CONNECTED TO DISTORTION_NET"}, 750 * time.Millisecond},
	{overlay.BootLine{Text: "> ACCESS GRANTED.", Success: true}, 900 * time.Millisecond},
}

func newBootOverlay(title string, s *spinner.Model) *overlay.LoadingOverlay {
	lines := make([]overlay.BootLine, len(bootLines))
	for i, l := range bootLines {
		lines[i] = l.BootLine
	}
	return overlay.NewLoadingOverlay(title, lines, s)
}

// bootCmds schedules every boot line and the failsafe.
func bootCmds() tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(bootLines)+1)
	for i, l := range bootLines {
		cmds = append(cmds, after(l.at, bootLineMsg{index: i}))
	}
	cmds = append(cmds, after(bootFailsafe, showLoginMsg{}))
	return tea.Batch(cmds...)
}

func (m *home) handleBootLine(msg bootLineMsg) tea.Cmd {
	if m.screen != screenBoot {
		return nil
	}
	for m.boot.Shown() <= msg.index {
		if !m.boot.Reveal() {
			break
		}
	}
	m.sound.Play(audio.Click)
	if msg.index == len(bootLines)-1 {
		return after(bootToLogin, showLoginMsg{})
	}
	return nil
}

// showLogin leaves the boot console. The failsafe and the regular path both
// end up here; only the first one counts.
func (m *home) showLogin() tea.Cmd {
	if m.screen != screenBoot {
		return nil
	}
	m.screen = screenLogin
	m.menu.SetState(ui.StateLogin)
	return tea.Batch(m.login.input.Focus(), after(autoLoginInterval, autoLoginTickMsg{}))
}

type loginPhase int

const (
	loginIdle loginPhase = iota
	// loginTyping is the auto login typing the access code.
	loginTyping
	loginVerifying
	loginGranted
	loginDone
)

// login is the state of the login screen.
type login struct {
	input    textinput.Model
	progress progress.Model
	phase    loginPhase
	// elapsed is how long the auto login timer has run.
	elapsed time.Duration
	typed   int
}

func newLogin(placeholder string) login {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.EchoMode = textinput.EchoPassword
	ti.EchoCharacter = '•'
	ti.CharLimit = 32
	ti.Width = 24
	ti.Prompt = "> "

	bar := progress.New(progress.WithSolidFill(string(ui.GoldDim.Dark)), progress.WithoutPercentage())
	bar.Width = 28
	return login{input: ti, progress: bar}
}

// busy reports whether a login is under way, so more attempts are ignored.
func (l *login) busy() bool {
	return l.phase >= loginVerifying
}

func (m *home) handleAutoLoginTick() tea.Cmd {
	if m.screen != screenLogin || m.login.phase != loginIdle {
		return nil
	}
	m.login.elapsed += autoLoginInterval
	if m.login.elapsed < m.appConfig.AutoLoginDelay() {
		return after(autoLoginInterval, autoLoginTickMsg{})
	}
	if m.login.input.Value() != "" {
		// somebody is typing, leave it to them
		return nil
	}
	m.login.phase = loginTyping
	return after(typeInterval, typeCodeMsg{})
}

func (m *home) handleTypeCode() tea.Cmd {
	if m.login.phase != loginTyping {
		return nil
	}
	code := []rune(m.appConfig.AccessCode)
	if m.login.typed < len(code) {
		m.login.input.SetValue(m.login.input.Value() + string(code[m.login.typed]))
		m.login.typed++
		return after(typeInterval, typeCodeMsg{})
	}
	return after(typedToSubmit, submitLoginMsg{})
}

// submitLogin starts the login sequence: verifying, granted, desktop.
func (m *home) submitLogin() tea.Cmd {
	if m.screen != screenLogin || m.login.busy() {
		return nil
	}
	m.login.phase = loginVerifying
	m.login.input.Blur()
	m.sound.Play(audio.Login)
	return after(verifyDelay, loginStepMsg{phase: loginGranted})
}

func (m *home) handleLoginStep(msg loginStepMsg) tea.Cmd {
	switch msg.phase {
	case loginGranted:
		m.login.phase = loginGranted
		return after(grantedDelay, loginStepMsg{phase: loginDone})
	case loginDone:
		m.login.phase = loginDone
		m.screen = screenDesktop
		m.syncMenu()
		return tea.Batch(
			after(desktopOpenDelay, openWindowMsg{id: winOverview}),
			after(assistantDelay, assistantOpenMsg{}),
		)
	}
	return nil
}

// renderLogin draws the login box.
func (m *home) renderLogin() string {
	title := ui.TextStyles.Accent.Render(m.tr.T("login_title"))

	var status string
	switch m.login.phase {
	case loginVerifying:
		status = ui.TextStyles.Secondary.Render(m.tr.T("login_verifying"))
	case loginGranted, loginDone:
		status = ui.TextStyles.Terminal.Render(m.tr.T("access_granted"))
	default:
		percent := float64(m.login.elapsed) / float64(max(m.appConfig.AutoLoginDelay(), time.Millisecond))
		status = ui.TextStyles.Muted.Render(m.tr.T("login_auto")) + "\n" + m.login.progress.ViewAs(min(percent, 1))
	}

	body := strings.Join([]string{
		title,
		"",
		m.login.input.View(),
		"",
		status,
	}, "\n")
	return ui.OverlayStyle().Width(34).Align(lipgloss.Left).Render(body)
}
