package app

import (
	"time"

	"distortion-os/config"
	"distortion-os/wm"

	tea "github.com/charmbracelet/bubbletea"
)

// Every deferred effect of the desktop is a message delivered back to Update
// by a tea command. Nothing mutates the model from another goroutine.

// transitionMsg completes a window phase change scheduled by the manager.
type transitionMsg wm.Transition

// bootLineMsg reveals boot console line index.
type bootLineMsg struct{ index int }

// showLoginMsg replaces the boot console with the login screen.
type showLoginMsg struct{}

// clockTickMsg refreshes the clock, the telemetry and the countdowns.
type clockTickMsg time.Time

// autoLoginTickMsg advances the auto login progress bar.
type autoLoginTickMsg struct{}

// typeCodeMsg types the next character of the access code.
type typeCodeMsg struct{}

// submitLoginMsg logs in with whatever is in the input.
type submitLoginMsg struct{}

// loginStepMsg moves the login sequence to its next phase.
type loginStepMsg struct{ phase loginPhase }

// openWindowMsg opens a window after a delay.
type openWindowMsg struct{ id string }

// assistantOpenMsg shows the assistant and starts the tour.
type assistantOpenMsg struct{}

// chatterTickMsg is the assistant's idle chatter timer.
type chatterTickMsg struct{}

// hideBubbleMsg hides the speech bubble it was scheduled for.
type hideBubbleMsg struct{ seq int }

// hideToastMsg removes toast id.
type hideToastMsg struct{ id int }

// copiedResetMsg puts the viewer copy button back to its normal label.
type copiedResetMsg struct{}

// configReloadedMsg carries a configuration reloaded from disk.
type configReloadedMsg struct{ cfg *config.Config }

// keyupMsg clears the key highlight of the menu.
type keyupMsg struct{}

const (
	// bootToLogin is the pause between the last boot line and the login screen.
	bootToLogin = 400 * time.Millisecond
	// bootFailsafe forces the login screen if the boot console stalls.
	bootFailsafe = 5 * time.Second

	clockInterval     = time.Second
	autoLoginInterval = 100 * time.Millisecond
	typeInterval      = 20 * time.Millisecond
	typedToSubmit     = 100 * time.Millisecond

	verifyDelay  = 300 * time.Millisecond
	grantedDelay = 400 * time.Millisecond
	// desktopOpenDelay includes the pause for the login screen to go away.
	desktopOpenDelay = 100*time.Millisecond + 300*time.Millisecond
	assistantDelay   = 100*time.Millisecond + 2*time.Second

	tutorialStepDelay = 300 * time.Millisecond
	chatterInterval   = 20 * time.Second
	chatterLinger     = 4 * time.Second
	chatterChance     = 50

	toastDuration  = 3 * time.Second
	copiedDuration = 2 * time.Second
	keyupDelay     = 500 * time.Millisecond
)

// after delivers msg once d has elapsed.
func after(d time.Duration, msg tea.Msg) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return msg })
}

// tickClock schedules the next clock tick on the next whole second.
func tickClock() tea.Cmd {
	return tea.Every(clockInterval, func(t time.Time) tea.Msg { return clockTickMsg(t) })
}

// drainTransitions turns the transitions the window manager asked for since
// the last update into timers.
func (m *home) drainTransitions() tea.Cmd {
	pending := m.queue.Drain()
	if len(pending) == 0 {
		return nil
	}
	cmds := make([]tea.Cmd, 0, len(pending))
	for _, t := range pending {
		cmds = append(cmds, after(t.After, transitionMsg(t)))
	}
	return tea.Batch(cmds...)
}

// keydownCallback clears the menu option highlighting after 500ms.
func (m *home) keydownCallback() tea.Cmd {
	return func() tea.Msg {
		select {
		case <-m.ctx.Done():
		case <-time.After(keyupDelay):
		}
		return keyupMsg{}
	}
}
