package overlay

import (
	"strings"

	"distortion-os/ui"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/lipgloss"
)

// BootLine is one line of the boot console.
type BootLine struct {
	Text string
	// Success lines are drawn in terminal green.
	Success bool
}

// LoadingOverlay is the boot console: a spinner above the log lines revealed
// so far.
type LoadingOverlay struct {
	// Title displayed at the top
	title string
	// lines are every line the console will show, shown is how many are out.
	lines []BootLine
	shown int
	// Spinner for the loading animation
	spinner *spinner.Model

	width int
}

// NewLoadingOverlay creates a boot console that will print lines.
func NewLoadingOverlay(title string, lines []BootLine, spinner *spinner.Model) *LoadingOverlay {
	return &LoadingOverlay{
		title:   title,
		lines:   lines,
		spinner: spinner,
		width:   48,
	}
}

// Reveal shows the next line. It reports false once every line is out.
func (l *LoadingOverlay) Reveal() bool {
	if l.shown >= len(l.lines) {
		return false
	}
	l.shown++
	return true
}

// Shown returns how many lines are visible.
func (l *LoadingOverlay) Shown() int {
	return l.shown
}

// Done reports whether every line is visible.
func (l *LoadingOverlay) Done() bool {
	return l.shown >= len(l.lines)
}

// SetWidth sets the overlay width
func (l *LoadingOverlay) SetWidth(width int) {
	l.width = width
}

// Render renders the loading overlay
func (l *LoadingOverlay) Render(opts ...WhitespaceOption) string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(ui.Gold)

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ui.GoldDim).
		Padding(1, 2).
		Width(l.width)

	var content strings.Builder
	content.WriteString(titleStyle.Render(l.title))
	if l.spinner != nil && !l.Done() {
		content.WriteString(" ")
		content.WriteString(l.spinner.View())
	}
	content.WriteString("\n")
	for _, line := range l.lines[:l.shown] {
		content.WriteString("\n")
		if line.Success {
			content.WriteString(ui.TextStyles.Terminal.Bold(true).Render(line.Text))
		} else {
			content.WriteString(ui.TextStyles.Terminal.Render(line.Text))
		}
	}
	// Keep the box from growing while lines appear.
	for i := l.shown; i < len(l.lines); i++ {
		content.WriteString("\n")
	}

	return boxStyle.Render(content.String())
}
