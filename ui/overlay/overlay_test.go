package overlay

import (
	"strings"
	"testing"

	"distortion-os/testing/snapshot"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dots(width, height int) string {
	lines := make([]string, height)
	for i := range lines {
		lines[i] = strings.Repeat(".", width)
	}
	return strings.Join(lines, "\n")
}

func TestPlaceOverlay(t *testing.T) {
	tests := []struct {
		name   string
		x, y   int
		fg     string
		center bool
		want   string
	}{
		{name: "inside", x: 1, y: 1, fg: "ab", want: ".....\n.ab..\n....."},
		{name: "hangs off the left", x: -1, y: 0, fg: "abc", want: "bc...\n.....\n....."},
		{name: "hangs off the right", x: 4, y: 0, fg: "abc", want: "....a\n.....\n....."},
		{name: "hangs off the top", x: 0, y: -1, fg: "ab\ncd", want: "cd...\n.....\n....."},
		{name: "hangs off the bottom", x: 3, y: 2, fg: "ab\ncd", want: ".....\n.....\n...ab"},
		{name: "fully outside", x: 9, y: 0, fg: "ab", want: ".....\n.....\n....."},
		{name: "centered", fg: "x", center: true, want: ".....\n..x..\n....."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PlaceOverlay(tt.x, tt.y, tt.fg, dots(5, 3), false, tt.center)
			assert.Equal(t, tt.want, snapshot.StripANSI(got))
		})
	}
}

func TestPlaceOverlaySplitsWideRunes(t *testing.T) {
	got := PlaceOverlay(-1, 0, "漢a", dots(4, 1), false, false)
	assert.Equal(t, " a..", snapshot.StripANSI(got))
}

func TestPlaceOverlayKeepsBackgroundStyles(t *testing.T) {
	bg := "\x1b[31m.....\x1b[0m"
	got := PlaceOverlay(1, 0, "ab", bg, false, false)
	assert.Equal(t, ".ab..", snapshot.StripANSI(got))
	assert.True(t, strings.HasPrefix(got, "\x1b[31m."))
}

func TestPlaceOverlayShadow(t *testing.T) {
	got := PlaceOverlay(0, 0, "ab", dots(4, 3), true, false)
	assert.Equal(t, "ab .\n ░░.\n....", snapshot.StripANSI(got))
}

func TestWhitespaceFillsShortBackground(t *testing.T) {
	bg := "..\n....."
	got := PlaceOverlay(3, 0, "x", bg, false, false, WithWhitespaceChars("~"))
	assert.Equal(t, "..~x\n.....", snapshot.StripANSI(got))
}

func TestLoadingOverlayReveal(t *testing.T) {
	s := spinner.New()
	l := NewLoadingOverlay("BOOT", []BootLine{{Text: "> ONE"}, {Text: "> TWO", Success: true}}, &s)

	view := snapshot.StripANSI(l.Render())
	assert.NotContains(t, view, "> ONE")

	require.True(t, l.Reveal())
	view = snapshot.StripANSI(l.Render())
	assert.Contains(t, view, "> ONE")
	assert.NotContains(t, view, "> TWO")

	require.True(t, l.Reveal())
	assert.True(t, l.Done())
	assert.False(t, l.Reveal())
	assert.Equal(t, 2, l.Shown())
	assert.Contains(t, snapshot.StripANSI(l.Render()), "> TWO")
}

func TestLoadingOverlayKeepsItsHeight(t *testing.T) {
	l := NewLoadingOverlay("BOOT", []BootLine{{Text: "a"}, {Text: "b"}, {Text: "c"}}, nil)
	before := snapshot.Lines(l.Render())
	l.Reveal()
	assert.Equal(t, before, snapshot.Lines(l.Render()))
}

func testMenu() *StartMenuOverlay {
	return NewStartMenuOverlay("START", []MenuOption{
		{Action: "a", Name: "Alpha", Available: true},
		{Action: "b", Name: "Beta", Available: false},
		{Action: "c", Name: "Gamma", Available: true},
	})
}

func TestStartMenuSkipsUnavailable(t *testing.T) {
	m := testMenu()
	assert.False(t, m.HandleKeyPress(tea.KeyMsg{Type: tea.KeyDown}))
	assert.True(t, m.HandleKeyPress(tea.KeyMsg{Type: tea.KeyEnter}))
	assert.Equal(t, "c", m.GetSelected())
}

func TestStartMenuWraps(t *testing.T) {
	m := testMenu()
	m.HandleKeyPress(tea.KeyMsg{Type: tea.KeyUp})
	m.HandleKeyPress(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, "c", m.GetSelected(), "up from the first entry wraps to the last")
}

func TestStartMenuEscape(t *testing.T) {
	m := testMenu()
	assert.True(t, m.HandleKeyPress(tea.KeyMsg{Type: tea.KeyEsc}))
	assert.True(t, m.Dismissed)
	assert.Empty(t, m.GetSelected())
}

func TestStartMenuClick(t *testing.T) {
	m := testMenu()
	rows := strings.Split(snapshot.StripANSI(m.Render()), "\n")
	require.Greater(t, len(rows), optionsTop+2)
	assert.Contains(t, rows[optionsTop], "Alpha")
	assert.Contains(t, rows[optionsTop+2], "Gamma")

	assert.False(t, m.HandleClick(optionsTop+1), "unavailable")
	assert.False(t, m.HandleClick(0), "title")
	assert.True(t, m.HandleClick(optionsTop+2))
	assert.Equal(t, "c", m.GetSelected())
}

func TestToastRender(t *testing.T) {
	view := snapshot.StripANSI(Toast{Title: "SECURITY ALERT", Code: "DEBUGGING_INTERFACE_LOCKED", Alert: true}.Render())
	assert.Contains(t, view, "! SECURITY ALERT")
	assert.Contains(t, view, "DEBUGGING_INTERFACE_LOCKED")
}
