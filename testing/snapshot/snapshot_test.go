package snapshot

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStripANSI(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "plain", input: "DISTORTION OS", expected: "DISTORTION OS"},
		{name: "color", input: "\x1b[38;5;201mSTART\x1b[0m", expected: "START"},
		{name: "cursor", input: "\x1b[?25l▸ select", expected: "▸ select"},
		{name: "hyperlink", input: "\x1b]8;;https://example.com/ren\x1b\\Vex\x1b]8;;\x1b\\", expected: "Vex"},
		{name: "hyperlink bel", input: "\x1b]8;;https://example.com\aVex\x1b]8;;\a", expected: "Vex"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, StripANSI(tt.input))
		})
	}
}

func TestWidthCountsCells(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected int
	}{
		{name: "ascii", input: "START", expected: 5},
		{name: "box drawing", input: "┌────┐\n│    │", expected: 6},
		{name: "wide runes", input: " 愚者 ", expected: 6},
		{name: "colored", input: "\x1b[1m▶ SUPPLY DEPOT\x1b[0m", expected: 14},
		{name: "widest row", input: "ab\nabcd\nabc", expected: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Width(tt.input))
		})
	}
}

func TestLinesAndRow(t *testing.T) {
	screen := "top\n\x1b[31mmiddle\x1b[0m\nbottom"

	assert.Equal(t, 3, Lines(screen))
	assert.Equal(t, "middle", Row(screen, 1))
	assert.Equal(t, "", Row(screen, 3))
	assert.Equal(t, "", Row(screen, -1))
}

func TestRegion(t *testing.T) {
	screen := "┌──────┐\n│ 愚者 │\n└──────┘"

	assert.Equal(t, "愚者", Region(screen, 2, 1, 4, 1))
	assert.Equal(t, "┌─\n│ ", Region(screen, 0, 0, 2, 2))
	// half of a wide rune
	assert.Equal(t, " ", Region(screen, 3, 1, 1, 1))
	assert.Equal(t, "", Region(screen, 0, 5, 3, 1))
}

func TestAssertRegionContains(t *testing.T) {
	screen := "          \n  [SHOP]  \n          "
	New(t).AssertRegionContains(screen, 2, 1, 6, 1, "[SHOP]")
}

func TestNormalizeOutput(t *testing.T) {
	got := normalizeOutput("clock 12:00   \r\n\x1b[35mSTART\x1b[0m\t\n")
	assert.Equal(t, "clock 12:00\nSTART\n", got)
}

func TestGoldenRoundTrip(t *testing.T) {
	dir := t.TempDir()
	screen := "\x1b[1mDISTORTION OS\x1b[0m   \n[ START ]"

	t.Setenv("UPDATE_GOLDEN", "1")
	New(t).WithDir(dir).Assert("desktop", screen)

	data, err := os.ReadFile(filepath.Join(dir, "desktop.golden"))
	require.NoError(t, err)
	assert.Equal(t, "DISTORTION OS\n[ START ]", string(data))

	t.Setenv("UPDATE_GOLDEN", "")
	New(t).WithDir(dir).Assert("desktop", screen)
}
