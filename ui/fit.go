package ui

import (
	"strings"

	"github.com/muesli/ansi"
	"github.com/muesli/reflow/truncate"
)

// Fit cuts or pads s to exactly width x height cells. Long lines are cut,
// short ones padded with spaces, extra lines dropped.
func Fit(s string, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	lines := strings.Split(s, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	for i, line := range lines {
		lines[i] = FitLine(line, width)
	}
	return strings.Join(lines, "\n")
}

// FitLine cuts or pads one line to width cells.
func FitLine(line string, width int) string {
	if width <= 0 {
		return ""
	}
	if ansi.PrintableRuneWidth(line) > width {
		line = truncate.StringWithTail(line, uint(width), "")
	}
	if pad := width - ansi.PrintableRuneWidth(line); pad > 0 {
		line += strings.Repeat(" ", pad)
	}
	return line
}

// Blank is a width x height block of spaces.
func Blank(width, height int) string {
	return Fit("", width, height)
}
