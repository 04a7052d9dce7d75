// Package snapshot compares rendered desktop screens in tests. Screens are
// measured in terminal cells, so wide runes and box drawing count the way
// the terminal draws them.
package snapshot

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"
)

// GoldenDir is the default directory for golden screens.
const GoldenDir = "testdata/golden"

var (
	csiPattern = regexp.MustCompile(`\x1b\[[0-9;?]*[a-zA-Z]`)
	// OSC 8 hyperlinks, terminated by ST or BEL
	oscPattern = regexp.MustCompile(`\x1b\]8;[^\x1b\a]*(\x1b\\|\a)`)
)

// Snap checks screens rendered by one test.
type Snap struct {
	t         *testing.T
	goldenDir string
	update    bool
}

// New creates a new Snap for t. UPDATE_GOLDEN=1 rewrites golden screens
// instead of comparing them.
func New(t *testing.T) *Snap {
	return &Snap{
		t:         t,
		goldenDir: GoldenDir,
		update:    os.Getenv("UPDATE_GOLDEN") == "1",
	}
}

// WithDir sets a custom golden directory.
func (s *Snap) WithDir(dir string) *Snap {
	s.goldenDir = dir
	return s
}

// Assert compares a screen against the golden screen name.
func (s *Snap) Assert(name, actual string) {
	s.t.Helper()
	path := filepath.Join(s.goldenDir, name+".golden")
	normalized := normalizeOutput(actual)

	if s.update {
		if err := os.MkdirAll(s.goldenDir, 0755); err != nil {
			s.t.Fatalf("failed to create golden dir: %v", err)
		}
		if err := os.WriteFile(path, []byte(normalized), 0644); err != nil {
			s.t.Fatalf("failed to write golden screen: %v", err)
		}
		s.t.Logf("updated golden screen %s", path)
		return
	}

	expected, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		s.t.Fatalf("golden screen %s not found, run with UPDATE_GOLDEN=1 to create it.\nscreen:\n%s", path, normalized)
	}
	if err != nil {
		s.t.Fatalf("failed to read golden screen: %v", err)
	}
	if string(expected) != normalized {
		s.t.Errorf("screen %s changed\n\nwant:\n%s\n\ngot:\n%s\n\nrun with UPDATE_GOLDEN=1 to accept it.",
			name, expected, normalized)
	}
}

// AssertContains checks that the screen shows substr.
func (s *Snap) AssertContains(actual, substr string) {
	s.t.Helper()
	normalized := normalizeOutput(actual)
	if !strings.Contains(normalized, substr) {
		s.t.Errorf("screen does not show %q\nscreen:\n%s", substr, normalized)
	}
}

// AssertNotContains checks that the screen does not show substr.
func (s *Snap) AssertNotContains(actual, substr string) {
	s.t.Helper()
	normalized := normalizeOutput(actual)
	if strings.Contains(normalized, substr) {
		s.t.Errorf("screen unexpectedly shows %q\nscreen:\n%s", substr, normalized)
	}
}

// AssertRegionContains checks that the w x h cells at (x, y) show substr,
// e.g. that a window drawn at its bounds carries its title.
func (s *Snap) AssertRegionContains(actual string, x, y, w, h int, substr string) {
	s.t.Helper()
	region := Region(actual, x, y, w, h)
	if !strings.Contains(region, substr) {
		s.t.Errorf("region %dx%d at %d,%d does not show %q\nregion:\n%s", w, h, x, y, substr, region)
	}
}

// normalizeOutput strips escapes, line endings and trailing blanks.
func normalizeOutput(s string) string {
	s = strings.ReplaceAll(StripANSI(s), "\r\n", "\n")
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	return strings.Join(lines, "\n")
}

// StripANSI removes color codes and hyperlinks.
func StripANSI(s string) string {
	return oscPattern.ReplaceAllString(csiPattern.ReplaceAllString(s, ""), "")
}

// Lines returns the number of rows of a screen.
func Lines(s string) int {
	return len(strings.Split(StripANSI(s), "\n"))
}

// Width returns the widest row of a screen in cells.
func Width(s string) int {
	widest := 0
	for _, line := range strings.Split(StripANSI(s), "\n") {
		widest = max(widest, runewidth.StringWidth(line))
	}
	return widest
}

// Row returns row y of a screen without escapes, or "" past the last row.
func Row(s string, y int) string {
	lines := strings.Split(StripANSI(s), "\n")
	if y < 0 || y >= len(lines) {
		return ""
	}
	return lines[y]
}

// Region cuts the w x h cells at (x, y) out of a screen. A wide rune cut in
// half becomes a space.
func Region(s string, x, y, w, h int) string {
	rows := make([]string, 0, max(h, 0))
	for i := 0; i < h; i++ {
		rows = append(rows, cells(Row(s, y+i), x, w))
	}
	return strings.Join(rows, "\n")
}

// cells returns the w cells of line starting at column x.
func cells(line string, x, w int) string {
	var b strings.Builder
	col := 0
	for _, r := range line {
		rw := runewidth.RuneWidth(r)
		switch {
		case col >= x+w:
		case col >= x && col+rw <= x+w:
			b.WriteRune(r)
		case col+rw > x:
			b.WriteString(strings.Repeat(" ", min(col+rw, x+w)-max(col, x)))
		}
		col += rw
	}
	return b.String()
}
