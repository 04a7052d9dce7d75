package overlay

import (
	"bytes"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/muesli/ansi"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/termenv"
)

// reset ends any style a clipped line left open.
const reset = "\x1b[0m"

// WhitespaceOption sets a styling rule for rendering whitespace.
type WhitespaceOption func(*whitespace)

type whitespace struct {
	style termenv.Style
	chars string
}

// WithWhitespaceChars sets the characters used to fill gaps the background
// does not cover.
func WithWhitespaceChars(s string) WhitespaceOption {
	return func(w *whitespace) {
		w.chars = s
	}
}

// WithWhitespaceForeground sets the color of the fill characters.
func WithWhitespaceForeground(hex string) WhitespaceOption {
	return func(w *whitespace) {
		w.style = w.style.Foreground(termenv.ColorProfile().Color(hex))
	}
}

// render returns width cells of fill.
func (w whitespace) render(width int) string {
	if width <= 0 {
		return ""
	}
	chars := []rune(w.chars)
	if len(chars) == 0 {
		chars = []rune{' '}
	}
	var b strings.Builder
	for i, j := 0, 0; i < width; j = (j + 1) % len(chars) {
		cw := runewidth.RuneWidth(chars[j])
		if cw <= 0 || i+cw > width {
			b.WriteByte(' ')
			i++
			continue
		}
		b.WriteRune(chars[j])
		i += cw
	}
	return w.style.Styled(b.String())
}

// PlaceOverlay draws fg over bg with its top-left corner at (x, y). With
// center set, x and y are ignored and fg is centered. fg may hang over any
// edge of bg: the parts outside are clipped and bg keeps its size. With
// shadow set, a one cell shadow is drawn right of and below fg.
func PlaceOverlay(x, y int, fg, bg string, shadow bool, center bool, opts ...WhitespaceOption) string {
	fgLines, fgWidth := getLines(fg)
	bgLines, bgWidth := getLines(bg)
	bgHeight := len(bgLines)

	if center {
		x = (bgWidth - fgWidth) / 2
		y = (bgHeight - len(fgLines)) / 2
	}

	if shadow {
		fg = PlaceOverlay(0, 0, fg, shadowBlock(fgWidth, len(fgLines)), false, false)
		fgLines, fgWidth = getLines(fg)
	}

	ws := whitespace{}
	for _, opt := range opts {
		opt(&ws)
	}

	var b strings.Builder
	for i, bgLine := range bgLines {
		if i > 0 {
			b.WriteByte('\n')
		}
		row := i - y
		if row < 0 || row >= len(fgLines) || x >= bgWidth || x+fgWidth <= 0 {
			b.WriteString(bgLine)
			continue
		}

		fgLine := fgLines[row]
		if x < 0 {
			fgLine = cutLeft(fgLine, -x)
		}
		start := max(x, 0)
		visible := min(fgWidth-max(-x, 0), bgWidth-start)
		fgLine = truncate.String(fgLine, uint(visible))

		pos := 0
		if start > 0 {
			left := truncate.String(bgLine, uint(start))
			pos = ansi.PrintableRuneWidth(left)
			b.WriteString(left)
			b.WriteString(reset)
			if pos < start {
				b.WriteString(ws.render(start - pos))
				pos = start
			}
		}

		b.WriteString(fgLine)
		b.WriteString(reset)
		pos += ansi.PrintableRuneWidth(fgLine)
		if pos < start+visible {
			b.WriteString(ws.render(start + visible - pos))
			pos = start + visible
		}

		right := cutLeft(bgLine, pos)
		lineWidth := ansi.PrintableRuneWidth(bgLine)
		rightWidth := ansi.PrintableRuneWidth(right)
		if rightWidth < lineWidth-pos {
			b.WriteString(ws.render(lineWidth - rightWidth - pos))
		}
		b.WriteString(right)
	}
	return b.String()
}

// shadowBlock is a block one cell wider and taller than a width x height
// box, shaded along its right and bottom edges.
func shadowBlock(width, height int) string {
	lines := make([]string, height+1)
	lines[0] = strings.Repeat(" ", width+1)
	for i := 1; i < height; i++ {
		lines[i] = strings.Repeat(" ", width) + "░"
	}
	lines[height] = " " + strings.Repeat("░", width)
	return strings.Join(lines, "\n")
}

// cutLeft removes the first cutWidth printable cells of s, keeping the escape
// sequences that style what remains. A wide rune split by the cut becomes a
// space.
func cutLeft(s string, cutWidth int) string {
	if cutWidth <= 0 {
		return s
	}
	var (
		pos    int
		isAnsi bool
		ab     bytes.Buffer
		b      bytes.Buffer
	)
	for _, c := range s {
		if c == ansi.Marker || isAnsi {
			isAnsi = true
			if pos >= cutWidth {
				b.WriteRune(c)
			} else {
				ab.WriteRune(c)
			}
			if ansi.IsTerminator(c) {
				isAnsi = false
				if bytes.HasSuffix(ab.Bytes(), []byte("[0m")) {
					ab.Reset()
				}
			}
			continue
		}

		w := runewidth.RuneWidth(c)
		if pos >= cutWidth {
			if ab.Len() > 0 {
				b.Write(ab.Bytes())
				ab.Reset()
			}
			b.WriteRune(c)
		} else if pos+w > cutWidth {
			// The cut falls inside a wide rune.
			if ab.Len() > 0 {
				b.Write(ab.Bytes())
				ab.Reset()
			}
			b.WriteString(strings.Repeat(" ", pos+w-cutWidth))
		}
		pos += w
	}
	return b.String()
}

// getLines splits a string into lines and returns them with the widest
// printable width.
func getLines(s string) (lines []string, widest int) {
	lines = strings.Split(s, "\n")
	for _, l := range lines {
		w := ansi.PrintableRuneWidth(l)
		if widest < w {
			widest = w
		}
	}
	return lines, widest
}
