package ui

import (
	"math"
	"strings"

	"distortion-os/viewer"

	"github.com/mattn/go-runewidth"
)

// canvas is a grid of runes the card viewer draws on.
type canvas struct {
	w, h  int
	cells [][]rune
}

func newCanvas(w, h int) *canvas {
	c := &canvas{w: w, h: h, cells: make([][]rune, max(h, 0))}
	for y := range c.cells {
		c.cells[y] = []rune(strings.Repeat(" ", max(w, 0)))
	}
	return c
}

func (c *canvas) set(x, y int, r rune) {
	if x < 0 || y < 0 || x >= c.w || y >= c.h {
		return
	}
	c.cells[y][x] = r
}

// line draws from (x0, y0) to (x1, y1) with Bresenham's algorithm.
func (c *canvas) line(x0, y0, x1, y1 int, r rune) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	e := dx + dy
	for {
		c.set(x0, y0, r)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

// fill paints the inside of a convex polygon one row at a time.
func (c *canvas) fill(pts []point, r rune) {
	if len(pts) < 3 {
		return
	}
	minY, maxY := pts[0].y, pts[0].y
	for _, p := range pts {
		minY = math.Min(minY, p.y)
		maxY = math.Max(maxY, p.y)
	}
	minY, maxY = math.Max(minY, 0), math.Min(maxY, float64(c.h-1))
	for y := int(math.Ceil(minY)); y <= int(math.Floor(maxY)); y++ {
		fy := float64(y)
		left, right := math.Inf(1), math.Inf(-1)
		for i := range pts {
			a, b := pts[i], pts[(i+1)%len(pts)]
			if fy < math.Min(a.y, b.y) || fy > math.Max(a.y, b.y) {
				continue
			}
			if a.y == b.y {
				left = math.Min(left, math.Min(a.x, b.x))
				right = math.Max(right, math.Max(a.x, b.x))
				continue
			}
			x := a.x + (fy-a.y)*(b.x-a.x)/(b.y-a.y)
			left = math.Min(left, x)
			right = math.Max(right, x)
		}
		if left > right {
			continue
		}
		left, right = math.Max(left, 0), math.Min(right, float64(c.w-1))
		for x := int(math.Ceil(left)); x <= int(math.Floor(right)); x++ {
			c.set(x, y, r)
		}
	}
}

// text writes s centered on row y. Wide runes take two cells.
func (c *canvas) text(y int, s string) {
	x := (c.w - runewidth.StringWidth(s)) / 2
	for _, r := range s {
		c.set(x, y, r)
		w := runewidth.RuneWidth(r)
		for i := 1; i < w; i++ {
			// the wide rune covers the next cell
			c.set(x+i, y, 0)
		}
		x += max(w, 1)
	}
}

func (c *canvas) String() string {
	lines := make([]string, len(c.cells))
	for y, row := range c.cells {
		var b strings.Builder
		for _, r := range row {
			if r != 0 {
				b.WriteRune(r)
			}
		}
		lines[y] = b.String()
	}
	return strings.Join(lines, "\n")
}

type point struct{ x, y float64 }

// cardAspect is the height of a card over its width.
const cardAspect = 1.5

// cellAspect is how much taller a terminal cell is than it is wide.
const cellAspect = 2.0

// drawCard draws the outline of a card turned by t, centered on the canvas.
// The front shows the caption lines, the back a shaded pattern.
func drawCard(c *canvas, t viewer.Transform, caption []string) {
	if c.w < 3 || c.h < 3 {
		return
	}
	// The card fills about two thirds of the canvas at scale 1.
	width := math.Min(float64(c.w)*0.45, float64(c.h)*0.7*cellAspect/cardAspect)
	height := width * cardAspect
	quad, facingAway := t.Project(width, height, width*4)

	cx, cy := float64(c.w)/2, float64(c.h)/2
	pts := make([]point, len(quad))
	for i, q := range quad {
		// keep points near the canvas so lines stay short
		pts[i] = point{
			x: clampf(cx+q.X, -float64(c.w), float64(2*c.w)),
			y: clampf(cy+q.Y/cellAspect, -float64(c.h), float64(2*c.h)),
		}
	}

	if facingAway {
		c.fill(pts, '▒')
	} else {
		c.fill(pts, ' ')
	}
	for i := range pts {
		a, b := pts[i], pts[(i+1)%len(pts)]
		c.line(round(a.x), round(a.y), round(b.x), round(b.y), '█')
	}
	if facingAway {
		return
	}

	// Captions only fit while the card is mostly face on.
	top := int(cy) - len(caption)/2
	for i, line := range caption {
		if runewidth.StringWidth(line) >= int(math.Abs(pts[1].x-pts[0].x))-1 {
			continue
		}
		c.text(top+i, line)
	}
}

func clampf(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

func round(f float64) int {
	return int(math.Round(f))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
