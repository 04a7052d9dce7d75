package wm

import "time"

// Point is a cell position, X to the right and Y down from the top-left corner.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Size is a width and height in cells.
type Size struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Rect is an on-screen rectangle.
type Rect struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Contains reports whether p lies inside the rectangle.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.Width &&
		p.Y >= r.Y && p.Y < r.Y+r.Height
}

// Origin returns the top-left corner.
func (r Rect) Origin() Point {
	return Point{X: r.X, Y: r.Y}
}

// Viewport is the size of the whole screen.
type Viewport struct {
	Width  int
	Height int
}

// Metrics holds the fixed chrome dimensions and timings the manager works with.
type Metrics struct {
	// HeaderHeight is the number of rows of a window's title bar.
	HeaderHeight int
	// MinVisibleWidth is how much of a header must stay on screen horizontally while dragging.
	MinVisibleWidth int
	// OffscreenMargin is how far left of the screen a saved position may be and still be reused.
	OffscreenMargin int
	// TopBarHeight and TaskbarHeight frame the area a maximized window fills.
	TopBarHeight  int
	TaskbarHeight int
	// FallbackSize is used when leaving maximize without a snapshot.
	FallbackSize Size
	// CloseDelay is how long a closing window stays drawn for its exit animation.
	CloseDelay time.Duration
	// FrameDelay is how long an opening window waits before it is fully shown.
	FrameDelay time.Duration
}

// DefaultMetrics returns the metrics of the terminal desktop.
func DefaultMetrics() Metrics {
	return Metrics{
		HeaderHeight:    1,
		MinVisibleWidth: 8,
		OffscreenMargin: 20,
		TopBarHeight:    1,
		TaskbarHeight:   1,
		FallbackSize:    Size{Width: 60, Height: 20},
		CloseDelay:      300 * time.Millisecond,
		FrameDelay:      16 * time.Millisecond,
	}
}

// Control is one of the buttons at the right end of a window header.
type Control int

const (
	ControlNone Control = iota
	ControlMinimize
	ControlMaximize
	ControlClose
)

// ControlWidth is the number of cells each header button occupies.
const ControlWidth = 3

// ControlsWidth is the width of the whole button group.
const ControlsWidth = 3 * ControlWidth

func (c Control) String() string {
	switch c {
	case ControlMinimize:
		return "minimize"
	case ControlMaximize:
		return "maximize"
	case ControlClose:
		return "close"
	default:
		return "none"
	}
}

// controlAt returns the header button under p for a window drawn at r. The
// buttons sit in the last ControlsWidth cells of the first header row.
func (m Metrics) controlAt(r Rect, p Point) Control {
	if p.Y != r.Y || !r.Contains(p) {
		return ControlNone
	}
	offset := p.X - (r.X + r.Width - ControlsWidth)
	if offset < 0 {
		return ControlNone
	}
	switch offset / ControlWidth {
	case 0:
		return ControlMinimize
	case 1:
		return ControlMaximize
	default:
		return ControlClose
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
