package wm

// Phase is where a window is in its show/hide lifecycle.
type Phase int

const (
	// PhaseClosed windows are not drawn.
	PhaseClosed Phase = iota
	// PhaseOpening windows are drawn and fading in.
	PhaseOpening
	// PhaseOpen windows are fully shown.
	PhaseOpen
	// PhaseClosing windows are still drawn while their exit animation plays.
	PhaseClosing
)

func (p Phase) String() string {
	switch p {
	case PhaseClosed:
		return "closed"
	case PhaseOpening:
		return "opening"
	case PhaseOpen:
		return "open"
	case PhaseClosing:
		return "closing"
	default:
		return "unknown"
	}
}

// State is the externally visible state of a window.
type State int

const (
	StateClosed State = iota
	StateOpen
	StateMinimized
	StateMaximized
)

func (s State) String() string {
	switch s {
	case StateClosed:
		return "closed"
	case StateOpen:
		return "open"
	case StateMinimized:
		return "minimized"
	case StateMaximized:
		return "maximized"
	default:
		return "unknown"
	}
}

// Spec declares a window panel.
type Spec struct {
	ID string
	// Title is the i18n key of the window title.
	Title       string
	DefaultSize Size
}

// Window is the record the manager keeps for one panel.
type Window struct {
	ID          string
	Title       string
	DefaultSize Size

	// Position is the saved top-left corner. Nil means centered.
	Position *Point
	// Size overrides DefaultSize when set.
	Size *Size

	Z         int
	Phase     Phase
	Active    bool
	Minimized bool
	Maximized bool

	// saved is the geometry to restore when leaving maximize.
	saved *snapshot
	// seq invalidates scheduled transitions when the window changes phase again.
	seq uint64
}

type snapshot struct {
	position *Point
	size     *Size
}

// State collapses phase and flags into a single State.
func (w Window) State() State {
	switch {
	case w.Phase == PhaseClosed || w.Phase == PhaseClosing:
		return StateClosed
	case w.Maximized:
		return StateMaximized
	case w.Minimized:
		return StateMinimized
	default:
		return StateOpen
	}
}

// Displayed reports whether the window is laid out on screen, minimized or not.
func (w Window) Displayed() bool {
	return w.Phase != PhaseClosed
}

// Visible reports whether the window is drawn.
func (w Window) Visible() bool {
	return w.Displayed() && !w.Minimized
}

// Fading reports whether the window is in an opening or closing animation.
func (w Window) Fading() bool {
	return w.Phase == PhaseOpening || w.Phase == PhaseClosing
}

func (w *Window) clone() Window {
	c := *w
	c.Position = clonePoint(w.Position)
	c.Size = cloneSize(w.Size)
	c.saved = nil
	return c
}

func clonePoint(p *Point) *Point {
	if p == nil {
		return nil
	}
	c := *p
	return &c
}

func cloneSize(s *Size) *Size {
	if s == nil {
		return nil
	}
	c := *s
	return &c
}
