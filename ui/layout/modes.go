// Package layout grades the terminal size into a desktop layout and derives
// the work area, default window sizes and which bar segments fit.
package layout

// LayoutMode is the grade of the terminal size. Higher is tighter.
type LayoutMode int

const (
	// LayoutFull needs FullWidth x FullHeight.
	LayoutFull LayoutMode = iota
	// LayoutStandard needs StandardWidth x StandardHeight.
	LayoutStandard
	// LayoutCompact is any smaller desktop above the mobile width. Bars drop
	// their decorative segments.
	LayoutCompact

	// LayoutMobile is below the mobile width, or forced. Windows fill the
	// work area and do not move.
	LayoutMobile
	// LayoutMinimal is below MinWidth x MinHeight. Only a warning is drawn.
	LayoutMinimal
)

var modeNames = [...]string{
	LayoutFull:     "full",
	LayoutStandard: "standard",
	LayoutCompact:  "compact",
	LayoutMobile:   "mobile",
	LayoutMinimal:  "minimal",
}

func (m LayoutMode) String() string {
	if m < 0 || int(m) >= len(modeNames) {
		return "unknown"
	}
	return modeNames[m]
}

// DetermineMode picks the layout for a width x height terminal. Width and
// height are graded separately and the tighter grade wins. A mobileWidth
// of zero means DefaultMobileWidth.
func DetermineMode(width, height, mobileWidth int) LayoutMode {
	if mobileWidth <= 0 {
		mobileWidth = DefaultMobileWidth
	}
	switch {
	case width < MinWidth || height < MinHeight:
		return LayoutMinimal
	case width < mobileWidth:
		return LayoutMobile
	}
	return max(grade(width, StandardWidth, FullWidth), grade(height, StandardHeight, FullHeight))
}

// grade maps one dimension onto the desktop modes.
func grade(n, standard, full int) LayoutMode {
	switch {
	case n >= full:
		return LayoutFull
	case n >= standard:
		return LayoutStandard
	default:
		return LayoutCompact
	}
}
