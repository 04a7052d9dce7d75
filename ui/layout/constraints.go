package layout

import "distortion-os/wm"

// Options are the user settings that shape the layout.
type Options struct {
	// MobileWidth is the mobile breakpoint. Zero means DefaultMobileWidth.
	MobileWidth int
	// ForceMobile uses the mobile layout at any width.
	ForceMobile bool
	// Large grows default window sizes.
	Large bool
}

// Constraints holds the computed layout constraints of the desktop.
type Constraints struct {
	// Terminal dimensions
	TerminalWidth  int
	TerminalHeight int

	// Computed mode
	Mode  LayoutMode
	Large bool

	// Work area between the bars
	WorkTop    int
	WorkWidth  int
	WorkHeight int

	// IconWidth is the width of the icon column, zero when hidden.
	IconWidth int

	// Layout flags
	Mobile         bool
	ShowMinWarning bool // Terminal is below minimum size
}

// ComputeConstraints calculates layout constraints for the given terminal
// dimensions.
func ComputeConstraints(width, height int, opts Options) Constraints {
	c := Constraints{
		TerminalWidth:  width,
		TerminalHeight: height,
		Large:          opts.Large,
	}

	// 1. Determine layout mode
	c.Mode = DetermineMode(width, height, opts.MobileWidth)
	if opts.ForceMobile && c.Mode != LayoutMinimal {
		c.Mode = LayoutMobile
	}
	c.Mobile = c.Mode == LayoutMobile
	c.ShowMinWarning = c.Mode == LayoutMinimal

	// 2. Fixed bars
	c.WorkTop = TopBarHeight
	c.WorkWidth = max(width, 0)
	c.WorkHeight = max(height-TopBarHeight-TaskbarHeight, 0)

	// 3. Icons sit left of the windows on the desktop only
	if !c.Mobile && !c.ShowMinWarning {
		c.IconWidth = IconColumnWidth
	}
	return c
}

// WindowSize fits the default size of a window to the work area, grown by
// LargeScale in the large UI. Mobile windows take the whole work area.
func WindowSize(base wm.Size, c Constraints) wm.Size {
	if c.Mobile {
		return wm.Size{Width: c.WorkWidth, Height: c.WorkHeight}
	}
	w, h := base.Width, base.Height
	if c.Large {
		w = int(float64(w) * LargeScale)
		h = int(float64(h) * LargeScale)
	}
	maxW := max(c.WorkWidth-WindowMargin*2, WindowMinWidth)
	maxH := max(c.WorkHeight-WindowMargin, WindowMinHeight)
	return wm.Size{
		Width:  clamp(w, WindowMinWidth, maxW),
		Height: clamp(h, WindowMinHeight, maxH),
	}
}

// Helper functions

func clamp(value, minVal, maxVal int) int {
	if value < minVal {
		return minVal
	}
	if value > maxVal {
		return maxVal
	}
	return value
}
