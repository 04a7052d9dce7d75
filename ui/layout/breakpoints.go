package layout

// Width breakpoints
const (
	// MinWidth is the narrowest terminal the desktop is drawn in at all.
	MinWidth = 40

	// DefaultMobileWidth switches to the mobile layout below it, unless the
	// config says otherwise.
	DefaultMobileWidth = 60

	// StandardWidth is the threshold for the standard desktop.
	StandardWidth = 100

	// FullWidth is the threshold for the full desktop with all features.
	FullWidth = 140
)

// Height breakpoints
const (
	// MinHeight is the shortest terminal the desktop is drawn in at all.
	MinHeight = 12

	// StandardHeight is the threshold for the standard desktop.
	StandardHeight = 30

	// FullHeight is the threshold for the full desktop.
	FullHeight = 40
)

// Bar constraints
const (
	// TopBarHeight is the height of the top bar.
	TopBarHeight = 1

	// TaskbarHeight is the height of the taskbar.
	TaskbarHeight = 1
)

// Desktop icon constraints
const (
	// IconColumnWidth is the width of the desktop icon column.
	IconColumnWidth = 14

	// IconHeight is the rows taken by one icon, spacing included.
	IconHeight = 2
)

// Window constraints
const (
	// WindowMargin keeps default window sizes off the screen edges.
	WindowMargin = 2

	// WindowMinWidth is the smallest width a default size is shrunk to.
	WindowMinWidth = 24

	// WindowMinHeight is the smallest height a default size is shrunk to.
	WindowMinHeight = 6

	// LargeScale grows default window sizes in the large UI.
	LargeScale = 1.25
)
