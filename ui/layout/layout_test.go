package layout

import (
	"testing"

	"distortion-os/wm"

	"github.com/stretchr/testify/assert"
)

func TestDetermineMode(t *testing.T) {
	tests := []struct {
		name   string
		width  int
		height int
		want   LayoutMode
	}{
		{
			name:   "full mode - large terminal",
			width:  140,
			height: 50,
			want:   LayoutFull,
		},
		{
			name:   "standard mode - both at standard thresholds",
			width:  100,
			height: 30,
			want:   LayoutStandard,
		},
		{
			name:   "compact mode - small desktop",
			width:  80,
			height: 24,
			want:   LayoutCompact,
		},
		{
			name:   "mobile mode - below mobile width",
			width:  59,
			height: 40,
			want:   LayoutMobile,
		},
		{
			name:   "exact mobile width - should be compact",
			width:  60,
			height: 24,
			want:   LayoutCompact,
		},
		{
			name:   "minimal mode - below minimum width",
			width:  39,
			height: 30,
			want:   LayoutMinimal,
		},
		{
			name:   "minimal mode - below minimum height",
			width:  100,
			height: 11,
			want:   LayoutMinimal,
		},
		{
			name:   "wide but short",
			width:  150,
			height: 25,
			want:   LayoutCompact, // Uses most restrictive mode (height-based)
		},
		{
			name:   "tall but narrow",
			width:  85,
			height: 60,
			want:   LayoutCompact, // Uses most restrictive mode (width-based)
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DetermineMode(tt.width, tt.height, 0)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDetermineModeCustomMobileWidth(t *testing.T) {
	assert.Equal(t, LayoutMobile, DetermineMode(90, 30, 100))
	assert.Equal(t, LayoutStandard, DetermineMode(100, 30, 100))
}

func TestLayoutModeString(t *testing.T) {
	assert.Equal(t, "full", LayoutFull.String())
	assert.Equal(t, "standard", LayoutStandard.String())
	assert.Equal(t, "compact", LayoutCompact.String())
	assert.Equal(t, "mobile", LayoutMobile.String())
	assert.Equal(t, "minimal", LayoutMinimal.String())
	assert.Equal(t, "unknown", LayoutMode(99).String())
}

func TestComputeConstraints(t *testing.T) {
	t.Run("desktop reserves both bars", func(t *testing.T) {
		c := ComputeConstraints(120, 40, Options{})
		assert.Equal(t, LayoutStandard, c.Mode)
		assert.Equal(t, TopBarHeight, c.WorkTop)
		assert.Equal(t, 120, c.WorkWidth)
		assert.Equal(t, 40-TopBarHeight-TaskbarHeight, c.WorkHeight)
		assert.Equal(t, IconColumnWidth, c.IconWidth)
		assert.False(t, c.Mobile)
	})

	t.Run("forced mobile at a wide terminal", func(t *testing.T) {
		c := ComputeConstraints(160, 50, Options{ForceMobile: true})
		assert.Equal(t, LayoutMobile, c.Mode)
		assert.True(t, c.Mobile)
		assert.Zero(t, c.IconWidth)
	})

	t.Run("forced mobile does not hide the minimum warning", func(t *testing.T) {
		c := ComputeConstraints(20, 10, Options{ForceMobile: true})
		assert.Equal(t, LayoutMinimal, c.Mode)
		assert.True(t, c.ShowMinWarning)
		assert.False(t, c.Mobile)
	})

	t.Run("no negative work area", func(t *testing.T) {
		c := ComputeConstraints(0, 1, Options{})
		assert.GreaterOrEqual(t, c.WorkWidth, 0)
		assert.GreaterOrEqual(t, c.WorkHeight, 0)
	})
}

func TestWindowSize(t *testing.T) {
	base := wm.Size{Width: 60, Height: 20}

	tests := []struct {
		name string
		c    Constraints
		want wm.Size
	}{
		{
			name: "fits unchanged",
			c:    ComputeConstraints(140, 50, Options{}),
			want: base,
		},
		{
			name: "large scale grows",
			c:    ComputeConstraints(140, 50, Options{Large: true}),
			want: wm.Size{Width: 75, Height: 25},
		},
		{
			name: "shrunk to the work area",
			c:    ComputeConstraints(62, 16, Options{}),
			want: wm.Size{Width: 58, Height: 12},
		},
		{
			name: "mobile takes the work area",
			c:    ComputeConstraints(50, 30, Options{}),
			want: wm.Size{Width: 50, Height: 28},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, WindowSize(base, tt.c))
		})
	}
}

func TestWindowSizeNeverBelowMinimum(t *testing.T) {
	c := ComputeConstraints(41, 12, Options{MobileWidth: 40})
	got := WindowSize(wm.Size{Width: 10, Height: 2}, c)
	assert.Equal(t, WindowMinWidth, got.Width)
	assert.Equal(t, WindowMinHeight, got.Height)
}

func TestComputeDegradation(t *testing.T) {
	tests := []struct {
		name   string
		width  int
		height int
		check  func(t *testing.T, d Degradation)
	}{
		{
			name:   "full desktop shows everything",
			width:  160,
			height: 50,
			check: func(t *testing.T, d Degradation) {
				assert.False(t, d.HideHash)
				assert.False(t, d.HideLatency)
				assert.False(t, d.HideSettings)
				assert.False(t, d.HideMenuHints)
				assert.True(t, d.ShouldShowIcons())
				assert.True(t, d.ShouldShowTelemetry())
			},
		},
		{
			name:   "standard drops the hints first",
			width:  115,
			height: 40,
			check: func(t *testing.T, d Degradation) {
				assert.True(t, d.HideMenuHints)
				assert.False(t, d.HideHash)
				assert.True(t, d.ShouldShowTelemetry())
			},
		},
		{
			name:   "narrow hides all telemetry",
			width:  85,
			height: 30,
			check: func(t *testing.T, d Degradation) {
				assert.True(t, d.HideHash)
				assert.True(t, d.HideLatency)
				assert.False(t, d.ShouldShowTelemetry())
				assert.False(t, d.HideSettings)
			},
		},
		{
			name:   "mobile hides icons",
			width:  50,
			height: 30,
			check: func(t *testing.T, d Degradation) {
				assert.True(t, d.HideIcons)
				assert.True(t, d.ShortTaskbar)
				assert.True(t, d.HideSettings)
			},
		},
		{
			name:   "short desktop hides icons",
			width:  120,
			height: 13,
			check: func(t *testing.T, d Degradation) {
				assert.False(t, d.ShouldShowIcons())
			},
		},
		{
			name:   "below minimum warns",
			width:  30,
			height: 10,
			check: func(t *testing.T, d Degradation) {
				assert.True(t, d.ShowMinWarning)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, ComputeDegradation(ComputeConstraints(tt.width, tt.height, Options{})))
		})
	}
}
