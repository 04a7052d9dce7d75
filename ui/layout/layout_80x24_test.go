package layout

import (
	"testing"

	"distortion-os/wm"

	"github.com/stretchr/testify/assert"
)

// TestStandardTerminal80x24 verifies all behavior at the classic terminal size
func TestStandardTerminal80x24(t *testing.T) {
	width := 80
	height := 24

	t.Run("mode is compact", func(t *testing.T) {
		mode := DetermineMode(width, height, 0)
		assert.Equal(t, LayoutCompact, mode, "80x24 should be compact mode")
	})

	t.Run("constraints are valid", func(t *testing.T) {
		c := ComputeConstraints(width, height, Options{})

		assert.Equal(t, LayoutCompact, c.Mode)
		assert.False(t, c.ShowMinWarning, "80x24 should not show warning")
		assert.False(t, c.Mobile, "80x24 should not be mobile")

		// Verify all dimensions are positive
		assert.Positive(t, c.WorkWidth, "WorkWidth")
		assert.Positive(t, c.WorkHeight, "WorkHeight")
		assert.Positive(t, c.IconWidth, "IconWidth")

		// Verify heights fit
		totalHeight := c.WorkTop + c.WorkHeight + TaskbarHeight
		assert.Equal(t, height, totalHeight, "bars and work area should fill the terminal")
	})

	t.Run("degradation flags are set correctly", func(t *testing.T) {
		d := ComputeDegradation(ComputeConstraints(width, height, Options{}))

		// At 80x24:
		// - width 80 < 110: HideHash = true
		// - width 80 < 90: HideLatency = true
		// - width 80 >= 80: HideSettings = false
		// - width 80 < 120: HideMenuHints = true
		// - height 24 >= 14: icons shown
		assert.True(t, d.HideHash)
		assert.True(t, d.HideLatency)
		assert.False(t, d.HideSettings)
		assert.False(t, d.ShortTaskbar)
		assert.True(t, d.HideMenuHints)
		assert.True(t, d.ShouldShowIcons())
		assert.False(t, d.ShowMinWarning)
	})

	t.Run("every default window fits", func(t *testing.T) {
		c := ComputeConstraints(width, height, Options{Large: true})
		for _, base := range []wm.Size{{Width: 64, Height: 20}, {Width: 84, Height: 18}, {Width: 48, Height: 24}} {
			got := WindowSize(base, c)
			assert.LessOrEqual(t, got.Width, c.WorkWidth)
			assert.LessOrEqual(t, got.Height, c.WorkHeight)
		}
	})
}
