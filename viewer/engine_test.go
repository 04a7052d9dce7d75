package viewer

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingTarget struct {
	transforms []Transform
	label      string
}

func (r *recordingTarget) ApplyTransform(t Transform) { r.transforms = append(r.transforms, t) }
func (r *recordingTarget) SetZoomLabel(l string)      { r.label = l }

func TestResetAlwaysReturnsToIdentity(t *testing.T) {
	target := &recordingTarget{}
	e := New(target)
	e.StartDrag(Pointer{X: 10, Y: 10})
	e.Drag(Pointer{X: 83, Y: -40})
	e.AdjustZoom(1.3)

	e.Reset()

	assert.Equal(t, Identity, e.Transform())
	assert.Equal(t, Identity, target.transforms[len(target.transforms)-1])
	assert.Equal(t, "100%", target.label)
}

func TestDragRotation(t *testing.T) {
	e := New(nil)
	e.StartDrag(Pointer{X: 100, Y: 100})

	e.Drag(Pointer{X: 120, Y: 90})

	got := e.Transform()
	assert.InDelta(t, 10, got.RotationY, 1e-9, "horizontal motion turns around Y")
	assert.InDelta(t, 5, got.RotationX, 1e-9, "upward motion tilts back")
}

func TestDragDependsOnlyOnCumulativeDelta(t *testing.T) {
	e := New(nil)
	e.StartDrag(Pointer{X: 5, Y: 5})
	e.Drag(Pointer{X: 20, Y: 30})
	e.EndDrag()
	baseline := e.Transform()

	e.StartDrag(Pointer{X: 50, Y: 50})
	e.Drag(Pointer{X: 90, Y: 50})
	e.Drag(Pointer{X: 50, Y: 50})
	e.EndDrag()

	assert.InDelta(t, baseline.RotationY, e.Transform().RotationY, 1e-9)
	assert.InDelta(t, baseline.RotationX, e.Transform().RotationX, 1e-9)
}

func TestDragIgnoredUntilStarted(t *testing.T) {
	target := &recordingTarget{}
	e := New(target)

	e.Drag(Pointer{X: 40, Y: 40})

	assert.Equal(t, Identity, e.Transform())
	assert.Empty(t, target.transforms, "no render without a drag")
}

func TestStartDragOnButtonIsIgnored(t *testing.T) {
	e := New(nil)
	e.StartDrag(Pointer{X: 1, Y: 1, OnButton: true})
	assert.False(t, e.Dragging())

	e.Drag(Pointer{X: 50, Y: 50})
	assert.Equal(t, Identity, e.Transform())
}

func TestEndDragStopsRotation(t *testing.T) {
	e := New(nil)
	e.StartDrag(Pointer{})
	e.Drag(Pointer{X: 2})
	e.EndDrag()
	assert.False(t, e.Dragging())

	e.Drag(Pointer{X: 100})
	assert.InDelta(t, 1, e.Transform().RotationY, 1e-9)
}

func TestRenderEveryDragMove(t *testing.T) {
	target := &recordingTarget{}
	e := New(target)
	e.StartDrag(Pointer{})
	for i := 1; i <= 5; i++ {
		e.Drag(Pointer{X: float64(i)})
	}
	assert.Len(t, target.transforms, 5)
}

func TestZoomIsAlwaysClamped(t *testing.T) {
	e := New(nil)
	r := rand.New(rand.NewSource(3))
	for i := 0; i < 1000; i++ {
		e.AdjustZoom((r.Float64() - 0.5) * 4)
		s := e.Transform().Scale
		require.GreaterOrEqual(t, s, MinScale)
		require.LessOrEqual(t, s, MaxScale)
	}

	for i := 0; i < 20; i++ {
		e.Wheel(true)
	}
	assert.Equal(t, MaxScale, e.Transform().Scale)
	for i := 0; i < 20; i++ {
		e.Wheel(false)
	}
	assert.Equal(t, MinScale, e.Transform().Scale)
}

func TestZoomLabel(t *testing.T) {
	target := &recordingTarget{}
	e := New(target)

	e.Wheel(true)
	assert.Equal(t, "120%", target.label)
	e.Wheel(true)
	assert.Equal(t, "140%", target.label)
	e.AdjustZoom(-0.95)
	assert.Equal(t, "50%", target.label)
}

func TestBindRendersImmediately(t *testing.T) {
	e := New(nil)
	e.AdjustZoom(0.5)

	target := &recordingTarget{}
	e.Bind(target)

	require.Len(t, target.transforms, 1)
	assert.Equal(t, "150%", target.label)
}

func TestCSS(t *testing.T) {
	tr := Transform{Scale: 1.2, RotationX: -5, RotationY: 12.5}
	assert.Equal(t, "scale(1.2) rotateX(-5deg) rotateY(12.5deg)", tr.CSS())
}

func TestMatrixIdentity(t *testing.T) {
	m := Identity.Matrix()
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			want := 0.0
			if i == j {
				want = 1
			}
			assert.InDelta(t, want, m.At(i, j), 1e-12)
		}
	}
}

func TestProject(t *testing.T) {
	q, away := Identity.Project(20, 10, 0)
	assert.False(t, away)
	assert.Equal(t, Quad{{-10, -5}, {10, -5}, {10, 5}, {-10, 5}}, q)

	q, _ = Transform{Scale: 2}.Project(20, 10, 0)
	assert.Equal(t, Vec2{X: 20, Y: 10}, q[2])

	// a quarter turn around Y leaves the card edge on
	q, _ = Transform{Scale: 1, RotationY: 90}.Project(20, 10, 0)
	for _, v := range q {
		assert.InDelta(t, 0, v.X, 1e-9)
	}

	_, away = Transform{Scale: 1, RotationY: 180}.Project(20, 10, 50)
	assert.True(t, away)
}

func TestProjectPerspective(t *testing.T) {
	// turning around Y brings the right edge towards the camera, so it grows
	q, _ := Transform{Scale: 1, RotationY: -30}.Project(20, 10, 40)
	right := math.Abs(q[2].Y - q[1].Y)
	left := math.Abs(q[3].Y - q[0].Y)
	assert.Greater(t, right, left)
}
