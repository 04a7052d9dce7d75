// Package viewer turns pointer drags and wheel notches over the card viewer
// into a 3D orientation and zoom level for the card on display.
package viewer

import (
	"fmt"
	"math"
)

const (
	MinScale = 0.5
	MaxScale = 3.0
	// ZoomStep is the zoom change of one wheel notch.
	ZoomStep = 0.2
	// Sensitivity is the rotation in degrees per unit of pointer motion.
	Sensitivity = 0.5
)

// Pointer is a normalized pointer position over the viewer surface.
type Pointer struct {
	X, Y float64
	// OnButton is set when the press landed on one of the viewer's buttons.
	OnButton bool
}

// Target receives the transform every time it changes.
type Target interface {
	ApplyTransform(t Transform)
	SetZoomLabel(label string)
}

type drag struct {
	anchorX, anchorY float64
	baseX, baseY     float64
}

// Engine holds the viewer transform and the drag in progress.
type Engine struct {
	scale      float64
	rotX, rotY float64
	drag       *drag
	target     Target
}

// New returns an engine at the identity transform rendering to target.
// A nil target is allowed; the engine then only tracks state.
func New(target Target) *Engine {
	return &Engine{scale: 1, target: target}
}

// Bind changes where the engine renders.
func (e *Engine) Bind(target Target) {
	e.target = target
	e.render()
}

// Reset returns to scale 1 with no rotation.
func (e *Engine) Reset() {
	e.scale, e.rotX, e.rotY = 1, 0, 0
	e.render()
}

// StartDrag anchors a rotation drag at p. Presses on buttons are ignored so
// the buttons stay clickable.
func (e *Engine) StartDrag(p Pointer) {
	if p.OnButton {
		return
	}
	e.drag = &drag{anchorX: p.X, anchorY: p.Y, baseX: e.rotX, baseY: e.rotY}
}

// Drag rotates the card by the pointer's total motion since StartDrag.
// Horizontal motion turns the card around its vertical axis; vertical motion
// tilts it, inverted.
func (e *Engine) Drag(p Pointer) {
	if e.drag == nil {
		return
	}
	e.rotY = e.drag.baseY + (p.X-e.drag.anchorX)*Sensitivity
	e.rotX = e.drag.baseX - (p.Y-e.drag.anchorY)*Sensitivity
	e.render()
}

// EndDrag finishes the drag.
func (e *Engine) EndDrag() {
	e.drag = nil
}

// Dragging reports whether a drag is in progress.
func (e *Engine) Dragging() bool {
	return e.drag != nil
}

// AdjustZoom changes the scale by delta, clamped to [MinScale, MaxScale].
func (e *Engine) AdjustZoom(delta float64) {
	e.scale = math.Max(MinScale, math.Min(MaxScale, e.scale+delta))
	e.render()
}

// Wheel zooms one notch in (up) or out.
func (e *Engine) Wheel(up bool) {
	if up {
		e.AdjustZoom(ZoomStep)
		return
	}
	e.AdjustZoom(-ZoomStep)
}

// Transform returns the current transform.
func (e *Engine) Transform() Transform {
	return Transform{Scale: e.scale, RotationX: e.rotX, RotationY: e.rotY}
}

// ZoomLabel is the zoom level as a whole percentage, e.g. "120%".
func (e *Engine) ZoomLabel() string {
	return fmt.Sprintf("%d%%", int(math.Round(e.scale*100)))
}

func (e *Engine) render() {
	if e.target == nil {
		return
	}
	e.target.ApplyTransform(e.Transform())
	e.target.SetZoomLabel(e.ZoomLabel())
}
