package viewer

import (
	"fmt"
	"math"
	"strconv"

	"gonum.org/v1/gonum/mat"
)

// Transform is a card orientation: a uniform scale followed by a rotation
// around the X axis and then the Y axis, angles in degrees.
type Transform struct {
	Scale     float64 `json:"scale"`
	RotationX float64 `json:"rotationX"`
	RotationY float64 `json:"rotationY"`
}

// Identity is the untransformed card.
var Identity = Transform{Scale: 1}

// CSS renders the transform in CSS transform-function syntax.
func (t Transform) CSS() string {
	return fmt.Sprintf("scale(%s) rotateX(%sdeg) rotateY(%sdeg)",
		formatFloat(t.Scale), formatFloat(t.RotationX), formatFloat(t.RotationY))
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// Matrix composes the transform as scale · rotateX · rotateY, so a point is
// rotated around Y first, then X, then scaled. The axes follow screen
// conventions: X right, Y down, Z towards the viewer.
func (t Transform) Matrix() *mat.Dense {
	ax := t.RotationX * math.Pi / 180
	ay := t.RotationY * math.Pi / 180

	s := mat.NewDense(3, 3, []float64{
		t.Scale, 0, 0,
		0, t.Scale, 0,
		0, 0, t.Scale,
	})
	rx := mat.NewDense(3, 3, []float64{
		1, 0, 0,
		0, math.Cos(ax), -math.Sin(ax),
		0, math.Sin(ax), math.Cos(ax),
	})
	ry := mat.NewDense(3, 3, []float64{
		math.Cos(ay), 0, math.Sin(ay),
		0, 1, 0,
		-math.Sin(ay), 0, math.Cos(ay),
	})

	var sx, m mat.Dense
	sx.Mul(s, rx)
	m.Mul(&sx, ry)
	return &m
}

// Vec2 is a projected point relative to the card center.
type Vec2 struct {
	X, Y float64
}

// Quad is the projected outline of the card, clockwise from the top-left
// corner.
type Quad [4]Vec2

// Project maps the corners of a width×height card through the transform and
// a perspective camera at distance from the card plane. FacingAway reports
// whether the back of the card is towards the viewer.
func (t Transform) Project(width, height, distance float64) (q Quad, facingAway bool) {
	m := t.Matrix()
	hw, hh := width/2, height/2
	corners := [4][3]float64{
		{-hw, -hh, 0},
		{hw, -hh, 0},
		{hw, hh, 0},
		{-hw, hh, 0},
	}
	var out mat.VecDense
	for i, c := range corners {
		out.MulVec(m, mat.NewVecDense(3, c[:]))
		x, y, z := out.AtVec(0), out.AtVec(1), out.AtVec(2)
		f := 1.0
		if distance > 0 {
			// points behind the camera collapse onto its plane
			f = distance / math.Max(distance-z, 1e-6)
		}
		q[i] = Vec2{X: x * f, Y: y * f}
	}
	// the card normal is the third column of the rotation part
	facingAway = m.At(2, 2) < 0
	return q, facingAway
}
