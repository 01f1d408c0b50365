// seehuhn.de/go/stroke - polar stroking for 2D paths
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package stroke

import (
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/stroke/equation"
)

// Segment is one piece of a path, parameterised over t ∈ [0, 1].
//
// The set of implementations is closed: [Line], [Quad], [Cubic] and [Conic].
type Segment interface {
	// Position returns the point on the segment at parameter t.
	Position(t float64) vec.Vec2

	// Tangent returns the (unnormalised) derivative of Position at t.
	Tangent(t float64) vec.Vec2

	// InitialTangent returns the unit tangent at t=0. If the derivative
	// vanishes there, the direction towards the next distinct control
	// point is used. Fully degenerate segments give the zero vector.
	InitialTangent() vec.Vec2

	// TerminalTangent is the counterpart of InitialTangent at t=1.
	TerminalTangent() vec.Vec2

	// Inflections returns the parameters in [0, 1] where the polar
	// sampler must split the segment. If split is true, no closed form
	// exists and the caller splits at t=0.5 instead.
	Inflections() (ts []float64, split bool)

	// SolveTangentNormal returns all t with Tangent(t)·n = 0.
	// Roots outside [0, 1] are included.
	SolveTangentNormal(n vec.Vec2) []float64

	// Transform returns the image of the segment under the affine map m.
	Transform(m matrix.Matrix) Segment

	isSegment()
}

// Line is a straight segment from A to B.
type Line struct {
	A, B vec.Vec2
}

// Quad is a quadratic Bézier curve with control points A, B, C.
type Quad struct {
	A, B, C vec.Vec2
}

// Cubic is a cubic Bézier curve with control points A, B, C, D.
type Cubic struct {
	A, B, C, D vec.Vec2
}

// Conic is a rational quadratic Bézier curve with control points A, B, C,
// where B carries the weight W and A, C have weight 1.
// Circular and elliptical arcs are represented exactly.
type Conic struct {
	A, B, C vec.Vec2
	W       float64
}

func (Line) isSegment()  {}
func (Quad) isSegment()  {}
func (Cubic) isSegment() {}
func (Conic) isSegment() {}

// --- Line ---

func (s Line) Position(t float64) vec.Vec2 {
	return s.A.Mul(1 - t).Add(s.B.Mul(t))
}

func (s Line) Tangent(float64) vec.Vec2 {
	return s.B.Sub(s.A)
}

func (s Line) InitialTangent() vec.Vec2 {
	return firstDirection(s.B.Sub(s.A))
}

func (s Line) TerminalTangent() vec.Vec2 {
	return firstDirection(s.B.Sub(s.A))
}

func (s Line) Inflections() ([]float64, bool) {
	return nil, false
}

// SolveTangentNormal always returns nil: the tangent of a line is constant,
// so the polar sampler never needs to search for a parameter.
func (s Line) SolveTangentNormal(vec.Vec2) []float64 {
	return nil
}

func (s Line) Transform(m matrix.Matrix) Segment {
	return Line{A: apply(m, s.A), B: apply(m, s.B)}
}

// --- Quad ---

func (s Quad) Position(t float64) vec.Vec2 {
	// B(t) = (1-t)²A + 2(1-t)tB + t²C
	omt := 1 - t
	return s.A.Mul(omt * omt).Add(s.B.Mul(2 * omt * t)).Add(s.C.Mul(t * t))
}

func (s Quad) Tangent(t float64) vec.Vec2 {
	return s.B.Sub(s.A).Mul(2 * (1 - t)).Add(s.C.Sub(s.B).Mul(2 * t))
}

func (s Quad) InitialTangent() vec.Vec2 {
	return firstDirection(s.B.Sub(s.A), s.C.Sub(s.A))
}

func (s Quad) TerminalTangent() vec.Vec2 {
	return firstDirection(s.C.Sub(s.B), s.C.Sub(s.A))
}

// Inflections returns nil, since a quadratic Bézier curve is always convex.
func (s Quad) Inflections() ([]float64, bool) {
	return nil, false
}

func (s Quad) SolveTangentNormal(n vec.Vec2) []float64 {
	// B'(t)/2 = (B-A) + t(A - 2B + C)
	a := s.A.Sub(s.B.Mul(2)).Add(s.C).Dot(n)
	b := s.B.Sub(s.A).Dot(n)
	return equation.Linear{A: a, B: b}.Roots()
}

func (s Quad) Transform(m matrix.Matrix) Segment {
	return Quad{A: apply(m, s.A), B: apply(m, s.B), C: apply(m, s.C)}
}

// --- Cubic ---

func (s Cubic) Position(t float64) vec.Vec2 {
	// B(t) = (1-t)³A + 3(1-t)²tB + 3(1-t)t²C + t³D
	omt := 1 - t
	omt2 := omt * omt
	t2 := t * t
	return s.A.Mul(omt2 * omt).
		Add(s.B.Mul(3 * omt2 * t)).
		Add(s.C.Mul(3 * omt * t2)).
		Add(s.D.Mul(t2 * t))
}

func (s Cubic) Tangent(t float64) vec.Vec2 {
	omt := 1 - t
	return s.B.Sub(s.A).Mul(3 * omt * omt).
		Add(s.C.Sub(s.B).Mul(6 * omt * t)).
		Add(s.D.Sub(s.C).Mul(3 * t * t))
}

func (s Cubic) InitialTangent() vec.Vec2 {
	return firstDirection(s.B.Sub(s.A), s.C.Sub(s.A), s.D.Sub(s.A))
}

func (s Cubic) TerminalTangent() vec.Vec2 {
	return firstDirection(s.D.Sub(s.C), s.D.Sub(s.B), s.D.Sub(s.A))
}

// cubicBasis converts Bernstein control points to the power basis.
var cubicBasis = [4][4]float64{
	{1, 0, 0, 0},
	{-3, 3, 0, 0},
	{3, -6, 3, 0},
	{-1, 3, -3, 1},
}

// Inflections uses the determinant construction of Loop and Blinn,
// "Resolution Independent Curve Rendering using Programmable Graphics
// Hardware" (2005).  The control points are lifted to homogeneous
// coordinates, converted to the power basis, and the inflection
// parameters are the roots of -3·d1·t² + 3·d2·t - d3 = 0.
func (s Cubic) Inflections() ([]float64, bool) {
	ctrl := [4][3]float64{
		{s.A.X, s.A.Y, 1},
		{s.B.X, s.B.Y, 1},
		{s.C.X, s.C.Y, 1},
		{s.D.X, s.D.Y, 1},
	}
	var c [4][3]float64
	for i := range 4 {
		for j := range 3 {
			for k := range 4 {
				c[i][j] += cubicBasis[i][k] * ctrl[k][j]
			}
		}
	}

	d1 := -det3(c[3], c[2], c[0])
	d2 := det3(c[3], c[1], c[0])
	d3 := -det3(c[2], c[1], c[0])

	var res []float64
	for _, t := range (equation.Quadratic{A: -3 * d1, B: 3 * d2, C: -d3}).Roots() {
		if equation.InUnit(t) {
			res = append(res, t)
		}
	}
	return res, len(res) == 0
}

func (s Cubic) SolveTangentNormal(n vec.Vec2) []float64 {
	ab := s.B.Sub(s.A)
	bc := s.C.Sub(s.B)
	cd := s.D.Sub(s.C)
	a := 3 * ab.Sub(bc.Mul(2)).Add(cd).Dot(n)
	b := 6 * bc.Sub(ab).Dot(n)
	c := 3 * ab.Dot(n)
	return equation.Quadratic{A: a, B: b, C: c}.Roots()
}

func (s Cubic) Transform(m matrix.Matrix) Segment {
	return Cubic{A: apply(m, s.A), B: apply(m, s.B), C: apply(m, s.C), D: apply(m, s.D)}
}

// det3 returns the determinant of the 3×3 matrix with rows r0, r1, r2.
func det3(r0, r1, r2 [3]float64) float64 {
	return r0[0]*(r1[1]*r2[2]-r1[2]*r2[1]) -
		r0[1]*(r1[0]*r2[2]-r1[2]*r2[0]) +
		r0[2]*(r1[0]*r2[1]-r1[1]*r2[0])
}

// --- Conic ---

// denom returns the weight polynomial (1-t)² + 2(1-t)t·W + t².
func (s Conic) denom(t float64) float64 {
	omt := 1 - t
	return omt*omt + 2*omt*t*s.W + t*t
}

func (s Conic) Position(t float64) vec.Vec2 {
	omt := 1 - t
	num := s.A.Mul(omt * omt).Add(s.B.Mul(2 * omt * t * s.W)).Add(s.C.Mul(t * t))
	return num.Mul(1 / s.denom(t))
}

// Tangent returns the quotient rule derivative of Position.
// The numerator N'D - ND' reduces to the quadratic
// 2[W(B-A)(1-t)² + (C-A)(1-t)t + W(C-B)t²].
func (s Conic) Tangent(t float64) vec.Vec2 {
	omt := 1 - t
	num := s.B.Sub(s.A).Mul(s.W * omt * omt).
		Add(s.C.Sub(s.A).Mul(omt * t)).
		Add(s.C.Sub(s.B).Mul(s.W * t * t)).
		Mul(2)
	d := s.denom(t)
	return num.Mul(1 / (d * d))
}

// weighted returns v·sign(W), or the zero vector if W is zero.
// A negative weight reverses the direction in which the curve leaves
// its end points.
func (s Conic) weighted(v vec.Vec2) vec.Vec2 {
	switch {
	case s.W > 0:
		return v
	case s.W < 0:
		return v.Mul(-1)
	default:
		return vec.Vec2{}
	}
}

func (s Conic) InitialTangent() vec.Vec2 {
	return firstDirection(s.weighted(s.B.Sub(s.A)), s.C.Sub(s.A))
}

func (s Conic) TerminalTangent() vec.Vec2 {
	return firstDirection(s.weighted(s.C.Sub(s.B)), s.C.Sub(s.A))
}

func (s Conic) Inflections() ([]float64, bool) {
	inner := s.W*s.W - 1
	denom := 4*s.W - 4
	if inner < 0 || equation.ApproxEqual(denom, 0) {
		return nil, true
	}

	var res []float64
	if equation.ApproxEqual(inner, 0) {
		if t := -2 / denom; equation.InUnit(t) {
			res = append(res, t)
		}
		return res, false
	}
	sq := 2 * math.Sqrt(inner)
	for _, num := range []float64{-2 + sq, -2 - sq} {
		if t := num / denom; equation.InUnit(t) {
			res = append(res, t)
		}
	}
	return res, false
}

func (s Conic) SolveTangentNormal(n vec.Vec2) []float64 {
	// u(1-t)² + v(1-t)t + w·t² = 0, see Tangent
	u := s.W * s.B.Sub(s.A).Dot(n)
	v := s.C.Sub(s.A).Dot(n)
	w := s.W * s.C.Sub(s.B).Dot(n)
	return equation.Quadratic{A: u - v + w, B: v - 2*u, C: u}.Roots()
}

// Transform maps the control points. Affine maps preserve the weight.
func (s Conic) Transform(m matrix.Matrix) Segment {
	return Conic{A: apply(m, s.A), B: apply(m, s.B), C: apply(m, s.C), W: s.W}
}
