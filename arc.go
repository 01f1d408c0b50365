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

	"seehuhn.de/go/geom/vec"
)

// Arc is an elliptical arc in endpoint form, with the same meaning as the
// SVG "A" path command.
type Arc struct {
	Start, End vec.Vec2
	Radii      vec.Vec2 // X and Y radius, must be non-zero
	Rotation   float64  // rotation of the ellipse's x-axis, in radians
	LargeArc   bool
	Sweep      bool // the angle increases from Start to End
}

// ellipse is the centre form of an Arc.
type ellipse struct {
	center   vec.Vec2
	rx, ry   float64
	sin, cos float64 // of the rotation angle
	theta    float64 // parameter angle at the start point
	delta    float64 // signed parameter angle span, in (-2π, 2π)
}

// point returns the point on the ellipse at parameter angle eta.
func (e *ellipse) point(eta float64) vec.Vec2 {
	sinEta, cosEta := math.Sincos(eta)
	x := e.rx * cosEta
	y := e.ry * sinEta
	return vec.Vec2{
		X: e.center.X + x*e.cos - y*e.sin,
		Y: e.center.Y + x*e.sin + y*e.cos,
	}
}

// derivative returns d/d(eta) of point(eta).
func (e *ellipse) derivative(eta float64) vec.Vec2 {
	sinEta, cosEta := math.Sincos(eta)
	x := -e.rx * sinEta
	y := e.ry * cosEta
	return vec.Vec2{
		X: x*e.cos - y*e.sin,
		Y: x*e.sin + y*e.cos,
	}
}

// Center converts the arc to centre form. The radii are scaled up if they
// are too small to span the chord. The returned angles are the parameter
// angle of the start point and the signed angle span, in (-2π, 2π).
func (a Arc) Center() (center, radii vec.Vec2, theta, delta float64) {
	e := a.ellipse()
	return e.center, vec.Vec2{X: e.rx, Y: e.ry}, e.theta, e.delta
}

func (a Arc) ellipse() *ellipse {
	rx, ry := math.Abs(a.Radii.X), math.Abs(a.Radii.Y)
	sinPhi, cosPhi := math.Sincos(a.Rotation)

	// half chord in the ellipse's frame
	hx := (a.Start.X - a.End.X) / 2
	hy := (a.Start.Y - a.End.Y) / 2
	xp := cosPhi*hx + sinPhi*hy
	yp := -sinPhi*hx + cosPhi*hy

	if lambda := (xp*xp)/(rx*rx) + (yp*yp)/(ry*ry); lambda > 1 {
		s := math.Sqrt(lambda)
		rx *= s
		ry *= s
	}

	rx2, ry2 := rx*rx, ry*ry
	xp2, yp2 := xp*xp, yp*yp
	var radical float64
	if num := rx2*ry2 - rx2*yp2 - ry2*xp2; num > 0 {
		radical = math.Sqrt(num / (rx2*yp2 + ry2*xp2))
	}
	if a.LargeArc == a.Sweep {
		radical = -radical
	}
	cxp := radical * rx * yp / ry
	cyp := -radical * ry * xp / rx

	e := &ellipse{
		center: vec.Vec2{
			X: cosPhi*cxp - sinPhi*cyp + (a.Start.X+a.End.X)/2,
			Y: sinPhi*cxp + cosPhi*cyp + (a.Start.Y+a.End.Y)/2,
		},
		rx:  rx,
		ry:  ry,
		sin: sinPhi,
		cos: cosPhi,
	}

	u := vec.Vec2{X: (xp - cxp) / rx, Y: (yp - cyp) / ry}
	v := vec.Vec2{X: (-xp - cxp) / rx, Y: (-yp - cyp) / ry}
	e.theta = angleOf(u)
	delta := math.Mod(angleBetween(u, v), 2*math.Pi)
	if a.Sweep && delta < 0 {
		delta += 2 * math.Pi
	} else if !a.Sweep && delta > 0 {
		delta -= 2 * math.Pi
	}
	e.delta = delta
	return e
}

// Conic returns the arc as a single rational quadratic segment.
//
// The middle control point is the intersection of the tangent lines at the
// two end points, and the weight is cos(delta/2). For an exact half
// ellipse these tangents are parallel: in this case the returned conic
// still has the correct end points and weight, but the middle control
// point is only a placeholder (the arc mid point) and ok is false. Use
// [Arc.Segments] to get a usable representation for every arc.
func (a Arc) Conic() (c Conic, ok bool) {
	return a.ellipse().conic(a.Start, a.End)
}

func (e *ellipse) conic(start, end vec.Vec2) (Conic, bool) {
	c := Conic{A: start, C: end, W: math.Cos(e.delta / 2)}

	d0 := e.derivative(e.theta)
	d1 := e.derivative(e.theta + e.delta)
	b, ok := intersectLines(start, d0, end, d1)
	if !ok {
		c.B = e.point(e.theta + e.delta/2)
		return c, false
	}
	c.B = b
	return c, true
}

// Segments returns the arc as one conic segment or, if the tangents at the
// end points are parallel or the arc spans more than half the ellipse, as
// several conic segments of at most 90° each.
func (a Arc) Segments() []Segment {
	e := a.ellipse()
	if c, ok := e.conic(a.Start, a.End); ok && math.Abs(e.delta) <= math.Pi {
		return []Segment{c}
	}

	n := stepCount(e.delta, math.Pi/2)
	Logger().Debug("splitting arc",
		"start", a.Start, "end", a.End, "delta", e.delta, "pieces", n)

	res := make([]Segment, 0, n)
	step := e.delta / float64(n)
	start := a.Start
	for i := range n {
		piece := *e
		piece.theta = e.theta + float64(i)*step
		piece.delta = step
		end := a.End
		if i < n-1 {
			end = e.point(piece.theta + step)
		}
		c, _ := piece.conic(start, end)
		res = append(res, c)
		start = end
	}
	return res
}
