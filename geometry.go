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
)

// Numerical tolerances.
const (
	// zeroLengthThreshold is the length below which a direction candidate
	// is treated as zero.
	zeroLengthThreshold = 1e-10

	// collinearityThreshold is the turning angle (in radians) below which
	// two consecutive segments are treated as a straight continuation.
	collinearityThreshold = 1e-6

	// parallelThreshold bounds |sin θ| between two directions that are
	// treated as parallel by intersectLines.
	parallelThreshold = 1e-9

	// stepSlack absorbs rounding noise before angles are divided into
	// steps, so that a 90° turn at 10° quality gives 9 steps, not 10.
	stepSlack = 1e-9
)

// unit returns v scaled to length 1. Short vectors map to the zero vector.
func unit(v vec.Vec2) vec.Vec2 {
	l := v.Length()
	if l < zeroLengthThreshold {
		return vec.Vec2{}
	}
	return v.Mul(1 / l)
}

// firstDirection returns the unit vector of the first candidate which is
// not too short. If all candidates are degenerate, the zero vector is
// returned.
func firstDirection(candidates ...vec.Vec2) vec.Vec2 {
	for _, c := range candidates {
		if c.Length() >= zeroLengthThreshold {
			return unit(c)
		}
	}
	return vec.Vec2{}
}

// cross returns the z-component of the 3D cross product of a and b.
func cross(a, b vec.Vec2) float64 {
	return a.X*b.Y - a.Y*b.X
}

// angleOf returns the direction angle of v, in (-π, π].
func angleOf(v vec.Vec2) float64 {
	return math.Atan2(v.Y, v.X)
}

// angleBetween returns the signed angle which rotates from onto to.
func angleBetween(from, to vec.Vec2) float64 {
	return math.Atan2(cross(from, to), from.Dot(to))
}

// normalAt returns the unit normal (90° CCW) of the direction with angle psi.
func normalAt(psi float64) vec.Vec2 {
	sin, cos := math.Sincos(psi)
	return vec.Vec2{X: -sin, Y: cos}
}

// rotate turns v by the angle theta (positive = CCW).
func rotate(v vec.Vec2, theta float64) vec.Vec2 {
	sin, cos := math.Sincos(theta)
	return vec.Vec2{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
	}
}

// relAngleDiff returns a - b, normalised to (-π, π].
func relAngleDiff(a, b float64) float64 {
	d := a - b
	if d > math.Pi {
		d -= 2 * math.Pi
	} else if d <= -math.Pi {
		d += 2 * math.Pi
	}
	return d
}

// stepCount returns the number of steps of at most q radians needed to
// cover the angle delta. The result is at least 1.
func stepCount(delta, q float64) int {
	n := int(math.Ceil(math.Abs(delta)/q - stepSlack))
	return max(n, 1)
}

// intersectLines returns the intersection of the line through p1 with
// direction d1 and the line through p2 with direction d2.
// The result is false if the lines are parallel.
func intersectLines(p1, d1, p2, d2 vec.Vec2) (vec.Vec2, bool) {
	det := cross(d1, d2)
	if math.Abs(det) <= parallelThreshold*d1.Length()*d2.Length() {
		return vec.Vec2{}, false
	}
	s := cross(p2.Sub(p1), d2) / det
	return p1.Add(d1.Mul(s)), true
}

// apply maps the point p through the affine transformation m.
func apply(m matrix.Matrix, p vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: m[0]*p.X + m[2]*p.Y + m[4],
		Y: m[1]*p.X + m[3]*p.Y + m[5],
	}
}

func isFinite(v vec.Vec2) bool {
	return !math.IsNaN(v.X) && !math.IsInf(v.X, 0) &&
		!math.IsNaN(v.Y) && !math.IsInf(v.Y, 0)
}
