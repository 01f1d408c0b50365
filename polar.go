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
	"slices"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/stroke/equation"
)

// OffsetPair is one sample of a stroked segment: a point on the centre line
// together with the two points at distance width/2 on either side.
type OffsetPair struct {
	T     float64  // segment parameter of the sample
	Angle float64  // tangent angle psi used for the normal
	Point vec.Vec2 // centre line point

	// Inner = Point - N·w/2 and Outer = Point + N·w/2, where
	// N = (-sin psi, cos psi) is the left-hand normal.
	Inner, Outer vec.Vec2
}

// Sample runs the polar sampler on a single segment. Successive samples
// differ in tangent angle by at most quality radians.
func Sample(seg Segment, width, quality float64) []OffsetPair {
	var s sampler
	return s.sample(nil, seg, width, quality)
}

// sampler holds the scratch buffers of the polar sampler.
// The zero value is ready to use.
type sampler struct {
	knots  []float64 // split points in parameter space
	params []float64 // interval boundaries; a cusp appears twice
	angles []float64 // tangent angle at each boundary
	deltas []float64 // signed angle change over each interval
	sums   []int     // cumulative step counts
	roots  []float64
}

// sample appends the offset pairs of seg to dst.
func (s *sampler) sample(dst []OffsetPair, seg Segment, width, q float64) []OffsetPair {
	s.boundaries(seg)
	s.intervals(q)

	half := width / 2
	last := len(s.params) - 1
	k := 0
	for j := 0; j <= s.sums[last]; j++ {
		for k < last && j >= s.sums[k+1] {
			k++
		}

		var t, psi float64
		if j == s.sums[k] {
			t, psi = s.params[k], s.angles[k]
		} else {
			steps := s.sums[k+1] - s.sums[k]
			psi = s.angles[k] + s.deltas[k]/float64(steps)*float64(j-s.sums[k])
			t = s.solve(seg, psi, k)
		}

		p := seg.Position(t)
		n := normalAt(psi).Mul(half)
		dst = append(dst, OffsetPair{
			T:     t,
			Angle: psi,
			Point: p,
			Inner: p.Sub(n),
			Outer: p.Add(n),
		})
	}
	return dst
}

// boundaries fills s.params and s.angles.
// Inflection points split the segment into pieces where the tangent angle
// is monotonic. At a cusp the parameter is listed twice, with the incoming
// and the outgoing tangent angle, so that the half turn in between is
// filled like a round join.
func (s *sampler) boundaries(seg Segment) {
	s.knots = append(s.knots[:0], 0)
	ts, split := seg.Inflections()
	if split {
		s.knots = append(s.knots, 0.5)
	} else {
		for _, t := range ts {
			if t > equation.Epsilon && t < 1-equation.Epsilon {
				s.knots = append(s.knots, t)
			}
		}
		slices.Sort(s.knots)
		s.knots = slices.CompactFunc(s.knots, equation.ApproxEqual)
	}
	s.knots = append(s.knots, 1)

	last := len(s.knots) - 1
	s.params = s.params[:0]
	s.angles = s.angles[:0]
	for i, t := range s.knots {
		var v vec.Vec2
		switch i {
		case 0:
			v = seg.InitialTangent()
		case last:
			v = seg.TerminalTangent()
		default:
			v = seg.Tangent(t)
			if v.Length() < zeroLengthThreshold {
				if d := cuspDirection(seg, t); d.Length() >= zeroLengthThreshold {
					s.params = append(s.params, t, t)
					s.angles = append(s.angles, angleOf(d.Mul(-1)), angleOf(d))
					continue
				}
			}
		}

		var psi float64
		if v.Length() >= zeroLengthThreshold {
			psi = angleOf(v)
		} else if n := len(s.angles); n > 0 {
			psi = s.angles[n-1]
		}
		s.params = append(s.params, t)
		s.angles = append(s.angles, psi)
	}
}

// cuspDirection estimates the second derivative at t, where the tangent
// vanishes. The curve arrives along the negative and leaves along the
// positive of the result.
func cuspDirection(seg Segment, t float64) vec.Vec2 {
	const h = 1e-6
	return seg.Tangent(t + h).Sub(seg.Tangent(t - h)).Mul(1 / (2 * h))
}

// intervals fills s.deltas and s.sums.
func (s *sampler) intervals(q float64) {
	s.deltas = s.deltas[:0]
	s.sums = append(s.sums[:0], 0)
	for k := range len(s.params) - 1 {
		d := relAngleDiff(s.angles[k+1], s.angles[k])
		s.deltas = append(s.deltas, d)
		s.sums = append(s.sums, s.sums[k]+stepCount(d, q))
	}
}

// solve finds the parameter in interval k where the tangent points in the
// direction psi.
func (s *sampler) solve(seg Segment, psi float64, k int) float64 {
	lo, hi := s.params[k], s.params[k+1]
	if lo == hi {
		return lo
	}
	sin, cos := math.Sincos(psi)
	dir := vec.Vec2{X: cos, Y: sin}

	s.roots = append(s.roots[:0], seg.SolveTangentNormal(normalAt(psi))...)
	best, bestDot := 0.0, math.Inf(-1)
	for _, t := range s.roots {
		if !equation.InRange(t, lo, hi) {
			continue
		}
		// the tangent may be anti-parallel to dir at a spurious root
		if d := unit(seg.Tangent(t)).Dot(dir); d > bestDot {
			best, bestDot = t, d
		}
	}
	if bestDot > 0 {
		return max(lo, min(hi, best))
	}

	// no usable root: take the end of the interval whose tangent is
	// closest to psi
	t := lo
	if math.Cos(s.angles[k+1]-psi) > math.Cos(s.angles[k]-psi) {
		t = hi
	}
	Logger().Debug("polar sampler: no root in interval",
		"psi", psi, "lo", lo, "hi", hi, "t", t)
	return t
}
