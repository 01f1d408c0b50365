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
	"errors"
	"fmt"
	"math"

	"seehuhn.de/go/geom/vec"
)

// JoinStyle selects the geometry which fills the gap between two
// consecutive segments of a subpath.
type JoinStyle int

// These are the supported join styles.
const (
	JoinNone JoinStyle = iota
	JoinBevel
	JoinMiter
	JoinRound
)

func (s JoinStyle) String() string {
	switch s {
	case JoinNone:
		return "none"
	case JoinBevel:
		return "bevel"
	case JoinMiter:
		return "miter"
	case JoinRound:
		return "round"
	default:
		return fmt.Sprintf("JoinStyle(%d)", int(s))
	}
}

// IsValid reports whether s is one of the supported join styles.
func (s JoinStyle) IsValid() bool {
	return s >= JoinNone && s <= JoinRound
}

// ErrUnsupportedJoin is returned for join styles other than the four
// supported ones.
var ErrUnsupportedJoin = errors.New("unsupported join style")

// Boundary is the end of a stroked segment where a join attaches.
type Boundary struct {
	Tangent      vec.Vec2 // unit tangent, in the direction of travel
	Center       vec.Vec2 // point on the centre line
	Inner, Outer vec.Vec2 // offset points, see OffsetPair
}

// startBoundary returns the boundary at the start of a sampled segment.
func startBoundary(seg Segment, pairs []OffsetPair) Boundary {
	p := pairs[0]
	return Boundary{Tangent: seg.InitialTangent(), Center: p.Point, Inner: p.Inner, Outer: p.Outer}
}

// endBoundary returns the boundary at the end of a sampled segment.
func endBoundary(seg Segment, pairs []OffsetPair) Boundary {
	p := pairs[len(pairs)-1]
	return Boundary{Tangent: seg.TerminalTangent(), Center: p.Point, Inner: p.Inner, Outer: p.Outer}
}

// Join returns the triangles which connect the end prev of one segment to
// the start next of the following segment.
// Round joins use fan steps of at most quality radians. Miter joins whose
// length exceeds miterLimit times the width are drawn as bevels.
func Join(style JoinStyle, prev, next Boundary, width, quality, miterLimit float64) ([]Triangle, error) {
	return appendJoin(nil, style, prev, next, width, quality, miterLimit)
}

func appendJoin(dst []Triangle, style JoinStyle, prev, next Boundary, width, quality, miterLimit float64) ([]Triangle, error) {
	if !style.IsValid() {
		return dst, fmt.Errorf("join: %w: %s", ErrUnsupportedJoin, style)
	}

	angle := angleBetween(next.Tangent, prev.Tangent)
	if math.Abs(angle) < collinearityThreshold || style == JoinNone {
		return dst, nil
	}

	// corners on the outside of the turn
	c1, c2 := prev.Inner, next.Inner
	if angle > 0 {
		c1, c2 = prev.Outer, next.Outer
	}
	center := prev.Center

	switch style {
	case JoinMiter:
		apex, ok := intersectLines(c1, prev.Tangent, c2, next.Tangent)
		if ok && 2*apex.Sub(center).Length() <= miterLimit*width {
			return append(dst, Triangle{c1, c2, apex}, Triangle{c1, c2, center}), nil
		}
		Logger().Debug("miter join replaced by bevel",
			"center", center, "angle", angle, "parallel", !ok)
		return append(dst, Triangle{c1, c2, center}), nil

	case JoinRound:
		n := stepCount(angle, quality)
		step := -angle / float64(n)
		r := c1.Sub(center)
		from := c1
		for i := 1; i <= n; i++ {
			to := c2
			if i < n {
				to = center.Add(rotate(r, step*float64(i)))
			}
			dst = append(dst, Triangle{center, from, to})
			from = to
		}
		return dst, nil

	default: // JoinBevel
		return append(dst, Triangle{c1, c2, center}), nil
	}
}
