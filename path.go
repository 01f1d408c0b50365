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

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// Errors reported by [Builder] and [FromPath].
var (
	ErrNonFinite      = errors.New("coordinate is not finite")
	ErrZeroRadius     = errors.New("arc radius is zero")
	ErrNoCurrentPoint = errors.New("no current point")
)

// Path is the input of the tessellator.
type Path struct {
	Subpaths []Subpath
	Join     JoinStyle
	Width    float64
}

// Subpath is a sequence of connected segments.
// If Closed is set, the last segment ends where the first one starts and
// a join is drawn there.
type Subpath struct {
	Segments []Segment
	Closed   bool
}

// NewPath returns a path with a single open subpath.
func NewPath(join JoinStyle, width float64, segs ...Segment) *Path {
	return &Path{
		Subpaths: []Subpath{{Segments: segs}},
		Join:     join,
		Width:    width,
	}
}

// Transform returns the image of the path under the affine map m.
// The stroke width is not changed.
func (p *Path) Transform(m matrix.Matrix) *Path {
	res := &Path{
		Subpaths: make([]Subpath, len(p.Subpaths)),
		Join:     p.Join,
		Width:    p.Width,
	}
	for i, sp := range p.Subpaths {
		segs := make([]Segment, len(sp.Segments))
		for j, seg := range sp.Segments {
			segs[j] = seg.Transform(m)
		}
		res.Subpaths[i] = Subpath{Segments: segs, Closed: sp.Closed}
	}
	return res
}

// Builder constructs a [Path] from drawing commands.
//
// Errors are sticky: after the first error all further calls are ignored,
// and the error is returned by [Builder.Path].
// Zero-length segments are silently dropped.
type Builder struct {
	subpaths []Subpath
	segs     []Segment

	start, current vec.Vec2
	hasCurrent     bool

	err error
}

// MoveTo starts a new subpath at p.
func (b *Builder) MoveTo(p vec.Vec2) *Builder {
	if !b.ok("MoveTo", p) {
		return b
	}
	b.flush(false)
	b.start, b.current = p, p
	b.hasCurrent = true
	return b
}

// LineTo appends a straight line from the current point to p.
func (b *Builder) LineTo(p vec.Vec2) *Builder {
	if !b.ok("LineTo", p) || !b.needCurrent("LineTo") {
		return b
	}
	b.add(Line{A: b.current, B: p}, p)
	return b
}

// HLineTo appends a horizontal line from the current point to x.
func (b *Builder) HLineTo(x float64) *Builder {
	if !b.ok("HLineTo", vec.Vec2{X: x}) || !b.needCurrent("HLineTo") {
		return b
	}
	return b.LineTo(vec.Vec2{X: x, Y: b.current.Y})
}

// VLineTo appends a vertical line from the current point to y.
func (b *Builder) VLineTo(y float64) *Builder {
	if !b.ok("VLineTo", vec.Vec2{Y: y}) || !b.needCurrent("VLineTo") {
		return b
	}
	return b.LineTo(vec.Vec2{X: b.current.X, Y: y})
}

// QuadTo appends a quadratic Bézier curve with control point c.
func (b *Builder) QuadTo(c, p vec.Vec2) *Builder {
	if !b.ok("QuadTo", c, p) || !b.needCurrent("QuadTo") {
		return b
	}
	b.add(Quad{A: b.current, B: c, C: p}, c, p)
	return b
}

// CubeTo appends a cubic Bézier curve with control points c1 and c2.
func (b *Builder) CubeTo(c1, c2, p vec.Vec2) *Builder {
	if !b.ok("CubeTo", c1, c2, p) || !b.needCurrent("CubeTo") {
		return b
	}
	b.add(Cubic{A: b.current, B: c1, C: c2, D: p}, c1, c2, p)
	return b
}

// ArcTo appends an elliptical arc from the current point to p, with the
// same arguments as the SVG "A" command. The rotation is in radians.
// An arc which ends at the current point is dropped.
func (b *Builder) ArcTo(radii vec.Vec2, rotation float64, largeArc, sweep bool, p vec.Vec2) *Builder {
	if !b.ok("ArcTo", radii, vec.Vec2{X: rotation}, p) || !b.needCurrent("ArcTo") {
		return b
	}
	if radii.X == 0 || radii.Y == 0 {
		b.err = fmt.Errorf("ArcTo: %w", ErrZeroRadius)
		return b
	}
	if p.Sub(b.current).Length() < zeroLengthThreshold {
		Logger().Debug("dropping arc with identical end points", "p", p)
		return b
	}

	a := Arc{
		Start:    b.current,
		End:      p,
		Radii:    radii,
		Rotation: rotation,
		LargeArc: largeArc,
		Sweep:    sweep,
	}
	b.segs = append(b.segs, a.Segments()...)
	b.current = p
	return b
}

// Close closes the current subpath with a straight line back to its start.
// Drawing may continue from the start point, in a new subpath.
func (b *Builder) Close() *Builder {
	if b.err != nil || !b.hasCurrent {
		return b
	}
	if b.current.Sub(b.start).Length() >= zeroLengthThreshold && len(b.segs) > 0 {
		b.segs = append(b.segs, Line{A: b.current, B: b.start})
	}
	b.flush(true)
	b.current = b.start
	return b
}

// Path returns the accumulated path, or the first error encountered.
// The builder is reset and can be reused.
func (b *Builder) Path(join JoinStyle, width float64) (*Path, error) {
	b.flush(false)
	subpaths, err := b.subpaths, b.err
	*b = Builder{}

	if err != nil {
		return nil, err
	}
	if !(width > 0) || math.IsInf(width, 0) {
		return nil, fmt.Errorf("path: %w: %g", ErrInvalidWidth, width)
	}
	if !join.IsValid() {
		return nil, fmt.Errorf("path: %w: %s", ErrUnsupportedJoin, join)
	}
	return &Path{Subpaths: subpaths, Join: join, Width: width}, nil
}

func (b *Builder) ok(op string, pts ...vec.Vec2) bool {
	if b.err != nil {
		return false
	}
	for _, p := range pts {
		if !isFinite(p) {
			b.err = fmt.Errorf("%s: %w: %v", op, ErrNonFinite, p)
			return false
		}
	}
	return true
}

func (b *Builder) needCurrent(op string) bool {
	if !b.hasCurrent {
		b.err = fmt.Errorf("%s: %w", op, ErrNoCurrentPoint)
		return false
	}
	return true
}

// add appends seg unless all of its points coincide with the current point.
func (b *Builder) add(seg Segment, pts ...vec.Vec2) {
	end := pts[len(pts)-1]
	for _, p := range pts {
		if p.Sub(b.current).Length() >= zeroLengthThreshold {
			b.segs = append(b.segs, seg)
			b.current = end
			return
		}
	}
	Logger().Debug("dropping zero-length segment", "at", b.current)
}

func (b *Builder) flush(closed bool) {
	if len(b.segs) > 0 {
		b.subpaths = append(b.subpaths, Subpath{Segments: b.segs, Closed: closed})
	}
	b.segs = nil
}

// FromPath converts a path from seehuhn.de/go/geom/path.
// Drawing commands without a current point are skipped.
func FromPath(p path.Path, join JoinStyle, width float64) (*Path, error) {
	b := &Builder{}
	for cmd, pts := range p {
		if cmd != path.CmdMoveTo && !b.hasCurrent {
			continue
		}
		switch cmd {
		case path.CmdMoveTo:
			b.MoveTo(pts[0])
		case path.CmdLineTo:
			b.LineTo(pts[0])
		case path.CmdQuadTo:
			b.QuadTo(pts[0], pts[1])
		case path.CmdCubeTo:
			b.CubeTo(pts[0], pts[1], pts[2])
		case path.CmdClose:
			b.Close()
		}
	}
	return b.Path(join, width)
}

// JoinFromPDF returns the join style corresponding to a PDF line join.
func JoinFromPDF(s graphics.LineJoinStyle) (JoinStyle, error) {
	switch s {
	case graphics.LineJoinMiter:
		return JoinMiter, nil
	case graphics.LineJoinRound:
		return JoinRound, nil
	case graphics.LineJoinBevel:
		return JoinBevel, nil
	default:
		return JoinNone, fmt.Errorf("%w: PDF join %v", ErrUnsupportedJoin, s)
	}
}
