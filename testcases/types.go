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

// Package testcases is a catalogue of stroke scenarios shared by the unit
// tests, the benchmarks and the export tools.
package testcases

import (
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/stroke"
)

// TestCase is a single stroke scenario.
type TestCase struct {
	Name   string        // lowercase a-z, 0-9 and _ only
	Path   *stroke.Path  // the path to stroke, with join style and width
	Width  int           // canvas width in pixels
	Height int           // canvas height in pixels
	CTM    matrix.Matrix // path to device space (zero-value means identity)
}

// Device returns the transformation from path coordinates to pixels.
func (tc TestCase) Device() matrix.Matrix {
	if tc.CTM == (matrix.Matrix{}) {
		return matrix.Identity
	}
	return tc.CTM
}

// pt is a helper to create a vec.Vec2 from x, y coordinates.
func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}

// fromData converts a geom path into a stroke path.
// The catalogue is static, so errors indicate a bug.
func fromData(d *path.Data, join stroke.JoinStyle, width float64) *stroke.Path {
	p, err := stroke.FromPath(d.Iter(), join, width)
	if err != nil {
		panic(err)
	}
	return p
}

// build runs the drawing commands in fn on a new Builder.
func build(join stroke.JoinStyle, width float64, fn func(b *stroke.Builder)) *stroke.Path {
	b := &stroke.Builder{}
	fn(b)
	p, err := b.Path(join, width)
	if err != nil {
		panic(err)
	}
	return p
}

// polyline builds an open path of straight lines through pts.
func polyline(join stroke.JoinStyle, width float64, pts ...vec.Vec2) *stroke.Path {
	d := (&path.Data{}).MoveTo(pts[0])
	for _, p := range pts[1:] {
		d = d.LineTo(p)
	}
	return fromData(d, join, width)
}

// polygon builds a closed path of straight lines through pts.
func polygon(join stroke.JoinStyle, width float64, pts ...vec.Vec2) *stroke.Path {
	d := (&path.Data{}).MoveTo(pts[0])
	for _, p := range pts[1:] {
		d = d.LineTo(p)
	}
	return fromData(d.Close(), join, width)
}
