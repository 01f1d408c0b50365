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
package testcases

import (
	"math"

	"seehuhn.de/go/stroke"
)

var subpathCases = []TestCase{
	{
		Name:   "closed_square_miter",
		Path:   polygon(stroke.JoinMiter, 6, pt(14, 14), pt(50, 14), pt(50, 50), pt(14, 50)),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "closed_triangle_round",
		Path:   polygon(stroke.JoinRound, 6, pt(32, 8), pt(56, 52), pt(8, 52)),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "two_subpaths",
		Path:   twoTriangles(stroke.JoinBevel, 3, 16, 32, 48, 32, 12),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "star",
		Path:   fivePointStar(stroke.JoinMiter, 2, 32, 32, 26),
		Width:  64,
		Height: 64,
	},
	{
		Name: "open_then_closed",
		Path: build(stroke.JoinRound, 3, func(b *stroke.Builder) {
			b.MoveTo(pt(8, 8)).LineTo(pt(56, 8))
			b.MoveTo(pt(16, 24)).LineTo(pt(48, 24)).LineTo(pt(32, 56)).Close()
		}),
		Width:  64,
		Height: 64,
	},
}

// twoTriangles builds two closed triangles side by side.
func twoTriangles(join stroke.JoinStyle, width, cx1, cy1, cx2, cy2, size float64) *stroke.Path {
	return build(join, width, func(b *stroke.Builder) {
		for _, c := range []struct{ x, y float64 }{{cx1, cy1}, {cx2, cy2}} {
			b.MoveTo(pt(c.x, c.y-size)).
				LineTo(pt(c.x+size, c.y+size)).
				LineTo(pt(c.x-size, c.y+size)).
				Close()
		}
	})
}

// fivePointStar builds a self-intersecting five-pointed star.
func fivePointStar(join stroke.JoinStyle, width, cx, cy, r float64) *stroke.Path {
	return build(join, width, func(b *stroke.Builder) {
		for i := range 5 {
			angle := -math.Pi/2 + float64(2*i)*2*math.Pi/5
			p := pt(cx+r*math.Cos(angle), cy+r*math.Sin(angle))
			if i == 0 {
				b.MoveTo(p)
			} else {
				b.LineTo(p)
			}
		}
		b.Close()
	})
}
