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

var arcCases = []TestCase{
	{
		Name: "half_circle",
		Path: build(stroke.JoinRound, 4, func(b *stroke.Builder) {
			b.MoveTo(pt(12, 32)).ArcTo(pt(20, 20), 0, false, true, pt(52, 32))
		}),
		Width:  64,
		Height: 64,
	},
	{
		Name: "quarter_circle",
		Path: build(stroke.JoinRound, 6, func(b *stroke.Builder) {
			b.MoveTo(pt(12, 52)).ArcTo(pt(40, 40), 0, false, true, pt(52, 12))
		}),
		Width:  64,
		Height: 64,
	},
	{
		Name: "large_arc",
		Path: build(stroke.JoinMiter, 4, func(b *stroke.Builder) {
			b.MoveTo(pt(20, 14)).ArcTo(pt(20, 20), 0, true, false, pt(44, 14))
		}),
		Width:  64,
		Height: 64,
	},
	{
		Name: "rotated_ellipse",
		Path: build(stroke.JoinRound, 3, func(b *stroke.Builder) {
			b.MoveTo(pt(10, 32)).
				ArcTo(pt(24, 10), math.Pi/6, false, false, pt(54, 32)).
				ArcTo(pt(24, 10), math.Pi/6, false, false, pt(10, 32)).
				Close()
		}),
		Width:  64,
		Height: 64,
	},
	{
		// radii too small for the chord are scaled up
		Name: "scaled_radii",
		Path: build(stroke.JoinRound, 4, func(b *stroke.Builder) {
			b.MoveTo(pt(8, 40)).ArcTo(pt(5, 5), 0, false, true, pt(56, 40))
		}),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "rounded_rectangle",
		Path:   roundedRectangle(stroke.JoinMiter, 3, 10, 14, 54, 50, 8),
		Width:  64,
		Height: 64,
	},
}

// roundedRectangle builds a closed rectangle with circular corners.
func roundedRectangle(join stroke.JoinStyle, width, x1, y1, x2, y2, r float64) *stroke.Path {
	radii := pt(r, r)
	return build(join, width, func(b *stroke.Builder) {
		b.MoveTo(pt(x1+r, y1)).
			LineTo(pt(x2-r, y1)).
			ArcTo(radii, 0, false, true, pt(x2, y1+r)).
			LineTo(pt(x2, y2-r)).
			ArcTo(radii, 0, false, true, pt(x2-r, y2)).
			LineTo(pt(x1+r, y2)).
			ArcTo(radii, 0, false, true, pt(x1, y2-r)).
			LineTo(pt(x1, y1+r)).
			ArcTo(radii, 0, false, true, pt(x1+r, y1)).
			Close()
	})
}
