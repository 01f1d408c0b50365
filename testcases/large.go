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

// largeCases have many segments or a large canvas.
var largeCases = []TestCase{
	{
		Name:   "large_ring",
		Path:   fromData(circle(256, 256, 180), stroke.JoinRound, 40),
		Width:  512,
		Height: 512,
	},
	{
		Name:   "large_polyline",
		Path:   sineWave(stroke.JoinMiter, 3, 16, 496, 256, 120, 200),
		Width:  512,
		Height: 512,
	},
	{
		Name:   "large_grid",
		Path:   grid(stroke.JoinBevel, 2, 8, 512, 12),
		Width:  512,
		Height: 512,
	},
	{
		// partly outside the canvas
		Name:   "large_clipped",
		Path:   polygon(stroke.JoinMiter, 20, pt(-100, 100), pt(612, 100), pt(612, 400), pt(-100, 400)),
		Width:  512,
		Height: 512,
	},
}

// sineWave builds a polyline with n segments approximating a sine wave.
func sineWave(join stroke.JoinStyle, width, x1, x2, cy, amplitude float64, n int) *stroke.Path {
	return build(join, width, func(b *stroke.Builder) {
		for i := range n + 1 {
			x := x1 + (x2-x1)*float64(i)/float64(n)
			p := pt(x, cy+amplitude*math.Sin(6*math.Pi*float64(i)/float64(n)))
			if i == 0 {
				b.MoveTo(p)
			} else {
				b.LineTo(p)
			}
		}
	})
}

// grid builds an n×n grid of closed squares.
func grid(join stroke.JoinStyle, width float64, n int, size, gap float64) *stroke.Path {
	cell := size / float64(n)
	return build(join, width, func(b *stroke.Builder) {
		for row := range n {
			for col := range n {
				x1 := float64(col)*cell + gap
				y1 := float64(row)*cell + gap
				x2 := float64(col+1)*cell - gap
				y2 := float64(row+1)*cell - gap
				b.MoveTo(pt(x1, y1)).
					LineTo(pt(x2, y1)).
					LineTo(pt(x2, y2)).
					LineTo(pt(x1, y2)).
					Close()
			}
		}
	})
}
