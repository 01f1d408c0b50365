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

	"seehuhn.de/go/geom/path"

	"seehuhn.de/go/stroke"
)

var complexCases = []TestCase{
	{
		Name:   "spiral",
		Path:   fromData(spiralPath(64, 64, 6, 56, 3), stroke.JoinRound, 3),
		Width:  128,
		Height: 128,
	},
	{
		Name:   "zigzag_miter",
		Path:   fromData(zigzagPath(8, 32, 56, 16), stroke.JoinMiter, 5),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "zigzag_round",
		Path:   fromData(zigzagPath(8, 32, 56, 16), stroke.JoinRound, 5),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "tight_curve",
		Path:   fromData(tightCurve(32, 32, 6), stroke.JoinRound, 14),
		Width:  64,
		Height: 64,
	},
	{
		Name: "mixed",
		Path: build(stroke.JoinRound, 3, func(b *stroke.Builder) {
			b.MoveTo(pt(8, 56)).
				LineTo(pt(8, 24)).
				QuadTo(pt(8, 8), pt(24, 8)).
				CubeTo(pt(40, 8), pt(56, 20), pt(40, 32)).
				ArcTo(pt(12, 12), 0, false, true, pt(40, 56)).
				Close()
		}),
		Width:  64,
		Height: 64,
	},
}

// spiralPath builds an Archimedean spiral from quadratic pieces.
func spiralPath(cx, cy, rMin, rMax, turns float64) *path.Data {
	const perTurn = 16
	steps := int(turns * perTurn)
	total := turns * 2 * math.Pi
	growth := (rMax - rMin) / total

	at := func(angle float64) (x, y float64) {
		r := rMin + growth*angle
		return cx + r*math.Cos(angle), cy + r*math.Sin(angle)
	}

	d := (&path.Data{}).MoveTo(pt(at(0)))
	for i := 1; i <= steps; i++ {
		mid := (float64(i) - 0.5) / float64(steps) * total
		end := float64(i) / float64(steps) * total
		d = d.QuadTo(pt(at(mid)), pt(at(end)))
	}
	return d
}

// zigzagPath builds a zigzag pattern where adjacent thick strokes overlap.
func zigzagPath(x1, cy, x2, amplitude float64) *path.Data {
	const segments = 5
	segWidth := (x2 - x1) / segments

	d := (&path.Data{}).MoveTo(pt(x1, cy))
	for i := 1; i <= segments; i++ {
		y := cy + amplitude
		if i%2 == 1 {
			y = cy - amplitude
		}
		d = d.LineTo(pt(x1+float64(i)*segWidth, y))
	}
	return d
}

// tightCurve builds a U-shaped curve whose radius is smaller than half the
// stroke width, so that the inner offset folds over.
func tightCurve(cx, cy, r float64) *path.Data {
	k := r * kappa
	return (&path.Data{}).
		MoveTo(pt(cx-r, cy-20)).
		LineTo(pt(cx-r, cy)).
		CubeTo(pt(cx-r, cy+k), pt(cx-k, cy+r), pt(cx, cy+r)).
		CubeTo(pt(cx+k, cy+r), pt(cx+r, cy+k), pt(cx+r, cy)).
		LineTo(pt(cx+r, cy-20))
}
