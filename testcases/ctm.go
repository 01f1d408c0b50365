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
	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/stroke"
)

var ctmCases = []TestCase{
	{
		Name:   "scale_2x",
		Path:   polygon(stroke.JoinMiter, 2, pt(0, 0), pt(20, 0), pt(20, 20), pt(0, 20)),
		Width:  128,
		Height: 128,
		CTM:    matrix.Scale(2, 2).Translate(24, 24),
	},
	{
		Name:   "scale_half",
		Path:   polygon(stroke.JoinBevel, 8, pt(0, 0), pt(80, 0), pt(80, 80), pt(0, 80)),
		Width:  64,
		Height: 64,
		CTM:    matrix.Scale(0.5, 0.5).Translate(12, 12),
	},
	{
		Name:   "scale_anisotropic",
		Path:   fromData(circle(0, 0, 10), stroke.JoinRound, 2),
		Width:  128,
		Height: 64,
		CTM:    matrix.Scale(5, 2).Translate(64, 32),
	},
	{
		Name:   "rotate_45deg",
		Path:   polyline(stroke.JoinRound, 4, pt(-20, 10), pt(0, -10), pt(20, 10)),
		Width:  64,
		Height: 64,
		CTM:    matrix.RotateDeg(45).Translate(32, 32),
	},
	{
		Name:   "rotate_90deg",
		Path:   fromData(cubicCurve(-20, 10, -10, -20, 10, 20, 20, -10), stroke.JoinRound, 4),
		Width:  64,
		Height: 64,
		CTM:    matrix.RotateDeg(90).Translate(32, 32),
	},
	{
		Name:   "flip_y",
		Path:   polyline(stroke.JoinMiter, 4, pt(10, 10), pt(32, 50), pt(54, 10)),
		Width:  64,
		Height: 64,
		CTM:    matrix.Matrix{1, 0, 0, -1, 0, 64},
	},
}
