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

var precisionCases = []TestCase{
	{
		Name:   "subpixel_offset_00",
		Path:   polyline(stroke.JoinMiter, 4, pt(10, 32), pt(54, 32)),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "subpixel_offset_25",
		Path:   polyline(stroke.JoinMiter, 4, pt(10.25, 32.25), pt(54.25, 32.25)),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "subpixel_offset_50",
		Path:   polyline(stroke.JoinMiter, 4, pt(10.5, 32.5), pt(54.5, 32.5)),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "thin_line",
		Path:   polyline(stroke.JoinMiter, 1, pt(5, 10.5), pt(59, 10.5)),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "wide_line",
		Path:   polyline(stroke.JoinRound, 40, pt(12, 32), pt(52, 32)),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "tiny_curve",
		Path:   fromData(cubicCurve(30, 34, 31, 30, 33, 30, 34, 34), stroke.JoinRound, 2),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "large_offset",
		Path:   polyline(stroke.JoinMiter, 4, pt(1e6+10, 1e6+10), pt(1e6+54, 1e6+54)),
		Width:  64,
		Height: 64,
		CTM:    matrix.Matrix{1, 0, 0, 1, -1e6, -1e6},
	},
}
