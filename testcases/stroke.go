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
	"seehuhn.de/go/stroke"
)

var strokeCases = []TestCase{
	{
		Name:   "line_horizontal",
		Path:   polyline(stroke.JoinMiter, 8, pt(10, 32), pt(54, 32)),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "line_diagonal",
		Path:   polyline(stroke.JoinMiter, 6, pt(8, 8), pt(56, 56)),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "corner_none",
		Path:   polyline(stroke.JoinNone, 6, pt(10, 50), pt(32, 14), pt(54, 50)),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "corner_bevel",
		Path:   polyline(stroke.JoinBevel, 6, pt(10, 50), pt(32, 14), pt(54, 50)),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "corner_miter",
		Path:   polyline(stroke.JoinMiter, 6, pt(10, 50), pt(32, 14), pt(54, 50)),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "corner_round",
		Path:   polyline(stroke.JoinRound, 6, pt(10, 50), pt(32, 14), pt(54, 50)),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "right_angle_round",
		Path:   polyline(stroke.JoinRound, 10, pt(12, 12), pt(52, 12), pt(52, 52)),
		Width:  64,
		Height: 64,
	},
	{
		// the miter would be about 13 times the width, so a bevel is drawn
		Name:   "sharp_miter_limited",
		Path:   polyline(stroke.JoinMiter, 4, pt(6, 36), pt(58, 32), pt(6, 28)),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "collinear",
		Path:   polyline(stroke.JoinRound, 6, pt(8, 32), pt(24, 32), pt(40, 32), pt(56, 32)),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "reversal",
		Path:   polyline(stroke.JoinRound, 6, pt(10, 32), pt(54, 32), pt(20, 32)),
		Width:  64,
		Height: 64,
	},
}
