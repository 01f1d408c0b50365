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
	"seehuhn.de/go/geom/path"

	"seehuhn.de/go/stroke"
)

// kappa for cubic Bezier approximation of a quarter circle
const kappa = 0.5522847498307936

var curveCases = []TestCase{
	{
		Name:   "quadratic",
		Path:   fromData(quadraticCurve(10, 50, 32, 10, 54, 50), stroke.JoinRound, 4),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "quadratic_shallow",
		Path:   fromData(quadraticCurve(10, 32, 32, 28, 54, 32), stroke.JoinRound, 4),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "quadratic_s_shape",
		Path:   fromData(sCurveQuadratic(10, 32, 54, 32), stroke.JoinMiter, 4),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "cubic",
		Path:   fromData(cubicCurve(10, 50, 20, 10, 44, 10, 54, 50), stroke.JoinRound, 5),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "cubic_deep",
		Path:   fromData(cubicCurve(10, 50, 15, 5, 49, 5, 54, 50), stroke.JoinRound, 5),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "cubic_scurve",
		Path:   fromData(cubicCurve(10, 50, 10, 10, 54, 54, 54, 14), stroke.JoinRound, 5),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "cubic_loop",
		Path:   fromData(cubicCurve(10, 32, 60, 5, 4, 59, 54, 32), stroke.JoinRound, 4),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "cubic_cusp",
		Path:   fromData(cubicCurve(10, 50, 54, 10, 10, 10, 54, 50), stroke.JoinRound, 4),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "circle_cubic",
		Path:   fromData(circle(32, 32, 22), stroke.JoinRound, 6),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "ellipse_cubic",
		Path:   fromData(ellipse(32, 32, 26, 14), stroke.JoinMiter, 4),
		Width:  64,
		Height: 64,
	},
}

// quadraticCurve builds an open path with a quadratic Bezier curve.
func quadraticCurve(x1, y1, cx, cy, x2, y2 float64) *path.Data {
	return (&path.Data{}).
		MoveTo(pt(x1, y1)).
		QuadTo(pt(cx, cy), pt(x2, y2))
}

// cubicCurve builds an open path with a cubic Bezier curve.
func cubicCurve(x1, y1, c1x, c1y, c2x, c2y, x2, y2 float64) *path.Data {
	return (&path.Data{}).
		MoveTo(pt(x1, y1)).
		CubeTo(pt(c1x, c1y), pt(c2x, c2y), pt(x2, y2))
}

// sCurveQuadratic builds an S-shaped path from two quadratic Bezier curves.
func sCurveQuadratic(x1, y1, x2, y2 float64) *path.Data {
	midX := (x1 + x2) / 2
	midY := (y1 + y2) / 2

	return (&path.Data{}).
		MoveTo(pt(x1, y1)).
		QuadTo(pt((x1+midX)/2, y1-20), pt(midX, midY)).
		QuadTo(pt((midX+x2)/2, y2+20), pt(x2, y2))
}

// circle builds a closed approximate circle from four cubic Bezier curves.
func circle(cx, cy, r float64) *path.Data {
	return ellipse(cx, cy, r, r)
}

// ellipse builds a closed approximate ellipse from four cubic Bezier curves.
func ellipse(cx, cy, rx, ry float64) *path.Data {
	kx := rx * kappa
	ky := ry * kappa

	return (&path.Data{}).
		MoveTo(pt(cx+rx, cy)).
		CubeTo(pt(cx+rx, cy-ky), pt(cx+kx, cy-ry), pt(cx, cy-ry)).
		CubeTo(pt(cx-kx, cy-ry), pt(cx-rx, cy-ky), pt(cx-rx, cy)).
		CubeTo(pt(cx-rx, cy+ky), pt(cx-kx, cy+ry), pt(cx, cy+ry)).
		CubeTo(pt(cx+kx, cy+ry), pt(cx+rx, cy+ky), pt(cx+rx, cy)).
		Close()
}
