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

// Package raster converts triangle meshes produced by the stroke package
// into pixel coverage values.
//
// The triangles of a stroke mesh overlap and have no consistent orientation.
// The rasteriser orients every triangle counter-clockwise in device space,
// so that the nonzero winding rule yields the union of all triangles.
package raster

import (
	"cmp"
	"math"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/stroke"
)

// edge is a triangle side in device coordinates, stored with y0 < y1.
type edge struct {
	x0, y0 float64
	x1, y1 float64
	dxdy   float64 // (x1-x0)/(y1-y0)
	dir    float32 // +1 if the side runs downwards in the triangle, -1 otherwise
}

func (e *edge) xAt(y float64) float64 {
	return e.x0 + e.dxdy*(y-e.y0)
}

func (e *edge) yAt(x float64) float64 {
	return e.y0 + (x-e.x0)/e.dxdy
}

// Rasteriser computes the pixel coverage of triangle meshes.
// Create one instance and reuse it for multiple meshes. Internal buffers
// grow as needed but never shrink.
//
// A Rasteriser is not safe for concurrent use.
type Rasteriser struct {
	// CTM maps mesh coordinates to device coordinates.
	CTM matrix.Matrix

	// Clip bounds the output to this device-space rectangle.
	// Coordinates must be integer-aligned.
	Clip rect.Rect

	cover  []float32 // signed vertical extent per pixel; reused as output
	area   []float32 // area to the right of the edge, within the pixel
	edges  []edge
	active []int // indices into edges

	devXMin, devXMax float64
	devYMin, devYMax float64
}

// NewRasteriser returns a Rasteriser with the given clip rectangle and the
// identity transformation.
func NewRasteriser(clip rect.Rect) *Rasteriser {
	return &Rasteriser{
		CTM:  matrix.Identity,
		Clip: clip,
	}
}

// Reset restores the default parameters while keeping buffer capacity.
func (r *Rasteriser) Reset(clip rect.Rect) {
	r.CTM = matrix.Identity
	r.Clip = clip
	r.cover = r.cover[:0]
	r.area = r.area[:0]
	r.edges = r.edges[:0]
	r.active = r.active[:0]
}

// FillMesh computes the coverage of the union of all triangles in m.
// Coverage is delivered row by row via emit; the slice passed to emit is
// only valid for the duration of the call. Rows without coverage are
// skipped.
func (r *Rasteriser) FillMesh(m *stroke.Mesh, emit func(y, xMin int, coverage []float32)) {
	xMin, xMax, yMin, yMax, ok := r.collectEdges(m)
	if !ok {
		return
	}

	width := xMax - xMin
	r.cover = slices.Grow(r.cover[:0], width)[:width]
	r.area = slices.Grow(r.area[:0], width)[:width]

	slices.SortFunc(r.edges, func(a, b edge) int {
		return cmp.Compare(a.y0, b.y0)
	})

	r.active = r.active[:0]
	next := 0
	for y := yMin; y < yMax; y++ {
		top, bot := float64(y), float64(y+1)

		for next < len(r.edges) && r.edges[next].y0 < bot {
			r.active = append(r.active, next)
			next++
		}
		if len(r.active) == 0 {
			continue
		}

		clear(r.cover)
		clear(r.area)
		for i := 0; i < len(r.active); {
			e := &r.edges[r.active[i]]
			if e.y1 <= top {
				r.active[i] = r.active[len(r.active)-1]
				r.active = r.active[:len(r.active)-1]
				continue
			}
			accumulate(e, y, r.cover, r.area, xMin)
			i++
		}

		integrateNonZero(r.cover, r.area)
		if trimmed, offset := trimZeros(r.cover); trimmed != nil {
			emit(y, xMin+offset, trimmed)
		}
	}
}

// collectEdges transforms the triangles to device space and returns the
// pixel range touched by the mesh, clamped to the clip rectangle.
func (r *Rasteriser) collectEdges(m *stroke.Mesh) (xMin, xMax, yMin, yMax int, ok bool) {
	r.edges = r.edges[:0]
	first := true
	for _, tri := range m.Triangles {
		a := r.device(tri[0])
		b := r.device(tri[1])
		c := r.device(tri[2])

		// In device space y points down, so a positive cross product means
		// a clockwise triangle on screen.
		orient := (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
		if math.Abs(orient) < degenerateAreaThreshold {
			continue
		}
		if orient < 0 {
			b, c = c, b
		}
		r.addEdge(a, b)
		r.addEdge(b, c)
		r.addEdge(c, a)

		for _, p := range [3]vec.Vec2{a, b, c} {
			if first {
				r.devXMin, r.devXMax = p.X, p.X
				r.devYMin, r.devYMax = p.Y, p.Y
				first = false
				continue
			}
			r.devXMin = min(r.devXMin, p.X)
			r.devXMax = max(r.devXMax, p.X)
			r.devYMin = min(r.devYMin, p.Y)
			r.devYMax = max(r.devYMax, p.Y)
		}
	}
	if len(r.edges) == 0 {
		return 0, 0, 0, 0, false
	}

	xMin = max(int(math.Floor(r.devXMin)), int(r.Clip.LLx))
	xMax = min(int(math.Floor(r.devXMax))+1, int(r.Clip.URx))
	yMin = max(int(math.Floor(r.devYMin)), int(r.Clip.LLy))
	yMax = min(int(math.Floor(r.devYMax))+1, int(r.Clip.URy))
	if xMin >= xMax || yMin >= yMax {
		return 0, 0, 0, 0, false
	}
	return xMin, xMax, yMin, yMax, true
}

func (r *Rasteriser) device(p vec.Vec2) vec.Vec2 {
	m := r.CTM
	return vec.Vec2{
		X: m[0]*p.X + m[2]*p.Y + m[4],
		Y: m[1]*p.X + m[3]*p.Y + m[5],
	}
}

func (r *Rasteriser) addEdge(p, q vec.Vec2) {
	dy := q.Y - p.Y
	if dy > -horizontalEdgeThreshold && dy < horizontalEdgeThreshold {
		return
	}
	dir := float32(1)
	if dy < 0 {
		p, q = q, p
		dir = -1
	}
	r.edges = append(r.edges, edge{
		x0: p.X, y0: p.Y,
		x1: q.X, y1: q.Y,
		dxdy: (q.X - p.X) / (q.Y - p.Y),
		dir:  dir,
	})
}

// accumulate adds the contribution of the part of e inside scanline y.
//
// An edge piece of height dy inside pixel column c adds dir·dy to cover[c]
// and dir·dy·(1-f) to area[c], where f is the mean horizontal position of
// the piece inside the pixel. Pieces left of the buffer are folded into
// the first pixel.
func accumulate(e *edge, y int, cover, area []float32, xOff int) {
	yTop := max(float64(y), e.y0)
	yBot := min(float64(y+1), e.y1)
	if yBot <= yTop {
		return
	}

	// walk the piece from left to right
	xl, yl := e.xAt(yTop), yTop
	xr, yr := e.xAt(yBot), yBot
	if xl > xr {
		xl, yl, xr, yr = xr, yr, xl, yl
	}

	n := len(cover)
	col := math.Floor(xl)
	last := math.Floor(xr)
	for {
		xEnd, yEnd := xr, yr
		if col < last {
			xEnd = col + 1
			yEnd = e.yAt(xEnd)
		}

		v := e.dir * float32(math.Abs(yEnd-yl))
		switch idx := int(col) - xOff; {
		case idx < 0:
			cover[0] += v
			area[0] += v
		case idx < n:
			f := (xl+xEnd)/2 - col
			cover[idx] += v
			area[idx] += v * float32(1-f)
		default:
			return
		}

		if col >= last {
			return
		}
		xl, yl = xEnd, yEnd
		col++
	}
}

// integrateNonZero turns the accumulated values into coverage in [0, 1],
// in place.
func integrateNonZero(cover, area []float32) {
	var acc float32
	for i, c := range cover {
		raw := acc + area[i]
		acc += c
		if raw < 0 {
			raw = -raw
		}
		cover[i] = min(raw, 1)
	}
}

// trimZeros returns the non-zero part of coverage and its offset.
// The result is nil if all values are zero.
func trimZeros(coverage []float32) (trimmed []float32, offset int) {
	lo, hi := 0, len(coverage)
	for lo < hi && coverage[lo] == 0 {
		lo++
	}
	for hi > lo && coverage[hi-1] == 0 {
		hi--
	}
	if lo == hi {
		return nil, 0
	}
	return coverage[lo:hi], lo
}

const (
	// horizontalEdgeThreshold is the minimal vertical extent of an edge.
	// Flatter edges do not change the coverage and are skipped.
	horizontalEdgeThreshold = 1e-10

	// degenerateAreaThreshold is the minimal doubled area, in square
	// device pixels, of a triangle which is rasterised.
	degenerateAreaThreshold = 1e-12
)
