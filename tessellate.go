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

package stroke

import (
	"errors"
	"fmt"
	"image/color"
	"math"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Default values for the tessellator parameters.
const (
	// DefaultQuality is the default angular step, 10 degrees.
	DefaultQuality = 10 * math.Pi / 180

	// DefaultMiterLimit matches the PDF and PostScript default.
	DefaultMiterLimit = 10.0
)

var (
	ErrInvalidWidth      = errors.New("stroke width must be positive and finite")
	ErrInvalidQuality    = errors.New("quality must be in (0, π]")
	ErrInvalidMiterLimit = errors.New("miter limit must be at least 1")
)

// Triangle is a triangle of the output mesh.
type Triangle [3]vec.Vec2

// Material describes how a mesh is painted.
type Material struct {
	Color color.RGBA
}

// Mesh is the output of the tessellator: a list of triangles whose union
// is the stroked path. Triangles may overlap and their orientation is not
// consistent.
type Mesh struct {
	Triangles []Triangle
	Material  Material
}

// Vertices returns the triangle corners as a flat list, three per triangle.
func (m *Mesh) Vertices() []vec.Vec2 {
	res := make([]vec.Vec2, 0, 3*len(m.Triangles))
	for _, t := range m.Triangles {
		res = append(res, t[:]...)
	}
	return res
}

// Bounds returns the bounding box of all triangles.
// The result is the zero rectangle if the mesh is empty.
func (m *Mesh) Bounds() rect.Rect {
	if len(m.Triangles) == 0 {
		return rect.Rect{}
	}
	p := m.Triangles[0][0]
	b := rect.Rect{LLx: p.X, LLy: p.Y, URx: p.X, URy: p.Y}
	for _, t := range m.Triangles {
		for _, p := range t {
			b.LLx = min(b.LLx, p.X)
			b.LLy = min(b.LLy, p.Y)
			b.URx = max(b.URx, p.X)
			b.URy = max(b.URy, p.Y)
		}
	}
	return b
}

// Tessellator converts paths into triangle meshes using polar stroking.
// Create one instance and reuse it for multiple paths; the internal
// buffers grow as needed but are never released.
//
// A Tessellator is not safe for concurrent use.
type Tessellator struct {
	// Quality is the maximal change of the tangent angle between
	// consecutive samples, in radians. Must be in (0, π].
	Quality float64

	// MiterLimit bounds the ratio of miter length to stroke width.
	// Must be at least 1 when miter joins are used.
	MiterLimit float64

	// Color is copied into the material of every mesh.
	Color color.RGBA

	sampler

	pairs   []OffsetPair // samples of all segments of the current subpath
	offsets []int        // start index of each segment in pairs
}

// NewTessellator returns a Tessellator with default parameters and white
// colour.
func NewTessellator() *Tessellator {
	return &Tessellator{
		Quality:    DefaultQuality,
		MiterLimit: DefaultMiterLimit,
		Color:      color.RGBA{R: 255, G: 255, B: 255, A: 255},
	}
}

// Sample runs the polar sampler on a single segment, using t.Quality.
func (t *Tessellator) Sample(seg Segment, width float64) []OffsetPair {
	return t.sample(nil, seg, width, t.Quality)
}

// Tessellate converts the path into a triangle mesh.
//
// For every segment, each pair of consecutive samples contributes two
// triangles. Joins are added between consecutive segments of a subpath,
// and between the last and first segment of a closed subpath.
func (t *Tessellator) Tessellate(p *Path) (*Mesh, error) {
	if err := t.check(p); err != nil {
		return nil, err
	}

	m := &Mesh{Material: Material{Color: t.Color}}
	for i := range p.Subpaths {
		sp := &p.Subpaths[i]
		if len(sp.Segments) == 0 {
			continue
		}
		t.sampleSubpath(sp, p.Width)

		for k := range sp.Segments {
			ps := t.segmentPairs(k)
			for j := 0; j+1 < len(ps); j++ {
				a, b := ps[j], ps[j+1]
				m.Triangles = append(m.Triangles,
					Triangle{a.Inner, a.Outer, b.Inner},
					Triangle{a.Outer, b.Inner, b.Outer})
			}
		}

		var err error
		n := len(sp.Segments)
		for k := 1; k < n; k++ {
			m.Triangles, err = t.join(m.Triangles, p, sp, k-1, k)
			if err != nil {
				return nil, err
			}
		}
		if sp.Closed {
			m.Triangles, err = t.join(m.Triangles, p, sp, n-1, 0)
			if err != nil {
				return nil, err
			}
		}
	}
	return m, nil
}

// Outline returns the samples of every segment of the path, one slice per
// segment, in path order. This is for consumers which triangulate or fill
// the stroke themselves. No join geometry is included.
func (t *Tessellator) Outline(p *Path) ([][]OffsetPair, error) {
	if err := t.check(p); err != nil {
		return nil, err
	}

	var res [][]OffsetPair
	for _, sp := range p.Subpaths {
		for _, seg := range sp.Segments {
			res = append(res, t.sample(nil, seg, p.Width, t.Quality))
		}
	}
	return res, nil
}

func (t *Tessellator) check(p *Path) error {
	if !p.Join.IsValid() {
		return fmt.Errorf("tessellate: %w: %s", ErrUnsupportedJoin, p.Join)
	}
	if !(p.Width > 0) || math.IsInf(p.Width, 0) {
		return fmt.Errorf("tessellate: %w: %g", ErrInvalidWidth, p.Width)
	}
	if !(t.Quality > 0 && t.Quality <= math.Pi) {
		return fmt.Errorf("tessellate: %w: %g", ErrInvalidQuality, t.Quality)
	}
	if p.Join == JoinMiter && !(t.MiterLimit >= 1) {
		return fmt.Errorf("tessellate: %w: %g", ErrInvalidMiterLimit, t.MiterLimit)
	}
	return nil
}

// sampleSubpath fills t.pairs and t.offsets for all segments of sp.
func (t *Tessellator) sampleSubpath(sp *Subpath, width float64) {
	t.pairs = t.pairs[:0]
	t.offsets = append(t.offsets[:0], 0)
	for _, seg := range sp.Segments {
		t.pairs = t.sample(t.pairs, seg, width, t.Quality)
		t.offsets = append(t.offsets, len(t.pairs))
	}
}

func (t *Tessellator) segmentPairs(k int) []OffsetPair {
	return t.pairs[t.offsets[k]:t.offsets[k+1]]
}

func (t *Tessellator) join(dst []Triangle, p *Path, sp *Subpath, i, k int) ([]Triangle, error) {
	prev := endBoundary(sp.Segments[i], t.segmentPairs(i))
	next := startBoundary(sp.Segments[k], t.segmentPairs(k))
	return appendJoin(dst, p.Join, prev, next, p.Width, t.Quality, t.MiterLimit)
}
