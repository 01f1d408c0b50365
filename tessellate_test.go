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
	"image/color"
	"math"
	"testing"

	"seehuhn.de/go/geom/rect"
)

func TestTessellateLine(t *testing.T) {
	p := NewPath(JoinMiter, 10, Line{A: pt(0, 0), B: pt(100, 0)})
	m, err := NewTessellator().Tessellate(p)
	if err != nil {
		t.Fatal(err)
	}
	if len(m.Triangles) != 2 {
		t.Fatalf("got %d triangles, want 2", len(m.Triangles))
	}

	var area float64
	for _, tri := range m.Triangles {
		area += triangleArea(tri)
	}
	if math.Abs(area-1000) > 1e-9 {
		t.Errorf("total area %g, want 1000", area)
	}

	want := rect.Rect{LLx: 0, LLy: -5, URx: 100, URy: 5}
	if b := m.Bounds(); b != want {
		t.Errorf("bounds %v, want %v", b, want)
	}
	if v := m.Vertices(); len(v) != 6 {
		t.Errorf("got %d vertices, want 6", len(v))
	}
}

// corner is an open path with a single left turn.
func corner(join JoinStyle) *Path {
	return NewPath(join, 10,
		Line{A: pt(0, 0), B: pt(100, 0)},
		Line{A: pt(100, 0), B: pt(100, 100)})
}

func TestTessellateJoins(t *testing.T) {
	cases := []struct {
		join JoinStyle
		want int
	}{
		{JoinNone, 4},
		{JoinBevel, 5},
		{JoinMiter, 6},
		{JoinRound, 13},
	}
	for _, c := range cases {
		t.Run(c.join.String(), func(t *testing.T) {
			m, err := NewTessellator().Tessellate(corner(c.join))
			if err != nil {
				t.Fatal(err)
			}
			if len(m.Triangles) != c.want {
				t.Errorf("got %d triangles, want %d", len(m.Triangles), c.want)
			}
		})
	}
}

func square(closed bool) *Path {
	a, b, c, d := pt(0, 0), pt(100, 0), pt(100, 100), pt(0, 100)
	return &Path{
		Subpaths: []Subpath{{
			Segments: []Segment{Line{a, b}, Line{b, c}, Line{c, d}, Line{d, a}},
			Closed:   closed,
		}},
		Join:  JoinMiter,
		Width: 10,
	}
}

func TestTessellateClosed(t *testing.T) {
	tess := NewTessellator()

	m, err := tess.Tessellate(square(true))
	if err != nil {
		t.Fatal(err)
	}
	if len(m.Triangles) != 16 {
		t.Errorf("closed: got %d triangles, want 16", len(m.Triangles))
	}
	want := rect.Rect{LLx: -5, LLy: -5, URx: 105, URy: 105}
	if b := m.Bounds(); math.Abs(b.LLx-want.LLx) > 1e-9 || math.Abs(b.LLy-want.LLy) > 1e-9 ||
		math.Abs(b.URx-want.URx) > 1e-9 || math.Abs(b.URy-want.URy) > 1e-9 {
		t.Errorf("closed: bounds %v, want %v", b, want)
	}

	m, err = tess.Tessellate(square(false))
	if err != nil {
		t.Fatal(err)
	}
	if len(m.Triangles) != 14 {
		t.Errorf("open: got %d triangles, want 14", len(m.Triangles))
	}
}

// TestTessellateSubpaths checks that no join is drawn between subpaths.
func TestTessellateSubpaths(t *testing.T) {
	p := &Path{
		Subpaths: []Subpath{
			{Segments: []Segment{Line{A: pt(0, 0), B: pt(100, 0)}}},
			{},
			{Segments: []Segment{Line{A: pt(100, 0), B: pt(100, 100)}}},
		},
		Join:  JoinRound,
		Width: 10,
	}
	m, err := NewTessellator().Tessellate(p)
	if err != nil {
		t.Fatal(err)
	}
	if len(m.Triangles) != 4 {
		t.Errorf("got %d triangles, want 4", len(m.Triangles))
	}
}

func TestTessellateErrors(t *testing.T) {
	line := Line{A: pt(0, 0), B: pt(1, 0)}
	cases := []struct {
		name  string
		join  JoinStyle
		width float64
		setup func(*Tessellator)
		want  error
	}{
		{"zero_width", JoinRound, 0, nil, ErrInvalidWidth},
		{"negative_width", JoinRound, -1, nil, ErrInvalidWidth},
		{"nan_width", JoinRound, math.NaN(), nil, ErrInvalidWidth},
		{"inf_width", JoinRound, math.Inf(1), nil, ErrInvalidWidth},
		{"bad_join", JoinStyle(9), 1, nil, ErrUnsupportedJoin},
		{"zero_quality", JoinRound, 1, func(t *Tessellator) { t.Quality = 0 }, ErrInvalidQuality},
		{"large_quality", JoinRound, 1, func(t *Tessellator) { t.Quality = 4 }, ErrInvalidQuality},
		{"miter_limit", JoinMiter, 1, func(t *Tessellator) { t.MiterLimit = 0.5 }, ErrInvalidMiterLimit},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			tess := NewTessellator()
			if c.setup != nil {
				c.setup(tess)
			}
			p := NewPath(c.join, c.width, line)
			if _, err := tess.Tessellate(p); !errors.Is(err, c.want) {
				t.Errorf("Tessellate: got %v, want %v", err, c.want)
			}
			if _, err := tess.Outline(p); !errors.Is(err, c.want) {
				t.Errorf("Outline: got %v, want %v", err, c.want)
			}
		})
	}

	// the miter limit only matters for miter joins
	tess := NewTessellator()
	tess.MiterLimit = 0.5
	if _, err := tess.Tessellate(NewPath(JoinBevel, 1, line)); err != nil {
		t.Errorf("bevel join with small miter limit: %v", err)
	}
}

func TestTessellateMaterial(t *testing.T) {
	tess := NewTessellator()
	if tess.Color != (color.RGBA{255, 255, 255, 255}) {
		t.Errorf("default colour %v", tess.Color)
	}
	tess.Color = color.RGBA{R: 10, G: 20, B: 30, A: 255}
	m, err := tess.Tessellate(corner(JoinBevel))
	if err != nil {
		t.Fatal(err)
	}
	if m.Material.Color != tess.Color {
		t.Errorf("material colour %v, want %v", m.Material.Color, tess.Color)
	}
}

func TestTessellateEmpty(t *testing.T) {
	m, err := NewTessellator().Tessellate(&Path{Join: JoinRound, Width: 1})
	if err != nil {
		t.Fatal(err)
	}
	if len(m.Triangles) != 0 {
		t.Errorf("got %d triangles", len(m.Triangles))
	}
	if b := m.Bounds(); b != (rect.Rect{}) {
		t.Errorf("bounds %v, want zero", b)
	}
}

// TestTessellateReuse checks that a mesh is not modified when the
// tessellator is used again.
func TestTessellateReuse(t *testing.T) {
	tess := NewTessellator()
	m1, err := tess.Tessellate(corner(JoinRound))
	if err != nil {
		t.Fatal(err)
	}
	saved := append([]Triangle(nil), m1.Triangles...)

	if _, err := tess.Tessellate(square(true)); err != nil {
		t.Fatal(err)
	}
	for i := range saved {
		if m1.Triangles[i] != saved[i] {
			t.Fatalf("triangle %d changed", i)
		}
	}

	m2, err := tess.Tessellate(corner(JoinRound))
	if err != nil {
		t.Fatal(err)
	}
	if len(m2.Triangles) != len(saved) {
		t.Fatalf("got %d triangles on reuse, want %d", len(m2.Triangles), len(saved))
	}
	for i := range saved {
		if m2.Triangles[i] != saved[i] {
			t.Errorf("triangle %d differs on reuse", i)
		}
	}
}

func TestOutline(t *testing.T) {
	p := corner(JoinRound)
	p.Subpaths = append(p.Subpaths, Subpath{Segments: []Segment{
		Quad{A: pt(0, 50), B: pt(20, 80), C: pt(40, 50)},
	}})
	tess := NewTessellator()
	outline, err := tess.Outline(p)
	if err != nil {
		t.Fatal(err)
	}
	if len(outline) != 3 {
		t.Fatalf("got %d segments, want 3", len(outline))
	}
	if len(outline[0]) != 2 || len(outline[1]) != 2 {
		t.Errorf("lines have %d and %d samples, want 2", len(outline[0]), len(outline[1]))
	}
	if len(outline[2]) < 3 {
		t.Errorf("curve has only %d samples", len(outline[2]))
	}
	if got := tess.Sample(p.Subpaths[1].Segments[0], p.Width); len(got) != len(outline[2]) {
		t.Errorf("Sample gives %d samples, Outline %d", len(got), len(outline[2]))
	}
}
