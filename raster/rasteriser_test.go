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

package raster

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"maps"
	"math"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"golang.org/x/image/vector"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/stroke"
	"seehuhn.de/go/stroke/testcases"
)

// TestAgainstVector rasterises the mesh of every test case and compares
// the result to golang.org/x/image/vector, which is given the same
// triangles with consistent orientation.
func TestAgainstVector(t *testing.T) {
	tess := stroke.NewTessellator()
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			t.Run(name, func(t *testing.T) {
				m, err := tess.Tessellate(tc.Path)
				if err != nil {
					t.Fatal(err)
				}

				w, h := tc.Width, tc.Height
				actual := make([]byte, w*h)
				renderMesh(m, tc.Device(), actual, w, h)
				ref := renderVector(m, tc.Device(), w, h)

				if err := compareImages(name, ref, actual, w, h); err != nil {
					t.Error(err)
				}
			})
		}
	}
}

// renderMesh rasterises m into a grayscale buffer with stride w.
func renderMesh(m *stroke.Mesh, ctm matrix.Matrix, buf []byte, w, h int) {
	r := NewRasteriser(rect.Rect{URx: float64(w), URy: float64(h)})
	r.CTM = ctm
	r.FillMesh(m, func(y, xMin int, coverage []float32) {
		row := buf[y*w:]
		for i, c := range coverage {
			row[xMin+i] = byte(max(0, min(255, int(c*255+0.5))))
		}
	})
}

// renderVector rasterises m using x/image/vector.
func renderVector(m *stroke.Mesh, ctm matrix.Matrix, w, h int) []byte {
	z := vector.NewRasterizer(w, h)
	for _, tri := range m.Triangles {
		var p [3]vec.Vec2
		for i, q := range tri {
			p[i] = vec.Vec2{
				X: ctm[0]*q.X + ctm[2]*q.Y + ctm[4],
				Y: ctm[1]*q.X + ctm[3]*q.Y + ctm[5],
			}
		}
		if (p[1].X-p[0].X)*(p[2].Y-p[0].Y)-(p[1].Y-p[0].Y)*(p[2].X-p[0].X) < 0 {
			p[1], p[2] = p[2], p[1]
		}
		z.MoveTo(float32(p[0].X), float32(p[0].Y))
		z.LineTo(float32(p[1].X), float32(p[1].Y))
		z.LineTo(float32(p[2].X), float32(p[2].Y))
		z.ClosePath()
	}

	dst := image.NewAlpha(image.Rect(0, 0, w, h))
	z.Draw(dst, dst.Bounds(), image.NewUniform(color.Alpha{A: 255}), image.Point{})
	return dst.Pix
}

func compareImages(name string, expected, actual []byte, w, h int) error {
	total := w * h

	diffs := make([]int, total)
	for i := range total {
		d := int(expected[i]) - int(actual[i])
		if d < 0 {
			d = -d
		}
		diffs[i] = d
	}
	slices.Sort(diffs)

	p99 := diffs[int(math.Round(0.99*float64(total-1)))]
	worst := diffs[total-1]

	// Both rasterisers compute exact signed areas, so only rounding
	// differences are expected.
	var failures []string
	if p99 > 2 {
		failures = append(failures, fmt.Sprintf("99th percentile diff is %d (want <=2)", p99))
	}
	if worst > 32 {
		failures = append(failures, fmt.Sprintf("max diff is %d (want <=32)", worst))
	}

	if len(failures) > 0 {
		_ = writeDiffImage(name, expected, actual, w, h)
		return fmt.Errorf("%s", strings.Join(failures, "; "))
	}
	return nil
}

// writeDiffImage writes actual (left), difference (middle) and expected
// (right) side by side into the debug directory.
func writeDiffImage(name string, expected, actual []byte, w, h int) (err error) {
	if err := os.MkdirAll("debug", 0755); err != nil {
		return err
	}

	img := image.NewRGBA(image.Rect(0, 0, w*3, h))
	for y := range h {
		for x := range w {
			i := y*w + x

			a := actual[i]
			img.Set(x, y, color.RGBA{R: a, G: a, B: a, A: 255})

			// green: too little coverage, red: too much
			diff := int(expected[i]) - int(actual[i])
			c := color.RGBA{A: 255}
			if diff > 0 {
				c.G = uint8(diff)
			} else {
				c.R = uint8(-diff)
			}
			img.Set(x+w, y, c)

			e := expected[i]
			img.Set(x+2*w, y, color.RGBA{R: e, G: e, B: e, A: 255})
		}
	}

	f, err := os.Create(filepath.Join("debug", name+".png"))
	if err != nil {
		return err
	}
	err = png.Encode(f, img)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}

// TestTriangleCoverage verifies exact coverage values for a simple triangle.
// The triangle (0,0)→(10,0)→(10,1) has a diagonal edge y = x/10, so pixel
// x has coverage (2x+1)/20. Both orientations must give the same result.
func TestTriangleCoverage(t *testing.T) {
	tris := []stroke.Triangle{
		{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 1}},
		{{X: 0, Y: 0}, {X: 10, Y: 1}, {X: 10, Y: 0}},
	}
	for k, tri := range tris {
		m := &stroke.Mesh{Triangles: []stroke.Triangle{tri}}
		r := NewRasteriser(rect.Rect{URx: 10, URy: 1})

		coverage := make([]float32, 10)
		r.FillMesh(m, func(y, xMin int, cov []float32) {
			if y == 0 {
				copy(coverage[xMin:], cov)
			}
		})

		for x := range 10 {
			want := float32(2*x+1) / 20
			if math.Abs(float64(coverage[x]-want)) > 1e-6 {
				t.Errorf("triangle %d, pixel %d: got coverage %.4f, want %.4f",
					k, x, coverage[x], want)
			}
		}
	}
}

// TestOverlapUnion checks that overlapping triangles of opposite
// orientation do not cancel.
func TestOverlapUnion(t *testing.T) {
	m := &stroke.Mesh{Triangles: []stroke.Triangle{
		{{X: 1, Y: 1}, {X: 9, Y: 1}, {X: 1, Y: 9}},
		{{X: 1, Y: 1}, {X: 1, Y: 9}, {X: 9, Y: 1}},
		{{X: 9, Y: 1}, {X: 9, Y: 9}, {X: 1, Y: 9}},
	}}
	r := NewRasteriser(rect.Rect{URx: 10, URy: 10})

	got := make([]float32, 100)
	r.FillMesh(m, func(y, xMin int, cov []float32) {
		copy(got[y*10+xMin:], cov)
	})

	for y := range 10 {
		for x := range 10 {
			want := float32(0)
			if x >= 1 && x < 9 && y >= 1 && y < 9 {
				want = 1
			}
			if math.Abs(float64(got[y*10+x]-want)) > 1e-5 {
				t.Errorf("pixel (%d, %d): got %.4f, want %.1f", x, y, got[y*10+x], want)
			}
		}
	}
}

func TestClip(t *testing.T) {
	m := &stroke.Mesh{Triangles: []stroke.Triangle{
		{{X: -20, Y: -20}, {X: 40, Y: -20}, {X: -20, Y: 40}},
	}}
	clip := rect.Rect{LLx: 2, LLy: 3, URx: 8, URy: 7}
	r := NewRasteriser(clip)

	rows := 0
	r.FillMesh(m, func(y, xMin int, cov []float32) {
		rows++
		if y < 3 || y >= 7 {
			t.Errorf("row %d outside clip", y)
		}
		if xMin < 2 || xMin+len(cov) > 8 {
			t.Errorf("row %d: columns [%d, %d) outside clip", y, xMin, xMin+len(cov))
		}
		for i, c := range cov {
			if c < 1-1e-6 {
				t.Errorf("pixel (%d, %d): got coverage %g, want 1", xMin+i, y, c)
			}
		}
	})
	if rows != 4 {
		t.Errorf("got %d rows, want 4", rows)
	}
}

func TestCTM(t *testing.T) {
	// a unit square, scaled by 4 and moved to (2, 2)
	m := &stroke.Mesh{Triangles: []stroke.Triangle{
		{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}},
		{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}},
	}}
	r := NewRasteriser(rect.Rect{URx: 10, URy: 10})
	r.CTM = matrix.Scale(4, 4).Translate(2, 2)

	var sum float64
	r.FillMesh(m, func(y, xMin int, cov []float32) {
		if y < 2 || y >= 6 || xMin < 2 || xMin+len(cov) > 6 {
			t.Errorf("row %d: coverage [%d, %d) outside the square", y, xMin, xMin+len(cov))
		}
		for _, c := range cov {
			sum += float64(c)
		}
	})
	if math.Abs(sum-16) > 1e-4 {
		t.Errorf("total coverage %g, want 16", sum)
	}
}

func TestReset(t *testing.T) {
	r := NewRasteriser(rect.Rect{URx: 10, URy: 10})
	r.CTM = matrix.Scale(2, 2)
	r.Reset(rect.Rect{URx: 5, URy: 5})
	if r.CTM != matrix.Identity {
		t.Errorf("CTM not reset: %v", r.CTM)
	}
	if r.Clip != (rect.Rect{URx: 5, URy: 5}) {
		t.Errorf("clip not updated: %v", r.Clip)
	}
}

func TestEmptyMesh(t *testing.T) {
	r := NewRasteriser(rect.Rect{URx: 10, URy: 10})
	called := false
	r.FillMesh(&stroke.Mesh{}, func(int, int, []float32) { called = true })

	degenerate := &stroke.Mesh{Triangles: []stroke.Triangle{
		{{X: 1, Y: 1}, {X: 5, Y: 5}, {X: 9, Y: 9}},
	}}
	r.FillMesh(degenerate, func(int, int, []float32) { called = true })
	if called {
		t.Error("emit called for an empty mesh")
	}
}

// BenchmarkRasteriseAll measures steady-state performance by reusing a single
// Rasteriser across all test cases.
func BenchmarkRasteriseAll(b *testing.B) {
	type job struct {
		tc testcases.TestCase
		m  *stroke.Mesh
	}
	var jobs []job
	tess := stroke.NewTessellator()
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			m, err := tess.Tessellate(tc.Path)
			if err != nil {
				b.Fatal(err)
			}
			jobs = append(jobs, job{tc, m})
		}
	}

	r := NewRasteriser(rect.Rect{})
	emit := func(y, xMin int, coverage []float32) {}

	b.ResetTimer()
	for b.Loop() {
		for _, j := range jobs {
			r.Reset(rect.Rect{URx: float64(j.tc.Width), URy: float64(j.tc.Height)})
			r.CTM = j.tc.Device()
			r.FillMesh(j.m, emit)
		}
	}
}
