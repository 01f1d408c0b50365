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

package equation

import (
	"math"
	"slices"
	"testing"
)

func TestRoots(t *testing.T) {
	cases := []struct {
		name string
		eq   Solver
		want []float64
	}{
		{"linear", Linear{A: 2, B: -4}, []float64{2}},
		{"linear_degenerate", Linear{A: 0, B: 5}, nil},
		{"linear_tiny_slope", Linear{A: 1e-9, B: 5}, nil},
		{"quadratic_two", Quadratic{A: 1, B: 0, C: -1}, []float64{-1, 1}},
		{"quadratic_double", Quadratic{A: 1, B: -2, C: 1}, []float64{1}},
		{"quadratic_none", Quadratic{A: 1, B: 0, C: 1}, nil},
		{"quadratic_as_linear", Quadratic{A: 0, B: -54, C: 27}, []float64{0.5}},
		{"cubic_three", Cubic{A: 1, B: -6, C: 11, D: -6}, []float64{1, 2, 3}},
		{"cubic_scaled", Cubic{A: -2, B: 12, C: -22, D: 12}, []float64{1, 2, 3}},
		{"cubic_one", Cubic{A: 1, B: 0, C: 1, D: -2}, []float64{1}},
		{"cubic_double", Cubic{A: 1, B: -4, C: 5, D: -2}, []float64{1, 2}},
		{"cubic_triple", Cubic{A: 1, B: -3, C: 3, D: -1}, []float64{1}},
		{"cubic_as_quadratic", Cubic{A: 0, B: 1, C: 0, D: -4}, []float64{-2, 2}},
		{"cubic_as_linear", Cubic{A: 0, B: 0, C: 2, D: 1}, []float64{-0.5}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := c.eq.Roots()
			slices.Sort(got)
			if len(got) != len(c.want) {
				t.Fatalf("got roots %v, want %v", got, c.want)
			}
			for i := range got {
				if math.Abs(got[i]-c.want[i]) > 1e-6 {
					t.Errorf("root %d: got %.9f, want %.9f", i, got[i], c.want[i])
				}
			}
		})
	}
}

// TestCubicResidual checks that every reported root actually solves the
// equation, for a range of coefficients.
func TestCubicResidual(t *testing.T) {
	for a := -3.0; a <= 3; a += 1.5 {
		if a == 0 {
			continue
		}
		for b := -4.0; b <= 4; b += 2 {
			for c := -5.0; c <= 5; c += 2.5 {
				for d := -3.0; d <= 3; d += 1 {
					eq := Cubic{A: a, B: b, C: c, D: d}
					for _, x := range eq.Roots() {
						y := ((a*x+b)*x+c)*x + d
						if math.Abs(y) > 1e-4*(1+math.Abs(x*x*x)) {
							t.Errorf("%v: root %g has residual %g", eq, x, y)
						}
					}
				}
			}
		}
	}
}

func TestInUnit(t *testing.T) {
	for _, x := range []float64{0, 1, 0.5, -Epsilon / 2, 1 + Epsilon/2} {
		if !InUnit(x) {
			t.Errorf("InUnit(%g) = false", x)
		}
	}
	for _, x := range []float64{-0.01, 1.01, math.NaN()} {
		if InUnit(x) {
			t.Errorf("InUnit(%g) = true", x)
		}
	}
}
