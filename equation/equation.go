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

// Package equation finds the real roots of polynomial equations of degree
// one to three in closed form.
//
// All "approximately zero" decisions use the fixed absolute tolerance
// [Epsilon]. Callers that depend on the branching at the boundary (tangent
// curves, exact circular arcs) rely on this tolerance, so it must not be
// replaced by an exact comparison.
package equation

import "math"

// Epsilon is the absolute tolerance used for all approximate comparisons.
const Epsilon = 1e-6

// Solver is implemented by the equation types of this package.
type Solver interface {
	// Roots returns the real solutions of the equation.
	// The order of the roots is unspecified.
	Roots() []float64
}

// Linear represents the equation A·x + B = 0.
type Linear struct {
	A, B float64
}

// Quadratic represents the equation A·x² + B·x + C = 0.
type Quadratic struct {
	A, B, C float64
}

// Cubic represents the equation A·x³ + B·x² + C·x + D = 0.
type Cubic struct {
	A, B, C, D float64
}

// Roots returns the solution -B/A. If A is approximately zero, the equation
// is degenerate and no root is reported.
func (eq Linear) Roots() []float64 {
	if ApproxEqual(eq.A, 0) {
		return nil
	}
	return []float64{-eq.B / eq.A}
}

// Roots returns zero, one or two real roots.
// If A is approximately zero, the equation is solved as a linear equation.
func (eq Quadratic) Roots() []float64 {
	if ApproxEqual(eq.A, 0) {
		return Linear{A: eq.B, B: eq.C}.Roots()
	}

	discr := eq.B*eq.B - 4*eq.A*eq.C
	switch {
	case ApproxEqual(discr, 0):
		return []float64{-eq.B / (2 * eq.A)}
	case discr > 0:
		sq := math.Sqrt(discr)
		return []float64{
			(-eq.B + sq) / (2 * eq.A),
			(-eq.B - sq) / (2 * eq.A),
		}
	default:
		return nil
	}
}

// Roots returns one to three real roots, using Cardano's method for the
// depressed cubic. If A is approximately zero, the equation is solved as a
// quadratic equation.
func (eq Cubic) Roots() []float64 {
	if ApproxEqual(eq.A, 0) {
		return Quadratic{A: eq.B, B: eq.C, C: eq.D}.Roots()
	}

	// normalise to x³ + a·x² + b·x + c = 0
	a := eq.B / eq.A
	b := eq.C / eq.A
	c := eq.D / eq.A

	// substitute x = t - a/3 to get t³ + p·t + q = 0
	p := (3*b - a*a) / 3
	q := (2*a*a*a - 9*a*b + 27*c) / 27
	shift := a / 3

	discr := (q/2)*(q/2) + (p/3)*(p/3)*(p/3)
	switch {
	case ApproxEqual(discr, 0):
		u := math.Cbrt(-q / 2)
		root1 := 2*u - shift
		root2 := -u - shift
		if ApproxEqual(root1, root2) {
			return []float64{root1}
		}
		return []float64{root1, root2}

	case discr > 0:
		sq := math.Sqrt(discr)
		u := math.Cbrt(-q/2 + sq)
		v := math.Cbrt(q/2 + sq)
		return []float64{u - v - shift}

	default:
		// three real roots; p < 0 here
		m := math.Sqrt(-p / 3)
		cosPhi := -q / (2 * m * m * m)
		phi := math.Acos(max(-1, min(1, cosPhi)))
		return []float64{
			2*m*math.Cos(phi/3) - shift,
			2*m*math.Cos((phi+2*math.Pi)/3) - shift,
			2*m*math.Cos((phi+4*math.Pi)/3) - shift,
		}
	}
}

// ApproxEqual reports whether a and b differ by less than Epsilon.
func ApproxEqual(a, b float64) bool {
	d := a - b
	return d < Epsilon && d > -Epsilon
}

// InRange reports whether x lies in [lo, hi], up to Epsilon.
func InRange(x, lo, hi float64) bool {
	return x > lo-Epsilon && x < hi+Epsilon
}

// InUnit reports whether x lies in [0, 1], up to Epsilon.
func InUnit(x float64) bool {
	return InRange(x, 0, 1)
}
