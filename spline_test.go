// seehuhn.de/go/digitize - grid-aligned geometry primitives
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

package digitize

import (
	"errors"
	"math"
	"testing"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

func near(a, b vec.Vec2, eps float64) bool {
	return math.Abs(a.X-b.X) <= eps && math.Abs(a.Y-b.Y) <= eps
}

func TestHermite(t *testing.T) {
	p0 := vec.Vec2{X: 2, Y: 10}
	p1 := vec.Vec2{X: 20, Y: 4}
	m0 := vec.Vec2{X: 30, Y: 0}
	m1 := vec.Vec2{X: 0, Y: -30}

	points := Hermite(p0, p1, m0, m1, 16)
	if len(points) != 17 {
		t.Fatalf("got %d points, want 17", len(points))
	}
	if points[0] != p0 || points[16] != p1 {
		t.Errorf("endpoints %v, %v", points[0], points[16])
	}

	// with zero tangents, the midpoint is the average of the endpoints
	mid := Hermite(p0, p1, vec.Vec2{}, vec.Vec2{}, 2)[1]
	if !near(mid, vec.Vec2{X: 11, Y: 7}, 1e-12) {
		t.Errorf("midpoint %v", mid)
	}

	if n := len(Hermite(p0, p1, m0, m1, 0)); n != 2 {
		t.Errorf("numPoints 0: got %d points, want 2", n)
	}
}

func TestBezier(t *testing.T) {
	p0 := vec.Vec2{X: 0, Y: 0}
	p1 := vec.Vec2{X: 0, Y: 8}
	p2 := vec.Vec2{X: 8, Y: 8}
	p3 := vec.Vec2{X: 8, Y: 0}

	points := Bezier(p0, p1, p2, p3, 10)
	if len(points) != 11 {
		t.Fatalf("got %d points, want 11", len(points))
	}
	if points[0] != p0 || points[10] != p3 {
		t.Errorf("endpoints %v, %v", points[0], points[10])
	}
	if !near(points[5], vec.Vec2{X: 4, Y: 6}, 1e-12) {
		t.Errorf("midpoint %v, want (4, 6)", points[5])
	}

	// the curve stays inside the convex hull of the control points
	for _, p := range points {
		if p.X < 0 || p.X > 8 || p.Y < 0 || p.Y > 8 {
			t.Errorf("point %v outside the control polygon", p)
		}
	}
}

func TestCubicPath(t *testing.T) {
	p := CubicPath(vec.Vec2{X: 0, Y: 0}, vec.Vec2{X: 1, Y: 2}, vec.Vec2{X: 3, Y: 2}, vec.Vec2{X: 4, Y: 0})
	want := []path.Command{path.CmdMoveTo, path.CmdCubeTo, path.CmdClose}
	if len(p.Cmds) != len(want) {
		t.Fatalf("got %d commands, want %d", len(p.Cmds), len(want))
	}
	for i, cmd := range want {
		if p.Cmds[i] != cmd {
			t.Errorf("command %d: got %v, want %v", i, p.Cmds[i], cmd)
		}
	}
	if len(p.Coords) != 4 {
		t.Errorf("got %d coordinates, want 4", len(p.Coords))
	}
}

func TestBSplineDegree(t *testing.T) {
	control := pts(0, 0, 1, 3, 4, 3, 6, 0, 8, 2)
	for _, degree := range []int{-1, 0, len(control), len(control) + 3} {
		_, err := BSpline(control, degree, 10)
		if !errors.Is(err, ErrInvalidDegree) {
			t.Errorf("degree %d: got error %v", degree, err)
		}
	}
	if _, err := BSpline(nil, 1, 10); !errors.Is(err, ErrInvalidDegree) {
		t.Errorf("no control points: got error %v", err)
	}
	if _, err := BSpline(control, len(control)-1, 10); err != nil {
		t.Errorf("maximal degree: %v", err)
	}
}

func TestBSplineLinear(t *testing.T) {
	// a degree 1 spline interpolates its control points
	points, err := BSpline(pts(0, 0, 2, 0, 4, 0), 1, 4)
	if err != nil {
		t.Fatal(err)
	}
	for i, p := range points {
		want := vec.Vec2{X: float64(i), Y: 0}
		if !near(p, want, 1e-12) {
			t.Errorf("point %d: got %v, want %v", i, p, want)
		}
	}
}

func TestBSplineConstant(t *testing.T) {
	// the basis functions sum to one on the whole parameter range
	c := vec.Vec2{X: 7, Y: -3}
	control := []vec.Vec2{c, c, c, c, c, c}
	for degree := 1; degree < len(control); degree++ {
		points, err := BSpline(control, degree, 25)
		if err != nil {
			t.Fatal(err)
		}
		if len(points) != 26 {
			t.Fatalf("degree %d: got %d points, want 26", degree, len(points))
		}
		for i, p := range points {
			if !near(p, c, 1e-9) {
				t.Errorf("degree %d, point %d: got %v", degree, i, p)
			}
		}
	}
}

// coxDeBoor is the textbook recursive definition of the B-spline basis.
func coxDeBoor(knots []float64, i, p int, t float64) float64 {
	if p == 0 {
		if knots[i] <= t && t < knots[i+1] {
			return 1
		}
		return 0
	}
	var v float64
	if d := knots[i+p] - knots[i]; d != 0 {
		v += (t - knots[i]) / d * coxDeBoor(knots, i, p-1, t)
	}
	if d := knots[i+p+1] - knots[i+1]; d != 0 {
		v += (knots[i+p+1] - t) / d * coxDeBoor(knots, i+1, p-1, t)
	}
	return v
}

func TestBSplineBasis(t *testing.T) {
	knots := []float64{0, 1, 2, 3, 4, 5, 6, 7, 8}
	basis := make([]float64, len(knots)-1)
	for degree := 0; degree <= 4; degree++ {
		for _, x := range []float64{0, 0.5, 1.25, 2, 3.7, 4.5, 6.99} {
			bsplineBasis(basis, knots, degree, x)
			for i := range len(knots) - degree - 1 {
				want := coxDeBoor(knots, i, degree, x)
				if math.Abs(basis[i]-want) > 1e-12 {
					t.Errorf("degree %d, t=%g: N_%d = %g, want %g", degree, x, i, basis[i], want)
				}
			}
		}
	}
}
