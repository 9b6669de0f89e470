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
	"fmt"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// ErrInvalidDegree is returned by BSpline if the degree is not in the
// range from 1 to the number of control points minus one.
var ErrInvalidDegree = errors.New("invalid B-spline degree")

// Hermite samples the cubic Hermite curve from p0 to p1 with tangent m0
// at p0 and tangent m1 at p1. The curve is evaluated at numPoints+1
// equally spaced parameter values, including both endpoints.
func Hermite(p0, p1, m0, m1 vec.Vec2, numPoints int) []vec.Vec2 {
	numPoints = max(numPoints, 1)
	points := make([]vec.Vec2, 0, numPoints+1)
	for i := range numPoints + 1 {
		t := float64(i) / float64(numPoints)
		t2 := t * t
		t3 := t2 * t
		h00 := 2*t3 - 3*t2 + 1
		h10 := t3 - 2*t2 + t
		h01 := -2*t3 + 3*t2
		h11 := t3 - t2
		points = append(points, p0.Mul(h00).Add(m0.Mul(h10)).Add(p1.Mul(h01)).Add(m1.Mul(h11)))
	}
	return points
}

// Bezier samples the cubic Bézier curve with control points p0, p1, p2
// and p3 at numPoints+1 equally spaced parameter values.
func Bezier(p0, p1, p2, p3 vec.Vec2, numPoints int) []vec.Vec2 {
	numPoints = max(numPoints, 1)
	points := make([]vec.Vec2, 0, numPoints+1)
	for i := range numPoints + 1 {
		t := float64(i) / float64(numPoints)
		// B(t) = (1-t)³P0 + 3(1-t)²tP1 + 3(1-t)t²P2 + t³P3
		omt := 1 - t
		omt2 := omt * omt
		omt3 := omt2 * omt
		t2 := t * t
		t3 := t2 * t
		points = append(points, p0.Mul(omt3).Add(p1.Mul(3*omt2*t)).Add(p2.Mul(3*omt*t2)).Add(p3.Mul(t3)))
	}
	return points
}

// CubicPath returns the closed path consisting of the cubic Bézier curve
// p0→p3 and the straight line back to p0. The result can be filled with
// a [CoverageFiller].
func CubicPath(p0, p1, p2, p3 vec.Vec2) *path.Data {
	return (&path.Data{}).
		MoveTo(p0).
		CubeTo(p1, p2, p3).
		Close()
}

// BSpline samples the uniform B-spline of the given degree defined by
// controlPoints. The knot vector is 0, 1, ..., n+degree+1, where n+1 is
// the number of control points, and the curve is evaluated at
// numPoints+1 equally spaced parameter values in [degree, n+1].
//
// If degree is smaller than 1 or larger than len(controlPoints)-1, an
// error wrapping [ErrInvalidDegree] is returned.
func BSpline(controlPoints []vec.Vec2, degree, numPoints int) ([]vec.Vec2, error) {
	if degree < 1 || degree > len(controlPoints)-1 {
		return nil, fmt.Errorf("degree %d with %d control points: %w",
			degree, len(controlPoints), ErrInvalidDegree)
	}
	numPoints = max(numPoints, 1)

	n := len(controlPoints) - 1
	knots := make([]float64, n+degree+2)
	for i := range knots {
		knots[i] = float64(i)
	}

	tMin := knots[degree]
	tMax := knots[n+1]
	step := (tMax - tMin) / float64(numPoints)

	basis := make([]float64, len(knots)-1)
	points := make([]vec.Vec2, 0, numPoints+1)
	for i := range numPoints + 1 {
		t := tMin + float64(i)*step
		bsplineBasis(basis, knots, degree, t)

		var pt vec.Vec2
		for j := range n + 1 {
			pt = pt.Add(controlPoints[j].Mul(basis[j]))
		}
		points = append(points, pt)
	}
	return points, nil
}

// bsplineBasis evaluates the Cox-de Boor recursion bottom-up.
// On return, basis[i] holds N_{i,degree}(t) for i = 0, ..., len(knots)-degree-2.
//
// The table is kept as a single row: order p overwrites order p-1 from
// left to right, which is safe since N_{i,p} depends only on N_{i,p-1}
// and N_{i+1,p-1}. Terms with a zero denominator contribute 0.
func bsplineBasis(basis, knots []float64, degree int, t float64) {
	spans := len(knots) - 1
	for i := range spans {
		if knots[i] <= t && t < knots[i+1] {
			basis[i] = 1
		} else {
			basis[i] = 0
		}
	}

	for p := 1; p <= degree; p++ {
		for i := range spans - p {
			var v float64
			if d := knots[i+p] - knots[i]; d != 0 {
				v += (t - knots[i]) / d * basis[i]
			}
			if d := knots[i+p+1] - knots[i+1]; d != 0 {
				v += (knots[i+p+1] - t) / d * basis[i+1]
			}
			basis[i] = v
		}
	}
}
