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
	"math"

	"seehuhn.de/go/geom/vec"
)

// parabolaStep is the parameter increment used by Parabola.
const parabolaStep = 0.1

// Circle rasterizes a circle using the midpoint algorithm.
//
// For every point generated in the first octant, all eight symmetric
// points are emitted, so points on the octant boundaries occur more than
// once.
func Circle(center vec.Vec2, radius float64) []vec.Vec2 {
	var points []vec.Vec2
	emit := func(x, y float64) {
		points = append(points,
			vec.Vec2{X: center.X + x, Y: center.Y - y},
			vec.Vec2{X: center.X + y, Y: center.Y - x},
			vec.Vec2{X: center.X - y, Y: center.Y - x},
			vec.Vec2{X: center.X - x, Y: center.Y - y},
			vec.Vec2{X: center.X - x, Y: center.Y + y},
			vec.Vec2{X: center.X - y, Y: center.Y + x},
			vec.Vec2{X: center.X + y, Y: center.Y + x},
			vec.Vec2{X: center.X + x, Y: center.Y + y})
	}

	x := radius
	y := 0.0
	decision := 1 - x
	for x >= y {
		emit(x, y)
		y++
		if decision < 0 {
			decision += 2*y + 1
		} else {
			x--
			decision += 2*(y-x) + 1
		}
	}
	return points
}

// Ellipse rasterizes an axis-aligned ellipse with semi-axes rx and ry
// using the two-region midpoint algorithm. Region 1 covers the part of
// the first quadrant where the slope has magnitude at most 1, region 2
// the rest. Every generated point is mirrored into all four quadrants.
func Ellipse(center vec.Vec2, rx, ry float64) []vec.Vec2 {
	var points []vec.Vec2
	emit := func(x, y float64) {
		points = append(points,
			vec.Vec2{X: center.X + x, Y: center.Y - y},
			vec.Vec2{X: center.X - x, Y: center.Y - y},
			vec.Vec2{X: center.X - x, Y: center.Y + y},
			vec.Vec2{X: center.X + x, Y: center.Y + y})
	}

	rx2 := rx * rx
	ry2 := ry * ry
	twoRx2 := 2 * rx2
	twoRy2 := 2 * ry2

	x := 0.0
	y := ry
	dx := 0.0
	dy := twoRx2 * y
	emit(x, y)

	// region 1
	p1 := roundHalfUp(ry2 - rx2*ry + 0.25*rx2)
	for dx < dy {
		x++
		dx += twoRy2
		if p1 < 0 {
			p1 += ry2 + dx
		} else {
			y--
			dy -= twoRx2
			p1 += ry2 + dx - dy
		}
		emit(x, y)
	}

	// region 2
	p2 := roundHalfUp(ry2*(x+0.5)*(x+0.5) + rx2*(y-1)*(y-1) - rx2*ry2)
	for y > 0 {
		y--
		dy -= twoRx2
		if p2 > 0 {
			p2 += rx2 - dy
		} else {
			x++
			dx += twoRy2
			p2 += rx2 - dy + dx
		}
		emit(x, y)
	}

	return points
}

// Parabola samples the downward opening parabola
//
//	x = vertex.X + t*width,  y = vertex.Y - t²
//
// for t running from -density to density in steps of 0.1.
// The parameter is advanced by repeated addition, so the last sample may
// lie slightly outside [-density, density].
func Parabola(vertex vec.Vec2, width, density float64) []vec.Vec2 {
	if !(density >= 0) || math.IsInf(density, 0) {
		return nil
	}

	// two extra steps allow for the accumulated rounding error
	maxSteps := int(math.Ceil(2*density/parabolaStep)) + 2

	var points []vec.Vec2
	t := -density
	for step := 0; t <= density && step < maxSteps; step++ {
		points = append(points, vec.Vec2{X: vertex.X + t*width, Y: vertex.Y - t*t})
		t += parabolaStep
	}
	return points
}

// Hyperbola samples both branches of the hyperbola
//
//	y = vertex.Y ± minorAxis * sqrt(1 + ((x - vertex.X)/majorAxis)²)
//
// at every integer column x in [0, width). Only branch points with y in
// [0, height) are kept; for each column the point on the +minorAxis
// side of the vertex comes first.
// If majorAxis is zero, the normalized x term is taken to be zero.
func Hyperbola(vertex vec.Vec2, majorAxis, minorAxis, width, height float64) []vec.Vec2 {
	if math.IsInf(width, 1) {
		return nil
	}

	var points []vec.Vec2
	for x := 0.0; x < width; x++ {
		var xn float64
		if majorAxis != 0 {
			xn = (x - vertex.X) / majorAxis
		}
		root := math.Sqrt(1 + xn*xn)

		y1 := vertex.Y + minorAxis*root
		y2 := vertex.Y - minorAxis*root
		if y1 >= 0 && y1 < height {
			points = append(points, vec.Vec2{X: x, Y: y1})
		}
		if y2 >= 0 && y2 < height {
			points = append(points, vec.Vec2{X: x, Y: y2})
		}
	}
	return points
}
