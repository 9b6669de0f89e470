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

package testcases

import (
	"seehuhn.de/go/geom/vec"
)

// TestCase defines a single drawing test.
type TestCase struct {
	Name   string    // lowercase a-z, 0-9 and _ only
	Width  int       // canvas width in cells
	Height int       // canvas height in cells
	Op     Operation // the primitive to draw
}

// Operation is a primitive which can be drawn onto a canvas.
type Operation interface {
	isOperation()
}

// LineAlgorithm selects the line rasterizer.
type LineAlgorithm int

const (
	Incremental LineAlgorithm = iota
	ErrorAccumulator
	AntiAliased
)

func (a LineAlgorithm) String() string {
	switch a {
	case Incremental:
		return "incremental"
	case ErrorAccumulator:
		return "error_accumulator"
	case AntiAliased:
		return "anti_aliased"
	default:
		return "unknown"
	}
}

// Line is a straight line segment.
type Line struct {
	Algorithm LineAlgorithm
	From, To  vec.Vec2
}

// Chain is a sequence of points joined by incremental lines.
type Chain struct {
	Points []vec.Vec2
}

// Circle is a circle drawn by the midpoint algorithm.
type Circle struct {
	Center vec.Vec2
	Radius float64
}

// Ellipse is an axis-aligned ellipse.
type Ellipse struct {
	Center vec.Vec2
	RX, RY float64
}

// Parabola is a downward opening parabola.
type Parabola struct {
	Vertex  vec.Vec2
	Width   float64 // horizontal stretch
	Density float64 // parameter range is [-Density, Density]
}

// Hyperbola is a hyperbola with vertical axis, sampled over the whole
// canvas width.
type Hyperbola struct {
	Vertex       vec.Vec2
	Major, Minor float64
}

// Hermite is a cubic Hermite curve.
type Hermite struct {
	P0, P1  vec.Vec2 // endpoints
	M0, M1  vec.Vec2 // tangents at the endpoints
	Samples int
}

// Bezier is a cubic Bézier curve.
type Bezier struct {
	P       [4]vec.Vec2
	Samples int
}

// BSpline is a uniform B-spline curve.
type BSpline struct {
	Control []vec.Vec2
	Degree  int
	Samples int
}

// HullAlgorithm selects the convex hull builder.
type HullAlgorithm int

const (
	GiftWrap HullAlgorithm = iota
	March
)

func (a HullAlgorithm) String() string {
	switch a {
	case GiftWrap:
		return "gift_wrap"
	case March:
		return "march"
	default:
		return "unknown"
	}
}

// Hull is the boundary of the convex hull of a point set.
type Hull struct {
	Algorithm HullAlgorithm
	Points    []vec.Vec2
}

// FillAlgorithm selects the polygon filler.
type FillAlgorithm int

const (
	Scanline FillAlgorithm = iota
	ScanlineWithPointTest
	Flood
	GridFlood
	Coverage
)

func (a FillAlgorithm) String() string {
	switch a {
	case Scanline:
		return "scanline"
	case ScanlineWithPointTest:
		return "scanline_point_test"
	case Flood:
		return "flood"
	case GridFlood:
		return "grid_flood"
	case Coverage:
		return "coverage"
	default:
		return "unknown"
	}
}

// Fill is the interior of a simple polygon.
type Fill struct {
	Algorithm FillAlgorithm
	Polygon   []vec.Vec2
	CellSize  int // grid spacing for GridFlood, 0 for the default
}

func (Line) isOperation()      {}
func (Chain) isOperation()     {}
func (Circle) isOperation()    {}
func (Ellipse) isOperation()   {}
func (Parabola) isOperation()  {}
func (Hyperbola) isOperation() {}
func (Hermite) isOperation()   {}
func (Bezier) isOperation()    {}
func (BSpline) isOperation()   {}
func (Hull) isOperation()      {}
func (Fill) isOperation()      {}

// pt is a helper to create a vec.Vec2 from x, y coordinates.
func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}
