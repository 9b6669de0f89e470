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
	"fmt"
	"math"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Pixel is a grid cell together with the fraction of the cell covered
// by the primitive, ranging from 0 (empty) to 1 (fully covered).
type Pixel struct {
	X, Y      int
	Intensity float64
}

// Orientation describes the turn made by three consecutive points.
type Orientation int

const (
	Collinear Orientation = iota
	Clockwise
	CounterClockwise
)

func (o Orientation) String() string {
	switch o {
	case Collinear:
		return "collinear"
	case Clockwise:
		return "clockwise"
	case CounterClockwise:
		return "counter-clockwise"
	default:
		return fmt.Sprintf("Orientation(%d)", int(o))
	}
}

// Orient returns the orientation of the turn p→q→r.
// The result is the sign of the cross product of q-p and r-q, with the
// y axis pointing down; Collinear is returned only if the cross product
// is exactly zero.
func Orient(p, q, r vec.Vec2) Orientation {
	val := (q.Y-p.Y)*(r.X-q.X) - (q.X-p.X)*(r.Y-q.Y)
	switch {
	case val == 0:
		return Collinear
	case val > 0:
		return Clockwise
	default:
		return CounterClockwise
	}
}

// Leftmost returns the index of the point with the smallest x coordinate.
// Ties go to the first such point. If points is empty, -1 is returned.
func Leftmost(points []vec.Vec2) int {
	if len(points) == 0 {
		return -1
	}
	best := 0
	for i, p := range points {
		if p.X < points[best].X {
			best = i
		}
	}
	return best
}

// Bounds returns the smallest rectangle containing all points.
// The zero rectangle is returned for an empty slice.
func Bounds(points []vec.Vec2) rect.Rect {
	if len(points) == 0 {
		return rect.Rect{}
	}
	b := rect.Rect{LLx: points[0].X, LLy: points[0].Y, URx: points[0].X, URy: points[0].Y}
	for _, p := range points[1:] {
		b.LLx = min(b.LLx, p.X)
		b.LLy = min(b.LLy, p.Y)
		b.URx = max(b.URx, p.X)
		b.URy = max(b.URy, p.Y)
	}
	return b
}

// InsidePolygon reports whether (x, y) lies inside the polygon, using the
// even-odd rule. A horizontal ray is cast towards +x; each edge is
// treated as half-open in y so that a vertex on the ray is counted once.
func InsidePolygon(x, y float64, polygon []vec.Vec2) bool {
	n := len(polygon)
	crossings := 0
	for i := range n {
		p1 := polygon[i]
		p2 := polygon[(i+1)%n]
		if (p1.Y <= y && y < p2.Y) || (p2.Y <= y && y < p1.Y) {
			if x < (p2.X-p1.X)*(y-p1.Y)/(p2.Y-p1.Y)+p1.X {
				crossings++
			}
		}
	}
	return crossings%2 != 0
}

// finite reports whether all coordinates of the points are finite.
func finite(points ...vec.Vec2) bool {
	for _, p := range points {
		if math.IsNaN(p.X) || math.IsInf(p.X, 0) || math.IsNaN(p.Y) || math.IsInf(p.Y, 0) {
			return false
		}
	}
	return true
}
