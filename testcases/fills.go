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
	"math"

	"seehuhn.de/go/geom/vec"
)

var fillCases = []TestCase{
	{
		Name:   "scanline_rectangle",
		Width:  16,
		Height: 16,
		Op:     Fill{Algorithm: Scanline, Polygon: rectangle(2, 3, 12, 10)},
	},
	{
		Name:   "scanline_star",
		Width:  64,
		Height: 64,
		Op:     Fill{Algorithm: Scanline, Polygon: fivePointStar(32, 32, 25)},
	},
	{
		Name:   "point_test_triangle",
		Width:  64,
		Height: 64,
		Op:     Fill{Algorithm: ScanlineWithPointTest, Polygon: triangle(10, 50, 32, 10, 54, 50)},
	},
	{
		Name:   "flood_triangle",
		Width:  64,
		Height: 64,
		Op:     Fill{Algorithm: Flood, Polygon: triangle(10, 10, 54, 10, 32, 50)},
	},
	{
		Name:   "grid_flood_triangle",
		Width:  64,
		Height: 64,
		Op:     Fill{Algorithm: GridFlood, Polygon: triangle(10, 50, 32, 10, 54, 50), CellSize: 8},
	},
	{
		Name:   "coverage_star",
		Width:  64,
		Height: 64,
		Op:     Fill{Algorithm: Coverage, Polygon: fivePointStar(32, 32, 25)},
	},
}

// triangle returns the vertices of a triangle.
func triangle(x1, y1, x2, y2, x3, y3 float64) []vec.Vec2 {
	return []vec.Vec2{pt(x1, y1), pt(x2, y2), pt(x3, y3)}
}

// rectangle returns the corners of an axis-aligned rectangle.
func rectangle(x1, y1, x2, y2 float64) []vec.Vec2 {
	return []vec.Vec2{pt(x1, y1), pt(x2, y1), pt(x2, y2), pt(x1, y2)}
}

// fivePointStar returns the vertices of a self-intersecting star,
// visiting every second outer point. Vertices are rounded to integers.
func fivePointStar(cx, cy, r float64) []vec.Vec2 {
	var poly []vec.Vec2
	for i := range 5 {
		angle := -math.Pi/2 + float64(i*2)*2*math.Pi/5
		poly = append(poly, pt(math.Round(cx+r*math.Cos(angle)), math.Round(cy+r*math.Sin(angle))))
	}
	return poly
}
