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
	"slices"

	"seehuhn.de/go/geom/vec"
)

// Edge is a non-horizontal polygon side, prepared for scanline filling.
type Edge struct {
	StartY       float64 // smaller y coordinate of the two endpoints
	EndY         float64 // larger y coordinate, EndY > StartY
	XAtMinY      float64 // x coordinate of the endpoint at StartY
	SlopeInverse float64 // dx/dy
}

// xAt returns the x coordinate of the edge on scanline y.
func (e *Edge) xAt(y float64) float64 {
	return e.XAtMinY + e.SlopeInverse*(y-e.StartY)
}

// EdgeTable returns the edges of the closed polygon, in polygon order.
// Horizontal sides are omitted.
func EdgeTable(polygon []vec.Vec2) []Edge {
	n := len(polygon)
	edges := make([]Edge, 0, n)
	for i, p := range polygon {
		q := polygon[(i+1)%n]
		if p.Y == q.Y {
			continue
		}
		xAtMinY := q.X
		if p.Y < q.Y {
			xAtMinY = p.X
		}
		edges = append(edges, Edge{
			StartY:       min(p.Y, q.Y),
			EndY:         max(p.Y, q.Y),
			XAtMinY:      xAtMinY,
			SlopeInverse: (p.X - q.X) / (p.Y - q.Y),
		})
	}
	return edges
}

// ScanlineFill returns the grid points inside the polygon, row by row
// from top to bottom.
//
// For every integer scanline y between the smallest and the largest
// vertex y coordinate, the intersections with all edges satisfying
// StartY <= y < EndY are sorted, and the closed pixel ranges
// ceil(x[2k]) ... floor(x[2k+1]) are emitted.
func ScanlineFill(polygon []vec.Vec2) []vec.Vec2 {
	if len(polygon) == 0 {
		return nil
	}
	b := Bounds(polygon)
	edges := EdgeTable(polygon)

	var filled []vec.Vec2
	var xs []float64
	for y := math.Ceil(b.LLy); y <= b.URy; y++ {
		xs = scanlineIntersections(xs[:0], edges, y)
		for i := 0; i+1 < len(xs); i += 2 {
			for x := math.Ceil(xs[i]); x <= math.Floor(xs[i+1]); x++ {
				filled = append(filled, vec.Vec2{X: x, Y: y})
			}
		}
	}
	return filled
}

// scanlineIntersections appends the sorted x coordinates where the
// active edges cross scanline y.
func scanlineIntersections(xs []float64, edges []Edge, y float64) []float64 {
	for i := range edges {
		e := &edges[i]
		if y >= e.StartY && y < e.EndY {
			xs = append(xs, e.xAt(y))
		}
	}
	slices.Sort(xs)
	return xs
}

// ScanlineWithPointTestFill returns the same points as [ScanlineFill].
//
// In addition, for every scanline the leftmost crossing of the polygon
// boundary is tracked, and each filled point is checked against
// [InsidePolygon]. Disagreements are only reported through the package
// logger; they occur for points on the boundary, where the two rules
// legitimately differ.
func ScanlineWithPointTestFill(polygon []vec.Vec2) []vec.Vec2 {
	if len(polygon) == 0 {
		return nil
	}
	filled := ScanlineFill(polygon)

	b := Bounds(polygon)
	yMin := math.Ceil(b.LLy)
	rows := int(math.Floor(b.URy)-yMin) + 1
	if rows <= 0 {
		return filled
	}

	leftmost := make([]float64, rows)
	for row := range leftmost {
		leftmost[row] = math.Inf(1)
		y := yMin + float64(row)
		for i, j := 0, len(polygon)-1; i < len(polygon); j, i = i, i+1 {
			vi, vj := polygon[i], polygon[j]
			if (vi.Y > y) != (vj.Y > y) {
				x := math.Floor(vi.X + (y-vi.Y)/(vj.Y-vi.Y)*(vj.X-vi.X))
				leftmost[row] = min(leftmost[row], x)
			}
		}
	}

	log := Logger()
	mismatch := 0
	for _, p := range filled {
		row := int(p.Y - yMin)
		if p.X < leftmost[row] || !InsidePolygon(p.X, p.Y, polygon) {
			mismatch++
		}
	}
	if mismatch > 0 {
		log.Debug("scanline fill: point test disagrees",
			"points", len(filled), "mismatch", mismatch)
	}

	return filled
}
