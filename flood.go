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

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

const (
	// floodMargin is the number of pixels by which the flood fill search
	// region extends beyond the polygon's bounding box.
	floodMargin = 1

	// defaultCellSize is the grid spacing used by ScanlineFloodFill
	// when no positive cell size is given.
	defaultCellSize = 10
)

type cell struct {
	x, y int
}

// FloodFill returns the grid points inside the polygon, found by a
// 4-connected flood fill seeded at every polygon vertex.
//
// A candidate point is accepted, and its four neighbours are queued, only
// if [InsidePolygon] reports it as interior. The search never leaves the
// polygon's bounding box extended by a one pixel margin. Points are
// returned in the order they are accepted.
func FloodFill(polygon []vec.Vec2) []vec.Vec2 {
	if len(polygon) == 0 {
		return nil
	}
	b := Bounds(polygon)
	xMin := int(math.Floor(b.LLx)) - floodMargin
	xMax := int(math.Ceil(b.URx)) + floodMargin
	yMin := int(math.Floor(b.LLy)) - floodMargin
	yMax := int(math.Ceil(b.URy)) + floodMargin

	stack := make([]cell, 0, len(polygon))
	for _, p := range polygon {
		stack = append(stack, cell{int(roundHalfUp(p.X)), int(roundHalfUp(p.Y))})
	}

	var filled []vec.Vec2
	visited := make(map[cell]bool)
	for len(stack) > 0 {
		c := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if visited[c] || c.x < xMin || c.x > xMax || c.y < yMin || c.y > yMax {
			continue
		}
		if !InsidePolygon(float64(c.x), float64(c.y), polygon) {
			continue
		}
		visited[c] = true
		filled = append(filled, vec.Vec2{X: float64(c.x), Y: float64(c.y)})
		stack = append(stack,
			cell{c.x + 1, c.y},
			cell{c.x - 1, c.y},
			cell{c.x, c.y + 1},
			cell{c.x, c.y - 1})
	}
	return filled
}

// ScanlineFloodFill walks a coarse grid of cellSize×cellSize cells,
// starting from the cells under the polygon vertices, and then returns
// the result of [ScanlineFill] for the polygon. The walk fills each row
// left and right until it meets an already painted cell or the border of
// clip, and then continues with the rows above and below.
//
// If clip is the zero rectangle, the polygon's bounding box extended by
// one cell is used. A cellSize of zero or less selects the default of 10.
func ScanlineFloodFill(polygon []vec.Vec2, clip rect.Rect, cellSize int) []vec.Vec2 {
	if len(polygon) == 0 {
		return nil
	}
	cells := GridFloodCells(polygon, clip, cellSize)
	Logger().Debug("grid flood fill", "cells", len(cells))
	return ScanlineFill(polygon)
}

// GridFloodCells returns the centres of the grid cells painted by the
// coarse walk of [ScanlineFloodFill], in painting order.
func GridFloodCells(polygon []vec.Vec2, clip rect.Rect, cellSize int) []vec.Vec2 {
	if len(polygon) == 0 {
		return nil
	}
	if cellSize <= 0 {
		cellSize = defaultCellSize
	}
	if clip == (rect.Rect{}) {
		b := Bounds(polygon)
		s := float64(cellSize)
		clip = rect.Rect{LLx: b.LLx - s, LLy: b.LLy - s, URx: b.URx + s, URy: b.URy + s}
	}

	xMin := int(math.Floor(clip.LLx))
	yMin := int(math.Floor(clip.LLy))
	xMax := int(math.Ceil(clip.URx)) - cellSize
	yMax := int(math.Ceil(clip.URy)) - cellSize

	centre := func(v float64) int {
		return int(math.Floor(v/float64(cellSize)))*cellSize + cellSize/2
	}
	stack := make([]cell, 0, len(polygon))
	for _, p := range polygon {
		stack = append(stack, cell{centre(p.X), centre(p.Y)})
	}

	var painted []vec.Vec2
	seen := make(map[cell]bool)
	for len(stack) > 0 {
		c := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if seen[c] {
			continue
		}

		left, right := c.x, c.x
		for left > xMin && !seen[cell{left - cellSize, c.y}] {
			left -= cellSize
		}
		for right < xMax && !seen[cell{right + cellSize, c.y}] {
			right += cellSize
		}

		for x := left; x <= right; x += cellSize {
			seen[cell{x, c.y}] = true
			painted = append(painted, vec.Vec2{X: float64(x), Y: float64(c.y)})
			if c.y > yMin && !seen[cell{x, c.y - cellSize}] {
				stack = append(stack, cell{x, c.y - cellSize})
			}
			if c.y < yMax && !seen[cell{x, c.y + cellSize}] {
				stack = append(stack, cell{x, c.y + cellSize})
			}
		}
	}
	return painted
}
