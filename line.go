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

// IncrementalLine rasterizes the segment from start to end using the
// digital differential analyzer. Both coordinates advance by a constant
// fraction of the delta per step and are rounded when a point is emitted.
// The result has max(|dx|, |dy|)+1 points and includes both endpoints.
// If a coordinate is NaN or infinite, nil is returned.
func IncrementalLine(start, end vec.Vec2) []vec.Vec2 {
	if !finite(start, end) {
		return nil
	}
	dx := end.X - start.X
	dy := end.Y - start.Y
	steps := max(math.Abs(dx), math.Abs(dy))
	if steps == 0 {
		return []vec.Vec2{{X: roundHalfUp(start.X), Y: roundHalfUp(start.Y)}}
	}

	xInc := dx / steps
	yInc := dy / steps

	n := int(steps)
	points := make([]vec.Vec2, 0, n+1)
	x, y := start.X, start.Y
	for range n + 1 {
		points = append(points, vec.Vec2{X: roundHalfUp(x), Y: roundHalfUp(y)})
		x += xInc
		y += yInc
	}
	return points
}

// ErrorAccumulatorLine rasterizes the segment from start to end using
// Bresenham's algorithm. The endpoints are rounded to the nearest grid
// point first. Consecutive output points are 8-connected and both
// endpoints are included exactly once. Non-finite input gives nil.
func ErrorAccumulatorLine(start, end vec.Vec2) []vec.Vec2 {
	if !finite(start, end) {
		return nil
	}
	x0, y0 := int(roundHalfUp(start.X)), int(roundHalfUp(start.Y))
	x1, y1 := int(roundHalfUp(end.X)), int(roundHalfUp(end.Y))

	dx := abs(x1 - x0)
	dy := abs(y1 - y0)
	sx := 1
	if x0 >= x1 {
		sx = -1
	}
	sy := 1
	if y0 >= y1 {
		sy = -1
	}
	err := dx - dy

	points := make([]vec.Vec2, 0, max(dx, dy)+1)
	x, y := x0, y0
	for x != x1 || y != y1 {
		points = append(points, vec.Vec2{X: float64(x), Y: float64(y)})
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x += sx
		}
		if e2 < dx {
			err += dx
			y += sy
		}
	}
	points = append(points, vec.Vec2{X: float64(x1), Y: float64(y1)})
	return points
}

// AntiAliasedLine rasterizes the segment from start to end using Wu's
// algorithm. For each column between the endpoints two vertically
// adjacent pixels are emitted, the first for the upper and the second
// for the lower pixel. Their intensities always add up to 1.
//
// The two endpoint columns are emitted first, followed by the interior
// columns from left to right. Non-finite input gives nil.
func AntiAliasedLine(start, end vec.Vec2) []Pixel {
	if !finite(start, end) {
		return nil
	}
	x0, y0 := start.X, start.Y
	x1, y1 := end.X, end.Y
	if x1 < x0 {
		x0, x1 = x1, x0
		y0, y1 = y1, y0
	}

	dx := x1 - x0
	dy := y1 - y0
	gradient := 1.0
	if dx != 0 {
		gradient = dy / dx
	}

	var pixels []Pixel

	// first endpoint
	xEnd := roundHalfUp(x0)
	yEnd := y0 + gradient*(xEnd-x0)
	xGap := 1 - fpart(x0+0.5)
	xPixel1 := int(xEnd)
	yPixel := int(math.Floor(yEnd))
	pixels = append(pixels,
		Pixel{X: xPixel1, Y: yPixel, Intensity: 1 - fpart(yEnd)*xGap},
		Pixel{X: xPixel1, Y: yPixel + 1, Intensity: fpart(yEnd) * xGap})
	intery := yEnd + gradient

	// second endpoint
	xEnd = roundHalfUp(x1)
	yEnd = y1 + gradient*(xEnd-x1)
	xGap = fpart(x1 + 0.5)
	xPixel2 := int(xEnd)
	yPixel = int(math.Floor(yEnd))
	pixels = append(pixels,
		Pixel{X: xPixel2, Y: yPixel, Intensity: 1 - fpart(yEnd)*xGap},
		Pixel{X: xPixel2, Y: yPixel + 1, Intensity: fpart(yEnd) * xGap})

	for x := xPixel1 + 1; x < xPixel2; x++ {
		y := int(math.Floor(intery))
		f := fpart(intery)
		pixels = append(pixels,
			Pixel{X: x, Y: y, Intensity: 1 - f},
			Pixel{X: x, Y: y + 1, Intensity: f})
		intery += gradient
	}

	return pixels
}

// Chain joins consecutive points by incremental lines into one
// continuous sequence. The shared point between two segments appears
// only once, and the sequence ends with the last input point.
// If any coordinate is NaN or infinite, nil is returned.
func Chain(points []vec.Vec2) []vec.Vec2 {
	if !finite(points...) {
		return nil
	}
	switch len(points) {
	case 0:
		return nil
	case 1:
		return []vec.Vec2{{X: roundHalfUp(points[0].X), Y: roundHalfUp(points[0].Y)}}
	}

	var chain []vec.Vec2
	for i := range len(points) - 1 {
		line := IncrementalLine(points[i], points[i+1])
		chain = append(chain, line[:len(line)-1]...)
	}
	last := points[len(points)-1]
	chain = append(chain, vec.Vec2{X: roundHalfUp(last.X), Y: roundHalfUp(last.Y)})
	return chain
}

// roundHalfUp rounds x to the nearest integer, with ties going towards
// positive infinity. Unlike math.Round this treats positive and negative
// half-way cases the same way, which keeps lines symmetric under
// translation.
func roundHalfUp(x float64) float64 {
	return math.Floor(x + 0.5)
}

// fpart returns the fractional part of x, in the range [0, 1).
func fpart(x float64) float64 {
	return x - math.Floor(x)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
