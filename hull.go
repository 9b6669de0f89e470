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
	"slices"

	"seehuhn.de/go/geom/vec"
)

// GiftWrapHull computes the convex hull of points and returns its
// boundary as a continuous chain of grid points (see [Chain]).
//
// The walk starts at the leftmost point and repeatedly turns to the
// candidate which is counter-clockwise-most relative to the current
// vertex. Points lying on a hull edge are visited in order along the
// edge. If fewer than three points are given, a copy of the input is
// returned unchanged.
func GiftWrapHull(points []vec.Vec2) []vec.Vec2 {
	if len(points) < 3 {
		Logger().Debug("gift wrap hull: too few points", "n", len(points))
		return slices.Clone(points)
	}
	return Chain(giftWrapVertices(points))
}

// HullVertices returns the corner points of the convex hull found by
// [GiftWrapHull], before they are joined into a chain. The first vertex
// is repeated at the end. For fewer than three points, a copy of the
// input is returned.
func HullVertices(points []vec.Vec2) []vec.Vec2 {
	if len(points) < 3 {
		return slices.Clone(points)
	}
	return giftWrapVertices(points)
}

// startHeading is the direction assumed before the first hull edge. From
// the leftmost point the walk moves towards smaller y along a vertical
// hull edge.
var startHeading = vec.Vec2{X: 0, Y: -1}

// turnsFurther reports whether candidate p should replace q as the next
// hull vertex after c, where heading is the direction of the edge that
// led to c. If p and q are collinear with c, the nearer of two points on
// the same side wins, and otherwise the one ahead of c. This way every
// point on a hull edge becomes a vertex.
func turnsFurther(c, heading, p, q vec.Vec2) bool {
	if p == c {
		return false
	}
	if q == c {
		return true
	}
	switch Orient(c, p, q) {
	case CounterClockwise:
		return true
	case Clockwise:
		return false
	}
	dp := p.Sub(c)
	dq := q.Sub(c)
	if dp.Dot(dq) > 0 {
		return dp.Dot(dp) < dq.Dot(dq)
	}
	return dp.Dot(heading) > 0
}

// maxHullSteps bounds the hull walks. A point set on a single line is
// walked out and back, visiting every point at most twice.
func maxHullSteps(n int) int {
	return 2*n + 1
}

func giftWrapVertices(points []vec.Vec2) []vec.Vec2 {
	start := points[Leftmost(points)]
	current := start
	heading := startHeading

	var key []vec.Vec2
	for range maxHullSteps(len(points)) {
		key = append(key, current)

		next := current
		for _, p := range points {
			if turnsFurther(current, heading, p, next) {
				next = p
			}
		}

		if next == start {
			return append(key, key[0])
		}
		heading = next.Sub(current)
		current = next
	}

	Logger().Warn("gift wrap hull: walk did not return to start", "n", len(points))
	return append(key, key[0])
}

// MarchHull computes the convex hull of points by marching around the
// point set, and returns the boundary as a continuous chain of grid
// points.
//
// From the current vertex, the following point in input order is taken
// as the tentative next vertex, and it is replaced whenever a point
// further counter-clockwise is found. If fewer than three points are
// given, nil is returned.
func MarchHull(points []vec.Vec2) []vec.Vec2 {
	if len(points) < 3 {
		Logger().Debug("march hull: too few points", "n", len(points))
		return nil
	}
	return Chain(marchVertices(points))
}

func marchVertices(points []vec.Vec2) []vec.Vec2 {
	n := len(points)
	start := Leftmost(points)
	p := start
	heading := startHeading

	key := []vec.Vec2{points[start]}
	for range maxHullSteps(n) {
		q := (p + 1) % n
		for i := range points {
			if turnsFurther(points[p], heading, points[i], points[q]) {
				q = i
			}
		}

		if points[q] == points[start] {
			return append(key, key[0])
		}
		heading = points[q].Sub(points[p])
		p = q
		key = append(key, points[p])
	}

	Logger().Warn("march hull: walk did not return to start", "n", n)
	return append(key, key[0])
}
