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
	"image"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/digitize/testcases"
)

// Trace runs the algorithm described by op. Exact algorithms return
// their output in points, anti-aliased ones in pixels. The bounds are
// used by operations which sample a whole canvas.
func Trace(op testcases.Operation, bounds image.Rectangle) (points []vec.Vec2, pixels []Pixel, err error) {
	switch op := op.(type) {
	case testcases.Line:
		switch op.Algorithm {
		case testcases.Incremental:
			points = IncrementalLine(op.From, op.To)
		case testcases.ErrorAccumulator:
			points = ErrorAccumulatorLine(op.From, op.To)
		case testcases.AntiAliased:
			pixels = AntiAliasedLine(op.From, op.To)
		default:
			return nil, nil, fmt.Errorf("unknown line algorithm %d", op.Algorithm)
		}
	case testcases.Chain:
		points = Chain(op.Points)
	case testcases.Circle:
		points = Circle(op.Center, op.Radius)
	case testcases.Ellipse:
		points = Ellipse(op.Center, op.RX, op.RY)
	case testcases.Parabola:
		points = Parabola(op.Vertex, op.Width, op.Density)
	case testcases.Hyperbola:
		points = Hyperbola(op.Vertex, op.Major, op.Minor, float64(bounds.Dx()), float64(bounds.Dy()))
	case testcases.Hermite:
		points = Hermite(op.P0, op.P1, op.M0, op.M1, op.Samples)
	case testcases.Bezier:
		points = Bezier(op.P[0], op.P[1], op.P[2], op.P[3], op.Samples)
	case testcases.BSpline:
		points, err = BSpline(op.Control, op.Degree, op.Samples)
		if err != nil {
			return nil, nil, err
		}
	case testcases.Hull:
		switch op.Algorithm {
		case testcases.GiftWrap:
			points = GiftWrapHull(op.Points)
		case testcases.March:
			points = MarchHull(op.Points)
		default:
			return nil, nil, fmt.Errorf("unknown hull algorithm %d", op.Algorithm)
		}
	case testcases.Fill:
		switch op.Algorithm {
		case testcases.Scanline:
			points = ScanlineFill(op.Polygon)
		case testcases.ScanlineWithPointTest:
			points = ScanlineWithPointTestFill(op.Polygon)
		case testcases.Flood:
			points = FloodFill(op.Polygon)
		case testcases.GridFlood:
			clip := rect.Rect{URx: float64(bounds.Max.X), URy: float64(bounds.Max.Y)}
			points = ScanlineFloodFill(op.Polygon, clip, op.CellSize)
		case testcases.Coverage:
			pixels = CoverageFill(op.Polygon)
		default:
			return nil, nil, fmt.Errorf("unknown fill algorithm %d", op.Algorithm)
		}
	default:
		return nil, nil, fmt.Errorf("unsupported operation %T", op)
	}
	return points, pixels, nil
}

// Render draws a test case onto the canvas.
func Render(c *Canvas, tc testcases.TestCase) error {
	points, pixels, err := Trace(tc.Op, c.Bounds())
	if err != nil {
		return fmt.Errorf("%s: %w", tc.Name, err)
	}
	c.Plot(points)
	c.PlotPixels(pixels)
	return nil
}
