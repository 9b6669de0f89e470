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
	"cmp"
	"math"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Defaults and tolerances for CoverageFiller.
const (
	// defaultFlatness is the curve flattening tolerance in device pixels.
	defaultFlatness = 0.25

	// horizontalEdgeThreshold is the minimum vertical extent of an edge.
	// Flatter edges do not contribute to coverage.
	horizontalEdgeThreshold = 1e-10
)

// segment is a path edge in device coordinates.
type segment struct {
	x0, y0 float64
	x1, y1 float64
	dxdy   float64 // (x1-x0)/(y1-y0)
}

// CoverageFiller computes anti-aliased fills: for each pixel, the
// fraction of its unit square covered by the path.
//
// Pixel (x, y) covers the square [x, x+1) × [y, y+1) in device space.
// Internal buffers are reused between calls, so a CoverageFiller is not
// safe for concurrent use.
type CoverageFiller struct {
	// CTM maps path coordinates to device coordinates.
	CTM matrix.Matrix

	// Clip bounds the output. Coordinates must be integers.
	Clip rect.Rect

	// Flatness is the curve flattening tolerance in device pixels.
	Flatness float64

	cover     []float32 // signed vertical extent per pixel
	area      []float32 // position weighted extent per pixel
	segs      []segment
	activeIdx []int
	crossings []float64

	bboxEmpty        bool
	devXMin, devXMax float64
	devYMin, devYMax float64
}

// NewCoverageFiller returns a CoverageFiller with the given clip
// rectangle, the identity CTM, and a flatness of 0.25 pixels.
func NewCoverageFiller(clip rect.Rect) *CoverageFiller {
	return &CoverageFiller{
		CTM:      matrix.Identity,
		Clip:     clip,
		Flatness: defaultFlatness,
	}
}

// PolygonPath returns the closed path through the polygon vertices.
func PolygonPath(polygon []vec.Vec2) *path.Data {
	p := &path.Data{}
	if len(polygon) == 0 {
		return p
	}
	p = p.MoveTo(polygon[0])
	for _, v := range polygon[1:] {
		p = p.LineTo(v)
	}
	return p.Close()
}

// CoverageFill returns the anti-aliased even-odd fill of the polygon,
// clipped to its own bounding box.
func CoverageFill(polygon []vec.Vec2) []Pixel {
	b := Bounds(polygon)
	clip := rect.Rect{
		LLx: math.Floor(b.LLx),
		LLy: math.Floor(b.LLy),
		URx: math.Ceil(b.URx) + 1,
		URy: math.Ceil(b.URy) + 1,
	}
	return NewCoverageFiller(clip).FillEvenOdd(PolygonPath(polygon))
}

// FillNonZero returns the pixels covered by p under the nonzero winding
// rule, row by row. Pixels with zero coverage are omitted.
func (f *CoverageFiller) FillNonZero(p *path.Data) []Pixel {
	return f.fill(p, integrateNonZero)
}

// FillEvenOdd returns the pixels covered by p under the even-odd rule,
// row by row. Pixels with zero coverage are omitted.
func (f *CoverageFiller) FillEvenOdd(p *path.Data) []Pixel {
	return f.fill(p, integrateEvenOdd)
}

func (f *CoverageFiller) fill(p *path.Data, integrate func(cover, area []float32)) []Pixel {
	xMin, xMax, yMin, yMax, ok := f.collectSegments(p)
	if !ok {
		return nil
	}

	width := xMax - xMin
	f.cover = slices.Grow(f.cover[:0], width)[:width]
	f.area = slices.Grow(f.area[:0], width)[:width]

	slices.SortFunc(f.segs, func(a, b segment) int {
		return cmp.Compare(min(a.y0, a.y1), min(b.y0, b.y1))
	})

	var pixels []Pixel
	f.activeIdx = f.activeIdx[:0]
	next := 0
	for y := yMin; y < yMax; y++ {
		yf := float64(y)
		for next < len(f.segs) && min(f.segs[next].y0, f.segs[next].y1) < yf+1 {
			f.activeIdx = append(f.activeIdx, next)
			next++
		}
		if len(f.activeIdx) == 0 {
			continue
		}

		clear(f.cover)
		clear(f.area)
		touched := false
		for i := 0; i < len(f.activeIdx); {
			s := &f.segs[f.activeIdx[i]]
			if max(s.y0, s.y1) <= yf {
				// done with this segment
				f.activeIdx[i] = f.activeIdx[len(f.activeIdx)-1]
				f.activeIdx = f.activeIdx[:len(f.activeIdx)-1]
				continue
			}
			if f.accumulate(s, y, xMin, xMax) {
				touched = true
			}
			i++
		}
		if !touched {
			continue
		}

		integrate(f.cover, f.area)
		for i, c := range f.cover {
			if c > 0 {
				pixels = append(pixels, Pixel{X: xMin + i, Y: y, Intensity: float64(c)})
			}
		}
	}
	return pixels
}

// collectSegments flattens p into device space segments and returns the
// covered pixel range, clamped to the clip rectangle.
func (f *CoverageFiller) collectSegments(p *path.Data) (xMin, xMax, yMin, yMax int, ok bool) {
	f.segs = f.segs[:0]
	f.bboxEmpty = true

	var current, start vec.Vec2
	k := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			current = p.Coords[k]
			start = current
			k++
		case path.CmdLineTo:
			f.addSegment(current, p.Coords[k])
			current = p.Coords[k]
			k++
		case path.CmdQuadTo:
			// degree elevation: the quadratic is an exact cubic
			c := p.Coords[k]
			end := p.Coords[k+1]
			c1 := current.Add(c.Sub(current).Mul(2.0 / 3))
			c2 := end.Add(c.Sub(end).Mul(2.0 / 3))
			f.flattenCubic(current, c1, c2, end)
			current = end
			k += 2
		case path.CmdCubeTo:
			f.flattenCubic(current, p.Coords[k], p.Coords[k+1], p.Coords[k+2])
			current = p.Coords[k+2]
			k += 3
		case path.CmdClose:
			if current != start {
				f.addSegment(current, start)
			}
			current = start
		}
	}
	if len(f.segs) == 0 {
		return 0, 0, 0, 0, false
	}

	xMin = max(int(math.Floor(f.devXMin)), int(f.Clip.LLx))
	xMax = min(int(math.Floor(f.devXMax))+1, int(f.Clip.URx))
	yMin = max(int(math.Floor(f.devYMin)), int(f.Clip.LLy))
	yMax = min(int(math.Floor(f.devYMax))+1, int(f.Clip.URy))
	if xMin >= xMax || yMin >= yMax {
		return 0, 0, 0, 0, false
	}
	return xMin, xMax, yMin, yMax, true
}

// flattenCubic approximates a cubic Bézier by line segments. The number
// of segments is chosen by Wang's formula, so that the device space
// distance to the curve stays below the flatness tolerance.
func (f *CoverageFiller) flattenCubic(p0, p1, p2, p3 vec.Vec2) {
	d1 := f.linear(p0.Sub(p1.Mul(2)).Add(p2))
	d2 := f.linear(p1.Sub(p2.Mul(2)).Add(p3))

	n := 1
	if m := max(d1.Length(), d2.Length()); m > 0 {
		if nf := math.Sqrt(3 * m / (4 * f.Flatness)); nf > 1 {
			n = int(math.Ceil(nf))
		}
	}

	pts := Bezier(p0, p1, p2, p3, n)
	for i := 1; i < len(pts); i++ {
		f.addSegment(pts[i-1], pts[i])
	}
}

// linear applies the linear part of the CTM to v.
func (f *CoverageFiller) linear(v vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: f.CTM[0]*v.X + f.CTM[2]*v.Y,
		Y: f.CTM[1]*v.X + f.CTM[3]*v.Y,
	}
}

func (f *CoverageFiller) addSegment(p0, p1 vec.Vec2) {
	x0 := f.CTM[0]*p0.X + f.CTM[2]*p0.Y + f.CTM[4]
	y0 := f.CTM[1]*p0.X + f.CTM[3]*p0.Y + f.CTM[5]
	x1 := f.CTM[0]*p1.X + f.CTM[2]*p1.Y + f.CTM[4]
	y1 := f.CTM[1]*p1.X + f.CTM[3]*p1.Y + f.CTM[5]

	dy := y1 - y0
	if math.Abs(dy) < horizontalEdgeThreshold {
		return
	}
	f.segs = append(f.segs, segment{x0: x0, y0: y0, x1: x1, y1: y1, dxdy: (x1 - x0) / dy})

	if f.bboxEmpty {
		f.devXMin, f.devXMax = min(x0, x1), max(x0, x1)
		f.devYMin, f.devYMax = min(y0, y1), max(y0, y1)
		f.bboxEmpty = false
		return
	}
	f.devXMin = min(f.devXMin, x0, x1)
	f.devXMax = max(f.devXMax, x0, x1)
	f.devYMin = min(f.devYMin, y0, y1)
	f.devYMax = max(f.devYMax, y0, y1)
}

// Each segment adds two values per pixel in the row it crosses:
//
//	cover: the signed height of the part of the segment inside the pixel
//	       column (positive for downward segments)
//	area:  cover, weighted by how much of the pixel lies right of the
//	       segment
//
// Integrating from left to right, the coverage of pixel i is the sum of
// cover over all pixels left of i plus area[i]. Segments left of the
// buffer are folded into pixel 0.

// accumulate adds the contribution of s within scanline y to the cover
// and area buffers. It reports whether the segment touched the row.
func (f *CoverageFiller) accumulate(s *segment, y, bxMin, bxMax int) bool {
	yTop := max(float64(y), min(s.y0, s.y1))
	yBot := min(float64(y+1), max(s.y0, s.y1))
	if yBot <= yTop {
		return false
	}

	sign := float32(1)
	if s.y1 < s.y0 {
		sign = -1
	}

	xLeft := s.x0 + s.dxdy*(yTop-s.y0)
	xRight := s.x0 + s.dxdy*(yBot-s.y0)
	if xLeft > xRight {
		xLeft, xRight = xRight, xLeft
	}
	pixLeft := int(math.Floor(xLeft))
	pixRight := int(math.Floor(xRight))

	switch {
	case pixRight < bxMin:
		c := sign * float32(yBot-yTop)
		f.cover[0] += c
		f.area[0] += c
		return true
	case pixLeft >= bxMax:
		return true
	case pixLeft == pixRight:
		f.addPiece(s, yTop, yBot, sign, bxMin, bxMax)
		return true
	}

	// split the segment where it crosses vertical pixel boundaries
	f.crossings = append(f.crossings[:0], yTop, yBot)
	dydx := 1 / s.dxdy
	for x := pixLeft + 1; x <= pixRight; x++ {
		yx := s.y0 + dydx*(float64(x)-s.x0)
		if yx > yTop && yx < yBot {
			f.crossings = append(f.crossings, yx)
		}
	}
	slices.Sort(f.crossings)
	for i := range len(f.crossings) - 1 {
		if f.crossings[i+1] > f.crossings[i] {
			f.addPiece(s, f.crossings[i], f.crossings[i+1], sign, bxMin, bxMax)
		}
	}
	return true
}

// addPiece adds a piece of s between y0 and y1 which lies within a
// single pixel column.
func (f *CoverageFiller) addPiece(s *segment, y0, y1 float64, sign float32, bxMin, bxMax int) {
	c := sign * float32(y1-y0)
	xMid := s.x0 + s.dxdy*((y0+y1)/2-s.y0)
	pix := int(math.Floor(xMid))
	switch {
	case pix < bxMin:
		f.cover[0] += c
		f.area[0] += c
	case pix < bxMax:
		idx := pix - bxMin
		f.cover[idx] += c
		f.area[idx] += c * float32(1-(xMid-float64(pix)))
	}
}

// integrateNonZero turns cover and area into final coverage values, in
// place, using the nonzero winding rule.
func integrateNonZero(cover, area []float32) {
	var acc float32
	for i := range cover {
		raw := acc + area[i]
		acc += cover[i]
		cover[i] = min(abs32(raw), 1)
	}
}

// integrateEvenOdd turns cover and area into final coverage values, in
// place, using the even-odd rule.
func integrateEvenOdd(cover, area []float32) {
	var acc float32
	for i := range cover {
		raw := abs32(acc + area[i])
		acc += cover[i]
		mod := raw - 2*float32(int(raw/2))
		cover[i] = 1 - abs32(1-mod)
	}
}

func abs32(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
