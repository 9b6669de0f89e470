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
	"testing"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

var (
	rectangle    = pts(0, 0, 4, 0, 4, 3, 0, 3)
	downTriangle = pts(10, 10, 54, 10, 32, 50)
	upTriangle   = pts(10, 50, 32, 10, 54, 50)
	star         = pts(32, 7, 47, 52, 8, 24, 56, 24, 17, 52)
)

func pointSet(points []vec.Vec2) map[vec.Vec2]bool {
	set := make(map[vec.Vec2]bool, len(points))
	for _, p := range points {
		set[p] = true
	}
	return set
}

func TestEdgeTable(t *testing.T) {
	edges := EdgeTable(pts(0, 0, 4, 0, 6, 4, 0, 4))
	if len(edges) != 2 {
		t.Fatalf("got %d edges, want 2", len(edges))
	}
	e := edges[0]
	if e.StartY != 0 || e.EndY != 4 || e.XAtMinY != 4 || e.SlopeInverse != 0.5 {
		t.Errorf("unexpected edge %+v", e)
	}
	if x := e.xAt(2); x != 5 {
		t.Errorf("xAt(2) = %g, want 5", x)
	}
	e = edges[1]
	if e.StartY != 0 || e.EndY != 4 || e.XAtMinY != 0 || e.SlopeInverse != 0 {
		t.Errorf("unexpected edge %+v", e)
	}
}

func TestScanlineFillRectangle(t *testing.T) {
	got := ScanlineFill(rectangle)

	// the bottom row lies on the half-open end of both side edges
	var want []vec.Vec2
	for y := range 3 {
		for x := range 5 {
			want = append(want, vec.Vec2{X: float64(x), Y: float64(y)})
		}
	}
	if !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestScanlineFillOrder(t *testing.T) {
	got := ScanlineFill(upTriangle)
	if len(got) == 0 {
		t.Fatal("no points")
	}
	for i := 1; i < len(got); i++ {
		a, b := got[i-1], got[i]
		if b.Y < a.Y || (b.Y == a.Y && b.X <= a.X) {
			t.Errorf("points %v and %v are out of order", a, b)
		}
	}
	if again := ScanlineFill(upTriangle); !slices.Equal(got, again) {
		t.Error("repeated fill gave a different result")
	}
}

func TestScanlineFillStar(t *testing.T) {
	set := pointSet(ScanlineFill(star))
	// the pentagon in the centre is a hole under the even-odd rule
	if set[vec.Vec2{X: 32, Y: 32}] {
		t.Error("centre of the star is filled")
	}
	if !set[vec.Vec2{X: 32, Y: 12}] {
		t.Error("top spike of the star is not filled")
	}
}

func TestScanlineWithPointTestFill(t *testing.T) {
	for _, polygon := range [][]vec.Vec2{rectangle, upTriangle, downTriangle, star} {
		want := ScanlineFill(polygon)
		got := ScanlineWithPointTestFill(polygon)
		if !slices.Equal(got, want) {
			t.Errorf("%v: results differ", polygon)
		}
	}
}

func TestFloodFillRectangle(t *testing.T) {
	got := pointSet(FloodFill(rectangle))
	if len(got) != 12 {
		t.Fatalf("got %d points, want 12", len(got))
	}
	for x := range 4 {
		for y := range 3 {
			if !got[vec.Vec2{X: float64(x), Y: float64(y)}] {
				t.Errorf("(%d, %d) missing", x, y)
			}
		}
	}
}

func TestFloodFillTriangle(t *testing.T) {
	flood := FloodFill(downTriangle)
	if len(flood) == 0 {
		t.Fatal("no points")
	}
	if n := len(pointSet(flood)); n != len(flood) {
		t.Errorf("%d duplicate points", len(flood)-n)
	}
	scan := pointSet(ScanlineFill(downTriangle))
	for _, p := range flood {
		if !scan[p] {
			t.Errorf("flood fill point %v not found by scanline fill", p)
		}
		if !InsidePolygon(p.X, p.Y, downTriangle) {
			t.Errorf("point %v is not inside", p)
		}
	}
}

func TestFloodFillBoundarySeeds(t *testing.T) {
	// all vertices lie on excluded edges, so no seed is accepted
	if got := FloodFill(upTriangle); len(got) != 0 {
		t.Errorf("got %d points, want 0", len(got))
	}
	if got := FloodFill(nil); got != nil {
		t.Errorf("empty polygon: got %v", got)
	}
}

func TestGridFloodCells(t *testing.T) {
	clip := rect.Rect{URx: 64, URy: 64}
	cells := GridFloodCells(upTriangle, clip, 8)

	if n := len(pointSet(cells)); n != len(cells) {
		t.Errorf("%d cells were painted twice", len(cells)-n)
	}
	if len(cells) != 81 {
		t.Errorf("got %d cells, want 81", len(cells))
	}
	for _, c := range cells {
		if math.Mod(c.X+8, 8) != 4 || math.Mod(c.Y+8, 8) != 4 {
			t.Errorf("%v is not a cell centre", c)
		}
		if c.X < -4 || c.X > 60 || c.Y < -4 || c.Y > 60 {
			t.Errorf("cell %v far outside the clip rectangle", c)
		}
	}

	// without a clip rectangle the walk stays near the polygon
	cells = GridFloodCells(upTriangle, rect.Rect{}, 8)
	if len(cells) != 72 {
		t.Errorf("got %d cells, want 72", len(cells))
	}
}

func TestGridFloodCellsDefaultSize(t *testing.T) {
	cells := GridFloodCells(pts(12, 12, 28, 12, 20, 28), rect.Rect{}, 0)
	for _, c := range cells {
		if math.Mod(c.X+100, 10) != 5 || math.Mod(c.Y+100, 10) != 5 {
			t.Errorf("%v is not a centre of a 10×10 cell", c)
		}
	}
}

func TestScanlineFloodFill(t *testing.T) {
	want := ScanlineFill(upTriangle)
	got := ScanlineFloodFill(upTriangle, rect.Rect{URx: 64, URy: 64}, 8)
	if !slices.Equal(got, want) {
		t.Error("result differs from ScanlineFill")
	}
	if got := ScanlineFloodFill(nil, rect.Rect{}, 0); got != nil {
		t.Errorf("empty polygon: got %v", got)
	}
}

func TestFillEmpty(t *testing.T) {
	if got := ScanlineFill(nil); got != nil {
		t.Errorf("ScanlineFill: got %v", got)
	}
	if got := ScanlineWithPointTestFill(nil); got != nil {
		t.Errorf("ScanlineWithPointTestFill: got %v", got)
	}
	if got := GridFloodCells(nil, rect.Rect{}, 4); got != nil {
		t.Errorf("GridFloodCells: got %v", got)
	}
}
