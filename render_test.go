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
	"image"
	"maps"
	"slices"
	"testing"

	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/digitize/testcases"
)

// TestTraceIdempotent runs every test case twice and checks that the
// output does not change.
func TestTraceIdempotent(t *testing.T) {
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			t.Run(category+"_"+tc.Name, func(t *testing.T) {
				bounds := image.Rect(0, 0, tc.Width, tc.Height)
				points1, pixels1, err := Trace(tc.Op, bounds)
				if err != nil {
					t.Fatal(err)
				}
				points2, pixels2, err := Trace(tc.Op, bounds)
				if err != nil {
					t.Fatal(err)
				}
				if !slices.Equal(points1, points2) {
					t.Error("points differ between runs")
				}
				if !slices.Equal(pixels1, pixels2) {
					t.Error("pixels differ between runs")
				}
			})
		}
	}
}

// TestCoverageFillerReuse checks that the buffers kept by a
// CoverageFiller do not leak from one fill into the next.
func TestCoverageFillerReuse(t *testing.T) {
	small := PolygonPath(pts(2, 2, 9, 3, 5, 8))
	large := PolygonPath(pts(1, 1, 60, 4, 50, 55, 3, 40))

	f := NewCoverageFiller(rect.Rect{URx: 64, URy: 64})
	first := f.FillEvenOdd(small)
	f.FillNonZero(large)
	f.FillEvenOdd(large)
	again := f.FillEvenOdd(small)

	fresh := NewCoverageFiller(rect.Rect{URx: 64, URy: 64}).FillEvenOdd(small)
	if !slices.Equal(first, again) {
		t.Error("reused filler gives a different result")
	}
	if !slices.Equal(first, fresh) {
		t.Error("reused filler differs from a new one")
	}
	if len(first) == 0 {
		t.Error("no pixels")
	}
}
