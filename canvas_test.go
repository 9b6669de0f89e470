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
	"bytes"
	"image"
	"image/png"
	"testing"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/digitize/testcases"
)

func TestCanvasPlot(t *testing.T) {
	c := NewCanvas(10, 8, 1)
	c.Plot(pts(1, 1, 2.6, 3.4, -1, 0, 10, 8))

	if c.At(1, 1) != 1 || c.At(3, 3) != 1 {
		t.Error("plotted cells are not covered")
	}
	covered := 0
	for y := range 8 {
		for x := range 10 {
			if c.At(x, y) > 0 {
				covered++
			}
		}
	}
	if covered != 2 {
		t.Errorf("%d cells covered, want 2", covered)
	}
	if c.At(-1, 0) != 0 || c.At(100, 100) != 0 {
		t.Error("cells outside the canvas report coverage")
	}

	c.Clear()
	if c.At(1, 1) != 0 {
		t.Error("Clear did not reset the canvas")
	}
}

func TestCanvasPlotPixels(t *testing.T) {
	c := NewCanvas(4, 4, 1)

	// overlapping writes keep the largest intensity, in either order
	c.PlotPixels([]Pixel{{X: 1, Y: 1, Intensity: 0.25}, {X: 1, Y: 1, Intensity: 0.75}})
	c.PlotPixels([]Pixel{{X: 2, Y: 2, Intensity: 0.75}, {X: 2, Y: 2, Intensity: 0.25}})
	if c.At(1, 1) != c.At(2, 2) {
		t.Errorf("coverage depends on write order: %g vs %g", c.At(1, 1), c.At(2, 2))
	}
	if a := c.At(1, 1); a < 0.74 || a > 0.76 {
		t.Errorf("coverage %g, want 0.75", a)
	}

	c.PlotPixels([]Pixel{{X: 0, Y: 0, Intensity: 3}, {X: 3, Y: 0, Intensity: -1}})
	if c.At(0, 0) != 1 || c.At(3, 0) != 0 {
		t.Error("intensities are not clamped to [0, 1]")
	}
}

func TestCanvasCTM(t *testing.T) {
	c := NewCanvas(20, 20, 1)
	c.CTM = matrix.Identity.Translate(5, 7)
	c.Plot([]vec.Vec2{{X: 0, Y: 0}})
	c.PlotPixels([]Pixel{{X: 1, Y: 0, Intensity: 1}})
	if c.At(5, 7) != 1 || c.At(6, 7) != 1 {
		t.Error("CTM not applied")
	}
}

func TestCanvasImage(t *testing.T) {
	c := NewCanvas(3, 2, 4)
	c.Plot(pts(1, 0))

	img := c.Image()
	if got := img.Bounds(); got != image.Rect(0, 0, 12, 8) {
		t.Fatalf("image bounds %v", got)
	}
	// every pixel of the scaled cell is covered
	for y := range 4 {
		for x := 4; x < 8; x++ {
			if a := img.AlphaAt(x, y).A; a != 255 {
				t.Errorf("pixel (%d, %d) has alpha %d", x, y, a)
			}
		}
	}
	if a := img.AlphaAt(1, 1).A; a != 0 {
		t.Errorf("empty cell has alpha %d", a)
	}

	c.Grid = true
	img = c.Image()
	if a := img.AlphaAt(0, 1).A; a != gridAlpha {
		t.Errorf("grid line has alpha %d, want %d", a, gridAlpha)
	}
	if a := img.AlphaAt(4, 0).A; a != 255 {
		t.Errorf("grid line drawn over covered cell: alpha %d", a)
	}
	if a := img.AlphaAt(1, 1).A; a != 0 {
		t.Errorf("cell interior has alpha %d", a)
	}
}

func TestCanvasWritePNG(t *testing.T) {
	c := NewCanvas(5, 5, 2)
	c.Plot(pts(2, 2))

	var buf bytes.Buffer
	if err := c.WritePNG(&buf); err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if img.Bounds().Dx() != 10 || img.Bounds().Dy() != 10 {
		t.Errorf("decoded image has size %v", img.Bounds())
	}
}

func TestRenderAll(t *testing.T) {
	for category, cases := range testcases.All {
		for _, tc := range cases {
			t.Run(category+"_"+tc.Name, func(t *testing.T) {
				c := NewCanvas(tc.Width, tc.Height, 1)
				if err := Render(c, tc); err != nil {
					t.Fatal(err)
				}
				empty := true
				for y := range tc.Height {
					for x := range tc.Width {
						if c.At(x, y) > 0 {
							empty = false
						}
					}
				}
				if empty {
					t.Error("nothing was drawn")
				}
			})
		}
	}
}

func TestTraceUnsupported(t *testing.T) {
	_, _, err := Trace(nil, image.Rect(0, 0, 10, 10))
	if err == nil {
		t.Error("expected an error for a nil operation")
	}
	_, _, err = Trace(testcases.BSpline{Control: pts(0, 0, 1, 1), Degree: 3}, image.Rect(0, 0, 10, 10))
	if err == nil {
		t.Error("expected an error for an invalid degree")
	}
}
