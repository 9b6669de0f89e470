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
	"image/png"
	"io"
	"math"

	xdraw "golang.org/x/image/draw"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics/color"
)

// gridAlpha is the coverage value used for grid lines in empty cells.
const gridAlpha = 48

// Canvas is a grid of cells which records the coverage of plotted
// points. It can be exported as an image, where every cell becomes a
// Scale×Scale block of pixels, or as a PDF file.
//
// The zero value is not usable; use [NewCanvas].
type Canvas struct {
	// CTM maps point coordinates to cell coordinates.
	CTM matrix.Matrix

	// Scale is the size of one cell in output pixels. Must be positive.
	Scale int

	// Grid enables grid lines between cells in the output of Image.
	// Grid lines are only drawn if Scale is at least 3.
	Grid bool

	cells *image.Alpha
}

// NewCanvas returns an empty canvas with width×height cells, the
// identity CTM, and the given scale.
func NewCanvas(width, height, scale int) *Canvas {
	return &Canvas{
		CTM:   matrix.Identity,
		Scale: max(scale, 1),
		cells: image.NewAlpha(image.Rect(0, 0, width, height)),
	}
}

// Bounds returns the cell rectangle of the canvas.
func (c *Canvas) Bounds() image.Rectangle {
	return c.cells.Rect
}

// Clear resets all cells to zero coverage.
func (c *Canvas) Clear() {
	clear(c.cells.Pix)
}

// Plot marks the cells under the given points as fully covered.
// Points are rounded to the nearest cell; points outside the canvas are
// ignored.
func (c *Canvas) Plot(points []vec.Vec2) {
	for _, p := range points {
		x, y := c.cellOf(p)
		c.paint(x, y, 1)
	}
}

// PlotPixels adds anti-aliased pixels to the canvas.
// The CTM translation is applied, so that pixels line up with points
// passed to Plot. Where several pixels hit the same cell, the largest
// intensity wins, independent of the order of the writes.
func (c *Canvas) PlotPixels(pixels []Pixel) {
	for _, px := range pixels {
		x, y := c.cellOf(vec.Vec2{X: float64(px.X), Y: float64(px.Y)})
		c.paint(x, y, px.Intensity)
	}
}

// At returns the coverage of cell (x, y), in the range [0, 1].
func (c *Canvas) At(x, y int) float64 {
	if !(image.Point{X: x, Y: y}).In(c.cells.Rect) {
		return 0
	}
	return float64(c.cells.AlphaAt(x, y).A) / 255
}

func (c *Canvas) cellOf(p vec.Vec2) (int, int) {
	x := c.CTM[0]*p.X + c.CTM[2]*p.Y + c.CTM[4]
	y := c.CTM[1]*p.X + c.CTM[3]*p.Y + c.CTM[5]
	return int(roundHalfUp(x)), int(roundHalfUp(y))
}

func (c *Canvas) paint(x, y int, intensity float64) {
	if !(image.Point{X: x, Y: y}).In(c.cells.Rect) {
		return
	}
	a := uint8(math.Round(255 * max(0, min(1, intensity))))
	i := c.cells.PixOffset(x, y)
	c.cells.Pix[i] = max(c.cells.Pix[i], a)
}

// Image returns the canvas contents, with every cell scaled up to a
// block of Scale×Scale pixels.
func (c *Canvas) Image() *image.Alpha {
	s := c.Scale
	b := c.cells.Rect
	dst := image.NewAlpha(image.Rect(0, 0, b.Dx()*s, b.Dy()*s))
	xdraw.NearestNeighbor.Scale(dst, dst.Rect, c.cells, b, xdraw.Src, nil)

	if c.Grid && s >= 3 {
		for y := range dst.Rect.Dy() {
			for x := range dst.Rect.Dx() {
				if x%s != 0 && y%s != 0 {
					continue
				}
				i := dst.PixOffset(x, y)
				if dst.Pix[i] == 0 {
					dst.Pix[i] = gridAlpha
				}
			}
		}
	}
	return dst
}

// WritePNG writes the scaled canvas image to w in PNG format.
func (c *Canvas) WritePNG(w io.Writer) error {
	return png.Encode(w, c.Image())
}

// WritePDF writes the canvas to a single page PDF file. Each covered
// cell becomes a square, drawn black for full coverage and in lighter
// shades of gray for partial coverage.
func (c *Canvas) WritePDF(fileName string) error {
	b := c.cells.Rect
	s := float64(c.Scale)
	w := float64(b.Dx()) * s
	h := float64(b.Dy()) * s

	page, err := document.CreateSinglePage(fileName, &pdf.Rectangle{URx: w, URy: h}, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	// PDF has the origin at the bottom left, the canvas at the top left.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, h})

	// one path per coverage level keeps the number of colour changes low
	var levels [256][]image.Point
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if a := c.cells.AlphaAt(x, y).A; a > 0 {
				levels[a] = append(levels[a], image.Point{X: x, Y: y})
			}
		}
	}
	for a, cells := range levels {
		if len(cells) == 0 {
			continue
		}
		page.SetFillColor(color.DeviceGray(1 - float64(a)/255))
		for _, p := range cells {
			page.Rectangle(float64(p.X-b.Min.X)*s, float64(p.Y-b.Min.Y)*s, s, s)
		}
		page.Fill()
	}

	return page.Close()
}
