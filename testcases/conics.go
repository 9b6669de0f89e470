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

package testcases

var conicCases = []TestCase{
	{
		Name:   "circle_small",
		Width:  32,
		Height: 32,
		Op:     Circle{Center: pt(16, 16), Radius: 5},
	},
	{
		Name:   "circle_large",
		Width:  64,
		Height: 64,
		Op:     Circle{Center: pt(32, 32), Radius: 28},
	},
	{
		Name:   "ellipse_wide",
		Width:  64,
		Height: 32,
		Op:     Ellipse{Center: pt(32, 16), RX: 28, RY: 12},
	},
	{
		Name:   "ellipse_tall",
		Width:  32,
		Height: 64,
		Op:     Ellipse{Center: pt(16, 32), RX: 10, RY: 27},
	},
	{
		Name:   "parabola",
		Width:  64,
		Height: 64,
		Op:     Parabola{Vertex: pt(32, 60), Width: 5, Density: 6},
	},
	{
		Name:   "hyperbola",
		Width:  64,
		Height: 64,
		Op:     Hyperbola{Vertex: pt(32, 32), Major: 10, Minor: 6},
	},
}
