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

import "seehuhn.de/go/geom/vec"

var curveCases = []TestCase{
	{
		Name:   "hermite",
		Width:  64,
		Height: 64,
		Op: Hermite{
			P0: pt(6, 50), P1: pt(58, 50),
			M0: pt(40, -120), M1: pt(40, 120),
			Samples: 200,
		},
	},
	{
		Name:   "bezier_arch",
		Width:  64,
		Height: 64,
		Op: Bezier{
			P:       [4]vec.Vec2{pt(6, 58), pt(14, 2), pt(50, 2), pt(58, 58)},
			Samples: 200,
		},
	},
	{
		Name:   "bezier_s",
		Width:  64,
		Height: 64,
		Op: Bezier{
			P:       [4]vec.Vec2{pt(6, 32), pt(30, -10), pt(34, 74), pt(58, 32)},
			Samples: 200,
		},
	},
	{
		Name:   "bspline_quadratic",
		Width:  64,
		Height: 64,
		Op: BSpline{
			Control: []vec.Vec2{pt(4, 60), pt(12, 4), pt(32, 40), pt(52, 4), pt(60, 60)},
			Degree:  2,
			Samples: 200,
		},
	},
	{
		Name:   "bspline_cubic",
		Width:  64,
		Height: 64,
		Op: BSpline{
			Control: []vec.Vec2{pt(4, 60), pt(12, 4), pt(32, 40), pt(52, 4), pt(60, 60)},
			Degree:  3,
			Samples: 200,
		},
	},
}
