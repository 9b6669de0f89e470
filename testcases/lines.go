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

var lineCases = []TestCase{
	{
		Name:   "dda_shallow",
		Width:  32,
		Height: 32,
		Op:     Line{Algorithm: Incremental, From: pt(2, 4), To: pt(29, 15)},
	},
	{
		Name:   "dda_steep",
		Width:  32,
		Height: 32,
		Op:     Line{Algorithm: Incremental, From: pt(5, 30), To: pt(12, 1)},
	},
	{
		Name:   "bresenham_shallow",
		Width:  32,
		Height: 32,
		Op:     Line{Algorithm: ErrorAccumulator, From: pt(2, 4), To: pt(29, 15)},
	},
	{
		Name:   "bresenham_reverse",
		Width:  32,
		Height: 32,
		Op:     Line{Algorithm: ErrorAccumulator, From: pt(29, 15), To: pt(2, 4)},
	},
	{
		Name:   "bresenham_diagonal",
		Width:  32,
		Height: 32,
		Op:     Line{Algorithm: ErrorAccumulator, From: pt(1, 30), To: pt(30, 1)},
	},
	{
		Name:   "wu_shallow",
		Width:  32,
		Height: 32,
		Op:     Line{Algorithm: AntiAliased, From: pt(2, 4), To: pt(29, 15)},
	},
	{
		Name:   "wu_subpixel",
		Width:  32,
		Height: 32,
		Op:     Line{Algorithm: AntiAliased, From: pt(3.3, 20.7), To: pt(28.6, 9.2)},
	},
	{
		Name:   "chain_zigzag",
		Width:  32,
		Height: 32,
		Op: Chain{Points: []vec.Vec2{
			pt(2, 28), pt(8, 4), pt(14, 28), pt(20, 4), pt(26, 28), pt(30, 16),
		}},
	},
}
