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

// scattered is a fixed point cloud with interior points, hull points
// and one collinear point on the hull boundary.
var scattered = []vec.Vec2{
	pt(10, 20), pt(25, 5), pt(40, 12), pt(55, 8), pt(58, 30),
	pt(50, 55), pt(30, 58), pt(12, 48), pt(5, 33), pt(30, 30),
	pt(20, 35), pt(44, 40), pt(35, 18), pt(15, 25), pt(48, 24),
}

var hullCases = []TestCase{
	{
		Name:   "gift_wrap_scattered",
		Width:  64,
		Height: 64,
		Op:     Hull{Algorithm: GiftWrap, Points: scattered},
	},
	{
		Name:   "march_scattered",
		Width:  64,
		Height: 64,
		Op:     Hull{Algorithm: March, Points: scattered},
	},
	{
		Name:   "gift_wrap_triangle",
		Width:  32,
		Height: 32,
		Op:     Hull{Algorithm: GiftWrap, Points: []vec.Vec2{pt(4, 28), pt(16, 3), pt(28, 28), pt(16, 20)}},
	},
}

// Scattered returns a copy of the point cloud used by the hull test cases.
func Scattered() []vec.Vec2 {
	return append([]vec.Vec2(nil), scattered...)
}
