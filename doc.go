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

// Package digitize converts continuous 2D primitives into grid-aligned
// point sets suitable for pixel-level display.
//
// The package covers exact and anti-aliased line drawing, sampling of
// conics and parametric curves, convex hulls built by gift wrapping, and
// several ways of filling polygon interiors. All functions are pure: they
// read their arguments, never modify them, and return a fresh slice of
// points whose order is fully determined by the algorithm.
//
// Points are represented by [vec.Vec2]. Exact rasterizers emit
// integer-valued coordinates, curve samplers emit real coordinates and
// leave rounding to the consumer. Anti-aliased output uses [Pixel], which
// carries a coverage value in addition to the integer position.
//
// A [Canvas] is provided as a reference consumer which turns point
// sequences into images and PDF files.
package digitize

//go:generate go run ./testcases/export
//go:generate go run ./testcases/genpdf
