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

package main

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/digitize/testcases"
)

// Scene is the YAML description of a drawing.
//
//	width: 80
//	height: 60
//	scale: 10
//	grid: true
//	shapes:
//	  - kind: line
//	    algorithm: bresenham
//	    points: [[2, 3], [70, 40]]
//	  - kind: circle
//	    center: [40, 30]
//	    radius: 12
type Scene struct {
	Width  int     `yaml:"width"`
	Height int     `yaml:"height"`
	Scale  int     `yaml:"scale"`
	Grid   bool    `yaml:"grid"`
	Shapes []Shape `yaml:"shapes"`
}

// Shape describes one primitive. Which fields are used depends on Kind.
type Shape struct {
	Name      string      `yaml:"name"`
	Kind      string      `yaml:"kind"`
	Algorithm string      `yaml:"algorithm"`
	Points    [][]float64 `yaml:"points"`
	Center    []float64   `yaml:"center"`
	Radius    float64     `yaml:"radius"`
	RX        float64     `yaml:"rx"`
	RY        float64     `yaml:"ry"`
	Width     float64     `yaml:"width"`
	Density   float64     `yaml:"density"`
	Major     float64     `yaml:"major"`
	Minor     float64     `yaml:"minor"`
	Degree    int         `yaml:"degree"`
	Samples   int         `yaml:"samples"`
	CellSize  int         `yaml:"cell_size"`
}

// Defaults returns the scene settings used for fields missing from the
// scene file.
func Defaults() Scene {
	return Scene{Width: 80, Height: 60, Scale: 10, Grid: true}
}

var errNoShapes = errors.New("scene contains no shapes")

// LoadScene reads a scene file. Values missing from the file are taken
// from Defaults.
func LoadScene(fileName string) (*Scene, error) {
	data, err := os.ReadFile(fileName)
	if err != nil {
		return nil, err
	}
	return ParseScene(data)
}

// ParseScene decodes a YAML scene description.
func ParseScene(data []byte) (*Scene, error) {
	s := Defaults()
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("decoding scene: %w", err)
	}
	if s.Width <= 0 || s.Height <= 0 {
		return nil, fmt.Errorf("invalid canvas size %dx%d", s.Width, s.Height)
	}
	if s.Scale <= 0 {
		return nil, fmt.Errorf("invalid scale %d", s.Scale)
	}
	if len(s.Shapes) == 0 {
		return nil, errNoShapes
	}
	return &s, nil
}

// TestCases converts the scene shapes into drawable test cases.
func (s *Scene) TestCases() ([]testcases.TestCase, error) {
	res := make([]testcases.TestCase, 0, len(s.Shapes))
	for i, sh := range s.Shapes {
		op, err := sh.Operation()
		if err != nil {
			return nil, fmt.Errorf("shape %d (%s): %w", i, sh.Kind, err)
		}
		name := sh.Name
		if name == "" {
			name = fmt.Sprintf("%s_%d", sh.Kind, i)
		}
		res = append(res, testcases.TestCase{
			Name:   name,
			Width:  s.Width,
			Height: s.Height,
			Op:     op,
		})
	}
	return res, nil
}

// Operation returns the drawing operation described by the shape.
func (sh *Shape) Operation() (testcases.Operation, error) {
	points, err := sh.vecs()
	if err != nil {
		return nil, err
	}
	switch sh.Kind {
	case "line":
		if len(points) != 2 {
			return nil, fmt.Errorf("line needs 2 points, got %d", len(points))
		}
		var alg testcases.LineAlgorithm
		switch sh.Algorithm {
		case "", "dda", "incremental":
			alg = testcases.Incremental
		case "bresenham", "error_accumulator":
			alg = testcases.ErrorAccumulator
		case "wu", "anti_aliased":
			alg = testcases.AntiAliased
		default:
			return nil, fmt.Errorf("unknown line algorithm %q", sh.Algorithm)
		}
		return testcases.Line{Algorithm: alg, From: points[0], To: points[1]}, nil

	case "chain":
		return testcases.Chain{Points: points}, nil

	case "circle":
		c, err := sh.center()
		if err != nil {
			return nil, err
		}
		return testcases.Circle{Center: c, Radius: sh.Radius}, nil

	case "ellipse":
		c, err := sh.center()
		if err != nil {
			return nil, err
		}
		return testcases.Ellipse{Center: c, RX: sh.RX, RY: sh.RY}, nil

	case "parabola":
		c, err := sh.center()
		if err != nil {
			return nil, err
		}
		return testcases.Parabola{Vertex: c, Width: sh.Width, Density: sh.Density}, nil

	case "hyperbola":
		c, err := sh.center()
		if err != nil {
			return nil, err
		}
		return testcases.Hyperbola{Vertex: c, Major: sh.Major, Minor: sh.Minor}, nil

	case "hermite":
		if len(points) != 4 {
			return nil, fmt.Errorf("hermite needs p0, p1, m0, m1, got %d points", len(points))
		}
		return testcases.Hermite{
			P0: points[0], P1: points[1],
			M0: points[2], M1: points[3],
			Samples: sh.Samples,
		}, nil

	case "bezier":
		if len(points) != 4 {
			return nil, fmt.Errorf("bezier needs 4 control points, got %d", len(points))
		}
		return testcases.Bezier{P: [4]vec.Vec2(points), Samples: sh.Samples}, nil

	case "bspline":
		return testcases.BSpline{Control: points, Degree: sh.Degree, Samples: sh.Samples}, nil

	case "hull":
		var alg testcases.HullAlgorithm
		switch sh.Algorithm {
		case "", "gift_wrap":
			alg = testcases.GiftWrap
		case "march":
			alg = testcases.March
		default:
			return nil, fmt.Errorf("unknown hull algorithm %q", sh.Algorithm)
		}
		return testcases.Hull{Algorithm: alg, Points: points}, nil

	case "fill":
		var alg testcases.FillAlgorithm
		switch sh.Algorithm {
		case "", "scanline":
			alg = testcases.Scanline
		case "point_test":
			alg = testcases.ScanlineWithPointTest
		case "flood":
			alg = testcases.Flood
		case "grid_flood":
			alg = testcases.GridFlood
		case "coverage":
			alg = testcases.Coverage
		default:
			return nil, fmt.Errorf("unknown fill algorithm %q", sh.Algorithm)
		}
		return testcases.Fill{Algorithm: alg, Polygon: points, CellSize: sh.CellSize}, nil

	default:
		return nil, fmt.Errorf("unknown shape kind %q", sh.Kind)
	}
}

func (sh *Shape) vecs() ([]vec.Vec2, error) {
	res := make([]vec.Vec2, 0, len(sh.Points))
	for i, p := range sh.Points {
		if len(p) != 2 {
			return nil, fmt.Errorf("point %d: expected [x, y], got %d values", i, len(p))
		}
		res = append(res, vec.Vec2{X: p[0], Y: p[1]})
	}
	return res, nil
}

func (sh *Shape) center() (vec.Vec2, error) {
	if len(sh.Center) != 2 {
		return vec.Vec2{}, fmt.Errorf("center: expected [x, y], got %d values", len(sh.Center))
	}
	return vec.Vec2{X: sh.Center[0], Y: sh.Center[1]}, nil
}
