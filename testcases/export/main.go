// Command export writes the output of every test case to JSON, for
// inspection and for comparison with other implementations.
// Run from the module root directory.
package main

import (
	"encoding/json"
	"image"
	"maps"
	"os"
	"slices"

	"seehuhn.de/go/digitize"
	"seehuhn.de/go/digitize/testcases"
)

func main() {
	var out struct {
		TestCases []jsonTestCase `json:"testcases"`
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			jtc, err := toJSON(category, tc)
			if err != nil {
				panic(err)
			}
			out.TestCases = append(out.TestCases, jtc)
		}
	}

	if err := os.MkdirAll("testdata", 0755); err != nil {
		panic(err)
	}
	f, err := os.Create("testdata/testcases.json")
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}

type jsonTestCase struct {
	Name   string      `json:"name"`
	Op     string      `json:"op"`
	Width  int         `json:"width"`
	Height int         `json:"height"`
	Points [][]float64 `json:"points,omitempty"`
	Pixels []jsonPixel `json:"pixels,omitempty"`
}

type jsonPixel struct {
	X         int     `json:"x"`
	Y         int     `json:"y"`
	Intensity float64 `json:"intensity"`
}

func toJSON(category string, tc testcases.TestCase) (jsonTestCase, error) {
	bounds := image.Rect(0, 0, tc.Width, tc.Height)
	points, pixels, err := digitize.Trace(tc.Op, bounds)
	if err != nil {
		return jsonTestCase{}, err
	}

	jtc := jsonTestCase{
		Name:   category + "_" + tc.Name,
		Op:     opName(tc.Op),
		Width:  tc.Width,
		Height: tc.Height,
	}
	for _, p := range points {
		jtc.Points = append(jtc.Points, []float64{p.X, p.Y})
	}
	for _, px := range pixels {
		jtc.Pixels = append(jtc.Pixels, jsonPixel{X: px.X, Y: px.Y, Intensity: px.Intensity})
	}
	return jtc, nil
}

func opName(op testcases.Operation) string {
	switch op := op.(type) {
	case testcases.Line:
		return "line/" + op.Algorithm.String()
	case testcases.Chain:
		return "chain"
	case testcases.Circle:
		return "circle"
	case testcases.Ellipse:
		return "ellipse"
	case testcases.Parabola:
		return "parabola"
	case testcases.Hyperbola:
		return "hyperbola"
	case testcases.Hermite:
		return "hermite"
	case testcases.Bezier:
		return "bezier"
	case testcases.BSpline:
		return "bspline"
	case testcases.Hull:
		return "hull/" + op.Algorithm.String()
	case testcases.Fill:
		return "fill/" + op.Algorithm.String()
	default:
		return "unknown"
	}
}
