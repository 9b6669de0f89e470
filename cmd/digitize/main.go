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

// Command digitize draws the shapes listed in a YAML scene file and
// writes the result as a PNG image and, optionally, as a PDF file.
//
// Usage:
//
//	digitize [-o out.png] [-pdf out.pdf] [-v] scene.yaml
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"seehuhn.de/go/digitize"
)

func main() {
	out := flag.String("o", "out.png", "output PNG file")
	pdfOut := flag.String("pdf", "", "optional output PDF file")
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] scene.yaml\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	digitize.SetLogger(logger)

	if err := run(flag.Arg(0), *out, *pdfOut, logger); err != nil {
		logger.Error("digitize failed", slog.Any("err", err))
		os.Exit(1)
	}
}

func run(sceneFile, pngFile, pdfFile string, logger *slog.Logger) error {
	scene, err := LoadScene(sceneFile)
	if err != nil {
		return fmt.Errorf("loading %s: %w", sceneFile, err)
	}
	cases, err := scene.TestCases()
	if err != nil {
		return err
	}

	c := digitize.NewCanvas(scene.Width, scene.Height, scene.Scale)
	c.Grid = scene.Grid
	for _, tc := range cases {
		if err := digitize.Render(c, tc); err != nil {
			return err
		}
		logger.Debug("rendered shape", slog.String("name", tc.Name))
	}

	if err := writePNG(c, pngFile); err != nil {
		return fmt.Errorf("writing %s: %w", pngFile, err)
	}
	logger.Info("wrote image", slog.String("file", pngFile), slog.Int("shapes", len(cases)))

	if pdfFile != "" {
		if err := c.WritePDF(pdfFile); err != nil {
			return fmt.Errorf("writing %s: %w", pdfFile, err)
		}
		logger.Info("wrote PDF", slog.String("file", pdfFile))
	}
	return nil
}

func writePNG(c *digitize.Canvas, fileName string) (err error) {
	f, err := os.Create(fileName)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return c.WritePNG(f)
}
