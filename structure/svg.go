// SPDX-License-Identifier: MIT

package structure

import (
	"bufio"
	"fmt"
	"html"
	"io"
	"math"

	"github.com/jbeda/geom"
)

// SVGOptions controls WriteSVG.
//   - Radius: circle radius of an atom.
//   - Bond: atoms whose distance is within BondTolerance of Bond are joined by
//     a line; zero draws no lines.
type SVGOptions struct {
	Radius        float64
	Bond          float64
	BondTolerance float64
	Margin        float64
}

// DefaultSVGOptions draws unit-length bonds, which outlines the tiles of
// unit-edge tilings.
func DefaultSVGOptions() SVGOptions {
	return SVGOptions{Radius: 0.08, Bond: 1, BondTolerance: 1e-6, Margin: 0.5}
}

// svgWriter is a minimal SVG serializer.
type svgWriter struct {
	w   *bufio.Writer
	err error
}

func (s *svgWriter) printf(format string, a ...any) {
	if s.err != nil {
		return
	}
	_, s.err = fmt.Fprintf(s.w, format, a...)
}

// WriteSVG draws the first two coordinates of the atoms. Bond search is O(N²).
func WriteSVG(w io.Writer, atoms []Atom, o SVGOptions) error {
	view, ok := Extent2D(atoms)
	if !ok {
		view = geom.Rect{}
	}
	view.Min = view.Min.Minus(geom.Coord{X: o.Margin, Y: o.Margin})
	view.Max = view.Max.Plus(geom.Coord{X: o.Margin, Y: o.Margin})

	s := &svgWriter{w: bufio.NewWriter(w)}
	s.printf(`<?xml version="1.0"?>
<svg version="1.1" viewBox="%f %f %f %f" xmlns="http://www.w3.org/2000/svg">
`, view.Min.X, view.Min.Y, view.Width(), view.Height())

	if o.Bond > 0 {
		s.printf("<g style='stroke: black; stroke-width: %f; stroke-linecap: round'>\n", o.Radius/4)
		var i, j int
		var a, b geom.Coord
		for i = 0; i < len(atoms); i++ {
			a = coord(atoms[i])
			for j = i + 1; j < len(atoms); j++ {
				b = coord(atoms[j])
				if math.Abs(a.DistanceFrom(b)-o.Bond) <= o.BondTolerance {
					s.printf("<line x1='%f' y1='%f' x2='%f' y2='%f'/>\n", a.X, a.Y, b.X, b.Y)
				}
			}
		}
		s.printf("</g>\n")
	}
	for _, a := range atoms {
		c := coord(a)
		s.printf("<circle cx='%f' cy='%f' r='%f'><title>%s</title></circle>\n", c.X, c.Y, o.Radius, html.EscapeString(a.Label))
	}
	s.printf("</svg>\n")
	if s.err != nil {
		return s.err
	}

	return s.w.Flush()
}
