// SPDX-License-Identifier: MIT

package structure

import (
	"math"

	"github.com/jbeda/geom"
	"gonum.org/v1/gonum/floats"
)

// MinSeparation returns the smallest distance between two atoms, or +Inf
// for fewer than two atoms. O(N²).
func MinSeparation(atoms []Atom) float64 {
	best := math.Inf(1)
	var i, j int
	for i = 0; i < len(atoms); i++ {
		for j = i + 1; j < len(atoms); j++ {
			if d := floats.Distance(atoms[i].Position, atoms[j].Position, 2); d < best {
				best = d
			}
		}
	}

	return best
}

// Extent2D returns the bounding rectangle of the first two coordinates of
// the atom positions (a missing second coordinate counts as 0).
// ok is false when atoms is empty.
func Extent2D(atoms []Atom) (r geom.Rect, ok bool) {
	if len(atoms) == 0 {
		return geom.Rect{}, false
	}
	c := coord(atoms[0])
	r = geom.Rect{Min: c, Max: c}
	for _, a := range atoms[1:] {
		r.ExpandToContainCoord(coord(a))
	}

	return r, true
}

func coord(a Atom) geom.Coord {
	var c geom.Coord
	if len(a.Position) > 0 {
		c.X = a.Position[0]
	}
	if len(a.Position) > 1 {
		c.Y = a.Position[1]
	}

	return c
}

// Spacings returns the gaps between neighbouring atoms of a
// one-dimensional structure, in position order (first coordinate only).
func Spacings(atoms []Atom) []float64 {
	if len(atoms) < 2 {
		return nil
	}
	xs := make([]float64, len(atoms))
	for i, a := range atoms {
		xs[i] = a.Position[0]
	}
	floats.Argsort(xs, make([]int, len(xs)))
	out := make([]float64, len(xs)-1)
	for i := 1; i < len(xs); i++ {
		out[i-1] = xs[i] - xs[i-1]
	}

	return out
}
