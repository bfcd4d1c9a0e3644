// SPDX-License-Identifier: MIT

package lattice

import (
	"fmt"

	"github.com/katalvlaran/quasicut/matrix"
)

// BruteForce scans every integer vector of the box [-box, box]^dim and keeps
// those with Q(n+v) ≤ c0·(1+eps), Q(y) = yᵀ·g·y. Vectors are returned in
// lexicographic order. It is the O((2·box+1)^dim · dim²) reference the
// enumerator is checked against; g need not be positive-definite.
func BruteForce(g matrix.Matrix, v []float64, c0, eps float64, box int) ([]Vector, error) {
	if err := matrix.ValidateSquare(g); err != nil {
		return nil, fmt.Errorf("BruteForce: %w", err)
	}
	dim := g.Rows()
	if len(v) != dim || dim == 0 || box < 0 {
		return nil, fmt.Errorf("BruteForce: dim=%d len(v)=%d box=%d: %w", dim, len(v), box, ErrDimensionMismatch)
	}
	bound := c0 * (1 + eps)

	var out []Vector
	n := make([]int, dim)
	y := make([]float64, dim)
	for i := range n {
		n[i] = -box
	}
	var i int
	for {
		for i = range n {
			y[i] = float64(n[i]) + v[i]
		}
		q, err := matrix.QuadForm(g, y)
		if err != nil {
			return nil, fmt.Errorf("BruteForce: %w", err)
		}
		if q <= bound {
			out = append(out, append(Vector(nil), n...))
		}
		// odometer, last coordinate fastest
		for i = dim - 1; i >= 0; i-- {
			if n[i] < box {
				n[i]++
				break
			}
			n[i] = -box
		}
		if i < 0 {
			return out, nil
		}
	}
}
