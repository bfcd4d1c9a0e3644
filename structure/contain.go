// SPDX-License-Identifier: MIT

package structure

import (
	"fmt"

	"github.com/katalvlaran/quasicut/matrix"
	"github.com/katalvlaran/quasicut/model"
)

// fragment is the barycentric form of a simplex v0..vd: for a point x,
// λ_{1..d} = T⁻¹·(x − v0) with T = [v1−v0 ... vd−v0] and λ_0 = 1 − Σλ.
// λ_i ≥ 0 is the half-space of the facet opposite vertex i.
type fragment struct {
	origin []float64
	inv    [][]float64
}

func newFragment(s model.Simplex) (fragment, error) {
	d := len(s) - 1
	f := fragment{origin: append([]float64(nil), s[0]...)}
	if d == 0 {
		return f, nil
	}
	rows := make([][]float64, d)
	var r, c int
	for r = 0; r < d; r++ {
		rows[r] = make([]float64, d)
		for c = 0; c < d; c++ {
			rows[r][c] = s[c+1][r] - s[0][r]
		}
	}
	t, err := matrix.NewFromRows(rows)
	if err != nil {
		return fragment{}, err
	}
	inv, err := matrix.Inverse(t)
	if err != nil {
		return fragment{}, fmt.Errorf("%w: %w", ErrDegenerateFragment, err)
	}
	f.inv = inv.ToRows()

	return f, nil
}

// contains reports whether x passes every facet test within tol.
func (f fragment) contains(x []float64, tol float64) bool {
	d := len(f.origin)
	var i, j int
	var lambda, sum float64
	for i = 0; i < d; i++ {
		lambda = 0
		for j = 0; j < d; j++ {
			lambda += f.inv[i][j] * (x[j] - f.origin[j])
		}
		if lambda < -tol {
			return false
		}
		sum += lambda
	}

	return 1-sum >= -tol
}

// Contains reports whether point x lies inside or on the simplex s,
// within the barycentric tolerance tol.
//
// Errors: ErrDegenerateFragment for a flat simplex.
func Contains(s model.Simplex, x []float64, tol float64) (bool, error) {
	if len(s) == 0 || len(x) != len(s)-1 {
		return false, fmt.Errorf("Contains: %d vertices for a %d-dimensional point: %w",
			len(s), len(x), model.ErrDimensionMismatch)
	}
	f, err := newFragment(s)
	if err != nil {
		return false, fmt.Errorf("Contains: %w", err)
	}

	return f.contains(x, tol), nil
}
