// SPDX-License-Identifier: MIT

package matrix

import (
	"gonum.org/v1/gonum/mat"
)

// IsPositiveDefinite reports whether the symmetric matrix m is positive-definite.
// MAIN DESCRIPTION:
//   - Symmetry is validated within the configured epsilon, then the symmetric
//     part is handed to a Cholesky factorization; success means positive-definite.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrAsymmetry (validation).
//
// Complexity:
//   - Time O(n³), Space O(n²).
//
// AI-Hints:
//   - Use before strict quadratic-form reduction to fail fast on flat or
//     unbounded cutoff windows.
func IsPositiveDefinite(m Matrix, opts ...Option) (bool, error) {
	o := gatherOptions(opts...)
	if err := ValidateSymmetric(m, o.eps); err != nil {
		return false, matrixErrorf(opPD, err)
	}
	d, err := asDense(m)
	if err != nil {
		return false, matrixErrorf(opPD, err)
	}
	if d.r == 0 {
		return false, matrixErrorf(opPD, ErrInvalidDimensions)
	}

	n := d.r
	sym := mat.NewSymDense(n, nil)
	var i, j int
	for i = 0; i < n; i++ {
		for j = i; j < n; j++ {
			sym.SetSym(i, j, 0.5*(d.data[i*n+j]+d.data[j*n+i]))
		}
	}
	var chol mat.Cholesky

	return chol.Factorize(sym), nil
}

// RequirePositiveDefinite is IsPositiveDefinite turned into an error:
// it returns ErrNotPositiveDefinite when the factorization fails.
func RequirePositiveDefinite(m Matrix, opts ...Option) error {
	ok, err := IsPositiveDefinite(m, opts...)
	if err != nil {
		return err
	}
	if !ok {
		return matrixErrorf(opPD, ErrNotPositiveDefinite)
	}

	return nil
}
