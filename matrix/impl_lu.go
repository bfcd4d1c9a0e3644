// SPDX-License-Identifier: MIT
// Package matrix: LU factorization with partial pivoting, solves and inverse.
//
// Purpose:
//   - Factor a square A as P·A = L·U once, then solve many right-hand sides.
//   - Detect numerically singular inputs through a relative pivot tolerance.
//
// Determinism:
//   - Pivot choice is the first row with the largest |a_ik| (ties keep the lower index).

package matrix

import (
	"fmt"
	"math"
)

// LUFactors holds a packed LU factorization with its row permutation.
// The strict lower triangle of lu stores L (unit diagonal implied);
// the upper triangle including the diagonal stores U.
// Row i of P·A is row piv[i] of A.
type LUFactors struct {
	n    int
	lu   []float64 // packed n×n factors, row-major
	piv  []int     // row permutation
	sign float64   // +1 or -1, parity of the permutation
}

// Factorize computes P·A = L·U with partial (row) pivoting.
// MAIN DESCRIPTION:
//   - Doolittle elimination in place on a copy of A, choosing the largest
//     remaining |a_ik| in column k as pivot.
//
// Implementation:
//   - Stage 1: ValidateSquare(m); copy into a packed buffer; compute scale = max|a_ij|.
//   - Stage 2: for k = 0..n-1: select pivot row, swap, check |pivot| > tol·scale,
//     eliminate rows below (storing multipliers in the lower triangle).
//
// Inputs:
//   - m: non-nil square matrix (n×n).
//   - opts: WithPivotTolerance to change the relative singularity threshold.
//
// Returns:
//   - *LUFactors reusable for Solve / Inverse / Det.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (validation).
//   - ErrSingular when a pivot falls at or below tol·scale (an all-zero matrix is singular).
//
// Complexity:
//   - Time O(n³), Space O(n²).
//
// AI-Hints:
//   - Factor once per block and reuse: SolveMatrix over k right-hand sides costs O(k·n²).
func Factorize(m Matrix, opts ...Option) (*LUFactors, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opFactorize, err)
	}
	o := gatherOptions(opts...)
	d, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opFactorize, err)
	}

	n := d.r
	f := &LUFactors{
		n:    n,
		lu:   make([]float64, n*n),
		piv:  make([]int, n),
		sign: 1,
	}
	copy(f.lu, d.data)

	var scale float64
	for _, v := range f.lu {
		if a := math.Abs(v); a > scale {
			scale = a
		}
	}
	threshold := o.pivotTol * scale

	var i, j, k, p int
	var best, a, pivot, mult float64
	for i = 0; i < n; i++ {
		f.piv[i] = i
	}
	for k = 0; k < n; k++ {
		// Stage 2a: pivot search in column k.
		p, best = k, math.Abs(f.lu[k*n+k])
		for i = k + 1; i < n; i++ {
			if a = math.Abs(f.lu[i*n+k]); a > best {
				p, best = i, a
			}
		}
		if best <= threshold || best == 0 {
			return nil, matrixErrorf(opFactorize, fmt.Errorf("pivot %d: %w", k, ErrSingular))
		}
		// Stage 2b: row swap.
		if p != k {
			for j = 0; j < n; j++ {
				f.lu[k*n+j], f.lu[p*n+j] = f.lu[p*n+j], f.lu[k*n+j]
			}
			f.piv[k], f.piv[p] = f.piv[p], f.piv[k]
			f.sign = -f.sign
		}
		// Stage 2c: eliminate below the pivot.
		pivot = f.lu[k*n+k]
		for i = k + 1; i < n; i++ {
			mult = f.lu[i*n+k] / pivot
			f.lu[i*n+k] = mult
			if mult == 0 {
				continue
			}
			for j = k + 1; j < n; j++ {
				f.lu[i*n+j] -= mult * f.lu[k*n+j]
			}
		}
	}

	return f, nil
}

// Size returns n for an n×n factorization.
func (f *LUFactors) Size() int { return f.n }

// Det returns det(A) = sign · Π U[i,i].
func (f *LUFactors) Det() float64 {
	det := f.sign
	for i := 0; i < f.n; i++ {
		det *= f.lu[i*f.n+i]
	}

	return det
}

// Solve returns x with A·x = b.
// Implementation:
//   - Stage 1: permute b by piv.
//   - Stage 2: forward substitution with unit L (top-down).
//   - Stage 3: backward substitution with U (bottom-up).
//
// Errors:
//   - ErrDimensionMismatch when len(b) != n.
//
// Complexity: Time O(n²), Space O(n).
func (f *LUFactors) Solve(b []float64) ([]float64, error) {
	if err := ValidateVecLen(b, f.n); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	x := make([]float64, f.n)
	f.solveInto(x, b)

	return x, nil
}

// solveInto writes A⁻¹·b into x; len(x) == len(b) == n is assumed.
func (f *LUFactors) solveInto(x, b []float64) {
	n := f.n
	var i, k, base int
	var sum float64
	for i = 0; i < n; i++ {
		x[i] = b[f.piv[i]]
	}
	for i = 0; i < n; i++ {
		sum = x[i]
		base = i * n
		for k = 0; k < i; k++ {
			sum -= f.lu[base+k] * x[k]
		}
		x[i] = sum
	}
	for i = n - 1; i >= 0; i-- {
		sum = x[i]
		base = i * n
		for k = i + 1; k < n; k++ {
			sum -= f.lu[base+k] * x[k]
		}
		x[i] = sum / f.lu[base+i]
	}
}

// SolveMatrix returns X with A·X = B, column by column.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch when B.Rows() != n.
//
// Complexity: Time O(k·n²) for k columns.
func (f *LUFactors) SolveMatrix(b Matrix) (*Dense, error) {
	db, err := asDense(b)
	if err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	if db.r != f.n {
		return nil, matrixErrorf(opSolve, ErrDimensionMismatch)
	}
	out, err := newDenseZeroOK(f.n, db.c)
	if err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	col := make([]float64, f.n)
	x := make([]float64, f.n)
	var i, j int
	for j = 0; j < db.c; j++ {
		for i = 0; i < f.n; i++ {
			col[i] = db.data[i*db.c+j]
		}
		f.solveInto(x, col)
		for i = 0; i < f.n; i++ {
			out.data[i*db.c+j] = x[i]
		}
	}

	return out, nil
}

// Inverse computes A⁻¹ through Factorize and n unit-vector solves.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrSingular.
//
// Complexity:
//   - Time O(n³), Space O(n²).
//
// Notes:
//   - If you only need A⁻¹·b, call Factorize once and Solve (cheaper than forming A⁻¹).
func Inverse(m Matrix, opts ...Option) (*Dense, error) {
	f, err := Factorize(m, opts...)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	id, err := NewIdentity(f.n)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	inv, err := f.SolveMatrix(id)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	return inv, nil
}
