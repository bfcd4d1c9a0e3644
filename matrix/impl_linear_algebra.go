// SPDX-License-Identifier: MIT
// Package matrix provides universal operations on any Matrix implementation:
// products, transpose, scaling and quadratic-form evaluation. All functions
// perform strict fail-fast validation and return clear errors on dimension
// mismatches.
//
// Notes:
//   - Kernels run on *Dense flat buffers; other Matrix implementations are
//     first copied into a Dense (asDense) so there is one arithmetic path.
//   - All kernels use central validators and wrap errors via matrixErrorf.

package matrix

import "fmt"

// ZeroSum is the initial sum value for dot products and substitutions.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opMul       = "Mul"
	opGram      = "Gram"
	opTranspose = "Transpose"
	opScale     = "Scale"
	opMatVec    = "MatVec"
	opVecMat    = "VecMat"
	opQuadForm  = "QuadForm"
	opFactorize = "Factorize"
	opSolve     = "Solve"
	opInverse   = "Inverse"
	opPD        = "IsPositiveDefinite"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// asDense returns m itself when it is a *Dense, otherwise a Dense copy read via At.
// Complexity: O(1) fast path, O(r*c) otherwise.
func asDense(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, err
	}
	if d, ok := m.(*Dense); ok {
		return d, nil
	}
	rows, cols := m.Rows(), m.Cols()
	out, err := newDenseZeroOK(rows, cols)
	if err != nil {
		return nil, err
	}
	var i, j int
	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, fmt.Errorf("At(%d,%d): %w", i, j, err)
			}
			out.data[i*cols+j] = v
		}
	}

	return out, nil
}

// Add returns the element-wise sum A + B.
// Errors: ErrNilMatrix, ErrDimensionMismatch (shape mismatch).
// Complexity: Time O(r*c), Space O(r*c).
func Add(a, b Matrix) (*Dense, error) {
	return elementwise(opAdd, a, b, 1)
}

// Sub returns the element-wise difference A − B.
// Errors: ErrNilMatrix, ErrDimensionMismatch (shape mismatch).
// Complexity: Time O(r*c), Space O(r*c).
func Sub(a, b Matrix) (*Dense, error) {
	return elementwise(opSub, a, b, -1)
}

// elementwise computes A + sign·B after shared validation.
func elementwise(tag string, a, b Matrix, sign float64) (*Dense, error) {
	da, err := asDense(a)
	if err != nil {
		return nil, matrixErrorf(tag, err)
	}
	db, err := asDense(b)
	if err != nil {
		return nil, matrixErrorf(tag, err)
	}
	if err = ValidateSameShape(da, db); err != nil {
		return nil, matrixErrorf(tag, err)
	}
	res, err := newDenseZeroOK(da.r, da.c)
	if err != nil {
		return nil, matrixErrorf(tag, err)
	}
	for idx := range da.data {
		res.data[idx] = da.data[idx] + sign*db.data[idx]
	}

	return res, nil
}

// Mul performs standard matrix multiplication C = A × B.
// Implementation:
//   - Stage 1: Validate A,B (not nil) and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: i→k→j loop over row-major strides, skipping zero A[i,k].
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (inner mismatch).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
//
// Notes:
//   - An inner dimension of zero is legal and yields the zero matrix.
func Mul(a, b Matrix) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	da, err := asDense(a)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	db, err := asDense(b)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	res, err := newDenseZeroOK(da.r, db.c)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	var i, k, j, baseA, baseB, baseC int
	var aik float64
	for i = 0; i < da.r; i++ {
		baseA = i * da.c
		baseC = i * db.c
		for k = 0; k < da.c; k++ {
			aik = da.data[baseA+k]
			if aik == 0 {
				continue
			}
			baseB = k * db.c
			for j = 0; j < db.c; j++ {
				res.data[baseC+j] += aik * db.data[baseB+j]
			}
		}
	}

	return res, nil
}

// Gram returns G = M·Mᵀ, the symmetric form whose quadratic value xᵀGx equals |Mᵀx|².
// MAIN DESCRIPTION:
//   - Turns a dim×k cutoff map into the dim×dim quadratic form of its ellipsoid.
//
// Behavior highlights:
//   - Exactly symmetric: G[j,i] is copied from G[i,j].
//   - k == 0 is legal and yields the zero form.
//
// Complexity:
//   - Time O(dim²·k), Space O(dim²).
func Gram(m Matrix) (*Dense, error) {
	d, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opGram, err)
	}
	res, err := newDenseZeroOK(d.r, d.r)
	if err != nil {
		return nil, matrixErrorf(opGram, err)
	}

	var i, j, k int
	var sum float64
	for i = 0; i < d.r; i++ {
		for j = i; j < d.r; j++ {
			sum = ZeroSum
			for k = 0; k < d.c; k++ {
				sum += d.data[i*d.c+k] * d.data[j*d.c+k]
			}
			res.data[i*d.r+j] = sum
			res.data[j*d.r+i] = sum
		}
	}

	return res, nil
}

// Transpose returns a new matrix Mᵀ.
// Complexity: Time O(r*c), Space O(r*c).
func Transpose(m Matrix) (*Dense, error) {
	d, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	res, err := newDenseZeroOK(d.c, d.r)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	var i, j int
	for i = 0; i < d.r; i++ {
		for j = 0; j < d.c; j++ {
			res.data[j*d.r+i] = d.data[i*d.c+j]
		}
	}

	return res, nil
}

// Scale returns alpha·M as a new matrix.
func Scale(m Matrix, alpha float64) (*Dense, error) {
	if isNonFinite(alpha) {
		return nil, matrixErrorf(opScale, ErrNaNInf)
	}
	d, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	res, err := newDenseZeroOK(d.r, d.c)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	for idx := range d.data {
		res.data[idx] = alpha * d.data[idx]
	}

	return res, nil
}

// MatVec computes y = m * x for a column vector x.
//
// Contract: m non-nil; len(x) == m.Cols().
// Determinism: fixed i→j loop order.
// Complexity: Time O(r*c), Space O(r) for y.
func MatVec(m Matrix, x []float64) ([]float64, error) {
	d, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err = ValidateVecLen(x, d.c); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	y := make([]float64, d.r)
	var i, j, base int
	var acc float64
	for i = 0; i < d.r; i++ {
		acc = ZeroSum
		base = i * d.c
		for j = 0; j < d.c; j++ {
			acc += d.data[base+j] * x[j]
		}
		y[i] = acc
	}

	return y, nil
}

// VecMat computes the row-vector product y = xᵀ·m, i.e. mᵀx.
// With a dim×k basis whose rows are the images of the superspace unit vectors,
// VecMat maps superspace coordinates to the k-dimensional subspace.
//
// Contract: len(x) == m.Rows(). Complexity: Time O(r*c), Space O(c).
func VecMat(x []float64, m Matrix) ([]float64, error) {
	d, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opVecMat, err)
	}
	if err = ValidateVecLen(x, d.r); err != nil {
		return nil, matrixErrorf(opVecMat, err)
	}
	y := make([]float64, d.c)
	var i, j, base int
	var xi float64
	for i = 0; i < d.r; i++ {
		xi = x[i]
		if xi == 0 {
			continue
		}
		base = i * d.c
		for j = 0; j < d.c; j++ {
			y[j] += xi * d.data[base+j]
		}
	}

	return y, nil
}

// QuadForm evaluates xᵀ·m·x for a square m.
//
// Errors:
//   - ErrDimensionMismatch when m is not square or len(x) != m.Rows().
//
// Complexity: Time O(n²), Space O(1).
func QuadForm(m Matrix, x []float64) (float64, error) {
	if err := ValidateSquare(m); err != nil {
		return 0, matrixErrorf(opQuadForm, err)
	}
	d, err := asDense(m)
	if err != nil {
		return 0, matrixErrorf(opQuadForm, err)
	}
	if err = ValidateVecLen(x, d.r); err != nil {
		return 0, matrixErrorf(opQuadForm, err)
	}

	return quadForm(d.data, d.r, x), nil
}

// quadForm is the unchecked kernel of QuadForm over a flat n×n buffer.
func quadForm(data []float64, n int, x []float64) float64 {
	var i, j, base int
	var acc, row float64
	for i = 0; i < n; i++ {
		if x[i] == 0 {
			continue
		}
		row = ZeroSum
		base = i * n
		for j = 0; j < n; j++ {
			row += data[base+j] * x[j]
		}
		acc += x[i] * row
	}

	return acc
}

// QuadForm evaluates xᵀ·m·x without validation beyond a length check.
// It is the allocation-free variant for hot loops over a fixed square form.
func (m *Dense) QuadForm(x []float64) (float64, error) {
	if m.r != m.c || len(x) != m.r {
		return 0, matrixErrorf(opQuadForm, ErrDimensionMismatch)
	}

	return quadForm(m.data, m.r, x), nil
}
