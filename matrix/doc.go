// SPDX-License-Identifier: MIT

// Package matrix offers the dense linear-algebra kernels used by the
// cut-and-project pipeline.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with safe At/Set accessors and
//     copy-based submatrix extraction (Induced) for block eliminations.
//   - Products (Mul, Gram, MatVec, VecMat, QuadForm) and Transpose/Scale.
//   - LU factorization with partial pivoting (Factorize), linear solves and
//     Inverse, used to eliminate coordinate blocks of quadratic forms.
//   - Validators (ValidateSquare, ValidateSymmetric, ...) and a
//     positive-definiteness test backed by a Cholesky factorization.
//
// All public kernels return sentinel errors (see errors.go) wrapped with an
// operation tag; match them with errors.Is. Loop orders are fixed, so results
// are deterministic for identical inputs.
//
// Numeric policy (symmetry tolerance, pivot tolerance) is configured through
// functional options, see options.go.
package matrix
