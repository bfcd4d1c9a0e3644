// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures and utilities for kernels.
//   • Keep all data finite and well-formed.

package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/quasicut/matrix"
)

// closeTol is the absolute tolerance used when comparing floating results.
const closeTol = 1e-10

// hide wraps any Matrix to hide its concrete type from type assertions,
// forcing the copy-through-At path in kernels.
type hide struct{ matrix.Matrix }

// MustDense allocates an r×c *Dense or fails the test.
func MustDense(t *testing.T, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	if err != nil {
		t.Fatalf("NewDense(%d,%d): %v", r, c, err)
	}

	return m
}

// MustFromRows builds a Dense from row literals or fails the test.
func MustFromRows(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewFromRows(rows)
	if err != nil {
		t.Fatalf("NewFromRows: %v", err)
	}

	return m
}

// MustAt reads m[i,j] or fails the test.
func MustAt(t *testing.T, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	if err != nil {
		t.Fatalf("At(%d,%d): %v", i, j, err)
	}

	return v
}

// CompareClose fails when any entry of got differs from want by more than tol.
func CompareClose(t *testing.T, want [][]float64, got matrix.Matrix, tol float64) {
	t.Helper()
	if got.Rows() != len(want) {
		t.Fatalf("rows: got %d want %d", got.Rows(), len(want))
	}
	var i, j int
	for i = 0; i < len(want); i++ {
		if got.Cols() != len(want[i]) {
			t.Fatalf("cols: got %d want %d", got.Cols(), len(want[i]))
		}
		for j = 0; j < len(want[i]); j++ {
			if g := MustAt(t, got, i, j); math.Abs(g-want[i][j]) > tol {
				t.Fatalf("[%d,%d]: got %.15g want %.15g", i, j, g, want[i][j])
			}
		}
	}
}

// identityRows returns I_n as row literals.
func identityRows(n int) [][]float64 {
	out := make([][]float64, n)
	for i := range out {
		out[i] = make([]float64, n)
		out[i][i] = 1
	}

	return out
}
