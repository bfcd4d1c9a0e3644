// SPDX-License-Identifier: MIT

package lattice

import (
	"fmt"

	"github.com/katalvlaran/quasicut/matrix"
	"github.com/katalvlaran/quasicut/quadform"
)

// Window is a reduced dual cutoff: the unit balls |mParᵀ·y| ≤ 1 and
// |mPerpᵀ·y| ≤ 1 over superspace coordinates y. It is immutable and may be
// shared by any number of enumerators.
//
// For a zero-dimensional perpendicular space only Par is set, and it is a
// strict (positive-definite) reduction.
type Window struct {
	Par      *quadform.Cascade
	Perp     *quadform.Cascade
	Combined *quadform.Cascade
}

// ReduceWindow reduces the Gram forms of mPar (dim×dimPar) and mPerp
// (dim×dimPerp). With dimPerp > 0 the par and perp forms are reduced in
// semidefinite mode and their sum strictly.
//
// Errors:
//   - ErrDimensionMismatch if the row counts differ.
//   - quadform.ErrNotPositiveDefinite if the combined form is degenerate, i.e.
//     the columns of mPar and mPerp do not span superspace.
func ReduceWindow(mPar, mPerp matrix.Matrix, opts ...quadform.Option) (*Window, error) {
	if err := matrix.ValidateNotNil(mPar); err != nil {
		return nil, fmt.Errorf("ReduceWindow: par: %w", err)
	}
	if err := matrix.ValidateNotNil(mPerp); err != nil {
		return nil, fmt.Errorf("ReduceWindow: perp: %w", err)
	}
	if mPar.Rows() != mPerp.Rows() {
		return nil, fmt.Errorf("ReduceWindow: par rows %d, perp rows %d: %w",
			mPar.Rows(), mPerp.Rows(), ErrDimensionMismatch)
	}
	gPar, err := matrix.Gram(mPar)
	if err != nil {
		return nil, fmt.Errorf("ReduceWindow: %w", err)
	}
	if mPerp.Cols() == 0 {
		par, err := quadform.Reduce(gPar, opts...)
		if err != nil {
			return nil, fmt.Errorf("ReduceWindow: par: %w", err)
		}

		return &Window{Par: par}, nil
	}

	gPerp, err := matrix.Gram(mPerp)
	if err != nil {
		return nil, fmt.Errorf("ReduceWindow: %w", err)
	}
	gSum, err := matrix.Add(gPar, gPerp)
	if err != nil {
		return nil, fmt.Errorf("ReduceWindow: %w", err)
	}
	semi := append(append([]quadform.Option(nil), opts...), quadform.WithSemidefinite())

	w := &Window{}
	if w.Par, err = quadform.Reduce(gPar, semi...); err != nil {
		return nil, fmt.Errorf("ReduceWindow: par: %w", err)
	}
	if w.Perp, err = quadform.Reduce(gPerp, semi...); err != nil {
		return nil, fmt.Errorf("ReduceWindow: perp: %w", err)
	}
	if w.Combined, err = quadform.Reduce(gSum, opts...); err != nil {
		return nil, fmt.Errorf("ReduceWindow: combined: %w", err)
	}

	return w, nil
}

// Dim returns the superspace dimension of the window.
func (w *Window) Dim() int { return w.Par.Dim() }

// Dual reports whether the window has a perpendicular constraint.
func (w *Window) Dual() bool { return w.Perp != nil }

// NewWindow returns an Enumerator over the lattice vectors n with n+v inside
// the window (c0 = 1). Without a perpendicular constraint it is exactly New
// over the parallel cascade.
func NewWindow(w *Window, v []float64, opts ...Option) (*Enumerator, error) {
	if w == nil || w.Par == nil {
		return nil, fmt.Errorf("NewWindow: %w", ErrNilCascade)
	}
	if !w.Dual() {
		return New(w.Par, v, 1, opts...)
	}

	return NewDual(w.Par, w.Perp, w.Combined, v, 1, opts...)
}
