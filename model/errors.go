// SPDX-License-Identifier: MIT

package model

import "errors"

var (
	// ErrDimensionMismatch indicates dim ≠ dimPar+dimPerp or a matrix, vector
	// or vertex whose shape disagrees with the model dimensions.
	ErrDimensionMismatch = errors.New("model: dimension mismatch")

	// ErrInvalidCutoff indicates a non-positive or non-finite cutoff radius.
	ErrInvalidCutoff = errors.New("model: invalid cutoff radius")

	// ErrInvalidModel indicates a structurally invalid model: missing labels,
	// symmetry operation indices out of range, non-finite numbers.
	ErrInvalidModel = errors.New("model: invalid model")

	// ErrDegenerateBasis indicates that the parallel and perpendicular basis
	// vectors together do not span superspace.
	ErrDegenerateBasis = errors.New("model: degenerate superspace basis")
)
