// SPDX-License-Identifier: MIT

package quadform

import "errors"

var (
	// ErrNotPositiveDefinite is returned by Reduce when a strict reduction
	// meets a singular eliminated block or a non-positive reduced diagonal.
	ErrNotPositiveDefinite = errors.New("quadform: form is not positive-definite")

	// ErrDimensionMismatch indicates a vector whose length differs from the
	// dimension of the cascade, or an empty form.
	ErrDimensionMismatch = errors.New("quadform: dimension mismatch")

	// ErrInvalidBound indicates a negative or non-finite bound c0.
	ErrInvalidBound = errors.New("quadform: invalid bound")
)
