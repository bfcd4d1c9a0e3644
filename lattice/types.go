// SPDX-License-Identifier: MIT

package lattice

import (
	"context"
	"errors"
	"math"

	"github.com/katalvlaran/quasicut/quadform"
)

var (
	// ErrNilCascade is returned when a required cascade is nil.
	ErrNilCascade = errors.New("lattice: cascade is nil")

	// ErrDimensionMismatch indicates cascades of different dimension, or a
	// translation vector of the wrong length.
	ErrDimensionMismatch = errors.New("lattice: dimension mismatch")

	// ErrUnbounded indicates a coordinate that no cascade bounds to a finite range.
	ErrUnbounded = errors.New("lattice: coordinate is unbounded")
)

// Vector is an integer superspace lattice vector.
type Vector []int

// Option configures an Enumerator.
type Option func(*Options)

// Options holds the enumeration parameters.
type Options struct {
	// Ctx allows cancellation; defaults to context.Background().
	Ctx context.Context

	// Epsilon is the relative inflation of the bound: c0·(1+Epsilon).
	Epsilon float64
}

// DefaultOptions returns Background context and quadform.DefaultEpsilon.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		Epsilon: quadform.DefaultEpsilon,
	}
}

// WithContext sets the context checked before each emitted vector.
// A nil context has no effect.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithEpsilon sets the relative bound inflation. Panics on negative or
// non-finite eps.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic("lattice: WithEpsilon: eps must be finite, non-negative")
	}

	return func(o *Options) { o.Epsilon = eps }
}
