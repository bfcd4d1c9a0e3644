// SPDX-License-Identifier: MIT

package quadform

import (
	"math"

	"github.com/katalvlaran/quasicut/matrix"
)

const (
	// DefaultEpsilon is the relative inflation applied to the bound c0 so that
	// lattice points lying on the boundary survive floating-point rounding.
	DefaultEpsilon = 1e-5

	// DefaultTolerance is the relative threshold below which a reduced diagonal
	// (or an LU pivot of the eliminated block, in semidefinite mode) counts as zero.
	DefaultTolerance = 1e-9
)

const (
	panicToleranceInvalid = "quadform: WithTolerance: tol must be finite, non-negative"
)

// Option configures Reduce.
type Option func(*Options)

// Options holds the effective reduction policy.
type Options struct {
	semidefinite bool
	tol          float64
	matrixOpts   []matrix.Option
}

// DefaultOptions returns strict reduction with DefaultTolerance.
func DefaultOptions() Options {
	return Options{tol: DefaultTolerance}
}

// WithSemidefinite accepts positive-semidefinite forms. Levels that cannot be
// reduced are marked unbounded instead of failing.
func WithSemidefinite() Option {
	return func(o *Options) { o.semidefinite = true }
}

// WithTolerance sets the relative zero threshold for reduced diagonals.
// Panics on negative or non-finite tol.
func WithTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		panic(panicToleranceInvalid)
	}

	return func(o *Options) { o.tol = tol }
}

// WithMatrixOptions forwards numeric options (symmetry epsilon, pivot
// tolerance) to the matrix kernels used during reduction.
func WithMatrixOptions(opts ...matrix.Option) Option {
	return func(o *Options) { o.matrixOpts = append(o.matrixOpts, opts...) }
}
