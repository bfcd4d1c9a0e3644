// SPDX-License-Identifier: MIT

// Package matrix: functional configuration of the numeric policy.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Options fields are unexported; public APIs consume ...Option.
package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon is the absolute tolerance used by symmetry checks.
	DefaultEpsilon = 1e-9

	// DefaultPivotTolerance is the relative pivot threshold of Factorize:
	// a pivot p is treated as zero when |p| <= tol * max|a_ij|.
	DefaultPivotTolerance = 1e-12
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicEpsilonInvalid = "matrix: WithEpsilon: eps must be finite, non-negative"
	panicPivotInvalid   = "matrix: WithPivotTolerance: tol must be finite, non-negative"
)

// Option mutates internal options. Safe to apply repeatedly.
type Option func(*Options)

// Options stores the effective numeric policy after applying Option setters.
type Options struct {
	eps      float64 // >= 0; DefaultEpsilon
	pivotTol float64 // >= 0; DefaultPivotTolerance
}

// WithEpsilon sets the tolerance used by symmetry checks.
// Implementation:
//   - Stage 1: validate eps is finite and ≥ 0.
//   - Stage 2: return a setter that writes eps into Options.
//
// Errors:
//   - Panics with a stable message when eps is invalid.
//
// AI-Hints:
//   - Forms assembled from products (M·Mᵀ) are symmetric up to rounding;
//     the default 1e-9 is enough for unit-scale cutoff windows.
func WithEpsilon(eps float64) Option {
	if isNonFinite(eps) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithPivotTolerance sets the relative pivot threshold used by Factorize.
// Zero keeps only exact-zero pivots as singular.
func WithPivotTolerance(tol float64) Option {
	if isNonFinite(tol) || tol < 0 {
		panic(panicPivotInvalid)
	}

	return func(o *Options) { o.pivotTol = tol }
}

// NewOptions resolves user options over the defaults.
func NewOptions(opts ...Option) Options { return gatherOptions(opts...) }

// Epsilon reports the effective symmetry tolerance.
func (o Options) Epsilon() float64 { return o.eps }

// PivotTolerance reports the effective relative pivot threshold.
func (o Options) PivotTolerance() float64 { return o.pivotTol }

// defaultOptions returns the policy described by the Default* constants.
func defaultOptions() Options {
	return Options{
		eps:      DefaultEpsilon,
		pivotTol: DefaultPivotTolerance,
	}
}

// gatherOptions applies user setters over defaults in call order (last wins).
func gatherOptions(user ...Option) Options {
	o := defaultOptions()
	var fn Option
	for _, fn = range user {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

// isNonFinite reports whether v is NaN or ±Inf.
func isNonFinite(v float64) bool { return math.IsNaN(v) || math.IsInf(v, 0) }
