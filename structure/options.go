// SPDX-License-Identifier: MIT

package structure

import (
	"context"
	"log/slog"
	"math"

	"github.com/katalvlaran/quasicut/logging"
	"github.com/katalvlaran/quasicut/quadform"
)

const (
	// DefaultSafetyScale inflates the perpendicular cutoff radius so that
	// domain vertices on the cutoff sphere are never clipped.
	DefaultSafetyScale = 1.01

	// DefaultTolerance is the barycentric tolerance of the facet test:
	// points within it of a facet count as on the facet.
	DefaultTolerance = 1e-9
)

// Option configures Generate.
type Option func(*Options)

// Options holds the generation parameters.
type Options struct {
	Ctx          context.Context
	Epsilon      float64
	SafetyScale  float64
	PerpScale    float64
	Tolerance    float64
	OverlapCheck bool
	Workers      int
	Logger       *slog.Logger
}

// DefaultOptions returns sequential generation with the documented defaults
// and a discarding logger.
func DefaultOptions() Options {
	return Options{
		Ctx:         context.Background(),
		Epsilon:     quadform.DefaultEpsilon,
		SafetyScale: DefaultSafetyScale,
		PerpScale:   1,
		Tolerance:   DefaultTolerance,
		Workers:     1,
		Logger:      logging.Discard(),
	}
}

// WithContext sets the cancellation context. A nil ctx has no effect.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithEpsilon sets the relative bound inflation of the lattice walk.
// Panics on negative or non-finite eps.
func WithEpsilon(eps float64) Option {
	mustNonNegative("WithEpsilon", eps)

	return func(o *Options) { o.Epsilon = eps }
}

// WithSafetyScale sets the perpendicular cutoff inflation. Panics unless s ≥ 1.
func WithSafetyScale(s float64) Option {
	mustNonNegative("WithSafetyScale", s)
	if s < 1 {
		panic("structure: WithSafetyScale: scale must be >= 1")
	}

	return func(o *Options) { o.SafetyScale = s }
}

// WithPerpScale multiplies the perpendicular cutoff radius. Panics unless s > 0.
func WithPerpScale(s float64) Option {
	mustNonNegative("WithPerpScale", s)
	if s == 0 {
		panic("structure: WithPerpScale: scale must be positive")
	}

	return func(o *Options) { o.PerpScale = s }
}

// WithTolerance sets the facet tolerance of the containment test.
func WithTolerance(tol float64) Option {
	mustNonNegative("WithTolerance", tol)

	return func(o *Options) { o.Tolerance = tol }
}

// WithOverlapCheck keeps testing after the first match and counts lattice
// points contained in more than one (rotation, fragment) pair.
func WithOverlapCheck() Option {
	return func(o *Options) { o.OverlapCheck = true }
}

// WithWorkers sets the number of sites processed concurrently; n < 1 means 1.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			n = 1
		}
		o.Workers = n
	}
}

// WithLogger sets the progress logger. A nil logger has no effect.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

func mustNonNegative(name string, x float64) {
	if math.IsNaN(x) || math.IsInf(x, 0) || x < 0 {
		panic("structure: " + name + ": value must be finite, non-negative")
	}
}
