// SPDX-License-Identifier: MIT

package quadform

import (
	"fmt"
	"math"
)

// Instance is a Cascade specialised for a translation v and a bound c0:
// it answers interval queries for Q(x+v) ≤ c0·(1+eps) over integer x.
type Instance struct {
	c     *Cascade
	v     []float64
	vc    []float64
	bound float64
}

// Step is one level evaluated for a concrete assignment of the fixed coordinates.
//   - Interval: feasible real interval of x_i.
//   - Centre: vertex of the parabola in integer coordinates.
//   - Base: exact minimum of Q over coordinates i..dim-1 for the fixed prefix.
type Step struct {
	Interval Interval
	Centre   float64
	Base     float64
}

// Instance folds v into the cascade: VC[i] = VF[i]·v_F − v_i, so the vertex of
// level i in integer coordinates is VF[i]·x_F + VC[i].
//
// Errors:
//   - ErrDimensionMismatch when len(v) != Dim().
//   - ErrInvalidBound for negative or non-finite c0 or eps.
func (c *Cascade) Instance(v []float64, c0, eps float64) (*Instance, error) {
	if len(v) != c.dim {
		return nil, fmt.Errorf("Instance: len(v)=%d, dim=%d: %w", len(v), c.dim, ErrDimensionMismatch)
	}
	if !(c0 >= 0) || math.IsInf(c0, 0) || !(eps >= 0) || math.IsInf(eps, 0) {
		return nil, fmt.Errorf("Instance: c0=%g eps=%g: %w", c0, eps, ErrInvalidBound)
	}
	in := &Instance{
		c:     c,
		v:     append([]float64(nil), v...),
		vc:    make([]float64, c.dim),
		bound: c0 * (1 + eps),
	}
	var i, j int
	var acc float64
	for i = 0; i < c.dim; i++ {
		lvl := &c.levels[i]
		if !lvl.Bounded {
			continue
		}
		acc = 0
		for j = 0; j < i; j++ {
			acc += lvl.VF[j] * v[j]
		}
		in.vc[i] = acc - v[i]
	}

	return in, nil
}

// Cascade returns the cascade the instance was built from.
func (in *Instance) Cascade() *Cascade { return in.c }

// Bound returns the inflated bound c0·(1+eps).
func (in *Instance) Bound() float64 { return in.bound }

// VC returns the translation constant of level i.
func (in *Instance) VC(i int) float64 { return in.vc[i] }

// Interval evaluates level i for the fixed prefix x[0..i-1].
// When exact is true, qPrev must be the exact minimum returned by Value for
// level i-1 (0 for i == 0) and the update costs O(i). Otherwise the minimum is
// recomputed from the reduced form FF in O(i²).
// Unbounded levels return an Unconstrained interval.
func (in *Instance) Interval(i int, x []int, qPrev float64, exact bool) Step {
	lvl := &in.c.levels[i]
	if !lvl.Bounded {
		return Step{Interval: Unconstrained()}
	}

	var j, k int
	centre := in.vc[i]
	for j = 0; j < i; j++ {
		centre += lvl.VF[j] * float64(x[j])
	}

	base := qPrev
	if i == 0 {
		base = 0
	} else if !exact {
		var row, yj float64
		base = 0
		for j = 0; j < i; j++ {
			yj = float64(x[j]) + in.v[j]
			row = 0
			for k = 0; k < i; k++ {
				row += lvl.ff[j*i+k] * (float64(x[k]) + in.v[k])
			}
			base += yj * row
		}
		mu := centre + in.v[i]
		base -= lvl.VV * mu * mu
	}

	r2 := (in.bound - base) / lvl.VV

	return Step{
		Interval: SolveInterval(centre, centre*centre-r2),
		Centre:   centre,
		Base:     base,
	}
}

// Value returns the running minimum after fixing x_i = xi at a bounded level:
// Base + VV·(xi − Centre)².
func (in *Instance) Value(i int, st Step, xi int) float64 {
	lvl := &in.c.levels[i]
	if !lvl.Bounded {
		return st.Base
	}
	d := float64(xi) - st.Centre

	return st.Base + lvl.VV*d*d
}

// Bounded reports whether level i constrains its coordinate.
func (in *Instance) Bounded(i int) bool { return in.c.levels[i].Bounded }
