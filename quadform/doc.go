// SPDX-License-Identifier: MIT

// Package quadform reduces a symmetric quadratic form Q(y) = yᵀ·G·y into a
// per-coordinate cascade that lets a depth-first search bound one integer
// coordinate at a time.
//
// The search fixes coordinate 0 first and coordinate dim-1 last. Level i of a
// Cascade describes Q minimised over the coordinates not yet fixed (i+1..dim-1)
// as a one-dimensional parabola in y_i whose vertex depends linearly on the
// fixed coordinates y_0..y_{i-1}:
//
//	min_{y_D} Q(y) = base_i(y_F) + VV[i]·(y_i − VF[i]·y_F)²
//
// Three stages are provided:
//
//   - Reduce builds the Cascade once per form (Schur complements over an LU
//     factorization of the eliminated block).
//   - Cascade.Instance specialises it for a translation v and a bound c0,
//     folding v into per-level constants.
//   - Instance.Interval / SolveInterval return the real interval of the next
//     coordinate; Intersect combines the intervals of several cascades and
//     Interval.IntRange converts the result to integers.
//
// Positive-semidefinite forms (cylinders) are reduced with WithSemidefinite:
// levels that do not constrain their coordinate are reported as unbounded and
// the running minimum is recomputed exactly at the next bounded level.
//
// A Cascade is immutable after Reduce and may be shared read-only between
// goroutines. An Instance is also read-only.
package quadform
