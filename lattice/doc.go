// SPDX-License-Identifier: MIT

// Package lattice enumerates the integer vectors n of a superspace lattice
// whose translate n+v falls inside an ellipsoidal cutoff, or inside the
// intersection of a parallel-space and a perpendicular-space cutoff.
//
// The search is a depth-first walk over coordinates 0..dim-1 driven by a
// quadform.Cascade: at each depth the feasible real interval of the next
// coordinate is computed in O(dim) from the coordinates already fixed, then
// its integers are visited in zigzag order starting from the middle.
//
// Key features:
//   - New(c, v, c0, opts...): single constraint Q(n+v) ≤ c0·(1+eps).
//   - NewDual(par, perp, combined, v, c0, opts...): Q_par ≤ c0 and Q_perp ≤ c0,
//     with the combined form Q_par+Q_perp ≤ 2·c0 keeping every interval finite.
//   - ReduceWindow / NewWindow: the dual cutoff of a cut-and-project window,
//     reduced once and shared by many enumerators.
//   - BruteForce: reference scan over a bounding box.
//
// An Enumerator is a single-pass cursor:
//
//	e, err := lattice.New(c, v, 1)
//	for e.Next() {
//		n := e.Vector()
//		...
//	}
//	if err := e.Err(); err != nil { ... }
//
// or, with range-over-func, for n := range e.All() { ... }.
//
// Complexity:
//
//   - Time:   O(dim) per visited candidate and per pruned branch (O(dim²)
//     at levels following an unbounded level of a semidefinite cascade).
//   - Memory: O(dim) scratch per cascade, allocated once in the constructor.
//
// Options:
//
//   - WithContext(ctx)   stops the walk with ctx.Err() once ctx is done.
//   - WithEpsilon(eps)   relative inflation of the bound (default quadform.DefaultEpsilon).
//
// Errors:
//
//   - ErrNilCascade          if a required cascade is nil.
//   - ErrDimensionMismatch   if cascades or v disagree on dim.
//   - ErrUnbounded           if some coordinate is bounded by no cascade.
//   - context.Canceled / context.DeadlineExceeded from WithContext.
//
// An Enumerator is not safe for concurrent use. Cascades and Windows are.
package lattice
