// SPDX-License-Identifier: MIT

// Package structure turns a superspace model into physical atoms by the
// cut-and-project rule.
//
// For every atom site, Generate:
//
//  1. derives the perpendicular cutoff from the largest occupation-domain
//     vertex (inflated by a safety scale) and reduces the cutoff window once;
//  2. walks the lattice vectors n inside the window for each
//     symmetry-equivalent position p of the site (translation v = p);
//  3. projects n+v to physical space (aParCartnᵀ·(n+v)) and to perpendicular
//     space (−aPerpCartnᵀ·(n+v));
//  4. rotates the perpendicular image by each site-symmetry rotation in turn
//     and tests it against every occupation-domain fragment; the first
//     (rotation, fragment) pair that contains it places an atom.
//
// Options:
//
//   - WithContext(ctx)       cancels the walk.
//   - WithEpsilon(eps)       relative bound inflation of the lattice walk.
//   - WithSafetyScale(s)     inflation of the perpendicular cutoff (default 1.01).
//   - WithPerpScale(s)       extra scale of the perpendicular cutoff (default 1).
//   - WithTolerance(tol)     facet tolerance of the containment test.
//   - WithOverlapCheck()     counts lattice points matched by more than one pair.
//   - WithWorkers(n)         processes sites concurrently.
//   - WithLogger(l)          structured progress logging.
//
// Output order is by site, then orbit position, then walk order; it is the
// same for any worker count.
package structure
