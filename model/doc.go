// SPDX-License-Identifier: MIT

// Package model describes a quasicrystal as a periodic structure in
// superspace: a lattice of dimension dim = dimPar + dimPerp whose basis is
// split into a parallel (physical) part aParCartn and a perpendicular part
// aPerpCartn, a list of superspace symmetry operations, and atom sites whose
// occupation domains are polytopes in perpendicular space.
//
// The package decodes the minimal JSON form of such a model, fills in the
// derived defaults (site orbits and site-symmetry subgroups), validates every
// shape, and derives the objects the generator needs: the cutoff Window and
// the perpendicular-space rotations of the symmetry operations.
package model
