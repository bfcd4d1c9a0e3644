// SPDX-License-Identifier: MIT

// Package quasicut generates quasicrystal structures by the cut-and-project
// method: the atoms of a crystal in an N-dimensional superspace whose
// projections fall inside a physical-space cutoff sphere and inside the
// occupation domains of perpendicular space.
//
// 🚀 What is quasicut?
//
//	A pure-Go pipeline from a superspace model to physical atoms:
//		• Quadratic forms: one-time block reduction of the cutoff ellipsoid
//		• Lattice walks: every integer point inside an ellipsoid, in zigzag order
//		• Dual windows: parallel and perpendicular cutoffs walked at once
//		• Placement: simplex containment under the site-symmetry rotations
//		• Tooling: JSON models, YAML tunables, SVG output, the qcgen driver
//
// ✨ Why choose quasicut?
//
//   - Exact: the walk is complete, no lattice point of the window is missed
//   - Cheap per query: the reduction depends on the form only, not on the shift
//   - Streaming: lattice points come from a cursor, nothing is materialised
//   - Rank-deficient windows: flat parallel or perpendicular forms are fine
//
// Under the hood the work is split into small packages:
//
//	matrix/    - dense row-major matrices, LU with partial pivoting, Gram forms
//	quadform/  - reduction cascades, per-shift instances, feasible intervals
//	lattice/   - the ellipsoid enumerator and its dual-window variant
//	model/     - superspace models: JSON, validation, symmetry, catalog
//	structure/ - atom generation, containment, analysis and SVG
//	config/    - YAML tunables of a generation run
//	logging/   - slog setup for the driver
//	cmd/qcgen  - the command-line driver
//
// Quick ASCII example, the Fibonacci chain as a cut through Z²:
//
//	    ·   ·   ·   ·  ╱·
//	    ·   ·   ·  ╱·   ·      the strip of slope 1/τ keeps the lattice
//	    ·   ·  ╱·───·   ·      points whose perpendicular projection
//	    ·  ╱·───·   ·   ·      lies in the window; their projections
//	    ╱·───·   ·   ·   ·     onto the line are the atoms: L S L L S …
//
//	go install github.com/katalvlaran/quasicut/cmd/qcgen@latest
package quasicut
