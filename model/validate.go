// SPDX-License-Identifier: MIT

package model

import (
	"fmt"
	"math"

	"github.com/katalvlaran/quasicut/matrix"
)

// Validate checks every shape against DimPar/DimPerp and every symmetry index
// against the operation list. Every operation must be unimodular, an
// automorphism of the lattice. Site-symmetry operations must fix the site, and
// the operations of an orbit position must map the site onto it (modulo the
// lattice). It does not fill defaults; see Normalize.
//
// Errors: ErrDimensionMismatch, ErrInvalidModel, ErrDegenerateBasis.
func (m *Model) Validate() error {
	if err := m.validateShapes(); err != nil {
		return err
	}
	nOps := len(m.SymmetryOps)
	for k := range m.SymmetryOps {
		if err := checkUnimodular(m.SymmetryOps[k].Rotation); err != nil {
			return fmt.Errorf("symmetry op %d: %w", k, err)
		}
	}
	for s := range m.AtomSites {
		site := &m.AtomSites[s]
		for o, pos := range site.Orbit {
			if err := checkVector(pos.Fract, m.Dim()); err != nil {
				return fmt.Errorf("site %q orbit %d: %w", site.Label, o, err)
			}
			if err := checkIndices(pos.SymmetryOps, nOps); err != nil {
				return fmt.Errorf("site %q orbit %d: %w", site.Label, o, err)
			}
			for _, k := range pos.SymmetryOps {
				if !sameModLattice(m.SymmetryOps[k].Apply(site.Fract), pos.Fract) {
					return fmt.Errorf("site %q orbit %d: op %d does not map the site there: %w",
						site.Label, o, k, ErrInvalidModel)
				}
			}
		}
		if err := checkIndices(site.SiteSymmetryOps, nOps); err != nil {
			return fmt.Errorf("site %q site symmetry: %w", site.Label, err)
		}
		for _, k := range site.SiteSymmetryOps {
			if !sameModLattice(m.SymmetryOps[k].Apply(site.Fract), site.Fract) {
				return fmt.Errorf("site %q site symmetry: op %d does not fix the site: %w",
					site.Label, k, ErrInvalidModel)
			}
		}
	}
	if _, err := m.basisInverse(); err != nil {
		return err
	}

	return nil
}

// validateShapes covers everything Normalize relies on.
func (m *Model) validateShapes() error {
	if m.DimPar < 1 || m.DimPerp < 0 {
		return fmt.Errorf("dimPar=%d dimPerp=%d: %w", m.DimPar, m.DimPerp, ErrDimensionMismatch)
	}
	dim := m.Dim()
	if m.Phason != nil {
		if err := checkVector(m.Phason, dim); err != nil {
			return fmt.Errorf("phason: %w", err)
		}
	}
	if err := checkMatrix(m.AParCartn, dim, m.DimPar); err != nil {
		return fmt.Errorf("aParCartn: %w", err)
	}
	if err := checkMatrix(m.APerpCartn, dim, m.DimPerp); err != nil {
		return fmt.Errorf("aPerpCartn: %w", err)
	}
	for k, op := range m.SymmetryOps {
		if err := checkMatrix(op.Rotation, dim, dim); err != nil {
			return fmt.Errorf("symmetry op %d rotation: %w", k, err)
		}
		if op.Translation != nil {
			if err := checkVector(op.Translation, dim); err != nil {
				return fmt.Errorf("symmetry op %d translation: %w", k, err)
			}
		}
	}
	for s := range m.AtomSites {
		site := &m.AtomSites[s]
		if site.Label == "" {
			return fmt.Errorf("site %d: empty label: %w", s, ErrInvalidModel)
		}
		if err := checkVector(site.Fract, dim); err != nil {
			return fmt.Errorf("site %q fract: %w", site.Label, err)
		}
		for d, dom := range site.OccupationDomains {
			for f, frag := range dom.Fragments {
				if err := checkMatrix(frag, m.DimPerp+1, m.DimPerp); err != nil {
					return fmt.Errorf("site %q domain %d fragment %d: %w", site.Label, d, f, err)
				}
			}
		}
		if m.DimPerp > 0 && len(site.Fragments()) == 0 {
			return fmt.Errorf("site %q: no occupation domain: %w", site.Label, ErrInvalidModel)
		}
	}

	return nil
}

func checkMatrix(rows [][]float64, r, c int) error {
	if len(rows) != r {
		return fmt.Errorf("%d rows, want %d: %w", len(rows), r, ErrDimensionMismatch)
	}
	for i, row := range rows {
		if len(row) != c {
			return fmt.Errorf("row %d has %d entries, want %d: %w", i, len(row), c, ErrDimensionMismatch)
		}
		if !finite(row) {
			return fmt.Errorf("row %d: non-finite entry: %w", i, ErrInvalidModel)
		}
	}

	return nil
}

func checkVector(v []float64, n int) error {
	if len(v) != n {
		return fmt.Errorf("length %d, want %d: %w", len(v), n, ErrDimensionMismatch)
	}
	if !finite(v) {
		return fmt.Errorf("non-finite entry: %w", ErrInvalidModel)
	}

	return nil
}

// checkUnimodular requires det(rot) = ±1.
func checkUnimodular(rot [][]float64) error {
	r, err := matrix.NewFromRows(rot)
	if err != nil {
		return fmt.Errorf("rotation: %w: %w", ErrInvalidModel, err)
	}
	f, err := matrix.Factorize(r)
	if err != nil {
		return fmt.Errorf("rotation: %w: %w", ErrInvalidModel, err)
	}
	if det := f.Det(); math.Abs(math.Abs(det)-1) > positionTolerance {
		return fmt.Errorf("rotation determinant %g, want ±1: %w", det, ErrInvalidModel)
	}

	return nil
}

func checkIndices(idx []int, n int) error {
	for _, k := range idx {
		if k < 0 || k >= n {
			return fmt.Errorf("symmetry op index %d out of [0,%d): %w", k, n, ErrInvalidModel)
		}
	}

	return nil
}

func finite(v []float64) bool {
	for _, x := range v {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return false
		}
	}

	return true
}
