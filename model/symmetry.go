// SPDX-License-Identifier: MIT

package model

import (
	"fmt"
	"math"
	"slices"

	"github.com/katalvlaran/quasicut/matrix"
)

// positionTolerance is the tolerance used when comparing fractional
// positions modulo the lattice.
const positionTolerance = 1e-6

// Identity returns the identity operation of dimension dim.
func Identity(dim int) SymmetryOp {
	rot := make([][]float64, dim)
	for i := range rot {
		rot[i] = make([]float64, dim)
		rot[i][i] = 1
	}

	return SymmetryOp{Rotation: rot, Translation: make([]float64, dim)}
}

// Apply returns Rotation·y + Translation.
func (op SymmetryOp) Apply(y []float64) []float64 {
	out := make([]float64, len(y))
	var i, j int
	for i = range op.Rotation {
		for j = range y {
			out[i] += op.Rotation[i][j] * y[j]
		}
		if op.Translation != nil {
			out[i] += op.Translation[i]
		}
	}

	return out
}

// Normalize fills the defaults of a shape-valid model:
//   - an empty operation list becomes the identity alone;
//   - missing translations become zero;
//   - dimPerp = 0 with no perpendicular basis gets dim empty rows;
//   - a site without an orbit gets ExpandOrbit(site.Fract);
//   - a site without site-symmetry operations gets its stabilizer.
//
// Normalize then runs Validate.
func (m *Model) Normalize() error {
	if m.DimPerp == 0 && len(m.APerpCartn) == 0 && m.Dim() > 0 {
		m.APerpCartn = make([][]float64, m.Dim())
		for i := range m.APerpCartn {
			m.APerpCartn[i] = []float64{}
		}
	}
	if err := m.validateShapes(); err != nil {
		return err
	}
	dim := m.Dim()
	if len(m.SymmetryOps) == 0 {
		m.SymmetryOps = []SymmetryOp{Identity(dim)}
	}
	for k := range m.SymmetryOps {
		if m.SymmetryOps[k].Translation == nil {
			m.SymmetryOps[k].Translation = make([]float64, dim)
		}
	}
	for s := range m.AtomSites {
		site := &m.AtomSites[s]
		if len(site.Orbit) == 0 {
			site.Orbit = m.ExpandOrbit(site.Fract)
		}
		if len(site.SiteSymmetryOps) == 0 {
			site.SiteSymmetryOps = m.Stabilizer(site.Fract)
		}
	}

	return m.Validate()
}

// ExpandOrbit applies every symmetry operation to fract and groups the images
// that coincide modulo the lattice. Positions are wrapped into [0,1) and
// returned in order of first appearance, each with the operations producing it.
func (m *Model) ExpandOrbit(fract []float64) []OrbitPosition {
	var out []OrbitPosition
	for k, op := range m.SymmetryOps {
		p := wrap(op.Apply(fract))
		idx := slices.IndexFunc(out, func(o OrbitPosition) bool { return sameModLattice(o.Fract, p) })
		if idx < 0 {
			out = append(out, OrbitPosition{Fract: p, SymmetryOps: []int{k}})
			continue
		}
		out[idx].SymmetryOps = append(out[idx].SymmetryOps, k)
	}

	return out
}

// Stabilizer returns the indices of the operations that map fract onto itself
// modulo the lattice.
func (m *Model) Stabilizer(fract []float64) []int {
	var out []int
	for k, op := range m.SymmetryOps {
		if sameModLattice(op.Apply(fract), fract) {
			out = append(out, k)
		}
	}

	return out
}

// Basis returns the dim×dim matrix [aParCartn | aPerpCartn].
func (m *Model) Basis() (*matrix.Dense, error) {
	dim := m.Dim()
	rows := make([][]float64, dim)
	for i := 0; i < dim; i++ {
		rows[i] = append(append(make([]float64, 0, dim), m.AParCartn[i]...), m.APerpCartn[i]...)
	}

	return matrix.NewFromRows(rows)
}

// basisInverse returns (Basisᵀ)⁻¹ or ErrDegenerateBasis.
func (m *Model) basisInverse() (*matrix.Dense, error) {
	a, err := m.Basis()
	if err != nil {
		return nil, fmt.Errorf("basis: %w", err)
	}
	at, err := matrix.Transpose(a)
	if err != nil {
		return nil, fmt.Errorf("basis: %w", err)
	}
	inv, err := matrix.Inverse(at)
	if err != nil {
		return nil, fmt.Errorf("basis: %w: %w", ErrDegenerateBasis, err)
	}

	return inv, nil
}

// CartesianOp returns the action of operation k on Cartesian superspace
// coordinates (r_par, r_perp): Aᵀ·R·(Aᵀ)⁻¹ with A = Basis().
// For a symmetry of the model it is block-diagonal.
func (m *Model) CartesianOp(k int) (*matrix.Dense, error) {
	if k < 0 || k >= len(m.SymmetryOps) {
		return nil, fmt.Errorf("CartesianOp(%d): %w", k, ErrInvalidModel)
	}
	a, err := m.Basis()
	if err != nil {
		return nil, fmt.Errorf("CartesianOp(%d): %w", k, err)
	}
	inv, err := m.basisInverse()
	if err != nil {
		return nil, fmt.Errorf("CartesianOp(%d): %w", k, err)
	}
	rot, err := matrix.NewFromRows(m.SymmetryOps[k].Rotation)
	if err != nil {
		return nil, fmt.Errorf("CartesianOp(%d): %w", k, err)
	}
	at, err := matrix.Transpose(a)
	if err != nil {
		return nil, fmt.Errorf("CartesianOp(%d): %w", k, err)
	}
	left, err := matrix.Mul(at, rot)
	if err != nil {
		return nil, fmt.Errorf("CartesianOp(%d): %w", k, err)
	}

	return matrix.Mul(left, inv)
}

// PerpRotation returns the dimPerp×dimPerp perpendicular block of CartesianOp(k).
// It maps r_perp of a point to r_perp of its image.
func (m *Model) PerpRotation(k int) (*matrix.Dense, error) {
	c, err := m.CartesianOp(k)
	if err != nil {
		return nil, err
	}
	perp := make([]int, m.DimPerp)
	for i := range perp {
		perp[i] = m.DimPar + i
	}

	return c.Induced(perp, perp)
}

func wrap(p []float64) []float64 {
	for i, x := range p {
		x -= math.Floor(x)
		if x > 1-positionTolerance {
			x = 0
		}
		p[i] = x
	}

	return p
}

func sameModLattice(a, b []float64) bool {
	for i := range a {
		d := a[i] - b[i]
		if math.Abs(d-math.Round(d)) > positionTolerance {
			return false
		}
	}

	return true
}
