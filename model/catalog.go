// SPDX-License-Identifier: MIT

package model

import (
	"math"

	"github.com/katalvlaran/quasicut/matrix"
)

// Phi is the golden ratio τ = (1+√5)/2.
var Phi = (1 + math.Sqrt(5)) / 2

// PeriodicChain returns the one-dimensional crystal with lattice parameter a:
// dimPar = 1, dimPerp = 0, one site "A" at the origin.
func PeriodicChain(a float64) *Model {
	m := &Model{
		DimPar:     1,
		AParCartn:  [][]float64{{a}},
		APerpCartn: [][]float64{{}},
		AtomSites:  []AtomSite{{Label: "A", Fract: []float64{0}}},
	}

	return mustNormalize(m)
}

// Fibonacci returns the Fibonacci chain as a cut through Z²: the basis
// vectors project to lengths τ·s and s in physical space, s = 1/√(1+τ²), and
// the occupation domain is the projection of the unit square onto
// perpendicular space, centred on the origin. Neighbour distances are τ·s
// and s.
func Fibonacci() *Model {
	s := 1 / math.Sqrt(1+Phi*Phi)
	h := (1 + Phi) * s / 2
	m := &Model{
		DimPar:     1,
		DimPerp:    1,
		AParCartn:  [][]float64{{Phi * s}, {s}},
		APerpCartn: [][]float64{{-s}, {Phi * s}},
		AtomSites: []AtomSite{{
			Label: "A",
			Fract: []float64{0, 0},
			OccupationDomains: []OccupationDomain{{
				Fragments: []Simplex{{{-h}, {h}}},
			}},
		}},
	}

	return mustNormalize(m)
}

// AmmannBeenker returns the octagonal Ammann–Beenker tiling as a cut through
// Z⁴ with unit edge length. The superspace group is the cyclic group C8
// generated by e_k ↦ e_{k+1}, e_3 ↦ −e_0, acting as a 45° rotation in
// physical space and a 135° rotation in perpendicular space.
//
// The single site "V" sits at the origin, which all eight operations fix.
// Its occupation domain, the regular octagon obtained by projecting the unit
// 4-cube, is given as one triangle whose eight C8 images tile the octagon.
// phason shifts the cut (nil means through the origin); a generic phason
// keeps lattice points off domain boundaries.
func AmmannBeenker(phason []float64) *Model {
	const dim = 4
	par := make([][]float64, dim)
	perp := make([][]float64, dim)
	for k := 0; k < dim; k++ {
		a, b := float64(k)*math.Pi/4, 3*float64(k)*math.Pi/4
		par[k] = []float64{math.Cos(a), math.Sin(a)}
		perp[k] = []float64{math.Cos(b), math.Sin(b)}
	}

	// Octagon vertices: walk the zonogon generators sorted by angle.
	gens := [][]float64{perp[0], perp[3], {-perp[2][0], -perp[2][1]}, perp[1]}
	p := []float64{0, 0}
	for _, g := range gens {
		p[0] -= g[0] / 2
		p[1] -= g[1] / 2
	}
	verts := make([][]float64, 0, 2*len(gens))
	for sign := 1.0; sign >= -1; sign -= 2 {
		for _, g := range gens {
			verts = append(verts, []float64{p[0], p[1]})
			p[0] += sign * g[0]
			p[1] += sign * g[1]
		}
	}

	gen := [][]float64{
		{0, 0, 0, -1},
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
	}
	ops := make([]SymmetryOp, 8)
	ops[0] = Identity(dim)
	for k := 1; k < 8; k++ {
		ops[k] = SymmetryOp{Rotation: mulRows(gen, ops[k-1].Rotation), Translation: make([]float64, dim)}
	}

	m := &Model{
		DimPar:      2,
		DimPerp:     2,
		AParCartn:   par,
		APerpCartn:  perp,
		SymmetryOps: ops,
		AtomSites: []AtomSite{{
			Label: "V",
			Fract: make([]float64, dim),
			OccupationDomains: []OccupationDomain{{
				Fragments: []Simplex{{{0, 0}, verts[0], verts[1]}},
			}},
		}},
	}
	if phason != nil {
		m.Phason = append([]float64(nil), phason...)
	}

	return mustNormalize(m)
}

// OctagonFragments returns the eight triangles (origin, P_j, P_{j+1}) of the
// Ammann–Beenker occupation domain. Used to describe the same domain without
// relying on site symmetry.
func OctagonFragments(m *Model) []Simplex {
	tri := m.AtomSites[0].OccupationDomains[0].Fragments[0]
	out := make([]Simplex, 0, 8)
	for k := range m.SymmetryOps {
		rot, err := m.PerpRotation(k)
		if err != nil {
			return nil
		}
		frag := make(Simplex, len(tri))
		for v, x := range tri {
			if frag[v], err = matrix.MatVec(rot, x); err != nil {
				return nil
			}
		}
		out = append(out, frag)
	}

	return out
}

// mustNormalize panics on an invalid catalog model, a programmer error.
func mustNormalize(m *Model) *Model {
	if err := m.Normalize(); err != nil {
		panic("model: catalog: " + err.Error())
	}

	return m
}

func mulRows(a, b [][]float64) [][]float64 {
	out := make([][]float64, len(a))
	for i := range a {
		out[i] = make([]float64, len(b[0]))
		for k := range b {
			for j := range b[0] {
				out[i][j] += a[i][k] * b[k][j]
			}
		}
	}

	return out
}
