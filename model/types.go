// SPDX-License-Identifier: MIT

package model

// Model is a superspace description of a quasicrystal.
//
// Row i of AParCartn and APerpCartn is the parallel and perpendicular image of
// the i-th superspace basis vector, so a fractional coordinate y maps to
// r_par = AParCartnᵀ·y and r_perp = APerpCartnᵀ·y.
//
// Phason is the superspace point the physical cut passes through (nil means
// the origin). Shifting it moves the cut, not the atom sites, so it leaves
// every site symmetry intact.
type Model struct {
	DimPar      int          `json:"dimPar"`
	DimPerp     int          `json:"dimPerp"`
	AParCartn   [][]float64  `json:"aParCartn"`
	APerpCartn  [][]float64  `json:"aPerpCartn"`
	SymmetryOps []SymmetryOp `json:"symmetryOps,omitempty"`
	AtomSites   []AtomSite   `json:"atomSites"`
	Phason      []float64    `json:"phason,omitempty"`
}

// SymmetryOp is a superspace operation y ↦ Rotation·y + Translation on
// fractional coordinates.
type SymmetryOp struct {
	Rotation    [][]float64 `json:"rotation"`
	Translation []float64   `json:"translation,omitempty"`
}

// OrbitPosition is one symmetry-equivalent position of a site, tagged with
// the operations that map the site onto it. The occupation domain at the
// position is the site's domain carried by those operations.
type OrbitPosition struct {
	Fract       []float64 `json:"fract"`
	SymmetryOps []int     `json:"symmetryOps,omitempty"`
}

// Simplex is a fragment of an occupation domain: dimPerp+1 vertices in
// perpendicular space, each of length dimPerp.
type Simplex [][]float64

// OccupationDomain is a convex acceptance region given as simplex fragments.
type OccupationDomain struct {
	Fragments []Simplex `json:"fragments"`
}

// AtomSite is one independent atom position of the superspace model.
type AtomSite struct {
	Label             string             `json:"label"`
	Fract             []float64          `json:"fract"`
	Orbit             []OrbitPosition    `json:"orbit,omitempty"`
	SiteSymmetryOps   []int              `json:"siteSymmetryOps,omitempty"`
	OccupationDomains []OccupationDomain `json:"occupationDomains,omitempty"`
}

// Shift returns pos − Phason, the superspace offset of an orbit position
// relative to the cut.
func (m *Model) Shift(pos []float64) []float64 {
	out := append([]float64(nil), pos...)
	for i := range m.Phason {
		out[i] -= m.Phason[i]
	}

	return out
}

// Dim returns the superspace dimension dimPar + dimPerp.
func (m *Model) Dim() int { return m.DimPar + m.DimPerp }

// Fragments returns every fragment of every occupation domain of the site,
// in declaration order.
func (s *AtomSite) Fragments() []Simplex {
	var out []Simplex
	for _, d := range s.OccupationDomains {
		out = append(out, d.Fragments...)
	}

	return out
}
