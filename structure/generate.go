// SPDX-License-Identifier: MIT

package structure

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/quasicut/lattice"
	"github.com/katalvlaran/quasicut/matrix"
	"github.com/katalvlaran/quasicut/model"
)

// Atom is a realised atom: the site label and its physical-space position.
type Atom struct {
	Label    string
	Position []float64
}

// Stats summarises a generation run.
//   - Sites, Positions: atom sites and orbit positions processed.
//   - Candidates: lattice vectors yielded by the window walks.
//   - Placed: atoms emitted.
//   - Overlaps: placed lattice points contained in more than one
//     (rotation, fragment) pair; counted only with WithOverlapCheck.
type Stats struct {
	Sites      int
	Positions  int
	Candidates int
	Placed     int
	Overlaps   int
}

func (s *Stats) add(o Stats) {
	s.Sites += o.Sites
	s.Positions += o.Positions
	s.Candidates += o.Candidates
	s.Placed += o.Placed
	s.Overlaps += o.Overlaps
}

// Generate returns the atoms of m within the parallel cutoff radius rPar.
// MAIN DESCRIPTION:
//   - Each site gets its own perpendicular cutoff, PerpRadius·PerpScale·SafetyScale,
//     and its own reduced window, shared by the walks of its orbit positions.
//   - The domain at orbit position g·site is the site's domain carried by the
//     coset g·H (H the site symmetry); placement is first-match over
//     (coset rotation, fragment) pairs.
//   - Walks and projections are taken relative to the cut, m.Shift(position).
//
// Implementation:
//   - Stage 1: Normalize the model (fills orbits and site symmetry in place) and
//     precompute the inverse perpendicular rotation of every symmetry operation.
//   - Stage 2: process sites through an errgroup limited to Workers; every site
//     owns its enumerators and scratch buffers.
//   - Stage 3: concatenate per-site results in site order.
//
// Errors:
//   - ErrNilModel; model.ErrInvalidCutoff for a bad rPar; model validation errors.
//   - ErrEmptyDomain, ErrDegenerateFragment for unusable occupation domains.
//   - ctx.Err() when the context is cancelled.
func Generate(m *model.Model, rPar float64, opts ...Option) ([]Atom, Stats, error) {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if m == nil {
		return nil, Stats{}, ErrNilModel
	}
	if err := m.Normalize(); err != nil {
		return nil, Stats{}, fmt.Errorf("Generate: %w", err)
	}
	inv := make([][][]float64, len(m.SymmetryOps))
	if m.DimPerp > 0 {
		for k := range m.SymmetryOps {
			r, err := m.PerpRotation(k)
			if err != nil {
				return nil, Stats{}, fmt.Errorf("Generate: %w", err)
			}
			ri, err := matrix.Inverse(r)
			if err != nil {
				return nil, Stats{}, fmt.Errorf("Generate: op %d: %w", k, err)
			}
			inv[k] = ri.ToRows()
		}
	}

	results := make([]siteResult, len(m.AtomSites))
	g, ctx := errgroup.WithContext(o.Ctx)
	g.SetLimit(o.Workers)
	for s := range m.AtomSites {
		g.Go(func() error {
			var err error
			results[s], err = generateSite(ctx, m, s, rPar, inv, o)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, Stats{}, fmt.Errorf("Generate: %w", err)
	}

	var total Stats
	n := 0
	for _, r := range results {
		n += len(r.atoms)
	}
	atoms := make([]Atom, 0, n)
	for _, r := range results {
		atoms = append(atoms, r.atoms...)
		total.add(r.stats)
	}

	return atoms, total, nil
}

// PerpRadius returns the largest Euclidean norm of any fragment vertex of
// the site, the radius of the perpendicular sphere containing its domain.
func PerpRadius(site *model.AtomSite) float64 {
	var r float64
	for _, frag := range site.Fragments() {
		for _, v := range frag {
			if len(v) == 0 {
				continue
			}
			if n := floats.Norm(v, 2); n > r {
				r = n
			}
		}
	}

	return r
}

type siteResult struct {
	atoms []Atom
	stats Stats
}

// placer holds the per-site placement state: projected bases, the rotations
// of the current orbit position, fragment tests and scratch.
type placer struct {
	par         *matrix.Dense
	aPerp       [][]float64
	inv         [][][]float64 // inverse perpendicular rotation per operation
	siteOps     []int
	rots        [][][]float64
	frags       []fragment
	tol         float64
	overlap     bool

	y, perp, rotated []float64
}

func generateSite(ctx context.Context, m *model.Model, idx int, rPar float64, inv [][][]float64, o Options) (siteResult, error) {
	start := time.Now()
	site := &m.AtomSites[idx]
	res := siteResult{stats: Stats{Sites: 1}}

	par, err := matrix.NewFromRows(m.AParCartn)
	if err != nil {
		return res, fmt.Errorf("site %q: %w", site.Label, err)
	}
	p := &placer{
		par:     par,
		aPerp:   m.APerpCartn,
		inv:     inv,
		siteOps: site.SiteSymmetryOps,
		tol:     o.Tolerance,
		overlap: o.OverlapCheck,
		y:       make([]float64, m.Dim()),
		perp:    make([]float64, m.DimPerp),
		rotated: make([]float64, m.DimPerp),
	}

	var rPerp float64
	if m.DimPerp > 0 {
		rmax := PerpRadius(site)
		if rmax == 0 {
			return res, fmt.Errorf("site %q: %w", site.Label, ErrEmptyDomain)
		}
		rPerp = rmax * o.PerpScale * o.SafetyScale
		for f, s := range site.Fragments() {
			frag, err := newFragment(s)
			if err != nil {
				return res, fmt.Errorf("site %q fragment %d: %w", site.Label, f, err)
			}
			p.frags = append(p.frags, frag)
		}
	}

	win, err := m.Window(rPar, rPerp)
	if err != nil {
		return res, fmt.Errorf("site %q: %w", site.Label, err)
	}
	lw, err := lattice.ReduceWindow(win.MPar, win.MPerp)
	if err != nil {
		return res, fmt.Errorf("site %q: %w", site.Label, err)
	}

	for _, pos := range site.Orbit {
		res.stats.Positions++
		v := m.Shift(pos.Fract)
		p.position(pos.SymmetryOps)
		e, err := lattice.NewWindow(lw, v, lattice.WithContext(ctx), lattice.WithEpsilon(o.Epsilon))
		if err != nil {
			return res, fmt.Errorf("site %q: %w", site.Label, err)
		}
		for e.Next() {
			res.stats.Candidates++
			matches := p.match(e.Vector(), v)
			if matches == 0 {
				continue
			}
			if matches > 1 {
				res.stats.Overlaps++
			}
			r, err := matrix.VecMat(p.y, p.par)
			if err != nil {
				return res, fmt.Errorf("site %q: %w", site.Label, err)
			}
			res.atoms = append(res.atoms, Atom{Label: site.Label, Position: r})
			res.stats.Placed++
		}
		if err = e.Err(); err != nil {
			return res, fmt.Errorf("site %q: %w", site.Label, err)
		}
	}

	o.Logger.Debug("site generated",
		"site", site.Label,
		"positions", res.stats.Positions,
		"candidates", res.stats.Candidates,
		"placed", res.stats.Placed,
		"overlaps", res.stats.Overlaps,
		"rPerp", rPerp,
		"elapsed", time.Since(start))

	return res, nil
}

// position selects the rotations of an orbit position reached by ops:
// the inverses of g·h for g in ops and h in the site symmetry, deduplicated,
// in (g, h) order. A position without ops is the site itself.
func (p *placer) position(ops []int) {
	p.rots = p.rots[:0]
	if len(p.perp) == 0 {
		return
	}
	if len(ops) == 0 {
		for _, h := range p.siteOps {
			p.addRotation(p.inv[h])
		}
		return
	}
	for _, g := range ops {
		for _, h := range p.siteOps {
			// (P_g·P_h)⁻¹ = P_h⁻¹·P_g⁻¹
			p.addRotation(mulRows(p.inv[h], p.inv[g]))
		}
	}
}

func (p *placer) addRotation(r [][]float64) {
	for _, q := range p.rots {
		if sameRows(q, r, rotationTolerance) {
			return
		}
	}
	p.rots = append(p.rots, r)
}

// match sets y = n+v, projects it to perpendicular space and counts the
// (rotation, fragment) pairs containing it. Without the overlap check it
// stops at the first match.
func (p *placer) match(n lattice.Vector, v []float64) int {
	var i, j int
	for i = range p.y {
		p.y[i] = float64(n[i]) + v[i]
	}
	if len(p.perp) == 0 {
		return 1
	}
	for j = range p.perp {
		p.perp[j] = 0
	}
	for i = range p.y {
		for j = range p.perp {
			p.perp[j] -= p.y[i] * p.aPerp[i][j]
		}
	}

	count := 0
	for _, rot := range p.rots {
		for i = range p.rotated {
			p.rotated[i] = floats.Dot(rot[i], p.perp)
		}
		for _, f := range p.frags {
			if !f.contains(p.rotated, p.tol) {
				continue
			}
			count++
			if !p.overlap {
				return count
			}
		}
	}

	return count
}

// rotationTolerance identifies coset products that are the same rotation.
const rotationTolerance = 1e-9

func mulRows(a, b [][]float64) [][]float64 {
	out := make([][]float64, len(a))
	for i := range a {
		out[i] = make([]float64, len(b[0]))
		for k := range b {
			floats.AddScaled(out[i], a[i][k], b[k])
		}
	}

	return out
}

func sameRows(a, b [][]float64, tol float64) bool {
	for i := range a {
		if !floats.EqualApprox(a[i], b[i], tol) {
			return false
		}
	}

	return true
}
