// SPDX-License-Identifier: MIT

package quadform

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/quasicut/matrix"
)

// Level is the reduced form seen by the search when coordinates 0..i-1 are
// fixed and coordinates i+1..dim-1 are minimised out.
//
//   - VV: reduced diagonal, the curvature of the parabola in y_i.
//   - VF: linear coupling; the vertex of the parabola is VF·y_F (len(VF) == i).
//   - FF: reduced form over y_F (i×i); nil for i == 0.
//   - Bounded: false when the level does not constrain y_i (semidefinite mode).
type Level struct {
	VV      float64
	VF      []float64
	FF      *matrix.Dense
	Bounded bool

	ff []float64 // flat row-major copy of FF for the hot path
}

// Cascade is the ordered list of levels derived from one quadratic form.
type Cascade struct {
	dim    int
	form   *matrix.Dense
	levels []Level
}

// Reduce decomposes the symmetric form g into a Cascade.
// MAIN DESCRIPTION:
//   - For every level i, the eliminated block G_DD (D = i+1..dim-1) is LU
//     factorised and the Schur complement S over coordinates 0..i is formed:
//     S = G_{KK} − G_{KD}·G_DD⁻¹·G_{DK}, K = 0..i.
//   - VV[i] = S[i,i], VF[i] = −S[F,i]/VV[i], FF[i] = S[F,F].
//
// Implementation:
//   - Stage 1: validate g (square, symmetric). In strict mode require
//     positive-definiteness up front (Cholesky).
//   - Stage 2: per level, solve G_DD·X = G_DK and subtract G_KD·X from G_KK.
//   - Stage 3: extract VV/VF/FF; classify the level as bounded or not.
//
// Errors:
//   - ErrDimensionMismatch for an empty form.
//   - matrix.ErrDimensionMismatch / matrix.ErrAsymmetry from validation.
//   - ErrNotPositiveDefinite (strict mode) for singular blocks or VV ≤ tol·scale;
//     the underlying matrix error is wrapped as well.
//   - ErrNotPositiveDefinite (semidefinite mode) only when the last level,
//     which eliminates nothing, is flat.
//
// Complexity:
//   - Time O(dim⁴) once per form, Space O(dim³).
func Reduce(g matrix.Matrix, opts ...Option) (*Cascade, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := matrix.ValidateSquare(g); err != nil {
		return nil, fmt.Errorf("Reduce: %w", err)
	}
	dim := g.Rows()
	if dim == 0 {
		return nil, fmt.Errorf("Reduce: empty form: %w", ErrDimensionMismatch)
	}
	mopts := o.matrixOpts
	if o.semidefinite {
		mopts = append([]matrix.Option{matrix.WithPivotTolerance(o.tol)}, mopts...)
	}
	mo := matrix.NewOptions(mopts...)
	if err := matrix.ValidateSymmetric(g, mo.Epsilon()); err != nil {
		return nil, fmt.Errorf("Reduce: %w", err)
	}
	if !o.semidefinite {
		if err := matrix.RequirePositiveDefinite(g, mopts...); err != nil {
			return nil, fmt.Errorf("Reduce: %w: %w", ErrNotPositiveDefinite, err)
		}
	}

	form, ok := g.(*matrix.Dense)
	if ok {
		form = form.Clone().(*matrix.Dense)
	} else {
		var err error
		if form, err = matrix.NewFromRows(toRows(g)); err != nil {
			return nil, fmt.Errorf("Reduce: %w", err)
		}
	}

	var scale float64
	for i := 0; i < dim; i++ {
		v, _ := form.At(i, i)
		scale = math.Max(scale, math.Abs(v))
	}
	threshold := o.tol * scale

	c := &Cascade{dim: dim, form: form, levels: make([]Level, dim)}
	var err error
	for i := 0; i < dim; i++ {
		if c.levels[i], err = reduceLevel(form, i, threshold, mopts); err == nil {
			continue
		}
		if !o.semidefinite || i == dim-1 {
			return nil, fmt.Errorf("Reduce: level %d: %w: %w", i, ErrNotPositiveDefinite, err)
		}
	}

	return c, nil
}

// errFlat reports a reduced diagonal at or below the threshold.
var errFlat = errors.New("reduced diagonal is not positive")

// reduceLevel computes level i of the cascade of form.
func reduceLevel(form *matrix.Dense, i int, threshold float64, mopts []matrix.Option) (Level, error) {
	dim := form.Rows()
	keep := seq(0, i+1)
	elim := seq(i+1, dim)

	s, err := form.Induced(keep, keep)
	if err != nil {
		return Level{}, err
	}
	if len(elim) > 0 {
		gdd, err := form.Induced(elim, elim)
		if err != nil {
			return Level{}, err
		}
		gdk, err := form.Induced(elim, keep)
		if err != nil {
			return Level{}, err
		}
		gkd, err := form.Induced(keep, elim)
		if err != nil {
			return Level{}, err
		}
		lu, err := matrix.Factorize(gdd, mopts...)
		if err != nil {
			return Level{}, err
		}
		x, err := lu.SolveMatrix(gdk)
		if err != nil {
			return Level{}, err
		}
		corr, err := matrix.Mul(gkd, x)
		if err != nil {
			return Level{}, err
		}
		if s, err = matrix.Sub(s, corr); err != nil {
			return Level{}, err
		}
	}

	vv, _ := s.At(i, i)
	if vv <= threshold {
		return Level{}, fmt.Errorf("VV=%g: %w", vv, errFlat)
	}
	lvl := Level{VV: vv, VF: make([]float64, i), Bounded: true}
	var j int
	var a float64
	for j = 0; j < i; j++ {
		a, _ = s.At(j, i)
		lvl.VF[j] = -a / vv
	}
	if i > 0 {
		fixed := seq(0, i)
		if lvl.FF, err = s.Induced(fixed, fixed); err != nil {
			return Level{}, err
		}
		lvl.ff = make([]float64, 0, i*i)
		for _, row := range lvl.FF.ToRows() {
			lvl.ff = append(lvl.ff, row...)
		}
	}

	return lvl, nil
}

// Dim returns the number of coordinates of the form.
func (c *Cascade) Dim() int { return c.dim }

// Level returns level i. The returned value shares its slices with the
// cascade and must not be modified.
func (c *Cascade) Level(i int) Level { return c.levels[i] }

// BoundedLevels returns the number of levels that constrain their coordinate.
func (c *Cascade) BoundedLevels() int {
	n := 0
	for i := range c.levels {
		if c.levels[i].Bounded {
			n++
		}
	}

	return n
}

// Form returns a copy of the reduced form.
func (c *Cascade) Form() *matrix.Dense { return c.form.Clone().(*matrix.Dense) }

// Eval returns Q(y) = yᵀ·G·y.
func (c *Cascade) Eval(y []float64) (float64, error) {
	if len(y) != c.dim {
		return 0, fmt.Errorf("Eval: len(y)=%d, dim=%d: %w", len(y), c.dim, ErrDimensionMismatch)
	}

	return c.form.QuadForm(y)
}

func seq(from, to int) []int {
	out := make([]int, 0, to-from)
	for k := from; k < to; k++ {
		out = append(out, k)
	}

	return out
}

func toRows(m matrix.Matrix) [][]float64 {
	rows := make([][]float64, m.Rows())
	for i := range rows {
		rows[i] = make([]float64, m.Cols())
		for j := range rows[i] {
			rows[i][j], _ = m.At(i, j)
		}
	}

	return rows
}
