// SPDX-License-Identifier: MIT
package quadform_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/quasicut/matrix"
	"github.com/katalvlaran/quasicut/quadform"
)

func TestInstance_OneDimensional(t *testing.T) {
	// (2x)² ≤ 1+eps → x ∈ [−0.5, 0.5].
	c, err := quadform.Reduce(mustForm(t, [][]float64{{4}}))
	require.NoError(t, err)
	in, err := c.Instance([]float64{0}, 1, quadform.DefaultEpsilon)
	require.NoError(t, err)
	assert.InDelta(t, 1.00001, in.Bound(), tol)

	st := in.Interval(0, nil, 0, true)
	assert.InDelta(t, -0.5, st.Interval.Lo, 1e-5)
	assert.InDelta(t, 0.5, st.Interval.Hi, 1e-5)
	lo, hi, ok := st.Interval.IntRange()
	require.True(t, ok)
	assert.Equal(t, 0, lo)
	assert.Equal(t, 0, hi)
}

func TestInstance_TranslationConstants(t *testing.T) {
	c, err := quadform.Reduce(mustForm(t, [][]float64{{2, 1}, {1, 3}}))
	require.NoError(t, err)
	v := []float64{0.25, -0.5}
	in, err := c.Instance(v, 2, 0)
	require.NoError(t, err)
	assert.InDelta(t, -0.25, in.VC(0), tol)
	// VC[1] = VF[1]·v_0 − v_1 = −1/3·0.25 + 0.5
	assert.InDelta(t, -1.0/12.0+0.5, in.VC(1), tol)
	assert.True(t, in.Bounded(1))
	assert.Same(t, c, in.Cascade())
}

func TestInstance_ExactAndRecomputedAgree(t *testing.T) {
	g := mustForm(t, [][]float64{
		{4, 1, 0.5},
		{1, 3, -0.7},
		{0.5, -0.7, 2},
	})
	c, err := quadform.Reduce(g)
	require.NoError(t, err)
	v := []float64{0.1, -0.2, 0.35}
	in, err := c.Instance(v, 9, quadform.DefaultEpsilon)
	require.NoError(t, err)

	x := []int{1, -1, 0}
	q := 0.0
	for i := 0; i < 3; i++ {
		exact := in.Interval(i, x, q, true)
		fresh := in.Interval(i, x, math.NaN(), false)
		if i > 0 {
			assert.InDelta(t, exact.Base, fresh.Base, 1e-10, "level %d", i)
		}
		assert.InDelta(t, exact.Centre, fresh.Centre, tol)
		q = in.Value(i, exact, x[i])
	}

	y := []float64{1.1, -1.2, 0.35}
	want, err := c.Eval(y)
	require.NoError(t, err)
	assert.InDelta(t, want, q, 1e-10)
}

func TestInstance_SemidefiniteRecompute(t *testing.T) {
	g, err := matrix.Gram(mustForm(t, [][]float64{{1}, {2}}))
	require.NoError(t, err)
	c, err := quadform.Reduce(g, quadform.WithSemidefinite())
	require.NoError(t, err)
	in, err := c.Instance([]float64{0, 0}, 1, quadform.DefaultEpsilon)
	require.NoError(t, err)

	st := in.Interval(0, nil, 0, true)
	assert.True(t, st.Interval.Unbounded)

	// With x0 = 3 the feasible x1 satisfy (3 + 2·x1)² ≤ 1.
	st = in.Interval(1, []int{3, 0}, 0, false)
	assert.InDelta(t, -1.5, st.Centre, tol)
	assert.InDelta(t, 0.0, st.Base, 1e-12)
	lo, hi, ok := st.Interval.IntRange()
	require.True(t, ok)
	assert.Equal(t, -2, lo)
	assert.Equal(t, -1, hi)
}

func TestInstance_Errors(t *testing.T) {
	c, err := quadform.Reduce(mustForm(t, [][]float64{{4}}))
	require.NoError(t, err)
	_, err = c.Instance([]float64{0, 0}, 1, 0)
	assert.ErrorIs(t, err, quadform.ErrDimensionMismatch)
	_, err = c.Instance([]float64{0}, -1, 0)
	assert.ErrorIs(t, err, quadform.ErrInvalidBound)
	_, err = c.Instance([]float64{0}, 1, math.NaN())
	assert.ErrorIs(t, err, quadform.ErrInvalidBound)
	_, err = c.Eval([]float64{1, 2})
	assert.ErrorIs(t, err, quadform.ErrDimensionMismatch)
}
