// SPDX-License-Identifier: MIT
package structure_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/quasicut/model"
	"github.com/katalvlaran/quasicut/structure"
)

func TestContains_Triangle(t *testing.T) {
	tri := model.Simplex{{0, 0}, {1, 0}, {0, 1}}
	cases := []struct {
		name string
		x    []float64
		want bool
	}{
		{"interior", []float64{0.2, 0.2}, true},
		{"vertex", []float64{1, 0}, true},
		{"on hypotenuse", []float64{0.5, 0.5}, true},
		{"within tolerance", []float64{-1e-12, 0.5}, true},
		{"beyond tolerance", []float64{-1e-6, 0.5}, false},
		{"outside", []float64{0.6, 0.6}, false},
		{"far", []float64{-3, 7}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := structure.Contains(tri, tc.x, structure.DefaultTolerance)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestContains_IntervalAndPoint(t *testing.T) {
	seg := model.Simplex{{2}, {-1}}
	for x, want := range map[float64]bool{0: true, -1: true, 2: true, 2.1: false, -1.5: false} {
		got, err := structure.Contains(seg, []float64{x}, structure.DefaultTolerance)
		require.NoError(t, err)
		assert.Equal(t, want, got, "x=%g", x)
	}

	// A zero-dimensional simplex contains the zero-dimensional point.
	got, err := structure.Contains(model.Simplex{{}}, []float64{}, 0)
	require.NoError(t, err)
	assert.True(t, got)
}

func TestContains_Tetrahedron(t *testing.T) {
	tet := model.Simplex{{1, 1, 1}, {1, -1, -1}, {-1, 1, -1}, {-1, -1, 1}}
	in, err := structure.Contains(tet, []float64{0, 0, 0}, structure.DefaultTolerance)
	require.NoError(t, err)
	assert.True(t, in)

	out, err := structure.Contains(tet, []float64{1, 1, -1}, structure.DefaultTolerance)
	require.NoError(t, err)
	assert.False(t, out)
}

func TestContains_Errors(t *testing.T) {
	_, err := structure.Contains(model.Simplex{{0, 0}, {1, 1}, {2, 2}}, []float64{0, 0}, 0)
	assert.ErrorIs(t, err, structure.ErrDegenerateFragment)

	_, err = structure.Contains(model.Simplex{{0, 0}, {1, 0}, {0, 1}}, []float64{0}, 0)
	assert.ErrorIs(t, err, model.ErrDimensionMismatch)

	_, err = structure.Contains(nil, nil, 0)
	assert.ErrorIs(t, err, model.ErrDimensionMismatch)
}
