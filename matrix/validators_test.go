// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/quasicut/matrix"
)

func TestValidateNotNil(t *testing.T) {
	var typedNil *matrix.Dense
	assert.ErrorIs(t, matrix.ValidateNotNil(nil), matrix.ErrNilMatrix)
	assert.ErrorIs(t, matrix.ValidateNotNil(typedNil), matrix.ErrNilMatrix)
	assert.NoError(t, matrix.ValidateNotNil(MustDense(t, 1, 1)))
}

func TestValidateSquareAndShape(t *testing.T) {
	assert.ErrorIs(t, matrix.ValidateSquare(MustDense(t, 2, 3)), matrix.ErrDimensionMismatch)
	assert.NoError(t, matrix.ValidateSquare(MustDense(t, 3, 3)))
	assert.ErrorIs(t, matrix.ValidateSameShape(MustDense(t, 2, 3), MustDense(t, 3, 2)), matrix.ErrDimensionMismatch)
}

func TestValidateVecLen(t *testing.T) {
	assert.NoError(t, matrix.ValidateVecLen(nil, 0))
	assert.ErrorIs(t, matrix.ValidateVecLen(nil, 2), matrix.ErrNilMatrix)
	assert.ErrorIs(t, matrix.ValidateVecLen([]float64{1}, 2), matrix.ErrDimensionMismatch)
}

func TestValidateSymmetric(t *testing.T) {
	m := MustFromRows(t, [][]float64{{1, 2}, {2 + 1e-12, 1}})
	assert.NoError(t, matrix.ValidateSymmetric(m, 1e-9))
	assert.ErrorIs(t, matrix.ValidateSymmetric(m, 0), matrix.ErrAsymmetry)
	assert.ErrorIs(t, matrix.ValidateSymmetric(hide{m}, 0), matrix.ErrAsymmetry)
	assert.ErrorIs(t, matrix.ValidateSymmetric(m, math.NaN()), matrix.ErrNaNInf)
}

func TestOptions_PanicOnInvalid(t *testing.T) {
	assert.Panics(t, func() { matrix.WithEpsilon(-1) })
	assert.Panics(t, func() { matrix.WithPivotTolerance(math.Inf(1)) })
	o := matrix.NewOptions(matrix.WithEpsilon(1e-6))
	assert.Equal(t, 1e-6, o.Epsilon())
	assert.Equal(t, matrix.DefaultPivotTolerance, o.PivotTolerance())
}
