// SPDX-License-Identifier: MIT

package model

import (
	"fmt"
	"math"

	"github.com/katalvlaran/quasicut/matrix"
)

// Window is the cutoff of a generation run: the linear maps that send the
// parallel and perpendicular cutoff spheres to unit spheres,
// MPar = aParCartn/rPar (dim×dimPar) and MPerp = aPerpCartn/rPerp (dim×dimPerp).
type Window struct {
	MPar  *matrix.Dense
	MPerp *matrix.Dense
}

// Window builds the cutoff window for radii rPar and rPerp. rPerp is ignored
// when dimPerp = 0.
//
// Errors: ErrInvalidCutoff, plus any shape error from Validate.
func (m *Model) Window(rPar, rPerp float64) (*Window, error) {
	if !validRadius(rPar) {
		return nil, fmt.Errorf("Window: rPar=%g: %w", rPar, ErrInvalidCutoff)
	}
	if m.DimPerp > 0 && !validRadius(rPerp) {
		return nil, fmt.Errorf("Window: rPerp=%g: %w", rPerp, ErrInvalidCutoff)
	}
	if err := m.validateShapes(); err != nil {
		return nil, fmt.Errorf("Window: %w", err)
	}

	aPar, err := matrix.NewFromRows(m.AParCartn)
	if err != nil {
		return nil, fmt.Errorf("Window: %w", err)
	}
	aPerp, err := matrix.NewFromRows(m.APerpCartn)
	if err != nil {
		return nil, fmt.Errorf("Window: %w", err)
	}
	w := &Window{}
	if w.MPar, err = matrix.Scale(aPar, 1/rPar); err != nil {
		return nil, fmt.Errorf("Window: %w", err)
	}
	if m.DimPerp == 0 {
		w.MPerp = aPerp

		return w, nil
	}
	if w.MPerp, err = matrix.Scale(aPerp, 1/rPerp); err != nil {
		return nil, fmt.Errorf("Window: %w", err)
	}

	return w, nil
}

func validRadius(r float64) bool {
	return r > 0 && !math.IsInf(r, 0)
}
