// SPDX-License-Identifier: MIT

package model_test

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/quasicut/model"
)

const fibonacciJSON = `{
  "dimPar": 1,
  "dimPerp": 1,
  "aParCartn": [[1.618034], [1]],
  "aPerpCartn": [[-1], [1.618034]],
  "atomSites": [{
    "label": "Al",
    "fract": [0, 0],
    "occupationDomains": [{"fragments": [[[-1.309017], [1.309017]]]}]
  }]
}`

func TestDecode_FillsDefaults(t *testing.T) {
	m, err := model.Decode(strings.NewReader(fibonacciJSON))
	require.NoError(t, err)
	assert.Equal(t, 2, m.Dim())

	require.Len(t, m.SymmetryOps, 1)
	assert.Equal(t, model.Identity(2), m.SymmetryOps[0])

	site := m.AtomSites[0]
	assert.Equal(t, []model.OrbitPosition{{Fract: []float64{0, 0}, SymmetryOps: []int{0}}}, site.Orbit)
	assert.Equal(t, []int{0}, site.SiteSymmetryOps)
	assert.Len(t, site.Fragments(), 1)
}

func TestDecode_Errors(t *testing.T) {
	cases := map[string]struct {
		json string
		want error
	}{
		"dim": {
			`{"dimPar":1,"dimPerp":1,"aParCartn":[[1]],"aPerpCartn":[[1]],"atomSites":[]}`,
			model.ErrDimensionMismatch,
		},
		"label": {
			`{"dimPar":1,"dimPerp":0,"aParCartn":[[1]],"atomSites":[{"fract":[0]}]}`,
			model.ErrInvalidModel,
		},
		"fragment": {
			`{"dimPar":1,"dimPerp":1,"aParCartn":[[1],[0]],"aPerpCartn":[[0],[1]],
			  "atomSites":[{"label":"A","fract":[0,0],"occupationDomains":[{"fragments":[[[0]]]}]}]}`,
			model.ErrDimensionMismatch,
		},
		"no domain": {
			`{"dimPar":1,"dimPerp":1,"aParCartn":[[1],[0]],"aPerpCartn":[[0],[1]],
			  "atomSites":[{"label":"A","fract":[0,0]}]}`,
			model.ErrInvalidModel,
		},
		"op index": {
			`{"dimPar":1,"dimPerp":0,"aParCartn":[[1]],
			  "atomSites":[{"label":"A","fract":[0],"siteSymmetryOps":[3]}]}`,
			model.ErrInvalidModel,
		},
		"site op moves site": {
			`{"dimPar":1,"dimPerp":0,"aParCartn":[[1]],
			  "symmetryOps":[{"rotation":[[1]]},{"rotation":[[-1]]}],
			  "atomSites":[{"label":"A","fract":[0.25],"siteSymmetryOps":[1]}]}`,
			model.ErrInvalidModel,
		},
		"orbit op elsewhere": {
			`{"dimPar":1,"dimPerp":0,"aParCartn":[[1]],
			  "symmetryOps":[{"rotation":[[1]]},{"rotation":[[-1]]}],
			  "atomSites":[{"label":"A","fract":[0.25],"orbit":[{"fract":[0.5],"symmetryOps":[1]}]}]}`,
			model.ErrInvalidModel,
		},
		"op not unimodular": {
			`{"dimPar":1,"dimPerp":0,"aParCartn":[[1]],
			  "symmetryOps":[{"rotation":[[2]]}],
			  "atomSites":[{"label":"A","fract":[0]}]}`,
			model.ErrInvalidModel,
		},
		"phason": {
			`{"dimPar":1,"dimPerp":0,"aParCartn":[[1]],"phason":[0,0],
			  "atomSites":[{"label":"A","fract":[0]}]}`,
			model.ErrDimensionMismatch,
		},
		"degenerate": {
			`{"dimPar":1,"dimPerp":1,"aParCartn":[[1],[2]],"aPerpCartn":[[2],[4]],
			  "atomSites":[{"label":"A","fract":[0,0],"occupationDomains":[{"fragments":[[[0],[1]]]}]}]}`,
			model.ErrDegenerateBasis,
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := model.Decode(strings.NewReader(tc.json))
			assert.ErrorIs(t, err, tc.want)
		})
	}

	_, err := model.Decode(strings.NewReader("{"))
	assert.Error(t, err)
}

func TestEncodeDecode_KnownModel(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, model.Encode(&buf, model.Fibonacci()))
	m, err := model.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, model.Fibonacci(), m)
}

func TestWindow(t *testing.T) {
	m := model.Fibonacci()
	w, err := m.Window(10, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, w.MPar.Rows())
	assert.Equal(t, 1, w.MPar.Cols())
	a, _ := w.MPar.At(0, 0)
	assert.InDelta(t, m.AParCartn[0][0]/10, a, 1e-15)
	b, _ := w.MPerp.At(1, 0)
	assert.InDelta(t, m.APerpCartn[1][0]/2, b, 1e-15)

	_, err = m.Window(0, 1)
	assert.ErrorIs(t, err, model.ErrInvalidCutoff)
	_, err = m.Window(1, math.Inf(1))
	assert.ErrorIs(t, err, model.ErrInvalidCutoff)

	// rPerp is irrelevant without a perpendicular space.
	w, err = model.PeriodicChain(1).Window(3, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, w.MPerp.Cols())
}

func TestExpandOrbitAndStabilizer(t *testing.T) {
	m := &model.Model{
		DimPar:     1,
		DimPerp:    0,
		AParCartn:  [][]float64{{1}},
		APerpCartn: [][]float64{{}},
		SymmetryOps: []model.SymmetryOp{
			model.Identity(1),
			{Rotation: [][]float64{{-1}}},
			{Rotation: [][]float64{{1}}, Translation: []float64{0.5}},
		},
		AtomSites: []model.AtomSite{{Label: "A", Fract: []float64{0.25}}},
	}
	require.NoError(t, m.Normalize())

	site := m.AtomSites[0]
	// Inversion and the half translation both send 0.25 to 0.75.
	require.Len(t, site.Orbit, 2)
	assert.InDelta(t, 0.25, site.Orbit[0].Fract[0], 1e-12)
	assert.Equal(t, []int{0}, site.Orbit[0].SymmetryOps)
	assert.InDelta(t, 0.75, site.Orbit[1].Fract[0], 1e-12)
	assert.Equal(t, []int{1, 2}, site.Orbit[1].SymmetryOps)
	assert.Equal(t, []int{0}, site.SiteSymmetryOps)

	assert.Equal(t, []int{0, 1}, m.Stabilizer([]float64{0}))
}

func TestAmmannBeenker_PhasonShiftsCut(t *testing.T) {
	phason := []float64{0.1, 0.2, -0.3, 0.4}
	m := model.AmmannBeenker(phason)
	site := m.AtomSites[0]
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7}, site.SiteSymmetryOps)
	require.Len(t, site.Orbit, 1)
	assert.Equal(t, phason, m.Phason)

	phason[0] = 9
	assert.InDelta(t, 0.1, m.Phason[0], 0)
	assert.Equal(t, []float64{-0.1, -0.2, 0.3, -0.4}, m.Shift(site.Orbit[0].Fract))
	assert.Nil(t, model.AmmannBeenker(nil).Phason)
	assert.Panics(t, func() { model.AmmannBeenker([]float64{0.1}) })
}

func TestPerpRotation_AmmannBeenker(t *testing.T) {
	m := model.AmmannBeenker(nil)
	require.NoError(t, m.Validate())
	require.Len(t, m.SymmetryOps, 8)

	for k := range m.SymmetryOps {
		rot, err := m.PerpRotation(k)
		require.NoError(t, err)
		rows := rot.ToRows()
		angle := 3 * float64(k) * math.Pi / 4
		assert.InDelta(t, math.Cos(angle), rows[0][0], 1e-12, "op %d", k)
		assert.InDelta(t, -math.Sin(angle), rows[0][1], 1e-12, "op %d", k)
		assert.InDelta(t, math.Sin(angle), rows[1][0], 1e-12, "op %d", k)
		assert.InDelta(t, math.Cos(angle), rows[1][1], 1e-12, "op %d", k)

		// Block-diagonal: the operation does not mix par and perp.
		c, err := m.CartesianOp(k)
		require.NoError(t, err)
		full := c.ToRows()
		for i := 0; i < 2; i++ {
			for j := 2; j < 4; j++ {
				assert.InDelta(t, 0, full[i][j], 1e-12)
				assert.InDelta(t, 0, full[j][i], 1e-12)
			}
		}
	}

	_, err := m.PerpRotation(8)
	assert.ErrorIs(t, err, model.ErrInvalidModel)
}

func TestAmmannBeenker_Octagon(t *testing.T) {
	m := model.AmmannBeenker(nil)
	frags := model.OctagonFragments(m)
	require.Len(t, frags, 8)
	r := 1 / (2 * math.Sin(math.Pi/8))
	for _, f := range frags {
		assert.Equal(t, []float64{0, 0}, f[0])
		assert.InDelta(t, r, math.Hypot(f[1][0], f[1][1]), 1e-12)
		assert.InDelta(t, r, math.Hypot(f[2][0], f[2][1]), 1e-12)
		// Adjacent octagon vertices are one edge apart.
		assert.InDelta(t, 1, math.Hypot(f[1][0]-f[2][0], f[1][1]-f[2][1]), 1e-12)
	}
}
