// SPDX-License-Identifier: MIT

package lattice_test

import (
	"testing"

	"github.com/katalvlaran/quasicut/lattice"
	"github.com/katalvlaran/quasicut/matrix"
	"github.com/katalvlaran/quasicut/quadform"
)

// benchmarkBall walks the integer points of a radius-r ball in dim dimensions.
func benchmarkBall(b *testing.B, dim int, r float64) {
	id, err := matrix.NewIdentity(dim)
	if err != nil {
		b.Fatal(err)
	}
	g, err := matrix.Scale(id, 1/(r*r))
	if err != nil {
		b.Fatal(err)
	}
	c, err := quadform.Reduce(g)
	if err != nil {
		b.Fatal(err)
	}
	v := make([]float64, dim)
	for i := range v {
		v[i] = 0.1 * float64(i+1)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		e, err := lattice.New(c, v, 1)
		if err != nil {
			b.Fatal(err)
		}
		for e.Next() {
		}
		if err = e.Err(); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkEnumerator_Ball3D walks roughly 4200 points.
func BenchmarkEnumerator_Ball3D(b *testing.B) { benchmarkBall(b, 3, 10) }

// BenchmarkEnumerator_Ball6D walks roughly 2.4e5 points.
func BenchmarkEnumerator_Ball6D(b *testing.B) { benchmarkBall(b, 6, 6) }
