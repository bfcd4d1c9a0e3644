// SPDX-License-Identifier: MIT

package lattice_test

import (
	"fmt"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/quasicut/lattice"
	"github.com/katalvlaran/quasicut/matrix"
	"github.com/katalvlaran/quasicut/quadform"
)

func mustDense(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewFromRows(rows)
	require.NoError(t, err)

	return m
}

func mustGram(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	g, err := matrix.Gram(mustDense(t, rows))
	require.NoError(t, err)

	return g
}

func mustReduce(t *testing.T, g matrix.Matrix, opts ...quadform.Option) *quadform.Cascade {
	t.Helper()
	c, err := quadform.Reduce(g, opts...)
	require.NoError(t, err)

	return c
}

func collect(t *testing.T, e *lattice.Enumerator) []lattice.Vector {
	t.Helper()
	out, err := e.Collect()
	require.NoError(t, err)

	return out
}

// keys returns the sorted string keys of vs and fails on duplicates.
func keys(t *testing.T, vs []lattice.Vector) []string {
	t.Helper()
	seen := make(map[string]bool, len(vs))
	out := make([]string, 0, len(vs))
	for _, v := range vs {
		k := fmt.Sprint([]int(v))
		if seen[k] {
			t.Fatalf("duplicate vector %s", k)
		}
		seen[k] = true
		out = append(out, k)
	}
	sort.Strings(out)

	return out
}

// intersectKeys keeps the keys present in both sorted slices.
func intersectKeys(a, b []string) []string {
	in := make(map[string]bool, len(b))
	for _, k := range b {
		in[k] = true
	}
	var out []string
	for _, k := range a {
		if in[k] {
			out = append(out, k)
		}
	}

	return out
}

// requireInsideBox fails when a vector touches the box boundary, meaning the
// reference scan may have been truncated.
func requireInsideBox(t *testing.T, vs []lattice.Vector, box int) {
	t.Helper()
	for _, v := range vs {
		for _, x := range v {
			if x <= -box || x >= box {
				t.Fatalf("vector %v reaches box %d", v, box)
			}
		}
	}
}
