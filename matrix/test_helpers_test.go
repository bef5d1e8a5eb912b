// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures and utilities for kernel tests.
//   • Every helper writes all elements before they are read.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/gcm/matrix"
	"github.com/stretchr/testify/require"
)

// hide wraps any Matrix to hide its concrete type from type assertions,
// forcing the generic (non-*Dense) kernel paths.
type hide struct{ matrix.Matrix }

// MustFromRows builds a matrix from literals and releases it at test cleanup.
func MustFromRows(t testing.TB, rows [][]float32, opts ...matrix.Option) *matrix.Dense {
	t.Helper()
	m, err := matrix.FromRows(rows, opts...)
	require.NoError(t, err)
	t.Cleanup(func() { _ = m.Release() })

	return m
}

// MustRandom allocates an r×c matrix filled with small integers in [-8, 8]
// from a seeded source. Integer values keep float32/float64 comparisons exact.
func MustRandom(t testing.TB, r, c int, seed int64) *matrix.Dense {
	t.Helper()
	m, err := matrix.New(r, c)
	require.NoError(t, err)
	t.Cleanup(func() { _ = m.Release() })

	rng := rand.New(rand.NewSource(seed))
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			require.NoError(t, m.Set(i, j, float32(rng.Intn(17)-8)))
		}
	}

	return m
}

// MustAt reads (i,j) or fails the test.
func MustAt(t testing.TB, m matrix.Matrix, i, j int) float32 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// Grid reads every element of m into a [][]float32.
func Grid(t testing.TB, m matrix.Matrix) [][]float32 {
	t.Helper()
	out := make([][]float32, m.Rows())
	for i := range out {
		out[i] = make([]float32, m.Cols())
		for j := range out[i] {
			out[i][j] = MustAt(t, m, i, j)
		}
	}

	return out
}

// RequireGrid asserts the exact shape and values of m.
func RequireGrid(t testing.TB, want [][]float32, m matrix.Matrix) {
	t.Helper()
	require.Equal(t, len(want), m.Rows(), "rows")
	if len(want) > 0 {
		require.Equal(t, len(want[0]), m.Cols(), "cols")
	}
	require.Equal(t, want, Grid(t, m))
}
