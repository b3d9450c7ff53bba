// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures and utilities for kernels.
//   • Keep random data seeded so failures reproduce bit-for-bit.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/cofactor/matrix"
	"github.com/stretchr/testify/require"
)

// inverseTol is the per-cell tolerance of a 3-decimal rounded inverse.
const inverseTol = 1e-3

// MustMatrix builds a *Matrix from rows or fails the test.
func MustMatrix(tb testing.TB, rows [][]int) *matrix.Matrix {
	tb.Helper()
	m, err := matrix.New(rows)
	require.NoError(tb, err, "New(%v)", rows)

	return m
}

// MustIdentity returns I_n or fails the test.
func MustIdentity(tb testing.TB, n int) *matrix.Matrix {
	tb.Helper()
	m, err := matrix.NewIdentity(n)
	require.NoError(tb, err, "NewIdentity(%d)", n)

	return m
}

// RandomMatrix returns an r×c matrix with cells uniformly drawn from
// [lo, hi] using a private seeded source.
func RandomMatrix(tb testing.TB, r, c int, seed int64, lo, hi int) *matrix.Matrix {
	tb.Helper()
	rng := rand.New(rand.NewSource(seed))
	rows := make([][]int, r)
	for i := range rows {
		rows[i] = make([]int, c)
		for j := range rows[i] {
			rows[i][j] = lo + rng.Intn(hi-lo+1)
		}
	}

	return MustMatrix(tb, rows)
}

// RequireDenseEqual asserts got has exactly the cells in want.
func RequireDenseEqual(tb testing.TB, want [][]float64, got *matrix.Dense) {
	tb.Helper()
	require.NotNil(tb, got)
	require.Equal(tb, want, got.Data())
}

// flatten returns m's cells in row-major order as float64 (gonum layout).
func flatten(m *matrix.Matrix) []float64 {
	data := m.Data()
	out := make([]float64, 0, m.Rows()*m.Cols())
	for _, row := range data {
		for _, v := range row {
			out = append(out, float64(v))
		}
	}

	return out
}

// fixture 3×3 matrices shared across files.
var (
	singular3 = [][]int{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}
	regular3  = [][]int{{1, 3, 3}, {4, 5, 6}, {7, 8, 9}} // det = 6
	unimod3   = [][]int{{1, 2, 3}, {0, 1, 4}, {5, 6, 0}} // det = 1
)
