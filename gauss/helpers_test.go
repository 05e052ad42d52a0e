// SPDX-License-Identifier: MIT

package gauss_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/gausselim/gauss"
	"github.com/katalvlaran/gausselim/matrix"
	"github.com/stretchr/testify/require"
)

const delta = 1e-9

// workedRows is the three-equation sample system with x ≈ [-0.2, 4, -0.8].
var workedRows = [][]float64{
	{9, 3, 4, 7},
	{4, 3, 4, 8},
	{1, 1, 1, 3},
}

// mustSolver builds a Solver from rows or fails the test.
func mustSolver(tb testing.TB, rows [][]float64, opts ...gauss.Option) *gauss.Solver {
	tb.Helper()
	s, err := gauss.NewSolverFromRows(rows, opts...)
	require.NoError(tb, err)

	return s
}

// mustSystem flattens rows into a System or fails the test.
func mustSystem(tb testing.TB, rows [][]float64) gauss.System {
	tb.Helper()
	sys, err := gauss.NewSystem(rows)
	require.NoError(tb, err)

	return sys
}

// CompareRows asserts that m holds exactly want.
func CompareRows(tb testing.TB, want [][]float64, m *matrix.Dense) {
	tb.Helper()
	require.Equal(tb, len(want), m.Rows())
	for i, w := range want {
		got, err := m.Row(i)
		require.NoError(tb, err)
		require.Equalf(tb, w, got, "row %d", i)
	}
}

// dominantSystem returns a random strictly diagonally dominant n×(n+1)
// system, which is always non-singular.
func dominantSystem(rng *rand.Rand, n int) [][]float64 {
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = make([]float64, n+1)
		sum := 0.0
		for j := 0; j <= n; j++ {
			rows[i][j] = rng.Float64()*2 - 1
			if j < n {
				if rows[i][j] < 0 {
					sum -= rows[i][j]
				} else {
					sum += rows[i][j]
				}
			}
		}
		rows[i][i] = sum + 1
	}

	return rows
}
