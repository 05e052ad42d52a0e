// SPDX-License-Identifier: MIT

package gauss

import (
	"math"

	"github.com/katalvlaran/gausselim/matrix"
)

// Eliminate reduces an augmented matrix to row-echelon form in place.
//
// Algorithm Outline:
//  1. For p = 0..min(rows, cols)−1:
//  2. Partial pivoting: pick the row r ≥ p with the largest |a[r][p]|;
//     ties keep the upper row (only a strictly greater value moves the choice).
//  3. Swap row r into position p (always executed, a self-swap is a no-op).
//  4. If |a[p][p]| ≤ eps, leave the column alone and go on: rank deficiency
//     then surfaces during back substitution.
//  5. Otherwise, for every row i > p: α = a[i][p]/a[p][p] and
//     a[i][j] −= α·a[p][j] for j = p..cols−1. Columns left of p are not
//     touched; they are zero (within rounding) from earlier steps.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrInvalidDimensions, matrix.ErrBadShape
//     when aug is not an n×(n+1) matrix.
//   - ErrNonFinite (with matrix.ErrNaNInf) when aug holds NaN or ±Inf, which
//     is possible for matrices built WithNoValidateNaNInf.
//
// Complexity:
//
//	Time   = O(n³)
//	Memory = O(1) beyond aug
func Eliminate(aug *matrix.Dense, opts ...Option) error {
	if err := matrix.ValidateAugmented(aug); err != nil {
		return gaussErrorf(opEliminate, err)
	}
	if err := matrix.ValidateFinite(aug); err != nil {
		return gaussErrorf(opEliminate, liftMatrixError(err))
	}
	forwardEliminate(aug, gatherOptions(opts...))

	return nil
}

// forwardEliminate is the unchecked kernel behind Eliminate and Solver.Solve.
func forwardEliminate(aug *matrix.Dense, o Options) {
	rows, cols := aug.Shape()
	var (
		p, i, j, maxRow int
		pivotRow, row   []float64
		pivot, alpha    float64
	)
	for p = 0; p < min(rows, cols); p++ {
		maxRow = pivotRowIndex(aug, p)
		_ = aug.SwapRows(p, maxRow) // p, maxRow < rows

		pivotRow = rowView(aug, p)
		pivot = pivotRow[p]
		if math.Abs(pivot) <= o.eps {
			o.logger.V(1).Info("zero pivot, column skipped", "column", p, "pivot", pivot)
			continue
		}
		o.logger.V(1).Info("pivot selected", "column", p, "row", maxRow, "pivot", pivot)

		for i = p + 1; i < rows; i++ {
			row = rowView(aug, i)
			alpha = row[p] / pivot
			for j = p; j < cols; j++ {
				row[j] -= alpha * pivotRow[j]
			}
		}
	}
}

// pivotRowIndex returns the row in [p, rows) with the largest |a[row][p]|.
// The first maximum wins.
func pivotRowIndex(aug *matrix.Dense, p int) int {
	rows := aug.Rows()
	maxRow := p
	maxAbs := math.Abs(rowView(aug, p)[p])
	var v float64
	for i := p + 1; i < rows; i++ {
		v = math.Abs(rowView(aug, i)[p])
		if v > maxAbs {
			maxRow, maxAbs = i, v
		}
	}

	return maxRow
}

// rowView returns the live slice of row i. Callers only pass indices below
// Rows(), which ValidateAugmented has established.
func rowView(aug *matrix.Dense, i int) []float64 {
	v, _ := aug.RowView(i)

	return v
}
