// SPDX-License-Identifier: MIT

package gauss

import (
	"math"

	"github.com/katalvlaran/gausselim/matrix"
)

// Residual returns max_i |(A·x)_i − b_i| for the system A|b.
// It is the acceptance check for a Unique X or an Infinite Particular:
// a correct answer has a residual on the order of the elimination epsilon.
//
// The augmented matrix is multiplied by [x; −1], which yields A·x − b in a
// single MatVec pass.
//
// Errors:
//   - ErrEmptySystem, ErrShape, ErrNonFinite for an invalid sys.
//   - matrix.ErrDimensionMismatch when len(x) != sys.N.
//
// Complexity: O(n²).
func Residual(sys System, x []float64) (float64, error) {
	if err := sys.Validate(); err != nil {
		return 0, gaussErrorf(opResidual, err)
	}
	aug, err := matrix.NewDenseFromSlice(sys.N, sys.N+1, sys.Values)
	if err != nil {
		return 0, gaussErrorf(opResidual, liftMatrixError(err))
	}

	ext := make([]float64, len(x)+1)
	copy(ext, x)
	ext[len(x)] = -1
	diff, err := matrix.MatVec(aug, ext)
	if err != nil {
		return 0, gaussErrorf(opResidual, err)
	}

	worst := matrix.ZeroSum
	for _, d := range diff {
		worst = math.Max(worst, math.Abs(d))
	}

	return worst, nil
}
