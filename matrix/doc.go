// SPDX-License-Identifier: MIT

// Package matrix provides the dense storage layer used by the gausselim
// solver: a row-major Dense type with safe accessors, the row primitives
// Gaussian elimination is built from, and a handful of validators and
// kernels shared by the solver and its callers.
//
// What it provides:
//
//   - Dense: a contiguous row-major r×c buffer (offset = i*c + j) with
//     bounds-checked At/Set that return sentinel errors instead of panicking.
//   - Row primitives: RowView (no-copy slice of one row), Row (copy) and
//     SwapRows (full-row interchange), which are all elimination needs.
//   - Validators: ValidateNotNil, ValidateVecLen, ValidateAugmented and
//     ValidateFinite as the single source of truth for shape/value checks.
//   - MatVec: y = A·x, used to compute residuals of a candidate solution.
//
// Numeric policy:
//
//	By default Set and the slice constructors reject NaN and ±Inf
//	(DefaultValidateNaNInf). Use WithNoValidateNaNInf to relax it for
//	controlled experiments.
//
// Usage:
//
//	aug, err := matrix.NewDenseFromRows([][]float64{
//	  {9, 3, 4, 7},
//	  {4, 3, 4, 8},
//	  {1, 1, 1, 3},
//	})
//	if err != nil {
//	  // handle ErrInvalidDimensions / ErrBadShape / ErrNaNInf
//	}
//	_ = matrix.ValidateAugmented(aug) // rows ≥ 1, cols == rows+1
//
// Complexity quicksheet:
//   - NewDense: O(r*c); At/Set/RowView: O(1); Row/SwapRows: O(c); Clone: O(r*c);
//     MatVec: O(r*c).
package matrix
