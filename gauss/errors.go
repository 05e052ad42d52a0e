// SPDX-License-Identifier: MIT
// Package gauss: sentinel error set.
// Only contract violations are errors; Infinite and Inconsistent systems are
// reported through Result.Kind. Callers match sentinels with errors.Is.

package gauss

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptySystem is returned when the number of equations is below 1.
	ErrEmptySystem = errors.New("gauss: system must have at least one equation")

	// ErrShape is returned when the values do not form an n×(n+1) augmented matrix.
	ErrShape = errors.New("gauss: values do not form an n×(n+1) augmented matrix")

	// ErrNonFinite is returned when the augmented matrix contains NaN or ±Inf.
	ErrNonFinite = errors.New("gauss: NaN or Inf in augmented matrix")
)

// Operation tags for error wrapping.
const (
	opNewSolver = "NewSolver"
	opNewSystem = "NewSystem"
	opEliminate = "Eliminate"
	opSolve     = "Solve"
	opSolveAll  = "SolveAll"
	opResidual  = "Residual"
)

// gaussErrorf wraps err with an operation tag, preserving it for errors.Is.
func gaussErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
