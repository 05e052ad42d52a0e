// SPDX-License-Identifier: MIT

package gauss

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/gausselim/matrix"
)

// Solver owns a private copy of one augmented matrix and solves it once.
//
// Lifecycle:
//   - NewSolver validates and copies the input; nothing is computed yet.
//   - The first Solve reduces the copy in place and caches the Result.
//   - Later Solve calls return the cached Result without recomputation.
//
// A Solver is not safe for concurrent use; SolveAll gives every system its own.
type Solver struct {
	n      int
	aug    *matrix.Dense
	opts   Options
	solved bool
	result Result
}

// NewSolver builds a Solver for n equations from n·(n+1) row-major values.
// The values are copied; later changes to the slice do not affect the Solver.
//
// Errors:
//   - ErrEmptySystem when n < 1.
//   - ErrShape when len(values) != n·(n+1).
//   - ErrNonFinite (together with matrix.ErrNaNInf) when a value is NaN or ±Inf.
//
// Complexity: O(n²) time and memory.
func NewSolver(n int, values []float64, opts ...Option) (*Solver, error) {
	sys := System{N: n, Values: values}
	if err := sys.Validate(); err != nil {
		return nil, gaussErrorf(opNewSolver, err)
	}
	aug, err := matrix.NewDenseFromSlice(n, n+1, values)
	if err != nil {
		return nil, gaussErrorf(opNewSolver, liftMatrixError(err))
	}

	return &Solver{n: n, aug: aug, opts: gatherOptions(opts...)}, nil
}

// NewSolverFromRows is NewSolver for an augmented matrix given as rows.
func NewSolverFromRows(rows [][]float64, opts ...Option) (*Solver, error) {
	sys, err := NewSystem(rows)
	if err != nil {
		return nil, gaussErrorf(opNewSolver, err)
	}

	return NewSolver(sys.N, sys.Values, opts...)
}

// N returns the number of equations.
func (s *Solver) N() int { return s.n }

// Solved reports whether Solve has already run.
func (s *Solver) Solved() bool { return s.solved }

// Solve runs forward elimination and back substitution on the first call
// and returns the classified Result. The returned slices are owned by the
// caller.
func (s *Solver) Solve() Result {
	if !s.solved {
		forwardEliminate(s.aug, s.opts)
		if lv := s.opts.logger.V(2); lv.Enabled() {
			lv.Info("row echelon form", "matrix", s.aug.String())
		}
		s.result = classify(backSubstitute(s.aug, s.opts.eps), s.opts.policy)
		s.solved = true
		s.opts.logger.V(1).Info("system solved", "n", s.n, "kind", s.result.Kind.String())
	}

	return s.result.clone()
}

// Echelon returns a copy of the working matrix: the input before Solve, the
// row-echelon form after it.
func (s *Solver) Echelon() *matrix.Dense {
	return s.aug.Clone().(*matrix.Dense)
}

// Solve is the one-shot form of NewSolver(...).Solve().
func Solve(sys System, opts ...Option) (Result, error) {
	s, err := NewSolver(sys.N, sys.Values, opts...)
	if err != nil {
		return Result{}, gaussErrorf(opSolve, err)
	}

	return s.Solve(), nil
}

// liftMatrixError adds the gauss sentinel matching a matrix construction error.
func liftMatrixError(err error) error {
	switch {
	case errors.Is(err, matrix.ErrNaNInf):
		return fmt.Errorf("%w: %w", ErrNonFinite, err)
	case errors.Is(err, matrix.ErrBadShape), errors.Is(err, matrix.ErrInvalidDimensions):
		return fmt.Errorf("%w: %w", ErrShape, err)
	default:
		return err
	}
}
