// SPDX-License-Identifier: MIT

// Package gauss: result and input types.
package gauss

import "fmt"

// Kind classifies the outcome of a solve.
type Kind int

const (
	// Unique: exactly one solution exists; Result.X is set.
	Unique Kind = iota

	// Infinite: the system is consistent and has free variables.
	Infinite

	// Inconsistent: no solution exists.
	Inconsistent
)

// String returns the human-readable name of k.
func (k Kind) String() string {
	switch k {
	case Unique:
		return "unique"
	case Infinite:
		return "infinite"
	case Inconsistent:
		return "inconsistent"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Result is the tagged outcome of Solve.
//
// Fields by Kind:
//   - Unique: X holds the solution vector (len n).
//   - Infinite: Free lists free-variable indices in ascending order and
//     Particular holds one solution with every free variable at 0.
//   - Inconsistent: all slices are nil.
type Result struct {
	Kind       Kind
	X          []float64
	Free       []int
	Particular []float64
}

// System is the boundary input of the solver: the number of equations N and
// N·(N+1) values of the augmented matrix in row-major order (the last value
// of every row is the right-hand side).
type System struct {
	N      int
	Values []float64
}

// NewSystem flattens an augmented matrix given as rows.
// Every row must have len(rows)+1 entries.
func NewSystem(rows [][]float64) (System, error) {
	n := len(rows)
	if n == 0 {
		return System{}, gaussErrorf(opNewSystem, ErrEmptySystem)
	}
	vals := make([]float64, 0, n*(n+1))
	for i, row := range rows {
		if len(row) != n+1 {
			return System{}, gaussErrorf(opNewSystem, fmt.Errorf("row %d has %d values, want %d: %w", i, len(row), n+1, ErrShape))
		}
		vals = append(vals, row...)
	}

	return System{N: n, Values: vals}, nil
}

// Validate checks N ≥ 1 and len(Values) == N·(N+1).
func (s System) Validate() error {
	if s.N < 1 {
		return ErrEmptySystem
	}
	if want := s.N * (s.N + 1); len(s.Values) != want {
		return fmt.Errorf("want %d values for n=%d, got %d: %w", want, s.N, len(s.Values), ErrShape)
	}

	return nil
}

// Rows returns the augmented matrix as freshly allocated rows.
// The caller must ensure s is valid.
func (s System) Rows() [][]float64 {
	cols := s.N + 1
	out := make([][]float64, s.N)
	for i := range out {
		out[i] = append([]float64(nil), s.Values[i*cols:(i+1)*cols]...)
	}

	return out
}
