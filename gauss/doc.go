// SPDX-License-Identifier: MIT

// Package gauss solves square linear systems A·x = b given as an n×(n+1)
// augmented matrix [A|b], using Gaussian elimination with partial pivoting
// followed by back substitution.
//
// 🚀 What does it return?
//
//	Every solve yields exactly one of three outcomes:
//	  • Unique:       the system has one solution; Result.X holds it.
//	  • Infinite:     the system is consistent but underdetermined;
//	                   Result.Free lists the free variables and
//	                   Result.Particular one solution with them set to 0.
//	  • Inconsistent: some equation reduces to 0 = c with c ≠ 0.
//	Singular or contradictory systems are ordinary outcomes, never errors.
//	Errors are reserved for malformed input (n < 1, wrong value count,
//	NaN/±Inf).
//
// ✨ Key features:
//   - partial pivoting (largest |a[i][p]|, ties keep the upper row)
//   - one tolerance, DefaultEpsilon = 1e-8 unless WithEpsilon says otherwise,, for every zero test
//   - explicit two-phase API: NewSolver validates and copies, Solve reduces
//   - free variables tracked during back substitution; the legacy
//     "any x[i] == 0 means infinite" rule is available as ExactZero
//   - SolveAll for many independent systems in parallel
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/gausselim/gauss"
//
//	s, err := gauss.NewSolverFromRows([][]float64{
//	  {9, 3, 4, 7},
//	  {4, 3, 4, 8},
//	  {1, 1, 1, 3},
//	})
//	if err != nil {
//	  // ErrEmptySystem / ErrShape / ErrNonFinite
//	}
//	res := s.Solve()
//	switch res.Kind {
//	case gauss.Unique:
//	  fmt.Println(res.X) // ≈ [-0.2 4 -0.8]
//	case gauss.Infinite, gauss.Inconsistent:
//	  fmt.Println(res.Kind)
//	}
//
// Performance:
//
//   - Time:   O(n³) elimination + O(n²) substitution
//   - Memory: O(n²) for the owned augmented matrix
//
// A Solver is not safe for concurrent use; solvers share no state, so one
// Solver per goroutine (or SolveAll) is the way to parallelise.
package gauss
