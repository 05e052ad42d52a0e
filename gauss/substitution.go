// SPDX-License-Identifier: MIT

package gauss

import (
	"math"

	"github.com/katalvlaran/gausselim/matrix"
)

// substitution is the raw outcome of back substitution.
type substitution struct {
	consistent bool
	x          []float64 // len cols−1; free variables hold 0
	free       []int     // ascending
}

// backSubstitute solves the echelon matrix bottom-up.
//
// For i from the last equation up to 0 (strictly decreasing, so every x[j]
// with j > i is final when row i is read):
//
//	sum = Σ_{j>i} a[i][j]·x[j]
//	|a[i][i]| > eps           → x[i] = (b[i] − sum) / a[i][i]
//	|b[i] − sum| > eps        → 0 = nonzero, inconsistent
//	otherwise                 → 0 = 0, x[i] stays 0 and is free
//
// Rows below the last unknown exist only for matrices taller than n×(n+1),
// which ValidateAugmented rejects; they are still checked against the full
// residual so the kernel never accepts an unsatisfied equation.
func backSubstitute(aug *matrix.Dense, eps float64) substitution {
	rows, cols := aug.Shape()
	unknowns := cols - 1
	rhs := cols - 1
	x := make([]float64, unknowns)
	var (
		free []int
		row  []float64
		sum  float64
		i, j int
	)

	for i = min(unknowns-1, rows-1); i >= 0; i-- {
		row = rowView(aug, i)
		sum = matrix.ZeroSum
		for j = i + 1; j < unknowns; j++ {
			sum += row[j] * x[j]
		}

		switch {
		case math.Abs(row[i]) > eps:
			x[i] = (row[rhs] - sum) / row[i]
		case math.Abs(row[rhs]-sum) > eps:
			return substitution{}
		default:
			free = append(free, i)
		}
	}

	for i = unknowns; i < rows; i++ {
		row = rowView(aug, i)
		sum = matrix.ZeroSum
		for j = 0; j < unknowns; j++ {
			sum += row[j] * x[j]
		}
		if math.Abs(row[rhs]-sum) > eps {
			return substitution{}
		}
	}

	// free was collected bottom-up.
	for l, r := 0, len(free)-1; l < r; l, r = l+1, r-1 {
		free[l], free[r] = free[r], free[l]
	}

	return substitution{consistent: true, x: x, free: free}
}

// classify turns a substitution into the public Result under policy.
func classify(sub substitution, policy InfinitePolicy) Result {
	if !sub.consistent {
		return Result{Kind: Inconsistent}
	}

	free := sub.free
	if policy == ExactZero {
		free = nil
		for i, v := range sub.x {
			if v == 0 {
				free = append(free, i)
			}
		}
	}
	if len(free) > 0 {
		return Result{Kind: Infinite, Free: free, Particular: sub.x}
	}

	return Result{Kind: Unique, X: sub.x}
}

// clone returns a deep copy so cached results cannot be mutated by callers.
func (r Result) clone() Result {
	out := Result{Kind: r.Kind}
	if r.X != nil {
		out.X = append([]float64(nil), r.X...)
	}
	if r.Free != nil {
		out.Free = append([]int(nil), r.Free...)
	}
	if r.Particular != nil {
		out.Particular = append([]float64(nil), r.Particular...)
	}

	return out
}
