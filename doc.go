// Package gausselim solves square systems of linear equations by Gaussian
// elimination with partial pivoting, and tells you which of the three
// possible worlds you are in: one solution, infinitely many, or none.
//
// 🚀 What is gausselim?
//
//	A small, dependency-light toolkit built around one numerical core:
//		• matrix: dense row-major storage, row primitives, validators, MatVec
//		• gauss:  elimination, back substitution, classification, batch solve
//		• loader: problem files (classic text layout or YAML)
//		• format: the classic console rendering (X₀ = -.2)
//		• cmd/gauss: the command line (prompt, solve, check)
//
// ✨ Why choose gausselim?
//
//   - Explicit outcomes: Unique, Infinite, Inconsistent are data, not errors
//   - One tolerance (1e-8 by default) for every zero test, configurable
//   - Two-phase API: construct and validate, then Solve
//   - Parallel batches via SolveAll, bounded and order-preserving
//
// Layout:
//
//	matrix/          storage and kernels shared by the solver
//	gauss/           the solver
//	loader/          file formats
//	format/          output rendering
//	internal/config  viper-backed settings
//	internal/logger  zap → logr
//	internal/cli     cobra commands
//	cmd/gauss        binary entry point
//	examples/        runnable scenarios
//
// Quick start:
//
//	res, err := gauss.Solve(gauss.System{N: 1, Values: []float64{2, 8}})
//	// res.Kind == gauss.Unique, res.X == []float64{4}
package gausselim
