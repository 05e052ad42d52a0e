// SPDX-License-Identifier: MIT

// Package loader reads linear systems from files.
//
// Two formats are understood:
//
//	Text (the classic problem file):
//	  3            ← first token is n; the rest of this line is ignored
//	  9 3 4 7
//	  4 3 4 8      ← n·(n+1) numbers, row-major, any whitespace layout
//	  1 1 1 3
//
//	YAML:
//	  equations: 3         # optional, must match len(rows) when present
//	  rows:
//	    - [9, 3, 4, 7]
//	    - [4, 3, 4, 8]
//	    - [1, 1, 1, 3]
//
// Load picks the format by extension (.yaml / .yml → YAML, anything else →
// text). The loader checks structure only; NaN or ±Inf values pass through
// and are rejected by gauss.NewSolver.
package loader
