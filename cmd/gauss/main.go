// SPDX-License-Identifier: MIT

// Command gauss solves square linear systems from problem files.
package main

import "github.com/katalvlaran/gausselim/internal/cli"

func main() {
	cli.Execute()
}
