// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"

	"github.com/katalvlaran/gausselim/gauss"
	"github.com/katalvlaran/gausselim/loader"
	"github.com/spf13/cobra"
)

func checkCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check FILE",
		Short: "Solve a problem file and report how well the answer fits",
		Long: `Solve a problem file and print its classification. For a unique
solution, and for the particular solution of an infinite one, also print
the largest absolute residual |A·x − b|.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sys, err := loader.Load(args[0])
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}
			res, err := gauss.Solve(sys, a.solverOptions()...)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "kind: %s\n", res.Kind)

			var x []float64
			switch res.Kind {
			case gauss.Unique:
				x = res.X
			case gauss.Infinite:
				x = res.Particular
				fmt.Fprintf(out, "free: %v\n", res.Free)
			default:
				return nil
			}
			r, err := gauss.Residual(sys, x)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(out, "residual: %.3g\n", r)

			return err
		},
	}
}
