// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"

	"github.com/katalvlaran/gausselim/format"
	"github.com/katalvlaran/gausselim/gauss"
	"github.com/katalvlaran/gausselim/loader"
	"github.com/spf13/cobra"
)

func solveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "solve FILE...",
		Short: "Solve one or more problem files",
		Long: `Solve one or more problem files in parallel.

Files ending in .yaml or .yml are read as YAML, everything else as the text
format. With several files every result is preceded by "== FILE".`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			systems := make([]gauss.System, len(args))
			for i, path := range args {
				sys, err := loader.Load(path)
				if err != nil {
					return fmt.Errorf("%s: %w", path, err)
				}
				a.log.V(1).Info("system loaded", "file", path, "equations", sys.N)
				systems[i] = sys
			}

			results, err := gauss.SolveAll(cmd.Context(), systems, a.solverOptions()...)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for i, res := range results {
				if len(args) > 1 {
					if _, err = fmt.Fprintf(out, "== %s\n", args[i]); err != nil {
						return err
					}
				}
				if err = format.Write(out, res, a.cfg.FormatOptions()...); err != nil {
					return err
				}
			}

			return nil
		},
	}
}
