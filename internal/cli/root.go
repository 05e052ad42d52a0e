// SPDX-License-Identifier: MIT

// Package cli wires the gauss command line: an interactive prompt on the
// bare command, plus the solve and check subcommands.
package cli

import (
	"context"
	"os"
	"os/signal"

	"github.com/go-logr/logr"
	"github.com/katalvlaran/gausselim/format"
	"github.com/katalvlaran/gausselim/gauss"
	"github.com/katalvlaran/gausselim/internal/config"
	"github.com/katalvlaran/gausselim/internal/logger"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Execute runs the root command and exits non-zero on error.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

// app carries the state resolved once per invocation.
type app struct {
	v          *viper.Viper
	configPath string
	cfg        config.Config
	log        logr.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{v: config.New(), log: logr.Discard()}

	cmd := &cobra.Command{
		Use:   "gauss",
		Short: "Solve square linear systems by Gaussian elimination",
		Long: `Solve square linear systems given as an n×(n+1) augmented matrix.

Without a subcommand gauss asks for a problem file on stdin and prints the
solution, "Infinitely many Solutions" or "No Solution".`,
		Args:              cobra.NoArgs,
		SilenceUsage:      true,
		PersistentPreRunE: a.init,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runPrompt(cmd)
		},
	}

	fs := cmd.PersistentFlags()
	fs.StringVar(&a.configPath, "config", "", "YAML config file")
	fs.Float64(config.KeyEpsilon, gauss.DefaultEpsilon, "zero tolerance for pivots and residuals")
	fs.Int(config.KeyDecimals, format.DefaultDecimals, "fraction digits in printed solutions")
	fs.String(config.KeyInfinitePolicy, gauss.FreeVariables.String(), "how infinite solutions are detected: free-variables or exact-zero")
	fs.Int(config.KeyConcurrency, 0, "systems solved in parallel by solve (0 = GOMAXPROCS)")
	fs.Bool(config.KeyDebug, false, "log pivoting decisions to stderr")
	for _, key := range []string{
		config.KeyEpsilon,
		config.KeyDecimals,
		config.KeyInfinitePolicy,
		config.KeyConcurrency,
		config.KeyDebug,
	} {
		_ = a.v.BindPFlag(key, fs.Lookup(key))
	}

	cmd.AddCommand(solveCmd(a), checkCmd(a))

	return cmd
}

// init resolves configuration and the logger before any command runs.
func (a *app) init(cmd *cobra.Command, _ []string) error {
	if a.configPath != "" {
		if err := config.ReadFile(a.v, a.configPath); err != nil {
			return err
		}
	}
	cfg, err := config.Load(a.v)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.log = logger.New(logger.Config{Debug: cfg.Debug, Output: cmd.ErrOrStderr()})
	a.log.V(1).Info("configuration resolved",
		"epsilon", cfg.Epsilon,
		"decimals", cfg.Decimals,
		"infinitePolicy", cfg.InfinitePolicy,
		"concurrency", cfg.Concurrency)

	return nil
}

func (a *app) solverOptions() []gauss.Option {
	return append(a.cfg.SolverOptions(), gauss.WithLogger(a.log))
}
