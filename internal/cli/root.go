// SPDX-License-Identifier: MIT
// Package cli wires the sparse-matrix calculator into a cobra command tree:
// the root command runs the interactive menu, `selftest` replays the scripted
// verification scenarios, and `spy` renders a non-zero pattern plot.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// app carries the state shared across the command tree. The logger is built
// in PersistentPreRunE unless a test injected one up front.
type app struct {
	verbose bool
	log     *zap.Logger
}

// NewRootCommand builds the production command tree.
func NewRootCommand() *cobra.Command {
	return newRootCommand(nil)
}

// newRootCommand lets tests inject a logger (typically zap.NewNop()) so
// command output stays deterministic.
func newRootCommand(logger *zap.Logger) *cobra.Command {
	a := &app{log: logger}

	root := &cobra.Command{
		Use:   "sparsemat",
		Short: "Interactive sparse-matrix calculator",
		Long: `sparsemat is a calculator over sparse float64 matrices.

Only non-zero entries are stored; values within 1e-10 of zero are treated
as zero everywhere. Supported operations: addition, subtraction, scalar
multiplication and division, matrix multiplication, transpose, and
determinant/inverse for square matrices up to 3x3.

Run without arguments to start the interactive menu.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if a.log != nil {
				return nil
			}
			cfg := zap.NewProductionConfig()
			if a.verbose {
				cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			log, err := cfg.Build()
			if err != nil {
				return fmt.Errorf("initialize logger: %w", err)
			}
			a.log = log
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return newSession(cmd.InOrStdin(), cmd.OutOrStdout(), a.log).run()
		},
	}

	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable verbose logging")

	root.AddCommand(newSelfTestCommand(a))
	root.AddCommand(newSpyCommand(a))

	return root
}
