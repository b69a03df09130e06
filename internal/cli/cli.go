// Package cli holds the cobra scaffolding shared by the analyzer binaries.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/dkooll/gophx/internal/diag"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// ErrInput is wrapped by every failure to load the input file.
var ErrInput = errors.New("cannot read input")

// RunFunc analyzes the whole input and writes its report to out.
type RunFunc func(out io.Writer, logger *zap.Logger, input string) error

// NewCommand returns a root command taking exactly one positional argument,
// the input path. The file is read in one go before run is called.
func NewCommand(use, short string, run RunFunc) *cobra.Command {
	var logger *zap.Logger

	return &cobra.Command{
		Use:           use + " <input>",
		Short:         short,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := diag.ConfigFromEnv(os.LookupEnv)
			if err != nil {
				return err
			}
			logger, err = diag.NewLogger(cfg)
			return err
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := ReadInput(args[0])
			if err != nil {
				return err
			}
			logger.Debug("loaded input", zap.String("path", args[0]), zap.Int("bytes", len(input)))
			return run(cmd.OutOrStdout(), logger, input)
		},
	}
}

// ReadInput loads the whole file at path.
func ReadInput(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%w %s: %w", ErrInput, path, err)
	}
	return string(data), nil
}

// Main executes cmd and exits non-zero after printing the error to stderr.
func Main(cmd *cobra.Command) {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", cmd.Name(), err)
		os.Exit(1)
	}
}
