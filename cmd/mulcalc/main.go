package main

import (
	"fmt"
	"io"

	"github.com/dkooll/gophx/internal/cli"
	"github.com/dkooll/gophx/mulcalc"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newCommand() *cobra.Command {
	return cli.NewCommand("mulcalc", "Sum the mul instructions in a corrupted program", run)
}

func run(out io.Writer, logger *zap.Logger, input string) error {
	mr := mulcalc.MulReconcilerImpl{}
	mr.SetInputs(input)
	if err := mr.ValidateInputs(); err != nil {
		return fmt.Errorf("validating inputs: %w", err)
	}
	logger.Debug("folded instructions", zap.Int("total", mr.Total()), zap.Int("enabled", mr.EnabledTotal()))
	_, err := fmt.Fprintf(out, "sum: %d\nenabled sum: %d\n", mr.Total(), mr.EnabledTotal())
	return err
}

func main() {
	cli.Main(newCommand())
}
