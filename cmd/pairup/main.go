package main

import (
	"fmt"
	"io"

	"github.com/dkooll/gophx/internal/cli"
	"github.com/dkooll/gophx/pairup"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newCommand() *cobra.Command {
	return cli.NewCommand("pairup", "Reconcile two location id lists", run)
}

func run(out io.Writer, logger *zap.Logger, input string) error {
	left, right, skipped := pairup.ParseColumns(input, logger)

	lr := pairup.ListReconcilerImpl{}
	lr.SetInputs(left, right)
	if err := lr.ValidateInputs(); err != nil {
		return err
	}
	lr.SortLists()
	lr.ComputeDifferences()
	lr.ComputeSimilarity()

	logger.Debug("reconciled lists", zap.Int("pairs", len(left)), zap.Int("skipped", len(skipped)))
	_, err := fmt.Fprintf(out, "distance: %d\nsimilarity score: %d\n", lr.TotalDiff, lr.Similarity)
	return err
}

func main() {
	cli.Main(newCommand())
}
