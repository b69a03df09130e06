package main

import (
	"fmt"
	"io"

	"github.com/dkooll/gophx/internal/cli"
	"github.com/dkooll/gophx/monoguard"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newCommand() *cobra.Command {
	return cli.NewCommand("monoguard", "Count safe and loosely safe reports", run)
}

func run(out io.Writer, logger *zap.Logger, input string) error {
	rp := monoguard.NewReportProcessor(logger)
	rp.SetInputs(input)
	rp.ParseInputs()
	summary := rp.ProcessReports()

	if _, err := fmt.Fprintf(out, "safe count: %d\nloose safe count: %d\n", summary.Strict, summary.Loose); err != nil {
		return err
	}
	if summary.Skipped > 0 {
		_, err := fmt.Fprintf(out, "skipped lines: %d\n", summary.Skipped)
		return err
	}
	return nil
}

func main() {
	cli.Main(newCommand())
}
