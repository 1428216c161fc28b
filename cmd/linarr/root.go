package main

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	TimeFormat:      "15:04:05.00",
	Level:           log.InfoLevel,
})

func newRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:           "linarr",
		Short:         "Linear arrangements of trees: metrics, optima and generators",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				logger.SetLevel(log.DebugLevel)
			}
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newMetricsCmd())
	root.AddCommand(newMinlaCmd())
	root.AddCommand(newGenerateCmd())
	return root
}

// openInput returns the named file, or stdin when no argument is given.
func openInput(args []string) (io.ReadCloser, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	return os.Open(args[0])
}
