package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Set by -ldflags at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "kbc-cli",
		Short:         "Evaluate knowledge base completion predictions",
		Version:       fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newEvaluateCmd(),
		newExportNTCmd(),
		newSamplesCmd(),
	)
	return root
}
