package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/guarzo/poegemgap/internal/config"
)

// NewRootCmd creates the root command for poegemgap.
func NewRootCmd() *cobra.Command {
	cfg := config.Load()

	cmd := &cobra.Command{
		Use:   "poegemgap",
		Short: "Path of Exile gem regrading profit finder",
		Long: `poegemgap downloads price snapshots from poedb and poe.ninja and reports
which skill gems are profitable to regrade with a Prime or Secondary
Regrading Lens, based on alternate-quality roll weights and market prices.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().String("data-dir", cfg.DataDir, "Directory snapshot files are written to and read from")

	cmd.AddCommand(NewFetchCmd(cfg))
	cmd.AddCommand(NewAnalyzeCmd())
	cmd.AddCommand(NewWatchCmd(cfg))

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
