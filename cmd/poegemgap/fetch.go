package main

import (
	"log"

	"github.com/spf13/cobra"

	"github.com/guarzo/poegemgap/internal/config"
	"github.com/guarzo/poegemgap/internal/fetch"
)

// NewFetchCmd creates the fetch command.
func NewFetchCmd(cfg config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Download the quality page and price snapshots",
		Long: `Fetch downloads three files into the data directory, in order:

  poedb_quality.html   alternate-quality weights reference page (poedb)
  gem_prices.json      skill gem price overview for the league (poe.ninja)
  currency.json        currency price overview for the league (poe.ninja)

Each file is the verbatim response body and overwrites any previous
snapshot. The run stops at the first failure; there are no retries.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dataDir, _ := cmd.Flags().GetString("data-dir")
			league, _ := cmd.Flags().GetString("league")

			fetcher := fetch.New(fetch.Config{
				DataDir:        dataDir,
				League:         league,
				RequestTimeout: cfg.RequestTimeout,
				RequestsPerSec: cfg.RequestsPerSec,
			})

			if err := fetcher.Run(cmd.Context()); err != nil {
				return err
			}
			log.Printf("snapshot written to %s", dataDir)
			return nil
		},
	}

	cmd.Flags().String("league", cfg.League, "League to download price overviews for")

	return cmd
}
