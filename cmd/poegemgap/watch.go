package main

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/guarzo/poegemgap/internal/config"
	"github.com/guarzo/poegemgap/internal/fetch"
	"github.com/guarzo/poegemgap/internal/watch"
)

// NewWatchCmd creates the watch command.
func NewWatchCmd(cfg config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Keep the snapshot fresh on a cron schedule",
		Long: `Watch fetches a snapshot immediately and then re-fetches it on a cron
schedule until interrupted. A failed refresh is logged and the schedule
keeps running.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dataDir, _ := cmd.Flags().GetString("data-dir")
			league, _ := cmd.Flags().GetString("league")
			schedule, _ := cmd.Flags().GetString("schedule")

			fetcher := fetch.New(fetch.Config{
				DataDir:        dataDir,
				League:         league,
				RequestTimeout: cfg.RequestTimeout,
				RequestsPerSec: cfg.RequestsPerSec,
			})

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return watch.Run(ctx, fetcher, schedule)
		},
	}

	cmd.Flags().String("league", cfg.League, "League to download price overviews for")
	cmd.Flags().String("schedule", "@hourly", "Cron schedule for snapshot refreshes")

	return cmd
}
