package watch

import (
	"context"
	"fmt"
	"log"

	"github.com/robfig/cron/v3"

	"github.com/guarzo/poegemgap/internal/fetch"
)

// Run fetches a snapshot immediately, then keeps refreshing it on the given
// cron schedule until ctx is canceled. A failed refresh is logged and the
// schedule keeps running; only the initial fetch is fatal. Cancellation
// reaches an in-flight refresh, and Run returns only after it has unwound.
func Run(ctx context.Context, fetcher *fetch.Fetcher, schedule string) error {
	c := cron.New()
	_, err := c.AddFunc(schedule, func() {
		if err := fetcher.Run(ctx); err != nil {
			log.Printf("snapshot refresh failed: %v", err)
			return
		}
		log.Printf("snapshot refreshed")
	})
	if err != nil {
		return fmt.Errorf("invalid schedule %q: %w", schedule, err)
	}

	if err := fetcher.Run(ctx); err != nil {
		return fmt.Errorf("initial fetch: %w", err)
	}
	log.Printf("snapshot written, refreshing on schedule %q", schedule)

	c.Start()
	<-ctx.Done()

	// Canceling ctx aborts an in-flight refresh; wait for it to unwind
	// before returning.
	<-c.Stop().Done()
	return nil
}
