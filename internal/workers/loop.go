// Package workers contains the background pollers: the outbox relay, the
// inbox drainer and the free-wait expiration scanner. Each runs its own
// ticker loop and stops on context cancellation.
package workers

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// runLoop drives fn on a fixed interval until ctx is canceled. Runs are
// sequential: a slow run absorbs the ticks it missed instead of
// overlapping with the next one. Failures are logged and the loop keeps
// going; pollers retry whole batches on the next tick.
func runLoop(ctx context.Context, name string, interval time.Duration, logger *zap.Logger, fn func(context.Context) error) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	logger.Info("worker started", zap.String("worker", name), zap.Duration("interval", interval))

	for {
		select {
		case <-ctx.Done():
			logger.Info("worker stopped", zap.String("worker", name))
			return
		case <-ticker.C:
			if err := fn(ctx); err != nil && ctx.Err() == nil {
				logger.Error("worker run failed", zap.String("worker", name), zap.Error(err))
			}
		}
	}
}
