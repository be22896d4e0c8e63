package components

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"lease-engine/internal/pkg/config"
	"lease-engine/internal/usecase/commands"

	"go.uber.org/fx"
)

var WorkerModule = fx.Module("worker",
	fx.Invoke(StartSweeper),
)

// StartSweeper runs the sweeper on a ticker for the lifetime of the app.
func StartSweeper(lc fx.Lifecycle, cfg config.Config, sweeper commands.Sweeper, logger *slog.Logger) {
	if !cfg.Sweeper.Enabled || cfg.Sweeper.Interval <= 0 {
		logger.Info("sweeper disabled")
		return
	}

	var (
		cancel context.CancelFunc
		wg     sync.WaitGroup
	)

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			var ctx context.Context
			ctx, cancel = context.WithCancel(context.Background())
			wg.Add(1)
			go func() {
				defer wg.Done()
				runSweeper(ctx, sweeper, cfg.Sweeper.Interval, logger)
			}()
			logger.Info("sweeper started", "interval", cfg.Sweeper.Interval)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			cancel()
			done := make(chan struct{})
			go func() {
				wg.Wait()
				close(done)
			}()
			select {
			case <-done:
				logger.Info("sweeper stopped")
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		},
	})
}

func runSweeper(ctx context.Context, sweeper commands.Sweeper, interval time.Duration, logger *slog.Logger) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			// the sweeper logs its own transition counts
			if _, err := sweeper.Sweep(ctx); err != nil && ctx.Err() == nil {
				logger.Error("sweep failed", "error", err.Error())
			}
		}
	}
}
