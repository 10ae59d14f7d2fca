package bootstrap

import (
	"context"
	"log/slog"
	"time"

	"atelier-store/internal/pkg/config"
	"atelier-store/internal/usecase/commands"

	"go.uber.org/fx"
)

var WorkerModule = fx.Module("workers",
	fx.Invoke(
		startSweeper,
		startNotifier,
	),
)

// startSweeper expires lapsed holds on a fixed interval. The sweep is also
// reachable over HTTP for platform schedulers; both paths share the same
// command and are safe to overlap.
func startSweeper(lc fx.Lifecycle, sweep commands.SweepCommands, cfg config.Config, logger *slog.Logger) {
	runLoop(lc, cfg.Sweep.Interval, func(ctx context.Context) {
		summary, err := sweep.Run(ctx)
		if err != nil {
			logger.Error("scheduled sweep failed", "error", err.Error())
			return
		}
		if summary.Expired > 0 || summary.Errors > 0 {
			logger.Info("scheduled sweep finished",
				"expired", summary.Expired, "released", summary.Released, "errors", summary.Errors)
		}
	})
}

func startNotifier(lc fx.Lifecycle, notify commands.NotifyCommands, cfg config.Config, logger *slog.Logger) {
	runLoop(lc, cfg.Notify.PollInterval, func(ctx context.Context) {
		if _, err := notify.DeliverPending(ctx); err != nil {
			logger.Error("notification drain failed", "error", err.Error())
		}
	})
}

func runLoop(lc fx.Lifecycle, interval time.Duration, tick func(ctx context.Context)) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go func() {
				defer close(done)
				ticker := time.NewTicker(interval)
				defer ticker.Stop()
				for {
					select {
					case <-ctx.Done():
						return
					case <-ticker.C:
						tick(ctx)
					}
				}
			}()
			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			cancel()
			select {
			case <-done:
				return nil
			case <-stopCtx.Done():
				return stopCtx.Err()
			}
		},
	})
}
