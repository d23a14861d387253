package live

import (
	"context"
	"log/slog"
	"time"
)

// RunRefresh вызывает publish сразу и затем на каждом тике до отмены ctx.
// У каждого вызова свой таймаут, тики не накапливаются, а неудачный тик
// заменяется следующим.
func RunRefresh(ctx context.Context, interval time.Duration, publish func(context.Context) error, logger *slog.Logger) {
	if logger == nil {
		logger = slog.Default()
	}
	if interval <= 0 {
		logger.Warn("live refresh disabled", slog.Duration("interval", interval))
		return
	}

	run := func() {
		tickCtx, cancel := context.WithTimeout(ctx, interval)
		defer cancel()
		if err := publish(tickCtx); err != nil {
			logger.Error("live refresh failed", slog.Any("error", err))
		}
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	logger.Info("live refresh started", slog.Duration("interval", interval))

	run()
	for {
		select {
		case <-ctx.Done():
			logger.Info("live refresh stopped")
			return
		case <-ticker.C:
			run()
		}
	}
}
