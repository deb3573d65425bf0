// Package maintenance runs the server's periodic background tasks as Go
// tickers: slate advancement, the server-side comeback sweep, and alert
// retention cleanup. All scheduled work is driven from Go since cmd/api is
// already a persistent, long-running service.
package maintenance

import (
	"context"
	"log/slog"
	"time"

	"github.com/comebackscout/comeback-scout/internal/comeback"
	"github.com/comebackscout/comeback-scout/internal/engine"
)

// AlertJanitor is the subset of the alert store used for cleanup.
type AlertJanitor interface {
	Purge(ctx context.Context, olderThan time.Duration) (int64, error)
}

// Config controls maintenance task intervals. Zero duration disables a task.
type Config struct {
	AdvanceInterval time.Duration // wall time per simulated minute
	SweepInterval   time.Duration // server-side comeback check
	PurgeInterval   time.Duration // read-alert retention cleanup
	AlertRetention  time.Duration
}

// Start launches all configured maintenance tickers. Blocks until ctx is
// cancelled. Intended to be called with `go`.
func Start(ctx context.Context, eng *engine.Engine, sink comeback.AlertSink, janitor AlertJanitor, cfg Config, logger *slog.Logger) {
	logger.Info("Maintenance tickers started",
		"advance", cfg.AdvanceInterval,
		"sweep", cfg.SweepInterval,
		"purge", cfg.PurgeInterval)

	tickers := make([]*time.Ticker, 0, 3)
	defer func() {
		for _, t := range tickers {
			t.Stop()
		}
	}()

	// Advance: move every live fixture forward one simulated minute
	if cfg.AdvanceInterval > 0 {
		t := time.NewTicker(cfg.AdvanceInterval)
		tickers = append(tickers, t)
		go runLoop(ctx, t.C, func() { eng.Advance() })
	}

	// Sweep: create alerts server-side so they accrue even when no client
	// is calling check-comebacks
	if cfg.SweepInterval > 0 {
		t := time.NewTicker(cfg.SweepInterval)
		tickers = append(tickers, t)
		go runLoop(ctx, t.C, func() { sweep(ctx, eng, sink, logger) })
	}

	// Purge: drop read alerts past the retention window
	if cfg.PurgeInterval > 0 {
		t := time.NewTicker(cfg.PurgeInterval)
		tickers = append(tickers, t)
		go runLoop(ctx, t.C, func() { purge(ctx, janitor, cfg.AlertRetention, logger) })
	}

	<-ctx.Done()
	logger.Info("Maintenance tickers stopped")
}

func runLoop(ctx context.Context, ch <-chan time.Time, fn func()) {
	for {
		select {
		case <-ch:
			fn()
		case <-ctx.Done():
			return
		}
	}
}

// --------------------------------------------------------------------------
// Task implementations
// --------------------------------------------------------------------------

func sweep(ctx context.Context, eng *engine.Engine, sink comeback.AlertSink, logger *slog.Logger) {
	created, err := comeback.Check(ctx, eng, sink, logger)
	if err != nil {
		logger.Warn("Sweep: comeback check failed", "error", err)
		return
	}
	if created > 0 {
		logger.Info("Sweep: created alerts", "count", created)
	}
}

func purge(ctx context.Context, janitor AlertJanitor, retention time.Duration, logger *slog.Logger) {
	removed, err := janitor.Purge(ctx, retention)
	if err != nil {
		logger.Warn("Purge: failed to remove old alerts", "error", err)
		return
	}
	if removed > 0 {
		logger.Info("Purge: removed read alerts", "count", removed)
	}
}
