// Package retention periodically removes persisted slot values older than
// the configured period.
package retention

import (
	"context"
	"fmt"
	"time"

	"github.com/adhocore/gronx"

	"github.com/eladmint/whatsapp-analyzer/pkg/config"
	"github.com/eladmint/whatsapp-analyzer/pkg/logger"
	"github.com/eladmint/whatsapp-analyzer/pkg/store"
)

// Start launches the retention scheduler if enabled and returns a stop
// function. The schedule is a cron expression, defaulting to daily at 02:00.
func Start(ctx context.Context, cfg *config.Config, st *store.Store) (context.CancelFunc, error) {
	if !cfg.Retention.Enabled {
		logger.Info("retention_disabled")
		return func() {}, nil
	}

	period, err := time.ParseDuration(cfg.Retention.Period)
	if err != nil {
		return nil, fmt.Errorf("invalid retention period %q: %w", cfg.Retention.Period, err)
	}

	cronExpr := cfg.Retention.Cron
	if cronExpr == "" {
		cronExpr = "0 2 * * *"
	}
	if !gronx.IsValid(cronExpr) {
		return nil, fmt.Errorf("invalid retention cron expression: %s", cronExpr)
	}

	logger.Info("retention_enabled", "cron", cronExpr, "period", period)
	ctx2, cancel := context.WithCancel(ctx)
	go runScheduler(ctx2, st, cronExpr, period)
	return cancel, nil
}

// runScheduler sleeps until the next cron tick, then sweeps.
func runScheduler(ctx context.Context, st *store.Store, cronExpr string, period time.Duration) {
	for {
		next, err := gronx.NextTick(cronExpr, false)
		if err != nil {
			logger.Error("retention_next_tick_failed", "error", err)
			return
		}
		select {
		case <-ctx.Done():
			return
		case <-time.After(time.Until(next)):
		}
		RunOnce(st, period)
	}
}

// RunOnce performs a single sweep, removing slots saved before now-period.
// Exposed so tests and admin triggers can invoke retention on demand.
func RunOnce(st *store.Store, period time.Duration) {
	cutoff := time.Now().UTC().Add(-period)
	removed, err := st.SweepOlderThan(cutoff)
	if err != nil {
		logger.Error("retention_sweep_failed", "error", err)
		return
	}
	logger.Info("retention_sweep_completed", "removed", removed)
}
