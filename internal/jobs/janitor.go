package jobs

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Pruner drops activity logs whose session has been idle for maxIdle.
type Pruner interface {
	Prune(ctx context.Context, maxIdle time.Duration) int
}

// Janitor evicts in-memory activity logs once their session has expired.
type Janitor struct {
	store    Pruner
	interval time.Duration
	maxIdle  time.Duration
	logger   *zap.Logger
}

// NewJanitor creates a new janitor.
func NewJanitor(store Pruner, interval, maxIdle time.Duration, logger *zap.Logger) *Janitor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Janitor{
		store:    store,
		interval: interval,
		maxIdle:  maxIdle,
		logger:   logger,
	}
}

// Start runs the eviction loop until ctx is cancelled.
func (j *Janitor) Start(ctx context.Context) {
	j.logger.Info("activity janitor started",
		zap.Duration("interval", j.interval),
		zap.Duration("max_idle", j.maxIdle),
	)

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			j.logger.Info("activity janitor stopped")
			return
		case <-ticker.C:
			j.sweep(ctx)
		}
	}
}

func (j *Janitor) sweep(ctx context.Context) int {
	removed := j.store.Prune(ctx, j.maxIdle)
	if removed > 0 {
		j.logger.Info("evicted idle activity logs", zap.Int("sessions", removed))
	}
	return removed
}
