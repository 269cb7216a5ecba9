package schedulers

import (
	"context"
	"fmt"
	"sync"

	"appliance-analytics/internal/shared/loggers"
)

// dailyRollupCronSpec fires at 00:00 every day, evaluated in UTC by the
// scheduler.
const dailyRollupCronSpec = "0 0 * * *"

// DailyTrigger owns the recurring registration of the daily rollup batch.
// It has exactly two externally visible states, stopped and running, and
// Start/Stop are idempotent. Stopping only prevents future firings; an
// in-flight run is never interrupted.
type DailyTrigger struct {
	scheduler CronScheduler
	runner    BatchRunner
	logger    loggers.Logger

	mu      sync.Mutex
	running bool
	entryID EntryID
}

func NewDailyTrigger(scheduler CronScheduler, runner BatchRunner, logger loggers.Logger) *DailyTrigger {
	return &DailyTrigger{
		scheduler: scheduler,
		runner:    runner,
		logger:    logger,
	}
}

// Start registers the recurring trigger. A second Start while running is a
// no-op so the job can never be registered twice. Registration failure is the
// one error that propagates: swallowing it would mean the job silently never
// runs.
func (t *DailyTrigger) Start() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.running {
		return nil
	}

	entryID, err := t.scheduler.Schedule(dailyRollupCronSpec, t.fire)
	if err != nil {
		return fmt.Errorf("failed to register daily rollup trigger: %w", err)
	}

	t.entryID = entryID
	t.running = true
	t.logger.Info().Str("cron_spec", dailyRollupCronSpec).Msg("daily rollup trigger started")
	return nil
}

// Stop cancels the recurring trigger. Stopping an already stopped trigger is
// a no-op.
func (t *DailyTrigger) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.running {
		return
	}

	t.scheduler.Remove(t.entryID)
	t.running = false
	t.logger.Info().Msg("daily rollup trigger stopped")
}

// IsAggregating reports whether the recurring trigger is registered.
func (t *DailyTrigger) IsAggregating() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.running
}

// fire runs one scheduled batch. The runner already isolates per-device
// failures internally; anything escaping it is the runtime's concern, not the
// trigger's.
func (t *DailyTrigger) fire() {
	ctx := t.logger.WithContext(context.Background())
	t.runner.RunDailyRollup(ctx)
}
