package schedulers

import (
	"context"
	"fmt"
	"runtime/debug"
	"sync"
	"sync/atomic"
	"time"

	"appliance-analytics/internal/models"
	"appliance-analytics/internal/rollups"
	"appliance-analytics/internal/shared/loggers"
	"appliance-analytics/internal/shared/ulid"
	"appliance-analytics/internal/stores"
)

const (
	triggerScheduled = "scheduled"
	triggerManual    = "manual"
)

// RunSummary reports what one batch run did. The scheduled path discards it;
// the manual/backfill path returns it to the operator.
type RunSummary struct {
	RunID            string    `json:"runId"`
	Date             time.Time `json:"date"`
	DevicesProcessed int       `json:"devicesProcessed"`
	DevicesFailed    int       `json:"devicesFailed"`
	RowsDeleted      int64     `json:"rowsDeleted"`
}

//go:generate mockgen -source=batch_runner.go -destination=./mocks/batch_runner_mock.go -package=mocks
type BatchRunner interface {
	// RunDailyRollup aggregates yesterday (UTC day boundary) for every active
	// device. Per-device failures are logged and skipped; the run never
	// aborts on one bad device, and errors are reported via logging only.
	RunDailyRollup(ctx context.Context)

	// ManualRollup runs the same batch for a caller-supplied date, defaulting
	// to yesterday UTC when date is nil. Safe to repeat for the same date:
	// the rollup path is upsert-idempotent.
	ManualRollup(ctx context.Context, date *time.Time) *RunSummary
}

type batchRunner struct {
	deviceStore   stores.DeviceStore
	rollupStore   stores.RollupStore
	rollupService rollups.RollupService
	retentionDays int
	workers       int

	logger loggers.Logger
	now    func() time.Time
}

func NewBatchRunner(
	deviceStore stores.DeviceStore,
	rollupStore stores.RollupStore,
	rollupService rollups.RollupService,
	retentionDays int,
	workers int,
	logger loggers.Logger,
) BatchRunner {
	if workers < 1 {
		workers = 1
	}
	return &batchRunner{
		deviceStore:   deviceStore,
		rollupStore:   rollupStore,
		rollupService: rollupService,
		retentionDays: retentionDays,
		workers:       workers,
		logger:        logger,
		now:           time.Now,
	}
}

func (r *batchRunner) RunDailyRollup(ctx context.Context) {
	r.run(ctx, r.yesterdayUTC(), triggerScheduled)
}

func (r *batchRunner) ManualRollup(ctx context.Context, date *time.Time) *RunSummary {
	target := r.yesterdayUTC()
	if date != nil {
		target = models.DayUTC(*date)
	}
	return r.run(ctx, target, triggerManual)
}

func (r *batchRunner) yesterdayUTC() time.Time {
	return models.DayUTC(r.now().UTC().AddDate(0, 0, -1))
}

func (r *batchRunner) run(ctx context.Context, date time.Time, trigger string) *RunSummary {
	start := r.now()
	runID := ulid.NewULID()
	runLogger := r.logger.With().
		Str(loggers.FieldRunID, runID).
		Str(loggers.FieldTrigger, trigger).
		Str(loggers.FieldDate, models.DayKey(date)).
		Logger()
	ctx = runLogger.WithContext(ctx)

	runLogger.Info().Msg("daily rollup run started")
	metricBatchRunsTotal.WithLabelValues(trigger).Inc()

	summary := &RunSummary{RunID: runID, Date: date}

	devices, err := r.deviceStore.ListActiveDevices(ctx)
	if err != nil {
		// Best effort: a registry outage skips aggregation for this run but
		// retention cleanup still happens.
		runLogger.Error().Err(err).Msg("failed to list active devices, skipping aggregation")
		devices = nil
	}

	processed, failed := r.aggregateDevices(ctx, devices, date)
	summary.DevicesProcessed = processed
	summary.DevicesFailed = failed

	summary.RowsDeleted = r.cleanup(ctx)

	metricBatchRunDuration.WithLabelValues(trigger).Observe(r.now().Sub(start).Seconds())
	runLogger.Info().
		Int("devices_processed", processed).
		Int("devices_failed", failed).
		Int64("rows_deleted", summary.RowsDeleted).
		Msg("daily rollup run completed")

	return summary
}

// aggregateDevices fans the device list out to a small worker pool. Each
// device's rollup is independent and keyed by its own (deviceId, date), so no
// cross-device ordering is required.
func (r *batchRunner) aggregateDevices(ctx context.Context, devices []*models.Device, date time.Time) (processed, failed int) {
	if len(devices) == 0 {
		return 0, 0
	}

	jobs := make(chan *models.Device)
	var processedCount, failedCount atomic.Int64

	var wg sync.WaitGroup
	for i := 0; i < r.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for device := range jobs {
				if r.aggregateOne(ctx, device.ID, date) {
					processedCount.Add(1)
				} else {
					failedCount.Add(1)
				}
			}
		}()
	}

	for _, device := range devices {
		jobs <- device
	}
	close(jobs)
	wg.Wait()

	return int(processedCount.Load()), int(failedCount.Load())
}

// aggregateOne isolates a single device: any error or panic is logged with
// device context and absorbed so the remaining devices still get a rollup.
func (r *batchRunner) aggregateOne(ctx context.Context, deviceID string, date time.Time) (ok bool) {
	defer func() {
		if p := recover(); p != nil {
			loggers.Ctx(ctx).Error().
				Str(loggers.FieldDeviceID, deviceID).
				Bytes(loggers.FieldErrorStack, debug.Stack()).
				Msg(fmt.Sprintf("device rollup panic recovered: %v", p))
			metricBatchDevicesFailedTotal.Inc()
			ok = false
		}
	}()

	if _, svcErr := r.rollupService.AggregateDeviceMetrics(ctx, deviceID, date); svcErr != nil {
		loggers.Ctx(ctx).Error().
			Err(svcErr.Cause).
			Str(loggers.FieldDeviceID, deviceID).
			Str(loggers.FieldErrorCode, svcErr.Code).
			Msg("device rollup failed, continuing with remaining devices")
		metricBatchDevicesFailedTotal.Inc()
		return false
	}
	return true
}

// cleanup enforces the retention horizon. A failed delete never retroactively
// fails the aggregation work that already completed.
func (r *batchRunner) cleanup(ctx context.Context) int64 {
	cutoff := models.DayUTC(r.now()).AddDate(0, 0, -r.retentionDays)
	deleted, err := r.rollupStore.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		loggers.Ctx(ctx).Warn().Err(err).Msg("retention cleanup failed")
		return 0
	}
	if deleted > 0 {
		metricBatchRowsDeletedTotal.Add(float64(deleted))
	}
	return deleted
}
