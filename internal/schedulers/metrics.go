package schedulers

import (
	"appliance-analytics/internal/shared/metrics"
)

var (
	// metricBatchRunsTotal counts batch runs by trigger ("scheduled" or "manual").
	metricBatchRunsTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubScheduler,
			Name:      "batch_runs_total",
		},
		[]string{"trigger"},
	)

	metricBatchRunDuration = metrics.NewHistogramVec(
		metrics.HistogramOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubScheduler,
			Name:      "batch_run_duration_seconds",
			Buckets:   metrics.DefBuckets,
		},
		[]string{"trigger"},
	)

	// metricBatchDevicesFailedTotal counts devices skipped by per-device
	// isolation. Alert on rate, not presence: a single flaky appliance is
	// expected noise.
	metricBatchDevicesFailedTotal = metrics.NewCounter(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubScheduler,
			Name:      "batch_devices_failed_total",
		},
	)

	metricBatchRowsDeletedTotal = metrics.NewCounter(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubScheduler,
			Name:      "batch_retention_rows_deleted_total",
		},
	)
)
