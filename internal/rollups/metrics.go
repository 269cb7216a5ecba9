package rollups

import (
	"appliance-analytics/internal/shared/metrics"
)

// metricDeviceRollupsTotal counts completed device rollups by the counter
// source that fed them.
//
// The counter_source label records which step of the resolution chain won:
//   - "daily_snapshot": the day-specific cache entry was present
//   - "current_state": fell back to the device's live polling state
//   - "zero": no counter data was available; an all-zero row was written
//
// A rising "zero" rate usually means the collector stopped writing the cache
// (or the snapshot TTL is shorter than the gap to the rollup run), not that
// the appliances went quiet.
var (
	metricDeviceRollupsTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubRollup,
			Name:      "device_rollups_total",
		},
		[]string{"counter_source"},
	)
)
