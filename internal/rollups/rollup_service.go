package rollups

import (
	"context"
	"time"

	"appliance-analytics/internal/models"
	"appliance-analytics/internal/shared/loggers"
	"appliance-analytics/internal/shared/svcerrors"
	"appliance-analytics/internal/stores"
)

// Counter source labels, in resolution order.
const (
	sourceDaily   = "daily_snapshot"
	sourceCurrent = "current_state"
	sourceZero    = "zero"
)

//go:generate mockgen -source=rollup_service.go -destination=./mocks/rollup_service_mock.go -package=mocks
type RollupService interface {
	// AggregateDeviceMetrics resolves the best-available counter snapshot for
	// (deviceID, date), derives the daily aggregate fields and upserts the
	// resulting row. The caller is responsible for normalizing date to
	// midnight UTC; the service treats it as an opaque key.
	AggregateDeviceMetrics(ctx context.Context, deviceID string, date time.Time) (*models.DailyRollup, *svcerrors.ServiceError)
}

type rollupService struct {
	deriver       RollupDeriver
	snapshotStore stores.SnapshotStore
	rollupStore   stores.RollupStore
}

func NewRollupService(deriver RollupDeriver, snapshotStore stores.SnapshotStore, rollupStore stores.RollupStore) RollupService {
	return &rollupService{
		deriver:       deriver,
		snapshotStore: snapshotStore,
		rollupStore:   rollupStore,
	}
}

func (s *rollupService) AggregateDeviceMetrics(ctx context.Context, deviceID string, date time.Time) (*models.DailyRollup, *svcerrors.ServiceError) {
	if deviceID == "" {
		return nil, errInvalidDeviceID()
	}

	logger := loggers.Ctx(ctx)
	logger.Debug().
		Str(loggers.FieldDeviceID, deviceID).
		Str(loggers.FieldDate, models.DayKey(date)).
		Msg("started aggregating device metrics")

	counters, source := s.resolveCounters(ctx, deviceID, date)
	rollup := s.deriver.Derive(deviceID, date, counters)

	if err := s.rollupStore.Upsert(ctx, rollup); err != nil {
		return nil, errInternalRollupStoreFailed(err)
	}

	metricDeviceRollupsTotal.WithLabelValues(source).Inc()
	return rollup, nil
}

// resolveCounters walks the counter sources in order: day-specific snapshot,
// then live polling state, then zeros. First hit wins; sources are never
// merged. Read failures are treated the same as misses so a transient cache
// outage does not block a device's rollup.
func (s *rollupService) resolveCounters(ctx context.Context, deviceID string, date time.Time) (*models.CounterSnapshot, string) {
	logger := loggers.Ctx(ctx)

	snapshot, err := s.snapshotStore.GetDailySnapshot(ctx, deviceID, date)
	if err != nil {
		logger.Warn().
			Err(err).
			Str(loggers.FieldDeviceID, deviceID).
			Msg("daily snapshot read failed, falling back to current state")
	} else if snapshot != nil {
		return snapshot, sourceDaily
	}

	state, err := s.snapshotStore.GetCurrentState(ctx, deviceID)
	if err != nil {
		logger.Warn().
			Err(err).
			Str(loggers.FieldDeviceID, deviceID).
			Msg("current state read failed, using zero counters")
	} else if state != nil {
		return &state.LastCounters, sourceCurrent
	}

	return &models.CounterSnapshot{}, sourceZero
}
