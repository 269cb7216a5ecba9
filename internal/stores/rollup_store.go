package stores

import (
	"context"
	"fmt"
	"time"

	"appliance-analytics/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Querier is the subset of pgxpool.Pool the stores use. Tests substitute a
// fake; production wiring passes the pool directly.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// RollupStore persists one row per (device_id, date). Writes from this
// subsystem are upsert-only: on conflict every derived field is replaced with
// the freshly computed value, never accumulated, so re-running a day is
// idempotent.
//
//go:generate mockgen -source=rollup_store.go -destination=./mocks/rollup_store_mock.go -package=mocks
type RollupStore interface {
	Upsert(ctx context.Context, rollup *models.DailyRollup) error
	// DeleteOlderThan removes rollup rows whose date is before cutoff and
	// returns the number of rows removed.
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
	ListRange(ctx context.Context, deviceID string, from, to time.Time) ([]*models.DailyRollup, error)
}

const upsertRollupSQL = `INSERT INTO daily_rollups (
		device_id, date, threats_blocked, malware_blocked, ips_blocked,
		blocked_connections, web_filter_hits, bandwidth_total_mb, active_sessions_count
	) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	ON CONFLICT (device_id, date) DO UPDATE SET
		threats_blocked = EXCLUDED.threats_blocked,
		malware_blocked = EXCLUDED.malware_blocked,
		ips_blocked = EXCLUDED.ips_blocked,
		blocked_connections = EXCLUDED.blocked_connections,
		web_filter_hits = EXCLUDED.web_filter_hits,
		bandwidth_total_mb = EXCLUDED.bandwidth_total_mb,
		active_sessions_count = EXCLUDED.active_sessions_count`

const deleteRollupsOlderThanSQL = `DELETE FROM daily_rollups WHERE date < $1`

const listRollupRangeSQL = `SELECT
		device_id, date, threats_blocked, malware_blocked, ips_blocked,
		blocked_connections, web_filter_hits, bandwidth_total_mb, active_sessions_count
	FROM daily_rollups
	WHERE device_id = $1 AND date >= $2 AND date <= $3
	ORDER BY date`

type rollupStore struct {
	db Querier
}

func NewRollupStore(db Querier) RollupStore {
	return &rollupStore{db: db}
}

func (s *rollupStore) Upsert(ctx context.Context, rollup *models.DailyRollup) error {
	_, err := s.db.Exec(ctx, upsertRollupSQL,
		rollup.DeviceID,
		models.DayUTC(rollup.Date),
		rollup.ThreatsBlocked,
		rollup.MalwareBlocked,
		rollup.IPSBlocked,
		rollup.BlockedConnections,
		rollup.WebFilterHits,
		rollup.BandwidthTotalMB,
		rollup.ActiveSessionsCount,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert daily rollup: %w", err)
	}
	return nil
}

func (s *rollupStore) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	tag, err := s.db.Exec(ctx, deleteRollupsOlderThanSQL, models.DayUTC(cutoff))
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired rollups: %w", err)
	}
	return tag.RowsAffected(), nil
}

func (s *rollupStore) ListRange(ctx context.Context, deviceID string, from, to time.Time) ([]*models.DailyRollup, error) {
	rows, err := s.db.Query(ctx, listRollupRangeSQL, deviceID, models.DayUTC(from), models.DayUTC(to))
	if err != nil {
		return nil, fmt.Errorf("failed to list rollups: %w", err)
	}
	defer rows.Close()

	var rollups []*models.DailyRollup
	for rows.Next() {
		var r models.DailyRollup
		if err := rows.Scan(
			&r.DeviceID,
			&r.Date,
			&r.ThreatsBlocked,
			&r.MalwareBlocked,
			&r.IPSBlocked,
			&r.BlockedConnections,
			&r.WebFilterHits,
			&r.BandwidthTotalMB,
			&r.ActiveSessionsCount,
		); err != nil {
			return nil, fmt.Errorf("failed to scan rollup row: %w", err)
		}
		r.Date = models.DayUTC(r.Date)
		rollups = append(rollups, &r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate rollup rows: %w", err)
	}
	return rollups, nil
}
