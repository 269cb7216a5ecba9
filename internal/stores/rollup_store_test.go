package stores_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"appliance-analytics/internal/models"
	"appliance-analytics/internal/stores"
	storemocks "appliance-analytics/internal/stores/mocks"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// fakeRows is a minimal pgx.Rows over in-memory values, enough for the
// stores' scan loops.
type fakeRows struct {
	rows    [][]any
	idx     int
	scanErr error
}

func (f *fakeRows) Close()                                       {}
func (f *fakeRows) Err() error                                   { return nil }
func (f *fakeRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (f *fakeRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (f *fakeRows) Values() ([]any, error)                       { return nil, nil }
func (f *fakeRows) RawValues() [][]byte                          { return nil }
func (f *fakeRows) Conn() *pgx.Conn                              { return nil }

func (f *fakeRows) Next() bool {
	if f.idx >= len(f.rows) {
		return false
	}
	f.idx++
	return true
}

func (f *fakeRows) Scan(dest ...any) error {
	if f.scanErr != nil {
		return f.scanErr
	}
	row := f.rows[f.idx-1]
	for i, d := range dest {
		switch d := d.(type) {
		case *string:
			*d = row[i].(string)
		case *int64:
			*d = row[i].(int64)
		case *float64:
			*d = row[i].(float64)
		case *time.Time:
			*d = row[i].(time.Time)
		default:
			return fmt.Errorf("unsupported scan dest %T", d)
		}
	}
	return nil
}

func rollupRow(deviceID string, date time.Time, base int64) []any {
	return []any{deviceID, date, base * 4, base, base, base, base, float64(base), base}
}

func TestRollupStore_Upsert_ConflictTargetAndArgs(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	db := storemocks.NewMockQuerier(ctrl)
	store := stores.NewRollupStore(db)

	rollup := &models.DailyRollup{
		DeviceID:            "device-1",
		Date:                time.Date(2024, 3, 15, 14, 30, 0, 0, time.UTC),
		ThreatsBlocked:      200,
		MalwareBlocked:      50,
		IPSBlocked:          100,
		BlockedConnections:  40,
		WebFilterHits:       15,
		BandwidthTotalMB:    12.5,
		ActiveSessionsCount: 9,
	}

	db.EXPECT().
		Exec(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(),
			gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
			// The conflict target is exactly the (device_id, date) pair, and
			// conflicts replace every derived field rather than accumulating.
			assert.Contains(t, sql, "ON CONFLICT (device_id, date) DO UPDATE SET")
			assert.Contains(t, sql, "threats_blocked = EXCLUDED.threats_blocked")
			assert.NotContains(t, sql, "+ EXCLUDED")

			require.Len(t, args, 9)
			assert.Equal(t, "device-1", args[0])
			// Date is normalized to midnight UTC before storage.
			assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), args[1])
			assert.Equal(t, int64(200), args[2])
			assert.Equal(t, int64(50), args[3])
			assert.Equal(t, int64(100), args[4])
			assert.Equal(t, int64(40), args[5])
			assert.Equal(t, int64(15), args[6])
			assert.Equal(t, 12.5, args[7])
			assert.Equal(t, int64(9), args[8])
			return pgconn.NewCommandTag("INSERT 0 1"), nil
		})

	require.NoError(t, store.Upsert(context.Background(), rollup))
}

func TestRollupStore_Upsert_ErrorIsWrapped(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	db := storemocks.NewMockQuerier(ctrl)
	store := stores.NewRollupStore(db)

	db.EXPECT().
		Exec(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(),
			gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(pgconn.CommandTag{}, errors.New("connection refused"))

	err := store.Upsert(context.Background(), &models.DailyRollup{DeviceID: "device-1"})
	assert.ErrorContains(t, err, "failed to upsert daily rollup")
}

func TestRollupStore_DeleteOlderThan(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	db := storemocks.NewMockQuerier(ctrl)
	store := stores.NewRollupStore(db)

	cutoff := time.Date(2023, 12, 16, 8, 0, 0, 0, time.UTC)
	db.EXPECT().
		Exec(gomock.Any(), gomock.Any(), time.Date(2023, 12, 16, 0, 0, 0, 0, time.UTC)).
		DoAndReturn(func(_ context.Context, sql string, _ ...any) (pgconn.CommandTag, error) {
			assert.Contains(t, sql, "DELETE FROM daily_rollups WHERE date < $1")
			return pgconn.NewCommandTag("DELETE 3"), nil
		})

	deleted, err := store.DeleteOlderThan(context.Background(), cutoff)
	require.NoError(t, err)
	assert.Equal(t, int64(3), deleted)
}

func TestRollupStore_ListRange(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	db := storemocks.NewMockQuerier(ctrl)
	store := stores.NewRollupStore(db)

	day1 := time.Date(2024, 3, 14, 0, 0, 0, 0, time.UTC)
	day2 := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	db.EXPECT().
		Query(gomock.Any(), gomock.Any(), "device-1", day1, day2).
		Return(&fakeRows{rows: [][]any{
			rollupRow("device-1", day1, 10),
			rollupRow("device-1", day2, 20),
		}}, nil)

	rollups, err := store.ListRange(context.Background(), "device-1", day1, day2)
	require.NoError(t, err)
	require.Len(t, rollups, 2)
	assert.Equal(t, day1, rollups[0].Date)
	assert.Equal(t, int64(40), rollups[0].ThreatsBlocked)
	assert.Equal(t, day2, rollups[1].Date)
	assert.Equal(t, int64(80), rollups[1].ThreatsBlocked)
}

func TestRollupStore_ListRange_ScanError(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	db := storemocks.NewMockQuerier(ctrl)
	store := stores.NewRollupStore(db)

	day := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	db.EXPECT().
		Query(gomock.Any(), gomock.Any(), "device-1", day, day).
		Return(&fakeRows{rows: [][]any{rollupRow("device-1", day, 1)}, scanErr: errors.New("type mismatch")}, nil)

	_, err := store.ListRange(context.Background(), "device-1", day, day)
	assert.ErrorContains(t, err, "failed to scan rollup row")
}
