package stores_test

import (
	"context"
	"testing"
	"time"

	"appliance-analytics/internal/models"
	"appliance-analytics/internal/stores"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSnapshotStore(t *testing.T, ttlDays int) (stores.SnapshotStore, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return stores.NewSnapshotStore(client, ttlDays), mr
}

func TestSnapshotStore_DailySnapshot_RoundTrip(t *testing.T) {
	t.Parallel()

	store, _ := newTestSnapshotStore(t, 7)
	ctx := context.Background()
	date := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)

	sessions := int64(12)
	snapshot := &models.CounterSnapshot{
		IPSBlocks:           100,
		GAVBlocks:           50,
		ContentFilterBlocks: 15,
		ActiveSessionsCount: &sessions,
	}

	require.NoError(t, store.SetDailySnapshot(ctx, "device-1", date, snapshot))

	got, err := store.GetDailySnapshot(ctx, "device-1", date)
	require.NoError(t, err)
	assert.Equal(t, snapshot, got)

	// Optional fields absent in storage stay nil on read.
	bare := &models.CounterSnapshot{IPSBlocks: 1}
	require.NoError(t, store.SetDailySnapshot(ctx, "device-2", date, bare))
	got, err = store.GetDailySnapshot(ctx, "device-2", date)
	require.NoError(t, err)
	assert.Nil(t, got.BandwidthTotalMB)
	assert.Nil(t, got.ActiveSessionsCount)
}

func TestSnapshotStore_DailySnapshot_KeyedByCalendarDay(t *testing.T) {
	t.Parallel()

	store, _ := newTestSnapshotStore(t, 7)
	ctx := context.Background()

	snapshot := &models.CounterSnapshot{IPSBlocks: 42}
	require.NoError(t, store.SetDailySnapshot(ctx, "device-1", time.Date(2024, 3, 15, 23, 59, 0, 0, time.UTC), snapshot))

	// Any time-of-day within the same UTC day resolves the same entry.
	got, err := store.GetDailySnapshot(ctx, "device-1", time.Date(2024, 3, 15, 0, 30, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, snapshot, got)

	// A different day is a different key.
	got, err = store.GetDailySnapshot(ctx, "device-1", time.Date(2024, 3, 16, 0, 30, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestSnapshotStore_GetDailySnapshot_MissReturnsNilNil(t *testing.T) {
	t.Parallel()

	store, _ := newTestSnapshotStore(t, 7)

	got, err := store.GetDailySnapshot(context.Background(), "device-1", time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestSnapshotStore_Expiry_IndistinguishableFromNeverRecorded(t *testing.T) {
	t.Parallel()

	store, mr := newTestSnapshotStore(t, 2)
	ctx := context.Background()
	date := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)

	require.NoError(t, store.SetDailySnapshot(ctx, "device-1", date, &models.CounterSnapshot{IPSBlocks: 1}))
	require.NoError(t, store.SetCurrentState(ctx, &models.PollingState{DeviceID: "device-1"}))

	mr.FastForward(3 * 24 * time.Hour)

	got, err := store.GetDailySnapshot(ctx, "device-1", date)
	require.NoError(t, err)
	assert.Nil(t, got, "expired entry reads the same as one never recorded")

	state, err := store.GetCurrentState(ctx, "device-1")
	require.NoError(t, err)
	assert.Nil(t, state)
}

func TestSnapshotStore_CurrentState_RoundTrip(t *testing.T) {
	t.Parallel()

	store, _ := newTestSnapshotStore(t, 7)
	ctx := context.Background()

	state := &models.PollingState{
		DeviceID:     "device-1",
		LastPolledAt: time.Date(2024, 3, 15, 13, 45, 0, 0, time.UTC),
		LastCounters: models.CounterSnapshot{IPSBlocks: 9, BotnetBlocks: 4},
	}
	require.NoError(t, store.SetCurrentState(ctx, state))

	got, err := store.GetCurrentState(ctx, "device-1")
	require.NoError(t, err)
	assert.Equal(t, state, got)

	missing, err := store.GetCurrentState(ctx, "device-unknown")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestSnapshotStore_MalformedEntryReturnsError(t *testing.T) {
	t.Parallel()

	store, mr := newTestSnapshotStore(t, 7)
	ctx := context.Background()
	date := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)

	require.NoError(t, mr.Set("counters:daily:device-1:2024-03-15", "{not json"))
	require.NoError(t, mr.Set("counters:current:device-1", "{not json"))

	_, err := store.GetDailySnapshot(ctx, "device-1", date)
	assert.ErrorContains(t, err, "failed to unmarshal daily snapshot")

	_, err = store.GetCurrentState(ctx, "device-1")
	assert.ErrorContains(t, err, "failed to unmarshal current state")
}
