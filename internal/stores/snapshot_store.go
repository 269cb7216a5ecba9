package stores

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"appliance-analytics/internal/models"

	"github.com/redis/go-redis/v9"
)

const (
	dailySnapshotKeyPrefix = "counters:daily"
	currentStateKeyPrefix  = "counters:current"
)

// SnapshotStore holds the per-device cumulative security counters written by
// the external polling collector. Entries expire after the configured TTL;
// an expired entry is indistinguishable from one that was never recorded, so
// both read paths return (nil, nil) on a miss and callers must fall back.
//
//go:generate mockgen -source=snapshot_store.go -destination=./mocks/snapshot_store_mock.go -package=mocks
type SnapshotStore interface {
	// GetDailySnapshot returns the end-of-day counters for (deviceID, date),
	// or (nil, nil) when no entry exists.
	GetDailySnapshot(ctx context.Context, deviceID string, date time.Time) (*models.CounterSnapshot, error)
	SetDailySnapshot(ctx context.Context, deviceID string, date time.Time, snapshot *models.CounterSnapshot) error

	// GetCurrentState returns the live polling state for deviceID, or
	// (nil, nil) when the device has never been polled or the entry expired.
	GetCurrentState(ctx context.Context, deviceID string) (*models.PollingState, error)
	SetCurrentState(ctx context.Context, state *models.PollingState) error
}

type snapshotStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewSnapshotStore(client *redis.Client, ttlDays int) SnapshotStore {
	return &snapshotStore{
		client: client,
		ttl:    time.Duration(ttlDays) * 24 * time.Hour,
	}
}

func (s *snapshotStore) GetDailySnapshot(ctx context.Context, deviceID string, date time.Time) (*models.CounterSnapshot, error) {
	data, err := s.client.Get(ctx, dailySnapshotKey(deviceID, date)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get daily snapshot: %w", err)
	}

	var snapshot models.CounterSnapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("failed to unmarshal daily snapshot: %w", err)
	}
	return &snapshot, nil
}

func (s *snapshotStore) SetDailySnapshot(ctx context.Context, deviceID string, date time.Time, snapshot *models.CounterSnapshot) error {
	data, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("failed to marshal daily snapshot: %w", err)
	}
	if err := s.client.Set(ctx, dailySnapshotKey(deviceID, date), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set daily snapshot: %w", err)
	}
	return nil
}

func (s *snapshotStore) GetCurrentState(ctx context.Context, deviceID string) (*models.PollingState, error) {
	data, err := s.client.Get(ctx, currentStateKey(deviceID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get current state: %w", err)
	}

	var state models.PollingState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("failed to unmarshal current state: %w", err)
	}
	return &state, nil
}

func (s *snapshotStore) SetCurrentState(ctx context.Context, state *models.PollingState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to marshal current state: %w", err)
	}
	if err := s.client.Set(ctx, currentStateKey(state.DeviceID), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set current state: %w", err)
	}
	return nil
}

func dailySnapshotKey(deviceID string, date time.Time) string {
	return fmt.Sprintf("%s:%s:%s", dailySnapshotKeyPrefix, deviceID, models.DayKey(date))
}

func currentStateKey(deviceID string) string {
	return fmt.Sprintf("%s:%s", currentStateKeyPrefix, deviceID)
}
