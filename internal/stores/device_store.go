package stores

import (
	"context"
	"fmt"

	"appliance-analytics/internal/models"
)

// DeviceStore reads the externally owned appliance registry.
//
//go:generate mockgen -source=device_store.go -destination=./mocks/device_store_mock.go -package=mocks
type DeviceStore interface {
	ListActiveDevices(ctx context.Context) ([]*models.Device, error)
}

const listActiveDevicesSQL = `SELECT id, status, tenant_id
	FROM devices
	WHERE status = $1
	ORDER BY id`

type deviceStore struct {
	db Querier
}

func NewDeviceStore(db Querier) DeviceStore {
	return &deviceStore{db: db}
}

func (s *deviceStore) ListActiveDevices(ctx context.Context) ([]*models.Device, error) {
	rows, err := s.db.Query(ctx, listActiveDevicesSQL, models.DeviceStatusActive)
	if err != nil {
		return nil, fmt.Errorf("failed to list active devices: %w", err)
	}
	defer rows.Close()

	var devices []*models.Device
	for rows.Next() {
		var d models.Device
		if err := rows.Scan(&d.ID, &d.Status, &d.TenantID); err != nil {
			return nil, fmt.Errorf("failed to scan device row: %w", err)
		}
		devices = append(devices, &d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate device rows: %w", err)
	}
	return devices, nil
}
