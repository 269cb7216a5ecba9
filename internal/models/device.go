package models

// DeviceStatusActive marks devices included in scheduled rollup runs.
const DeviceStatusActive = "active"

// Device is the registry entry for one managed security appliance. The
// registry itself is owned externally; the rollup only reads it.
type Device struct {
	ID       string `json:"id"`
	Status   string `json:"status"`
	TenantID string `json:"tenantId"`
}

func (d *Device) IsActive() bool {
	return d.Status == DeviceStatusActive
}
