package models

import "time"

// CounterSnapshot captures the last-known cumulative security counters for one
// appliance at one point in time. All counter fields count events since the
// appliance's epoch, not per-day deltas; the rollup uses the final value of the
// day as-is.
type CounterSnapshot struct {
	IPSBlocks           int64 `json:"ipsBlocks"`
	GAVBlocks           int64 `json:"gavBlocks"`
	DPISSLBlocks        int64 `json:"dpiSslBlocks"`
	ATPVerdicts         int64 `json:"atpVerdicts"`
	AppControlBlocks    int64 `json:"appControlBlocks"`
	BotnetBlocks        int64 `json:"botnetBlocks"`
	ContentFilterBlocks int64 `json:"contentFilterBlocks"`
	BlockedConnections  int64 `json:"blockedConnections"`

	// Not every appliance firmware reports these; nil means "not available
	// from this device's API" and defaults to 0 downstream.
	BandwidthTotalMB    *float64 `json:"bandwidthTotalMb,omitempty"`
	ActiveSessionsCount *int64   `json:"activeSessionsCount,omitempty"`
}

// PollingState is the live per-device state maintained by the external
// collector, used as the fallback counter source when no day-specific
// snapshot exists.
type PollingState struct {
	DeviceID     string          `json:"deviceId"`
	LastPolledAt time.Time       `json:"lastPolledAt"`
	LastCounters CounterSnapshot `json:"lastCounters"`
}
