package rollups

import (
	"time"

	"appliance-analytics/internal/models"
)

//go:generate mockgen -source=rollup_deriver.go -destination=./mocks/rollup_deriver_mock.go -package=mocks
type RollupDeriver interface {
	// Derive computes the daily rollup row for one device from the final
	// cumulative counter values of that day. A nil counters argument is
	// treated as all-zero counters.
	Derive(deviceID string, date time.Time, counters *models.CounterSnapshot) *models.DailyRollup
}

type rollupDeriver struct{}

func NewRollupDeriver() RollupDeriver {
	return &rollupDeriver{}
}

func (d *rollupDeriver) Derive(deviceID string, date time.Time, counters *models.CounterSnapshot) *models.DailyRollup {
	if counters == nil {
		counters = &models.CounterSnapshot{}
	}

	rollup := &models.DailyRollup{
		DeviceID: deviceID,
		Date:     date,
		// threatsBlocked sums exactly these four counters. DPI-SSL,
		// app-control, content-filter and blocked-connection counts are
		// reported through their own fields and stay out of this sum.
		ThreatsBlocked:     counters.IPSBlocks + counters.GAVBlocks + counters.ATPVerdicts + counters.BotnetBlocks,
		MalwareBlocked:     counters.GAVBlocks,
		IPSBlocked:         counters.IPSBlocks,
		BlockedConnections: counters.BlockedConnections,
		WebFilterHits:      counters.ContentFilterBlocks,
	}

	// Optional fields default to zero when the device's API does not report
	// them; a nil pointer never propagates past this point.
	if counters.BandwidthTotalMB != nil {
		rollup.BandwidthTotalMB = *counters.BandwidthTotalMB
	}
	if counters.ActiveSessionsCount != nil {
		rollup.ActiveSessionsCount = *counters.ActiveSessionsCount
	}

	return rollup
}
