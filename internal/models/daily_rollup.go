package models

import "time"

const dayKeyLayout = "2006-01-02"

// DailyRollup is one persisted summary row per (deviceId, date). It is derived
// data and can always be rebuilt from the counter snapshot of that day.
type DailyRollup struct {
	DeviceID            string    `json:"deviceId"`
	Date                time.Time `json:"date"`
	ThreatsBlocked      int64     `json:"threatsBlocked"`
	MalwareBlocked      int64     `json:"malwareBlocked"`
	IPSBlocked          int64     `json:"ipsBlocked"`
	BlockedConnections  int64     `json:"blockedConnections"`
	WebFilterHits       int64     `json:"webFilterHits"`
	BandwidthTotalMB    float64   `json:"bandwidthTotalMb"`
	ActiveSessionsCount int64     `json:"activeSessionsCount"`
}

// DayUTC normalizes t to midnight UTC of its calendar day. Every (deviceId,
// date) key goes through this before lookup or storage.
func DayUTC(t time.Time) time.Time {
	utc := t.UTC()
	return time.Date(utc.Year(), utc.Month(), utc.Day(), 0, 0, 0, 0, time.UTC)
}

// DayKey formats the calendar-day portion of t, e.g. "2024-03-15". The
// time-of-day component of the input does not leak into the key.
func DayKey(t time.Time) string {
	return t.UTC().Format(dayKeyLayout)
}

// ParseDayKey parses a "2006-01-02" day key into midnight UTC.
func ParseDayKey(s string) (time.Time, error) {
	return time.ParseInLocation(dayKeyLayout, s, time.UTC)
}
