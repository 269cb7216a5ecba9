package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDayUTC(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    time.Time
		expected time.Time
	}{
		{
			name:     "mid-day UTC truncates to midnight",
			input:    time.Date(2024, 3, 15, 14, 30, 12, 999, time.UTC),
			expected: time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "already midnight UTC is unchanged",
			input:    time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
			expected: time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "non-UTC input converts to UTC day first",
			input:    time.Date(2024, 3, 15, 22, 0, 0, 0, time.FixedZone("EST", -5*3600)),
			expected: time.Date(2024, 3, 16, 0, 0, 0, 0, time.UTC), // 22:00 EST = 03:00 UTC next day
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, DayUTC(tt.input))
		})
	}
}

func TestDayKey(t *testing.T) {
	t.Parallel()

	// Time-of-day must not leak into the stored key.
	assert.Equal(t, "2024-03-15", DayKey(time.Date(2024, 3, 15, 14, 30, 0, 0, time.UTC)))
	assert.Equal(t, "2024-03-15", DayKey(time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2024-03-15", DayKey(time.Date(2024, 3, 15, 23, 59, 59, 0, time.UTC)))
}

func TestParseDayKey(t *testing.T) {
	t.Parallel()

	parsed, err := ParseDayKey("2024-03-15")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), parsed)

	_, err = ParseDayKey("15/03/2024")
	assert.Error(t, err)
}

func TestDayKey_RoundTripsWithParseDayKey(t *testing.T) {
	t.Parallel()

	day := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	parsed, err := ParseDayKey(DayKey(day.Add(14*time.Hour + 30*time.Minute)))
	require.NoError(t, err)
	assert.Equal(t, day, parsed)
}
