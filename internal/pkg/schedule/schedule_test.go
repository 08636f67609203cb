//go:build unit

package schedule_test

import (
	"testing"
	"time"

	"lunchmate/internal/pkg/schedule"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDayOf(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Tokyo")
	require.NoError(t, err)

	testCases := []struct {
		name     string
		input    time.Time
		expected schedule.Day
	}{
		{
			name:     "strips time of day",
			input:    time.Date(2025, 6, 10, 17, 45, 12, 999, time.UTC),
			expected: schedule.NewDay(2025, time.June, 10),
		},
		{
			name:     "keeps the calendar date of the value's own location",
			input:    time.Date(2025, 6, 10, 1, 0, 0, 0, loc),
			expected: schedule.NewDay(2025, time.June, 10),
		},
		{
			name:     "midnight is unchanged",
			input:    time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
			expected: schedule.NewDay(2025, time.January, 1),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, schedule.DayOf(tc.input))
		})
	}
}

func TestParseDay(t *testing.T) {
	t.Run("valid date", func(t *testing.T) {
		d, err := schedule.ParseDay("2025-06-10")
		require.NoError(t, err)
		assert.Equal(t, schedule.NewDay(2025, time.June, 10), d)
	})

	t.Run("invalid date", func(t *testing.T) {
		_, err := schedule.ParseDay("10/06/2025")
		require.ErrorIs(t, err, schedule.ErrInvalidDate)
	})
}

func TestUTCKey(t *testing.T) {
	d := schedule.NewDay(2025, time.June, 10)
	assert.Equal(t, time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC), d.UTCKey())

	// The key is deterministic regardless of how the day was obtained.
	cr := schedule.ResolveLocation("America/Costa_Rica")
	fromLocal := schedule.DayOf(time.Date(2025, 6, 10, 23, 0, 0, 0, cr))
	assert.Equal(t, d.UTCKey(), fromLocal.UTCKey())
}

func TestAddDays(t *testing.T) {
	d := schedule.NewDay(2025, time.June, 30)
	assert.Equal(t, schedule.NewDay(2025, time.July, 1), d.AddDays(1))
	assert.Equal(t, schedule.NewDay(2025, time.June, 23), d.AddDays(-7))
}

func TestResolveLocation(t *testing.T) {
	testCases := []struct {
		name     string
		tzID     string
		expected string
	}{
		{name: "known zone", tzID: "America/Costa_Rica", expected: "America/Costa_Rica"},
		{name: "empty falls back to UTC", tzID: "", expected: "UTC"},
		{name: "garbage falls back to UTC", tzID: "Not/AZone", expected: "UTC"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, schedule.ResolveLocation(tc.tzID).String())
		})
	}
}

func TestCancelUntil(t *testing.T) {
	testCases := []struct {
		name     string
		day      schedule.Day
		tzID     string
		expected time.Time
	}{
		{
			name:     "UTC zone",
			day:      schedule.NewDay(2025, time.June, 10),
			tzID:     "UTC",
			expected: time.Date(2025, 6, 10, 8, 0, 0, 0, time.UTC),
		},
		{
			// Costa Rica is UTC-6 year round (no DST).
			name:     "Costa Rica offset",
			day:      schedule.NewDay(2025, time.June, 10),
			tzID:     "America/Costa_Rica",
			expected: time.Date(2025, 6, 10, 14, 0, 0, 0, time.UTC),
		},
		{
			// New York is UTC-4 during daylight saving time.
			name:     "DST summer offset",
			day:      schedule.NewDay(2025, time.July, 1),
			tzID:     "America/New_York",
			expected: time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC),
		},
		{
			// And UTC-5 in winter.
			name:     "DST winter offset",
			day:      schedule.NewDay(2025, time.January, 15),
			tzID:     "America/New_York",
			expected: time.Date(2025, 1, 15, 13, 0, 0, 0, time.UTC),
		},
		{
			name:     "unresolvable zone degrades to UTC",
			day:      schedule.NewDay(2025, time.June, 10),
			tzID:     "Mars/Olympus_Mons",
			expected: time.Date(2025, 6, 10, 8, 0, 0, 0, time.UTC),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			actual := schedule.CancelUntil(tc.day, tc.tzID)
			assert.True(t, tc.expected.Equal(actual), "expected %s, got %s", tc.expected, actual)
		})
	}
}
