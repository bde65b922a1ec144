package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateLabel(t *testing.T) {
	now := time.Date(2025, 3, 10, 0, 1, 0, 0, time.UTC)

	tests := []struct {
		name string
		ts   time.Time
		want string
	}{
		{"same day", time.Date(2025, 3, 10, 0, 0, 30, 0, time.UTC), LabelToday},
		{"later same day is still today", time.Date(2025, 3, 10, 23, 0, 0, 0, time.UTC), LabelToday},
		{"just before midnight", time.Date(2025, 3, 9, 23, 59, 0, 0, time.UTC), LabelYesterday},
		{"full day before", time.Date(2025, 3, 9, 0, 1, 0, 0, time.UTC), LabelYesterday},
		{"two days ago", time.Date(2025, 3, 8, 12, 0, 0, 0, time.UTC), LabelEarlier},
		{"last year", time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC), LabelEarlier},
		{"zero timestamp", time.Time{}, LabelUnknown},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, DateLabel(tc.ts, now))
		})
	}
}

func TestDateLabel_AcrossDSTTransition(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	// March 9 2025 is the 23-hour spring-forward day; it is still a
	// full calendar day before March 10.
	ts := time.Date(2025, 3, 9, 1, 0, 0, 0, loc)
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, loc)
	assert.Equal(t, LabelYesterday, DateLabel(ts, now))

	// Same pair within the short day itself.
	assert.Equal(t, LabelToday, DateLabel(ts, time.Date(2025, 3, 9, 23, 0, 0, 0, loc)))

	// November 2 2025 is the 25-hour fall-back day.
	ts = time.Date(2025, 11, 2, 1, 0, 0, 0, loc)
	now = time.Date(2025, 11, 3, 12, 0, 0, 0, loc)
	assert.Equal(t, LabelYesterday, DateLabel(ts, now))

	ts = time.Date(2025, 11, 1, 23, 0, 0, 0, loc)
	assert.Equal(t, LabelEarlier, DateLabel(ts, now))
}

func TestDateLabel_CalendarDayNotElapsedHours(t *testing.T) {
	// Two minutes of elapsed time, but spanning a midnight.
	ts := time.Date(2025, 3, 9, 23, 59, 0, 0, time.UTC)
	now := time.Date(2025, 3, 10, 0, 1, 0, 0, time.UTC)
	assert.Equal(t, LabelYesterday, DateLabel(ts, now))

	// Twenty-three hours of elapsed time within one calendar day.
	ts = time.Date(2025, 3, 10, 0, 30, 0, 0, time.UTC)
	now = time.Date(2025, 3, 10, 23, 30, 0, 0, time.UTC)
	assert.Equal(t, LabelToday, DateLabel(ts, now))
}
