package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lockerhub/boxhub/internal/store"
)

func record(boxID, userID string, hour int) store.HistoryRecord {
	return store.HistoryRecord{
		ID:        "ev-" + boxID + "-" + userID,
		BoxID:     boxID,
		UserID:    userID,
		Type:      store.EventDelivery,
		Timestamp: time.Date(2025, 3, 10, hour, 0, 0, 0, time.UTC),
	}
}

func TestTimeOfDayBucket(t *testing.T) {
	tests := []struct {
		hour int
		want string
	}{
		{0, BucketNight},
		{5, BucketNight},
		{6, BucketMorning},
		{11, BucketMorning},
		{12, BucketAfternoon},
		{17, BucketAfternoon},
		{18, BucketEvening},
		{23, BucketEvening},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, TimeOfDayBucket(tc.hour), "hour %d", tc.hour)
	}
}

func TestAggregate(t *testing.T) {
	records := []store.HistoryRecord{
		record("BOX-A", "user-001", 9),
		record("BOX-A", "user-002", 13),
		record("BOX-B", "user-001", 19),
		record("BOX-C", "user-003", 2),
	}

	summary := Aggregate(records)

	assert.Equal(t, 4, summary.TotalEvents)
	assert.Equal(t, map[string]int{"BOX-A": 2, "BOX-B": 1, "BOX-C": 1}, summary.ByBox)
	assert.Equal(t, map[string]int{"user-001": 2, "user-002": 1, "user-003": 1}, summary.ByUser)
	assert.Equal(t, map[string]int{
		BucketMorning:   1,
		BucketAfternoon: 1,
		BucketEvening:   1,
		BucketNight:     1,
	}, summary.ByTimeOfDay)
}

func TestAggregate_EmptyHistory(t *testing.T) {
	summary := Aggregate(nil)

	assert.Zero(t, summary.TotalEvents)
	assert.Empty(t, summary.ByBox)
	assert.Empty(t, summary.ByUser)
	assert.Empty(t, summary.ByTimeOfDay)
	// Maps must still be allocated so the JSON encoding is {}, not null.
	assert.NotNil(t, summary.ByBox)
	assert.NotNil(t, summary.ByUser)
	assert.NotNil(t, summary.ByTimeOfDay)
}

func TestAggregate_SkipsBlankDimensions(t *testing.T) {
	records := []store.HistoryRecord{
		{BoxID: "BOX-A", Type: store.EventPickup}, // no user, zero timestamp
	}

	summary := Aggregate(records)

	assert.Equal(t, 1, summary.TotalEvents)
	assert.Equal(t, map[string]int{"BOX-A": 1}, summary.ByBox)
	assert.Empty(t, summary.ByUser)
	assert.Empty(t, summary.ByTimeOfDay)
}

func TestFilterByUser(t *testing.T) {
	records := []store.HistoryRecord{
		record("BOX-A", "user-001", 9),
		record("BOX-B", "user-002", 13),
		record("BOX-C", "user-001", 19),
	}

	filtered := FilterByUser(records, "user-001")
	require.Len(t, filtered, 2)
	assert.Equal(t, "BOX-A", filtered[0].BoxID)
	assert.Equal(t, "BOX-C", filtered[1].BoxID)

	assert.Empty(t, FilterByUser(records, "user-999"))
	// Input order and content are untouched.
	assert.Equal(t, "user-002", records[1].UserID)
}

func TestAggregate_PureFunction(t *testing.T) {
	records := []store.HistoryRecord{
		record("BOX-A", "user-001", 9),
		record("BOX-B", "user-002", 13),
	}

	first := Aggregate(records)
	second := Aggregate(records)
	assert.Equal(t, first, second)
	assert.Equal(t, "BOX-A", records[0].BoxID)
}
