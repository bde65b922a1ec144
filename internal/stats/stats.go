// Package stats computes usage aggregates over a history snapshot.
// Everything here is a pure function of its input: no store access, no
// side effects, safe to call repeatedly.
package stats

import (
	"github.com/lockerhub/boxhub/internal/store"
)

// Time-of-day buckets, derived from the local hour of each record's
// timestamp.
const (
	BucketMorning   = "morning"   // [06:00, 12:00)
	BucketAfternoon = "afternoon" // [12:00, 18:00)
	BucketEvening   = "evening"   // [18:00, 24:00)
	BucketNight     = "night"     // [00:00, 06:00)
)

type Summary struct {
	TotalEvents int            `json:"total_events"`
	ByBox       map[string]int `json:"by_box"`
	ByUser      map[string]int `json:"by_user"`
	ByTimeOfDay map[string]int `json:"by_time_of_day"`
}

// Aggregate counts events per box, per user and per time-of-day bucket.
// Scoping is the caller's job: pass the full history for admin mode, or
// a FilterByUser slice otherwise.
func Aggregate(records []store.HistoryRecord) Summary {
	summary := Summary{
		TotalEvents: len(records),
		ByBox:       make(map[string]int),
		ByUser:      make(map[string]int),
		ByTimeOfDay: make(map[string]int),
	}

	for _, record := range records {
		if record.BoxID != "" {
			summary.ByBox[record.BoxID]++
		}
		if record.UserID != "" {
			summary.ByUser[record.UserID]++
		}
		if !record.Timestamp.IsZero() {
			summary.ByTimeOfDay[TimeOfDayBucket(record.Timestamp.Hour())]++
		}
	}

	return summary
}

// FilterByUser returns the subset of records logged by the given user.
func FilterByUser(records []store.HistoryRecord, userID string) []store.HistoryRecord {
	filtered := make([]store.HistoryRecord, 0, len(records))
	for _, record := range records {
		if record.UserID == userID {
			filtered = append(filtered, record)
		}
	}
	return filtered
}

// TimeOfDayBucket maps an hour of day onto its bucket label.
func TimeOfDayBucket(hour int) string {
	switch {
	case hour >= 6 && hour < 12:
		return BucketMorning
	case hour >= 12 && hour < 18:
		return BucketAfternoon
	case hour >= 18:
		return BucketEvening
	default:
		return BucketNight
	}
}
