package store

import "time"

const (
	LabelToday     = "today"
	LabelYesterday = "yesterday"
	LabelEarlier   = "earlier"
	LabelUnknown   = "unknown"
)

// DateLabel buckets a timestamp into "today", "yesterday" or "earlier"
// relative to now, by calendar date rather than elapsed hours: a record
// written at 23:59 and read at 00:01 the next day is "yesterday". Dates
// are compared as (year, month, day) triples so DST-shortened days
// cannot skew the bucket. A zero timestamp yields "unknown".
func DateLabel(ts, now time.Time) string {
	if ts.IsZero() {
		return LabelUnknown
	}

	tsY, tsM, tsD := ts.In(now.Location()).Date()

	if y, m, d := now.Date(); tsY == y && tsM == m && tsD == d {
		return LabelToday
	}
	if y, m, d := now.AddDate(0, 0, -1).Date(); tsY == y && tsM == m && tsD == d {
		return LabelYesterday
	}
	return LabelEarlier
}
