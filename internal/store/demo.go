package store

import (
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/lockerhub/boxhub/internal/kv"
	"github.com/lockerhub/boxhub/internal/metrics"
)

const defaultDemoDays = 7

var demoNotes = map[EventType]string{
	EventDelivery: "Courier placed a parcel",
	EventPickup:   "Resident collected the parcel",
	EventAlert:    "System detected an abnormal event",
}

const demoAlertBoxNote = "Abnormal vibration or parcel left too long"

// SeedDemoData replaces boxes and history with a synthetic data set
// covering the given number of days, so the analytics view has
// something representative to show. Each day gets two to six random
// events replayed forward in time; each box ends in the status its
// last replayed event produced. Favorite flags survive the reset.
//
// The shape is deterministic, the values are not: the generator draws
// from the Store's random source, which tests can seed.
func (s *Store) SeedDemoData(days int) {
	if days <= 0 {
		days = defaultDemoDays
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.timeNow()

	boxes := make([]Box, len(s.boxes))
	for i, box := range s.boxes {
		boxes[i] = Box{
			ID:          box.ID,
			Name:        box.Name,
			Location:    box.Location,
			Status:      StatusAvailable,
			LastUpdated: now,
			IsFavorite:  box.IsFavorite,
		}
	}

	eventTypes := []EventType{EventDelivery, EventPickup, EventAlert}

	// Draw the whole event set first: hours within a day are random, so
	// generation order is not time order.
	type demoEvent struct {
		boxIdx    int
		user      User
		eventType EventType
		ts        time.Time
	}

	var events []demoEvent
	for d := days - 1; d >= 0; d-- {
		eventsThisDay := 2 + s.rnd.Intn(5)
		for i := 0; i < eventsThisDay; i++ {
			ts := now.AddDate(0, 0, -d)
			ts = time.Date(ts.Year(), ts.Month(), ts.Day(),
				8+s.rnd.Intn(15), s.rnd.Intn(60), s.rnd.Intn(60), 0, now.Location())

			events = append(events, demoEvent{
				boxIdx:    s.rnd.Intn(len(boxes)),
				user:      s.users[s.rnd.Intn(len(s.users))],
				eventType: eventTypes[s.rnd.Intn(len(eventTypes))],
				ts:        ts,
			})
		}
	}

	// Replay oldest first so each box ends in the state its newest
	// event produced.
	sort.Slice(events, func(i, j int) bool {
		return events[i].ts.Before(events[j].ts)
	})

	history := make([]HistoryRecord, 0, len(events))
	lastAlertBoxID := ""

	for _, ev := range events {
		box := &boxes[ev.boxIdx]
		box.Status = ev.eventType.NextStatus()
		box.LastUpdated = ev.ts
		box.LastEventType = ev.eventType
		box.CurrentUserID = ev.user.ID
		if ev.eventType.IsAbnormal() {
			box.LastNote = demoAlertBoxNote
			lastAlertBoxID = box.ID
		} else {
			box.LastNote = ""
		}

		history = append(history, HistoryRecord{
			ID:        newRecordID(ev.ts),
			BoxID:     box.ID,
			BoxName:   box.Name,
			UserID:    ev.user.ID,
			UserName:  ev.user.Name,
			Type:      ev.eventType,
			Note:      demoNotes[ev.eventType],
			Timestamp: ev.ts,
			DateLabel: DateLabel(ev.ts, now),
		})
	}

	// History reads newest first.
	for i, j := 0, len(history)-1; i < j; i, j = i+1, j-1 {
		history[i], history[j] = history[j], history[i]
	}

	s.boxes = boxes
	s.history = history
	s.currentUserID = s.users[0].ID
	s.abnormalAlertEnabled = true
	s.lastAlertBoxID = lastAlertBoxID

	s.persistBoxesLocked()
	s.persistHistoryLocked()
	s.writer.Set(kv.KeyCurrentUserID, s.currentUserID)
	s.writer.Set(kv.KeyAbnormalAlertEnabled, "true")
	if lastAlertBoxID != "" {
		s.writer.Set(kv.KeyLastAlertBoxID, lastAlertBoxID)
	} else {
		s.writer.Remove(kv.KeyLastAlertBoxID)
	}

	metrics.DemoSeedsTotal.Inc()
	metrics.HistorySize.Set(float64(len(s.history)))
	s.logger.Info("demo data seeded",
		zap.Int("days", days),
		zap.Int("events", len(history)))
}
