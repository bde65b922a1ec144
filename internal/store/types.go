package store

import (
	"errors"
	"time"
)

type BoxStatus string

const (
	StatusAvailable BoxStatus = "AVAILABLE"
	StatusInUse     BoxStatus = "IN_USE"
	StatusAlert     BoxStatus = "ALERT"
)

type EventType string

const (
	EventDelivery       EventType = "DELIVERY"
	EventPickup         EventType = "PICKUP"
	EventAlert          EventType = "ALERT"
	EventTimeout        EventType = "TIMEOUT"
	EventVibrationAlert EventType = "VIBRATION_ALERT"
	EventDoorOpenAlert  EventType = "DOOR_OPEN_ALERT"
)

var (
	ErrBoxNotFound      = errors.New("box not found")
	ErrInvalidEventType = errors.New("invalid event type")
	ErrUserNotFound     = errors.New("user not found")
)

// IsValid reports whether t is one of the recognized event types.
func (t EventType) IsValid() bool {
	switch t {
	case EventDelivery, EventPickup, EventAlert, EventTimeout, EventVibrationAlert, EventDoorOpenAlert:
		return true
	}
	return false
}

// IsAbnormal reports whether t is anything other than a plain
// delivery or pickup. Abnormal events drive the alert banner.
func (t EventType) IsAbnormal() bool {
	return t != EventDelivery && t != EventPickup
}

// NextStatus returns the box status produced by logging an event of
// this type.
func (t EventType) NextStatus() BoxStatus {
	switch t {
	case EventDelivery:
		return StatusInUse
	case EventPickup:
		return StatusAvailable
	default:
		return StatusAlert
	}
}

type Box struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Location      string    `json:"location"`
	Status        BoxStatus `json:"status"`
	LastUpdated   time.Time `json:"last_updated"`
	LastEventType EventType `json:"last_event_type,omitempty"`
	LastNote      string    `json:"last_note,omitempty"`
	CurrentUserID string    `json:"current_user_id,omitempty"`
	IsFavorite    bool      `json:"is_favorite"`
}

// HistoryRecord is an immutable append-only log entry for one event.
// BoxName and UserName are snapshots taken at event time; renaming a
// box or user later must never rewrite past records.
type HistoryRecord struct {
	ID        string    `json:"id"`
	BoxID     string    `json:"box_id"`
	BoxName   string    `json:"box_name"`
	UserID    string    `json:"user_id,omitempty"`
	UserName  string    `json:"user_name"`
	Type      EventType `json:"type"`
	Note      string    `json:"note,omitempty"`
	Timestamp time.Time `json:"timestamp"`
	DateLabel string    `json:"date_label"`
}

type User struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Role string `json:"role,omitempty"`
}

const (
	RoleResident = "resident"
	RoleAdmin    = "admin"
)

// DefaultUsers is the static resident roster. Users are not created or
// destroyed at runtime; the current user is a pointer into this list.
func DefaultUsers() []User {
	return []User{
		{ID: "user-001", Name: "Resident A", Role: RoleResident},
		{ID: "user-002", Name: "Resident B", Role: RoleResident},
		{ID: "user-003", Name: "Resident C", Role: RoleResident},
	}
}

// DefaultBoxes is the building's locker inventory used when nothing
// has been persisted yet.
func DefaultBoxes(now time.Time) []Box {
	return []Box{
		{ID: "BOX-A", Name: "Box A", Location: "1F elevator lobby", Status: StatusAvailable, LastUpdated: now},
		{ID: "BOX-B", Name: "Box B", Location: "1F elevator lobby", Status: StatusInUse, LastUpdated: now, LastEventType: EventDelivery, CurrentUserID: "user-001"},
		{ID: "BOX-C", Name: "Box C", Location: "1F management office", Status: StatusAvailable, LastUpdated: now},
		{ID: "BOX-D", Name: "Box D", Location: "2F stairwell", Status: StatusAlert, LastUpdated: now, LastEventType: EventAlert, CurrentUserID: "user-002"},
		{ID: "BOX-E", Name: "Box E", Location: "B1 garage entrance", Status: StatusAvailable, LastUpdated: now},
		{ID: "BOX-F", Name: "Box F", Location: "B1 garage entrance", Status: StatusAvailable, LastUpdated: now},
	}
}
