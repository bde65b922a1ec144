package server

import (
	"time"
)

// AuditLogEntry captures one handled request for the audit trail
// published to Kafka.
type AuditLogEntry struct {
	Timestamp  time.Time `json:"timestamp"`
	Handler    string    `json:"handler"`
	Method     string    `json:"method"`
	Path       string    `json:"path"`
	StatusCode int       `json:"status_code"`
	UserID     string    `json:"user_id,omitempty"`
	BoxID      string    `json:"box_id,omitempty"`
	EventType  string    `json:"event_type,omitempty"`
	Request    string    `json:"request,omitempty"`
	Response   string    `json:"response,omitempty"`
}
