package model

import "time"

// Activity log outcome statuses.
const (
	StatusSuccess = "success"
	StatusFailed  = "failed"
)

// ActivityLog is an immutable record of one auth-relevant action. UserID is
// nil when the actor was not authenticated (e.g. a failed login attempt).
type ActivityLog struct {
	ID        string    `json:"id"`
	UserID    *string   `json:"userId"`
	Username  string    `json:"username"`
	Action    string    `json:"action"`
	IPAddress *string   `json:"ipAddress"`
	UserAgent *string   `json:"userAgent"`
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

// NewActivityLog carries the caller-supplied fields for one activity record.
// ID and Timestamp are assigned by the audit store at write time.
type NewActivityLog struct {
	UserID    *string
	Username  string
	Action    string
	IPAddress *string
	UserAgent *string
	Status    string
}
