package model

import "time"

// Security event types recorded by the audit store.
const (
	EventTypeLoginAttempt  = "login_attempt"
	EventTypeSecurityAlert = "security_alert"
	EventTypeSystemUpdate  = "system_update"
	EventTypeUserCreated   = "user_created"
)

// Security event severities.
const (
	SeverityInfo     = "info"
	SeverityWarning  = "warning"
	SeverityCritical = "critical"
)

// SecurityEvent is an immutable record of a noteworthy condition. The
// Resolved flag is the only mutable field and only changes through an
// explicit resolution operation.
type SecurityEvent struct {
	ID          string    `json:"id"`
	Type        string    `json:"type"`
	Description string    `json:"description"`
	Severity    string    `json:"severity"`
	IPAddress   *string   `json:"ipAddress"`
	UserID      *string   `json:"userId"`
	Resolved    bool      `json:"resolved"`
	Timestamp   time.Time `json:"timestamp"`
}

// NewSecurityEvent carries the caller-supplied fields for one security
// event. ID and Timestamp are assigned by the audit store at write time.
type NewSecurityEvent struct {
	Type        string
	Description string
	Severity    string
	IPAddress   *string
	UserID      *string
	Resolved    bool
}
