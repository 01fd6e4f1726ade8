// Package store defines the capability interfaces behind which the
// credential records and audit records live, plus the in-memory
// implementation used by the dashboard. Callers depend only on the
// interfaces so a persistent backend can be substituted without touching
// the request pipeline.
package store

import (
	"errors"
	"time"

	"github.com/andriwidianto/securewatch/model"
)

var (
	ErrUserNotFound   = errors.New("user not found")
	ErrUsernameExists = errors.New("username already exists")
	ErrEmailExists    = errors.New("email already exists")
)

// UserStore holds user records. Lookups are case-sensitive exact matches.
type UserStore interface {
	// GetUser returns the user with the given id, or ErrUserNotFound.
	GetUser(id string) (*model.User, error)
	GetUserByUsername(username string) (*model.User, error)
	GetUserByEmail(email string) (*model.User, error)
	// CreateUser assigns a fresh id, hashes the plaintext password, defaults
	// the role to viewer when unset, and stamps both timestamps. Username
	// and email must be unique across all users.
	CreateUser(input model.NewUser) (*model.User, error)
	// UpdateUser merges the provided fields over the existing record and
	// refreshes UpdatedAt. Returns ErrUserNotFound for an unknown id.
	UpdateUser(id string, updates model.UserUpdate) (*model.User, error)
	ListUsers() []*model.User
}

// AuditStore is an append-only sink for activity logs and security events.
// Every write stamps the record with the current time and a fresh id;
// callers decide what is worth recording.
type AuditStore interface {
	CreateActivityLog(entry model.NewActivityLog) *model.ActivityLog
	// ListActivityLogs returns up to limit records starting at offset,
	// newest first.
	ListActivityLogs(limit, offset int) []*model.ActivityLog
	CreateSecurityEvent(entry model.NewSecurityEvent) *model.SecurityEvent
	ListSecurityEvents(limit int) []*model.SecurityEvent
	ListUnresolvedSecurityEvents() []*model.SecurityEvent
	CountFailedLogins(since time.Time) int
	CountSecurityEvents(since time.Time) int
}

// Store is the full storage surface wired through the request pipeline.
type Store interface {
	UserStore
	AuditStore
}
