package store

import (
	"errors"
	"fmt"

	"github.com/andriwidianto/securewatch/model"
)

func strPtr(s string) *string { return &s }

// SeedDefaultUsers creates the built-in admin and viewer accounts if they
// are not present yet. Seeding is idempotent.
func SeedDefaultUsers(s Store) error {
	defaults := []model.NewUser{
		{
			Username:  "admin",
			Email:     "admin@company.com",
			Password:  "admin123",
			Role:      model.RoleAdmin,
			FirstName: strPtr("John"),
			LastName:  strPtr("Admin"),
		},
		{
			Username:  "viewer",
			Email:     "viewer@company.com",
			Password:  "viewer123",
			Role:      model.RoleViewer,
			FirstName: strPtr("Jane"),
			LastName:  strPtr("Viewer"),
		},
	}

	for _, u := range defaults {
		if _, err := s.CreateUser(u); err != nil {
			if errors.Is(err, ErrUsernameExists) || errors.Is(err, ErrEmailExists) {
				continue
			}
			return fmt.Errorf("failed to seed user %s: %w", u.Username, err)
		}
	}
	return nil
}

// SeedDemoData populates sample activity logs and security events so the
// dashboard has something to show on a fresh start. Not used by tests.
func SeedDemoData(s Store) {
	var adminID, viewerID *string
	if admin, err := s.GetUserByUsername("admin"); err == nil {
		adminID = &admin.ID
	}
	if viewer, err := s.GetUserByUsername("viewer"); err == nil {
		viewerID = &viewer.ID
	}

	s.CreateActivityLog(model.NewActivityLog{
		UserID:    adminID,
		Username:  "admin@company.com",
		Action:    "User login",
		IPAddress: strPtr("192.168.1.105"),
		UserAgent: strPtr("Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"),
		Status:    model.StatusSuccess,
	})
	s.CreateActivityLog(model.NewActivityLog{
		UserID:    viewerID,
		Username:  "viewer@company.com",
		Action:    "Dashboard access",
		IPAddress: strPtr("192.168.1.103"),
		UserAgent: strPtr("Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36"),
		Status:    model.StatusSuccess,
	})
	s.CreateActivityLog(model.NewActivityLog{
		Username:  "unknown@domain.com",
		Action:    "Failed login attempt",
		IPAddress: strPtr("192.168.1.100"),
		UserAgent: strPtr("Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36"),
		Status:    model.StatusFailed,
	})

	s.CreateSecurityEvent(model.NewSecurityEvent{
		Type:        model.EventTypeSecurityAlert,
		Description: "Multiple failed login attempts detected",
		Severity:    model.SeverityWarning,
		IPAddress:   strPtr("192.168.1.100"),
	})
	s.CreateSecurityEvent(model.NewSecurityEvent{
		Type:        model.EventTypeSystemUpdate,
		Description: "Security patch successfully applied",
		Severity:    model.SeverityInfo,
		Resolved:    true,
	})
	s.CreateSecurityEvent(model.NewSecurityEvent{
		Type:        model.EventTypeUserCreated,
		Description: "New user account created",
		Severity:    model.SeverityInfo,
		IPAddress:   strPtr("192.168.1.105"),
		UserID:      adminID,
		Resolved:    true,
	})
}
