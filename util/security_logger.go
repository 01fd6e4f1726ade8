package util

import (
	"fmt"
	"log"
	"os"
	"strings"
)

// SecurityEventType represents different types of operational security log
// lines. These are log-only; durable audit records live in the store.
type SecurityEventType string

const (
	EventLoginSuccess       SecurityEventType = "LOGIN_SUCCESS"
	EventLoginFailure       SecurityEventType = "LOGIN_FAILURE"
	EventLogout             SecurityEventType = "LOGOUT"
	EventUnauthorizedAccess SecurityEventType = "UNAUTHORIZED_ACCESS"
	EventForbiddenAccess    SecurityEventType = "FORBIDDEN_ACCESS"
	EventRateLimitExceeded  SecurityEventType = "RATE_LIMIT_EXCEEDED"
	EventEndpointCall       SecurityEventType = "ENDPOINT_CALL"
)

// SecurityLogEntry represents one security event to be logged
type SecurityLogEntry struct {
	EventType SecurityEventType
	UserID    string
	Username  string
	IP        string
	UserAgent string
	Message   string
}

var securityLogger *log.Logger

func init() {
	// In production this could write to a separate file
	securityLogger = log.New(os.Stdout, "[SECURITY] ", log.LstdFlags|log.Lmsgprefix)
}

// sanitizeLogValue removes newlines and other characters that could break log parsing
func sanitizeLogValue(value string) string {
	value = strings.ReplaceAll(value, "\n", " ")
	value = strings.ReplaceAll(value, "\r", " ")
	value = strings.ReplaceAll(value, "\t", " ")
	// Truncate very long values to prevent log flooding
	if len(value) > 200 {
		value = value[:200] + "..."
	}
	return value
}

// LogSecurityEvent writes one sanitized key=value line to the security log,
// enriching the IP with a best-effort GeoIP location when available.
func LogSecurityEvent(entry SecurityLogEntry) {
	var location string
	if city, country := GetIPLocation(entry.IP); city != "" || country != "" {
		switch {
		case city != "" && country != "":
			location = fmt.Sprintf("%s/%s", city, country)
		case country != "":
			location = country
		default:
			location = city
		}
	}

	securityLogger.Printf("Event=%s UserID=%s Username=%s IP=%s Location=%s UserAgent=%s Message=%s",
		sanitizeLogValue(string(entry.EventType)),
		sanitizeLogValue(entry.UserID),
		sanitizeLogValue(entry.Username),
		sanitizeLogValue(entry.IP),
		sanitizeLogValue(location),
		sanitizeLogValue(entry.UserAgent),
		sanitizeLogValue(entry.Message),
	)
}

// LogLoginSuccess logs a successful login
func LogLoginSuccess(userID, username, ip, userAgent string) {
	LogSecurityEvent(SecurityLogEntry{
		EventType: EventLoginSuccess,
		UserID:    userID,
		Username:  username,
		IP:        ip,
		UserAgent: userAgent,
		Message:   "User logged in successfully",
	})
}

// LogLoginFailure logs a failed login attempt
func LogLoginFailure(username, ip, userAgent, reason string) {
	LogSecurityEvent(SecurityLogEntry{
		EventType: EventLoginFailure,
		Username:  username,
		IP:        ip,
		UserAgent: userAgent,
		Message:   fmt.Sprintf("Login failed: %s", reason),
	})
}

// LogLogout logs a logout
func LogLogout(userID, username, ip, userAgent string) {
	LogSecurityEvent(SecurityLogEntry{
		EventType: EventLogout,
		UserID:    userID,
		Username:  username,
		IP:        ip,
		UserAgent: userAgent,
		Message:   "User logged out",
	})
}

// LogUnauthorizedAccess logs a request rejected before identity was established
func LogUnauthorizedAccess(ip, resource, reason string) {
	LogSecurityEvent(SecurityLogEntry{
		EventType: EventUnauthorizedAccess,
		IP:        ip,
		Message:   fmt.Sprintf("Unauthorized access to %s: %s", resource, reason),
	})
}

// LogForbiddenAccess logs a request from a valid identity lacking the required role
func LogForbiddenAccess(userID, username, ip, resource string) {
	LogSecurityEvent(SecurityLogEntry{
		EventType: EventForbiddenAccess,
		UserID:    userID,
		Username:  username,
		IP:        ip,
		Message:   fmt.Sprintf("Insufficient role for %s", resource),
	})
}

// LogRateLimitExceeded logs when the rate limit is exceeded
func LogRateLimitExceeded(ip, endpoint string) {
	LogSecurityEvent(SecurityLogEntry{
		EventType: EventRateLimitExceeded,
		IP:        ip,
		Message:   fmt.Sprintf("Rate limit exceeded for endpoint: %s", endpoint),
	})
}

// SetSecurityLoggerForTest sets a custom logger for testing purposes
func SetSecurityLoggerForTest(logger *log.Logger) {
	securityLogger = logger
}

// GetSecurityLoggerForTest returns the current security logger for testing purposes
func GetSecurityLoggerForTest() *log.Logger {
	return securityLogger
}
