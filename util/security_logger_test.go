package util

import (
	"bytes"
	"log"
	"strings"
	"testing"
)

// setupTestLogger captures security log output and returns a cleanup
// function restoring the original logger
func setupTestLogger() (*bytes.Buffer, func()) {
	buf := &bytes.Buffer{}
	originalLogger := GetSecurityLoggerForTest()
	SetSecurityLoggerForTest(log.New(buf, "[SECURITY] ", log.LstdFlags|log.Lmsgprefix))
	cleanup := func() {
		SetSecurityLoggerForTest(originalLogger)
	}
	return buf, cleanup
}

func assertLogContains(t *testing.T, output string, expected []string) {
	t.Helper()
	for _, substr := range expected {
		if !strings.Contains(output, substr) {
			t.Errorf("Log output missing expected substring %q\nGot: %s", substr, output)
		}
	}
}

func TestSanitizeLogValue(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "removes newlines", input: "hello\nworld", expected: "hello world"},
		{name: "removes carriage returns", input: "hello\rworld", expected: "hello world"},
		{name: "removes tabs", input: "hello\tworld", expected: "hello world"},
		{name: "truncates long values", input: strings.Repeat("a", 250), expected: strings.Repeat("a", 200) + "..."},
		{name: "handles normal strings", input: "normal string", expected: "normal string"},
		{name: "handles empty string", input: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sanitizeLogValue(tt.input); got != tt.expected {
				t.Errorf("sanitizeLogValue(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestLogLoginSuccess(t *testing.T) {
	buf, cleanup := setupTestLogger()
	defer cleanup()

	LogLoginSuccess("user-1", "admin", "203.0.113.7", "test-agent")

	assertLogContains(t, buf.String(), []string{
		"Event=LOGIN_SUCCESS",
		"UserID=user-1",
		"Username=admin",
		"IP=203.0.113.7",
		"User logged in successfully",
	})
}

func TestLogLoginFailureSanitizesUsername(t *testing.T) {
	buf, cleanup := setupTestLogger()
	defer cleanup()

	LogLoginFailure("evil\nuser", "203.0.113.7", "agent", "invalid password")

	output := buf.String()
	assertLogContains(t, output, []string{"Event=LOGIN_FAILURE", "evil user", "Login failed: invalid password"})
	if strings.Contains(output, "evil\nuser") {
		t.Error("newline should have been stripped from the username")
	}
}

func TestLogUnauthorizedAccess(t *testing.T) {
	buf, cleanup := setupTestLogger()
	defer cleanup()

	LogUnauthorizedAccess("203.0.113.7", "/api/admin/users", "invalid or expired token")

	assertLogContains(t, buf.String(), []string{
		"Event=UNAUTHORIZED_ACCESS",
		"Unauthorized access to /api/admin/users: invalid or expired token",
	})
}

func TestLogForbiddenAccess(t *testing.T) {
	buf, cleanup := setupTestLogger()
	defer cleanup()

	LogForbiddenAccess("user-2", "viewer", "203.0.113.7", "/api/admin/users")

	assertLogContains(t, buf.String(), []string{
		"Event=FORBIDDEN_ACCESS",
		"UserID=user-2",
		"Insufficient role for /api/admin/users",
	})
}
