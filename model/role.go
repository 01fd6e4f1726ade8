package model

import "fmt"

// Role is the closed set of account roles. It is a distinct type rather
// than a bare string so role checks cannot silently pass on typos.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleViewer Role = "viewer"

	// RoleAny is the wildcard requirement accepted by the role gate. It is
	// never stored on a user.
	RoleAny Role = "any"
)

// ParseRole validates a stored or submitted role value.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleAdmin:
		return RoleAdmin, nil
	case RoleViewer:
		return RoleViewer, nil
	}
	return "", fmt.Errorf("unknown role %q", s)
}

// Satisfies reports whether a user holding the role meets a requirement.
func (r Role) Satisfies(required Role) bool {
	return required == RoleAny || r == required
}
