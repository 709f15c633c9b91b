package model

import "strings"

// Role represents the role of a user in the system.
type Role string

const (
	// RoleAdmin can manage user accounts in addition to patient records.
	RoleAdmin Role = "admin"
	// RolePractitioner is the default role for clinical staff.
	RolePractitioner Role = "practitioner"
)

// roleWirePractitioner is the value the remote service uses for
// practitioner accounts ("médico" in the upstream API).
const roleWirePractitioner = "médico"

// ParseRole maps a role string from the remote service (or a token claim)
// to a Role. Unknown or empty values default to practitioner; the parsed
// role is a UI hint only, authorization is enforced server-side.
func ParseRole(s string) Role {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "admin":
		return RoleAdmin
	case roleWirePractitioner, "medico", "practitioner":
		return RolePractitioner
	default:
		return RolePractitioner
	}
}

// WireValue returns the role string the remote service expects.
func (r Role) WireValue() string {
	if r == RoleAdmin {
		return "admin"
	}
	return roleWirePractitioner
}

// IsAdmin reports whether the role grants access to the admin panel.
func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}

// User is a user account as returned by the remote service's admin endpoints.
type User struct {
	ID       int    `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	IsActive bool   `json:"is_active"`
	Role     string `json:"role"`
}

// Identity is the client-side view of "who is logged in", derived from the
// access token at login time and cached alongside it. It is always stored
// and cleared together with the token.
type Identity struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  Role   `json:"role"`
}

// IdentityForEmail builds an Identity from an email address and an optional
// role claim. The display name is the local part of the address and an
// absent role claim defaults to practitioner.
func IdentityForEmail(email, roleClaim string) Identity {
	name := email
	if i := strings.IndexByte(email, '@'); i > 0 {
		name = email[:i]
	}
	return Identity{
		Email: email,
		Name:  name,
		Role:  ParseRole(roleClaim),
	}
}
