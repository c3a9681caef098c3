package auth

// Package auth contains domain-level types for authentication and sessions.
// It is pure and free of framework/adapter concerns.

import (
	"errors"
	"time"
)

// Role represents an application's authorization role.
// The string form matches the role tags issued by the attendance service,
// so sessions round-trip through persistence without translation.
// Valid values are defined as constants below; the set is closed.
type Role string

const (
	RoleAdmin   Role = "ROLE_ADMIN"
	RoleTeacher Role = "ROLE_TEACHER"
	RoleStudent Role = "ROLE_STUDENT"
)

// Roles lists every recognized role.
var Roles = []Role{RoleAdmin, RoleTeacher, RoleStudent}

// Valid reports whether r is part of the closed role enumeration.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleTeacher, RoleStudent:
		return true
	}
	return false
}

// ParseRole maps a raw role tag to a Role, reporting whether it is recognized.
func ParseRole(s string) (Role, bool) {
	r := Role(s)
	return r, r.Valid()
}

// ErrInvalidSession is returned when a session is missing its identity, its
// token, or carries a role outside the closed enumeration. Partial sessions
// are never stored.
var ErrInvalidSession = errors.New("invalid session: identity and token must both be present with a recognized role")

// Identity represents the authenticated principal returned by the attendance
// service (or an IdP in SSO mode). Adapters map provider-specific claims into
// this shape.
type Identity struct {
	UserID    string
	FirstName string
	LastName  string
	Email     string
	Role      Role
	Groups    []string
	// Token is the bearer credential usable against the attendance backend.
	Token     string
	ExpiresAt time.Time
}

// Session is the server-side record persisted for an authenticated user.
// ID is an opaque session identifier; Token is the bearer credential issued
// by the attendance service and attached to every upstream request.
// A Session is either fully present (identity and token both set) or absent;
// Validate enforces that invariant before any store accepts it.
type Session struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
	Role      Role      `json:"role"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Validate reports whether the session satisfies the all-or-nothing invariant.
func (s Session) Validate() error {
	if s.ID == "" || s.UserID == "" || s.Email == "" || s.Token == "" || !s.Role.Valid() {
		return ErrInvalidSession
	}
	return nil
}

// Complete reports whether both halves of the session (identity and token)
// are present with a recognized role.
func (s Session) Complete() bool { return s.Validate() == nil }

// Expired reports whether the session has passed its expiry.
func (s Session) Expired() bool {
	return !s.ExpiresAt.IsZero() && time.Now().After(s.ExpiresAt)
}

// IsAdmin reports whether the session belongs to an administrator.
func (s Session) IsAdmin() bool { return s.Role == RoleAdmin }

// IsTeacher reports whether the session belongs to a teacher.
func (s Session) IsTeacher() bool { return s.Role == RoleTeacher }

// IsStudent reports whether the session belongs to a student.
func (s Session) IsStudent() bool { return s.Role == RoleStudent }
