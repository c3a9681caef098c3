package auth

// Role policy table: static presentation and routing facts per role.
// Never mutated at runtime; every lookup is total and falls back to a safe
// default for unrecognized tags, since callers sit on render paths that must
// not fail.

// DefaultRoute returns the landing route for a role, or "/" for any value
// outside the closed enumeration.
func DefaultRoute(r Role) string {
	switch r {
	case RoleAdmin:
		return "/admin"
	case RoleTeacher:
		return "/teacher"
	case RoleStudent:
		return "/student"
	}
	return "/"
}

// DisplayName returns the human-readable name for a role, or "Unknown" for
// any value outside the closed enumeration.
func DisplayName(r Role) string {
	switch r {
	case RoleAdmin:
		return "Admin"
	case RoleTeacher:
		return "Teacher"
	case RoleStudent:
		return "Student"
	}
	return "Unknown"
}
