package auth

// Decision is the outcome of evaluating a navigation attempt against the
// current session and the allowed-role set of the requested screen.
type Decision int

const (
	// DecisionUnauthenticated means no complete session is present.
	DecisionUnauthenticated Decision = iota
	// DecisionForbidden means a session is present but its role is not in
	// the allowed set. The hosting layer treats this as a silent denial and
	// sends the visitor to the site root, not an error page.
	DecisionForbidden
	// DecisionAuthorized means the protected content may be rendered.
	DecisionAuthorized
)

// String returns the decision name for logs and tests.
func (d Decision) String() string {
	switch d {
	case DecisionUnauthenticated:
		return "unauthenticated"
	case DecisionForbidden:
		return "forbidden"
	case DecisionAuthorized:
		return "authorized"
	}
	return "unknown"
}

// Evaluate computes the guard decision for a navigation attempt.
// It is pure and side-effect free; callers re-evaluate on every request so a
// stale decision after logout is never observed. An empty allowed set admits
// any complete session, which is how screens that only require being logged
// in are expressed.
func Evaluate(sess *Session, allowed []Role) Decision {
	if sess == nil || !sess.Complete() {
		return DecisionUnauthenticated
	}
	if len(allowed) == 0 {
		return DecisionAuthorized
	}
	for _, r := range allowed {
		if sess.Role == r {
			return DecisionAuthorized
		}
	}
	return DecisionForbidden
}
