package auth

import "context"

// sessionKey is an unexported context key type to avoid collisions across
// packages. Both the HTTP middleware and the upstream gateway read sessions
// through these helpers, so they live with the domain type.
type sessionKey struct{}

// NewContext returns a child context carrying the given session.
// If session is nil, the original ctx is returned unchanged.
func NewContext(ctx context.Context, sess *Session) context.Context {
	if sess == nil {
		return ctx
	}
	return context.WithValue(ctx, sessionKey{}, sess)
}

// FromContext returns the session from ctx and a boolean indicating presence.
func FromContext(ctx context.Context) (*Session, bool) {
	if sess, ok := ctx.Value(sessionKey{}).(*Session); ok && sess != nil {
		return sess, true
	}
	return nil, false
}
