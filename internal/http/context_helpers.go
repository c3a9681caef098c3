package httpx

import (
	"context"

	domainauth "github.com/davomat/attendance-ui-api/internal/domain/auth"
)

// SetSessionInContext returns a child context that carries the given session.
// If session is nil, the original ctx is returned unchanged. The session is
// stored with the domain auth key so the upstream gateway can read the bearer
// token from the same context.
func SetSessionInContext(ctx context.Context, session *domainauth.Session) context.Context {
	return domainauth.NewContext(ctx, session)
}

// GetUserSessionFromContext returns the user session from context and a boolean indicating presence.
func GetUserSessionFromContext(ctx context.Context) (*domainauth.Session, bool) {
	return domainauth.FromContext(ctx)
}

// GetSessionFromContext retrieves the session from the request context.
// Maintained for convenience; prefer GetUserSessionFromContext when you need presence info.
func GetSessionFromContext(ctx context.Context) *domainauth.Session {
	if s, ok := domainauth.FromContext(ctx); ok {
		return s
	}
	return nil
}
