package httpx

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	domainauth "github.com/davomat/attendance-ui-api/internal/domain/auth"
)

// fakeSessionReader resolves a fixed set of sessions by ID.
type fakeSessionReader struct {
	sessions map[string]*domainauth.Session
}

func (f *fakeSessionReader) GetSession(_ context.Context, id string) (*domainauth.Session, error) {
	if s, ok := f.sessions[id]; ok {
		return s, nil
	}
	return nil, errNotFoundForTest
}

var errNotFoundForTest = &testError{"session not found"}

type testError struct{ msg string }

func (e *testError) Error() string { return e.msg }

func sessionFixture(id string, role domainauth.Role) *domainauth.Session {
	return &domainauth.Session{
		ID:        id,
		UserID:    "7",
		FirstName: "Dilnoza",
		LastName:  "Rahimova",
		Email:     "dilnoza@example.com",
		Role:      role,
		Token:     "bearer-" + id,
		ExpiresAt: time.Now().Add(time.Hour),
	}
}

func newGuardReader() *fakeSessionReader {
	return &fakeSessionReader{sessions: map[string]*domainauth.Session{
		"admin":   sessionFixture("admin", domainauth.RoleAdmin),
		"teacher": sessionFixture("teacher", domainauth.RoleTeacher),
		"student": sessionFixture("student", domainauth.RoleStudent),
	}}
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestRequireRoles_APIRequests(t *testing.T) {
	guard := RequireRoles(newGuardReader(), domainauth.RoleAdmin)(okHandler())

	t.Run("no session -> 401", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/api/system-logs", nil)
		guard.ServeHTTP(w, r)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "authentication_required")
	})

	t.Run("unknown session -> 401", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/api/system-logs", nil)
		r.AddCookie(&http.Cookie{Name: "session_id", Value: "stale"})
		guard.ServeHTTP(w, r)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("wrong role -> 403", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/api/system-logs", nil)
		r.AddCookie(&http.Cookie{Name: "session_id", Value: "student"})
		guard.ServeHTTP(w, r)
		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Contains(t, w.Body.String(), "insufficient_permissions")
	})

	t.Run("allowed role -> 200", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/api/system-logs", nil)
		r.AddCookie(&http.Cookie{Name: "session_id", Value: "admin"})
		guard.ServeHTTP(w, r)
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestRequireRoles_EmptyAllowedSetAdmitsAnyRole(t *testing.T) {
	guard := RequireRoles(newGuardReader())(okHandler())

	for _, id := range []string{"admin", "teacher", "student"} {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/api/dashboard", nil)
		r.AddCookie(&http.Cookie{Name: "session_id", Value: id})
		guard.ServeHTTP(w, r)
		assert.Equal(t, http.StatusOK, w.Code, "session %s", id)
	}

	w := httptest.NewRecorder()
	guard.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/dashboard", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireRoles_BrowserRedirects(t *testing.T) {
	guard := RequireRoles(newGuardReader(), domainauth.RoleAdmin)(okHandler())

	t.Run("unauthenticated browser -> login redirect", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/admin/settings", nil)
		r.Header.Set("Accept", "text/html,application/xhtml+xml")
		guard.ServeHTTP(w, r)
		assert.Equal(t, http.StatusSeeOther, w.Code)
		assert.Contains(t, w.Header().Get("Location"), "/login?redirect_uri=%2Fadmin%2Fsettings")
	})

	t.Run("forbidden browser -> site root", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/admin/settings", nil)
		r.Header.Set("Accept", "text/html")
		r.AddCookie(&http.Cookie{Name: "session_id", Value: "teacher"})
		guard.ServeHTTP(w, r)
		assert.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, "/", w.Header().Get("Location"))
	})
}

func TestRequireRoles_ReEvaluatesEveryRequest(t *testing.T) {
	reader := newGuardReader()
	guard := RequireRoles(reader, domainauth.RoleAdmin)(okHandler())

	r := httptest.NewRequest(http.MethodGet, "/api/system-logs", nil)
	r.AddCookie(&http.Cookie{Name: "session_id", Value: "admin"})

	w := httptest.NewRecorder()
	guard.ServeHTTP(w, r.Clone(r.Context()))
	assert.Equal(t, http.StatusOK, w.Code)

	// Session torn down between requests: the same cookie is now denied.
	delete(reader.sessions, "admin")
	w = httptest.NewRecorder()
	guard.ServeHTTP(w, r.Clone(r.Context()))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestOptionalAuth(t *testing.T) {
	var seen *domainauth.Session
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = GetSessionFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})
	handler := OptionalAuth(newGuardReader())(inner)

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Nil(t, seen)

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.AddCookie(&http.Cookie{Name: "session_id", Value: "teacher"})
	w = httptest.NewRecorder()
	handler.ServeHTTP(w, r)
	if assert.NotNil(t, seen) {
		assert.Equal(t, domainauth.RoleTeacher, seen.Role)
	}
}

func TestIsBrowserRequest(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		accept  string
		browser bool
	}{
		{"api path", "/api/courses", "text/html", false},
		{"html accept", "/teacher", "text/html,application/xhtml+xml", true},
		{"json accept", "/teacher", "application/json", false},
		{"no accept header", "/teacher", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.accept != "" {
				r.Header.Set("Accept", tt.accept)
			}
			assert.Equal(t, tt.browser, isBrowserRequest(r))
		})
	}
}

func TestRecoverMiddleware(t *testing.T) {
	handler := Recover(discardLogger())(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
