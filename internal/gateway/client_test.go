package gateway

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainauth "github.com/davomat/attendance-ui-api/internal/domain/auth"
	"github.com/davomat/attendance-ui-api/internal/domain/model"
)

func sessionContext(token string) context.Context {
	return domainauth.NewContext(context.Background(), &domainauth.Session{
		ID:        "sess-1",
		UserID:    "7",
		Email:     "user@example.com",
		Role:      domainauth.RoleAdmin,
		Token:     token,
		ExpiresAt: time.Now().Add(time.Hour),
	})
}

func newTestClient(t *testing.T, handler http.Handler, hook AuthFailureHook) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewClient(Options{BaseURL: server.URL, OnAuthFailure: hook})
	require.NoError(t, err)
	return client
}

func TestNewClient_Validation(t *testing.T) {
	_, err := NewClient(Options{})
	require.Error(t, err)

	_, err = NewClient(Options{BaseURL: "not a url"})
	require.Error(t, err)

	client, err := NewClient(Options{BaseURL: "http://localhost:9000/"})
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:9000", client.baseURL)
}

func TestClient_AttachesBearerToken(t *testing.T) {
	var gotAuth string
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":200,"message":"OK","data":null}`))
	}), nil)

	var out model.Envelope
	require.NoError(t, client.Get(sessionContext("tok-abc"), "/api/courses/getAllCourses", nil, &out))
	assert.Equal(t, "Bearer tok-abc", gotAuth)
	assert.Equal(t, 200, out.Status)
}

func TestClient_NoSessionNoBearer(t *testing.T) {
	var gotAuth string
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`{}`))
	}), nil)

	require.NoError(t, client.Post(context.Background(), "/auth/login", model.LoginRequest{Email: "e", Password: "p"}, nil))
	assert.Empty(t, gotAuth)
}

func TestClient_QueryParameters(t *testing.T) {
	var gotQuery url.Values
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		_, _ = w.Write([]byte(`{}`))
	}), nil)

	query := url.Values{}
	query.Set("page", "2")
	query.Set("size", "25")
	require.NoError(t, client.Get(sessionContext("tok"), "/api/system-logs", query, nil))
	assert.Equal(t, "2", gotQuery.Get("page"))
	assert.Equal(t, "25", gotQuery.Get("size"))
}

func TestClient_ValidationError(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"status":400,"message":"title must not be blank","data":null}`))
	}), nil)

	err := client.Post(sessionContext("tok"), "/api/course/create", model.AddCourse{}, nil)
	require.Error(t, err)

	var gerr *Error
	require.ErrorAs(t, err, &gerr)
	assert.Equal(t, KindValidation, gerr.Kind)
	assert.Equal(t, http.StatusBadRequest, gerr.Status)
	assert.Equal(t, "title must not be blank", gerr.Message)
	assert.True(t, IsValidation(err))
}

func TestClient_AuthFailureInvokesHook(t *testing.T) {
	var hookCalls atomic.Int32
	var hookSession *domainauth.Session
	hook := func(_ context.Context, sess *domainauth.Session) {
		hookCalls.Add(1)
		hookSession = sess
	}

	for _, status := range []int{http.StatusUnauthorized, http.StatusForbidden} {
		hookCalls.Store(0)
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
		}), hook)

		err := client.Get(sessionContext("stale-token"), "/api/statistics/dashboard", nil, nil)
		require.Error(t, err)
		assert.True(t, IsAuth(err), "status %d must classify as auth", status)
		assert.Equal(t, int32(1), hookCalls.Load(), "status %d must invoke teardown hook once", status)
		require.NotNil(t, hookSession)
		assert.Equal(t, "sess-1", hookSession.ID)
	}
}

func TestClient_AuthFailureWithoutSessionSkipsHook(t *testing.T) {
	var hookCalls atomic.Int32
	hook := func(context.Context, *domainauth.Session) { hookCalls.Add(1) }

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}), hook)

	err := client.Post(context.Background(), "/auth/login", model.LoginRequest{}, nil)
	require.Error(t, err)
	assert.True(t, IsAuth(err))
	assert.Equal(t, int32(0), hookCalls.Load(), "anonymous requests have no session to tear down")
}

func TestClient_ServerErrorIsUnexpected(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}), nil)

	err := client.Get(sessionContext("tok"), "/api/groups", nil, nil)
	require.Error(t, err)

	var gerr *Error
	require.ErrorAs(t, err, &gerr)
	assert.Equal(t, KindUnexpected, gerr.Kind)
	assert.Equal(t, http.StatusBadGateway, gerr.Status)
}

func TestClient_TransportFailureIsUnreachable(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	server.Close() // connection refused from here on

	client, err := NewClient(Options{BaseURL: server.URL})
	require.NoError(t, err)

	err = client.Get(sessionContext("tok"), "/api/students", nil, nil)
	require.Error(t, err)
	assert.True(t, IsUnreachable(err))

	var gerr *Error
	require.ErrorAs(t, err, &gerr)
	assert.Zero(t, gerr.Status)
}

func TestClient_NoRetries(t *testing.T) {
	var requests atomic.Int32
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}), nil)

	err := client.Delete(sessionContext("tok"), "/api/system-logs/all", nil, nil)
	require.Error(t, err)
	assert.Equal(t, int32(1), requests.Load())
}

func TestClient_DecodesEnvelopeData(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":200,"message":"OK","data":[{"id":1,"title":"Algebra","description":"","userId":3}]}`))
	}), nil)

	var envelope model.Envelope
	require.NoError(t, client.Get(sessionContext("tok"), "/api/course/getAllCourses", nil, &envelope))

	var courses []model.Course
	require.NoError(t, envelope.DecodeData(&courses))
	require.Len(t, courses, 1)
	assert.Equal(t, "Algebra", courses[0].Title)
}

func TestClient_EmptyBodySuccess(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}), nil)

	var envelope model.Envelope
	assert.NoError(t, client.Delete(sessionContext("tok"), "/api/student/deleteStudent/4", nil, &envelope))
}

func TestClient_MalformedBody(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html>gateway timeout</html>`))
	}), nil)

	var envelope model.Envelope
	err := client.Get(sessionContext("tok"), "/api/groups", nil, &envelope)
	require.Error(t, err)

	var gerr *Error
	require.ErrorAs(t, err, &gerr)
	assert.Equal(t, KindUnexpected, gerr.Kind)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "validation", KindValidation.String())
	assert.Equal(t, "auth", KindAuth.String())
	assert.Equal(t, "unreachable", KindUnreachable.String())
	assert.Equal(t, "unexpected", KindUnexpected.String())
}
