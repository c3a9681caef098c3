package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainauth "github.com/davomat/attendance-ui-api/internal/domain/auth"
	"github.com/davomat/attendance-ui-api/internal/ports"
)

func TestMockAuthProvider_Begin_Defaults(t *testing.T) {
	provider := NewMockAuthProvider()
	ctx := context.Background()

	input := ports.BeginInput{RedirectURL: "http://localhost:8080/callback"}
	authURL, state, nonce, err := provider.Begin(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "https://mock-idp/auth", authURL)
	assert.Equal(t, "state-1", state)
	assert.Equal(t, "nonce-1", nonce)

	// Second call should increment counters
	authURL2, state2, nonce2, err2 := provider.Begin(ctx, input)
	require.NoError(t, err2)
	assert.Equal(t, "https://mock-idp/auth", authURL2)
	assert.Equal(t, "state-2", state2)
	assert.Equal(t, "nonce-2", nonce2)
}

func TestMockAuthProvider_Begin_CustomFunc(t *testing.T) {
	provider := &MockAuthProvider{
		BeginFunc: func(_ context.Context, _ ports.BeginInput) (string, string, string, error) {
			return "custom-url", "custom-state", "custom-nonce", nil
		},
	}

	authURL, state, nonce, err := provider.Begin(context.Background(), ports.BeginInput{RedirectURL: "/"})

	require.NoError(t, err)
	assert.Equal(t, "custom-url", authURL)
	assert.Equal(t, "custom-state", state)
	assert.Equal(t, "custom-nonce", nonce)
}

func TestMockAuthProvider_Exchange_Defaults(t *testing.T) {
	provider := NewMockAuthProvider()

	identity, err := provider.Exchange(context.Background(), ports.ExchangeInput{
		Code:  "auth-code",
		State: "state-1",
		Nonce: "nonce-1",
	})

	require.NoError(t, err)
	assert.Equal(t, "mock-user-1", identity.UserID)
	assert.Equal(t, "mock.user@example.com", identity.Email)
	assert.Equal(t, []string{"davomat-teachers"}, identity.Groups)
	assert.Equal(t, "mock-token", identity.Token)
	assert.True(t, identity.ExpiresAt.After(time.Now()))
}

func TestMockAuthProvider_Exchange_CustomFunc(t *testing.T) {
	provider := &MockAuthProvider{
		ExchangeFunc: func(_ context.Context, _ ports.ExchangeInput) (domainauth.Identity, error) {
			return domainauth.Identity{
				UserID: "func-user",
				Email:  "func@example.com",
			}, nil
		},
	}

	identity, err := provider.Exchange(context.Background(), ports.ExchangeInput{
		Code:  "auth-code",
		State: "state-1",
		Nonce: "nonce-1",
	})

	require.NoError(t, err)
	assert.Equal(t, "func-user", identity.UserID)
	assert.Equal(t, "func@example.com", identity.Email)
}

func TestStaticRoleMapper_Precedence(t *testing.T) {
	mapper := StaticRoleMapper{
		AdminGroup:   "admins",
		TeacherGroup: "teachers",
		StudentGroup: "students",
	}

	role, ok := mapper.Map([]string{"admins", "teachers"})
	require.True(t, ok)
	assert.Equal(t, domainauth.RoleAdmin, role)

	role, ok = mapper.Map([]string{"students", "teachers"})
	require.True(t, ok)
	assert.Equal(t, domainauth.RoleTeacher, role)

	role, ok = mapper.Map([]string{"students"})
	require.True(t, ok)
	assert.Equal(t, domainauth.RoleStudent, role)
}

func TestStaticRoleMapper_NoMapping(t *testing.T) {
	mapper := StaticRoleMapper{
		AdminGroup:   "admins",
		TeacherGroup: "teachers",
		StudentGroup: "students",
	}

	for _, groups := range [][]string{{"other"}, {}, nil} {
		_, ok := mapper.Map(groups)
		assert.False(t, ok, "groups %v should not map", groups)
	}
}

func TestStaticRoleMapper_EmptyConfig(t *testing.T) {
	mapper := StaticRoleMapper{}

	_, ok := mapper.Map([]string{"admins", "teachers"})
	assert.False(t, ok)
}

func validSession(id string) domainauth.Session {
	return domainauth.Session{
		ID:        id,
		UserID:    "user-123",
		Email:     "user@example.com",
		Role:      domainauth.RoleTeacher,
		Token:     "tok",
		ExpiresAt: time.Now().Add(30 * time.Minute),
	}
}

func TestMemorySessionStore_SaveAndGet(t *testing.T) {
	store := NewMemorySessionStore()
	ctx := context.Background()

	session := validSession("test-session-1")
	require.NoError(t, store.Save(ctx, session))

	retrieved, err := store.Get(ctx, "test-session-1")
	require.NoError(t, err)
	assert.Equal(t, session.ID, retrieved.ID)
	assert.Equal(t, session.UserID, retrieved.UserID)
	assert.Equal(t, session.Role, retrieved.Role)
	assert.Equal(t, session.Token, retrieved.Token)
	assert.Equal(t, 1, store.Len())
}

func TestMemorySessionStore_GetNonExistent(t *testing.T) {
	store := NewMemorySessionStore()

	_, err := store.Get(context.Background(), "non-existent")
	assert.Equal(t, ErrNotFound, err)
}

func TestMemorySessionStore_GetEmptyID(t *testing.T) {
	store := NewMemorySessionStore()

	_, err := store.Get(context.Background(), "")
	assert.Equal(t, ErrNotFound, err)
}

func TestMemorySessionStore_SaveInvalid(t *testing.T) {
	store := NewMemorySessionStore()
	ctx := context.Background()

	session := validSession("")
	err := store.Save(ctx, session)
	assert.ErrorIs(t, err, domainauth.ErrInvalidSession)

	session = validSession("s1")
	session.Token = ""
	err = store.Save(ctx, session)
	assert.ErrorIs(t, err, domainauth.ErrInvalidSession)
	assert.Equal(t, 0, store.Len())
}

func TestMemorySessionStore_Delete(t *testing.T) {
	store := NewMemorySessionStore()
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, validSession("to-delete")))
	require.NoError(t, store.Delete(ctx, "to-delete"))

	_, err := store.Get(ctx, "to-delete")
	assert.Equal(t, ErrNotFound, err)

	// Idempotent
	assert.NoError(t, store.Delete(ctx, "to-delete"))
	assert.NoError(t, store.Delete(ctx, ""))
}
