package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainauth "github.com/davomat/attendance-ui-api/internal/domain/auth"
)

func testSession(id string) domainauth.Session {
	return domainauth.Session{
		ID:        id,
		UserID:    "7",
		FirstName: "Aziz",
		LastName:  "Karimov",
		Email:     "aziz@example.com",
		Role:      domainauth.RoleStudent,
		Token:     "bearer-token",
		ExpiresAt: time.Now().Add(time.Hour),
	}
}

func TestSessionStore_SaveAndGet(t *testing.T) {
	store := NewSessionStore()
	ctx := context.Background()

	session := testSession("mem-1")
	require.NoError(t, store.Save(ctx, session))

	retrieved, err := store.Get(ctx, "mem-1")
	require.NoError(t, err)
	assert.Equal(t, session, retrieved)
	assert.Equal(t, 1, store.Len())
}

func TestSessionStore_GetNonExistent(t *testing.T) {
	store := NewSessionStore()

	_, err := store.Get(context.Background(), "missing")
	assert.Equal(t, ErrNotFound, err)
}

func TestSessionStore_SaveInvalid(t *testing.T) {
	store := NewSessionStore()
	ctx := context.Background()

	session := testSession("mem-invalid")
	session.Token = ""
	err := store.Save(ctx, session)
	assert.ErrorIs(t, err, domainauth.ErrInvalidSession)
	assert.Equal(t, 0, store.Len())
}

func TestSessionStore_SaveExpired(t *testing.T) {
	store := NewSessionStore()

	session := testSession("mem-expired")
	session.ExpiresAt = time.Now().Add(-time.Minute)
	err := store.Save(context.Background(), session)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "session is expired")
}

func TestSessionStore_ExpiryOnGet(t *testing.T) {
	store := NewSessionStore()
	ctx := context.Background()

	session := testSession("mem-ttl")
	session.ExpiresAt = time.Now().Add(50 * time.Millisecond)
	require.NoError(t, store.Save(ctx, session))

	time.Sleep(100 * time.Millisecond)

	_, err := store.Get(ctx, "mem-ttl")
	assert.Equal(t, ErrNotFound, err)
	assert.Equal(t, 0, store.Len())
}

func TestSessionStore_Delete(t *testing.T) {
	store := NewSessionStore()
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, testSession("mem-del")))
	require.NoError(t, store.Delete(ctx, "mem-del"))

	_, err := store.Get(ctx, "mem-del")
	assert.Equal(t, ErrNotFound, err)

	assert.NoError(t, store.Delete(ctx, "mem-del"))
	assert.NoError(t, store.Delete(ctx, ""))
}
