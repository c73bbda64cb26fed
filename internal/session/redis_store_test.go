package session

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRedis(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	s := miniredis.RunT(t)
	store, err := NewRedisStore("redis://" + s.Addr())
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store, s
}

func TestNewRedisStore_BadURL(t *testing.T) {
	_, err := NewRedisStore("not a url")
	assert.Error(t, err)
}

func TestLoginToken_SingleUse(t *testing.T) {
	store, _ := setupTestRedis(t)
	ctx := context.Background()

	require.NoError(t, store.SaveLoginToken(ctx, "raw-token", "owner@example.com", time.Minute))

	email, err := store.ConsumeLoginToken(ctx, "raw-token")
	require.NoError(t, err)
	assert.Equal(t, "owner@example.com", email)

	_, err = store.ConsumeLoginToken(ctx, "raw-token")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLoginToken_StoredHashed(t *testing.T) {
	store, s := setupTestRedis(t)

	require.NoError(t, store.SaveLoginToken(context.Background(), "raw-token", "owner@example.com", time.Minute))

	assert.False(t, s.Exists("login:raw-token"))
	assert.True(t, s.Exists("login:"+HashToken("raw-token")))
}

func TestLoginToken_Expires(t *testing.T) {
	store, s := setupTestRedis(t)
	ctx := context.Background()

	require.NoError(t, store.SaveLoginToken(ctx, "raw-token", "owner@example.com", time.Minute))
	s.FastForward(2 * time.Minute)

	_, err := store.ConsumeLoginToken(ctx, "raw-token")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSession_SaveLookupRevoke(t *testing.T) {
	store, _ := setupTestRedis(t)
	ctx := context.Background()
	record := Record{
		Email:     "owner@example.com",
		CreatedAt: time.Now().UTC().Truncate(time.Second),
		ExpiresAt: time.Now().Add(time.Hour).UTC().Truncate(time.Second),
	}

	require.NoError(t, store.SaveSession(ctx, "jti-1", record))

	found, err := store.LookupSession(ctx, "jti-1")
	require.NoError(t, err)
	assert.Equal(t, record.Email, found.Email)
	assert.True(t, record.ExpiresAt.Equal(found.ExpiresAt))

	require.NoError(t, store.RevokeSession(ctx, "jti-1"))
	_, err = store.LookupSession(ctx, "jti-1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSession_RejectsExpiredRecord(t *testing.T) {
	store, _ := setupTestRedis(t)

	err := store.SaveSession(context.Background(), "jti-2", Record{
		Email:     "owner@example.com",
		ExpiresAt: time.Now().Add(-time.Minute),
	})

	assert.Error(t, err)
}

func TestSession_Isolation(t *testing.T) {
	store, _ := setupTestRedis(t)
	ctx := context.Background()
	expires := time.Now().Add(time.Hour)

	require.NoError(t, store.SaveSession(ctx, "jti-a", Record{Email: "a@example.com", ExpiresAt: expires}))
	require.NoError(t, store.SaveSession(ctx, "jti-b", Record{Email: "b@example.com", ExpiresAt: expires}))
	require.NoError(t, store.RevokeSession(ctx, "jti-a"))

	_, err := store.LookupSession(ctx, "jti-a")
	assert.ErrorIs(t, err, ErrNotFound)
	b, err := store.LookupSession(ctx, "jti-b")
	require.NoError(t, err)
	assert.Equal(t, "b@example.com", b.Email)
}
