package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"modalcopy/internal/common/config"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRedis(t *testing.T) (*miniredis.Miniredis, *RedisClient) {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	rc, err := NewRedis(config.RedisConfig{Address: mr.Addr()})
	require.NoError(t, err)
	t.Cleanup(func() { _ = rc.Close() })
	return mr, rc
}

// ==========================
// miniredis
// ==========================

func TestRedisClient_GetSetDel(t *testing.T) {
	mr, rc := setupRedis(t)
	ctx := context.Background()

	require.NoError(t, rc.Ping(ctx))
	require.NoError(t, rc.Set(ctx, "speller:passport-key", "abc123", time.Minute))

	got, err := rc.Get(ctx, "speller:passport-key")
	require.NoError(t, err)
	assert.Equal(t, "abc123", got)
	assert.Equal(t, time.Minute, mr.TTL("speller:passport-key"))

	require.NoError(t, rc.Del(ctx, "speller:passport-key"))
	_, err = rc.Get(ctx, "speller:passport-key")
	assert.True(t, IsMiss(err))
}

func TestRedisClient_JSONRoundTrip(t *testing.T) {
	mr, rc := setupRedis(t)
	ctx := context.Background()

	type payload struct {
		Checked string `json:"checked"`
		Count   int    `json:"count"`
	}

	ok, err := rc.GetJSON(ctx, "spellcheck:result:x", &payload{})
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, rc.SetJSON(ctx, "spellcheck:result:x", payload{Checked: "안 돼요", Count: 1}, time.Hour))

	var got payload
	ok, err = rc.GetJSON(ctx, "spellcheck:result:x", &got)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, payload{Checked: "안 돼요", Count: 1}, got)

	mr.FastForward(2 * time.Hour)
	ok, err = rc.GetJSON(ctx, "spellcheck:result:x", &got)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedisClient_GetJSONCorrupt(t *testing.T) {
	mr, rc := setupRedis(t)
	require.NoError(t, mr.Set("k", "{not json"))

	var dst map[string]interface{}
	ok, err := rc.GetJSON(context.Background(), "k", &dst)
	assert.False(t, ok)
	assert.Error(t, err)
}

func TestNewRedis_RequiresAddress(t *testing.T) {
	_, err := NewRedis(config.RedisConfig{})
	assert.Error(t, err)
}

// ==========================
// redismock
// ==========================

func TestRedisClient_PingFailure(t *testing.T) {
	db, mock := redismock.NewClientMock()
	rc := NewRedisFromClient(db)

	mock.ExpectPing().SetErr(errors.New("connection refused"))

	err := rc.Ping(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "redis ping failed")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisClient_GetJSONBackendError(t *testing.T) {
	db, mock := redismock.NewClientMock()
	rc := NewRedisFromClient(db)

	mock.ExpectGet("k").SetErr(errors.New("READONLY"))

	var dst map[string]interface{}
	ok, err := rc.GetJSON(context.Background(), "k", &dst)
	assert.False(t, ok)
	require.Error(t, err)
	assert.False(t, IsMiss(err))

	mock.ExpectGet("k").RedisNil()
	ok, err = rc.GetJSON(context.Background(), "k", &dst)
	assert.False(t, ok)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
