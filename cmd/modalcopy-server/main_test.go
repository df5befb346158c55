package main

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"modalcopy/internal/common/config"
)

// ==========================
// retryWithBackoff
// ==========================

func TestRetryWithBackoff(t *testing.T) {
	calls := 0
	err := retryWithBackoff(func() error {
		calls++
		if calls < 3 {
			return errors.New("not yet")
		}
		return nil
	}, 5, time.Millisecond, zap.NewNop(), "flaky op")
	require.NoError(t, err)
	assert.Equal(t, 3, calls)

	calls = 0
	err = retryWithBackoff(func() error {
		calls++
		return errors.New("down")
	}, 2, time.Millisecond, zap.NewNop(), "dead op")
	require.Error(t, err)
	assert.Equal(t, 2, calls)
	assert.Contains(t, err.Error(), "dead op failed after 2 attempts")
}

// ==========================
// connectRedis
// ==========================

func TestConnectRedis_Available(t *testing.T) {
	mr := miniredis.RunT(t)

	rc := connectRedis(context.Background(), config.RedisConfig{Address: mr.Addr()}, 2, time.Millisecond, zap.NewNop())
	require.NotNil(t, rc)
	t.Cleanup(func() { _ = rc.Close() })
	assert.NoError(t, rc.Ping(context.Background()))
}

func TestConnectRedis_UnavailableIsNotFatal(t *testing.T) {
	mr := miniredis.NewMiniRedis()
	require.NoError(t, mr.Start())
	addr := mr.Addr()
	mr.Close()

	core, logs := observer.New(zapcore.InfoLevel)
	rc := connectRedis(context.Background(), config.RedisConfig{Address: addr}, 2, time.Millisecond, zap.New(core))

	assert.Nil(t, rc)
	warnings := logs.FilterMessage("redis unavailable, running without cache").All()
	require.Len(t, warnings, 1)
	assert.Equal(t, zapcore.WarnLevel, warnings[0].Level)
}
