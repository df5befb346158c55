package proxyspeller

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"
)

const (
	resultKeyPrefix = "spellcheck:result:"
	passportKey     = "speller:passport-key"
)

// Cache is the subset of the redis client the proxy needs. *database.RedisClient satisfies it.
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Del(ctx context.Context, keys ...string) error
	GetJSON(ctx context.Context, key string, dst interface{}) (bool, error)
	SetJSON(ctx context.Context, key string, v interface{}, expiration time.Duration) error
}

func resultKey(text string) string {
	sum := sha256.Sum256([]byte(text))
	return resultKeyPrefix + hex.EncodeToString(sum[:])
}
