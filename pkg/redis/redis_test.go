package redis

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alijeyrad/psyassist_backend/config"
)

func TestFromCentralConfigFillsDefaults(t *testing.T) {
	cfg := FromCentralConfig(config.RedisConfig{Addr: "redis:6379", DB: 2, ReadTimeoutSeconds: 9})
	assert.Equal(t, "redis:6379", cfg.Addr)
	assert.Equal(t, 2, cfg.DB)
	assert.Equal(t, 10, cfg.PoolSize)
	assert.Equal(t, 2, cfg.MinIdleConns)
	assert.Equal(t, 9*time.Second, cfg.ReadTimeout())
	assert.Equal(t, 5*time.Second, cfg.DialTimeout())
}

func TestOptions(t *testing.T) {
	_, err := Options(Config{})
	require.Error(t, err)

	opts, err := Options(DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, "localhost:6379", opts.Addr)
	assert.Equal(t, 3*time.Second, opts.WriteTimeout)
}

func TestNewRedisFromCentralDisabled(t *testing.T) {
	rdb, err := NewRedisFromCentral(config.RedisConfig{Addr: "unused:1"})
	require.NoError(t, err)
	assert.Nil(t, rdb)
}

func TestAuthSessionKey(t *testing.T) {
	assert.Equal(t, "session:abc", AuthSessionKey("abc"))
}
