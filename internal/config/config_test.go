package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("REDIS_ADDR", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "party:notify", cfg.RedisChannel)
	assert.Equal(t, 30*time.Second, cfg.ProfileCacheTTL)
	assert.Equal(t, 32, cfg.WSSendBuffer)
	assert.Empty(t, cfg.RedisAddr)
	assert.False(t, cfg.DebugRoutes)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "7000")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("PROFILE_CACHE_TTL", "5s")
	t.Setenv("WS_SEND_BUFFER", "4")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "7000", cfg.Port)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Equal(t, 5*time.Second, cfg.ProfileCacheTTL)
	assert.Equal(t, 4, cfg.WSSendBuffer)
}

func TestLoad_RejectsEmptySendBuffer(t *testing.T) {
	t.Setenv("WS_SEND_BUFFER", "0")

	_, err := Load()
	require.Error(t, err)
}

func TestSlogLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"WARN":    slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
		"verbose": slog.LevelInfo,
	}
	for in, want := range cases {
		cfg := &Config{LogLevel: in}
		assert.Equal(t, want, cfg.SlogLevel(), in)
	}
}
