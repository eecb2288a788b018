package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds all application configuration
type Config struct {
	Port        string `env:"PORT" envDefault:"6969"`
	DatabaseURL string `env:"DATABASE_URL"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	// DebugRoutes mounts operator routes that expose session ids
	DebugRoutes bool `env:"DEBUG_ROUTES" envDefault:"false"`

	// ProfileSeed is a JSON file of identities for runs without a database
	ProfileSeed string `env:"PROFILE_SEED"`

	// Redis relay is only enabled when an address is configured
	RedisAddr    string `env:"REDIS_ADDR"`
	RedisChannel string `env:"REDIS_CHANNEL" envDefault:"party:notify"`

	ProfileCacheTTL time.Duration `env:"PROFILE_CACHE_TTL" envDefault:"30s"`
	WSSendBuffer    int           `env:"WS_SEND_BUFFER" envDefault:"32"`
	WSPingInterval  time.Duration `env:"WS_PING_INTERVAL" envDefault:"30s"`
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if cfg.WSSendBuffer < 1 {
		return nil, fmt.Errorf("WS_SEND_BUFFER must be positive, got %d", cfg.WSSendBuffer)
	}
	if cfg.WSPingInterval <= 0 {
		return nil, fmt.Errorf("WS_PING_INTERVAL must be positive, got %s", cfg.WSPingInterval)
	}
	return cfg, nil
}

// SlogLevel maps LOG_LEVEL onto a slog level, defaulting to info
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(strings.TrimSpace(c.LogLevel)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
