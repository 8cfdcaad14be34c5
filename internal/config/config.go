package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Runtime configuration shared by the server, the CLI and dbtool.
// Optional backends (Postgres, Redis) are enabled by setting their URL.
type Config struct {
	Port             string
	DatabaseURL      string
	RedisURL         string
	LegCacheTTL      time.Duration
	DefaultFloorPlan string
	SeedPath         string
	AnimationDelay   time.Duration
}

// Load reads configuration from environment variables.
// Callers load .env first (godotenv) when they want file-based overrides.
func Load() (*Config, error) {
	cfg := &Config{
		Port:             Get("PORT", "8080"),
		DatabaseURL:      strings.TrimSpace(os.Getenv("DATABASE_URL")),
		RedisURL:         strings.TrimSpace(os.Getenv("REDIS_URL")),
		LegCacheTTL:      getDuration("LEG_CACHE_TTL", 24*time.Hour),
		DefaultFloorPlan: Get("FLOOR_PLAN", "hospital"),
		SeedPath:         strings.TrimSpace(os.Getenv("SEED_PATH")),
		AnimationDelay:   getDuration("ANIMATION_DELAY", 100*time.Millisecond),
	}

	return cfg, cfg.Validate()
}

func (c *Config) Validate() error {
	if _, err := strconv.Atoi(c.Port); err != nil {
		return fmt.Errorf("PORT must be numeric, got %q", c.Port)
	}
	if c.LegCacheTTL < 0 {
		return fmt.Errorf("LEG_CACHE_TTL must not be negative, got %s", c.LegCacheTTL)
	}
	if c.AnimationDelay <= 0 {
		return fmt.Errorf("ANIMATION_DELAY must be positive, got %s", c.AnimationDelay)
	}
	if strings.TrimSpace(c.DefaultFloorPlan) == "" {
		return fmt.Errorf("FLOOR_PLAN must not be empty")
	}
	return nil
}

// Get returns the environment value for key, or fallback when unset or empty.
func Get(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
