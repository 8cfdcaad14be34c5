package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"PORT", "DATABASE_URL", "REDIS_URL", "LEG_CACHE_TTL", "FLOOR_PLAN", "SEED_PATH", "ANIMATION_DELAY"} {
		t.Setenv(k, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Port != "8080" {
		t.Errorf("Port = %q, want 8080", cfg.Port)
	}
	if cfg.DatabaseURL != "" || cfg.RedisURL != "" {
		t.Errorf("optional backends should be disabled by default")
	}
	if cfg.LegCacheTTL != 24*time.Hour {
		t.Errorf("LegCacheTTL = %s", cfg.LegCacheTTL)
	}
	if cfg.DefaultFloorPlan != "hospital" {
		t.Errorf("DefaultFloorPlan = %q", cfg.DefaultFloorPlan)
	}
	if cfg.AnimationDelay != 100*time.Millisecond {
		t.Errorf("AnimationDelay = %s", cfg.AnimationDelay)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("REDIS_URL", " redis://localhost:6379/0 ")
	t.Setenv("LEG_CACHE_TTL", "5m")
	t.Setenv("FLOOR_PLAN", "east-wing")
	t.Setenv("ANIMATION_DELAY", "not-a-duration")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != "9090" || cfg.RedisURL != "redis://localhost:6379/0" || cfg.LegCacheTTL != 5*time.Minute || cfg.DefaultFloorPlan != "east-wing" {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
	if cfg.AnimationDelay != 100*time.Millisecond {
		t.Fatalf("invalid duration should fall back, got %s", cfg.AnimationDelay)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"valid", Config{Port: "8080", DefaultFloorPlan: "h", AnimationDelay: time.Millisecond}, false},
		{"bad port", Config{Port: "http", DefaultFloorPlan: "h", AnimationDelay: time.Millisecond}, true},
		{"negative ttl", Config{Port: "1", DefaultFloorPlan: "h", AnimationDelay: time.Millisecond, LegCacheTTL: -time.Second}, true},
		{"zero delay", Config{Port: "1", DefaultFloorPlan: "h"}, true},
		{"blank floor plan", Config{Port: "1", DefaultFloorPlan: " ", AnimationDelay: time.Millisecond}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() err = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
