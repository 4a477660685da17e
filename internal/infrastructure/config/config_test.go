package config_test

import (
	"os"
	"testing"
	"time"

	"github.com/moharam/debtbook/internal/infrastructure/config"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("GOLD_PRICE_URL", "")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("unexpected error loading config: %v", err)
	}

	if cfg.DatabaseURL == "" {
		t.Fatalf("expected default database URL to be set")
	}

	if cfg.HTTPPort != "8080" {
		t.Fatalf("expected default HTTP port 8080, got %s", cfg.HTTPPort)
	}

	if cfg.GoldPriceCycleHour != 1 {
		t.Fatalf("expected default cycle hour 1, got %d", cfg.GoldPriceCycleHour)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://example")
	t.Setenv("REDIS_URL", "redis://example")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("DATABASE_TIMEOUT", "45s")
	t.Setenv("GOLD_PRICE_URL", "https://example.test/gold")
	t.Setenv("GOLD_PRICE_CYCLE_HOUR", "6")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("unexpected error loading config: %v", err)
	}

	if cfg.DatabaseURL != "postgres://example" {
		t.Fatalf("expected custom database URL, got %s", cfg.DatabaseURL)
	}

	if cfg.RedisURL != "redis://example" {
		t.Fatalf("expected custom redis URL, got %s", cfg.RedisURL)
	}

	if cfg.HTTPPort != "9090" {
		t.Fatalf("expected HTTP port override, got %s", cfg.HTTPPort)
	}

	if cfg.DatabaseTimeout != 45*time.Second {
		t.Fatalf("expected database timeout override, got %s", cfg.DatabaseTimeout)
	}

	if cfg.GoldPriceURL != "https://example.test/gold" || cfg.GoldPriceCycleHour != 6 {
		t.Fatalf("expected gold price settings to be set, got url=%s hour=%d", cfg.GoldPriceURL, cfg.GoldPriceCycleHour)
	}
}

func TestLoadInvalidDuration(t *testing.T) {
	original := os.Getenv("HTTP_READ_TIMEOUT")
	t.Setenv("HTTP_READ_TIMEOUT", "not-a-duration")
	t.Cleanup(func() {
		t.Setenv("HTTP_READ_TIMEOUT", original)
	})

	if _, err := config.Load(); err == nil {
		t.Fatalf("expected error for invalid duration")
	}
}
