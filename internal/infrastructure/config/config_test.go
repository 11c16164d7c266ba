package config_test

import (
	"testing"
	"time"

	"github.com/iho/transfergate/internal/infrastructure/config"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("JWT_SECRET", "")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("unexpected error loading config: %v", err)
	}

	if cfg.DatabaseURL == "" {
		t.Fatalf("expected default database URL to be set")
	}

	if cfg.AccountsServiceURL != "http://localhost:8001" {
		t.Fatalf("expected default accounts service URL, got %s", cfg.AccountsServiceURL)
	}

	if cfg.HTTPPort != "8080" {
		t.Fatalf("expected default HTTP port 8080, got %s", cfg.HTTPPort)
	}

	if len(cfg.KafkaBrokers) != 0 {
		t.Fatalf("expected kafka brokers to default to empty, got %v", cfg.KafkaBrokers)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://example")
	t.Setenv("REDIS_URL", "redis://example")
	t.Setenv("ACCOUNTS_SERVICE_URL", "http://accounts:9000")
	t.Setenv("RAIL_SERVICE_URL", "http://rail:9001")
	t.Setenv("KAFKA_BROKERS", "broker-1:9092,broker-2:9092")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("GATEWAY_TIMEOUT", "3s")
	t.Setenv("JWT_SECRET", "top-secret")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("unexpected error loading config: %v", err)
	}

	if cfg.AccountsServiceURL != "http://accounts:9000" {
		t.Fatalf("expected custom accounts URL, got %s", cfg.AccountsServiceURL)
	}

	if cfg.RailServiceURL != "http://rail:9001" {
		t.Fatalf("expected custom rail URL, got %s", cfg.RailServiceURL)
	}

	if len(cfg.KafkaBrokers) != 2 || cfg.KafkaBrokers[1] != "broker-2:9092" {
		t.Fatalf("expected two kafka brokers, got %v", cfg.KafkaBrokers)
	}

	if cfg.GatewayTimeout != 3*time.Second {
		t.Fatalf("expected gateway timeout override, got %s", cfg.GatewayTimeout)
	}

	if cfg.JWTSecret != "top-secret" {
		t.Fatalf("expected JWT secret to be set, got %q", cfg.JWTSecret)
	}
}

func TestLoadInvalidDuration(t *testing.T) {
	t.Setenv("HTTP_READ_TIMEOUT", "not-a-duration")

	if _, err := config.Load(); err == nil {
		t.Fatalf("expected error for invalid duration")
	}
}
