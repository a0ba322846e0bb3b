package config

import (
	"testing"
	"time"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("HOST", "")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("DATABASE_NAME", "")
	t.Setenv("DATABASE_TIMEOUT", "")
	t.Setenv("RATE_LIMIT_ENABLED", "")
	t.Setenv("TRUSTED_PROXIES", "")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Server.Port != "8000" {
		t.Fatalf("expected default port 8000, got %q", cfg.Server.Port)
	}
	if cfg.Server.Addr() != "0.0.0.0:8000" {
		t.Fatalf("unexpected addr: %s", cfg.Server.Addr())
	}
	if cfg.Database.Configured() {
		t.Fatalf("database should not be configured: %+v", cfg.Database)
	}
	if cfg.Database.Driver != DriverMongo {
		t.Fatalf("unexpected driver: %q", cfg.Database.Driver)
	}
	if cfg.Database.Timeout != 10*time.Second {
		t.Fatalf("unexpected timeout: %v", cfg.Database.Timeout)
	}
	if cfg.RateLimit.Enabled {
		t.Fatalf("rate limit should be off by default")
	}
	if len(cfg.Server.TrustedProxies) != 0 {
		t.Fatalf("no proxy should be trusted by default: %v", cfg.Server.TrustedProxies)
	}
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DATABASE_URL", "mongodb://localhost:27017")
	t.Setenv("DATABASE_NAME", "portfolio_test")
	t.Setenv("DATABASE_TIMEOUT", "3")
	t.Setenv("RATE_LIMIT_ENABLED", "true")
	t.Setenv("RATE_LIMIT_BURST", "2")
	t.Setenv("TRUSTED_PROXIES", " 10.0.0.1, ,172.16.0.0/12 ")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Server.Port != "9090" {
		t.Fatalf("expected port 9090, got %q", cfg.Server.Port)
	}
	if !cfg.Database.Configured() || cfg.Database.Name != "portfolio_test" {
		t.Fatalf("unexpected database config: %+v", cfg.Database)
	}
	if cfg.Database.Timeout != 3*time.Second {
		t.Fatalf("unexpected timeout: %v", cfg.Database.Timeout)
	}
	if !cfg.RateLimit.Enabled || cfg.RateLimit.Burst != 2 {
		t.Fatalf("unexpected rate limit config: %+v", cfg.RateLimit)
	}
	if got := cfg.Server.TrustedProxies; len(got) != 2 || got[0] != "10.0.0.1" || got[1] != "172.16.0.0/12" {
		t.Fatalf("unexpected trusted proxies: %v", got)
	}
}
