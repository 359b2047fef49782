package config

import (
	"os"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"IDSWAP_LISTEN_ADDR", "IDSWAP_LOG_LEVEL", "IDSWAP_GENESIS_FIXTURE",
		"IDSWAP_CREATE_POOL_DEPOSIT", "IDSWAP_METRICS_ENABLED",
	} {
		_ = os.Unsetenv(key)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.ListenAddr == "" {
		t.Fatal("expected a default listen address")
	}
	if cfg.LogLevel != "info" {
		t.Fatalf("expected default log level info, got %s", cfg.LogLevel)
	}
	if !cfg.MetricsEnabled {
		t.Fatal("expected metrics enabled by default")
	}
}

func TestLoadHonorsOverrides(t *testing.T) {
	_ = os.Setenv("IDSWAP_LISTEN_ADDR", "0.0.0.0:9999")
	_ = os.Setenv("IDSWAP_LOG_LEVEL", "debug")
	_ = os.Setenv("IDSWAP_METRICS_ENABLED", "false")
	defer func() {
		_ = os.Unsetenv("IDSWAP_LISTEN_ADDR")
		_ = os.Unsetenv("IDSWAP_LOG_LEVEL")
		_ = os.Unsetenv("IDSWAP_METRICS_ENABLED")
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.ListenAddr != "0.0.0.0:9999" {
		t.Fatalf("expected overridden listen address, got %s", cfg.ListenAddr)
	}
	if cfg.LogLevel != "debug" {
		t.Fatalf("expected overridden log level, got %s", cfg.LogLevel)
	}
	if cfg.MetricsEnabled {
		t.Fatal("expected metrics disabled when overridden to false")
	}
}
