package config

// Process configuration (SPEC_FULL.md §2.2), grounded on
// walletserver/config/config.go's godotenv-backed Load(), generalized
// from one hardcoded port field to the handful of settings the engine,
// CLI, and apiserver all share, resolved through pkg/utils's env-var
// helpers.

import (
	"fmt"

	"github.com/joho/godotenv"

	"idswap/pkg/utils"
)

// Config holds every environment-tunable setting for the idswap binaries.
type Config struct {
	// ListenAddr is the apiserver's HTTP bind address.
	ListenAddr string
	// LogLevel is parsed by logrus.ParseLevel.
	LogLevel string
	// GenesisFixture optionally points at a YAML file of accounts and
	// native balances that the CLI funds when it bootstraps its
	// in-memory engine. It seeds no pools, and the apiserver does not
	// read it.
	GenesisFixture string
	// CreatePoolDeposit overrides core.CreatePoolDeposit when nonzero.
	CreatePoolDeposit uint64
	// MetricsEnabled toggles the apiserver's /metrics endpoint.
	MetricsEnabled bool
}

// Load reads a .env file (if present) and then resolves every setting
// from the environment, falling back to defaults. A missing .env file
// is not an error — godotenv.Load is best-effort, mirroring
// walletserver/config.Load's tolerance for a dev-only file.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		_ = err // no .env file present; environment variables still apply
	}

	cfg := &Config{
		ListenAddr:        utils.EnvOrDefault("IDSWAP_LISTEN_ADDR", "127.0.0.1:8090"),
		LogLevel:          utils.EnvOrDefault("IDSWAP_LOG_LEVEL", "info"),
		GenesisFixture:    utils.EnvOrDefault("IDSWAP_GENESIS_FIXTURE", ""),
		CreatePoolDeposit: utils.EnvOrDefaultUint64("IDSWAP_CREATE_POOL_DEPOSIT", 0),
		MetricsEnabled:    utils.EnvOrDefault("IDSWAP_METRICS_ENABLED", "true") == "true",
	}
	if cfg.ListenAddr == "" {
		return nil, fmt.Errorf("config: IDSWAP_LISTEN_ADDR resolved empty")
	}
	return cfg, nil
}
