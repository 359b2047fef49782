// Package cli wires Cobra commands for the idswap engine, mirroring
// cmd/cli/amm.go and cmd/cli/liquidity_pools.go's PersistentPreRunE
// middleware / controller-struct layering, generalized from the
// two-token AMM those files drove to the per-id multi-token engine.
package cli

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	cfgpkg "idswap/config"
	"idswap/core"
	"idswap/pkg/utils"
)

// genesisFixture seeds an offline in-memory engine for local CLI use,
// named by the IDSWAP_GENESIS_FIXTURE setting; the CLI defines no
// command-line flag for it. It lists accounts and their native balances
// only; it creates no pools and no reserves.
type genesisFixture struct {
	Accounts []struct {
		Address string `yaml:"address"`
		Native  uint64 `yaml:"native"`
	} `yaml:"accounts"`
}

// ensureInitialized bootstraps a process-local in-memory AMM the first
// time any idswap subcommand runs, mirroring amm.go's
// ensureAMMInitialised: if core.Manager() is already wired (e.g. by a
// long-running host process embedding this CLI) it is a no-op.
func ensureInitialized(cmd *cobra.Command, _ []string) error {
	if core.Initialized() {
		return nil
	}

	cfg, err := cfgpkg.Load()
	if err != nil {
		return utils.Wrap(err, "load config")
	}
	if cfg.CreatePoolDeposit != 0 {
		core.CreatePoolDeposit = core.NewBalance(cfg.CreatePoolDeposit)
	}

	log := logrus.StandardLogger()
	if lvl, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(lvl)
	}

	native := core.NewInMemoryNativeLedger()
	currency := core.NewInMemoryCurrencyLedger()
	token := core.NewInMemoryMultiTokenLedger()
	sink := core.NewMemoryEventSink()
	core.InitAMM(native, currency, token, sink, log)

	fixturePath := viper.GetString("IDSWAP_GENESIS_FIXTURE")
	if fixturePath == "" {
		fixturePath = cfg.GenesisFixture
	}
	if fixturePath != "" {
		if err := loadGenesisFixture(fixturePath, native); err != nil {
			return utils.Wrap(err, fmt.Sprintf("load genesis fixture %s", fixturePath))
		}
		log.WithField("file", fixturePath).Info("genesis fixture loaded")
	}
	return nil
}

func loadGenesisFixture(path string, native *core.InMemoryNativeLedger) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var fx genesisFixture
	if err := yaml.Unmarshal(raw, &fx); err != nil {
		return err
	}
	for _, acct := range fx.Accounts {
		addr, err := parseAddr(acct.Address)
		if err != nil {
			return utils.Wrap(err, fmt.Sprintf("account %q", acct.Address))
		}
		if err := native.Fund(addr, core.NewBalance(acct.Native)); err != nil {
			return err
		}
	}
	return nil
}
