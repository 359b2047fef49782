// Command idswap is the CLI front-end for the per-id AMM engine,
// mounting the pools/swap/liquidity command groups from cmd/cli under
// one root command the way the teacher's cmd/synnergy root index
// mounted each subsystem's Cmd export.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"idswap/cmd/cli"
)

var rootCmd = &cobra.Command{
	Use:   "idswap",
	Short: "Per-id constant-product AMM for currency/multi-token bundles",
}

func init() {
	rootCmd.AddCommand(cli.PoolsCmd, cli.SwapCmd, cli.LiquidityCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
