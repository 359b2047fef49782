package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"idswap/core"
)

var liquidityCmd = &cobra.Command{
	Use:               "liquidity",
	Short:             "Add or remove liquidity from a pool",
	PersistentPreRunE: ensureInitialized,
}

var liquidityAddCmd = &cobra.Command{
	Use:   "add <lp> <pool> <ids> <tokenAmounts> <maxCurrencies>",
	Short: "add_liquidity: deposit tokenAmounts of ids, minting LP shares",
	Args:  cobra.ExactArgs(5),
	RunE: func(cmd *cobra.Command, args []string) error {
		lp, err := parseAddr(args[0])
		if err != nil {
			return err
		}
		pool, err := parseAddr(args[1])
		if err != nil {
			return err
		}
		ids, err := parseIds(args[2])
		if err != nil {
			return err
		}
		tokenAmounts, err := parseBalances(args[3])
		if err != nil {
			return err
		}
		maxCurrencies, err := parseBalances(args[4])
		if err != nil {
			return err
		}

		shares, err := core.Manager().AddLiquidity(lp, pool, ids, tokenAmounts, maxCurrencies)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), joinBalances(shares))
		return nil
	},
}

var liquidityRemoveCmd = &cobra.Command{
	Use:   "remove <lp> <pool> <ids> <shares> <minCurrencies> <minTokens>",
	Short: "remove_liquidity: burn shares of ids, returning proportional currency and tokens",
	Args:  cobra.ExactArgs(6),
	RunE: func(cmd *cobra.Command, args []string) error {
		lp, err := parseAddr(args[0])
		if err != nil {
			return err
		}
		pool, err := parseAddr(args[1])
		if err != nil {
			return err
		}
		ids, err := parseIds(args[2])
		if err != nil {
			return err
		}
		shares, err := parseBalances(args[3])
		if err != nil {
			return err
		}
		minCurrencies, err := parseBalances(args[4])
		if err != nil {
			return err
		}
		minTokens, err := parseBalances(args[5])
		if err != nil {
			return err
		}

		currencyOut, tokensOut, err := core.Manager().RemoveLiquidity(lp, pool, ids, shares, minCurrencies, minTokens)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s\n%s\n", joinBalances(currencyOut), joinBalances(tokensOut))
		return nil
	},
}

func joinBalances(bs []core.Balance) string {
	parts := make([]string, len(bs))
	for i, b := range bs {
		parts[i] = b.String()
	}
	return strings.Join(parts, ",")
}

func init() {
	liquidityCmd.AddCommand(liquidityAddCmd, liquidityRemoveCmd)
}

// LiquidityCmd is mounted under the root command by cmd/idswap/main.go.
var LiquidityCmd = liquidityCmd
