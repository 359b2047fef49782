package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"idswap/core"
)

var swapCmd = &cobra.Command{
	Use:               "swap",
	Short:             "Buy or sell batches of ids against a pool",
	PersistentPreRunE: ensureInitialized,
}

var swapBuyCmd = &cobra.Command{
	Use:   "buy <buyer> <pool> <ids> <amountsOut> <maxCurrency> <recipient>",
	Short: "swap_currency_to_token: buy amountsOut of ids for up to maxCurrency",
	Args:  cobra.ExactArgs(6),
	RunE: func(cmd *cobra.Command, args []string) error {
		buyer, err := parseAddr(args[0])
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
		amountsOut, err := parseBalances(args[3])
		if err != nil {
			return err
		}
		maxCurrency, err := core.ParseBalance(args[4])
		if err != nil {
			return err
		}
		recipient, err := parseAddr(args[5])
		if err != nil {
			return err
		}

		spent, err := core.Manager().SwapCurrencyToToken(buyer, pool, ids, amountsOut, maxCurrency, recipient)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s\n", spent)
		return nil
	},
}

var swapSellCmd = &cobra.Command{
	Use:   "sell <seller> <pool> <ids> <amountsIn> <minCurrency> <recipient>",
	Short: "swap_token_to_currency: sell amountsIn of ids for at least minCurrency",
	Args:  cobra.ExactArgs(6),
	RunE: func(cmd *cobra.Command, args []string) error {
		seller, err := parseAddr(args[0])
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
		amountsIn, err := parseBalances(args[3])
		if err != nil {
			return err
		}
		minCurrency, err := core.ParseBalance(args[4])
		if err != nil {
			return err
		}
		recipient, err := parseAddr(args[5])
		if err != nil {
			return err
		}

		received, err := core.Manager().SwapTokenToCurrency(seller, pool, ids, amountsIn, minCurrency, recipient)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s\n", received)
		return nil
	},
}

func init() {
	swapCmd.AddCommand(swapBuyCmd, swapSellCmd)
}

// SwapCmd is mounted under the root command by cmd/idswap/main.go.
var SwapCmd = swapCmd
