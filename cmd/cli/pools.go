package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"idswap/core"
)

type poolsController struct{}

func (poolsController) Create(caller core.Address, currencyHandle, tokenHandle core.Handle) (core.Address, error) {
	return core.Manager().CreatePool(caller, currencyHandle, tokenHandle)
}

func (poolsController) List() []core.PoolView { return core.Manager().Snapshot() }

var poolsCmd = &cobra.Command{
	Use:               "pools",
	Short:             "Manage and inspect pools",
	PersistentPreRunE: ensureInitialized,
}

var poolCreateCmd = &cobra.Command{
	Use:   "create <caller> <currencyHandle> <tokenHandle>",
	Short: "Create a new pool trading currencyHandle against tokenHandle",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		caller, err := parseAddr(args[0])
		if err != nil {
			return err
		}
		currencyHandle, err := parseHandle(args[1])
		if err != nil {
			return err
		}
		tokenHandle, err := parseHandle(args[2])
		if err != nil {
			return err
		}
		account, err := (poolsController{}).Create(caller, currencyHandle, tokenHandle)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s\n", account)
		return nil
	},
}

var poolListCmd = &cobra.Command{
	Use:   "list",
	Short: "List every pool and its per-id reserve state",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		views := (poolsController{}).List()
		enc, err := json.MarshalIndent(views, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(enc))
		return nil
	},
}

func init() {
	poolsCmd.AddCommand(poolCreateCmd, poolListCmd)
}

// PoolsCmd is mounted under the root command by cmd/idswap/main.go.
var PoolsCmd = poolsCmd
