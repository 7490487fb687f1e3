package cli

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/spf13/cobra"

	"github.com/groupbuy-labs/groupbuy-cli/internal/cli/render"
)

// NewBalanceCmd creates the balance command
func NewBalanceCmd() *cobra.Command {
	var spender string

	cmd := &cobra.Command{
		Use:   "balance",
		Short: "Show the wallet's payment token balance",
		Long: `Show the configured wallet's payment token balance, and optionally the
allowance a spender contract still holds on it.`,
		Example: `  # Balance only
  groupbuy balance

  # Balance plus the allowance an offer contract holds
  groupbuy balance --spender 0x1234...abcd`,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			if err := app.Controller.Bootstrap(cmd.Context()); err != nil {
				return err
			}
			session := app.Controller.Snapshot().Session

			var spenderAddr common.Address
			if spender != "" {
				if !common.IsHexAddress(spender) {
					return fmt.Errorf("invalid spender address: %s", spender)
				}
				spenderAddr = common.HexToAddress(spender)
			}

			result, err := app.TokenBalance.Run(cmd.Context(), session.Address, spenderAddr)
			if err != nil {
				return err
			}

			renderer := render.NewBalanceRenderer(cmd.OutOrStdout())
			return renderer.RenderBalance(session.Address, result)
		},
	}

	cmd.Flags().StringVar(&spender, "spender", "", "Also show this contract's remaining allowance")

	return cmd
}
