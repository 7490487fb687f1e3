package cli

import (
	"github.com/spf13/cobra"

	"github.com/groupbuy-labs/groupbuy-cli/internal/cli/render"
)

// NewWithdrawCmd creates the withdraw command
func NewWithdrawCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "withdraw [offer-address|query]",
		Short: "Withdraw collected funds from an ended offer",
		Long: `Withdraw the funds an ended offer collected. Only the seller can
withdraw, and only once the offer has ended with at least one order.

The argument is a 0x contract address or a product-name query.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			if err := app.Controller.Bootstrap(cmd.Context()); err != nil {
				return err
			}
			if err := selectOffer(cmd, app, args); err != nil {
				return err
			}

			result, err := app.Controller.WithdrawFunds(cmd.Context())
			if err != nil {
				return err
			}

			txRenderer := render.NewTransactionRenderer(cmd.OutOrStdout(), app.Config)
			txRenderer.RenderTx("withdrawal", result.TxHash)
			return nil
		},
	}

	return cmd
}
