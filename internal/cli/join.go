package cli

import (
	"github.com/spf13/cobra"

	"github.com/groupbuy-labs/groupbuy-cli/internal/cli/render"
)

// NewJoinCmd creates the join command
func NewJoinCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "join [offer-address|query]",
		Short: "Join an offer by placing an order",
		Long: `Join an open offer. Joining is two transactions: the payment token
first grants the offer contract an allowance, then the order call moves
the funds. Both are signed with the configured wallet and awaited.

The argument is a 0x contract address or a product-name query.`,
		Example: `  # Join a specific offer
  groupbuy join 0x1234...abcd

  # Join by product name
  groupbuy join "espresso"`,
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

			result, err := app.Controller.PlaceOrder(cmd.Context())
			if err != nil {
				return err
			}

			txRenderer := render.NewTransactionRenderer(cmd.OutOrStdout(), app.Config)
			txRenderer.RenderTx("approval", result.ApprovalTx)
			txRenderer.RenderTx("order", result.OrderTx)

			snap := app.Controller.Snapshot()
			renderer := render.NewOfferRenderer(cmd.OutOrStdout(), app.Config)
			return renderer.RenderOffer(snap.Selected, snap.Eligibility)
		},
	}

	return cmd
}
